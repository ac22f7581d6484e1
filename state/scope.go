// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/set"

	"github.com/ava-labs/txprocessor/codec"
)

var (
	ErrUnauthorizedAddress = errors.New("address outside of authorized namespaces")

	_ Context = (*Scoped)(nil)
)

// Scoped restricts a [Context] to the namespaces a family registered. Any
// read or write outside of them fails before reaching the underlying state.
type Scoped struct {
	state      Context
	namespaces set.Set[codec.Namespace]
}

func NewScoped(state Context, namespaces []codec.Namespace) *Scoped {
	s := set.NewSet[codec.Namespace](len(namespaces))
	s.Add(namespaces...)
	return &Scoped{state: state, namespaces: s}
}

func (s *Scoped) check(addr codec.Address) error {
	if !s.namespaces.Contains(addr.Namespace()) {
		return fmt.Errorf("%w: %s", ErrUnauthorizedAddress, addr)
	}
	return nil
}

func (s *Scoped) GetState(ctx context.Context, addresses []codec.Address) (map[codec.Address][]byte, error) {
	for _, addr := range addresses {
		if err := s.check(addr); err != nil {
			return nil, err
		}
	}
	return s.state.GetState(ctx, addresses)
}

func (s *Scoped) SetState(ctx context.Context, entries map[codec.Address][]byte) ([]codec.Address, error) {
	for addr := range entries {
		if err := s.check(addr); err != nil {
			return nil, err
		}
	}
	return s.state.SetState(ctx, entries)
}
