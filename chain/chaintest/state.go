// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaintest

import (
	"context"

	"github.com/ava-labs/txprocessor/codec"
	"github.com/ava-labs/txprocessor/state"
)

var _ state.Context = (*InMemoryStore)(nil)

// InMemoryStore is an in-memory implementation of `state.Context`. It is not
// safe for concurrent use.
type InMemoryStore struct {
	Storage map[codec.Address][]byte
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		Storage: make(map[codec.Address][]byte),
	}
}

func (i *InMemoryStore) GetState(_ context.Context, addresses []codec.Address) (map[codec.Address][]byte, error) {
	values := make(map[codec.Address][]byte, len(addresses))
	for _, addr := range addresses {
		if v, ok := i.Storage[addr]; ok {
			values[addr] = v
		}
	}
	return values, nil
}

func (i *InMemoryStore) SetState(ctx context.Context, entries map[codec.Address][]byte) ([]codec.Address, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for addr, v := range entries {
		if len(v) == 0 {
			delete(i.Storage, addr)
			continue
		}
		i.Storage[addr] = v
	}
	return state.SortedAddresses(entries), nil
}
