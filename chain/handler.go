// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/txprocessor/codec"
	"github.com/ava-labs/txprocessor/state"
	"github.com/ava-labs/txprocessor/utils"
)

// Request is a single transaction routed to a [Handler].
type Request struct {
	ID            ids.ID
	FamilyName    string
	FamilyVersion string
	Payload       []byte
}

// NewRequest builds a [Request] whose ID is the digest of [payload].
func NewRequest(family string, version string, payload []byte) *Request {
	return &Request{
		ID:            utils.ToID(payload),
		FamilyName:    family,
		FamilyVersion: version,
		Payload:       payload,
	}
}

// Handler implements the semantics of one transaction family.
//
// Apply must validate everything before it writes: if it returns an error
// wrapping [ErrInvalidTransaction], [state.Context.SetState] must not have
// been called. Apply returns only after its write has been acknowledged.
type Handler interface {
	FamilyName() string
	FamilyVersions() []string
	// Namespaces are the address prefixes the family may read and write.
	Namespaces() []codec.Namespace

	Apply(ctx context.Context, req *Request, st state.Context) error
}
