// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"github.com/ava-labs/txprocessor/codec"
)

//go:generate go run go.uber.org/mock/mockgen -package=state -destination=mock_context.go . Context

// Context is the view of global state handed to a handler for the duration
// of a single transaction.
//
// Implementations own durability and any serialization of concurrent writers.
// Handlers never cache what they read across calls.
type Context interface {
	// GetState returns the bytes stored at each of [addresses]. Addresses
	// that have never been written are omitted from the result (or map to an
	// empty slice).
	GetState(ctx context.Context, addresses []codec.Address) (map[codec.Address][]byte, error)

	// SetState writes [entries] and returns the addresses that were
	// committed. An empty value deletes the entry.
	SetState(ctx context.Context, entries map[codec.Address][]byte) ([]codec.Address, error)
}
