// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/txprocessor/codec"
	"github.com/ava-labs/txprocessor/state"
)

// GetRecord reads and decodes the record at [addr]. A missing entry returns
// (nil, false, nil). Store and decode failures are [ErrInternal].
func GetRecord[V any](
	ctx context.Context,
	st state.Context,
	addr codec.Address,
) (codec.Record[V], bool, error) {
	values, err := st.GetState(ctx, []codec.Address{addr})
	if err != nil {
		return nil, false, Internal(fmt.Errorf("could not read %s: %w", addr, err))
	}
	r, exists, err := codec.DecodeRecord[V](values[addr])
	if err != nil {
		return nil, false, Internal(fmt.Errorf("could not decode record at %s: %w", addr, err))
	}
	return r, exists, nil
}

// PutRecord encodes [r] and writes it to [addr]. It returns once the write
// has been acknowledged, and fails with [ErrShortCommit] unless exactly
// [addr] was committed.
func PutRecord[V any](
	ctx context.Context,
	st state.Context,
	addr codec.Address,
	r codec.Record[V],
) error {
	b, err := codec.EncodeRecord(r)
	if err != nil {
		return Internal(fmt.Errorf("could not encode record at %s: %w", addr, err))
	}
	committed, err := st.SetState(ctx, map[codec.Address][]byte{addr: b})
	if err != nil {
		return Internal(fmt.Errorf("could not write %s: %w", addr, err))
	}
	if len(committed) != 1 || committed[0] != addr {
		return Internal(fmt.Errorf("%w: %s", ErrShortCommit, addr))
	}
	return nil
}

// DecodePayload decodes a transaction payload into [v]. Bytes that are not a
// valid encoding are [ErrInternal]; a field of the wrong type is
// [ErrInvalidTransaction].
func DecodePayload(b []byte, v any) error {
	err := codec.Unmarshal(b, v)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, codec.ErrInvalidType):
		return InvalidTransaction(err)
	default:
		return Internal(fmt.Errorf("could not decode payload: %w", err))
	}
}
