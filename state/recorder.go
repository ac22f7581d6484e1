// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"go.uber.org/atomic"

	"github.com/ava-labs/txprocessor/codec"
)

var _ Context = (*Recorder)(nil)

// The Recorder wraps a [Context] and records how many times it was read from
// and written to, and which addresses were committed.
type Recorder struct {
	// State is the underlying [Context] object
	state Context

	reads  atomic.Int64
	writes atomic.Int64

	committed []codec.Address
}

func NewRecorder(state Context) *Recorder {
	return &Recorder{state: state}
}

func (r *Recorder) GetState(ctx context.Context, addresses []codec.Address) (map[codec.Address][]byte, error) {
	r.reads.Inc()
	return r.state.GetState(ctx, addresses)
}

func (r *Recorder) SetState(ctx context.Context, entries map[codec.Address][]byte) ([]codec.Address, error) {
	r.writes.Inc()
	committed, err := r.state.SetState(ctx, entries)
	if err != nil {
		return nil, err
	}
	r.committed = append(r.committed, committed...)
	return committed, nil
}

// Reads returns the number of GetState calls made.
func (r *Recorder) Reads() int64 {
	return r.reads.Load()
}

// Writes returns the number of SetState calls made, committed or not.
func (r *Recorder) Writes() int64 {
	return r.writes.Load()
}

// Committed returns every address the underlying state acknowledged.
func (r *Recorder) Committed() []codec.Address {
	return r.committed
}
