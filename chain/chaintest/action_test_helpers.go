// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaintest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/txprocessor/chain"
	"github.com/ava-labs/txprocessor/state"
)

// ApplyTest is a single parameterized test. It calls Apply on the handler with
// the passed request and checks that all assertions pass.
type ApplyTest struct {
	Name string

	Handler chain.Handler
	Request *chain.Request
	State   state.Context

	ExpectedErr error

	Assertion func(context.Context, *testing.T, state.Context)
}

// Run executes the [ApplyTest] and makes sure all assertions pass.
//
// Every call may read state once and write it at most once, and a rejected
// transaction must not have written at all.
func (test *ApplyTest) Run(ctx context.Context, t *testing.T) {
	t.Run(test.Name, func(t *testing.T) {
		require := require.New(t)

		recorder := state.NewRecorder(test.State)
		err := test.Handler.Apply(ctx, test.Request, recorder)

		require.ErrorIs(err, test.ExpectedErr)
		require.LessOrEqual(recorder.Reads(), int64(1))
		require.LessOrEqual(recorder.Writes(), int64(1))
		if errors.Is(err, chain.ErrInvalidTransaction) {
			require.Zero(recorder.Writes(), "rejected transaction wrote state")
		}

		if test.Assertion != nil {
			test.Assertion(ctx, t, test.State)
		}
	})
}
