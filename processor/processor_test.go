// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/txprocessor/chain"
	"github.com/ava-labs/txprocessor/chain/chaintest"
	"github.com/ava-labs/txprocessor/codec"
	"github.com/ava-labs/txprocessor/examples/intkey"
	"github.com/ava-labs/txprocessor/examples/wallet"
	"github.com/ava-labs/txprocessor/state"

	intkeyactions "github.com/ava-labs/txprocessor/examples/intkey/actions"
	intkeyconsts "github.com/ava-labs/txprocessor/examples/intkey/consts"
	walletactions "github.com/ava-labs/txprocessor/examples/wallet/actions"
	walletconsts "github.com/ava-labs/txprocessor/examples/wallet/consts"
)

var errRogue = errors.New("rogue failure")

// rogueHandler writes outside of the namespace it declares.
type rogueHandler struct {
	err error
}

func (*rogueHandler) FamilyName() string { return "rogue" }

func (*rogueHandler) FamilyVersions() []string { return []string{"1.0", "2.0"} }

func (*rogueHandler) Namespaces() []codec.Namespace {
	return []codec.Namespace{codec.NewNamespace("rogue")}
}

func (r *rogueHandler) Apply(ctx context.Context, _ *chain.Request, st state.Context) error {
	if r.err != nil {
		return r.err
	}
	_, err := st.SetState(ctx, map[codec.Address][]byte{
		codec.CreateAddress(intkeyconsts.Namespace, "foo"): {0x01},
	})
	return err
}

func newTestProcessor(t *testing.T) (*Processor, *prometheus.Registry) {
	r := prometheus.NewRegistry()
	p, err := New(logging.NoLog{}, trace.Noop, r)
	require.NoError(t, err)
	require.NoError(t, p.Register(intkey.New(logging.NoLog{})))
	require.NoError(t, p.Register(wallet.New(logging.NoLog{})))
	return p, r
}

func TestRegister(t *testing.T) {
	require := require.New(t)
	p, _ := newTestProcessor(t)

	err := p.Register(intkey.New(logging.NoLog{}))
	require.ErrorIs(err, ErrDuplicateHandler)

	require.NoError(p.Register(&rogueHandler{}))
	require.Equal([]Family{
		{Name: "intkey", Version: "1.0"},
		{Name: "rogue", Version: "1.0"},
		{Name: "rogue", Version: "2.0"},
		{Name: "wallet-family", Version: "1.0"},
	}, p.Families())
}

func TestProcessRoutesByFamily(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	p, _ := newTestProcessor(t)
	store := chaintest.NewInMemoryStore()

	payload, err := intkeyactions.NewPayload(intkeyactions.SetVerb, "foo", 100)
	require.NoError(err)
	req := chain.NewRequest(intkeyconsts.Name, intkeyconsts.Version, payload)
	result, err := p.Process(ctx, req, store)
	require.NoError(err)
	require.True(result.Success)
	require.Equal(req.ID, result.ID)
	require.Equal([]codec.Address{codec.CreateAddress(intkeyconsts.Namespace, "foo")}, result.Committed)
	require.Equal(int64(1), result.Reads)
	require.Equal(int64(1), result.Writes)

	payload, err = walletactions.NewPayload(walletactions.DepositAction, "john", 1000)
	require.NoError(err)
	result, err = p.Process(ctx, chain.NewRequest(walletconsts.Name, walletconsts.Version, payload), store)
	require.NoError(err)
	require.True(result.Success)
	require.Len(store.Storage, 2)
}

func TestProcessUnknownFamily(t *testing.T) {
	tests := map[string]struct {
		family  string
		version string
	}{
		"UnknownFamily":  {family: "xo", version: "1.0"},
		"UnknownVersion": {family: intkeyconsts.Name, version: "2.0"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			p, r := newTestProcessor(t)
			store := chaintest.NewInMemoryStore()

			result, err := p.Process(context.Background(), chain.NewRequest(tt.family, tt.version, []byte{0xa0}), store)
			require.ErrorIs(err, ErrUnknownHandler)
			require.ErrorIs(err, chain.ErrInvalidTransaction)
			require.False(result.Success)
			require.Equal([]byte(err.Error()), result.Error)
			require.Empty(store.Storage)

			require.Equal(1, testutil.CollectAndCount(r, "processor_rejected"))
		})
	}
}

func TestProcessRejection(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	p, _ := newTestProcessor(t)
	store := chaintest.NewInMemoryStore()

	payload, err := walletactions.NewPayload(walletactions.WithdrawAction, "john", 1)
	require.NoError(err)
	result, err := p.Process(ctx, chain.NewRequest(walletconsts.Name, walletconsts.Version, payload), store)
	require.ErrorIs(err, chain.ErrInvalidTransaction)
	require.False(result.Success)
	require.Zero(result.Writes)
	require.Empty(result.Committed)

	require.Equal(float64(1), testutil.ToFloat64(p.metrics.rejected.WithLabelValues(walletconsts.Name)))
	require.Zero(testutil.ToFloat64(p.metrics.applied.WithLabelValues(walletconsts.Name)))
}

func TestProcessScopesNamespaces(t *testing.T) {
	require := require.New(t)
	p, _ := newTestProcessor(t)
	require.NoError(p.Register(&rogueHandler{}))
	store := chaintest.NewInMemoryStore()

	result, err := p.Process(context.Background(), chain.NewRequest("rogue", "1.0", nil), store)
	require.ErrorIs(err, state.ErrUnauthorizedAddress)
	require.ErrorIs(err, chain.ErrInternal)
	require.False(result.Success)
	require.Empty(store.Storage)
	require.Equal(float64(1), testutil.ToFloat64(p.metrics.internal.WithLabelValues("rogue")))
}

func TestProcessClassifiesUnknownErrors(t *testing.T) {
	require := require.New(t)
	p, _ := newTestProcessor(t)
	require.NoError(p.Register(&rogueHandler{err: errRogue}))

	_, err := p.Process(context.Background(), chain.NewRequest("rogue", "2.0", nil), chaintest.NewInMemoryStore())
	require.ErrorIs(err, errRogue)
	require.ErrorIs(err, chain.ErrInternal)
	require.NotErrorIs(err, chain.ErrInvalidTransaction)
}
