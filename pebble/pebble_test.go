// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/txprocessor/codec"
)

const batchSize = 10_000

func randBytes() []byte {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}

func newTestDatabase(t *testing.T) *Database {
	cfg := NewDefaultConfig()
	cfg.Sync = false
	db, registry, err := New(t.TempDir(), cfg)
	require.NoError(t, err)
	require.NotNil(t, registry)
	return db
}

func TestGetSetState(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := newTestDatabase(t)

	ns := codec.NewNamespace("intkey")
	foo := codec.CreateAddress(ns, "foo")
	bar := codec.CreateAddress(ns, "bar")

	values, err := db.GetState(ctx, []codec.Address{foo, bar})
	require.NoError(err)
	require.Empty(values)

	committed, err := db.SetState(ctx, map[codec.Address][]byte{
		foo: {0x01},
		bar: {0x02},
	})
	require.NoError(err)
	require.ElementsMatch([]codec.Address{foo, bar}, committed)

	values, err = db.GetState(ctx, []codec.Address{foo, bar})
	require.NoError(err)
	require.Equal(map[codec.Address][]byte{foo: {0x01}, bar: {0x02}}, values)

	// Empty values delete.
	committed, err = db.SetState(ctx, map[codec.Address][]byte{foo: nil})
	require.NoError(err)
	require.Equal([]codec.Address{foo}, committed)

	values, err = db.GetState(ctx, []codec.Address{foo, bar})
	require.NoError(err)
	require.Equal(map[codec.Address][]byte{bar: {0x02}}, values)

	require.NoError(db.Close())
	require.ErrorIs(db.Close(), ErrClosed)
	_, err = db.GetState(ctx, []codec.Address{bar})
	require.ErrorIs(err, ErrClosed)
}

func TestCancelledContextDoesNotWrite(t *testing.T) {
	require := require.New(t)
	db := newTestDatabase(t)
	defer db.Close()

	addr := codec.CreateAddress(codec.NewNamespace("wallet-family"), "john")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := db.SetState(ctx, map[codec.Address][]byte{addr: {0x01}})
	require.ErrorIs(err, context.Canceled)

	values, err := db.GetState(context.Background(), []codec.Address{addr})
	require.NoError(err)
	require.Empty(values)
}

func TestReopenIsDurable(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	addr := codec.CreateAddress(codec.NewNamespace("intkey"), "foo")
	db, _, err := New(dir, NewDefaultConfig())
	require.NoError(err)
	_, err = db.SetState(ctx, map[codec.Address][]byte{addr: {0xa1}})
	require.NoError(err)
	require.NoError(db.Close())

	db, _, err = New(dir, NewDefaultConfig())
	require.NoError(err)
	defer db.Close()
	values, err := db.GetState(ctx, []codec.Address{addr})
	require.NoError(err)
	require.Equal([]byte{0xa1}, values[addr])
}

func TestMetricsByNamespace(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	cfg := NewDefaultConfig()
	cfg.Sync = false
	db, registry, err := New(t.TempDir(), cfg)
	require.NoError(err)
	defer db.Close()

	intkeyNs := codec.NewNamespace("intkey")
	walletNs := codec.NewNamespace("wallet-family")
	foo := codec.CreateAddress(intkeyNs, "foo")
	john := codec.CreateAddress(walletNs, "john")

	_, err = db.SetState(ctx, map[codec.Address][]byte{foo: {0x01}, john: {0x02}})
	require.NoError(err)
	_, err = db.SetState(ctx, map[codec.Address][]byte{foo: nil})
	require.NoError(err)
	_, err = db.GetState(ctx, []codec.Address{foo, john})
	require.NoError(err)

	m := db.metrics
	require.Equal(1.0, testutil.ToFloat64(m.writes.WithLabelValues(intkeyNs.String())))
	require.Equal(1.0, testutil.ToFloat64(m.writes.WithLabelValues(walletNs.String())))
	require.Equal(1.0, testutil.ToFloat64(m.deletes.WithLabelValues(intkeyNs.String())))
	require.Equal(1.0, testutil.ToFloat64(m.reads.WithLabelValues(intkeyNs.String())))
	require.Equal(1.0, testutil.ToFloat64(m.misses.WithLabelValues(intkeyNs.String())))
	require.Zero(testutil.ToFloat64(m.misses.WithLabelValues(walletNs.String())))

	families, err := registry.Gather()
	require.NoError(err)
	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	require.Contains(names, "pebble_commit_count")
	require.Contains(names, "pebble_disk_usage")
}

func BenchmarkSetState(b *testing.B) {
	for _, sync := range []bool{false, true} {
		b.Run(fmt.Sprintf("sync=%t", sync), func(b *testing.B) {
			// Setup DB
			b.StopTimer()
			cfg := NewDefaultConfig()
			cfg.Sync = sync
			db, _, err := New(b.TempDir(), cfg)
			if err != nil {
				b.Fatal(err)
			}

			// Setup entries
			ns := codec.NewNamespace("intkey")
			entries := make(map[codec.Address][]byte, batchSize)
			for i := 0; i < batchSize; i++ {
				entries[codec.CreateAddress(ns, string(randBytes()))] = randBytes()
			}

			b.StartTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := db.SetState(context.Background(), entries); err != nil {
					b.Fatal(err)
				}
			}
			b.StopTimer()

			if err := db.Close(); err != nil {
				b.Fatal(err)
			}
		})
	}
}
