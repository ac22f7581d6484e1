// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"errors"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"

	"github.com/ava-labs/txprocessor/codec"
	"github.com/ava-labs/txprocessor/state"
)

var (
	_ state.Context = (*Database)(nil)

	ErrClosed = errors.New("database closed")
)

type Config struct {
	CacheSize                   int  `yaml:"cacheSize" json:"cacheSize"`
	BytesPerSync                int  `yaml:"bytesPerSync" json:"bytesPerSync"`
	WALBytesPerSync             int  `yaml:"walBytesPerSync" json:"walBytesPerSync"`
	MemTableStopWritesThreshold int  `yaml:"memTableStopWritesThreshold" json:"memTableStopWritesThreshold"`
	MemTableSize                int  `yaml:"memTableSize" json:"memTableSize"`
	MaxOpenFiles                int  `yaml:"maxOpenFiles" json:"maxOpenFiles"`
	ConcurrentCompactions       int  `yaml:"concurrentCompactions" json:"concurrentCompactions"`
	Sync                        bool `yaml:"sync" json:"sync"`
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize:                   64 * 1024 * 1024,
		BytesPerSync:                1024 * 1024,
		WALBytesPerSync:             1024 * 1024,
		MemTableStopWritesThreshold: 8,
		MemTableSize:                16 * 1024 * 1024,
		MaxOpenFiles:                4_096,
		ConcurrentCompactions:       1,
		Sync:                        true,
	}
}

// Database is a pebble-backed [state.Context]. Every SetState is a single
// atomic batch, so a transaction's writes are either all durable or absent.
type Database struct {
	db      *pebble.DB
	wo      *pebble.WriteOptions
	metrics *metrics

	closed atomic.Bool
}

func New(file string, cfg Config) (*Database, *prometheus.Registry, error) {
	// These default settings are based on https://github.com/ethereum/go-ethereum/blob/master/ethdb/pebble/pebble.go
	d := &Database{}
	opts := &pebble.Options{
		Cache:                       pebble.NewCache(int64(cfg.CacheSize)),
		BytesPerSync:                cfg.BytesPerSync,
		Comparer:                    pebble.DefaultComparer,
		WALBytesPerSync:             cfg.WALBytesPerSync,
		MemTableStopWritesThreshold: cfg.MemTableStopWritesThreshold,
		MemTableSize:                uint64(cfg.MemTableSize),
		MaxOpenFiles:                cfg.MaxOpenFiles,
		MaxConcurrentCompactions:    func() int { return cfg.ConcurrentCompactions },
		EventListener: &pebble.EventListener{
			CompactionBegin: d.onCompactionBegin,
			WriteStallBegin: d.onWriteStallBegin,
			WriteStallEnd:   d.onWriteStallEnd,
		},
	}
	defer opts.Cache.Unref()
	opts.Experimental.ReadSamplingMultiplier = -1 // explicitly disable seek compaction

	registry, metrics, err := newMetrics(d)
	if err != nil {
		return nil, nil, err
	}
	d.metrics = metrics

	db, err := pebble.Open(file, opts)
	if err != nil {
		return nil, nil, err
	}
	d.db = db
	d.wo = &pebble.WriteOptions{Sync: cfg.Sync}
	return d, registry, nil
}

func (d *Database) GetState(ctx context.Context, addresses []codec.Address) (map[codec.Address][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.closed.Load() {
		return nil, ErrClosed
	}

	start := time.Now()
	defer func() {
		d.metrics.getLatency.Observe(float64(time.Since(start)))
	}()

	values := make(map[codec.Address][]byte, len(addresses))
	for _, addr := range addresses {
		v, closer, err := d.db.Get(addr[:])
		if errors.Is(err, pebble.ErrNotFound) {
			d.metrics.observeRead(addr, false)
			continue
		}
		if err != nil {
			return nil, err
		}
		d.metrics.observeRead(addr, true)
		values[addr] = append([]byte(nil), v...)
		if err := closer.Close(); err != nil {
			return nil, err
		}
	}
	return values, nil
}

// SetState writes [entries] in one batch. An empty value deletes the
// address.
func (d *Database) SetState(ctx context.Context, entries map[codec.Address][]byte) ([]codec.Address, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.closed.Load() {
		return nil, ErrClosed
	}

	batch := d.db.NewBatch()
	defer batch.Close()

	addresses := state.SortedAddresses(entries)
	for _, addr := range addresses {
		v := entries[addr]
		if len(v) == 0 {
			if err := batch.Delete(addr[:], nil); err != nil {
				return nil, err
			}
			continue
		}
		if err := batch.Set(addr[:], v, nil); err != nil {
			return nil, err
		}
	}
	start := time.Now()
	if err := batch.Commit(d.wo); err != nil {
		return nil, err
	}
	d.metrics.commitLatency.Observe(float64(time.Since(start)))
	for _, addr := range addresses {
		d.metrics.observeWrite(addr, len(entries[addr]) == 0)
	}
	return addresses, nil
}

func (d *Database) Close() error {
	if !d.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	return d.db.Close()
}
