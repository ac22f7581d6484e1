// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"bytes"
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/txprocessor/codec"
)

var _ Context = (*Database)(nil)

// Database implements [Context] on top of any avalanchego key-value
// database (memdb in tests, leveldb/pebble in nodes). All entries of a
// SetState call are written in one batch.
type Database struct {
	db database.Database
}

func NewDatabase(db database.Database) *Database {
	return &Database{db: db}
}

func (d *Database) GetState(ctx context.Context, addresses []codec.Address) (map[codec.Address][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	values := make(map[codec.Address][]byte, len(addresses))
	for _, addr := range addresses {
		v, err := d.db.Get(addr[:])
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		values[addr] = v
	}
	return values, nil
}

func (d *Database) SetState(ctx context.Context, entries map[codec.Address][]byte) ([]codec.Address, error) {
	// A cancelled caller must not see a commit it cannot observe.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	batch := d.db.NewBatch()
	addresses := SortedAddresses(entries)
	for _, addr := range addresses {
		var err error
		if v := entries[addr]; len(v) == 0 {
			err = batch.Delete(addr[:])
		} else {
			err = batch.Put(addr[:], v)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := batch.Write(); err != nil {
		return nil, err
	}
	return addresses, nil
}

// SortedAddresses returns the keys of [entries] in byte order.
func SortedAddresses[V any](entries map[codec.Address]V) []codec.Address {
	addresses := maps.Keys(entries)
	slices.SortFunc(addresses, func(a, b codec.Address) int {
		return bytes.Compare(a[:], b[:])
	})
	return addresses
}
