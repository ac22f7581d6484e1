// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/txprocessor/codec"
	"github.com/ava-labs/txprocessor/state"

	intkeyconsts "github.com/ava-labs/txprocessor/examples/intkey/consts"
	intkeystorage "github.com/ava-labs/txprocessor/examples/intkey/storage"
	walletconsts "github.com/ava-labs/txprocessor/examples/wallet/consts"
	walletstorage "github.com/ava-labs/txprocessor/examples/wallet/storage"
)

type reader func(ctx context.Context, st state.Context, name string) (any, bool, error)

var readers = map[string]reader{
	intkeyconsts.Name: func(ctx context.Context, st state.Context, name string) (any, bool, error) {
		return intkeystorage.GetCounter(ctx, st, name)
	},
	walletconsts.Name: func(ctx context.Context, st state.Context, name string) (any, bool, error) {
		return walletstorage.GetAccount(ctx, st, name)
	},
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <family> <name>",
		Short: "Print the stored value of a name in a family",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			family, err := resolveFamily(args[0])
			if err != nil {
				return err
			}
			env, err := newEnvironment(cmd)
			if err != nil {
				return err
			}
			defer closeEnvironment(env, &err)

			value, ok, err := readers[family](cmd.Context(), env.db, args[1])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[1], err)
			}
			r := getCmdResponse{
				Family:  family,
				Name:    args[1],
				Address: codec.CreateAddress(codec.NewNamespace(family), args[1]),
				Found:   ok,
			}
			if ok {
				r.Value = value
			}
			return printValue(cmd, r)
		},
	}
}

type getCmdResponse struct {
	Family  string        `json:"family"`
	Name    string        `json:"name"`
	Address codec.Address `json:"address"`
	Found   bool          `json:"found"`
	Value   any           `json:"value,omitempty"`
}

func (r getCmdResponse) String() string {
	if !r.Found {
		return fmt.Sprintf("%s: not found", r.Name)
	}
	return fmt.Sprintf("%s: %v", r.Name, r.Value)
}
