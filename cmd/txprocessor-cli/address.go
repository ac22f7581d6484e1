// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/txprocessor/codec"
)

func newAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address <family> <name>",
		Short: "Print the state address of a name in a family",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			family, err := resolveFamily(args[0])
			if err != nil {
				return err
			}
			addr := codec.CreateAddress(codec.NewNamespace(family), args[1])
			return printValue(cmd, addressCmdResponse{
				Family:  family,
				Name:    args[1],
				Address: addr,
			})
		},
	}
}

type addressCmdResponse struct {
	Family  string        `json:"family"`
	Name    string        `json:"name"`
	Address codec.Address `json:"address"`
}

func (r addressCmdResponse) String() string {
	return r.Address.String()
}
