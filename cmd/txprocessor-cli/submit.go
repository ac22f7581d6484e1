// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"

	"github.com/ava-labs/txprocessor/chain"
	"github.com/ava-labs/txprocessor/codec"
	"github.com/ava-labs/txprocessor/utils"
)

// payloadBuilder encodes the payload of one operation from its key and
// amount arguments.
type payloadBuilder func(op string, key string, amount int64) ([]byte, error)

// newFamilyCmd returns a command with one subcommand per operation of
// [family], each taking a key and an amount.
func newFamilyCmd(use string, family string, version string, keyName string, ops []string, build payloadBuilder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Apply a %s transaction", family),
	}
	for _, op := range ops {
		op := op
		cmd.AddCommand(&cobra.Command{
			Use:   fmt.Sprintf("%s <%s> <amount>", op, keyName),
			Short: fmt.Sprintf("Apply a %s %s transaction", family, op),
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				amount, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					return fmt.Errorf("failed to parse amount: %w", err)
				}
				payload, err := build(op, args[0], amount)
				if err != nil {
					return fmt.Errorf("failed to encode payload: %w", err)
				}
				return submit(cmd, chain.NewRequest(family, version, payload))
			},
		})
	}
	return cmd
}

func submit(cmd *cobra.Command, req *chain.Request) (err error) {
	isJSON, err := isJSONOutputRequested(cmd)
	if err != nil {
		return err
	}
	env, err := newEnvironment(cmd)
	if err != nil {
		return err
	}
	defer closeEnvironment(env, &err)

	result, err := env.processor.Process(cmd.Context(), req, env.db)
	if errors.Is(err, chain.ErrInvalidTransaction) && !isJSON {
		utils.Outf(cmd.ErrOrStderr(), "{{red}}transaction rejected:{{/}} %s\n", err)
	}
	if err != nil {
		return err
	}
	return printValue(cmd, txCmdResponse{
		TxID:      result.ID,
		Family:    result.FamilyName,
		Version:   result.FamilyVersion,
		Committed: result.Committed,
	})
}

type txCmdResponse struct {
	TxID      ids.ID          `json:"txId"`
	Family    string          `json:"family"`
	Version   string          `json:"version"`
	Committed []codec.Address `json:"committed"`
}

func (r txCmdResponse) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "applied %s (%s %s)", r.TxID, r.Family, r.Version)
	for _, addr := range r.Committed {
		fmt.Fprintf(&sb, "\ncommitted %s", addr)
	}
	return sb.String()
}
