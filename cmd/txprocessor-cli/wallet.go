// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/txprocessor/examples/wallet/actions"
	"github.com/ava-labs/txprocessor/examples/wallet/consts"
)

const walletCmdName = "wallet"

func newWalletCmd() *cobra.Command {
	return newFamilyCmd(
		walletCmdName,
		consts.Name,
		consts.Version,
		"id",
		[]string{actions.DepositAction, actions.WithdrawAction},
		actions.NewPayload,
	)
}
