// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/txprocessor/examples/intkey/actions"
	"github.com/ava-labs/txprocessor/examples/intkey/consts"
)

func newIntkeyCmd() *cobra.Command {
	return newFamilyCmd(
		consts.Name,
		consts.Name,
		consts.Version,
		"name",
		[]string{actions.SetVerb, actions.IncVerb, actions.DecVerb},
		actions.NewPayload,
	)
}
