// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txprocessor-cli",
		Short: "Apply intkey and wallet transactions to a local state store",
		Long:  `A CLI application for deriving addresses, applying single transactions, and reading records from a local pebble state store.`,
	}

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.DisableAutoGenTag = true
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	cmd.PersistentFlags().String("config", "", "Path to a YAML or JSON config file")
	cmd.PersistentFlags().String("database", "", "Override the configured database path")
	cmd.PersistentFlags().String("log-level", "", "Override the configured log level")
	cmd.PersistentFlags().String("metrics-file", "", "Write processor and store metrics to this file on exit")
	cmd.PersistentFlags().StringP("output", "o", "text", "Output format (text or json)")

	cmd.AddCommand(
		newAddressCmd(),
		newFamiliesCmd(),
		newIntkeyCmd(),
		newWalletCmd(),
		newGetCmd(),
	)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}
