// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"

	"github.com/ava-labs/txprocessor/codec"
)

func newFamiliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List the transaction families enabled by the config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			r := familiesCmdResponse{}
			for _, name := range knownFamilies() {
				if !cfg.FamilyEnabled(name) {
					continue
				}
				h := handlerFactories[name](logging.NoLog{})
				r.Families = append(r.Families, familyInfo{
					Name:       name,
					Versions:   h.FamilyVersions(),
					Namespaces: h.Namespaces(),
				})
			}
			return printValue(cmd, r)
		},
	}
}

type familyInfo struct {
	Name       string            `json:"name"`
	Versions   []string          `json:"versions"`
	Namespaces []codec.Namespace `json:"namespaces"`
}

type familiesCmdResponse struct {
	Families []familyInfo `json:"families"`
}

func (r familiesCmdResponse) String() string {
	var sb strings.Builder
	for i, f := range r.Families {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(f.Name)
		sb.WriteString(" ")
		sb.WriteString(strings.Join(f.Versions, ","))
		for _, ns := range f.Namespaces {
			sb.WriteString(" ")
			sb.WriteString(ns.String())
		}
	}
	return sb.String()
}
