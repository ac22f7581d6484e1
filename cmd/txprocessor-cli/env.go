// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/txprocessor/chain"
	"github.com/ava-labs/txprocessor/config"
	"github.com/ava-labs/txprocessor/examples/intkey"
	"github.com/ava-labs/txprocessor/examples/wallet"
	"github.com/ava-labs/txprocessor/pebble"
	"github.com/ava-labs/txprocessor/processor"

	intkeyconsts "github.com/ava-labs/txprocessor/examples/intkey/consts"
	walletconsts "github.com/ava-labs/txprocessor/examples/wallet/consts"
	txtrace "github.com/ava-labs/txprocessor/trace"
)

var handlerFactories = map[string]func(logging.Logger) chain.Handler{
	intkeyconsts.Name:  func(log logging.Logger) chain.Handler { return intkey.New(log) },
	walletconsts.Name: func(log logging.Logger) chain.Handler { return wallet.New(log) },
}

func knownFamilies() []string {
	families := maps.Keys(handlerFactories)
	slices.Sort(families)
	return families
}

// environment is everything a command needs to apply or read transactions.
type environment struct {
	cfg       *config.Config
	log       logging.Logger
	tracer    trace.Tracer
	db        *pebble.Database
	processor *processor.Processor

	// Processor and store metrics, written to [config.Config.MetricsFile]
	// on Close.
	gatherer prometheus.Gatherers
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if database, _ := cmd.Flags().GetString("database"); database != "" {
		cfg.DatabasePath = database
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if metricsFile, _ := cmd.Flags().GetString("metrics-file"); metricsFile != "" {
		cfg.MetricsFile = metricsFile
	}
	return cfg, nil
}

func newEnvironment(cmd *cobra.Command) (_ *environment, err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	level, err := cfg.GetLogLevel()
	if err != nil {
		return nil, err
	}
	log := newLogger(level, cfg.LogDir)

	tracer, err := txtrace.New(cfg.GetTraceConfig())
	if err != nil {
		log.Stop()
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tracer.Close()
			log.Stop()
		}
	}()

	processorRegistry := prometheus.NewRegistry()
	p, err := processor.New(log, tracer, processorRegistry)
	if err != nil {
		return nil, err
	}
	for _, family := range knownFamilies() {
		if !cfg.FamilyEnabled(family) {
			continue
		}
		if err := p.Register(handlerFactories[family](log)); err != nil {
			return nil, err
		}
	}

	db, dbRegistry, err := pebble.New(cfg.DatabasePath, cfg.Pebble)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.DatabasePath, err)
	}
	log.Debug("opened database",
		zap.String("path", cfg.DatabasePath),
		zap.Strings("families", cfg.Families),
	)
	return &environment{
		cfg:       cfg,
		log:       log,
		tracer:    tracer,
		db:        db,
		processor: p,
		gatherer:  prometheus.Gatherers{processorRegistry, dbRegistry},
	}, nil
}

// Close writes the metrics file, if one is configured, before closing the
// store.
func (e *environment) Close() error {
	errs := wrappers.Errs{}
	if e.cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(e.cfg.MetricsFile, e.gatherer); err != nil {
			errs.Add(fmt.Errorf("failed to write metrics: %w", err))
		}
	}
	errs.Add(
		e.db.Close(),
		e.tracer.Close(),
	)
	e.log.Stop()
	return errs.Err
}

// closeEnvironment closes [e] and reports its error through [err] unless
// [err] is already set.
func closeEnvironment(e *environment, err *error) {
	if closeErr := e.Close(); closeErr != nil && *err == nil {
		*err = closeErr
	}
}

func unknownFamily(family string) error {
	return fmt.Errorf("unknown family %q, expected one of %s", family, strings.Join(knownFamilies(), ", "))
}

// resolveFamily accepts a family name or the short name of its command.
func resolveFamily(name string) (string, error) {
	if name == walletCmdName {
		name = walletconsts.Name
	}
	if _, ok := handlerFactories[name]; !ok {
		return "", unknownFamily(name)
	}
	return name, nil
}
