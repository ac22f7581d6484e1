// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/txprocessor/pebble"
	"github.com/ava-labs/txprocessor/trace"
)

const (
	defaultDatabasePath = ".txprocessor/db"
	defaultAppName      = "txprocessor"
)

type Config struct {
	LogLevel string `yaml:"logLevel" json:"logLevel"`
	// Directory rotated log files are written to. Logs only go to the
	// console when empty.
	LogDir string `yaml:"logDir" json:"logDir"`

	DatabasePath string        `yaml:"databasePath" json:"databasePath"`
	Pebble       pebble.Config `yaml:"pebble" json:"pebble"`
	Trace        trace.Config  `yaml:"trace" json:"trace"`

	// File processor and store metrics are written to, in the prometheus
	// text format, when a command exits. Disabled when empty.
	MetricsFile string `yaml:"metricsFile" json:"metricsFile"`

	// Families lists the transaction families to register. All known
	// families are registered when empty.
	Families []string `yaml:"families" json:"families"`
}

// New returns the default configuration overridden by [b]. [b] may be YAML
// or JSON.
func New(b []byte) (*Config, error) {
	c := &Config{
		LogLevel:     logging.Info.String(),
		DatabasePath: defaultDatabasePath,
		Pebble:       pebble.NewDefaultConfig(),
		Trace: trace.Config{
			Enabled:         false,
			TraceSampleRate: 1,
			Exporter:        trace.Zipkin,
			Endpoint:        trace.DefaultEndpoint,
			AppName:         defaultAppName,
		},
	}

	if len(b) > 0 {
		if err := yaml.UnmarshalStrict(b, c); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if _, err := c.GetLogLevel(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the configuration at [path]. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return New(nil)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(b)
}

func (c *Config) GetLogLevel() (logging.Level, error) {
	return logging.ToLevel(c.LogLevel)
}

func (c *Config) GetTraceConfig() *trace.Config {
	return &c.Trace
}

// FamilyEnabled reports whether [family] should be registered.
func (c *Config) FamilyEnabled(family string) bool {
	return len(c.Families) == 0 || slices.Contains(c.Families, family)
}
