// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	loggerName = "txprocessor"

	logMaxSize  = 8 // megabytes
	logMaxFiles = 7
	logMaxAge   = 0 // days, 0 keeps files until rotated out
)

// newLogger writes to stderr and, when [dir] is set, to a rotated JSON log
// file in [dir].
func newLogger(level logging.Level, dir string) logging.Logger {
	consoleCore := logging.NewWrappedCore(level, os.Stderr, logging.Colors.ConsoleEncoder())
	cores := []logging.WrappedCore{consoleCore}
	if dir != "" {
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(dir, loggerName+".log"),
			MaxSize:    logMaxSize,
			MaxAge:     logMaxAge,
			MaxBackups: logMaxFiles,
		}
		cores = append(cores, logging.NewWrappedCore(level, rw, logging.JSON.FileEncoder()))
	}
	return logging.NewLogger("", cores...)
}
