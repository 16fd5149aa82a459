/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package logs

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	BackendZap    = "zap"
	BackendLogrus = "logrus"
	BackendHclog  = "hclog"
	BackendStd    = "std"
	BackendStdLog = "stdlog"
	BackendJSON   = "json"
	BackendFile   = "file"
	BackendNone   = "none"
)

// LoggingConfiguration describes which logging backend to use and how.
type LoggingConfiguration struct {
	// Backend is one of zap, logrus, hclog, std, stdlog, json, file or none.
	Backend string `mapstructure:"backend"`
	// Verbosity is the highest logr V-level which gets printed.
	Verbosity int `mapstructure:"verbosity"`
	// Development switches zap to its development (human readable) configuration.
	Development bool `mapstructure:"development"`
	// File is the path of the log file when the file backend is used.
	File string `mapstructure:"file"`
	// MaxFileSize is the size in megabytes a log file can reach before being rotated.
	MaxFileSize int `mapstructure:"max_file_size"`
	// MaxBackups is the number of rotated log files to retain.
	MaxBackups int `mapstructure:"max_backups"`
}

func (cfg *LoggingConfiguration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Backend, validation.Required, validation.In(BackendZap, BackendLogrus, BackendHclog, BackendStd, BackendStdLog, BackendJSON, BackendFile, BackendNone)),
		validation.Field(&cfg.Verbosity, validation.Min(0)),
		validation.Field(&cfg.File, validation.Required.When(cfg.Backend == BackendFile)),
		validation.Field(&cfg.MaxFileSize, validation.Min(0)),
		validation.Field(&cfg.MaxBackups, validation.Min(0)),
	)
}

// DefaultLoggingConfiguration returns a configuration logging to standard output through zap.
func DefaultLoggingConfiguration() *LoggingConfiguration {
	return &LoggingConfiguration{
		Backend:     BackendZap,
		Verbosity:   0,
		MaxFileSize: 100,
		MaxBackups:  3,
	}
}
