/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logs creates the logr.Logger used by queue producers and consumers from a logging configuration.
package logs

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/DeRuina/timberjack"
	"github.com/bombsimon/logrusr/v4"
	"github.com/evanphx/hclogr"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/stdr"
	"github.com/go-logr/zapr"
	"github.com/hashicorp/go-hclog"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ARM-software/golang-workqueue/commonerrors"
)

const (
	KeyLoggerSource = "logger-source"
	// sync error can happen on Linux (sync /dev/stderr: invalid argument) see https://github.com/uber-go/zap/issues/328
	syncError     = "invalid argument"
	syncErrorIoct = "inappropriate ioctl for device"
)

type closeFunc func() error

func (f closeFunc) Close() error {
	if f == nil {
		return nil
	}
	return f()
}

var noClose closeFunc = func() error { return nil }

// NewLogger returns a logger for `loggerSource` as described by cfg. The returned closer flushes and releases the
// backend and must be called once logging is over.
func NewLogger(cfg *LoggingConfiguration, loggerSource string) (logger logr.Logger, closer io.Closer, err error) {
	if cfg == nil {
		err = commonerrors.UndefinedVariable("logging configuration")
		return
	}
	if loggerSource == "" {
		err = commonerrors.ErrNoLoggerSource
		return
	}
	err = cfg.Validate()
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid logging configuration")
		return
	}
	switch cfg.Backend {
	case BackendZap:
		logger, closer, err = newZapLogger(cfg)
	case BackendLogrus:
		logger, closer = NewLogrusLogger(newLogrus(os.Stderr, cfg.Verbosity)), noClose
	case BackendHclog:
		logger, closer = newHclogLogger(cfg, loggerSource), noClose
	case BackendStd:
		logger, closer = NewStdOutLogger(cfg.Verbosity), noClose
	case BackendStdLog:
		logger, closer = newStdLogger(cfg.Verbosity), noClose
	case BackendJSON:
		logger, closer = NewJSONLogger(os.Stdout, cfg.Verbosity), noClose
	case BackendFile:
		logger, closer = newFileLogger(cfg)
	case BackendNone:
		logger, closer = logr.Discard(), noClose
	default:
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "logging backend [%v]", cfg.Backend)
	}
	if err != nil {
		return
	}
	logger = logger.WithName(loggerSource).WithValues(KeyLoggerSource, loggerSource)
	return
}

// NewZapLogger returns a logger which uses zap logger (https://github.com/uber-go/zap)
func NewZapLogger(zapL *zap.Logger) (logr.Logger, error) {
	if zapL == nil {
		return logr.Discard(), commonerrors.ErrNoLogger
	}
	return zapr.NewLogger(zapL), nil
}

// NewLogrusLogger returns a logger based on logrus (https://github.com/Sirupsen/logrus)
func NewLogrusLogger(logrusL logrus.FieldLogger, opts ...logrusr.Option) logr.Logger {
	return logrusr.New(logrusL, opts...)
}

// NewStdOutLogger returns a logger to standard out.
// See https://github.com/go-logr/logr/blob/ff91da8dc418a9e36998931ed4ab10b71833a368/example_test.go#L27
func NewStdOutLogger(verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Printf("%s: %s\n", prefix, args)
		} else {
			fmt.Println(args)
		}
	}, funcr.Options{Verbosity: verbosity})
}

// newStdLogger returns a logger based on the standard library logger. stdr verbosity is process wide.
func newStdLogger(verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.New(log.New(os.Stderr, "", log.LstdFlags))
}

func newZapLogger(cfg *LoggingConfiguration) (logger logr.Logger, closer io.Closer, err error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	// logr V-levels map onto negative zap levels.
	zapCfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-cfg.Verbosity))
	zapL, err := zapCfg.Build()
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not create zap logger")
		return
	}
	logger, err = NewZapLogger(zapL)
	closer = closeFunc(func() error {
		subErr := zapL.Sync()
		if commonerrors.CorrespondTo(subErr, syncError, syncErrorIoct) {
			return nil
		}
		return subErr
	})
	return
}

func newLogrus(out io.Writer, verbosity int) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	if verbosity > 0 {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

func newHclogLogger(cfg *LoggingConfiguration, loggerSource string) logr.Logger {
	level := hclog.Info
	if cfg.Verbosity > 0 {
		level = hclog.Debug
	}
	return hclogr.Wrap(hclog.New(&hclog.LoggerOptions{
		Name:   loggerSource,
		Level:  level,
		Output: os.Stderr,
	}))
}

func newFileLogger(cfg *LoggingConfiguration) (logr.Logger, io.Closer) {
	writer := &timberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxFileSize,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	}
	l := newLogrus(io.Discard, cfg.Verbosity)
	l.AddHook(lfshook.NewHook(writer, &logrus.JSONFormatter{}))
	return NewLogrusLogger(l), writer
}
