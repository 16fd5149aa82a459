/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package logs

import (
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/rs/zerolog"
)

// jsonSink is a logr.LogSink writing one JSON object per entry through zerolog.
type jsonSink struct {
	logger    zerolog.Logger
	name      string
	verbosity int
}

// NewJSONLogger returns a logger writing JSON entries to `out` using zerolog (https://github.com/rs/zerolog).
func NewJSONLogger(out io.Writer, verbosity int) logr.Logger {
	return logr.New(&jsonSink{
		logger:    zerolog.New(out).With().Timestamp().Logger(),
		verbosity: verbosity,
	})
}

func (s *jsonSink) Init(_ logr.RuntimeInfo) {}

func (s *jsonSink) Enabled(level int) bool {
	return level <= s.verbosity
}

func (s *jsonSink) Info(level int, msg string, keysAndValues ...any) {
	event := s.logger.Info()
	if level > 0 {
		event = s.logger.Debug()
	}
	s.write(event.Int("v", level), msg, keysAndValues)
}

func (s *jsonSink) Error(err error, msg string, keysAndValues ...any) {
	s.write(s.logger.Error().Err(err), msg, keysAndValues)
}

func (s *jsonSink) write(event *zerolog.Event, msg string, keysAndValues []any) {
	if s.name != "" {
		event = event.Str("logger", s.name)
	}
	event.Fields(keysAndValues).Msg(msg)
}

func (s *jsonSink) WithValues(keysAndValues ...any) logr.LogSink {
	sink := *s
	sink.logger = s.logger.With().Fields(keysAndValues).Logger()
	return &sink
}

func (s *jsonSink) WithName(name string) logr.LogSink {
	sink := *s
	sink.name = strings.Join([]string{s.name, name}, "/")
	if s.name == "" {
		sink.name = name
	}
	return &sink
}
