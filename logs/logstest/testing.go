// Package logstest provides loggers to use in tests.
package logstest

import (
	"testing"

	"github.com/bombsimon/logrusr/v4"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/sirupsen/logrus"
	logrusTest "github.com/sirupsen/logrus/hooks/test"
)

// NewNullTestLogger returns a logger to nothing.
func NewNullTestLogger() logr.Logger {
	logger, _ := NewRecordingTestLogger()
	return logger
}

// NewRecordingTestLogger returns a logger which does not print anything but records entries in the returned hook
// so that tests can make assertions on what was logged.
func NewRecordingTestLogger() (logr.Logger, *logrusTest.Hook) {
	internalLogger, hook := logrusTest.NewNullLogger()
	internalLogger.SetLevel(logrus.TraceLevel)
	return logrusr.New(internalLogger), hook
}

// NewTestLogger returns a logger printing through the test framework.
func NewTestLogger(t *testing.T) logr.Logger {
	return testr.New(t)
}
