// Package errortest provides assertions on the common error taxonomy for use in tests.
package errortest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ARM-software/golang-workqueue/commonerrors"
)

// AssertError asserts that `err` matches one of the `expectedErrors` (see commonerrors.Any).
func AssertError(t *testing.T, err error, expectedErrors ...error) bool {
	t.Helper()
	if commonerrors.Any(err, expectedErrors...) {
		return true
	}
	return assert.Failf(t, "Failed error assertion", "actual: %v\nexpected one of: %+v", err, expectedErrors)
}

// AssertErrorDescription asserts that the description of `err` contains one of `expectedErrorDescriptions`.
func AssertErrorDescription(t *testing.T, err error, expectedErrorDescriptions ...string) bool {
	t.Helper()
	if commonerrors.CorrespondTo(err, expectedErrorDescriptions...) {
		return true
	}
	return assert.Failf(t, "Failed error description assertion", "actual: %v\nexpected one of: %+v", err, expectedErrorDescriptions)
}

// RequireError is similar to AssertError but stops the test on failure.
func RequireError(t *testing.T, err error, expectedErrors ...error) {
	t.Helper()
	if !AssertError(t, err, expectedErrors...) {
		t.FailNow()
	}
}

// RequireErrorDescription is similar to AssertErrorDescription but stops the test on failure.
func RequireErrorDescription(t *testing.T, err error, expectedErrorDescriptions ...string) {
	t.Helper()
	if !AssertErrorDescription(t, err, expectedErrorDescriptions...) {
		t.FailNow()
	}
}
