package errortest

import (
	"testing"

	"github.com/ARM-software/golang-workqueue/commonerrors"
)

func TestAssertError(t *testing.T) {
	AssertError(t, commonerrors.New(commonerrors.ErrClosed, "queue is shut down"), commonerrors.ErrTimeout, commonerrors.ErrCancelled, commonerrors.ErrClosed)
}

func TestAssertErrorDescription(t *testing.T) {
	AssertErrorDescription(t, commonerrors.New(commonerrors.ErrClosed, "queue is shut down"), "draining", "shut down")
}

func TestRequireError(t *testing.T) {
	RequireError(t, commonerrors.ErrUndefined, commonerrors.ErrClosed, commonerrors.ErrUndefined)
}

func TestRequireErrorDescription(t *testing.T) {
	RequireErrorDescription(t, commonerrors.UndefinedVariable("queue"), "missing queue")
}
