package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAny(t *testing.T) {
	assert.True(t, Any(ErrNotImplemented, ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.False(t, Any(ErrNotImplemented, ErrInvalid, ErrUnknown))
	assert.True(t, Any(fmt.Errorf("an error %w", ErrClosed), ErrInvalid, ErrClosed, ErrUnknown))
	assert.False(t, Any(fmt.Errorf("an error %w", ErrClosed), ErrInvalid, ErrUnknown))
}

func TestNone(t *testing.T) {
	assert.False(t, None(ErrNotImplemented, ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.True(t, None(ErrNotImplemented, ErrInvalid, ErrUnknown))
	assert.False(t, None(fmt.Errorf("an error %w", ErrClosed), ErrInvalid, ErrClosed, ErrUnknown))
	assert.True(t, None(fmt.Errorf("an error %w", ErrClosed), ErrInvalid, ErrUnknown))
}

func TestNew(t *testing.T) {
	err := New(ErrClosed, "queue was shut down")
	assert.True(t, Any(err, ErrClosed))
	assert.True(t, CorrespondTo(err, "shut down"))
	assert.Equal(t, "closed: queue was shut down", err.Error())
	assert.Equal(t, ErrClosed, New(ErrClosed, "   "))
	assert.True(t, Any(New(nil, "test"), ErrUnknown))
	assert.True(t, Any(Newf(ErrInvalid, "value %v", 5), ErrInvalid))
}

func TestWrapError(t *testing.T) {
	original := errors.New("original failure")
	err := WrapError(ErrUnexpected, original, "processing item")
	assert.True(t, Any(err, ErrUnexpected))
	assert.True(t, Any(err, original))
	assert.True(t, CorrespondTo(err, "processing item", "original failure"))
	assert.True(t, Any(WrapError(ErrUnexpected, nil, "no cause"), ErrUnexpected))
	assert.Equal(t, original, WrapError(original, original, ""))
	err = WrapErrorf(ErrClosed, original, "producer %v", 2)
	assert.True(t, Any(err, ErrClosed, original))
	assert.True(t, CorrespondTo(err, "producer 2"))
}

func TestIgnore(t *testing.T) {
	assert.NoError(t, Ignore(ErrCancelled, ErrCancelled))
	assert.NoError(t, Ignore(nil, ErrCancelled))
	assert.NoError(t, Ignore(Join(ErrCancelled, ErrCancelled), ErrCancelled))
	assert.Equal(t, ErrClosed, Ignore(ErrClosed, ErrCancelled))
}

func TestJoin(t *testing.T) {
	assert.NoError(t, Join())
	assert.NoError(t, Join(nil, nil))
	assert.Equal(t, ErrClosed, Join(nil, ErrClosed))
	err := Join(ErrClosed, nil, ErrTimeout)
	require.Error(t, err)
	assert.True(t, Any(err, ErrClosed))
	assert.True(t, Any(err, ErrTimeout))
}

func TestContextErrors(t *testing.T) {
	assert.NoError(t, ErrFromContext(context.Background()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ErrFromContext(ctx)
	assert.True(t, Any(err, ErrCancelled))
	assert.True(t, Any(err, context.Canceled))

	ctx, cancel = context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()
	err = ErrFromContext(ctx)
	assert.True(t, Any(err, ErrTimeout))
	assert.Equal(t, err, ConvertContextError(err))
	assert.Equal(t, ErrClosed, ConvertContextError(ErrClosed))
	assert.NoError(t, ConvertContextError(nil))
}

func TestUndefinedVariable(t *testing.T) {
	err := UndefinedVariable("queue")
	assert.True(t, Any(err, ErrUndefined))
	assert.True(t, CorrespondTo(err, "missing queue"))
}
