/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package parallelisation

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ARM-software/golang-workqueue/collection/queue"
	"github.com/ARM-software/golang-workqueue/commonerrors"
	"github.com/ARM-software/golang-workqueue/commonerrors/errortest"
	"github.com/ARM-software/golang-workqueue/mocks"
)

func TestCloseAllSequentially_Errors(t *testing.T) {
	t.Run("close with errors", func(t *testing.T) {
		ctlr := gomock.NewController(t)
		defer ctlr.Finish()
		closeError := commonerrors.ErrUnexpected

		closerMock := mocks.NewMockIBlockingQueue[int](ctlr)
		closerMock.EXPECT().Close().Return(closeError).Times(3)

		errortest.AssertError(t, CloseAllSequentially(closerMock, closerMock, closerMock), closeError)
	})

	t.Run("order is kept", func(t *testing.T) {
		ctlr := gomock.NewController(t)
		defer ctlr.Finish()

		first := mocks.NewMockIBlockingQueue[int](ctlr)
		second := mocks.NewMockIBlockingQueue[string](ctlr)
		gomock.InOrder(
			first.EXPECT().Close().Return(nil),
			second.EXPECT().Close().Return(nil),
		)

		require.NoError(t, CloseAllSequentially(first, second))
	})

	t.Run("undefined closer", func(t *testing.T) {
		errortest.AssertError(t, CloseAllSequentially(nil), commonerrors.ErrUndefined)
	})
}

func TestCloseAllSequentially(t *testing.T) {
	queues := []*queue.ConcurrentQueue[int]{queue.NewConcurrentQueue[int](), queue.NewConcurrentQueue[int](), queue.NewConcurrentQueue[int]()}
	closers := make([]io.Closer, 0, len(queues))
	for i := range queues {
		closers = append(closers, queues[i])
	}
	require.NoError(t, CloseAllSequentially(closers...))
	for i := range queues {
		assert.Equal(t, queue.Closed, queues[i].State())
	}
}

func TestCloserStore(t *testing.T) {
	store := NewCloserStoreWithOptions(Parallel)
	q := queue.NewConcurrentQueue[int]()
	require.NoError(t, q.Enqueue(1, 2))
	store.RegisterCloser(q)
	assert.Equal(t, 1, store.Len())
	require.NoError(t, store.Close())
	assert.Equal(t, queue.Draining, q.State())
	assert.Equal(t, 2, q.Len())
}
