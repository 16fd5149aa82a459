/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package pipeline

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/ARM-software/golang-workqueue/collection/queue"
	"github.com/ARM-software/golang-workqueue/commonerrors"
	"github.com/ARM-software/golang-workqueue/commonerrors/errortest"
	"github.com/ARM-software/golang-workqueue/mocks"
)

func TestShutdownCoordinator(t *testing.T) {
	q := queue.NewConcurrentQueue[int]()
	coordinator, err := NewShutdownCoordinator(q, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, coordinator.Remaining())
	coordinator.Done()
	coordinator.Done()
	assert.Equal(t, queue.Open, q.State())
	assert.Equal(t, 1, coordinator.Remaining())
	coordinator.Done()
	assert.Equal(t, queue.Closed, q.State())
	assert.Zero(t, coordinator.Remaining())
	coordinator.Done()
	assert.Zero(t, coordinator.Remaining())
}

func TestShutdownCoordinatorWithoutProducers(t *testing.T) {
	q := queue.NewConcurrentQueue[int]()
	_, err := NewShutdownCoordinator(q, 0)
	require.NoError(t, err)
	assert.Equal(t, queue.Closed, q.State())
}

func TestShutdownCoordinatorShutsDownOnce(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	q := mocks.NewMockIBlockingQueue[int](ctrl)
	q.EXPECT().Shutdown().Times(1)

	producers := 50
	coordinator, err := NewShutdownCoordinator(q, producers)
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 2*producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			coordinator.Done()
		}()
	}
	wg.Wait()
}

func TestShutdownCoordinatorErrors(t *testing.T) {
	_, err := NewShutdownCoordinator(nil, 1)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	_, err = NewShutdownCoordinator(queue.NewConcurrentQueue[int](), -1)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	var coordinator *ShutdownCoordinator
	coordinator.Done()
	assert.Zero(t, coordinator.Remaining())
}
