/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/goleak"

	"github.com/ARM-software/golang-workqueue/commonerrors"
	"github.com/ARM-software/golang-workqueue/commonerrors/errortest"
	"github.com/ARM-software/golang-workqueue/logs/logstest"
)

func TestWorkerPool(t *testing.T) {
	defer goleak.VerifyNone(t)
	total := atomic.NewInt64(0)
	pool, err := NewWorkerPool(context.Background(), 4, func(_ context.Context, task int) error {
		total.Add(int64(task))
		return nil
	}, logstest.NewNullTestLogger())
	require.NoError(t, err)

	expected := int64(0)
	for i := 1; i <= 200; i++ {
		require.NoError(t, pool.Submit(i))
		expected += int64(i)
	}
	require.NoError(t, pool.Close())
	assert.Equal(t, expected, total.Load())
	assert.Equal(t, 200, pool.Processed())
	assert.Zero(t, pool.Pending())

	err = pool.Submit(201)
	errortest.AssertError(t, err, commonerrors.ErrClosed)
	require.NoError(t, pool.Close())
}

func TestWorkerPool_ShutdownTimeout(t *testing.T) {
	defer goleak.VerifyNone(t)
	pool, err := NewWorkerPool(context.Background(), 2, func(ctx context.Context, _ string) error {
		<-ctx.Done()
		return commonerrors.ErrFromContext(ctx)
	}, logstest.NewNullTestLogger())
	require.NoError(t, err)
	require.NoError(t, pool.Submit(faker.Word(), faker.Word(), faker.Word()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = pool.Shutdown(ctx)
	errortest.AssertError(t, err, commonerrors.ErrTimeout)
	errortest.AssertError(t, pool.Wait(), commonerrors.ErrCancelled)
	assert.Zero(t, pool.Processed())
}

func TestWorkerPool_ParentCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx, cancel := context.WithCancel(context.Background())
	pool, err := NewWorkerPool(ctx, 3, ignoreTask[int], logstest.NewNullTestLogger())
	require.NoError(t, err)
	cancel()
	errortest.AssertError(t, pool.Wait(), commonerrors.ErrCancelled)
}

func TestNewWorkerPool_Errors(t *testing.T) {
	_, err := NewWorkerPool(context.Background(), 0, ignoreTask[int], logstest.NewNullTestLogger())
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	_, err = NewWorkerPool[int](context.Background(), 2, nil, logstest.NewNullTestLogger())
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
}
