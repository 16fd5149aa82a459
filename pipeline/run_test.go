/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package pipeline

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/ARM-software/golang-workqueue/collection/queue"
	"github.com/ARM-software/golang-workqueue/commonerrors"
	"github.com/ARM-software/golang-workqueue/commonerrors/errortest"
	"github.com/ARM-software/golang-workqueue/logs/logstest"
	"github.com/ARM-software/golang-workqueue/mocks"
)

func fastConfiguration() *Configuration {
	cfg := DefaultConfiguration()
	cfg.ProductionDelay = time.Millisecond
	cfg.ProcessingDelay = time.Millisecond
	return cfg
}

// 2 producers of 5 tasks and 3 consumers draining concurrently.
func TestRun_ClassicDemonstration(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := fastConfiguration()
	consumed := mapset.NewSet[testTask]()
	duplicates := atomic.NewInt32(0)
	report, err := Run(context.Background(), cfg, logstest.NewTestLogger(t), generateTestTask, func(_ context.Context, task testTask) error {
		if !consumed.Add(task) {
			duplicates.Inc()
		}
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 10, report.Produced)
	assert.Equal(t, 10, report.Consumed)
	assert.Zero(t, report.Failed)
	assert.Equal(t, []int{5, 5}, report.ProducedPerProducer)
	assert.Len(t, report.ConsumedPerConsumer, 3)
	assert.Equal(t, []ConsumerState{Terminated, Terminated, Terminated}, report.ConsumerStates)
	assert.Equal(t, queue.Closed, report.QueueState)
	assert.Zero(t, report.Remaining)
	assert.Zero(t, duplicates.Load())
	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"QueueState":"Closed"`)
	assert.Contains(t, string(data), `"ConsumerStates":["Terminated","Terminated","Terminated"]`)
	expected := mapset.NewSet[testTask]()
	for p := 0; p < 2; p++ {
		for i := 0; i < 5; i++ {
			expected.Add(testTask{Producer: p, Index: i})
		}
	}
	assert.True(t, expected.Equal(consumed))
}

func TestRun_NoLoss(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := DefaultConfiguration()
	cfg.Producers = 8
	cfg.Consumers = 5
	cfg.TasksPerProducer = 250
	cfg.ProductionDelay = 0
	cfg.ProcessingDelay = 0
	consumed := mapset.NewSet[testTask]()
	duplicates := atomic.NewInt32(0)
	report, err := Run(context.Background(), cfg, logstest.NewNullTestLogger(), generateTestTask, func(_ context.Context, task testTask) error {
		if !consumed.Add(task) {
			duplicates.Inc()
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2000, report.Produced)
	assert.Equal(t, 2000, report.Consumed)
	assert.Equal(t, 2000, consumed.Cardinality())
	assert.Zero(t, duplicates.Load())
	total := 0
	for _, c := range report.ConsumedPerConsumer {
		total += c
	}
	assert.Equal(t, 2000, total)
}

func TestRun_WithoutProducers(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := fastConfiguration()
	cfg.Producers = 0
	report, err := Run(context.Background(), cfg, logstest.NewNullTestLogger(), generateTestTask, ignoreTask[testTask])
	require.NoError(t, err)
	assert.Zero(t, report.Consumed)
	assert.Equal(t, queue.Closed, report.QueueState)
}

func TestRun_ProcessingFailures(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := fastConfiguration()
	report, err := Run(context.Background(), cfg, logstest.NewNullTestLogger(), generateTestTask, func(_ context.Context, task testTask) error {
		if task.Index == 0 {
			return commonerrors.ErrUnexpected
		}
		return nil
	})
	errortest.AssertError(t, err, commonerrors.ErrUnexpected)
	assert.Equal(t, 10, report.Produced)
	assert.Equal(t, 8, report.Consumed)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, queue.Closed, report.QueueState)
}

func TestRun_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := fastConfiguration()
	cfg.TasksPerProducer = 100000
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	report, err := Run(ctx, cfg, logstest.NewNullTestLogger(), generateTestTask, ignoreTask[testTask])
	errortest.AssertError(t, err, commonerrors.ErrTimeout, commonerrors.ErrCancelled)
	require.NotNil(t, report)
	assert.Less(t, report.Produced, 2*cfg.TasksPerProducer)
	assert.NotEqual(t, queue.Open, report.QueueState)
	assert.Equal(t, []ConsumerState{Terminated, Terminated, Terminated}, report.ConsumerStates)
}

func TestRunWithQueue_ClosedQueue(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	q := mocks.NewMockIBlockingQueue[testTask](ctrl)
	q.EXPECT().Enqueue(gomock.Any()).Return(commonerrors.New(commonerrors.ErrClosed, "queue is Closed")).Times(2)
	q.EXPECT().DequeueWithContext(gomock.Any()).Return(testTask{}, false, nil).Times(3)
	q.EXPECT().Shutdown().MinTimes(1)
	q.EXPECT().State().Return(queue.Closed)
	q.EXPECT().Len().Return(0)

	report, err := RunWithQueue(context.Background(), q, fastConfiguration(), logstest.NewNullTestLogger(), generateTestTask, ignoreTask[testTask])
	errortest.AssertError(t, err, commonerrors.ErrClosed)
	assert.Zero(t, report.Produced)
	assert.Zero(t, report.Consumed)
}

func TestRun_Errors(t *testing.T) {
	_, err := Run[testTask](context.Background(), nil, logstest.NewNullTestLogger(), generateTestTask, ignoreTask[testTask])
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	_, err = Run[testTask](context.Background(), DefaultConfiguration(), logstest.NewNullTestLogger(), nil, ignoreTask[testTask])
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	_, err = RunWithQueue[testTask](context.Background(), nil, DefaultConfiguration(), logstest.NewNullTestLogger(), generateTestTask, ignoreTask[testTask])
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	cfg := DefaultConfiguration()
	cfg.Consumers = 0
	_, err = Run(context.Background(), cfg, logstest.NewNullTestLogger(), generateTestTask, ignoreTask[testTask])
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}
