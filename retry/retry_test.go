/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package retry

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

func failingFunction(failures int, failure error) (func() error, *atomic.Int32) {
	calls := atomic.NewInt32(0)
	return func() error {
		if int(calls.Inc()) <= failures {
			return failure
		}
		return nil
	}, calls
}

func onUnexpected(err error) bool {
	return commonerrors.Any(err, commonerrors.ErrUnexpected)
}

func TestRetryIf(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger, hook := logstest.NewRecordingTestLogger()
	policy := DefaultBasicRetryPolicyConfiguration()
	fn, calls := failingFunction(2, commonerrors.ErrUnexpected)
	err := RetryIf(context.Background(), logger, policy, fn, faker.Sentence(), onUnexpected)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Len(t, hook.AllEntries(), 2)
}

func TestRetryIfGivesUp(t *testing.T) {
	defer goleak.VerifyNone(t)
	policy := DefaultBasicRetryPolicyConfiguration()
	fn, calls := failingFunction(100, commonerrors.ErrUnexpected)
	err := RetryIf(context.Background(), logstest.NewNullTestLogger(), policy, fn, faker.Sentence(), onUnexpected)
	errortest.AssertError(t, err, commonerrors.ErrUnexpected)
	assert.Equal(t, int32(policy.RetryMax+1), calls.Load())
}

func TestRetryIfNotRetriable(t *testing.T) {
	defer goleak.VerifyNone(t)
	policy := DefaultBasicRetryPolicyConfiguration()
	fn, calls := failingFunction(100, commonerrors.ErrClosed)
	err := RetryIf(context.Background(), logstest.NewNullTestLogger(), policy, fn, faker.Sentence(), onUnexpected)
	errortest.AssertError(t, err, commonerrors.ErrClosed)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetryDisabled(t *testing.T) {
	defer goleak.VerifyNone(t)
	fn, calls := failingFunction(100, commonerrors.ErrUnexpected)
	err := RetryIf(context.Background(), logstest.NewNullTestLogger(), DefaultNoRetryPolicyConfiguration(), fn, faker.Sentence(), onUnexpected)
	errortest.AssertError(t, err, commonerrors.ErrUnexpected)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetryWithBackoff(t *testing.T) {
	defer goleak.VerifyNone(t)
	policy := DefaultExponentialBackoffRetryPolicyConfiguration()
	policy.RetryWaitMin = time.Millisecond
	policy.RetryWaitMax = 10 * time.Millisecond
	fn, calls := failingFunction(3, commonerrors.ErrUnexpected)
	err := RetryIf(context.Background(), logstest.NewNullTestLogger(), policy, fn, faker.Sentence(), nil)
	require.NoError(t, err)
	assert.Equal(t, int32(4), calls.Load())
}

func TestRetryCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fn, calls := failingFunction(100, commonerrors.ErrUnexpected)
	err := RetryIf(ctx, logstest.NewNullTestLogger(), DefaultBasicRetryPolicyConfiguration(), fn, faker.Sentence(), onUnexpected)
	errortest.AssertError(t, err, commonerrors.ErrCancelled)
	assert.Zero(t, calls.Load())
}

func TestRetryUndefined(t *testing.T) {
	err := RetryIf(context.Background(), logstest.NewNullTestLogger(), nil, func() error { return nil }, faker.Sentence(), nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	err = RetryIf(context.Background(), logstest.NewNullTestLogger(), DefaultBasicRetryPolicyConfiguration(), nil, faker.Sentence(), nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
}
