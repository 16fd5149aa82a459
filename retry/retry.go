/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package retry retries operations according to a RetryPolicyConfiguration.
package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-workqueue/commonerrors"
)

// RetryIf will retry fn when the value returned from retryConditionFn is true
func RetryIf(ctx context.Context, logger logr.Logger, retryPolicy *RetryPolicyConfiguration, fn func() error, msgOnRetry string, retryConditionFn func(err error) bool) error {
	if retryPolicy == nil {
		return commonerrors.UndefinedVariable("retry policy configuration")
	}
	if fn == nil {
		return commonerrors.UndefinedVariable("function to retry")
	}
	err := commonerrors.ErrFromContext(ctx)
	if err != nil {
		return err
	}
	if !retryPolicy.Enabled {
		return fn()
	}
	if retryConditionFn == nil {
		retryConditionFn = retry.IsRecoverable
	}
	var retryType retry.DelayTypeFunc
	switch {
	case retryPolicy.LinearBackOffEnabled:
		retryType = retry.CombineDelay(retry.FixedDelay, retry.RandomDelay)
	case retryPolicy.BackOffEnabled:
		retryType = retry.BackOffDelay
	default:
		retryType = retry.FixedDelay
	}

	return commonerrors.ConvertContextError(
		retry.Do(
			fn,
			retry.OnRetry(func(n uint, err error) {
				logger.Error(err, fmt.Sprintf("%v (attempt #%v)", msgOnRetry, n+1), "attempt", n+1)
			}),
			retry.Delay(retryPolicy.RetryWaitMin),
			retry.MaxDelay(retryPolicy.RetryWaitMax),
			retry.MaxJitter(25*time.Millisecond),
			retry.DelayType(retryType),
			// a zero number of attempts means retrying forever.
			retry.Attempts(uint(max(retryPolicy.RetryMax, 0))+1), //nolint:gosec // the value is not negative
			retry.RetryIf(retryConditionFn),
			retry.LastErrorOnly(true),
			retry.Context(ctx),
		),
	)
}
