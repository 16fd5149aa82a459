/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package pipeline

import (
	"time"

	"github.com/ARM-software/golang-workqueue/retry"
)

// RoleOptions tune how a producer or a consumer behaves.
type RoleOptions struct {
	delay                 time.Duration
	dequeueTimeout        time.Duration
	stopOnProcessingError bool
	retryPolicy           *retry.RetryPolicyConfiguration
}

func (o *RoleOptions) Default() *RoleOptions {
	o.delay = 0
	o.dequeueTimeout = 0
	o.stopOnProcessingError = false
	o.retryPolicy = retry.DefaultNoRetryPolicyConfiguration()
	return o
}

type RoleOption func(*RoleOptions) *RoleOptions

// WithDelay makes a producer wait after each task it produced, or a consumer after each task it processed.
func WithDelay(delay time.Duration) RoleOption {
	return func(o *RoleOptions) *RoleOptions {
		if o == nil {
			o = DefaultRoleOptions()
		}
		o.delay = delay
		return o
	}
}

// WithDequeueTimeout bounds how long a consumer waits for a task before checking again whether it should stop.
func WithDequeueTimeout(timeout time.Duration) RoleOption {
	return func(o *RoleOptions) *RoleOptions {
		if o == nil {
			o = DefaultRoleOptions()
		}
		o.dequeueTimeout = timeout
		return o
	}
}

// StopOnProcessingError terminates a consumer as soon as a task could not be processed.
var StopOnProcessingError RoleOption = func(o *RoleOptions) *RoleOptions {
	if o == nil {
		o = DefaultRoleOptions()
	}
	o.stopOnProcessingError = true
	return o
}

// WithRetryPolicy defines how a producer retries generating a task which failed.
func WithRetryPolicy(policy *retry.RetryPolicyConfiguration) RoleOption {
	return func(o *RoleOptions) *RoleOptions {
		if o == nil {
			o = DefaultRoleOptions()
		}
		if policy != nil {
			o.retryPolicy = policy
		}
		return o
	}
}

// WithRoleOptions defines a role configuration.
func WithRoleOptions(option ...RoleOption) (opts *RoleOptions) {
	opts = DefaultRoleOptions()
	for i := range option {
		if option[i] != nil {
			opts = option[i](opts)
		}
	}
	return
}

// DefaultRoleOptions returns the default role configuration: no delay, no retry and no dequeue timeout.
func DefaultRoleOptions() *RoleOptions {
	opts := &RoleOptions{}
	return opts.Default()
}
