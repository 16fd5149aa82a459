/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package retry

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-workqueue/config"
)

// RetryPolicyConfiguration describes how a failing operation (e.g. the generation of a task) is retried.
type RetryPolicyConfiguration struct {
	// Enabled specifies whether this retry policy is enabled or not. If not, no retry will be performed.
	Enabled bool `mapstructure:"enabled"`
	// RetryMax represents the maximum number of retries
	RetryMax int `mapstructure:"max_retry"`
	// RetryWaitMin specifies the minimum time to wait between retries.
	RetryWaitMin time.Duration `mapstructure:"wait_min"`
	// RetryWaitMax represents the maximum time to wait (only necessary if backoff is enabled).
	RetryWaitMax time.Duration `mapstructure:"wait_max"`
	// BackOffEnabled states whether backoff must be performed during retries (by default, exponential backoff is performed unless LinearBackoff is enabled).
	BackOffEnabled bool `mapstructure:"backoff_enabled"`
	// LinearBackOffEnabled forces to perform linear backoff instead of exponential backoff provided BackOffEnabled is set to true.
	LinearBackOffEnabled bool `mapstructure:"linear_backoff_enabled"`
}

func (cfg *RetryPolicyConfiguration) Validate() error {
	// Validate Embedded Structs
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}

	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Enabled, validation.Required.When(cfg.BackOffEnabled || cfg.LinearBackOffEnabled)),
		validation.Field(&cfg.RetryMax, validation.Min(0), validation.Required.When(cfg.BackOffEnabled)),
		validation.Field(&cfg.RetryWaitMin, validation.Min(time.Duration(0))),
		validation.Field(&cfg.RetryWaitMax, validation.Required.When(cfg.BackOffEnabled), validation.Min(cfg.RetryWaitMin)),
		validation.Field(&cfg.BackOffEnabled, validation.Required.When(cfg.LinearBackOffEnabled)),
	)
}

// DefaultNoRetryPolicyConfiguration defines a configuration for no retry being performed.
func DefaultNoRetryPolicyConfiguration() *RetryPolicyConfiguration {
	return &RetryPolicyConfiguration{
		Enabled: false,
	}
}

// DefaultBasicRetryPolicyConfiguration defines a configuration for basic retries i.e. retrying straight after a failure for maximum 4 attempts.
func DefaultBasicRetryPolicyConfiguration() *RetryPolicyConfiguration {
	return &RetryPolicyConfiguration{
		Enabled:  true,
		RetryMax: 4,
	}
}

// DefaultExponentialBackoffRetryPolicyConfiguration defines a configuration for retries with exponential backoff.
func DefaultExponentialBackoffRetryPolicyConfiguration() *RetryPolicyConfiguration {
	return &RetryPolicyConfiguration{
		Enabled:        true,
		RetryMax:       4,
		RetryWaitMin:   100 * time.Millisecond,
		RetryWaitMax:   5 * time.Second,
		BackOffEnabled: true,
	}
}

// DefaultLinearBackoffRetryPolicyConfiguration defines a configuration for retries with linear backoff.
func DefaultLinearBackoffRetryPolicyConfiguration() *RetryPolicyConfiguration {
	return &RetryPolicyConfiguration{
		Enabled:              true,
		RetryMax:             4,
		RetryWaitMin:         100 * time.Millisecond,
		RetryWaitMax:         time.Second,
		BackOffEnabled:       true,
		LinearBackOffEnabled: true,
	}
}
