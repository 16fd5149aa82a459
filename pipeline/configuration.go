/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package pipeline

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-workqueue/config"
	"github.com/ARM-software/golang-workqueue/logs"
	"github.com/ARM-software/golang-workqueue/retry"
)

const (
	DefaultProducers        = 2
	DefaultConsumers        = 3
	DefaultTasksPerProducer = 5
	DefaultProductionDelay  = 100 * time.Millisecond
	DefaultProcessingDelay  = 150 * time.Millisecond
)

// Configuration describes a run of producers and consumers sharing one queue.
type Configuration struct {
	// Producers is the number of producers enqueuing tasks.
	Producers int `mapstructure:"producers"`
	// Consumers is the number of consumers competing for tasks.
	Consumers int `mapstructure:"consumers"`
	// TasksPerProducer is the number of tasks each producer generates.
	TasksPerProducer int `mapstructure:"tasks_per_producer"`
	// ProductionDelay is how long a producer waits after enqueuing a task.
	ProductionDelay time.Duration `mapstructure:"production_delay"`
	// ProcessingDelay is how long a consumer waits after processing a task.
	ProcessingDelay time.Duration `mapstructure:"processing_delay"`
	// DequeueTimeout bounds each wait for a task. Zero means waiting until a task arrives or the queue is closed.
	DequeueTimeout time.Duration `mapstructure:"dequeue_timeout"`
	// StopOnProcessingError terminates a consumer on its first processing failure.
	StopOnProcessingError bool                           `mapstructure:"stop_on_processing_error"`
	Logging               logs.LoggingConfiguration      `mapstructure:"logging"`
	Retry                 retry.RetryPolicyConfiguration `mapstructure:"retry"`
}

func (cfg *Configuration) Validate() error {
	// Validate Embedded Structs
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}

	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Producers, validation.Min(0)),
		validation.Field(&cfg.Consumers, validation.Required, validation.Min(1)),
		validation.Field(&cfg.TasksPerProducer, validation.Min(0)),
		validation.Field(&cfg.ProductionDelay, validation.Min(time.Duration(0))),
		validation.Field(&cfg.ProcessingDelay, validation.Min(time.Duration(0))),
		validation.Field(&cfg.DequeueTimeout, validation.Min(time.Duration(0))),
	)
}

// RoleOptions returns the producer and consumer options corresponding to the configuration.
func (cfg *Configuration) RoleOptions() (producerOptions []RoleOption, consumerOptions []RoleOption) {
	producerOptions = []RoleOption{WithDelay(cfg.ProductionDelay), WithRetryPolicy(&cfg.Retry)}
	consumerOptions = []RoleOption{WithDelay(cfg.ProcessingDelay), WithDequeueTimeout(cfg.DequeueTimeout)}
	if cfg.StopOnProcessingError {
		consumerOptions = append(consumerOptions, StopOnProcessingError)
	}
	return
}

// DefaultConfiguration returns the configuration of the classic demonstration: 2 producers of 5 tasks each and 3 consumers.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Producers:        DefaultProducers,
		Consumers:        DefaultConsumers,
		TasksPerProducer: DefaultTasksPerProducer,
		ProductionDelay:  DefaultProductionDelay,
		ProcessingDelay:  DefaultProcessingDelay,
		Logging:          *logs.DefaultLoggingConfiguration(),
		Retry:            *retry.DefaultNoRetryPolicyConfiguration(),
	}
}
