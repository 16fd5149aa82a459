/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package pipeline

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"go.uber.org/atomic"

	"github.com/ARM-software/golang-workqueue/collection/queue"
	"github.com/ARM-software/golang-workqueue/commonerrors"
	"github.com/ARM-software/golang-workqueue/parallelisation"
)

// ConsumerState is the position of a consumer in its processing loop.
//
//go:generate go run github.com/dmarkham/enumer -type=ConsumerState -text -json -yaml
type ConsumerState int32

const (
	WaitingForItem ConsumerState = iota
	Processing
	Terminated
)

// ProcessFunc processes a task taken from the queue.
type ProcessFunc[T any] func(ctx context.Context, task T) error

// Consumer takes tasks from a queue and processes them until the queue is closed.
type Consumer[T any] struct {
	id        int
	queue     queue.IBlockingQueue[T]
	process   ProcessFunc[T]
	logger    logr.Logger
	options   RoleOptions
	state     *atomic.Int32
	processed *atomic.Int64
	failed    *atomic.Int64
}

// NewConsumer returns a consumer processing tasks from `q` with `process`.
func NewConsumer[T any](id int, q queue.IBlockingQueue[T], process ProcessFunc[T], logger logr.Logger, options ...RoleOption) (*Consumer[T], error) {
	if q == nil {
		return nil, commonerrors.UndefinedVariable("queue")
	}
	if process == nil {
		return nil, commonerrors.UndefinedVariable("task processor")
	}
	return &Consumer[T]{
		id:        id,
		queue:     q,
		process:   process,
		logger:    logger.WithValues("consumer", id),
		options:   *WithRoleOptions(options...),
		state:     atomic.NewInt32(int32(WaitingForItem)),
		processed: atomic.NewInt64(0),
		failed:    atomic.NewInt64(0),
	}, nil
}

// Run processes tasks until the queue is closed, which is a normal termination. It returns early if the context is
// cancelled, or on the first processing failure when StopOnProcessingError is set. Otherwise, processing failures are
// collated and returned once the queue is closed.
func (c *Consumer[T]) Run(ctx context.Context) (err error) {
	defer c.state.Store(int32(Terminated))
	var failures []error
	for {
		c.state.Store(int32(WaitingForItem))
		task, ok, subErr := c.next(ctx)
		if subErr != nil {
			err = commonerrors.Join(append(failures, subErr)...)
			return
		}
		if !ok {
			c.logger.V(1).Info("queue closed", "processed", c.Processed())
			err = commonerrors.Join(failures...)
			return
		}
		c.state.Store(int32(Processing))
		subErr = c.process(ctx, task)
		if subErr != nil {
			c.failed.Inc()
			c.logger.Error(subErr, "could not process task", "task", task)
			if c.options.stopOnProcessingError {
				err = commonerrors.Join(append(failures, subErr)...)
				return
			}
			failures = append(failures, subErr)
		} else {
			c.processed.Inc()
			c.logger.Info(fmt.Sprintf("consumer %v processed task %v", c.id, task), "task", task)
		}
		parallelisation.SleepWithContext(ctx, c.options.delay)
	}
}

// next waits for the following task. With a dequeue timeout, an expired wait is not an error: the consumer checks
// its own context and waits again.
func (c *Consumer[T]) next(ctx context.Context) (task T, ok bool, err error) {
	if c.options.dequeueTimeout <= 0 {
		return c.queue.DequeueWithContext(ctx)
	}
	for {
		err = parallelisation.DetermineContextError(ctx)
		if err != nil {
			return
		}
		dequeueCtx, cancel := context.WithTimeout(ctx, c.options.dequeueTimeout)
		task, ok, err = c.queue.DequeueWithContext(dequeueCtx)
		cancel()
		if err == nil || ctx.Err() != nil || !commonerrors.Any(err, commonerrors.ErrTimeout) {
			return
		}
		c.logger.V(1).Info("no task available yet", "timeout", c.options.dequeueTimeout)
	}
}

// ID returns the consumer identifier.
func (c *Consumer[T]) ID() int {
	return c.id
}

// State returns where the consumer is in its processing loop.
func (c *Consumer[T]) State() ConsumerState {
	return ConsumerState(c.state.Load())
}

// Processed returns the number of tasks successfully processed so far.
func (c *Consumer[T]) Processed() int {
	return int(c.processed.Load())
}

// Failed returns the number of tasks which could not be processed.
func (c *Consumer[T]) Failed() int {
	return int(c.failed.Load())
}
