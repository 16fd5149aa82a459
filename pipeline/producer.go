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
	"github.com/ARM-software/golang-workqueue/retry"
)

// GenerateFunc creates the task number `index` of the producer identified by `producer`.
type GenerateFunc[T any] func(ctx context.Context, producer, index int) (T, error)

// Producer generates a known number of tasks and enqueues them.
type Producer[T any] struct {
	id          int
	count       int
	queue       queue.IBlockingQueue[T]
	generate    GenerateFunc[T]
	coordinator *ShutdownCoordinator
	logger      logr.Logger
	options     RoleOptions
	produced    *atomic.Int64
}

// NewProducer returns a producer enqueuing `count` tasks created by `generate` into `q`. `coordinator` is notified when
// the producer stops and can be nil if shutting down the queue is handled elsewhere.
func NewProducer[T any](id int, q queue.IBlockingQueue[T], generate GenerateFunc[T], count int, coordinator *ShutdownCoordinator, logger logr.Logger, options ...RoleOption) (*Producer[T], error) {
	if q == nil {
		return nil, commonerrors.UndefinedVariable("queue")
	}
	if generate == nil {
		return nil, commonerrors.UndefinedVariable("task generator")
	}
	if count < 0 {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "negative number of tasks [%v]", count)
	}
	return &Producer[T]{
		id:          id,
		count:       count,
		queue:       q,
		generate:    generate,
		coordinator: coordinator,
		logger:      logger.WithValues("producer", id),
		options:     *WithRoleOptions(options...),
		produced:    atomic.NewInt64(0),
	}, nil
}

// Run produces all the tasks. It stops early if the context is cancelled, a task could not be generated or the queue
// no longer accepts tasks, in which case the reason is returned. The coordinator is notified in every case.
func (p *Producer[T]) Run(ctx context.Context) (err error) {
	defer p.coordinator.Done()
	for i := 0; i < p.count; i++ {
		err = parallelisation.DetermineContextError(ctx)
		if err != nil {
			return
		}
		var task T
		task, err = p.generateTask(ctx, i)
		if err != nil {
			p.logger.Error(err, "could not generate task", "task", i)
			return
		}
		err = p.queue.Enqueue(task)
		if err != nil {
			p.logger.Error(err, "could not enqueue task", "task", i)
			if commonerrors.Any(err, commonerrors.ErrClosed) {
				err = commonerrors.WrapErrorf(commonerrors.ErrClosed, err, "producer %v stopped before task %v", p.id, i)
			}
			return
		}
		p.produced.Inc()
		p.logger.Info(fmt.Sprintf("producer %v produced task %v", p.id, i), "task", task)
		parallelisation.SleepWithContext(ctx, p.options.delay)
	}
	return
}

func (p *Producer[T]) generateTask(ctx context.Context, index int) (task T, err error) {
	err = retry.RetryIf(ctx, p.logger, p.options.retryPolicy, func() (subErr error) {
		task, subErr = p.generate(ctx, p.id, index)
		return
	}, fmt.Sprintf("producer %v failed generating task %v", p.id, index), isRetriable)
	return
}

// ID returns the producer identifier.
func (p *Producer[T]) ID() int {
	return p.id
}

// Produced returns the number of tasks successfully enqueued so far.
func (p *Producer[T]) Produced() int {
	return int(p.produced.Load())
}

func isRetriable(err error) bool {
	return commonerrors.None(err, commonerrors.ErrClosed, commonerrors.ErrUndefined, commonerrors.ErrInvalid, commonerrors.ErrCancelled, commonerrors.ErrTimeout)
}
