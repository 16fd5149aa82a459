/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package pipeline

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-workqueue/collection/queue"
	"github.com/ARM-software/golang-workqueue/commonerrors"
	"github.com/ARM-software/golang-workqueue/parallelisation"
)

// WorkerPool is a fixed set of consumers processing the tasks submitted to it.
type WorkerPool[T any] struct {
	queue   *queue.ConcurrentQueue[T]
	workers []*Consumer[T]
	cancel  context.CancelFunc
	done    chan struct{}
	err     error
}

// NewWorkerPool starts `workers` consumers processing submitted tasks with `process`. They stop once the pool is
// shut down and every submitted task has been processed, or when the context is cancelled.
func NewWorkerPool[T any](ctx context.Context, workers int, process ProcessFunc[T], logger logr.Logger, options ...RoleOption) (pool *WorkerPool[T], err error) {
	if workers <= 0 {
		err = commonerrors.Newf(commonerrors.ErrInvalid, "a worker pool needs at least one worker [%v]", workers)
		return
	}
	q := queue.NewConcurrentQueue[T]()
	roles := make([]parallelisation.ContextualFunc, 0, workers)
	consumers := make([]*Consumer[T], 0, workers)
	for i := 0; i < workers; i++ {
		consumer, subErr := NewConsumer(i, q, process, logger.WithName("pool"), options...)
		if subErr != nil {
			err = subErr
			return
		}
		consumers = append(consumers, consumer)
		roles = append(roles, consumer.Run)
	}
	poolCtx, cancel := context.WithCancel(ctx)
	pool = &WorkerPool[T]{
		queue:   q,
		workers: consumers,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go func() {
		defer close(pool.done)
		defer cancel()
		pool.err = parallelisation.ForEach(poolCtx, parallelisation.WithOptions(parallelisation.Workers(workers), parallelisation.JoinErrors), roles...)
	}()
	return
}

// Submit hands tasks over to the workers. It fails with commonerrors.ErrClosed once the pool has been shut down.
func (p *WorkerPool[T]) Submit(task ...T) error {
	return p.queue.Enqueue(task...)
}

// Pending returns the number of submitted tasks no worker has picked up yet.
func (p *WorkerPool[T]) Pending() int {
	return p.queue.Len()
}

// Processed returns the number of tasks successfully processed by all the workers.
func (p *WorkerPool[T]) Processed() (processed int) {
	for i := range p.workers {
		processed += p.workers[i].Processed()
	}
	return
}

// Wait waits for every worker to stop and returns their errors.
func (p *WorkerPool[T]) Wait() error {
	<-p.done
	return p.err
}

// Shutdown stops accepting tasks and waits for the workers to process the ones already submitted. If the context
// ends first, the workers are cancelled and the context error is returned straight away: the workers may still be
// running at that point, so call Wait afterwards to make sure they have all stopped.
func (p *WorkerPool[T]) Shutdown(ctx context.Context) error {
	p.queue.Shutdown()
	err := parallelisation.WaitWithContext(ctx, p)
	if err != nil && commonerrors.Any(err, commonerrors.ErrTimeout, commonerrors.ErrCancelled) {
		p.cancel()
	}
	return err
}

// Close shuts the pool down and waits for all submitted tasks to be processed.
func (p *WorkerPool[T]) Close() error {
	return p.Shutdown(context.Background())
}
