/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package pipeline runs producers and consumers sharing a closeable queue.
package pipeline

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-workqueue/collection/queue"
	"github.com/ARM-software/golang-workqueue/commonerrors"
	"github.com/ARM-software/golang-workqueue/parallelisation"
)

// Report summarises a run.
type Report struct {
	// Produced is the total number of tasks enqueued.
	Produced int
	// Consumed is the total number of tasks successfully processed.
	Consumed int
	// Failed is the total number of tasks which could not be processed.
	Failed int
	// ProducedPerProducer lists the number of tasks enqueued by each producer, indexed by producer identifier.
	ProducedPerProducer []int
	// ConsumedPerConsumer lists the number of tasks processed by each consumer, indexed by consumer identifier.
	ConsumedPerConsumer []int
	// ConsumerStates lists the state each consumer ended in.
	ConsumerStates []ConsumerState
	// QueueState is the state of the queue at the end of the run.
	QueueState queue.State
	// Remaining is the number of tasks left in the queue at the end of the run.
	Remaining int
}

// Run creates a queue and runs the producers and consumers described by cfg against it until every task was
// processed or the context is cancelled. The queue is shut down when the last producer finishes; consumers stop once
// it is closed.
func Run[T any](ctx context.Context, cfg *Configuration, logger logr.Logger, generate GenerateFunc[T], process ProcessFunc[T]) (*Report, error) {
	return RunWithQueue(ctx, queue.NewConcurrentQueue[T](), cfg, logger, generate, process)
}

// RunWithQueue is similar to Run but uses the queue provided.
func RunWithQueue[T any](ctx context.Context, q queue.IBlockingQueue[T], cfg *Configuration, logger logr.Logger, generate GenerateFunc[T], process ProcessFunc[T]) (report *Report, err error) {
	if cfg == nil {
		err = commonerrors.UndefinedVariable("pipeline configuration")
		return
	}
	if q == nil {
		err = commonerrors.UndefinedVariable("queue")
		return
	}
	if generate == nil || process == nil {
		err = commonerrors.UndefinedVariable("task generator or processor")
		return
	}
	err = cfg.Validate()
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid pipeline configuration")
		return
	}
	coordinator, err := NewShutdownCoordinator(q, cfg.Producers)
	if err != nil {
		return
	}
	producerOptions, consumerOptions := cfg.RoleOptions()
	roles := make([]parallelisation.ContextualFunc, 0, cfg.Producers+cfg.Consumers)
	producers := make([]*Producer[T], 0, cfg.Producers)
	for i := 0; i < cfg.Producers; i++ {
		producer, subErr := NewProducer(i, q, generate, cfg.TasksPerProducer, coordinator, logger, producerOptions...)
		if subErr != nil {
			err = subErr
			return
		}
		producers = append(producers, producer)
		roles = append(roles, producer.Run)
	}
	consumers := make([]*Consumer[T], 0, cfg.Consumers)
	for i := 0; i < cfg.Consumers; i++ {
		consumer, subErr := NewConsumer(i, q, process, logger, consumerOptions...)
		if subErr != nil {
			err = subErr
			return
		}
		consumers = append(consumers, consumer)
		roles = append(roles, consumer.Run)
	}

	logger.Info("starting", "producers", cfg.Producers, "consumers", cfg.Consumers, "tasks per producer", cfg.TasksPerProducer)
	err = parallelisation.ForEach(ctx, parallelisation.WithOptions(parallelisation.Parallel, parallelisation.JoinErrors), roles...)
	// Roles which never started (e.g. cancellation) did not notify the coordinator.
	q.Shutdown()
	report = newReport(q, producers, consumers)
	logger.Info("done", "produced", report.Produced, "consumed", report.Consumed, "failed", report.Failed, "queue", report.QueueState.String())
	return
}

func newReport[T any](q queue.IBlockingQueue[T], producers []*Producer[T], consumers []*Consumer[T]) *Report {
	report := &Report{
		ProducedPerProducer: make([]int, 0, len(producers)),
		ConsumedPerConsumer: make([]int, 0, len(consumers)),
		ConsumerStates:      make([]ConsumerState, 0, len(consumers)),
		QueueState:          q.State(),
		Remaining:           q.Len(),
	}
	for i := range producers {
		report.Produced += producers[i].Produced()
		report.ProducedPerProducer = append(report.ProducedPerProducer, producers[i].Produced())
	}
	for i := range consumers {
		report.Consumed += consumers[i].Processed()
		report.Failed += consumers[i].Failed()
		report.ConsumedPerConsumer = append(report.ConsumedPerConsumer, consumers[i].Processed())
		report.ConsumerStates = append(report.ConsumerStates, consumers[i].State())
	}
	return report
}
