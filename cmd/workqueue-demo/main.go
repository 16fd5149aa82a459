/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Command workqueue-demo runs producers and consumers sharing a closeable queue and reports what was processed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-workqueue/commonerrors"
	"github.com/ARM-software/golang-workqueue/config"
	"github.com/ARM-software/golang-workqueue/logs"
	"github.com/ARM-software/golang-workqueue/parallelisation"
	"github.com/ARM-software/golang-workqueue/pipeline"
)

const (
	envVarPrefix = "workqueue"
	loggerSource = "workqueue-demo"
)

type flagBinding struct {
	envVar string
	flag   string
}

var bindings = []flagBinding{
	{"WORKQUEUE_PRODUCERS", "producers"},
	{"WORKQUEUE_CONSUMERS", "consumers"},
	{"WORKQUEUE_TASKS_PER_PRODUCER", "tasks"},
	{"WORKQUEUE_PRODUCTION_DELAY", "production-delay"},
	{"WORKQUEUE_PROCESSING_DELAY", "processing-delay"},
	{"WORKQUEUE_DEQUEUE_TIMEOUT", "dequeue-timeout"},
	{"WORKQUEUE_STOP_ON_PROCESSING_ERROR", "stop-on-error"},
	{"WORKQUEUE_LOGGING_BACKEND", "log-backend"},
	{"WORKQUEUE_LOGGING_VERBOSITY", "verbosity"},
	{"WORKQUEUE_LOGGING_FILE", "log-file"},
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	report, err := run(ctx, os.Args[1:])
	if report != nil {
		fmt.Printf("produced %v tasks, consumed %v tasks (%v failed) per consumer %v, queue %v\n", report.Produced, report.Consumed, report.Failed, report.ConsumedPerConsumer, report.QueueState)
	}
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1) //nolint:gocritic // the context is cancelled above
	}
}

func newFlagSet() *pflag.FlagSet {
	defaults := pipeline.DefaultConfiguration()
	flagSet := pflag.NewFlagSet(loggerSource, pflag.ContinueOnError)
	flagSet.Int("producers", defaults.Producers, "number of producers")
	flagSet.Int("consumers", defaults.Consumers, "number of consumers")
	flagSet.Int("tasks", defaults.TasksPerProducer, "number of tasks generated by each producer")
	flagSet.Duration("production-delay", defaults.ProductionDelay, "pause of a producer after each task")
	flagSet.Duration("processing-delay", defaults.ProcessingDelay, "pause of a consumer after each task")
	flagSet.Duration("dequeue-timeout", defaults.DequeueTimeout, "maximum wait for a task before checking for cancellation (0 waits forever)")
	flagSet.Bool("stop-on-error", defaults.StopOnProcessingError, "stop a consumer on its first processing failure")
	flagSet.String("log-backend", defaults.Logging.Backend, "logging backend (zap, logrus, hclog, std, stdlog, json, file, none)")
	flagSet.Int("verbosity", defaults.Logging.Verbosity, "logging verbosity")
	flagSet.String("log-file", defaults.Logging.File, "log file when the file backend is used")
	return flagSet
}

func loadConfiguration(args []string) (cfg *pipeline.Configuration, err error) {
	flagSet := newFlagSet()
	err = flagSet.Parse(args)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid arguments")
		return
	}
	session := viper.New()
	for i := range bindings {
		err = config.BindFlagToEnv(session, envVarPrefix, bindings[i].envVar, flagSet.Lookup(bindings[i].flag))
		if err != nil {
			return
		}
	}
	cfg = &pipeline.Configuration{}
	err = config.LoadFromViper(session, envVarPrefix, cfg, pipeline.DefaultConfiguration())
	return
}

func run(ctx context.Context, args []string) (report *pipeline.Report, err error) {
	cfg, err := loadConfiguration(args)
	if err != nil {
		return
	}
	logger, closer, err := logs.NewLogger(&cfg.Logging, loggerSource)
	if err != nil {
		return
	}
	defer func() { _ = parallelisation.CloseAllSequentially(closer) }()

	report, err = pipeline.Run(ctx, cfg, logger,
		func(_ context.Context, _ int, index int) (int, error) {
			return index, nil
		},
		func(_ context.Context, _ int) error {
			return nil
		})
	// An interrupted demo stops early and still reports what was done.
	err = commonerrors.Ignore(err, commonerrors.ErrCancelled)
	return
}
