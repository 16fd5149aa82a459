/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package parallelisation

import (
	"context"

	"github.com/sasha-s/go-deadlock"
	"golang.org/x/sync/errgroup"

	"github.com/ARM-software/golang-workqueue/commonerrors"
)

// StoreOptions describes how the elements of an ExecutionGroup are run.
type StoreOptions struct {
	sequential bool
	joinErrors bool
	workers    int
}

func (o *StoreOptions) Default() *StoreOptions {
	o.sequential = false
	o.joinErrors = false
	o.workers = 0
	return o
}

// Options converts the configuration back into a list of options.
func (o *StoreOptions) Options() []StoreOption {
	return []StoreOption{
		func(opts *StoreOptions) *StoreOptions {
			if opts == nil {
				opts = DefaultOptions()
			}
			if o == nil {
				return opts
			}
			opts.sequential = o.sequential || opts.sequential
			opts.joinErrors = o.joinErrors || opts.joinErrors
			opts.workers = max(o.workers, opts.workers)
			return opts
		},
	}
}

type StoreOption func(*StoreOptions) *StoreOptions

// JoinErrors returns every error raised by the group rather than the first one.
var JoinErrors StoreOption = func(o *StoreOptions) *StoreOptions {
	if o == nil {
		o = DefaultOptions()
	}
	o.joinErrors = true
	return o
}

// Parallel runs all elements at the same time.
var Parallel StoreOption = func(o *StoreOptions) *StoreOptions {
	if o == nil {
		o = DefaultOptions()
	}
	o.sequential = false
	return o
}

// Sequential runs elements one after the other, in registration order.
var Sequential StoreOption = func(o *StoreOptions) *StoreOptions {
	if o == nil {
		o = DefaultOptions()
	}
	o.sequential = true
	o.workers = 0
	return o
}

// Workers bounds the number of elements running at the same time.
func Workers(workers int) StoreOption {
	return func(o *StoreOptions) *StoreOptions {
		if o == nil {
			o = DefaultOptions()
		}
		o.workers = workers
		o.sequential = false
		return o
	}
}

// WithOptions defines a store configuration.
func WithOptions(option ...StoreOption) (opts *StoreOptions) {
	opts = DefaultOptions()
	for i := range option {
		if option[i] != nil {
			opts = option[i](opts)
		}
	}
	return
}

// DefaultOptions returns the default store configuration: elements run in parallel and the first error is returned.
func DefaultOptions() *StoreOptions {
	opts := &StoreOptions{}
	return opts.Default()
}

type ExecuteFunc[T any] func(ctx context.Context, element T) error

// ExecutionGroup runs a function over each of its registered elements.
// Every element is run even if another one failed; only cancellation stops the group early.
type ExecutionGroup[T any] struct {
	mu       deadlock.RWMutex
	elements []T
	execute  ExecuteFunc[T]
	options  StoreOptions
}

// NewExecutionGroup returns a group calling executeFunc on each registered element according to the options.
func NewExecutionGroup[T any](executeFunc ExecuteFunc[T], options ...StoreOption) *ExecutionGroup[T] {
	return &ExecutionGroup[T]{
		execute: executeFunc,
		options: *WithOptions(options...),
	}
}

// RegisterFunction adds elements to the group.
func (s *ExecutionGroup[T]) RegisterFunction(element ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elements = append(s.elements, element...)
}

func (s *ExecutionGroup[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.elements)
}

// Execute runs all the elements of the group and waits for them to return.
func (s *ExecutionGroup[T]) Execute(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.execute == nil {
		return commonerrors.New(commonerrors.ErrUndefined, "the group was not initialised correctly")
	}
	var errs []error
	if s.options.sequential {
		errs = s.runSequentially(ctx)
	} else {
		errs = s.runConcurrently(ctx)
	}
	if s.options.joinErrors {
		return commonerrors.Join(errs...)
	}
	for i := range errs {
		if errs[i] != nil {
			return errs[i]
		}
	}
	return nil
}

func (s *ExecutionGroup[T]) runConcurrently(ctx context.Context) []error {
	errs := make([]error, len(s.elements))
	var g errgroup.Group
	if s.options.workers > 0 {
		g.SetLimit(s.options.workers)
	}
	for i := range s.elements {
		g.Go(func() error {
			errs[i] = s.run(ctx, s.elements[i])
			return nil
		})
	}
	_ = g.Wait()
	return errs
}

func (s *ExecutionGroup[T]) runSequentially(ctx context.Context) []error {
	errs := make([]error, 0, len(s.elements))
	for i := range s.elements {
		err := s.run(ctx, s.elements[i])
		if commonerrors.Any(err, commonerrors.ErrTimeout, commonerrors.ErrCancelled) {
			return append(errs, err)
		}
		errs = append(errs, err)
	}
	return errs
}

func (s *ExecutionGroup[T]) run(ctx context.Context, element T) error {
	err := DetermineContextError(ctx)
	if err != nil {
		return err
	}
	return s.execute(ctx, element)
}
