/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package parallelisation

import (
	"context"
	"io"

	"github.com/ARM-software/golang-workqueue/commonerrors"
)

// CloserStore holds io.Closer objects (queues, log files, worker pools) which are all closed on Close.
type CloserStore struct {
	ExecutionGroup[io.Closer]
}

func (s *CloserStore) RegisterCloser(closerObj ...io.Closer) {
	s.RegisterFunction(closerObj...)
}

func (s *CloserStore) Close() error {
	return s.Execute(context.Background())
}

// NewCloserStoreWithOptions returns a store of io.Closer objects which are all closed on Close() according to the options.
func NewCloserStoreWithOptions(opts ...StoreOption) *CloserStore {
	return &CloserStore{
		ExecutionGroup: *NewExecutionGroup[io.Closer](func(_ context.Context, closerObj io.Closer) error {
			if closerObj == nil {
				return commonerrors.UndefinedVariable("closer object")
			}
			return closerObj.Close()
		}, opts...),
	}
}

// CloseAllSequentially closes the io.Closer implementations one after the other, in the order they were passed.
func CloseAllSequentially(cs ...io.Closer) error {
	group := NewCloserStoreWithOptions(Sequential, JoinErrors)
	group.RegisterCloser(cs...)
	return group.Close()
}
