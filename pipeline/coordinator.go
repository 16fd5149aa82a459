/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package pipeline

import (
	"go.uber.org/atomic"

	"github.com/ARM-software/golang-workqueue/commonerrors"
)

// IShutdowner is implemented by anything which can be told that no more work will be submitted.
type IShutdowner interface {
	Shutdown()
}

// ShutdownCoordinator shuts a queue down once every producer registered with it has finished.
type ShutdownCoordinator struct {
	target    IShutdowner
	remaining *atomic.Int64
}

// NewShutdownCoordinator returns a coordinator waiting for `producers` producers to be done before shutting `target` down.
// If there is no producer, `target` is shut down straight away.
func NewShutdownCoordinator(target IShutdowner, producers int) (*ShutdownCoordinator, error) {
	if target == nil {
		return nil, commonerrors.UndefinedVariable("shutdown target")
	}
	if producers < 0 {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "negative number of producers [%v]", producers)
	}
	c := &ShutdownCoordinator{
		target:    target,
		remaining: atomic.NewInt64(int64(producers)),
	}
	if producers == 0 {
		target.Shutdown()
	}
	return c, nil
}

// Done records that a producer has finished. The last producer to call it shuts the target down. Extra calls are ignored.
func (c *ShutdownCoordinator) Done() {
	if c == nil {
		return
	}
	if c.remaining.Dec() == 0 {
		c.target.Shutdown()
	}
}

// Remaining returns the number of producers still running.
func (c *ShutdownCoordinator) Remaining() int {
	if c == nil {
		return 0
	}
	return int(max(c.remaining.Load(), 0))
}
