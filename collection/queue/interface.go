/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	"context"
	"io"
	"iter"
)

//go:generate go tool mockgen -destination=../../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/golang-workqueue/collection/$GOPACKAGE IBlockingQueue

// IQueue specifies the behaviour of a first-in, first-out (FIFO) collection.
// It is inspired by the work of https://github.com/hayageek/threadsafe/ and
// https://github.com/golang-collections/collections.
type IQueue[T any] interface {
	// Enqueue adds elements to the queue.
	Enqueue(value ...T)
	// EnqueueSequence adds a sequence of elements to the queue.
	EnqueueSequence(value iter.Seq[T])
	// Dequeue removes and returns an element from the queue. It returns ok true if the queue is not empty.
	Dequeue() (element T, ok bool)
	// Peek returns the element at the front of the queue without removing it. It returns ok true if the queue is not empty.
	Peek() (element T, ok bool)
	// IsEmpty states whether the queue is empty.
	IsEmpty() bool
	// Clear removes all elements from the queue.
	Clear()
	// Values returns all the elements in the queue. The queue will be empty as a result.
	Values() iter.Seq[T]
	// Len returns the number of elements in the queue.
	Len() int
}

// IBlockingQueue specifies a FIFO shared by any number of producers and consumers which can be shut down.
// Once shut down, no more elements are accepted but the ones already queued are still handed out.
type IBlockingQueue[T any] interface {
	io.Closer
	// Enqueue adds elements to the tail of the queue. It fails with commonerrors.ErrClosed once the queue has been shut down.
	Enqueue(value ...T) error
	// EnqueueSequence is similar to Enqueue but for a sequence.
	EnqueueSequence(value iter.Seq[T]) error
	// Dequeue removes and returns the element at the head of the queue, waiting for one if necessary.
	// ok is false only when the queue is closed i.e. shut down and empty.
	Dequeue() (element T, ok bool)
	// DequeueWithContext is similar to Dequeue but stops waiting when the context is done. In that case, an error is returned.
	DequeueWithContext(ctx context.Context) (element T, ok bool, err error)
	// TryDequeue removes and returns the element at the head of the queue if any, without waiting.
	TryDequeue() (element T, ok bool)
	// Peek returns the element at the head of the queue without removing it.
	Peek() (element T, ok bool)
	// Values removes and returns the elements currently queued, without waiting for new ones.
	Values() iter.Seq[T]
	// Len returns the number of elements in the queue.
	Len() int
	// IsEmpty states whether the queue is empty.
	IsEmpty() bool
	// Shutdown stops the queue from accepting elements and releases any consumer waiting on an empty queue.
	Shutdown()
	// State returns the lifecycle state of the queue.
	State() State
	// WaitUntilClosed waits until the queue has been shut down and emptied.
	WaitUntilClosed(ctx context.Context) error
}
