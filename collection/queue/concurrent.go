/*
 * Copyright (C) 2020-2025 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	"context"
	"iter"
	"slices"
	"sync"

	"github.com/sasha-s/go-deadlock"

	"github.com/ARM-software/golang-workqueue/commonerrors"
)

var _ IBlockingQueue[int] = &ConcurrentQueue[int]{}

// ConcurrentQueue is an unbounded FIFO which can be shared by any number of producers and consumers.
//
// Enqueue never waits. Dequeue waits until an element is available or the queue is closed.
// Shutdown stops the queue from accepting elements: elements already queued are still handed out, each to exactly
// one caller, and once the last one has been removed the queue is Closed and any waiting Dequeue returns with ok false.
//
// The zero value is an open empty queue. A ConcurrentQueue must not be copied after first use.
type ConcurrentQueue[T any] struct {
	mu deadlock.Mutex
	// notEmpty is signalled once per element enqueued and broadcast on state change.
	notEmpty *sync.Cond
	// closed is broadcast when the queue becomes Closed.
	closed *sync.Cond
	items  IQueue[T]
	state  State
}

// NewConcurrentQueue returns an open, empty, thread safe queue.
func NewConcurrentQueue[T any]() *ConcurrentQueue[T] {
	q := &ConcurrentQueue[T]{items: NewQueue[T]()}
	q.notEmpty = sync.NewCond(&q.mu)
	q.closed = sync.NewCond(&q.mu)
	return q
}

// lazyInit must be called whilst holding the lock.
func (q *ConcurrentQueue[T]) lazyInit() {
	if q.items == nil {
		q.items = NewQueue[T]()
	}
	if q.notEmpty == nil {
		q.notEmpty = sync.NewCond(&q.mu)
	}
	if q.closed == nil {
		q.closed = sync.NewCond(&q.mu)
	}
}

func (q *ConcurrentQueue[T]) mustBeDefined() {
	if q == nil {
		panic(commonerrors.UndefinedVariable("concurrent queue"))
	}
}

// Enqueue appends values to the tail of the queue. Values passed in one call are queued contiguously.
// If the queue has been shut down, nothing is queued and an error matching commonerrors.ErrClosed is returned.
func (q *ConcurrentQueue[T]) Enqueue(values ...T) error {
	return q.EnqueueSequence(slices.Values(values))
}

// EnqueueSequence is similar to Enqueue. The sequence is consumed whilst holding the queue lock and so must not
// call back into the queue.
func (q *ConcurrentQueue[T]) EnqueueSequence(seq iter.Seq[T]) error {
	if q == nil {
		return commonerrors.UndefinedVariable("concurrent queue")
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.lazyInit()
	if !q.state.AcceptsElements() {
		return commonerrors.Newf(commonerrors.ErrClosed, "queue is %v and no longer accepts elements", q.state)
	}
	if seq == nil {
		return nil
	}
	for v := range seq {
		q.items.Enqueue(v)
		q.notEmpty.Signal()
	}
	return nil
}

// Dequeue removes and returns the element at the head of the queue. If the queue is empty, it waits until an element
// is enqueued or the queue is closed. ok is false only when the queue is closed.
func (q *ConcurrentQueue[T]) Dequeue() (element T, ok bool) {
	q.mustBeDefined()
	q.mu.Lock()
	defer q.mu.Unlock()
	q.lazyInit()
	for q.items.IsEmpty() && !q.state.IsTerminal() {
		q.notEmpty.Wait()
	}
	return q.pop()
}

// DequeueWithContext is similar to Dequeue but gives up waiting when the context is done, in which case an error
// matching commonerrors.ErrTimeout or commonerrors.ErrCancelled is returned. An element already available is
// always returned in priority.
func (q *ConcurrentQueue[T]) DequeueWithContext(ctx context.Context) (element T, ok bool, err error) {
	q.mustBeDefined()
	q.mu.Lock()
	defer q.mu.Unlock()
	q.lazyInit()
	if q.items.IsEmpty() && !q.state.IsTerminal() {
		stop := context.AfterFunc(ctx, func() {
			q.mu.Lock()
			defer q.mu.Unlock()
			q.notEmpty.Broadcast()
		})
		defer stop()
	}
	for q.items.IsEmpty() && !q.state.IsTerminal() {
		err = commonerrors.ErrFromContext(ctx)
		if err != nil {
			return
		}
		q.notEmpty.Wait()
	}
	element, ok = q.pop()
	return
}

// TryDequeue removes and returns the element at the head of the queue without waiting. ok is false if the queue is
// empty, whether it is closed or not.
func (q *ConcurrentQueue[T]) TryDequeue() (element T, ok bool) {
	q.mustBeDefined()
	q.mu.Lock()
	defer q.mu.Unlock()
	q.lazyInit()
	return q.pop()
}

// Peek returns the element at the head of the queue without removing it.
func (q *ConcurrentQueue[T]) Peek() (element T, ok bool) {
	q.mustBeDefined()
	q.mu.Lock()
	defer q.mu.Unlock()
	q.lazyInit()
	return q.items.Peek()
}

// Values returns an iterator removing the elements currently in the queue in FIFO order. It does not wait for new
// elements and stops as soon as the queue is empty.
func (q *ConcurrentQueue[T]) Values() iter.Seq[T] {
	q.mustBeDefined()
	return func(yield func(T) bool) {
		for {
			v, ok := q.TryDequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// pop must be called whilst holding the lock.
func (q *ConcurrentQueue[T]) pop() (element T, ok bool) {
	element, ok = q.items.Dequeue()
	if ok && q.state == Draining && q.items.IsEmpty() {
		q.markClosed()
	}
	return
}

// markClosed must be called whilst holding the lock.
func (q *ConcurrentQueue[T]) markClosed() {
	q.state = Closed
	q.notEmpty.Broadcast()
	q.closed.Broadcast()
}

// Len returns the number of elements currently queued.
func (q *ConcurrentQueue[T]) Len() int {
	q.mustBeDefined()
	q.mu.Lock()
	defer q.mu.Unlock()
	q.lazyInit()
	return q.items.Len()
}

// IsEmpty states whether the queue currently holds no element.
func (q *ConcurrentQueue[T]) IsEmpty() bool {
	q.mustBeDefined()
	q.mu.Lock()
	defer q.mu.Unlock()
	q.lazyInit()
	return q.items.IsEmpty()
}

// State returns the lifecycle state of the queue.
func (q *ConcurrentQueue[T]) State() State {
	q.mustBeDefined()
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Shutdown stops the queue from accepting elements and wakes every waiting consumer. Calling it more than once has
// no further effect.
func (q *ConcurrentQueue[T]) Shutdown() {
	q.mustBeDefined()
	q.mu.Lock()
	defer q.mu.Unlock()
	q.lazyInit()
	if q.state != Open {
		return
	}
	if q.items.IsEmpty() {
		q.markClosed()
		return
	}
	q.state = Draining
	q.notEmpty.Broadcast()
}

// Close is the io.Closer form of Shutdown.
func (q *ConcurrentQueue[T]) Close() error {
	if q == nil {
		return commonerrors.UndefinedVariable("concurrent queue")
	}
	q.Shutdown()
	return nil
}

// WaitUntilClosed waits until the queue has been shut down and all its elements have been dequeued.
func (q *ConcurrentQueue[T]) WaitUntilClosed(ctx context.Context) (err error) {
	if q == nil {
		return commonerrors.UndefinedVariable("concurrent queue")
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.lazyInit()
	if !q.state.IsTerminal() {
		stop := context.AfterFunc(ctx, func() {
			q.mu.Lock()
			defer q.mu.Unlock()
			q.closed.Broadcast()
		})
		defer stop()
	}
	for !q.state.IsTerminal() {
		err = commonerrors.ErrFromContext(ctx)
		if err != nil {
			return
		}
		q.closed.Wait()
	}
	return
}
