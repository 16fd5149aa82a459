package parallelisation

import (
	"context"
	"time"
)

type IWaiter interface {
	Wait() error
}

// WaitWithContext waits for `waiter` to be done or for the context to be cancelled, whichever comes first.
// On cancellation, the waiter keeps running in the background until it returns.
func WaitWithContext(ctx context.Context, waiter IWaiter) error {
	done := make(chan error, 1)
	go func() {
		done <- waiter.Wait()
	}()
	select {
	case <-ctx.Done():
		return DetermineContextError(ctx)
	case err := <-done:
		return err
	}
}

// SleepWithContext performs an interruptible sleep: it returns early if the context gets cancelled.
func SleepWithContext(ctx context.Context, delay time.Duration) {
	if delay <= 0 {
		return
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
