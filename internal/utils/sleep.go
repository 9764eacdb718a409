package utils

import (
	"context"
	"sync"
	"time"
)

var (
	sleepFunc func(context.Context, time.Duration) error
	mu        sync.Mutex // mutex to make the setting of the sleepFunc thread-safe
)

func init() {
	ResetSleepFunc() // Initialize sleepFunc with the default sleep function
}

// Sleep calls the current sleep function. The default one returns ctx.Err()
// as soon as ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	mu.Lock()
	f := sleepFunc
	mu.Unlock()
	return f(ctx, d)
}

// SetSleepFunc allows for overriding the default sleep function, primarily for testing.
func SetSleepFunc(f func(context.Context, time.Duration) error) {
	mu.Lock()
	sleepFunc = f
	mu.Unlock()
}

// ResetSleepFunc resets the sleep function to the default context aware sleep.
func ResetSleepFunc() {
	SetSleepFunc(sleepWithContext)
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
