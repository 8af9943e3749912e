package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// withLifecycle derives a context canceled on SIGINT or SIGTERM and, when
// timeout is positive, after timeout. The returned stop function releases
// both and must be called.
func withLifecycle(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	cancelTimeout := context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancelTimeout = context.WithTimeout(ctx, timeout)
	}
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}
