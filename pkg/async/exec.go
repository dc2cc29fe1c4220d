package async

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout is returned by AwaitWithTimeout when the deadline elapses
// before the background function completes.
var ErrTimeout = errors.New("async: await timed out")

// Future represents a background computation that only yields an error.
// Callers that never Await it get fire-and-forget semantics; the error is
// still recorded and can be observed later or by a logging wrapper.
type Future struct {
	err  error
	done chan struct{}
}

// Await blocks until the background function completes and returns its error.
func (f *Future) Await() error {
	<-f.done
	return f.err
}

// AwaitWithTimeout waits for completion up to the given timeout.
// Returns ErrTimeout if the function is still running when it elapses;
// the function itself keeps running.
func (f *Future) AwaitWithTimeout(timeout time.Duration) error {
	select {
	case <-f.done:
		return f.err
	case <-time.After(timeout):
		return ErrTimeout
	}
}

// IsComplete reports whether the background function has finished,
// without blocking.
func (f *Future) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Exec runs fn in a background goroutine with the given parameter and
// returns a Future for its result. If ctx is already canceled the function
// is not invoked and the Future resolves with the context error.
func Exec[T any](ctx context.Context, param T, fn func(context.Context, T) error) *Future {
	f := &Future{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.err = fn(ctx, param)
	}()

	return f
}
