package uitask

import (
	"context"
	"fmt"
)

// Task is the canonical unit of background work. It receives a context and
// returns a result of type R and an error. Use TaskFunc / TaskValue /
// TaskError to adapt the common function shapes.
//
// A Task runs on a background goroutine and must not touch UI state; that is
// what the continuations are for. For Executor runs the context also carries
// the cancellation signal, and tasks wanting early exit should poll it (best
// effort, see Executor.Cancel).
type Task[R any] func(context.Context) (R, error)

// TaskFunc adapts func(ctx) (R, error) to Task[R].
func TaskFunc[R any](fn func(context.Context) (R, error)) Task[R] { return Task[R](fn) }

// TaskValue adapts func(ctx) R to Task[R].
func TaskValue[R any](fn func(context.Context) R) Task[R] {
	return func(ctx context.Context) (R, error) { return fn(ctx), nil }
}

// TaskError adapts func(ctx) error to Task[R].
// The returned Task yields the zero value of R alongside the error.
func TaskError[R any](fn func(context.Context) error) Task[R] {
	return func(ctx context.Context) (R, error) { var zero R; return zero, fn(ctx) }
}

// runTask invokes t on the calling goroutine with panic recovery. A panic
// surfaces as an error wrapping ErrTaskPanicked; a nil task yields ErrNilTask.
//
// The task runs inline rather than on a nested goroutine so that nothing of
// it can outlive the caller; the Executor's single-flight guarantee depends
// on that.
func runTask[R any](ctx context.Context, t Task[R]) (result R, err error) {
	if t == nil {
		return result, ErrNilTask
	}
	defer func() {
		if ePanic := recover(); ePanic != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, ePanic)
		}
	}()
	return t(ctx)
}
