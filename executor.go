package uitask

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SegwiseHQ/clicky-sub000/metrics"
)

// Status describes the life of one Executor run:
// pending -> running -> {completed | failed | cancelled}.
// The three terminal states are mutually exclusive and final for a given
// Record.
type Status uint8

const (
	StatusPending Status = iota
	StatusRunning
	StatusCompleted
	StatusFailed
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Record is the outcome of one Executor run, handed to the completion
// callback. Result is meaningful only for StatusCompleted; a result produced
// by a run that was cancelled after the fact is discarded. Elapsed is
// captured for completed and failed runs and left zero for cancelled ones.
type Record[R any] struct {
	Status  Status
	Result  R
	Err     error
	Elapsed time.Duration
}

// Executor runs at most one task at a time with cooperative cancellation.
// A second Execute while a run is live is rejected, not queued; the caller
// re-submits once the previous run has finished, if it still wants the work.
//
// Built for the active query of a database client: the query the user just
// fired replaces interest in the one before it, and two result sets racing
// to fill the same table widget would be a bug.
type Executor[R any] struct {
	nc noCopy

	queue  *Queue
	logger *slog.Logger

	// running and cancel are read and written only under mu. The lock is
	// never held across the task itself.
	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc

	completed metrics.Counter
	failed    metrics.Counter
	cancelled metrics.Counter
	rejected  metrics.Counter
	duration  metrics.Histogram
}

// NewExecutor creates a single-flight Executor delivering continuations to
// queue.
func NewExecutor[R any](queue *Queue, opts ...Option) (*Executor[R], error) {
	if queue == nil {
		return nil, ErrNilQueue
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Executor[R]{
		queue:     queue,
		logger:    cfg.Logger,
		completed: cfg.Metrics.Counter("exec_completed", metrics.WithUnit("1")),
		failed:    cfg.Metrics.Counter("exec_failed", metrics.WithUnit("1")),
		cancelled: cfg.Metrics.Counter("exec_cancelled", metrics.WithUnit("1")),
		rejected:  cfg.Metrics.Counter("exec_rejected", metrics.WithUnit("1")),
		duration:  cfg.Metrics.Histogram("exec_seconds", metrics.WithUnit("seconds")),
	}, nil
}

// Execute starts task on a background goroutine and returns true, or returns
// false without side effects while the previous run is still live. Rejection
// is an expected answer, not an error; callers must check it.
//
// The run's context, derived from ctx, carries the cancellation signal:
// Cancel cancels it, and the task may poll it for early exit. That polling is
// best effort — the Executor never interrupts a task; it only reports
// StatusCancelled instead of StatusCompleted when cancellation was requested,
// discarding whatever the task produced.
//
// onComplete receives the final Record through the delivery queue, exactly
// once per accepted run; it is the authoritative last word for the run.
// onProgress, when non-nil, receives human-readable status text zero or more
// times, also through the delivery queue, always pushed before the completion
// Record of the same run. It is advisory only.
func (e *Executor[R]) Execute(ctx context.Context, task Task[R], onComplete func(Record[R]), onProgress func(string)) bool {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		e.rejected.Add(1)
		return false
	}
	runCtx, cancel := context.WithCancel(ctx)
	e.running = true
	e.cancel = cancel
	e.mu.Unlock()

	go e.run(runCtx, cancel, task, onComplete, onProgress)
	return true
}

// Cancel flags the live run for cancellation and reports whether one existed.
// Cooperative and advisory: the running task keeps going unless it polls its
// context, but the Executor reports StatusCancelled either way. Cancellation
// latency therefore equals however long the task still takes.
func (e *Executor[R]) Cancel() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return false
	}
	e.cancel()
	return true
}

// Running reports whether a run goroutine is currently live.
func (e *Executor[R]) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

func (e *Executor[R]) run(ctx context.Context, cancel context.CancelFunc, task Task[R], onComplete func(Record[R]), onProgress func(string)) {
	// Clearing the running flag is this goroutine's final act: a new Execute
	// may only be accepted once nothing of this run is still going.
	defer func() {
		e.mu.Lock()
		e.running = false
		e.cancel = nil
		e.mu.Unlock()
		cancel()
	}()

	e.progress(onProgress, "Executing query...")

	// Cancelled before the task started: the task is never invoked.
	if ctx.Err() != nil {
		e.finish(onComplete, Record[R]{Status: StatusCancelled})
		return
	}

	start := time.Now()
	result, err := runTask(ctx, task)
	elapsed := time.Since(start)

	switch {
	case ctx.Err() != nil:
		// Cancellation requested while the task ran; its result is discarded.
		e.finish(onComplete, Record[R]{Status: StatusCancelled})
	case err != nil:
		e.progress(onProgress, fmt.Sprintf("Query failed: %s", err))
		e.duration.Record(elapsed.Seconds())
		e.finish(onComplete, Record[R]{Status: StatusFailed, Err: err, Elapsed: elapsed})
	default:
		e.progress(onProgress, fmt.Sprintf("Query completed in %.2fs", elapsed.Seconds()))
		e.duration.Record(elapsed.Seconds())
		e.finish(onComplete, Record[R]{Status: StatusCompleted, Result: result, Elapsed: elapsed})
	}
}

func (e *Executor[R]) progress(onProgress func(string), msg string) {
	if onProgress == nil {
		return
	}
	e.queue.Push(func() { onProgress(msg) })
}

func (e *Executor[R]) finish(onComplete func(Record[R]), rec Record[R]) {
	switch rec.Status {
	case StatusCompleted:
		e.completed.Add(1)
	case StatusFailed:
		e.failed.Add(1)
	case StatusCancelled:
		e.cancelled.Add(1)
	}
	e.logger.Debug("run finished", "status", rec.Status.String(), "elapsed", rec.Elapsed, "error", rec.Err)

	if onComplete == nil {
		if rec.Err != nil {
			e.logger.Error("run outcome dropped: no completion callback", "status", rec.Status.String(), "error", rec.Err)
		}
		return
	}
	e.queue.Push(func() { onComplete(rec) })
}
