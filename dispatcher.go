package uitask

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SegwiseHQ/clicky-sub000/metrics"
)

// Dispatcher runs independent tasks on background goroutines, one goroutine
// per submission, and delivers each task's single outcome continuation to the
// delivery queue. Methods are safe for concurrent use.
//
// Concurrency is unbounded: a desktop client issues a handful of metadata
// calls at a time, not server-grade load, so there is no admission control,
// no queuing of submissions, and no backpressure. A task cannot be cancelled
// once submitted; callers can only observe Busy.
type Dispatcher struct {
	// noCopy prevents accidental copying of the controller.
	nc noCopy

	queue  *Queue
	logger *slog.Logger
	tag    bool

	// in-flight accounting; active is read and written only under mu
	mu     sync.Mutex
	active int

	submitted metrics.Counter
	failed    metrics.Counter
	inflight  metrics.UpDownCounter
	duration  metrics.Histogram
}

// noCopy is a vet-recognized marker to discourage copying types with this
// field embedded. It works with the "-copylocks" analyzer via the presence
// of Lock/Unlock methods.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// NewDispatcher creates a Dispatcher delivering continuations to queue.
func NewDispatcher(queue *Queue, opts ...Option) (*Dispatcher, error) {
	if queue == nil {
		return nil, ErrNilQueue
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{
		queue:     queue,
		logger:    cfg.Logger,
		tag:       cfg.ErrorTagging,
		submitted: cfg.Metrics.Counter("tasks_submitted", metrics.WithUnit("1")),
		failed:    cfg.Metrics.Counter("tasks_failed", metrics.WithUnit("1")),
		inflight:  cfg.Metrics.UpDownCounter("tasks_inflight", metrics.WithUnit("1")),
		duration:  cfg.Metrics.Histogram("task_seconds", metrics.WithUnit("seconds")),
	}, nil
}

// Busy reports whether any background task is currently running. It is true
// for the entire interval between a submission and the decrement that follows
// its outcome continuation being pushed to the delivery queue.
func (d *Dispatcher) Busy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active > 0
}

// Inflight returns the number of currently running tasks.
func (d *Dispatcher) Inflight() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

// begin accounts one task before its goroutine starts.
func (d *Dispatcher) begin() {
	d.mu.Lock()
	d.active++
	d.mu.Unlock()
	d.submitted.Add(1)
	d.inflight.Add(1)
}

// end releases the accounting taken by begin. It runs in a deferred block on
// the task goroutine, after the outcome continuation has been pushed.
func (d *Dispatcher) end() {
	d.mu.Lock()
	d.active--
	d.mu.Unlock()
	d.inflight.Add(-1)
}

// Submit runs task on a new background goroutine and returns immediately with
// the submission's correlation ID. After the task finishes, exactly one of
// onDone(result) or onErr(err) is pushed to the delivery queue — never both,
// never neither — and runs on the render goroutine during a later Pump.Tick.
//
// A panic inside task is recovered and routed to onErr wrapped in
// ErrTaskPanicked. A nil onDone or onErr suppresses that continuation; a
// suppressed failure is logged at Error so it never disappears silently.
//
// Submit is a package-level function because methods cannot be generic.
func Submit[R any](d *Dispatcher, ctx context.Context, task Task[R], onDone func(R), onErr func(error)) uuid.UUID {
	id := uuid.New()
	d.begin()

	go func() {
		defer d.end()

		start := time.Now()
		result, err := runTask(ctx, task)
		elapsed := time.Since(start)
		d.duration.Record(elapsed.Seconds())

		if err != nil {
			d.failed.Add(1)
			if d.tag {
				err = newTaggedError(err, id)
			}
			d.logger.Debug("task failed", "task_id", id, "elapsed", elapsed, "error", err)
			if onErr == nil {
				d.logger.Error("task error dropped: no error callback", "task_id", id, "error", err)
				return
			}
			failure := err
			d.queue.Push(func() { onErr(failure) })
			return
		}

		d.logger.Debug("task completed", "task_id", id, "elapsed", elapsed)
		if onDone == nil {
			return
		}
		value := result
		d.queue.Push(func() { onDone(value) })
	}()

	return id
}
