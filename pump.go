package uitask

import (
	"log/slog"

	"github.com/SegwiseHQ/clicky-sub000/metrics"
)

// Pump drains the delivery queue on the render goroutine. The host loop calls
// Tick once per frame; staleness of delivered outcomes is bounded only by the
// frame rate.
//
// The package cannot enforce which goroutine calls Tick. Keeping it on the
// render goroutine is the caller's contract; calling it anywhere else breaks
// the only-one-goroutine-touches-UI guarantee the whole package exists for.
type Pump struct {
	queue  *Queue
	logger *slog.Logger
	ran    metrics.Counter
}

// NewPump creates a Pump draining queue.
func NewPump(queue *Queue, opts ...Option) (*Pump, error) {
	if queue == nil {
		return nil, ErrNilQueue
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Pump{
		queue:  queue,
		logger: cfg.Logger,
		ran:    cfg.Metrics.Counter("continuations_run", metrics.WithUnit("1")),
	}, nil
}

// Tick pops and runs pending continuations until the queue is genuinely
// empty — including continuations enqueued by continuations during this same
// call — and returns how many ran. Cheap when the queue is empty: one mutex
// probe.
//
// A continuation that panics is logged and does not stop the drain; pending
// continuations from unrelated tasks always get their turn.
func (p *Pump) Tick() int {
	n := 0
	for {
		fn, ok := p.queue.pop()
		if !ok {
			break
		}
		p.invoke(fn)
		n++
	}
	if n > 0 {
		p.ran.Add(int64(n))
	}
	return n
}

// invoke runs one continuation in isolation.
func (p *Pump) invoke(fn Continuation) {
	defer func() {
		if ePanic := recover(); ePanic != nil {
			p.logger.Error("continuation panicked", "panic", ePanic)
		}
	}()
	fn()
}
