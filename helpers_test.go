package uitask

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

// quietLogger discards log output so tests exercising dropped-outcome paths
// stay silent.
func quietLogger() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newHarness wires a queue, pump, and dispatcher the way an application root
// would.
func newHarness(t *testing.T, opts ...Option) (*Queue, *Pump, *Dispatcher) {
	t.Helper()
	q := NewQueue()
	p, err := NewPump(q, quietLogger())
	if err != nil {
		t.Fatalf("NewPump: %v", err)
	}
	d, err := NewDispatcher(q, append([]Option{quietLogger()}, opts...)...)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	return q, p, d
}

// pumpUntil ticks p until cond returns true or the deadline passes, standing
// in for the host render loop.
func pumpUntil(t *testing.T, p *Pump, cond func() bool, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		p.Tick()
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not reached within %v", timeout)
}
