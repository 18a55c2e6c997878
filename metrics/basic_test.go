package metrics

import (
	"sync"
	"testing"
)

func TestBasicProvider_CounterReusedByName(t *testing.T) {
	p := NewBasicProvider()

	c1 := p.Counter("tasks_submitted")
	c2 := p.Counter("tasks_submitted")
	if c1 != c2 {
		t.Fatalf("expected same counter instance for same name")
	}

	c1.Add(3)
	c2.Add(2)
	if got := c1.(*BasicCounter).Snapshot(); got != 5 {
		t.Fatalf("counter value: got=%d want=5", got)
	}

	if other := p.Counter("tasks_failed"); other == c1 {
		t.Fatalf("expected distinct counter instance for different name")
	}
}

func TestBasicProvider_UpDownCounterMovesBothWays(t *testing.T) {
	p := NewBasicProvider()
	u := p.UpDownCounter("tasks_inflight")

	u.Add(+3)
	u.Add(-1)
	u.Add(+10)
	if got := u.(*BasicUpDownCounter).Snapshot(); got != 12 {
		t.Fatalf("updown value: got=%d want=12", got)
	}
}

func TestBasicHistogram_SummaryStatistics(t *testing.T) {
	p := NewBasicProvider()
	h := p.Histogram("task_seconds")

	for _, v := range []float64{0.5, 0.25, 2.0} {
		h.Record(v)
	}

	s := h.(*BasicHistogram).Snapshot()
	if s.Count != 3 {
		t.Fatalf("count: got=%d want=3", s.Count)
	}
	if s.Min != 0.25 || s.Max != 2.0 {
		t.Fatalf("min/max: got=%v/%v want=0.25/2.0", s.Min, s.Max)
	}
	if s.Sum != 2.75 {
		t.Fatalf("sum: got=%v want=2.75", s.Sum)
	}
}

func TestBasicProvider_ConcurrentUse(t *testing.T) {
	p := NewBasicProvider()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Counter("tasks_submitted").Add(1)
			p.UpDownCounter("tasks_inflight").Add(1)
			p.Histogram("task_seconds").Record(0.01)
		}()
	}
	wg.Wait()

	if got := p.Counter("tasks_submitted").(*BasicCounter).Snapshot(); got != 50 {
		t.Fatalf("counter value: got=%d want=50", got)
	}
	if got := p.Histogram("task_seconds").(*BasicHistogram).Snapshot().Count; got != 50 {
		t.Fatalf("histogram count: got=%d want=50", got)
	}
}
