package uitask

import (
	"sync"
	"testing"
)

func TestPump_TickEmptyQueueIsNoop(t *testing.T) {
	q := NewQueue()
	p, err := NewPump(q, quietLogger())
	if err != nil {
		t.Fatalf("NewPump: %v", err)
	}
	if got := p.Tick(); got != 0 {
		t.Fatalf("ran: got=%d want=0", got)
	}
}

func TestPump_NilQueueRejected(t *testing.T) {
	if _, err := NewPump(nil); err != ErrNilQueue {
		t.Fatalf("error: got=%v want=%v", err, ErrNilQueue)
	}
}

func TestPump_DrainsReentrantPushes(t *testing.T) {
	q := NewQueue()
	p, err := NewPump(q, quietLogger())
	if err != nil {
		t.Fatalf("NewPump: %v", err)
	}

	var got []string
	q.Push(func() {
		got = append(got, "first")
		q.Push(func() { got = append(got, "nested") })
	})

	if ran := p.Tick(); ran != 2 {
		t.Fatalf("ran: got=%d want=2", ran)
	}
	if len(got) != 2 || got[0] != "first" || got[1] != "nested" {
		t.Fatalf("unexpected execution trace: %v", got)
	}
}

func TestPump_PanickingContinuationDoesNotHaltDrain(t *testing.T) {
	q := NewQueue()
	p, err := NewPump(q, quietLogger())
	if err != nil {
		t.Fatalf("NewPump: %v", err)
	}

	ran := false
	q.Push(func() { panic("boom") })
	q.Push(func() { ran = true })

	if n := p.Tick(); n != 2 {
		t.Fatalf("ran: got=%d want=2", n)
	}
	if !ran {
		t.Fatalf("continuation after panicking one did not run")
	}
}

func TestPump_AllContinuationsRunOnCallingGoroutine(t *testing.T) {
	q := NewQueue()
	p, err := NewPump(q, quietLogger())
	if err != nil {
		t.Fatalf("NewPump: %v", err)
	}

	// 100 concurrent producers, one drain.
	const producers = 100
	var mu sync.Mutex
	ran := 0
	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Push(func() {
				mu.Lock()
				ran++
				mu.Unlock()
			})
		}()
	}
	wg.Wait()

	if n := p.Tick(); n != producers {
		t.Fatalf("ran: got=%d want=%d", n, producers)
	}
	// All ran synchronously inside Tick, on this goroutine.
	mu.Lock()
	defer mu.Unlock()
	if ran != producers {
		t.Fatalf("executed count: got=%d want=%d", ran, producers)
	}
	if q.Len() != 0 {
		t.Fatalf("queue not drained: len=%d", q.Len())
	}
}
