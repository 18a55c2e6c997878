package uitask

import "sync"

// Continuation is a deferred callback executed on the render goroutine once
// background work has finished. Continuations have full access to UI state.
type Continuation func()

// Queue is an unbounded FIFO of continuations shared between background
// producers and the single render-goroutine consumer. Push is safe from any
// goroutine and never blocks beyond a short internal mutex hold. Producers
// never execute continuations themselves; draining happens exclusively
// through Pump.Tick.
//
// The backing store is a mutex-guarded slice rather than a channel: senders
// must never block, and a channel would impose a capacity.
//
// A Queue is created once by the application root and passed explicitly to
// the Dispatcher, the Executor, and the Pump. It lives for the process
// lifetime and is drained to empty repeatedly.
type Queue struct {
	mu    sync.Mutex
	items []Continuation
}

// NewQueue creates an empty delivery queue.
func NewQueue() *Queue { return &Queue{} }

// Push appends fn to the queue. Callable from any goroutine; never fails.
// Nil continuations are ignored.
func (q *Queue) Push(fn Continuation) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.items = append(q.items, fn)
	q.mu.Unlock()
}

// Len reports the number of pending continuations. The value may be stale by
// the time the caller observes it.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// pop removes and returns the oldest continuation. The Pump pops one item at
// a time so that continuations enqueued during a drain are observed by that
// same drain.
func (q *Queue) pop() (Continuation, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil, false
	}
	fn := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil // release the drained backing array
	}
	return fn, true
}
