// Package uitask runs blocking work on background goroutines and delivers the
// outcome back to a single render goroutine as queued continuations.
//
// GUI bindings are generally not safe to call from arbitrary goroutines: all
// widget mutation must happen on the one goroutine driving the render loop.
// This package provides the plumbing for that constraint:
//
//   - Queue: an unbounded, concurrency-safe FIFO of continuations. Any
//     goroutine may Push; only the Pump drains.
//   - Dispatcher: fire-and-forget execution of independent tasks (metadata
//     fetches, credential reads). Any number may run at once.
//   - Executor: single-flight execution with cooperative cancellation, for
//     work where overlapping runs make no sense (the active query).
//   - Pump: drains the Queue once per frame on the render goroutine.
//
// Typical wiring, owned by the application root:
//
//	q := uitask.NewQueue()
//	pump, _ := uitask.NewPump(q)
//	d, _ := uitask.NewDispatcher(q)
//	ex, _ := uitask.NewExecutor[*ResultSet](q)
//
//	// each frame of the render loop:
//	pump.Tick()
//
//	// from an event handler:
//	uitask.Submit(d, ctx,
//		func(ctx context.Context) ([]string, error) { return db.Tables(ctx) },
//		func(tables []string) { sidebar.SetTables(tables) },
//		func(err error) { statusBar.SetError(err) },
//	)
//
// Defaults, unless overridden by options:
//   - Logger: slog.Default()
//   - Metrics: metrics.NewNoopProvider()
//   - ErrorTagging: false
//
// Continuations execute with full access to UI state; tasks must not touch it.
// The package cannot enforce which goroutine calls Tick; keeping it on the
// render goroutine is the caller's contract.
package uitask
