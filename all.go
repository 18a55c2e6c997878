package uitask

import (
	"context"
	"errors"
	"sync"
	"time"
)

// All submits every task through d at once and delivers a single continuation
// after the whole batch has finished. If every task succeeded, onDone receives
// the results in input order; otherwise onErr receives the errors.Join of all
// failures and the partial results are discarded.
//
// Each task is accounted in-flight individually, so d.Busy stays true until
// the last one finishes. The batch always waits for every task, even after
// the first failure; a Dispatcher task cannot be cancelled once started.
//
// Intended for startup-style prefetches that issue several metadata calls at
// once (table list, column list, server version) and build UI only when all
// of them are in.
func All[R any](ctx context.Context, d *Dispatcher, tasks []Task[R], onDone func([]R), onErr func(error)) {
	if len(tasks) == 0 {
		if onDone != nil {
			d.queue.Push(func() { onDone(nil) })
		}
		return
	}

	var (
		mu        sync.Mutex
		remaining = len(tasks)
		results   = make([]R, len(tasks))
		errs      = make([]error, len(tasks))
	)

	// finishOne records one outcome and, on the last task, pushes the single
	// batch continuation. Runs on the background side.
	finishOne := func(i int, r R, err error) {
		mu.Lock()
		results[i] = r
		errs[i] = err
		remaining--
		last := remaining == 0
		mu.Unlock()

		if !last {
			return
		}
		if joined := errors.Join(errs...); joined != nil {
			if onErr == nil {
				d.logger.Error("batch errors dropped: no error callback", "error", joined)
				return
			}
			d.queue.Push(func() { onErr(joined) })
			return
		}
		if onDone != nil {
			d.queue.Push(func() { onDone(results) })
		}
	}

	for i, t := range tasks {
		i, t := i, t
		d.begin()
		go func() {
			defer d.end()

			start := time.Now()
			r, err := runTask(ctx, t)
			d.duration.Record(time.Since(start).Seconds())
			if err != nil {
				d.failed.Add(1)
			}
			finishOne(i, r, err)
		}()
	}
}
