package life

import (
	"context"
	"sync"
)

// RunOptions bounds an unattended run.
type RunOptions struct {
	Generations int  // Stop after this many steps (0 = no limit)
	UntilStable bool // Stop once the pattern is extinct, still or oscillating

	// Observe, if set, is called after every step from the clock's goroutine.
	Observe func(Snapshot)
}

// RunResult summarizes an unattended run.
type RunResult struct {
	Final  Snapshot
	Steps  int
	Peak   int
	Status Status
}

// Run starts the engine and blocks until the options' stop condition is met
// or ctx is done. The engine is stopped and its observer cleared on return.
// A cancelled run returns its partial result along with ctx's error.
func Run(ctx context.Context, e *Engine, opts RunOptions) (RunResult, error) {
	var (
		mu      sync.Mutex
		res     RunResult
		history = NewHistory()
		done    = make(chan struct{})
		once    sync.Once
	)

	e.OnStep(func(s Snapshot) {
		mu.Lock()
		res.Steps++
		res.Peak = max(res.Peak, s.Population)
		history.Record(s)
		finished := (opts.Generations > 0 && res.Steps >= opts.Generations) ||
			(opts.UntilStable && history.Stable())
		mu.Unlock()

		if opts.Observe != nil {
			opts.Observe(s)
		}
		if finished {
			e.Stop()
			once.Do(func() { close(done) })
		}
	})
	defer e.OnStep(nil)

	e.Start()

	var err error
	select {
	case <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}
	e.Stop()

	mu.Lock()
	defer mu.Unlock()
	res.Final = e.Snapshot()
	res.Status = history.Status()
	return res, err
}
