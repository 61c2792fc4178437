package tui

import (
	"sync"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// Board is one interactive simulation: an engine on a tea-driven clock plus
// the statistics recorded when the session ends. A Board is used by a single
// Bubble Tea program; Summary and Record may be called from other goroutines.
type Board struct {
	Engine *life.Engine
	clock  *Clock
	source string

	mu      sync.Mutex
	history *life.History
	steps   int
	peak    int

	recordOnce sync.Once
}

// NewBoard creates an idle board with an all-dead grid. Source names where
// the session runs and is stored with the run summary.
func NewBoard(cfg life.Config, source string) *Board {
	clock := NewClock()
	b := &Board{
		Engine:  life.NewEngine(cfg, clock),
		clock:   clock,
		source:  source,
		history: life.NewHistory(),
	}
	b.Engine.OnStep(b.observe)
	return b
}

func (b *Board) observe(s life.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.steps++
	b.peak = max(b.peak, s.Population)
	b.history.Record(s)
}

// edited drops the pattern history after the cells were changed by hand.
func (b *Board) edited() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history.Reset()
}

// Status classifies the current pattern from the recent generations.
func (b *Board) Status() life.Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.history.Status()
}

// Steps returns how many generations were computed during the session.
func (b *Board) Steps() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.steps
}

// Summary describes the session so far as a storage record.
func (b *Board) Summary() storage.Run {
	snap := b.Engine.Snapshot()

	b.mu.Lock()
	defer b.mu.Unlock()
	return storage.Run{
		Source:         b.source,
		Seed:           b.Engine.Config().Seed,
		Generations:    b.steps,
		Population:     snap.Population,
		PeakPopulation: max(b.peak, snap.Population),
		SpeedMS:        snap.Speed,
		Status:         string(b.history.Status()),
	}
}

// Record stops the board and stores its summary once. Sessions in which no
// generation was computed are not recorded; a nil store records nothing.
// It returns the inserted ID, or 0 when nothing was written.
func (b *Board) Record(store *storage.Store) (int64, error) {
	var (
		id  int64
		err error
	)
	b.recordOnce.Do(func() {
		b.Engine.Close()
		run := b.Summary()
		if store == nil || run.Generations == 0 {
			return
		}
		id, err = store.SaveRun(run)
	})
	return id, err
}
