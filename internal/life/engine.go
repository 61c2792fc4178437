package life

import (
	"math/rand"
	"sync"
	"time"
)

// Config contains the engine's fixed parameters.
type Config struct {
	Rows     int     // Grid rows
	Cols     int     // Grid columns
	Speed    int     // Initial milliseconds between automatic steps
	MinSpeed int     // Lower speed bound in milliseconds
	MaxSpeed int     // Upper speed bound in milliseconds
	Density  float64 // Probability that Randomize makes a cell alive
	Seed     int64   // RNG seed for Randomize (0 = seeded from time)
	Workers  int     // Row bands evaluated concurrently per step (<= 1 = sequential)
}

// DefaultConfig returns the reference configuration: a 30x40 grid stepping
// every 200ms, speed bounded to 50..1000ms, 30% random density.
func DefaultConfig() Config {
	return Config{
		Rows:     30,
		Cols:     40,
		Speed:    200,
		MinSpeed: 50,
		MaxSpeed: 1000,
		Density:  0.3,
		Seed:     0,
		Workers:  1,
	}
}

// Snapshot is a read-only view of the engine state for presentation.
type Snapshot struct {
	Grid       *Grid
	Generation int
	Running    bool
	Speed      int
	Population int
}

// Engine is the single authority over the simulation state.
// All mutation goes through its methods; disallowed calls are no-ops.
type Engine struct {
	mu sync.Mutex

	cfg   Config
	store *Store
	clock Clock
	rng   *rand.Rand

	running bool
	speed   int
	timer   Timer
	epoch   uint64 // identifies the armed timer; stale ticks are dropped

	onStep func(Snapshot)
}

// NewEngine creates an idle engine with an all-dead grid.
// Invalid speed settings fall back to DefaultConfig's values.
func NewEngine(cfg Config, clock Clock) *Engine {
	def := DefaultConfig()
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		cfg.Rows, cfg.Cols = def.Rows, def.Cols
	}
	if cfg.MinSpeed <= 0 || cfg.MaxSpeed < cfg.MinSpeed {
		cfg.MinSpeed, cfg.MaxSpeed = def.MinSpeed, def.MaxSpeed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if clock == nil {
		clock = RealClock{}
	}

	e := &Engine{
		cfg:   cfg,
		store: NewStore(cfg.Rows, cfg.Cols),
		clock: clock,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
	}
	e.speed = e.clampSpeed(cfg.Speed)
	return e
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// OnStep registers an observer called after every generation, manual or
// scheduled. It runs outside the engine lock and may call engine methods.
func (e *Engine) OnStep(fn func(Snapshot)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onStep = fn
}

// Initialize resets the grid to all dead and the generation to 0.
func (e *Engine) Initialize() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store.Initialize()
}

// ToggleCell flips one cell. Ignored while running or out of bounds.
func (e *Engine) ToggleCell(row, col int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		return false
	}
	cur := e.store.current()
	return e.store.SetCell(row, col, !cur.Alive(row, col))
}

// Clear resets the grid and generation. Ignored while running.
func (e *Engine) Clear() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		return false
	}
	e.store.Initialize()
	return true
}

// Randomize makes each cell alive independently with probability Density
// and resets the generation. Ignored while running.
func (e *Engine) Randomize() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		return false
	}
	e.store.Initialize()
	for row := range e.cfg.Rows {
		for col := range e.cfg.Cols {
			if e.rng.Float64() < e.cfg.Density {
				e.store.SetCell(row, col, true)
			}
		}
	}
	return true
}

// Step advances the grid by one generation. Permitted in any state.
func (e *Engine) Step() {
	e.mu.Lock()
	snap := e.stepLocked()
	observer := e.onStep
	e.mu.Unlock()

	if observer != nil {
		observer(snap)
	}
}

// stepLocked runs the stepper against the stored grid and publishes the
// result together with the incremented generation.
func (e *Engine) stepLocked() Snapshot {
	next := Next(e.store.current(), e.cfg.Workers)
	e.store.ReplaceGrid(next)
	return e.snapshotLocked()
}

// Start switches to running and arms one repeating timer at the current
// speed. Calling Start while running does nothing.
func (e *Engine) Start() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		return false
	}
	e.running = true
	e.armLocked()
	return true
}

// Stop switches to idle and cancels the timer. Calling Stop while idle does
// nothing.
func (e *Engine) Stop() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return false
	}
	e.running = false
	e.disarmLocked()
	return true
}

// SetSpeed updates the step interval, clamped to the configured bounds, and
// returns the applied value. While running, a changed interval cancels the
// armed timer before arming a new one, so the next tick uses the new speed.
func (e *Engine) SetSpeed(ms int) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	ms = e.clampSpeed(ms)
	if ms == e.speed {
		return ms
	}
	e.speed = ms
	if e.running {
		e.disarmLocked()
		e.armLocked()
	}
	return ms
}

// Close stops the scheduler on host teardown.
func (e *Engine) Close() {
	e.Stop()
}

// armLocked starts a timer tagged with a fresh epoch.
func (e *Engine) armLocked() {
	e.epoch++
	epoch := e.epoch
	interval := time.Duration(e.speed) * time.Millisecond
	e.timer = e.clock.Every(interval, func() {
		e.tick(epoch)
	})
}

// disarmLocked cancels the armed timer and invalidates its epoch.
func (e *Engine) disarmLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.epoch++
}

// tick is the timer callback. Ticks from a cancelled timer are dropped.
func (e *Engine) tick(epoch uint64) {
	e.mu.Lock()
	if !e.running || epoch != e.epoch {
		e.mu.Unlock()
		return
	}
	snap := e.stepLocked()
	observer := e.onStep
	e.mu.Unlock()

	if observer != nil {
		observer(snap)
	}
}

func (e *Engine) clampSpeed(ms int) int {
	return max(e.cfg.MinSpeed, min(e.cfg.MaxSpeed, ms))
}

// Running reports whether automatic stepping is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Speed returns the current step interval in milliseconds.
func (e *Engine) Speed() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.speed
}

// Generation returns the current generation count.
func (e *Engine) Generation() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Generation()
}

// Alive returns the state of one cell in the current generation.
func (e *Engine) Alive(row, col int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.current().Alive(row, col)
}

// Snapshot returns a copy of the observable state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	grid := e.store.Grid()
	return Snapshot{
		Grid:       grid,
		Generation: e.store.Generation(),
		Running:    e.running,
		Speed:      e.speed,
		Population: grid.Population(),
	}
}
