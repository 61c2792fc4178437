// Package tui provides the Bubble Tea front end for the Game of Life: the
// interactive board, the run history browser and the SSH server.
package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/life"
)

// clockTickMsg is delivered when a Clock timer's interval has elapsed.
type clockTickMsg struct {
	id int
}

// Clock is a life.Clock driven by the Bubble Tea event loop. Each armed timer
// is a tea.Tick command tagged with the timer's ID; the callback runs inside
// Update, so the engine is only ever touched from the program goroutine.
//
// Commands produced by Every are queued until the model collects them with
// drain and returns them from Update.
type Clock struct {
	mu      sync.Mutex
	nextID  int
	timers  map[int]*clockTimer
	pending []tea.Cmd
}

type clockTimer struct {
	clock    *Clock
	id       int
	interval time.Duration
	fn       func()
}

// NewClock creates a clock with no armed timers.
func NewClock() *Clock {
	return &Clock{timers: make(map[int]*clockTimer)}
}

// Every arms a repeating timer. The first tick is queued as a pending command.
func (c *Clock) Every(interval time.Duration, fn func()) life.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	t := &clockTimer{clock: c, id: c.nextID, interval: interval, fn: fn}
	c.timers[t.id] = t
	c.pending = append(c.pending, t.tick())
	return t
}

func (t *clockTimer) tick() tea.Cmd {
	id := t.id
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return clockTickMsg{id: id}
	})
}

// Stop disarms the timer. A tick already in flight is discarded on arrival.
func (t *clockTimer) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	delete(t.clock.timers, t.id)
}

// fire runs the callback for a delivered tick and queues the next one.
// It reports false for ticks of stopped timers.
func (c *Clock) fire(msg clockTickMsg) bool {
	c.mu.Lock()
	t, ok := c.timers[msg.id]
	if ok {
		c.pending = append(c.pending, t.tick())
	}
	c.mu.Unlock()

	if !ok {
		return false
	}
	t.fn()
	return true
}

// drain returns the queued commands as one batch and empties the queue.
func (c *Clock) drain() tea.Cmd {
	c.mu.Lock()
	cmds := c.pending
	c.pending = nil
	c.mu.Unlock()

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Active returns the number of armed timers.
func (c *Clock) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}
