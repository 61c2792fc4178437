package life

import (
	"sync"
	"time"
)

// Clock schedules repeating work for the engine's scheduler.
type Clock interface {
	// Every calls fn once per interval until the returned Timer is stopped.
	Every(interval time.Duration, fn func()) Timer
}

// Timer is a cancellable handle returned by Clock.Every.
type Timer interface {
	// Stop cancels the timer. It does not wait for a callback in flight.
	Stop()
}

// RealClock schedules work on wall-clock time using time.Ticker.
// Callbacks run on a goroutine owned by the timer.
type RealClock struct{}

// Every starts a ticker goroutine that calls fn every interval.
func (RealClock) Every(interval time.Duration, fn func()) Timer {
	t := &realTimer{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type realTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *realTimer) run(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			// Stop may have raced the tick; prefer the cancellation.
			select {
			case <-t.done:
				return
			default:
			}
			fn()
		}
	}
}

func (t *realTimer) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}

// ManualClock is a deterministic Clock driven by Advance.
// Nothing fires until the owner moves time forward.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	clock    *ManualClock
	seq      int
	interval time.Duration
	next     time.Duration
	fn       func()
	stopped  bool
}

// NewManualClock creates a manual clock at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Every registers a timer whose first firing is one interval from now.
func (c *ManualClock) Every(interval time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if interval <= 0 {
		interval = time.Millisecond
	}
	c.seq++
	t := &manualTimer{
		clock:    c,
		seq:      c.seq,
		interval: interval,
		next:     c.now + interval,
		fn:       fn,
	}
	c.timers = append(c.timers, t)
	return t
}

func (t *manualTimer) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.stopped = true
}

// Advance moves time forward by d, firing due timers in time order.
// Callbacks run without the clock's lock held, so they may stop timers or
// register new ones; a timer stopped by an earlier callback does not fire.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		due := c.nextDue(target)
		if due == nil {
			c.now = target
			c.prune()
			c.mu.Unlock()
			return
		}
		c.now = due.next
		due.next += due.interval
		fn := due.fn
		c.mu.Unlock()

		fn()
	}
}

// nextDue returns the earliest active timer due at or before target.
// Ties go to the timer registered first.
func (c *ManualClock) nextDue(target time.Duration) *manualTimer {
	var due *manualTimer
	for _, t := range c.timers {
		if t.stopped || t.next > target {
			continue
		}
		if due == nil || t.next < due.next || (t.next == due.next && t.seq < due.seq) {
			due = t
		}
	}
	return due
}

func (c *ManualClock) prune() {
	active := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			active = append(active, t)
		}
	}
	c.timers = active
}

// Now returns the elapsed manual time.
func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Active returns the number of timers that have not been stopped.
func (c *ManualClock) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
