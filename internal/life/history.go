package life

// Status classifies how the board has been behaving over recent generations.
type Status string

const (
	StatusEvolving    Status = "evolving"
	StatusExtinct     Status = "extinct"
	StatusStill       Status = "still"
	StatusOscillating Status = "oscillating"
)

// historyDepth is the number of past generations kept for cycle detection.
// Periods up to historyDepth-1 are recognized as oscillation.
const historyDepth = 4

// History remembers hashes of recent generations to detect still lifes,
// short-period oscillators and extinction.
type History struct {
	hashes      []string
	generations []int
	extinct     bool
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Reset forgets all recorded generations.
func (h *History) Reset() {
	h.hashes = h.hashes[:0]
	h.generations = h.generations[:0]
	h.extinct = false
}

// Record adds a snapshot. A snapshot whose generation is not newer than the
// last recorded one means the board was reset, so the history restarts.
func (h *History) Record(s Snapshot) {
	if n := len(h.generations); n > 0 && s.Generation <= h.generations[n-1] {
		h.Reset()
	}

	h.hashes = append(h.hashes, s.Grid.Hash())
	h.generations = append(h.generations, s.Generation)
	h.extinct = s.Population == 0

	if len(h.hashes) > historyDepth {
		h.hashes = h.hashes[1:]
		h.generations = h.generations[1:]
	}
}

// Status returns the classification of the latest recorded generation.
func (h *History) Status() Status {
	if h.extinct {
		return StatusExtinct
	}

	n := len(h.hashes)
	if n < 2 {
		return StatusEvolving
	}

	current := h.hashes[n-1]
	if h.hashes[n-2] == current {
		return StatusStill
	}
	for i := n - 3; i >= 0; i-- {
		if h.hashes[i] == current {
			return StatusOscillating
		}
	}
	return StatusEvolving
}

// Stable reports whether the board has settled: extinct, still or oscillating.
func (h *History) Stable() bool {
	return h.Status() != StatusEvolving
}
