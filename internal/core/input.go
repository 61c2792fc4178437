package core

// Action is a semantic board command, abstracted from physical key presses
// and mouse events so the board logic never inspects raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionStartStop        // Space - start or stop automatic stepping
	ActionStep             // N - advance one generation
	ActionUp               // Up, K - move the cursor
	ActionDown             // Down, J
	ActionLeft             // Left, H
	ActionRight            // Right, L
	ActionToggle           // Enter, X, mouse click - flip the cell under the cursor
	ActionClear            // C - kill every cell
	ActionRandom           // R - seed a random board
	ActionFaster           // +, = - shorten the step interval
	ActionSlower           // -, _ - lengthen the step interval
	ActionHelp             // ? - expand the help bar
	ActionQuit             // Q, Ctrl+C - leave the session
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionStartStop: "StartStop",
	ActionStep:      "Step",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionToggle:    "Toggle",
	ActionClear:     "Clear",
	ActionRandom:    "Random",
	ActionFaster:    "Faster",
	ActionSlower:    "Slower",
	ActionHelp:      "Help",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Editing reports whether the action changes cells directly. Editing
// actions are only honored while the simulation is idle.
func (a Action) Editing() bool {
	switch a {
	case ActionToggle, ActionClear, ActionRandom:
		return true
	}
	return false
}

// Delta returns the cursor movement for a direction action as (dRow, dCol).
func (a Action) Delta() (int, int) {
	switch a {
	case ActionUp:
		return -1, 0
	case ActionDown:
		return 1, 0
	case ActionLeft:
		return 0, -1
	case ActionRight:
		return 0, 1
	}
	return 0, 0
}
