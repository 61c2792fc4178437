package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

// KeyMap defines the key bindings for the board.
type KeyMap struct {
	StartStop key.Binding
	Step      key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Clear     key.Binding
	Random    key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartStop, k.Step, k.Toggle, k.Random, k.Clear, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartStop, k.Step, k.Faster, k.Slower},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Random, k.Clear},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings for an idle board.
func DefaultKeyMap() KeyMap {
	k := KeyMap{
		StartStop: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "start"),
		),
		Step: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "step"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", "x"),
			key.WithHelp("enter/x", "toggle cell"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	k.SetRunning(false)
	return k
}

// SetRunning enables the bindings that make sense in the given state.
// Editing is only possible while idle.
func (k *KeyMap) SetRunning(running bool) {
	if running {
		k.StartStop.SetHelp("space", "stop")
	} else {
		k.StartStop.SetHelp("space", "start")
	}
	k.Toggle.SetEnabled(!running)
	k.Clear.SetEnabled(!running)
	k.Random.SetEnabled(!running)
}

// Action translates a key message into a board action. Disabled bindings
// map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.StartStop, core.ActionStartStop},
		{k.Step, core.ActionStep},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Toggle, core.ActionToggle},
		{k.Clear, core.ActionClear},
		{k.Random, core.ActionRandom},
		{k.Faster, core.ActionFaster},
		{k.Slower, core.ActionSlower},
		{k.Help, core.ActionHelp},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}
