package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ephemera/internal/core"
)

// KeyMap defines the key bindings for a run.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Center  key.Binding
	Skill   key.Binding
	Confirm key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Skill, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Center},
		{k.Skill, k.Confirm, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "steer up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "steer down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "steer left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "steer right"),
		),
		Center: key.NewBinding(
			key.WithKeys("c", "x"),
			key.WithHelp("c", "stop"),
		),
		Skill: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle skill"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Center):
		return core.ActionCenter
	case key.Matches(msg, k.Skill):
		return core.ActionSkill
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// Steer tracks a keyboard-driven pointer as an offset from the playfield
// centre, in cells.
type Steer struct {
	DX, DY int
}

// steerStep is how far one key press moves the pointer, in cells.
const steerStep = 4

// Apply moves the offset for a direction action and clamps it to the
// playfield. It reports whether the action was a steering action.
func (s *Steer) Apply(a core.Action, cols, rows int) bool {
	switch a {
	case core.ActionUp:
		s.DY -= steerStep / 2
	case core.ActionDown:
		s.DY += steerStep / 2
	case core.ActionLeft:
		s.DX -= steerStep
	case core.ActionRight:
		s.DX += steerStep
	case core.ActionCenter:
		s.DX, s.DY = 0, 0
	default:
		return false
	}
	s.DX = core.Clamp(s.DX, -cols/2, cols/2)
	s.DY = core.Clamp(s.DY, -rows/2, rows/2)
	return true
}

// Centered reports whether the pointer rests on the player.
func (s Steer) Centered() bool {
	return s.DX == 0 && s.DY == 0
}

// Cell returns the pointer cell for a playfield of the given size.
func (s Steer) Cell(cols, rows int) (int, int) {
	return cols/2 + s.DX, rows/2 + s.DY
}
