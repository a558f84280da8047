// Package tui provides the Bubble Tea front end for ephemera.
// It maps terminal input to engine intents and draws frames, the HUD and
// the start, evolution, game over and victory screens.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ephemera/internal/games/ephemera"
)

// FrameMsg carries the latest rendered frame from the loop goroutine.
type FrameMsg struct {
	View   string
	Status ephemera.Status
}

// EvolutionMsg is sent when the engine pauses for an evolution screen.
// Level is MaxLevel+1 when the run was won.
type EvolutionMsg struct {
	Level int
}

// GameOverMsg is sent when the player was eaten.
type GameOverMsg struct {
	Score int
}

// LoreMsg delivers flavor text for an evolution screen. Token identifies
// the request so stale results are dropped.
type LoreMsg struct {
	Token int
	Text  string
}

// waitForFrame blocks until the loop publishes a frame.
func waitForFrame(ch <-chan FrameMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// waitForEvent blocks until an engine hook fires.
func waitForEvent(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}
