package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ephemera/internal/config"
	"github.com/vovakirdan/ephemera/internal/core"
	"github.com/vovakirdan/ephemera/internal/games/ephemera"
	"github.com/vovakirdan/ephemera/internal/loop"
)

// Terminal cells are mapped onto a virtual pixel viewport so the camera
// sees the same aspect as a graphical window.
const (
	CellW = 8
	CellH = 16
)

// Session binds one engine to one loop driver. Frames run on the driver's
// goroutine; hooks and frames reach Bubble Tea only through channels.
type Session struct {
	game   *ephemera.Game
	driver *loop.Driver
	screen *core.Screen
	logger *log.Logger

	frames chan FrameMsg
	events chan tea.Msg

	telemetry ephemera.Telemetry // guarded by the driver step lock
}

// NewSession creates an idle session. Nothing runs until Start.
func NewSession(cfg config.Config, tickRate int, logger *log.Logger, opts ...loop.Option) *Session {
	if logger == nil {
		logger = log.Default()
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	s := &Session{
		screen: core.NewScreen(80, 24),
		logger: logger,
		frames: make(chan FrameMsg, 1),
		events: make(chan tea.Msg, 8),
	}
	s.game = ephemera.New(cfg, ephemera.Hooks{
		Telemetry:        s.onTelemetry,
		EvolutionStarted: s.onEvolution,
		GameOver:         s.onGameOver,
	})

	base := []loop.Option{
		loop.WithInterval(time.Second / time.Duration(tickRate)),
		loop.WithActivateHook(s.game.Resume),
		loop.WithLogger(logger),
	}
	s.driver = loop.New(s.frame, append(base, opts...)...)
	return s
}

// Frames returns the channel of rendered frames. It holds at most the latest one.
func (s *Session) Frames() <-chan FrameMsg {
	return s.frames
}

// Events returns the channel of evolution and game over notifications.
func (s *Session) Events() <-chan tea.Msg {
	return s.events
}

// Game exposes the engine for read-only inspection in tests.
func (s *Session) Game() *ephemera.Game {
	return s.game
}

// Start begins a fresh run with the given seed and activates the loop.
func (s *Session) Start(ctx context.Context, seed int64) {
	s.driver.Deactivate()
	s.driver.Post(func() {
		w, h := s.screen.Width()*CellW, s.screen.Height()*CellH
		s.game.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: seed})
		s.telemetry = ephemera.Telemetry{}
	})
	s.driver.Activate(ctx)
	s.logger.Info("run started", "seed", seed)
}

// Resume leaves the evolution pause. The activate hook resumes the engine.
func (s *Session) Resume(ctx context.Context) {
	s.driver.Activate(ctx)
}

// Pause stops the loop without touching engine state.
func (s *Session) Pause() {
	s.driver.Deactivate()
}

// Stop halts the loop. It is safe to call repeatedly.
func (s *Session) Stop() {
	s.driver.Deactivate()
}

// Resize sets the playfield size in cells.
func (s *Session) Resize(cols, rows int) {
	s.driver.Post(func() {
		s.screen.Resize(cols, rows)
		s.game.SetScreenSize(float64(cols*CellW), float64(rows*CellH))
	})
}

// PointAt steers toward a cell of the playfield.
func (s *Session) PointAt(col, row int) {
	s.driver.Post(func() {
		w, h := s.screen.Width(), s.screen.Height()
		x := float64(col*CellW + CellW/2)
		y := float64(row*CellH + CellH/2)
		s.game.SetPointer(x, y, float64(w*CellW), float64(h*CellH))
	})
}

// CenterPointer releases steering so the player coasts to a stop.
func (s *Session) CenterPointer() {
	s.driver.Post(s.game.ClearPointer)
}

// SetSkill arms or releases the species skill.
func (s *Session) SetSkill(active bool) {
	s.driver.Post(func() { s.game.SetSkillActive(active) })
}

// Status returns the HUD values between frames.
func (s *Session) Status() ephemera.Status {
	var st ephemera.Status
	s.driver.Post(func() { st = s.game.Status() })
	return st
}

// Render draws the current world outside the loop, for paused screens.
func (s *Session) Render() FrameMsg {
	var msg FrameMsg
	s.driver.Post(func() { msg = s.render() })
	return msg
}

func (s *Session) frame(dt time.Duration) {
	s.game.Step(dt)
	s.publish(s.render())
}

// render must run under the step lock.
func (s *Session) render() FrameMsg {
	s.game.Render(s.screen)
	st := s.game.Status()
	if s.telemetry.Tick > 0 {
		st.Telemetry = s.telemetry
	}
	return FrameMsg{View: RenderScreen(s.screen), Status: st}
}

// publish replaces any frame the UI has not picked up yet.
func (s *Session) publish(msg FrameMsg) {
	select {
	case <-s.frames:
	default:
	}
	select {
	case s.frames <- msg:
	default:
	}
}

func (s *Session) onTelemetry(t ephemera.Telemetry) {
	s.telemetry = t
}

func (s *Session) onEvolution(level int) {
	s.send(EvolutionMsg{Level: level})
}

func (s *Session) onGameOver(score int) {
	s.send(GameOverMsg{Score: score})
}

func (s *Session) send(msg tea.Msg) {
	select {
	case s.events <- msg:
	default:
		s.logger.Warn("dropping engine event", "event", msg)
	}
}
