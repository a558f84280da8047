package tui

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ephemera/internal/config"
	"github.com/vovakirdan/ephemera/internal/games/ephemera"
	"github.com/vovakirdan/ephemera/internal/loop"
	"github.com/vovakirdan/ephemera/internal/lore"
	"github.com/vovakirdan/ephemera/internal/species"
	"github.com/vovakirdan/ephemera/internal/storage"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// smallConfig keeps populations tiny so frames are cheap.
func smallConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Population = config.PopulationConfig{Enemies: 3, SmallParticles: 10, LargeParticles: 2}
	return cfg
}

func nextFrame(t *testing.T, s *Session) FrameMsg {
	t.Helper()
	select {
	case msg := <-s.Frames():
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a frame")
		return FrameMsg{}
	}
}

func TestSessionPublishesFrames(t *testing.T) {
	clock := loop.NewMockClock(epoch)
	s := NewSession(smallConfig(), 60, quietLogger(), loop.WithClock(clock))
	s.Resize(80, 21)

	s.Start(context.Background(), 7)
	defer s.Stop()

	clock.Advance(time.Second / 60)
	msg := nextFrame(t, s)

	if msg.Status.Phase != ephemera.PhaseRunning {
		t.Errorf("phase = %v, expected running", msg.Status.Phase)
	}
	if msg.Status.Level != 1 || msg.Status.MaxLevel != 8 {
		t.Errorf("level = %d/%d", msg.Status.Level, msg.Status.MaxLevel)
	}
	if msg.View == "" {
		t.Error("frame should carry a rendered view")
	}
}

func TestSessionPauseStopsFrames(t *testing.T) {
	clock := loop.NewMockClock(epoch)
	s := NewSession(smallConfig(), 60, quietLogger(), loop.WithClock(clock))

	s.Start(context.Background(), 7)
	clock.Advance(time.Second / 60)
	nextFrame(t, s)

	s.Pause()
	if clock.Tickers() != 0 {
		t.Fatalf("paused session should hold no ticker, got %d", clock.Tickers())
	}
	clock.Advance(time.Second)

	select {
	case <-s.Frames():
		t.Error("no frame should be published while paused")
	case <-time.After(50 * time.Millisecond):
	}

	s.Resume(context.Background())
	defer s.Stop()
	clock.Advance(time.Second / 60)
	nextFrame(t, s)
}

func TestSessionPointAt(t *testing.T) {
	s := NewSession(smallConfig(), 60, quietLogger())
	s.Resize(80, 20)
	s.Start(context.Background(), 7)
	s.Stop()

	// The pointer starts on the viewport centre, over the player.
	p := s.Game().Pointer()
	if p.X != 80*CellW/2 || p.Y != 20*CellH/2 {
		t.Errorf("default pointer = %v", p)
	}

	s.PointAt(10, 5)
	p = s.Game().Pointer()
	if p.X != 10*CellW+CellW/2 || p.Y != 5*CellH+CellH/2 {
		t.Errorf("PointAt(10, 5) pointer = %v", p)
	}

	s.CenterPointer()
	p = s.Game().Pointer()
	if p.X != 80*CellW/2 || p.Y != 20*CellH/2 {
		t.Errorf("centered pointer = %v", p)
	}
}

func TestSessionSkill(t *testing.T) {
	s := NewSession(smallConfig(), 60, quietLogger())
	s.Start(context.Background(), 7)
	s.Stop()

	s.SetSkill(true)
	if !s.Status().SkillActive {
		t.Error("skill should arm while the run is running")
	}
	s.SetSkill(false)
	if s.Status().SkillActive {
		t.Error("skill should release")
	}
}

func TestSessionLatestFrameOnly(t *testing.T) {
	s := NewSession(smallConfig(), 60, quietLogger())
	s.publish(FrameMsg{View: "old"})
	s.publish(FrameMsg{View: "new"})

	if got := (<-s.Frames()).View; got != "new" {
		t.Errorf("frame = %q, expected the latest", got)
	}
}

func newTestModel(t *testing.T, store *storage.Store, gen lore.Generator) Model {
	t.Helper()
	logger := quietLogger()
	m := NewModel(Options{
		Config:   smallConfig(),
		TickRate: 60,
		Seed:     11,
		Store:    store,
		Lore:     lore.NewFallback(gen, time.Second, logger),
		Logger:   logger,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	t.Cleanup(func() { m.session.Stop() })
	return next.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return got, cmd
}

func TestModelStartAndQuit(t *testing.T) {
	m := newTestModel(t, nil, nil)
	if m.view != viewStart {
		t.Fatalf("initial view = %v", m.view)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewPlaying {
		t.Fatalf("enter should start a run, view = %v", m.view)
	}
	if m.seed != 11 {
		t.Errorf("first run should use the configured seed, got %d", m.seed)
	}

	m, cmd := update(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelEvolutionAndVictory(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	defer store.Close()

	gen := lore.GeneratorFunc(func(_ context.Context, level int, info species.Info) (string, error) {
		return "A new " + info.Name + " stirs.", nil
	})
	m := newTestModel(t, store, gen)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, EvolutionMsg{Level: 2})
	if m.view != viewEvolving || !m.loreLoading || cmd == nil {
		t.Fatalf("evolution should open the evolution screen and request lore")
	}
	if m.session.driver.Active() {
		t.Error("loop should pause on the evolution screen")
	}

	// A stale lore result is ignored
	m, _ = update(t, m, LoreMsg{Token: m.loreToken - 1, Text: "stale"})
	if m.loreText != "" || !m.loreLoading {
		t.Error("stale lore should be dropped")
	}

	m, _ = update(t, m, LoreMsg{Token: m.loreToken, Text: "A new Amoeba stirs."})
	if m.loreLoading || m.loreText != "A new Amoeba stirs." {
		t.Errorf("lore text = %q, loading = %v", m.loreText, m.loreLoading)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewPlaying || !m.session.driver.Active() {
		t.Fatal("enter should resume the run")
	}

	m, _ = update(t, m, EvolutionMsg{Level: 9})
	if m.view != viewVictory {
		t.Fatalf("level past the last tier should show victory, view = %v", m.view)
	}

	runs, err := store.AllRuns()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Outcome != storage.OutcomeVictory || runs[0].Player != "local" {
		t.Errorf("recorded runs = %+v", runs)
	}
	if runs[0].Seed != 11 {
		t.Errorf("recorded seed = %d", runs[0].Seed)
	}

	// Finishing twice records once
	m.finish(storage.OutcomeVictory)
	runs, _ = store.AllRuns()
	if len(runs) != 1 {
		t.Errorf("run recorded %d times", len(runs))
	}
}

func TestModelGameOverRestart(t *testing.T) {
	m := newTestModel(t, nil, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, GameOverMsg{Score: 120})
	if m.view != viewGameOver {
		t.Fatalf("view = %v, expected game over", m.view)
	}

	m, _ = update(t, m, runeKey('r'))
	if m.view != viewPlaying || m.runs != 2 {
		t.Errorf("restart should begin a second run, view = %v runs = %d", m.view, m.runs)
	}
	if m.seed == 11 {
		t.Error("restarted runs should pick a fresh seed")
	}
}
