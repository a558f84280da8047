package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ephemera/internal/config"
	"github.com/vovakirdan/ephemera/internal/core"
	"github.com/vovakirdan/ephemera/internal/lore"
	"github.com/vovakirdan/ephemera/internal/species"
	"github.com/vovakirdan/ephemera/internal/storage"
)

// Options configures a Model.
type Options struct {
	Config   config.Config
	TickRate int
	Seed     int64  // 0 picks a time-based seed per run
	Player   string // Recorded with each run; "local" when empty
	Store    *storage.Store
	Lore     *lore.Fallback
	Logger   *log.Logger

	// Context bounds the session; cancelling it stops the loop and any lore request.
	Context context.Context
}

type view int

const (
	viewStart view = iota
	viewPlaying
	viewEvolving
	viewGameOver
	viewVictory
)

// Model is the Bubble Tea model for one player's session.
type Model struct {
	ctx     context.Context
	opts    Options
	session *Session
	logger  *log.Logger

	keys  KeyMap
	help  help.Model
	xp    progress.Model
	spin  spinner.Model
	steer Steer

	view          view
	frame         FrameMsg
	width, height int

	seed     int64
	runs     int
	runStart time.Time
	saved    bool

	evolveLevel int
	loreText    string
	loreLoading bool
	loreToken   int
	loreCancel  context.CancelFunc

	quitting bool
}

// NewModel creates a session model showing the start screen.
func NewModel(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Lore == nil {
		opts.Lore = lore.NewFallback(nil, opts.Config.Lore.Timeout, opts.Logger)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		ctx:     opts.Context,
		opts:    opts,
		session: NewSession(opts.Config, opts.TickRate, opts.Logger),
		logger:  opts.Logger,
		keys:    DefaultKeyMap(),
		help:    h,
		xp:      progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(30)),
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:   80,
		height:  24,
	}
	m.session.Resize(m.width, m.fieldRows())
	return m
}

// Init starts listening for frames and engine events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForFrame(m.session.Frames()),
		waitForEvent(m.session.Events()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		// Releasing focus releases the skill like a button release.
		m.session.SetSkill(false)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.xp.Width = core.Clamp(msg.Width/3, 10, 40)
		m.session.Resize(m.width, m.fieldRows())
		return m, nil

	case FrameMsg:
		m.frame = msg
		return m, waitForFrame(m.session.Frames())

	case EvolutionMsg:
		return m.handleEvolution(msg)

	case GameOverMsg:
		m.session.Pause()
		m.frame = m.session.Render()
		m.view = viewGameOver
		m.finish(storage.OutcomeGameOver)
		return m, waitForEvent(m.session.Events())

	case LoreMsg:
		if msg.Token != m.loreToken || m.view != viewEvolving {
			return m, nil
		}
		m.loreText = msg.Text
		m.loreLoading = false
		return m, nil

	case spinner.TickMsg:
		if !m.loreLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.session.Resize(m.width, m.fieldRows())
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		return m.quit()
	}

	switch m.view {
	case viewStart:
		if action == core.ActionConfirm || action == core.ActionSkill {
			m.startRun()
		}

	case viewPlaying:
		if action == core.ActionSkill {
			m.session.SetSkill(!m.frame.Status.SkillActive)
			return m, nil
		}
		if m.steer.Apply(action, m.width, m.fieldRows()) {
			m.applySteer()
		}

	case viewEvolving:
		if action == core.ActionConfirm {
			m.cancelLore()
			m.view = viewPlaying
			m.session.Resume(m.ctx)
		}

	case viewGameOver, viewVictory:
		if action == core.ActionRestart || action == core.ActionConfirm {
			m.startRun()
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.view != viewPlaying {
		return m, nil
	}
	row := msg.Y - hudHeight
	if row < 0 || row >= m.fieldRows() {
		return m, nil
	}

	m.steer = Steer{}
	m.session.PointAt(msg.X, row)

	if msg.Button == tea.MouseButtonLeft {
		switch msg.Action {
		case tea.MouseActionPress:
			m.session.SetSkill(true)
		case tea.MouseActionRelease:
			m.session.SetSkill(false)
		}
	}
	return m, nil
}

func (m Model) handleEvolution(msg EvolutionMsg) (tea.Model, tea.Cmd) {
	m.session.Pause()
	m.frame = m.session.Render()
	next := waitForEvent(m.session.Events())

	if msg.Level > m.frame.Status.MaxLevel {
		m.view = viewVictory
		m.finish(storage.OutcomeVictory)
		return m, next
	}

	m.cancelLore()
	m.view = viewEvolving
	m.evolveLevel = msg.Level
	m.loreText = ""
	m.loreLoading = true
	m.loreToken++

	ctx, cancel := context.WithCancel(m.ctx)
	m.loreCancel = cancel
	info := m.session.Game().Species().Lookup(msg.Level)
	return m, tea.Batch(next, m.spin.Tick, describeCmd(ctx, m.opts.Lore, m.loreToken, msg.Level, info))
}

// startRun resets the engine and activates the loop.
func (m *Model) startRun() {
	m.cancelLore()
	m.seed = m.opts.Seed
	if m.seed == 0 || m.runs > 0 {
		m.seed = time.Now().UnixNano()
	}
	m.runs++
	m.runStart = time.Now()
	m.saved = false
	m.steer = Steer{}
	m.view = viewPlaying
	m.session.Start(m.ctx, m.seed)
}

// finish records the run once.
func (m *Model) finish(outcome storage.Outcome) {
	if m.saved || m.runs == 0 {
		return
	}
	m.saved = true
	st := m.frame.Status
	m.logger.Info("run finished", "outcome", outcome, "score", st.Score, "level", st.Level)
	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		Player:   m.opts.Player,
		Score:    st.Score,
		Level:    min(st.Level, st.MaxLevel),
		Outcome:  outcome,
		Duration: time.Since(m.runStart),
		Seed:     m.seed,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.cancelLore()
	m.session.Stop()
	if m.view == viewPlaying || m.view == viewEvolving {
		m.frame.Status = m.session.Status()
		if m.frame.Status.Score > 0 {
			m.finish(storage.OutcomeAbandoned)
		}
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) cancelLore() {
	if m.loreCancel != nil {
		m.loreCancel()
		m.loreCancel = nil
	}
	m.loreLoading = false
}

func (m Model) applySteer() {
	if m.steer.Centered() {
		m.session.CenterPointer()
		return
	}
	col, row := m.steer.Cell(m.width, m.fieldRows())
	m.session.PointAt(col, row)
}

// fieldRows is the playfield height left after the HUD and help lines.
func (m Model) fieldRows() int {
	rows := m.height - hudHeight - helpHeight
	if m.help.ShowAll {
		rows -= 4
	}
	return max(rows, 1)
}

func describeCmd(ctx context.Context, f *lore.Fallback, token, level int, info species.Info) tea.Cmd {
	return func() tea.Msg {
		return LoreMsg{Token: token, Text: f.Describe(ctx, level, info)}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var field string
	switch m.view {
	case viewStart:
		field = m.startView()
	case viewEvolving:
		field = m.evolutionView()
	case viewGameOver:
		field = m.gameOverView()
	case viewVictory:
		field = m.victoryView()
	default:
		field = m.frame.View
	}

	hud := "\n"
	if m.view != viewStart {
		hud = m.renderHUD()
	}
	return hud + "\n" + field + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session returns the engine session backing the model.
func (m Model) Session() *Session {
	return m.session
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.session.Stop()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
