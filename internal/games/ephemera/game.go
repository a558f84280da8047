// Package ephemera implements the simulation core: a player organism that
// roams a bounded world, eats particles and smaller organisms, evolves
// through species tiers and dies when something larger catches it.
//
// The engine is single-threaded. Callers serialize Step, Resume and the
// input setters (the loop driver does this with its step lock).
package ephemera

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/ephemera/internal/camera"
	"github.com/vovakirdan/ephemera/internal/config"
	"github.com/vovakirdan/ephemera/internal/core"
	"github.com/vovakirdan/ephemera/internal/species"
)

// Phase is the run's position in the state machine.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseEvolving
	PhaseGameOver
	PhaseVictory
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseEvolving:
		return "evolving"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Telemetry carries the values shown on the HUD.
type Telemetry struct {
	Tick       uint64
	Score      int
	Level      int
	Experience int
	Ceiling    int // Experience needed for the next evolution
	Particles  float64
}

// Hooks are notified of engine events. They run synchronously inside Step
// and must not call back into the engine. Nil hooks are skipped.
type Hooks struct {
	Telemetry func(Telemetry)

	// EvolutionStarted receives the new level, or MaxLevel+1 on victory.
	EvolutionStarted func(level int)

	GameOver func(finalScore int)
}

// Game owns the authoritative world state.
type Game struct {
	cfg   config.Config
	table *species.Table
	hooks Hooks

	rng    *rand.Rand
	tick   uint64
	clock  float64 // Simulation time in seconds
	score  int
	nextID int

	player    Player
	enemies   []Enemy
	particles []Particle

	worldW, worldH float64

	// Input intents
	screenW, screenH float64
	pointer          core.Vec
	pointerSet       bool

	// Run flags
	started  bool
	running  bool
	evolving bool
	gameOver bool
	victory  bool
}

// New creates an engine for a validated configuration. The run starts with Reset.
func New(cfg config.Config, hooks Hooks) *Game {
	def := core.DefaultConfig()
	return &Game{
		cfg:     cfg,
		table:   species.New(cfg),
		hooks:   hooks,
		worldW:  cfg.World.Width,
		worldH:  cfg.World.Height,
		screenW: float64(def.ScreenW),
		screenH: float64(def.ScreenH),
	}
}

// SetHooks replaces the event hooks.
func (g *Game) SetHooks(h Hooks) {
	g.hooks = h
}

// Species returns the level table the engine runs on.
func (g *Game) Species() *species.Table {
	return g.table
}

// Reset starts a fresh run: player at the world centre with level-1 stats,
// full populations, score 0.
func (g *Game) Reset(rc core.RuntimeConfig) {
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.tick = 0
	g.clock = 0
	g.score = 0
	g.nextID = 0

	if rc.ScreenW > 0 && rc.ScreenH > 0 {
		g.screenW = float64(rc.ScreenW)
		g.screenH = float64(rc.ScreenH)
	}
	g.pointerSet = false
	g.pointer = core.Vec{}

	g.started = true
	g.running = true
	g.evolving = false
	g.gameOver = false
	g.victory = false

	g.resetPlayer()
	g.spawnEnemies()
	g.spawnParticles()
}

// Step advances the world by one tick. dt is clamped to the configured
// maximum and only scales the skill drain and the drift clock; movement is
// applied once per tick. Step does nothing unless the run is running.
func (g *Game) Step(dt time.Duration) core.StepResult {
	if !g.running {
		return core.StepResult{State: g.State()}
	}

	secs := math.Max(0, math.Min(dt.Seconds(), g.cfg.Simulation.MaxDelta.Seconds()))
	g.tick++
	g.clock += secs

	g.updatePlayer(secs)
	g.updateParticles()
	g.updateEnemies()
	g.collectParticles()
	if g.resolveEnemyCollisions() {
		return core.StepResult{State: g.State()}
	}
	g.checkLevelUp()

	if g.tick%uint64(g.cfg.Simulation.TelemetryEvery) == 0 && g.hooks.Telemetry != nil {
		g.hooks.Telemetry(g.telemetry())
	}

	return core.StepResult{State: g.State()}
}

// Resume leaves the evolution pause. It has no effect before the first
// Reset or after the run ended.
func (g *Game) Resume() {
	if !g.started || g.gameOver || g.victory {
		return
	}
	g.running = true
	g.evolving = false
}

// SetPointer records the pointer position in screen coordinates together
// with the current screen size.
func (g *Game) SetPointer(x, y, screenW, screenH float64) {
	g.SetScreenSize(screenW, screenH)
	g.pointer = core.Vec{X: x, Y: y}
	g.pointerSet = true
}

// SetScreenSize updates the viewport size without moving the pointer.
func (g *Game) SetScreenSize(w, h float64) {
	if w > 0 && h > 0 {
		g.screenW, g.screenH = w, h
	}
}

// ClearPointer forgets the pointer so the player coasts to a stop.
func (g *Game) ClearPointer() {
	g.pointerSet = false
}

// Pointer returns the effective pointer position. Before any pointer event
// it sits at the screen centre, which maps onto the player.
func (g *Game) Pointer() core.Vec {
	if !g.pointerSet {
		return core.Vec{X: g.screenW / 2, Y: g.screenH / 2}
	}
	return g.pointer
}

// SetSkillActive arms or releases the species skill. Arming only works
// while running; releasing always works until the run ends.
func (g *Game) SetSkillActive(active bool) {
	if g.gameOver || g.victory {
		return
	}
	if active && !g.running {
		return
	}
	g.player.SkillActive = active
}

// Camera returns the viewport transform for the current player.
func (g *Game) Camera() camera.Transform {
	return camera.New(g.player.Position, g.player.Level, g.screenW, g.screenH)
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	switch {
	case !g.started:
		return PhaseNotStarted
	case g.victory:
		return PhaseVictory
	case g.gameOver:
		return PhaseGameOver
	case g.evolving:
		return PhaseEvolving
	default:
		return PhaseRunning
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.player.Level,
		Running:  g.running,
		Evolving: g.evolving,
		GameOver: g.gameOver,
		Victory:  g.victory,
	}
}

// Status is the HUD view of the run.
type Status struct {
	Telemetry
	Phase       Phase
	SpeciesName string
	SkillName   string
	SkillActive bool
	MaxLevel    int
}

// Status returns the current HUD values.
func (g *Game) Status() Status {
	info := g.table.Lookup(g.player.Level)
	return Status{
		Telemetry:   g.telemetry(),
		Phase:       g.Phase(),
		SpeciesName: g.player.SpeciesName,
		SkillName:   info.Skill.Name,
		SkillActive: g.player.SkillActive,
		MaxLevel:    g.table.MaxLevel(),
	}
}

func (g *Game) telemetry() Telemetry {
	return Telemetry{
		Tick:       g.tick,
		Score:      g.score,
		Level:      g.player.Level,
		Experience: g.player.Experience,
		Ceiling:    g.table.Ceiling(g.player.Level),
		Particles:  g.player.ParticleCount,
	}
}

// randomPosition returns a uniformly distributed point in the world.
func (g *Game) randomPosition() core.Vec {
	return core.Vec{
		X: core.RandRange(g.rng, 0, g.worldW),
		Y: core.RandRange(g.rng, 0, g.worldH),
	}
}

func (g *Game) newID() int {
	g.nextID++
	return g.nextID
}
