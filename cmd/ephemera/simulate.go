package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ephemera/internal/config"
	"github.com/vovakirdan/ephemera/internal/core"
	"github.com/vovakirdan/ephemera/internal/games/ephemera"
	"github.com/vovakirdan/ephemera/internal/telemetry"
)

var (
	flagTicks        int
	flagOutput       string
	flagPointerEvery int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a terminal UI.

A scripted pointer wanders around the screen, picking a new target every
--pointer-every ticks. Evolution screens are dismissed immediately. The
run stops after --ticks ticks, on game over or on victory.

With --output, telemetry samples and run events are written as CSV files
(telemetry.csv, events.csv) next to the configuration used (config.yaml).

Examples:
  ephemera simulate
  ephemera simulate --ticks 20000 --seed 42
  ephemera simulate --difficulty hard --output ./runs/hard-42`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum number of ticks to simulate")
	simulateCmd.Flags().StringVar(&flagOutput, "output", "", "Directory for CSV telemetry output (disabled if empty)")
	simulateCmd.Flags().IntVar(&flagPointerEvery, "pointer-every", 120, "Ticks between scripted pointer moves")
}

// simulation collects hook output for one headless run. Hooks only record
// what happened; the loop acts on it after Step returns.
type simulation struct {
	recorder *telemetry.Recorder
	maxLevel int

	evolved  int // Level from the last evolution event, 0 if none
	gameOver bool
	err      error
}

func (s *simulation) onTelemetry(t ephemera.Telemetry) {
	s.record(s.recorder.WriteSample(telemetry.FromTelemetry(t)))
}

func (s *simulation) onEvolution(level int) {
	s.evolved = level
}

func (s *simulation) onGameOver(int) {
	s.gameOver = true
}

// record keeps the first write error.
func (s *simulation) record(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// afterStep writes events for the tick that just ran. It reports whether
// the run ended.
func (s *simulation) afterStep(g *ephemera.Game, logger *log.Logger) bool {
	st := g.Status()
	switch {
	case s.gameOver:
		s.record(s.recorder.WriteEvent(telemetry.Event{Tick: st.Tick, Kind: telemetry.EventGameOver, Level: st.Level, Score: st.Score}))
		return true

	case s.evolved > s.maxLevel:
		s.record(s.recorder.WriteEvent(telemetry.Event{Tick: st.Tick, Kind: telemetry.EventVictory, Level: s.evolved, Score: st.Score}))
		return true

	case s.evolved > 0:
		s.record(s.recorder.WriteEvent(telemetry.Event{Tick: st.Tick, Kind: telemetry.EventEvolution, Level: s.evolved, Score: st.Score}))
		logger.Debug("evolved", "tick", st.Tick, "level", s.evolved, "species", st.SpeciesName)
		s.evolved = 0
		g.Resume()
	}
	return false
}

// simOptions configures a headless run.
type simOptions struct {
	Ticks        int
	PointerEvery int
	FPS          int
	Seed         int64
}

// simResult summarizes a headless run.
type simResult struct {
	Ticks  int
	Status ephemera.Status
	Hash   uint64
}

// simulate runs the engine without a driver, as fast as possible.
func simulate(cfg config.Config, opts simOptions, recorder *telemetry.Recorder, logger *log.Logger) (simResult, error) {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	dt := time.Second / time.Duration(fps)

	sim := &simulation{recorder: recorder, maxLevel: len(cfg.Species)}
	game := ephemera.New(cfg, ephemera.Hooks{
		Telemetry:        sim.onTelemetry,
		EvolutionStarted: sim.onEvolution,
		GameOver:         sim.onGameOver,
	})

	rc := core.DefaultConfig()
	rc.Seed = opts.Seed
	game.Reset(rc)

	// The scripted pointer has its own stream so the world stays reproducible
	// for a given seed regardless of the pointer cadence.
	pointer := rand.New(rand.NewSource(opts.Seed ^ 0x5eed))
	every := max(opts.PointerEvery, 1)
	w, h := float64(rc.ScreenW), float64(rc.ScreenH)

	ticks := 0
	for ticks < opts.Ticks {
		if ticks%every == 0 {
			game.SetPointer(core.RandRange(pointer, 0, w), core.RandRange(pointer, 0, h), w, h)
		}
		game.Step(dt)
		ticks++
		if sim.afterStep(game, logger) {
			break
		}
	}

	snap := game.Snapshot()
	return simResult{Ticks: ticks, Status: game.Status(), Hash: snap.Hash()}, sim.err
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger, err := newLogger("simulate", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	recorder, err := telemetry.NewRecorder(flagOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer recorder.Close()
	if err := recorder.WriteConfig(cfg); err != nil {
		logger.Warn("could not write config", "error", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("simulation started", "seed", seed, "ticks", flagTicks, "output", recorder.Dir())
	start := time.Now()

	res, err := simulate(cfg, simOptions{
		Ticks:        flagTicks,
		PointerEvery: flagPointerEvery,
		FPS:          flagFPS,
		Seed:         seed,
	}, recorder, logger)
	if err != nil {
		logger.Error("telemetry output failed", "error", err)
	}
	logger.Info("simulation finished", "elapsed", time.Since(start).Round(time.Millisecond))

	st := res.Status
	fmt.Printf("Seed:      %d\n", seed)
	fmt.Printf("Ticks:     %d\n", res.Ticks)
	fmt.Printf("Phase:     %s\n", st.Phase)
	fmt.Printf("Score:     %d\n", st.Score)
	fmt.Printf("Level:     %d/%d (%s)\n", st.Level, st.MaxLevel, st.SpeciesName)
	fmt.Printf("XP:        %d/%d\n", st.Experience, st.Ceiling)
	fmt.Printf("Particles: %.1f\n", st.Particles)
	fmt.Printf("Hash:      %016x\n", res.Hash)
	if recorder != nil {
		fmt.Printf("Output:    %s\n", recorder.Dir())
	}
}
