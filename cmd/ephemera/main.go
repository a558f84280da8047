// ephemera is a terminal survival arcade: steer a tiny organism, eat what is
// smaller, flee what is larger and evolve through eight species.
//
// Usage:
//
//	ephemera play              - Play in the terminal
//	ephemera simulate          - Run a headless simulation
//	ephemera scores            - Show run history
//	ephemera serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.ephemera/runs.db)
//	--config <path>       - Custom configuration YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ephemera/internal/config"
	"github.com/vovakirdan/ephemera/internal/lore"

	// Register lore providers
	_ "github.com/vovakirdan/ephemera/internal/lore/gemini"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ephemera",
	Short: "Ephemera - evolve or be eaten, in your terminal",
	Long: `Ephemera is a terminal survival arcade. You are a tiny organism in a
vast world: eat particles and smaller organisms, evolve through eight
species and avoid anything larger than you.

Available commands:
  play      - Play in the terminal
  simulate  - Run a headless simulation and print or record telemetry
  scores    - View run history
  serve     - Start SSH server for remote play

Examples:
  ephemera play
  ephemera play --difficulty hard
  ephemera simulate --ticks 5000 --seed 42 --output ./out
  ephemera scores
  ephemera serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ephemera/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(prefix string, w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// openLogFile opens ~/.ephemera/ephemera.log for logs written while the TUI
// owns the terminal.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".ephemera")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "ephemera.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// loadConfig loads the configuration and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLore creates the configured generator wrapped in a fallback. A provider
// that cannot be created degrades to the static descriptions.
func newLore(cfg config.Config, logger *log.Logger) *lore.Fallback {
	gen, err := lore.Create(cfg.Lore.Provider, lore.Options{
		Model:    cfg.Lore.Model,
		APIKey:   os.Getenv(cfg.Lore.APIKeyEnv),
		MaxLevel: len(cfg.Species),
	})
	if err != nil {
		logger.Warn("lore provider unavailable, using static text", "provider", cfg.Lore.Provider, "error", err)
		gen = lore.Static{}
	}
	if cfg.Lore.APIKeyEnv != "" && os.Getenv(cfg.Lore.APIKeyEnv) == "" && cfg.Lore.Provider != "static" {
		logger.Info("no lore credential set, evolution text falls back to species descriptions", "env", cfg.Lore.APIKeyEnv)
	}
	return lore.NewFallback(gen, cfg.Lore.Timeout, logger)
}
