package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ephemera/internal/platform/tui"
	"github.com/vovakirdan/ephemera/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Mouse            - Steer toward the pointer
  Arrows/WASD      - Move the pointer away from your organism
  C                - Recentre the pointer and coast to a stop
  Space / click    - Toggle or hold your species skill
  Enter            - Start, continue after evolving
  R                - Restart after game over or victory
  ?                - Show all key bindings
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Fewer enemies, narrower level spread
  normal - Default settings
  hard   - More, faster enemies with a wider level spread

Examples:
  ephemera play
  ephemera play --difficulty easy
  ephemera play --seed 42 --fps 30
  ephemera play --config ./my-ephemera.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	}
	logOut := os.Stderr
	if logFile != nil {
		defer logFile.Close()
		logOut = logFile
	}
	logger, err := newLogger("ephemera", logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config:   cfg,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Store:    store,
		Lore:     newLore(cfg, logger),
		Logger:   logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
