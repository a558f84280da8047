package core

// RuntimeConfig contains configuration passed to the engine at (re)start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in screen units (pixels, or scaled terminal cells)
	ScreenH  int   // Screen height in screen units
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for reproducible runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  640,
		ScreenH:  384,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a run.
// Returned by the engine to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current species tier
	Running  bool // Whether ticks currently advance the world
	Evolving bool // Paused on an evolution screen
	GameOver bool // The player was eaten
	Victory  bool // The final tier was completed
}

// Finished reports whether the run reached a terminal state.
func (s GameState) Finished() bool {
	return s.GameOver || s.Victory
}

// StepResult is returned by the engine after each simulation tick.
type StepResult struct {
	State GameState
}
