package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation and to locate their config file.
type RuntimeConfig struct {
	ScreenW    int    // Host surface width (cells or pixels)
	ScreenH    int    // Host surface height (cells or pixels)
	TickRate   int    // Simulation ticks per second (default 60)
	Seed       int64  // RNG seed for deterministic gameplay
	ConfigPath string // Explicit game config file; empty uses the search path
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Primary score (left side in pong)
	Score2   int  // Second side's score, zero for single-player games
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Scored is true when any score changed during this tick.
	Scored bool
}
