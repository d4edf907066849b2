package core

// RuntimeConfig contains configuration passed to games at initialization.
// Screen bounds come from the host (terminal size, window or monitor size).
type RuntimeConfig struct {
	ScreenW  int // Screen width in cells (terminal) or pixels (window)
	ScreenH  int // Screen height in cells (terminal) or pixels (window)
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Ships remaining
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the simulation is suspended (player pause or hit pause)
	Quitting bool // Set once a quit intent has been observed
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
