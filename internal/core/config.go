package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters
	ScreenH  int // Terminal height in characters (game area)
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultTickRate is the fixed simulation rate.
const DefaultTickRate = 60

// HUDRows is the number of screen rows above the playfield.
const HUDRows = 1

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    string // Game-specific phase name (e.g. "idle", "active")
	Score    int    // Current score
	Level    int    // Current level
	GameOver bool   // Whether the last game has ended
	Paused   bool   // Whether the game is paused
	ShowMenu bool   // Whether the Play button is on screen (mouse wanted)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // A quit request was honored this tick
}
