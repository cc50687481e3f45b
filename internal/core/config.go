package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and tick rate.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
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
	Level     int  // Current level, 1-indexed; 0 while nothing is loaded
	Levels    int  // Number of levels in the active source
	Loading   bool // A level load is in flight; input is ignored
	Completed bool // The current level is solved
	GameOver  bool // Every level has been solved
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is the contract between the terminal platform and a game.
// Games contain pure logic and draw into a Screen; the platform handles
// input mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game and requests its first level.
	Reset(cfg RuntimeConfig)

	// Resize updates the screen dimensions without touching game state.
	Resize(width, height int)

	// Step advances the game by one tick, consuming the frame's input.
	Step(in InputFrame) StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
