package core

// RuntimeConfig is what the platform hands a game on Reset: the terminal
// size it renders into, the tick rate, the seed of the obstacle stream and
// the persisted best score.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
	HighScore int   // Best score loaded at startup, carried into the game
}

// DefaultConfig returns an 80x24 terminal at 60 ticks per second.
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
	Score        int  // Current score
	HighScore    int  // Best score seen during this process
	GameOver     bool // Whether the game is waiting for a restart
	NewHighScore bool // Whether the current run beat the previous best
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
