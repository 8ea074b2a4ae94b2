package core

// RuntimeConfig is what a frontend hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState is the summary a frontend needs for its HUD and for recording
// finished runs.
type GameState struct {
	Score     int  // Current score
	Level     int  // Current level (1-indexed)
	Length    int  // Current creature length
	FoodEaten int  // Food eaten this session
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
	InMenu    bool // Whether the game is showing its title screen
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	// Finished is true only on the tick the game transitioned to game over.
	Finished bool
}
