package core

// RuntimeConfig is what the platform passes to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Playfield width in characters
	ScreenH  int   // Playfield height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  22,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the HUD-facing state record of a game.
type GameState struct {
	Score      int
	Level      int
	CarsPassed int
	Collisions int
	MaxHits    int // Collisions allowed before game over
	Paused     bool
	GameOver   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
