package traffic

// Phase is the coarse state of the game.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
	PhaseTooSmall Phase = "too_small"
)

// CarSnapshot is the position of one car.
type CarSnapshot struct {
	ID   uint64
	Lane int
	X, Y float64
}

// Snapshot captures the complete game state for determinism tests.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Score      int
	Level      int
	Speed      float64
	CarsPassed int
	Collisions int
	PlayerX    float64
	PlayerY    float64
	SpawnEvery int // Spawn timer period in ticks
	SpawnIn    int // Ticks until the next car
	LevelIn    int // Ticks until the next level
	Cars       []CarSnapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhaseTooSmall
	case g.gameOver:
		phase = PhaseGameOver
	case g.paused:
		phase = PhasePaused
	}

	cars := make([]CarSnapshot, 0, g.cars.Len())
	for _, c := range g.cars.Cars() {
		cars = append(cars, CarSnapshot{ID: c.ID, Lane: c.Lane, X: c.Body.X, Y: c.Body.Y})
	}

	return Snapshot{
		Tick:       g.tick,
		Phase:      phase,
		Score:      g.score,
		Level:      g.level,
		Speed:      g.speed,
		CarsPassed: g.carsPassed,
		Collisions: g.collisions,
		PlayerX:    g.player.X,
		PlayerY:    g.player.Y,
		SpawnEvery: g.spawnTimer.Period(),
		SpawnIn:    g.spawnTimer.Remaining(),
		LevelIn:    g.levelTimer.Remaining(),
		Cars:       cars,
	}
}
