package traffic

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-traffic/internal/config"
	"github.com/vovakirdan/tui-traffic/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  22,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.DefaultTrafficConfig())
	g.Reset(testRuntime(42))
	return g
}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func pressed(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Press(a)
	}
	return in
}

// clearRoad removes every car so a test controls the traffic.
func clearRoad(g *Game) {
	g.cars.Reset(g.runtime.Seed)
}

// placeCar puts a car at an exact position.
func placeCar(g *Game, x, y, vy float64) {
	body := core.NewBox(x, y, float64(g.cfg.Cars.Width), float64(g.cfg.Cars.Height))
	body.SetVelocity(0, vy)
	g.cars.nextID++
	g.cars.cars = append(g.cars.cars, Car{ID: g.cars.nextID, Lane: 0, Body: body})
}

// placeCarOnPlayer puts a slow car right on top of the player.
func placeCarOnPlayer(g *Game) {
	placeCar(g, g.player.X, g.player.Y, 1)
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestResetInitialState(t *testing.T) {
	g := newTestGame(t)
	s := g.State()

	if s.Score != 0 || s.Level != 1 || s.CarsPassed != 0 || s.Collisions != 0 {
		t.Errorf("unexpected initial state %+v", s)
	}
	if s.Paused || s.GameOver {
		t.Error("game should start running")
	}
	if s.MaxHits != 5 {
		t.Errorf("MaxHits = %d, expected 5", s.MaxHits)
	}
	if g.speed != 3 {
		t.Errorf("speed = %v, expected 3", g.speed)
	}
	if g.cars.Len() != 1 {
		t.Errorf("one car should be spawned on reset, got %d", g.cars.Len())
	}
	if g.player.X != 38.5 || g.player.Y != 15 {
		t.Errorf("player at (%v, %v), expected (38.5, 15)", g.player.X, g.player.Y)
	}
}

func TestResetClearsProgress(t *testing.T) {
	g := newTestGame(t)
	g.score = 500
	g.level = 4
	g.collisions = 3
	g.Step(pressed(core.ActionPause))

	g.Reset(testRuntime(7))

	s := g.State()
	if s.Score != 0 || s.Level != 1 || s.Collisions != 0 || s.Paused {
		t.Errorf("Reset should clear state, got %+v", s)
	}
	if g.tick != 0 {
		t.Errorf("Reset should clear tick, got %d", g.tick)
	}
}

func TestPassedCarScoresTenTimesLevel(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{1, 10},
		{3, 30},
		{7, 70},
	}

	for _, tc := range tests {
		g := newTestGame(t)
		clearRoad(g)
		g.level = tc.level
		placeCar(g, 6.5, 21.99, 5)

		result := g.Step(core.NewInputFrame())

		if result.State.Score != tc.expected {
			t.Errorf("level %d: score = %d, expected %d", tc.level, result.State.Score, tc.expected)
		}
		if result.State.CarsPassed != 1 {
			t.Errorf("level %d: CarsPassed = %d, expected 1", tc.level, result.State.CarsPassed)
		}
		if g.cars.Len() != 0 {
			t.Errorf("level %d: passed car should be destroyed", tc.level)
		}
		if !hasEvent(result.Events, core.EventCarPassed) {
			t.Errorf("level %d: expected a car_passed event", tc.level)
		}
	}
}

func TestCarStillOnScreenDoesNotScore(t *testing.T) {
	g := newTestGame(t)
	clearRoad(g)
	placeCar(g, 6.5, 20, 5)

	result := g.Step(core.NewInputFrame())

	if result.State.Score != 0 || result.State.CarsPassed != 0 {
		t.Errorf("car inside the playfield should not score, got %+v", result.State)
	}
}

func TestCollisionPenaltyFlooredAtZero(t *testing.T) {
	tests := []struct {
		start    int
		expected int
	}{
		{120, 70},
		{50, 0},
		{30, 0},
		{0, 0},
	}

	for _, tc := range tests {
		g := newTestGame(t)
		clearRoad(g)
		g.score = tc.start
		placeCarOnPlayer(g)

		result := g.Step(core.NewInputFrame())

		if result.State.Score != tc.expected {
			t.Errorf("start %d: score = %d, expected %d", tc.start, result.State.Score, tc.expected)
		}
		if result.State.Collisions != 1 {
			t.Errorf("start %d: collisions = %d, expected 1", tc.start, result.State.Collisions)
		}
		if g.cars.Len() != 0 {
			t.Errorf("start %d: crashed car should be removed", tc.start)
		}
		if !hasEvent(result.Events, core.EventCollision) {
			t.Errorf("start %d: expected a collision event", tc.start)
		}
	}
}

func TestCarCountsOnlyOneCollision(t *testing.T) {
	g := newTestGame(t)
	clearRoad(g)
	placeCarOnPlayer(g)

	for range 10 {
		g.Step(core.NewInputFrame())
	}

	if g.collisions != 1 {
		t.Errorf("a single car should count one collision, got %d", g.collisions)
	}
}

func TestGameEndsAtFifthCollision(t *testing.T) {
	g := newTestGame(t)
	clearRoad(g)

	for i := 1; i <= 5; i++ {
		placeCarOnPlayer(g)
		result := g.Step(core.NewInputFrame())

		if result.State.Collisions != i {
			t.Fatalf("collision %d: count = %d", i, result.State.Collisions)
		}
		if i < 5 && result.State.GameOver {
			t.Fatalf("game ended early at collision %d", i)
		}
		if i == 5 {
			if !result.State.GameOver || !result.State.Paused {
				t.Fatalf("game should be over and paused at collision 5, got %+v", result.State)
			}
			if !hasEvent(result.Events, core.EventGameOver) {
				t.Error("expected a game_over event")
			}
		}
	}

	// Nothing changes after game over
	before := g.Snapshot()
	placeCarOnPlayer(g)
	g.Step(held(core.ActionLeft))
	g.Step(pressed(core.ActionPause))
	after := g.Snapshot()

	if after.Collisions != 5 || after.Tick != before.Tick || after.PlayerX != before.PlayerX {
		t.Errorf("game over should freeze the game, before %+v after %+v", before, after)
	}
	if after.Phase != PhaseGameOver {
		t.Errorf("Phase = %q, expected %q", after.Phase, PhaseGameOver)
	}
}

func TestSimultaneousHitsStopAtGameOver(t *testing.T) {
	g := newTestGame(t)
	clearRoad(g)
	g.collisions = 4
	placeCarOnPlayer(g)
	placeCarOnPlayer(g)

	result := g.Step(core.NewInputFrame())

	if result.State.Collisions != 5 {
		t.Errorf("collisions = %d, expected exactly 5", result.State.Collisions)
	}
	if !result.State.GameOver {
		t.Error("game should be over")
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	g := newTestGame(t)
	for range 30 {
		g.Step(core.NewInputFrame())
	}

	result := g.Step(pressed(core.ActionPause))
	if !result.State.Paused || !hasEvent(result.Events, core.EventPaused) {
		t.Fatalf("pause should be on, got %+v", result.State)
	}

	before := g.Snapshot()
	for range 3000 {
		g.Step(held(core.ActionLeft, core.ActionUp))
	}
	after := g.Snapshot()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("paused game changed:\nbefore %+v\nafter  %+v", before, after)
	}

	result = g.Step(pressed(core.ActionPause))
	if result.State.Paused || !hasEvent(result.Events, core.EventResumed) {
		t.Fatalf("second pause press should resume, got %+v", result.State)
	}

	g.Step(core.NewInputFrame())
	resumed := g.Snapshot()
	if resumed.Tick != before.Tick+1 {
		t.Error("simulation should continue after resume")
	}
	if resumed.LevelIn != before.LevelIn-1 {
		t.Errorf("level timer should pick up where it stopped: %d -> %d", before.LevelIn, resumed.LevelIn)
	}
}

func TestPauseMenu(t *testing.T) {
	t.Run("resume", func(t *testing.T) {
		g := newTestGame(t)
		g.Step(pressed(core.ActionPause))
		result := g.Step(pressed(core.ActionConfirm))

		if result.State.Paused {
			t.Error("confirming Resume should unpause")
		}
	})

	t.Run("restart entry", func(t *testing.T) {
		g := newTestGame(t)
		g.Step(pressed(core.ActionPause))
		g.Step(pressed(core.ActionDown))
		if g.menu.Selected() != MenuRestart {
			t.Fatalf("cursor = %v, expected Restart", g.menu.Selected())
		}
		result := g.Step(pressed(core.ActionConfirm))

		if !hasEvent(result.Events, core.EventRestartRequested) {
			t.Error("confirming Restart should request a restart")
		}
	})

	t.Run("restart key", func(t *testing.T) {
		g := newTestGame(t)
		g.Step(pressed(core.ActionPause))
		result := g.Step(pressed(core.ActionRestart))

		if !hasEvent(result.Events, core.EventRestartRequested) {
			t.Error("R while paused should request a restart")
		}
	})

	t.Run("cursor bounds", func(t *testing.T) {
		var m PauseMenu
		m.Up()
		if m.Selected() != MenuResume {
			t.Error("cursor should stop at the first entry")
		}
		m.Down()
		m.Down()
		if m.Selected() != MenuRestart {
			t.Error("cursor should stop at the last entry")
		}
	})

	t.Run("restart key while running", func(t *testing.T) {
		g := newTestGame(t)
		g.Step(held())
		before := g.Snapshot()

		result := g.Step(pressed(core.ActionRestart))
		if !hasEvent(result.Events, core.EventRestartRequested) {
			t.Error("R while running should request a restart")
		}
		if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
			t.Errorf("restart request should not advance the game:\nbefore %+v\nafter  %+v", before, after)
		}
	})
}

func TestSteering(t *testing.T) {
	tests := []struct {
		name   string
		in     core.InputFrame
		dx, dy float64
	}{
		{"left", held(core.ActionLeft), -0.5, 0},
		{"right", held(core.ActionRight), 0.5, 0},
		{"up", held(core.ActionUp), 0, -0.2},
		{"down", held(core.ActionDown), 0, 0.2},
		{"left wins over right", held(core.ActionLeft, core.ActionRight), -0.5, 0},
		{"up wins over down", held(core.ActionUp, core.ActionDown), 0, -0.2},
		{"diagonal", held(core.ActionRight, core.ActionDown), 0.5, 0.2},
		{"released", core.NewInputFrame(), 0, 0},
	}

	const eps = 1e-9
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			clearRoad(g)
			x, y := g.player.X, g.player.Y

			g.Step(tc.in)

			if dx := g.player.X - x; dx < tc.dx-eps || dx > tc.dx+eps {
				t.Errorf("dx = %v, expected %v", dx, tc.dx)
			}
			if dy := g.player.Y - y; dy < tc.dy-eps || dy > tc.dy+eps {
				t.Errorf("dy = %v, expected %v", dy, tc.dy)
			}
		})
	}
}

func TestPlayerStaysInsidePlayfield(t *testing.T) {
	g := newTestGame(t)
	clearRoad(g)

	for range 300 {
		g.Step(held(core.ActionLeft, core.ActionUp))
	}
	if g.player.X != 0 || g.player.Y != 0 {
		t.Errorf("player at (%v, %v), expected clamped to (0, 0)", g.player.X, g.player.Y)
	}

	clearRoad(g)
	for range 300 {
		g.Step(held(core.ActionRight, core.ActionDown))
	}
	if g.player.Right() != 80 || g.player.Bottom() != 22 {
		t.Errorf("player bottom-right at (%v, %v), expected (80, 22)", g.player.Right(), g.player.Bottom())
	}
}

func TestLevelUpShrinksSpawnInterval(t *testing.T) {
	cfg := config.DefaultTrafficConfig()
	cfg.Difficulty.IntervalMs = 1000 // 60 ticks
	g := New(cfg)
	g.Reset(testRuntime(42))

	if g.spawnTimer.Period() != 114 {
		t.Fatalf("initial spawn period = %d ticks, expected 114", g.spawnTimer.Period())
	}

	var levelUps int
	for range 59 {
		if hasEvent(g.Step(core.NewInputFrame()).Events, core.EventLevelUp) {
			levelUps++
		}
	}
	if levelUps != 0 || g.level != 1 {
		t.Fatalf("level rose too early: level %d", g.level)
	}

	result := g.Step(core.NewInputFrame())
	if !hasEvent(result.Events, core.EventLevelUp) || result.State.Level != 2 {
		t.Fatalf("level should rise on tick 60, got level %d", result.State.Level)
	}
	if g.speed != 3.5 {
		t.Errorf("speed = %v, expected 3.5", g.speed)
	}
	if g.spawnTimer.Period() != 108 {
		t.Errorf("spawn period at level 2 = %d, expected 108", g.spawnTimer.Period())
	}

	for range 60 {
		g.Step(core.NewInputFrame())
	}
	if g.level != 3 || g.spawnTimer.Period() != 102 {
		t.Errorf("level 3 expected with period 102, got level %d period %d", g.level, g.spawnTimer.Period())
	}
}

func TestFixedDifficultyNeverLevelsUp(t *testing.T) {
	cfg := config.DefaultTrafficConfig()
	cfg.Difficulty.IntervalMs = 1000
	config.ApplyPreset(&cfg, config.DifficultyFixed)
	g := New(cfg)
	g.Reset(testRuntime(42))

	for range 200 {
		g.Step(core.NewInputFrame())
	}
	if g.level != 1 {
		t.Errorf("level = %d, expected 1 with escalation disabled", g.level)
	}
}

func TestSpawnCadence(t *testing.T) {
	g := newTestGame(t)
	// Park the player left of the first lane so no car is ever hit.
	g.player.X, g.player.Y = 0, 0

	spawned := 0
	for range 114 * 3 {
		if hasEvent(g.Step(core.NewInputFrame()).Events, core.EventCarSpawned) {
			spawned++
		}
	}
	if spawned != 3 {
		t.Errorf("expected 3 spawns in 3 periods, got %d", spawned)
	}
}

func TestNewCarsUseCurrentSpeed(t *testing.T) {
	g := newTestGame(t)
	clearRoad(g)
	g.speed = 5

	g.spawnCar()

	car := g.cars.Cars()[0]
	if car.Body.VY != 6 { // 3.5 + 5*0.5
		t.Errorf("car velocity = %v, expected 6", car.Body.VY)
	}
	if car.Body.Y != -3 {
		t.Errorf("car should spawn just above the playfield, got y=%v", car.Body.Y)
	}
}

func TestResizeKeepsState(t *testing.T) {
	g := newTestGame(t)
	clearRoad(g)
	g.score = 90
	g.carsPassed = 9
	g.player.X, g.player.Y = 77, 19

	g.Resize(60, 18)

	s := g.State()
	if s.Score != 90 || s.CarsPassed != 9 {
		t.Errorf("resize should keep progress, got %+v", s)
	}
	if g.player.Right() > 60 || g.player.Bottom() > 18 {
		t.Errorf("player should be clamped to new bounds, at (%v, %v)", g.player.X, g.player.Y)
	}
	if g.cars.LaneCenter(0) != 6 {
		t.Errorf("lane 0 center = %v, expected 6 after resize", g.cars.LaneCenter(0))
	}
}

func TestTooSmallFreezes(t *testing.T) {
	g := newTestGame(t)
	g.Resize(10, 5)

	before := g.Snapshot()
	if before.Phase != PhaseTooSmall {
		t.Fatalf("Phase = %q, expected %q", before.Phase, PhaseTooSmall)
	}
	g.Step(held(core.ActionLeft))
	if after := g.Snapshot(); after.Tick != before.Tick {
		t.Error("too small playfield should freeze the simulation")
	}

	g.Resize(80, 22)
	g.Step(core.NewInputFrame())
	if g.Snapshot().Phase != PhasePlaying {
		t.Error("game should resume once the playfield is big enough")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 1200)
	for i := range inputs {
		switch (i / 40) % 4 {
		case 0:
			inputs[i] = held(core.ActionLeft)
		case 1:
			inputs[i] = held(core.ActionUp)
		case 2:
			inputs[i] = held(core.ActionRight, core.ActionDown)
		default:
			inputs[i] = core.NewInputFrame()
		}
	}

	run := func() Snapshot {
		g := New(config.DefaultTrafficConfig())
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("determinism failed:\nrun1 %+v\nrun2 %+v", s1, s2)
	}
}

func TestEventsCarryScoreAndLevel(t *testing.T) {
	g := newTestGame(t)
	clearRoad(g)
	g.level = 2
	g.score = 100
	placeCarOnPlayer(g)

	result := g.Step(core.NewInputFrame())

	for _, e := range result.Events {
		if e.Kind == core.EventCollision {
			if e.Score != 50 || e.Level != 2 || e.Tick != 1 {
				t.Errorf("collision event = %+v, expected score 50 level 2 tick 1", e)
			}
			return
		}
	}
	t.Error("no collision event")
}
