// Package traffic implements Traffic Dodge: the player steers a car through
// downward-scrolling traffic, scoring for every car that gets past and
// losing points on every crash. Difficulty rises on a fixed timer and the
// game ends after a fixed number of crashes.
package traffic

import (
	"github.com/vovakirdan/tui-traffic/internal/config"
	"github.com/vovakirdan/tui-traffic/internal/core"
)

// Game implements the Traffic Dodge game logic.
type Game struct {
	cfg      config.TrafficConfig
	schedule config.Schedule
	runtime  core.RuntimeConfig

	player core.Box
	cars   *CarManager

	spawnTimer *core.Timer
	levelTimer *core.Timer

	score      int
	level      int
	carsPassed int
	collisions int
	speed      float64
	paused     bool
	gameOver   bool
	tooSmall   bool // Playfield cannot fit the lanes; simulation is frozen

	menu   PauseMenu
	tick   uint64
	scroll float64 // Road marking offset, for rendering only
	events []core.Event
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.TrafficConfig) *Game {
	return &Game{
		cfg:      cfg,
		schedule: config.NewSchedule(cfg),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "traffic"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Traffic Dodge"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate < 1 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	g.score = 0
	g.level = g.cfg.Difficulty.StartLevel
	g.carsPassed = 0
	g.collisions = 0
	g.speed = g.cfg.Difficulty.StartSpeed
	g.paused = false
	g.gameOver = false
	g.tick = 0
	g.scroll = 0
	g.events = nil
	g.menu.Reset()

	if g.cars == nil {
		g.cars = NewCarManager(runtime.Seed, g.cfg.Cars.Lanes, runtime.ScreenW, g.cfg.Cars.Width, g.cfg.Cars.Height)
	} else {
		g.cars.SetFieldWidth(runtime.ScreenW)
		g.cars.Reset(runtime.Seed)
	}

	g.spawnTimer = core.NewTimer(g.schedule.SpawnDelay(g.level), runtime.TickRate)
	g.levelTimer = core.NewTimer(g.schedule.LevelInterval(), runtime.TickRate)

	g.placePlayer()
	g.updateTooSmall()

	// The first car is on its way immediately.
	if !g.tooSmall {
		g.spawnCar()
	}
}

// placePlayer puts the player at its start position: centered, a few rows
// above the bottom of the playfield.
func (g *Game) placePlayer() {
	w, h := float64(g.cfg.Player.Width), float64(g.cfg.Player.Height)
	x := (float64(g.runtime.ScreenW) - w) / 2
	y := float64(g.runtime.ScreenH-g.cfg.Player.BottomOffset) - h
	g.player = core.NewBox(x, y, w, h)
	g.player.ClampTo(g.fieldW(), g.fieldH())
}

// Resize adapts the playfield to new dimensions without resetting the game.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.cars != nil {
		g.cars.SetFieldWidth(w)
	}
	g.player.ClampTo(g.fieldW(), g.fieldH())
	g.updateTooSmall()
}

// MinSize returns the smallest playfield the game can run in.
func (g *Game) MinSize() (int, int) {
	w := max(g.cfg.Cars.Lanes*g.cfg.Cars.Width, g.cfg.Player.Width)
	h := g.cfg.Player.Height + g.cfg.Player.BottomOffset + g.cfg.Cars.Height
	return w, h
}

func (g *Game) updateTooSmall() {
	minW, minH := g.MinSize()
	g.tooSmall = g.runtime.ScreenW < minW || g.runtime.ScreenH < minH
}

func (g *Game) fieldW() float64 { return float64(g.runtime.ScreenW) }
func (g *Game) fieldH() float64 { return float64(g.runtime.ScreenH) }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if g.gameOver || g.tooSmall {
		return g.result()
	}

	if in.JustPressed(core.ActionPause) {
		g.setPaused(!g.paused)
		return g.result()
	}

	if g.paused {
		g.handlePauseMenu(in)
		return g.result()
	}

	if in.JustPressed(core.ActionRestart) {
		g.emit(core.EventRestartRequested, -1)
		return g.result()
	}

	g.tick++
	dt := 1 / float64(g.runtime.TickRate)

	g.steer(in)
	g.player.Integrate(dt)
	g.player.ClampTo(g.fieldW(), g.fieldH())

	g.cars.Move(dt)
	g.scroll += g.schedule.CarVelocity(g.speed) * dt

	if g.spawnTimer.Advance() {
		g.spawnCar()
	}
	if g.cfg.Difficulty.Enabled && g.levelTimer.Advance() {
		g.levelUp()
	}

	for _, car := range g.cars.RemovePassed(g.runtime.ScreenH) {
		g.carsPassed++
		g.score += g.schedule.PassPoints(g.level)
		g.emit(core.EventCarPassed, car.Lane)
	}

	for !g.gameOver {
		car, hit := g.cars.Hit(g.player)
		if !hit {
			break
		}
		g.crash(car)
	}

	return g.result()
}

// steer maps held direction keys to player velocity. Left wins over right
// and up over down when both are held.
func (g *Game) steer(in core.InputFrame) {
	g.player.SetVelocity(0, 0)

	switch {
	case in.Has(core.ActionLeft):
		g.player.VX = -g.cfg.Player.SpeedX
	case in.Has(core.ActionRight):
		g.player.VX = g.cfg.Player.SpeedX
	}

	switch {
	case in.Has(core.ActionUp):
		g.player.VY = -g.cfg.Player.SpeedY
	case in.Has(core.ActionDown):
		g.player.VY = g.cfg.Player.SpeedY
	}
}

func (g *Game) handlePauseMenu(in core.InputFrame) {
	switch {
	case in.JustPressed(core.ActionRestart):
		g.emit(core.EventRestartRequested, -1)
	case in.JustPressed(core.ActionUp):
		g.menu.Up()
	case in.JustPressed(core.ActionDown):
		g.menu.Down()
	case in.JustPressed(core.ActionConfirm):
		switch g.menu.Selected() {
		case MenuResume:
			g.setPaused(false)
		case MenuRestart:
			g.emit(core.EventRestartRequested, -1)
		}
	}
}

func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	if paused {
		g.menu.Reset()
		g.emit(core.EventPaused, -1)
	} else {
		g.emit(core.EventResumed, -1)
	}
}

func (g *Game) spawnCar() {
	car := g.cars.Spawn(g.schedule.CarVelocity(g.speed))
	g.emit(core.EventCarSpawned, car.Lane)
}

func (g *Game) levelUp() {
	g.level++
	g.speed += g.cfg.Difficulty.SpeedStep
	g.spawnTimer.SetDelay(g.schedule.SpawnDelay(g.level), g.runtime.TickRate)
	g.emit(core.EventLevelUp, -1)
}

func (g *Game) crash(car Car) {
	g.collisions++
	g.score = max(0, g.score-g.cfg.Scoring.CollisionPenalty)
	g.emit(core.EventCollision, car.Lane)

	if g.collisions >= g.cfg.Scoring.MaxCollisions {
		g.paused = true
		g.gameOver = true
		g.emit(core.EventGameOver, -1)
	}
}

func (g *Game) emit(kind core.EventKind, lane int) {
	g.events = append(g.events, core.Event{
		Kind:  kind,
		Tick:  g.tick,
		Score: g.score,
		Level: g.level,
		Lane:  lane,
	})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current HUD state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		Level:      g.level,
		CarsPassed: g.carsPassed,
		Collisions: g.collisions,
		MaxHits:    g.cfg.Scoring.MaxCollisions,
		Paused:     g.paused,
		GameOver:   g.gameOver,
	}
}
