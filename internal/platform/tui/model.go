package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-traffic/internal/core"
)

// Game is what the host needs from a game.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Resize(w, h int)
}

// Options configures the host.
type Options struct {
	// Runtime holds the full terminal size; the playfield is smaller by
	// the HUD and footer rows.
	Runtime core.RuntimeConfig

	// HoldTicks is how long a direction key press counts as held.
	HoldTicks int

	// Logger receives game events. Nil discards them.
	Logger *log.Logger
}

// Model is the Bubble Tea model running a game.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig // Playfield-sized runtime config
	width     int
	keys      KeyMap
	help      help.Model
	input     *holdTracker
	logger    *log.Logger
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate < 1 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	width := cfg.ScreenW
	cfg.ScreenH = max(0, cfg.ScreenH-chromeHeight)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		width:  width,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  newHoldTracker(opts.HoldTicks),
		logger: logger.With("game", game.ID()),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started",
		"seed", m.config.Seed, "width", m.config.ScreenW, "height", m.config.ScreenH, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		s := m.game.State()
		m.logger.Info("quit", "score", s.Score, "level", s.Level, "passed", s.CarsPassed)
		return m, tea.Quit
	}
	m.input.Press(action)
	return m, nil
}

// handleResize resizes the playfield without resetting the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.help.Width = msg.Width
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(0, msg.Height-chromeHeight)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.logger.Debug("resized", "width", m.config.ScreenW, "height", m.config.ScreenH)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.input.Frame()

	if m.gameState.GameOver && (in.JustPressed(core.ActionRestart) || in.JustPressed(core.ActionConfirm)) {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in)
	m.gameState = result.State
	m.logEvents(result.Events)

	for _, e := range result.Events {
		switch e.Kind {
		case core.EventResumed:
			// Menu navigation must not carry over as held movement.
			m.input.Release()
		case core.EventRestartRequested:
			m.restart()
			return m, tickCmd(m.config.TickRate)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// restart starts a new run with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.input.Release()
	m.logger.Info("game restarted", "seed", m.config.Seed)
}

func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventCarSpawned, core.EventCarPassed:
			m.logger.Debug(e.Kind.String(), "tick", e.Tick, "lane", e.Lane, "score", e.Score)
		case core.EventCollision:
			m.logger.Info("collision",
				"tick", e.Tick, "lane", e.Lane, "score", e.Score, "collisions", m.gameState.Collisions)
		case core.EventLevelUp:
			m.logger.Info("level up", "tick", e.Tick, "level", e.Level)
		case core.EventGameOver:
			m.logger.Info("game over",
				"score", e.Score, "level", e.Level, "passed", m.gameState.CarsPassed, "tick", e.Tick)
		default:
			m.logger.Debug(e.Kind.String(), "tick", e.Tick)
		}
	}
}

// View renders HUD, playfield and help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHUD(m.game.Title(), m.game.State(), m.width),
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a game and blocks until it exits.
func Run(game Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
