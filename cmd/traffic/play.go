package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-traffic/internal/config"
	"github.com/vovakirdan/tui-traffic/internal/core"
	"github.com/vovakirdan/tui-traffic/internal/games/traffic"
	"github.com/vovakirdan/tui-traffic/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Traffic Dodge",
	Long: `Start a game.

Controls:
  Arrows/WASD - Steer
  P/Esc       - Pause menu (Resume / Restart)
  R           - Restart (paused or after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower traffic, slower escalation, 7 crashes allowed
  normal - The classic rules
  hard   - Starts at level 3, 3 crashes allowed
  fixed  - Traffic never speeds up

Examples:
  traffic play
  traffic play --difficulty easy
  traffic play --config ./my-traffic.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := config.ValidateTickRate(flagFPS); err != nil {
		return fmt.Errorf("invalid --fps: %w", err)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	width, height := terminalSize()
	return play(preset, width, height)
}

// play loads the config, applies the preset and runs the game until the
// player quits.
func play(preset config.DifficultyPreset, width, height int) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	logger, closeLog, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	logger.Info("config loaded", "source", source, "difficulty", string(preset))

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	game := traffic.New(cfg)

	if err := tui.Run(game, tui.Options{
		Runtime:   runtime,
		HoldTicks: config.NewSchedule(cfg).HoldTicks(flagFPS),
		Logger:    logger,
	}); err != nil {
		logger.Error("game crashed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
