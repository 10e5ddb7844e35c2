package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-traffic/internal/config"
	"github.com/vovakirdan/tui-traffic/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play",
	Long:  `Shows the difficulty picker and starts the game with the chosen preset.`,
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	if err := config.ValidateTickRate(flagFPS); err != nil {
		return fmt.Errorf("invalid --fps: %w", err)
	}
	width, height := terminalSize()

	result, err := tui.RunMenu("T R A F F I C   D O D G E", width, height)
	if err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	if result.Quit {
		return nil
	}
	return play(result.Preset, result.Width, result.Height)
}
