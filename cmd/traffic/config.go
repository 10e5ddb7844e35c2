package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-traffic/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Prints the configuration the game would use, as YAML.

The config is looked up in this order: --config, then
~/.traffic/configs/traffic.yaml, then ./configs/traffic.yaml, then the
built-in defaults. A --difficulty preset is applied on top.

Examples:
  traffic config
  traffic config --difficulty hard
  traffic config > ~/.traffic/configs/traffic.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "traffic"})

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("effective config", "source", source, "difficulty", string(preset))

	// Untouched defaults are printed as shipped, comments included.
	if source == config.SourceEmbedded && (preset == "" || preset == config.DifficultyNormal) {
		_, err = cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	config.ApplyPreset(&cfg, preset)
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
