// traffic is a terminal arcade game: steer through downward-scrolling
// traffic, score for every car that gets past, and survive five crashes.
//
// Usage:
//
//	traffic play            - Play (optionally with --difficulty/--config)
//	traffic menu            - Pick a difficulty, then play
//	traffic config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible traffic
//	--config <path>     - Use a custom game config YAML
//	--log-file <path>   - Write the event log here (default: ~/.traffic/traffic.log)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "traffic",
	Short: "Traffic Dodge - dodge cars in your terminal",
	Long: `Traffic Dodge is a terminal arcade game. Steer your car with the
arrow keys, let the traffic pass for points and avoid crashing:
five crashes and the game is over. Traffic gets faster and denser
every 30 seconds.

Examples:
  traffic play
  traffic play --difficulty hard
  traffic menu
  traffic config > ~/.traffic/configs/traffic.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.traffic/traffic.log", "Event log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
