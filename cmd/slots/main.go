// slots is a slot-machine mini-game: pick a symbol, spin the reel, and win
// if it stops on your pick. It plays in the terminal, in a window, or over SSH.
//
// Usage:
//
//	slots play               - Play in the terminal
//	slots window             - Play in a desktop window
//	slots serve              - Start SSH server for remote play
//	slots symbols            - List playable symbols of the catalog
//	slots catalog            - Print the catalog document
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible spins
//	--config <path>     - Custom engine config YAML
//	--catalog <loc>     - Catalog file path or http(s) URL (default: built in)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slots/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagCatalog  string
	flagLogLevel string

	// cfg is loaded once before any subcommand runs.
	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slots",
	Short: "Slots - pick a symbol and spin",
	Long: `Slots is a small slot-machine game. Choose a target symbol, press
play and watch the reel; if it stops on your symbol, you win.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  symbols  - List playable symbols
  catalog  - Print the catalog document

Examples:
  slots play
  slots play --seed 42
  slots window --catalog ./my-catalog.json
  slots serve --ssh :2222 --metrics :9090
  slots catalog --format json`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Catalog file path or http(s) URL")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(catalogCmd)
}

// loadConfig reads the config file and environment, then applies the flags
// the user actually set on top.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		loaded.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		loaded.Seed = flagSeed
	}
	if flags.Changed("catalog") {
		loaded.Catalog = flagCatalog
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = flagLogLevel
	}
	if err := config.Validate(loaded); err != nil {
		return err
	}

	cfg = loaded
	return nil
}
