package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slots/internal/game"
	"github.com/vovakirdan/tui-slots/internal/platform/window"
)

var flagWindowSound bool

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a resizable 960x530 window.

Controls are the same as in the terminal; Esc or Q closes the window.

Examples:
  slots window
  slots window --sound --seed 7`,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagWindowSound, "sound", false, "Play reel sound effects")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "slots")

	gate, err := startCatalog(cmd.Context(), logger)
	if err != nil {
		return err
	}

	opts, closeSound := soundOptions(flagWindowSound || cfg.Sound.Enabled, logger)
	defer closeSound()

	frame := window.NewFrame()
	session := game.NewSession(cfg, gate, frame, logger, opts...)
	if err := window.Run(session, frame, logger); err != nil {
		return err
	}
	return session.Err()
}
