package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slots/internal/game"
	"github.com/vovakirdan/tui-slots/internal/platform/tui"
)

var flagSound bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  1-6            - Pick a target symbol
  Tab/Shift+Tab  - Next/previous symbol
  Space/Enter    - Spin (once a symbol is picked)
  Mouse click    - Pick a symbol or press the spin button
  Ctrl+S         - Save a screenshot to ~/.slots/screenshots
  Q/Ctrl+C       - Quit

Logs go to ~/.slots/slots.log.

Examples:
  slots play
  slots play --seed 42
  slots play --catalog https://example.com/gameData.json
  slots play --sound`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play reel sound effects")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile, "slots")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gate, err := startCatalog(ctx, logger)
	if err != nil {
		return err
	}

	raster, err := tui.NewHalfBlockRasterizer(0)
	if err != nil {
		return err
	}
	rt := runtimeConfig()
	screen := tui.NewScreen(rt.ScreenW, rt.ScreenH, raster)

	opts, closeSound := soundOptions(flagSound || cfg.Sound.Enabled, logger)
	defer closeSound()
	session := game.NewSession(cfg, gate, screen, logger, opts...)
	logger.Info("playing", "seed", session.Seed(), "fps", cfg.TickRate)

	err = tui.Run(ctx, session, screen, logger)
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("error running game: %w", err)
	}
	if serr := session.Err(); serr != nil {
		return serr
	}
	return nil
}
