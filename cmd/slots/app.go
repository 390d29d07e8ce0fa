package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slots/internal/assets"
	"github.com/vovakirdan/tui-slots/internal/audio"
	"github.com/vovakirdan/tui-slots/internal/core"
	"github.com/vovakirdan/tui-slots/internal/game"
)

// newLogger creates the process logger at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// openLogFile opens ~/.slots/slots.log for append. Terminal play logs there
// so log lines do not tear the alt-screen.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".slots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "slots.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// runtimeConfig describes the local frontend: terminal size, rate and seed.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = cfg.TickRate
	rt.Seed = cfg.Seed
	return rt
}

// startCatalog fetches and validates the catalog document, then decodes its
// images in the background. A bad document is fatal; a failed image only
// keeps the loading screen up.
func startCatalog(ctx context.Context, logger *log.Logger) (*assets.Gate, error) {
	doc, src, err := assets.FetchDocument(ctx, cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	logger.Debug("catalog document", "source", src.Scheme(), "images", len(doc.Images))

	gate := assets.NewGate(logger)
	go func() {
		if err := gate.Load(ctx, doc, assets.SourceOpener(src, cfg.Catalog)); err != nil {
			logger.Error("catalog load failed", "err", err)
		}
	}()
	return gate, nil
}

// soundOptions attaches sound effects to a session when enabled. The
// returned func releases the audio device.
func soundOptions(enabled bool, logger *log.Logger) ([]game.Option, func()) {
	if !enabled {
		return nil, func() {}
	}
	sp, err := audio.NewSpeaker(audio.SampleRate(cfg.Sound))
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return nil, func() {}
	}
	fx := audio.NewEffects(cfg.Sound, sp, logger)
	return []game.Option{game.WithListener(fx)}, sp.Close
}
