package game

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slots/internal/assets"
	"github.com/vovakirdan/tui-slots/internal/changer"
	"github.com/vovakirdan/tui-slots/internal/config"
	"github.com/vovakirdan/tui-slots/internal/core"
	"github.com/vovakirdan/tui-slots/internal/loader"
	"github.com/vovakirdan/tui-slots/internal/scheduler"
)

// Session is one player's run: the loading screen, then the game screen,
// both driven by a single scheduler.
type Session struct {
	id        string
	cfg       config.Config
	gate      *assets.Gate
	sched     *scheduler.Scheduler
	loading   *loader.Phase
	game      *Phase
	rng       *rand.Rand
	seed      int64
	logger    *log.Logger
	listeners []changer.Listener
	onStart   []func(*Session)
	err       error
}

// Option configures a Session.
type Option func(*Session)

// WithID tags the session for logs and metrics.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// WithListener observes the randomizer once the game screen starts.
func WithListener(l changer.Listener) Option {
	return func(s *Session) { s.listeners = append(s.listeners, l) }
}

// WithOnStart runs fn on the tick goroutine once the game screen is built.
// The game screen takes over when that tick ends. Session and scheduler
// accessors are safe to call from fn.
func WithOnStart(fn func(*Session)) Option {
	return func(s *Session) { s.onStart = append(s.onStart, fn) }
}

// NewSession creates a session rendering into surface. The gate may still be
// loading; the loading screen waits for it.
func NewSession(cfg config.Config, gate *assets.Gate, surface core.Surface, logger *log.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		cfg:    cfg,
		gate:   gate,
		logger: logger,
		seed:   cfg.Seed,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id != "" {
		s.logger = s.logger.With("session", s.id)
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(s.seed))

	s.loading = loader.NewPhase(cfg.Loader, cfg.Palette.Palette(), gate, s.rng, s.logger, s.startGame)
	s.sched = scheduler.New(s.loading, surface, cfg.TickRate, s.logger)
	s.logger.Debug("session created", "seed", s.seed)
	return s
}

// startGame runs on the tick goroutine when the loading screen finishes.
func (s *Session) startGame() {
	g, err := NewPhase(s.cfg, s.gate.Catalog(), s.rng, s.logger)
	if err != nil {
		s.err = err
		s.logger.Error("cannot start game screen", "err", err)
		return
	}
	for _, l := range s.listeners {
		g.Changer().AddListener(l)
	}
	s.game = g
	s.sched.SwitchPhase(g)
	s.logger.Info("game screen started", "ticks", s.sched.Ticks())
	for _, fn := range s.onStart {
		fn(s)
	}
}

// LoaderWait returns how long the loading screen held after its reveal.
func (s *Session) LoaderWait() time.Duration {
	return time.Duration(s.loading.WaitTicks()) * s.sched.Interval()
}

// Tick performs one scheduler tick.
func (s *Session) Tick() { s.sched.Tick() }

// Render redraws the active screen without advancing it.
func (s *Session) Render() { s.sched.Render() }

// Start runs the session at its tick rate until ctx is done.
func (s *Session) Start(ctx context.Context) error { return s.sched.Start(ctx) }

// Enqueue queues a player command. Safe from any goroutine.
func (s *Session) Enqueue(cmd core.Command) { s.sched.Enqueue(cmd) }

// Scheduler returns the loop driving the session.
func (s *Session) Scheduler() *scheduler.Scheduler { return s.sched }

// Loader returns the loading screen.
func (s *Session) Loader() *loader.Phase { return s.loading }

// Game returns the game screen, or nil while loading.
func (s *Session) Game() *Phase { return s.game }

// Loading reports whether the loading screen is still active.
func (s *Session) Loading() bool { return s.game == nil }

// Changer returns the randomizer, or nil while loading.
func (s *Session) Changer() *changer.Changer {
	if s.game == nil {
		return nil
	}
	return s.game.Changer()
}

// ID returns the session tag.
func (s *Session) ID() string { return s.id }

// Seed returns the RNG seed in use.
func (s *Session) Seed() int64 { return s.seed }

// Err returns why the game screen could not start, if it failed.
func (s *Session) Err() error { return s.err }

