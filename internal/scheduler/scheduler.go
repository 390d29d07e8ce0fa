// Package scheduler runs the fixed-rate game loop. One phase is active at a
// time; each tick drains queued input commands into it, then updates and
// renders it. Hosts either call Start or drive Tick themselves.
package scheduler

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slots/internal/core"
)

// Phase is one screen of the game (loading, playing).
type Phase interface {
	// Handle applies one queued input command.
	Handle(cmd core.Command)

	// Update advances the phase by one tick.
	Update()

	// Render draws the phase. It must not change state.
	Render(dst core.Surface)
}

// Scheduler owns the active phase and the input queue.
type Scheduler struct {
	logger   *log.Logger
	surface  core.Surface
	tickRate int

	// tickMu serializes ticks and renders. Accessors never take it, so
	// phases and listeners may call them from inside a tick.
	tickMu sync.Mutex
	ticks  atomic.Uint64

	mu    sync.Mutex
	phase Phase
	queue []core.Command
	next  Phase
}

// New creates a scheduler that renders into surface.
func New(initial Phase, surface core.Surface, tickRate int, logger *log.Logger) *Scheduler {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scheduler{
		logger:   logger,
		surface:  surface,
		tickRate: tickRate,
		phase:    initial,
	}
}

// Enqueue queues cmd for the next tick. Safe from any goroutine; commands
// are never dropped.
func (s *Scheduler) Enqueue(cmd core.Command) {
	s.mu.Lock()
	s.queue = append(s.queue, cmd)
	s.mu.Unlock()
}

// SwitchPhase replaces the active phase once the current tick completes.
// Safe from any goroutine.
func (s *Scheduler) SwitchPhase(p Phase) {
	s.mu.Lock()
	s.next = p
	s.mu.Unlock()
}

// Tick performs exactly one tick: queued commands, Update, Render, then a
// pending phase switch.
func (s *Scheduler) Tick() {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	s.mu.Lock()
	phase := s.phase
	cmds := s.queue
	s.queue = nil
	s.mu.Unlock()

	for _, cmd := range cmds {
		phase.Handle(cmd)
	}
	phase.Update()
	if s.surface != nil {
		phase.Render(s.surface)
	}
	n := s.ticks.Add(1)

	s.mu.Lock()
	next := s.next
	s.next = nil
	if next != nil {
		s.phase = next
	}
	s.mu.Unlock()
	if next != nil {
		s.logger.Debug("phase switch", "tick", n)
	}
}

// Start ticks at the configured rate until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Debug("scheduler started", "rate", s.tickRate)

	ticker := time.NewTicker(s.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("scheduler stopped", "ticks", s.Ticks())
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Render redraws the active phase without advancing it. It reports false
// and draws nothing while a tick is in progress, since that tick renders
// anyway.
func (s *Scheduler) Render() bool {
	if !s.tickMu.TryLock() {
		return false
	}
	defer s.tickMu.Unlock()
	if s.surface != nil {
		s.Phase().Render(s.surface)
	}
	return true
}

// Phase returns the active phase.
func (s *Scheduler) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Ticks returns the number of completed ticks.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks.Load()
}

// TickRate returns ticks per second.
func (s *Scheduler) TickRate() int {
	return s.tickRate
}

// Interval returns the wall-clock time between ticks.
func (s *Scheduler) Interval() time.Duration {
	return time.Second / time.Duration(s.tickRate)
}

// Pending returns the number of queued commands.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}
