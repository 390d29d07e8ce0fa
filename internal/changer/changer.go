// Package changer implements the symbol randomizer: the player picks a
// target symbol, a spin cycles a random reel under a countdown, and the
// symbol the reel stops on decides win or lose.
package changer

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-slots/internal/config"
	"github.com/vovakirdan/tui-slots/internal/core"
)

// State is the randomizer state.
type State int

const (
	Idle     State = iota // No selection
	Ready                 // Selection made, waiting for a spin
	Spinning              // Reel cycling
	Settled               // Verdict shown, selection cleared
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	case Spinning:
		return "spinning"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

// ErrNotEnoughSymbols is returned when the reel cannot avoid repeats.
var ErrNotEnoughSymbols = errors.New("changer: need at least two distinct symbols")

// session is the per-spin state. The zero spin state has an empty reel and
// the countdown at its start value.
type session struct {
	reel      []*core.Sprite
	cursor    int
	elapsed   int
	countdown int
	current   *core.Sprite
}

// Changer is the randomizer state machine. It is driven from a single
// goroutine (the scheduler tick) and is not safe for concurrent use.
type Changer struct {
	cfg       config.ChangerConfig
	symbols   []*core.Sprite
	rng       *rand.Rand
	listeners []Listener

	state   State
	target  string
	verdict *core.Sprite
	sess    session
	arrow   *Arrow
}

// New creates an idle randomizer over the playable symbols.
func New(cfg config.ChangerConfig, arrow config.ArrowConfig, symbols []*core.Sprite, rng *rand.Rand) (*Changer, error) {
	distinct := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		distinct[s.Name] = struct{}{}
	}
	if len(distinct) < 2 {
		return nil, ErrNotEnoughSymbols
	}

	c := &Changer{
		cfg:     cfg,
		symbols: symbols,
		rng:     rng,
		arrow:   NewArrow(arrow),
	}
	c.sess = c.idleSession()
	return c, nil
}

func (c *Changer) idleSession() session {
	return session{countdown: c.cfg.CountdownStart}
}

// AddListener registers l for state machine events.
func (c *Changer) AddListener(l Listener) {
	c.listeners = append(c.listeners, l)
}

func (c *Changer) emit(e Event) {
	for _, l := range c.listeners {
		l.OnEvent(e)
	}
}

// SelectSymbol sets the target and clears any verdict. It is accepted in
// every state; during a spin the new target applies to the running spin.
func (c *Changer) SelectSymbol(id string) {
	c.target = id
	c.verdict = nil
	if c.state != Spinning {
		c.state = Ready
	}
	c.emit(Event{Kind: EventSelect, Target: id, State: c.state})
}

// Spin starts a spin if a selection is waiting. Otherwise it does nothing,
// including drawing from the RNG, and returns false.
func (c *Changer) Spin() bool {
	if c.state != Ready {
		return false
	}

	reel := c.buildReel()
	c.sess = session{
		reel:      reel,
		countdown: c.cfg.CountdownStart,
		current:   reel[0],
	}
	c.state = Spinning
	c.emit(Event{Kind: EventSpin, Target: c.target, Symbol: reel[0].Name, State: c.state})
	return true
}

// buildReel draws ReelLength symbols, resampling each pick until it differs
// from the previous one.
func (c *Changer) buildReel() []*core.Sprite {
	reel := make([]*core.Sprite, c.cfg.ReelLength)
	for i := range reel {
		s := c.symbols[c.rng.Intn(len(c.symbols))]
		if i > 0 {
			for s.Name == reel[i-1].Name {
				s = c.symbols[c.rng.Intn(len(c.symbols))]
			}
		}
		reel[i] = s
	}
	return reel
}

// Update advances a running spin, or the arrow while a selection waits.
func (c *Changer) Update() {
	switch c.state {
	case Spinning:
		c.advance()
	case Ready:
		c.arrow.Update()
	}
}

func (c *Changer) advance() {
	s := &c.sess
	s.elapsed++

	if s.elapsed%c.cfg.CountdownTicks == 0 {
		s.countdown--
		if c.cfg.ClampCountdown && s.countdown < 0 {
			s.countdown = 0
		}
		c.emit(Event{Kind: EventCountdown, Target: c.target, Countdown: s.countdown, State: c.state})
	}

	if s.elapsed%c.cfg.AdvanceTicks == 0 {
		s.cursor++
		if s.cursor < len(s.reel) {
			s.current = s.reel[s.cursor]
			c.emit(Event{Kind: EventAdvance, Target: c.target, Symbol: s.current.Name, State: c.state})
			return
		}
		c.settle()
	}
}

// settle records the verdict and resets the spin state. The target stays
// so the outcome can be shown, but a fresh selection is needed to spin again.
func (c *Changer) settle() {
	c.verdict = c.sess.current
	c.sess = c.idleSession()
	c.state = Settled
	c.emit(Event{
		Kind:   EventSettle,
		Target: c.target,
		Symbol: c.verdict.Name,
		Win:    Outcome(c.verdict.Name, c.target),
		State:  c.state,
	})
}

// Outcome reports a win: the verdict matches the target.
func Outcome(verdict, target string) bool {
	return verdict == target
}

// State returns the current state.
func (c *Changer) State() State { return c.state }

// Target returns the last selected symbol ID.
func (c *Changer) Target() string { return c.target }

// HasSelection reports whether a selection is active (Ready or Spinning).
func (c *Changer) HasSelection() bool { return c.state == Ready || c.state == Spinning }

// Spinning reports whether a spin is running.
func (c *Changer) Spinning() bool { return c.state == Spinning }

// ButtonEnabled reports whether the spin button accepts a press.
func (c *Changer) ButtonEnabled() bool { return c.state == Ready }

// Verdict returns the symbol the last spin stopped on, or nil.
func (c *Changer) Verdict() *core.Sprite { return c.verdict }

// Win reports the outcome of the shown verdict. ok is false without one.
// The comparison runs on every call against the current target.
func (c *Changer) Win() (win, ok bool) {
	if c.verdict == nil {
		return false, false
	}
	return Outcome(c.verdict.Name, c.target), true
}

// Current returns the symbol in the slot during a spin.
func (c *Changer) Current() *core.Sprite { return c.sess.current }

// Reel returns a copy of the running spin's reel.
func (c *Changer) Reel() []*core.Sprite {
	out := make([]*core.Sprite, len(c.sess.reel))
	copy(out, c.sess.reel)
	return out
}

// Cursor returns the reel position.
func (c *Changer) Cursor() int { return c.sess.cursor }

// Elapsed returns ticks since the spin started.
func (c *Changer) Elapsed() int { return c.sess.elapsed }

// Countdown returns the seconds shown by the timer during a spin.
func (c *Changer) Countdown() int { return c.sess.countdown }

// Arrow returns the "press play" indicator.
func (c *Changer) Arrow() *Arrow { return c.arrow }
