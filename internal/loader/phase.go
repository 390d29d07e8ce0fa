package loader

import (
	"fmt"
	"io"
	"math/rand"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slots/internal/config"
	"github.com/vovakirdan/tui-slots/internal/core"
)

// Gate is the asset loader the loading screen waits on.
type Gate interface {
	IsReady() bool
	OnAllLoaded(fn func())
	Err() error
	Progress() (loaded, total int)
}

// Phase is the loading screen. It finishes once the reveal is done and the
// gate is ready, then calls onFinish exactly once.
type Phase struct {
	cfg      config.LoaderConfig
	pal      core.Palette
	anim     *Animator
	gate     Gate
	logger   *log.Logger
	onFinish func()

	consulted bool        // gate asked once after the reveal
	woke      atomic.Bool // set by the gate callback
	holdLeft  int
	finished  bool

	waitTicks int
	loadErr   error
}

// NewPhase creates the loading screen for the logical surface.
func NewPhase(cfg config.LoaderConfig, pal core.Palette, gate Gate, rng *rand.Rand, logger *log.Logger, onFinish func()) *Phase {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Phase{
		cfg:      cfg,
		pal:      pal,
		anim:     NewAnimator(core.LogicalWidth, core.LogicalHeight, cfg.TileSize, cfg.RevealBatch, rng),
		gate:     gate,
		logger:   logger,
		onFinish: onFinish,
		holdLeft: cfg.HoldTicks,
	}
}

// Handle ignores input; nothing is clickable while loading.
func (p *Phase) Handle(core.Command) {}

// Update implements scheduler.Phase.
func (p *Phase) Update() {
	if p.finished {
		return
	}
	if !p.anim.Done() {
		p.anim.Update()
		if !p.anim.Done() {
			return
		}
	}

	if !p.consulted {
		p.consulted = true
		if p.gate.IsReady() {
			p.woke.Store(true)
		} else {
			p.logger.Debug("reveal finished before assets", "reveal_updates", p.anim.Updates())
			p.gate.OnAllLoaded(func() { p.woke.Store(true) })
		}
	}

	if !p.woke.Load() {
		p.wait()
		return
	}
	if p.holdLeft > 0 {
		p.holdLeft--
		return
	}

	p.finished = true
	p.logger.Debug("loading finished", "reveal_updates", p.anim.Updates(), "waited_ticks", p.waitTicks)
	if p.onFinish != nil {
		p.onFinish()
	}
}

// wait runs while the reveal is done but the gate is not. The frame stays
// as is; only diagnostics change.
func (p *Phase) wait() {
	p.waitTicks++

	if p.loadErr == nil {
		if err := p.gate.Err(); err != nil {
			p.loadErr = err
			p.logger.Error("asset loading failed", "err", err)
		}
	}
	if p.cfg.StallWarnTicks > 0 && p.waitTicks%p.cfg.StallWarnTicks == 0 {
		loaded, total := p.gate.Progress()
		p.logger.Warn("still waiting for assets", "loaded", loaded, "total", total, "waited_ticks", p.waitTicks)
	}
}

// Render implements scheduler.Phase.
func (p *Phase) Render(dst core.Surface) {
	dst.FillRect(core.FullRect(), p.pal.BgBlue)
	pos := p.cfg.TextPos
	dst.DrawText(pos.X, pos.Y, p.cfg.Text, core.Font{Size: pos.Size, Color: p.pal.Orange})
	p.anim.Render(dst, p.pal.BgGreen)

	if p.loadErr != nil {
		dst.DrawText(20, core.LogicalHeight-20, fmt.Sprintf("asset load failed: %v", p.loadErr),
			core.Font{Size: 18, Color: p.pal.Red})
	}
}

// Animator returns the tile reveal.
func (p *Phase) Animator() *Animator { return p.anim }

// Waiting reports whether the reveal is done but assets are not.
func (p *Phase) Waiting() bool { return p.consulted && !p.woke.Load() }

// Finished reports whether onFinish has been called.
func (p *Phase) Finished() bool { return p.finished }

// WaitTicks returns how many ticks the reveal sat finished waiting for assets.
func (p *Phase) WaitTicks() int { return p.waitTicks }

// Err returns the asset failure seen while waiting, if any.
func (p *Phase) Err() error { return p.loadErr }
