package changer

import (
	"github.com/vovakirdan/tui-slots/internal/config"
	"github.com/vovakirdan/tui-slots/internal/core"
)

// Arrow bounces vertically between MinY and MaxY at constant speed.
type Arrow struct {
	cfg config.ArrowConfig
	y   int
	dir int // +1 down, -1 up
}

// NewArrow creates an arrow at the top bound, heading down.
func NewArrow(cfg config.ArrowConfig) *Arrow {
	return &Arrow{cfg: cfg, y: cfg.MinY, dir: 1}
}

// Update moves the arrow one step. Direction flips only once a bound is
// reached.
func (a *Arrow) Update() {
	if a.cfg.MinY == a.cfg.MaxY {
		return
	}
	if a.y >= a.cfg.MaxY {
		a.dir = -1
	} else if a.y <= a.cfg.MinY {
		a.dir = 1
	}
	a.y = core.Clamp(a.y+a.dir*a.cfg.Speed, a.cfg.MinY, a.cfg.MaxY)
}

// Y returns the top edge.
func (a *Arrow) Y() int { return a.y }

// Dir returns +1 when heading down and -1 when heading up.
func (a *Arrow) Dir() int { return a.dir }

// Rect returns where the arrow is drawn.
func (a *Arrow) Rect() core.Rect {
	return core.NewRect(a.cfg.X, a.y, a.cfg.W, a.cfg.H)
}
