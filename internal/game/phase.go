// Package game implements the main slot screen and the session that runs
// the loading screen first and switches to it once assets are in.
package game

import (
	"io"
	"math/rand"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slots/internal/assets"
	"github.com/vovakirdan/tui-slots/internal/changer"
	"github.com/vovakirdan/tui-slots/internal/config"
	"github.com/vovakirdan/tui-slots/internal/core"
)

// Selector strip text.
const (
	promptText  = "Select symbol"
	labelFont   = 24
	keyHintFont = 20
	highlightPx = 4
)

// Phase is the main game screen: background, symbol selector, spin button
// and the randomizer.
type Phase struct {
	cfg      config.Config
	catalog  *assets.Catalog
	playable []*core.Sprite
	changer  *changer.Changer
	view     changer.View
	logger   *log.Logger

	cursor int // selector position for next/prev, -1 before any choice
}

// NewPhase creates the game screen over a loaded catalog.
func NewPhase(cfg config.Config, cat *assets.Catalog, rng *rand.Rand, logger *log.Logger) (*Phase, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	playable := cat.Playable()
	ch, err := changer.New(cfg.Changer, cfg.Arrow, playable, rng)
	if err != nil {
		return nil, err
	}
	return &Phase{
		cfg:      cfg,
		catalog:  cat,
		playable: playable,
		changer:  ch,
		view: changer.View{
			Layout:  cfg.Layout,
			Palette: cfg.Palette.Palette(),
			Arrow:   cat.Arrow(),
		},
		logger: logger,
		cursor: -1,
	}, nil
}

// Changer returns the randomizer.
func (p *Phase) Changer() *changer.Changer { return p.changer }

// Catalog returns the catalog the screen draws from.
func (p *Phase) Catalog() *assets.Catalog { return p.catalog }

// Handle implements scheduler.Phase.
func (p *Phase) Handle(cmd core.Command) {
	switch cmd.Kind {
	case core.CommandSelect:
		p.selectID(cmd.SymbolID)
	case core.CommandSelectIndex:
		p.selectIndex(cmd.Index)
	case core.CommandSelectNext:
		p.selectIndex((p.cursor + 1) % len(p.playable))
	case core.CommandSelectPrev:
		if p.cursor <= 0 {
			p.selectIndex(len(p.playable) - 1)
		} else {
			p.selectIndex(p.cursor - 1)
		}
	case core.CommandSpin:
		p.pressSpin()
	case core.CommandClick:
		p.click(cmd.X, cmd.Y)
	}
}

// selectID forwards a selection change. Any ID is accepted, matching a
// dropdown change event.
func (p *Phase) selectID(id string) {
	for i, s := range p.playable {
		if s.Name == id {
			p.cursor = i
		}
	}
	p.changer.SelectSymbol(id)
}

func (p *Phase) selectIndex(i int) {
	if i < 0 || i >= len(p.playable) {
		return
	}
	p.cursor = i
	p.changer.SelectSymbol(p.playable[i].Name)
}

// pressSpin spins only while the button is enabled.
func (p *Phase) pressSpin() {
	if !p.changer.ButtonEnabled() {
		return
	}
	p.changer.Spin()
}

func (p *Phase) click(x, y int) {
	if p.ButtonRect().Contains(x, y) {
		p.pressSpin()
		return
	}
	for i := range p.playable {
		if p.ItemRect(i).Contains(x, y) {
			p.selectIndex(i)
			return
		}
	}
}

// ButtonRect returns the spin button hit region.
func (p *Phase) ButtonRect() core.Rect {
	return p.cfg.Layout.PlayButton.Rect()
}

// ItemRect returns the selector entry for the i-th playable symbol.
func (p *Phase) ItemRect(i int) core.Rect {
	s := p.cfg.Layout.Selector
	return core.NewRect(s.ItemX, s.ItemY+i*(s.ItemSize+s.ItemGap), s.ItemSize, s.ItemSize)
}

// Update implements scheduler.Phase.
func (p *Phase) Update() {
	p.changer.Update()
}

// Render implements scheduler.Phase.
func (p *Phase) Render(dst core.Surface) {
	pal := p.view.Palette
	dst.Clear()

	if bg := p.catalog.Background(); bg != nil {
		dst.DrawImage(bg, core.FullRect())
	} else {
		dst.FillRect(core.FullRect(), pal.BgBlue)
	}

	p.renderSelector(dst)

	if btn := p.catalog.PlayButton(p.changer.ButtonEnabled()); btn != nil {
		dst.DrawImage(btn, p.ButtonRect())
	}

	p.changer.Render(dst, p.view)
}

func (p *Phase) renderSelector(dst core.Surface) {
	pal := p.view.Palette
	label := p.cfg.Layout.Selector.Label.Rect()

	text := promptText
	if p.changer.HasSelection() {
		text = assets.DisplayName(p.changer.Target())
	}
	dst.FillRect(label, pal.BgGreen)
	dst.DrawText(label.X+10, label.Bottom()-10, text, core.Font{Size: labelFont, Color: core.ColorWhite})

	for i, s := range p.playable {
		r := p.ItemRect(i)
		if p.changer.HasSelection() && s.Name == p.changer.Target() {
			dst.FillRect(core.NewRect(r.X-highlightPx, r.Y-highlightPx, r.W+2*highlightPx, r.H+2*highlightPx), pal.Yellow)
		}
		dst.DrawImage(s, r)
		dst.DrawText(r.Right()+10, r.Y+r.H/2+keyHintFont/2, strconv.Itoa(i+1), core.Font{Size: keyHintFont, Color: core.ColorWhite})
	}
}
