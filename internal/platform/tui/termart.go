package tui

import (
	"fmt"
	"image"
	"image/color"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-slots/internal/core"
)

// Half-block glyphs: one cell shows two vertically stacked pixels.
const (
	upperHalf = '▀'
	lowerHalf = '▄'
)

// opaqueAlpha is the minimum 16-bit alpha a sample needs to be drawn.
const opaqueAlpha = 0x8000

const defaultArtCacheSize = 256

type artKey struct {
	sprite *core.Sprite
	w, h   int
}

// HalfBlockRasterizer turns sprite images into half-block cells. Results are
// cached per sprite and cell size since the same symbols are drawn every tick.
type HalfBlockRasterizer struct {
	cache *lru.Cache[artKey, [][]core.Cell]
}

// NewHalfBlockRasterizer creates a rasterizer caching up to size renditions.
func NewHalfBlockRasterizer(size int) (*HalfBlockRasterizer, error) {
	if size <= 0 {
		size = defaultArtCacheSize
	}
	cache, err := lru.New[artKey, [][]core.Cell](size)
	if err != nil {
		return nil, fmt.Errorf("tui: art cache: %w", err)
	}
	return &HalfBlockRasterizer{cache: cache}, nil
}

// Rasterize implements core.Rasterizer.
func (r *HalfBlockRasterizer) Rasterize(s *core.Sprite, w, h int) [][]core.Cell {
	key := artKey{sprite: s, w: w, h: h}
	if cells, ok := r.cache.Get(key); ok {
		return cells
	}
	cells := halfBlocks(s.Image, w, h)
	r.cache.Add(key, cells)
	return cells
}

// Len returns the number of cached renditions.
func (r *HalfBlockRasterizer) Len() int { return r.cache.Len() }

// halfBlocks samples img nearest-neighbor onto w x 2h pixels and packs pixel
// pairs into cells. Fully transparent pairs yield zero cells.
func halfBlocks(img image.Image, w, h int) [][]core.Cell {
	cells := make([][]core.Cell, h)
	if img == nil || w <= 0 || h <= 0 {
		return cells
	}
	b := img.Bounds()
	sample := func(x, py int) (core.Color, bool) {
		sx := b.Min.X + x*b.Dx()/w
		sy := b.Min.Y + py*b.Dy()/(2*h)
		return cellColor(img.At(sx, sy))
	}

	for y := range cells {
		row := make([]core.Cell, w)
		for x := range row {
			top, topOK := sample(x, 2*y)
			bottom, bottomOK := sample(x, 2*y+1)
			switch {
			case topOK && bottomOK:
				row[x] = core.Cell{Rune: upperHalf, Fg: top, Bg: bottom}
			case topOK:
				row[x] = core.Cell{Rune: upperHalf, Fg: top}
			case bottomOK:
				row[x] = core.Cell{Rune: lowerHalf, Fg: bottom}
			}
		}
		cells[y] = row
	}
	return cells
}

// cellColor converts a pixel to a hex color, reporting false when the pixel
// is mostly transparent.
func cellColor(c color.Color) (core.Color, bool) {
	_, _, _, a := c.RGBA()
	if a < opaqueAlpha {
		return core.ColorNone, false
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return core.ColorNone, false
	}
	return core.Color(cf.Clamped().Hex()), true
}
