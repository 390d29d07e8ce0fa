package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/vovakirdan/tui-slots/internal/core"
)

// surface adapts an ebiten image to core.Surface for one frame.
type surface struct {
	dst    *ebiten.Image
	fonts  *fontCache
	images map[*core.Sprite]*ebiten.Image
	colors map[core.Color]color.Color
}

func newSurface() (*surface, error) {
	fonts, err := newFontCache()
	if err != nil {
		return nil, err
	}
	return &surface{
		fonts:  fonts,
		images: make(map[*core.Sprite]*ebiten.Image),
		colors: make(map[core.Color]color.Color),
	}, nil
}

// color converts a hex color, caching the parse. Invalid colors draw black.
func (s *surface) color(c core.Color) color.Color {
	if cc, ok := s.colors[c]; ok {
		return cc
	}
	var cc color.Color = color.Black
	if cf, err := colorful.Hex(string(c)); err == nil {
		cc = cf
	}
	s.colors[c] = cc
	return cc
}

// Clear implements core.Surface.
func (s *surface) Clear() {
	s.dst.Clear()
}

// FillRect implements core.Surface.
func (s *surface) FillRect(r core.Rect, c core.Color) {
	if r.Empty() || c == core.ColorNone {
		return
	}
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), s.color(c), false)
}

// DrawText implements core.Surface. y is the baseline.
func (s *surface) DrawText(x, y int, str string, f core.Font) {
	face := s.fonts.face(f.Size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(s.color(f.Color))
	text.Draw(s.dst, str, face, op)
}

// DrawImage implements core.Surface.
func (s *surface) DrawImage(sp *core.Sprite, dst core.Rect) {
	if sp == nil || dst.Empty() {
		return
	}
	if sp.Image == nil {
		s.FillRect(dst, sp.Tint)
		return
	}

	img, ok := s.images[sp]
	if !ok {
		img = ebiten.NewImageFromImage(sp.Image)
		s.images[sp] = img
	}
	sx, sy := scaleFor(img.Bounds().Dx(), img.Bounds().Dy(), dst)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

// scaleFor returns the factors stretching a w x h image over dst.
func scaleFor(w, h int, dst core.Rect) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return float64(dst.W) / float64(w), float64(dst.H) / float64(h)
}

// fontCache holds one face per pixel size over a single bold source.
type fontCache struct {
	src   *text.GoTextFaceSource
	faces map[int]*text.GoTextFace
}

func newFontCache() (*fontCache, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: font: %w", err)
	}
	return &fontCache{src: src, faces: make(map[int]*text.GoTextFace)}, nil
}

func (c *fontCache) face(size int) *text.GoTextFace {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: c.src, Size: float64(size)}
	c.faces[size] = f
	return f
}
