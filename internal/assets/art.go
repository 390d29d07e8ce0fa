package assets

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"

	"github.com/vovakirdan/tui-slots/internal/core"
)

// Default procedural image sizes in pixels.
const (
	artSize    = 64
	panelSizeW = 192
	panelSizeH = 106
)

var (
	black = colorful.Color{}
	white = colorful.Color{R: 1, G: 1, B: 1}
	leaf  = colorful.Color{R: 0.25, G: 0.55, B: 0.2}
)

// pen draws into a rasterizer using coordinates normalized to [0, 1].
type pen struct {
	z    *vector.Rasterizer
	w, h float32
}

func (p *pen) poly(pts ...float32) {
	p.z.MoveTo(pts[0]*p.w, pts[1]*p.h)
	for i := 2; i+1 < len(pts); i += 2 {
		p.z.LineTo(pts[i]*p.w, pts[i+1]*p.h)
	}
	p.z.ClosePath()
}

func (p *pen) rect(x0, y0, x1, y1 float32) {
	p.poly(x0, y0, x1, y0, x1, y1, x0, y1)
}

// ellipse approximates an ellipse with four cubic arcs.
func (p *pen) ellipse(cx, cy, rx, ry float32) {
	const k = 0.5523
	cx, cy, rx, ry = cx*p.w, cy*p.h, rx*p.w, ry*p.h
	p.z.MoveTo(cx+rx, cy)
	p.z.CubeTo(cx+rx, cy+k*ry, cx+k*rx, cy+ry, cx, cy+ry)
	p.z.CubeTo(cx-k*rx, cy+ry, cx-rx, cy+k*ry, cx-rx, cy)
	p.z.CubeTo(cx-rx, cy-k*ry, cx-k*rx, cy-ry, cx, cy-ry)
	p.z.CubeTo(cx+k*rx, cy-ry, cx+rx, cy-k*ry, cx+rx, cy)
	p.z.ClosePath()
}

func (p *pen) star(cx, cy, outer, inner float32, points int) {
	pts := make([]float32, 0, points*4)
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/float64(points) - math.Pi/2
		pts = append(pts, cx+r*float32(math.Cos(a)), cy+r*float32(math.Sin(a)))
	}
	p.poly(pts...)
}

// paint rasterizes one single-colored layer onto dst.
func paint(dst *image.RGBA, c color.Color, build func(p *pen)) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	build(&pen{z: z, w: float32(b.Dx()), h: float32(b.Dy())})
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// ParseColor parses a "#rrggbb" string, returning fallback on failure.
func ParseColor(hex string, fallback core.Color) colorful.Color {
	if c, err := colorful.Hex(hex); err == nil {
		return c
	}
	c, err := colorful.Hex(string(fallback))
	if err != nil {
		return white
	}
	return c
}

func shade(c colorful.Color, amount float64) colorful.Color {
	return c.BlendLab(black, amount).Clamped()
}

// DrawShape renders a procedural image. w or h of 0 selects the default size.
func DrawShape(shape string, fill colorful.Color, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		w, h = artSize, artSize
		if shape == "panel" {
			w, h = panelSizeW, panelSizeH
		}
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	switch shape {
	case "circle":
		paint(img, fill, func(p *pen) { p.ellipse(0.5, 0.5, 0.42, 0.42) })
	case "ellipse":
		paint(img, fill, func(p *pen) {
			p.ellipse(0.5, 0.5, 0.4, 0.3)
			p.ellipse(0.12, 0.5, 0.06, 0.06)
			p.ellipse(0.88, 0.5, 0.06, 0.06)
		})
	case "diamond":
		paint(img, fill, func(p *pen) { p.poly(0.5, 0.05, 0.95, 0.5, 0.5, 0.95, 0.05, 0.5) })
		paint(img, white, func(p *pen) { p.poly(0.5, 0.2, 0.62, 0.45, 0.5, 0.5, 0.38, 0.45) })
	case "square":
		paint(img, fill, func(p *pen) { p.rect(0.1, 0.1, 0.9, 0.9) })
	case "triangle":
		paint(img, fill, func(p *pen) { p.poly(0.5, 0.08, 0.92, 0.9, 0.08, 0.9) })
	case "star":
		paint(img, fill, func(p *pen) { p.star(0.5, 0.52, 0.46, 0.19, 5) })
	case "seven":
		paint(img, fill, func(p *pen) {
			p.poly(0.15, 0.1, 0.85, 0.1, 0.85, 0.25, 0.5, 0.92, 0.3, 0.92, 0.63, 0.26, 0.15, 0.26)
		})
	case "bell":
		paint(img, fill, func(p *pen) {
			p.ellipse(0.5, 0.4, 0.27, 0.3)
			p.poly(0.23, 0.42, 0.77, 0.42, 0.9, 0.8, 0.1, 0.8)
		})
		paint(img, shade(fill, 0.4), func(p *pen) { p.ellipse(0.5, 0.87, 0.08, 0.08) })
	case "cherry":
		paint(img, leaf, func(p *pen) {
			p.poly(0.3, 0.55, 0.52, 0.08, 0.57, 0.1, 0.35, 0.57)
			p.poly(0.7, 0.55, 0.52, 0.08, 0.47, 0.1, 0.65, 0.57)
		})
		paint(img, fill, func(p *pen) {
			p.ellipse(0.3, 0.7, 0.22, 0.22)
			p.ellipse(0.7, 0.7, 0.22, 0.22)
		})
	case "bar":
		paint(img, fill, func(p *pen) { p.rect(0.06, 0.28, 0.94, 0.72) })
		paint(img, shade(fill, 0.55), func(p *pen) { p.rect(0.14, 0.38, 0.86, 0.62) })
	case "arrow":
		paint(img, fill, func(p *pen) {
			p.poly(0.35, 0.05, 0.65, 0.05, 0.65, 0.55, 0.95, 0.55, 0.5, 0.95, 0.05, 0.55, 0.35, 0.55)
		})
	case "button":
		paint(img, shade(fill, 0.3), func(p *pen) { p.ellipse(0.5, 0.52, 0.46, 0.46) })
		paint(img, fill, func(p *pen) { p.ellipse(0.5, 0.48, 0.44, 0.44) })
		paint(img, white, func(p *pen) { p.poly(0.4, 0.28, 0.74, 0.48, 0.4, 0.68) })
	case "panel":
		paint(img, fill, func(p *pen) { p.rect(0, 0, 1, 1) })
		paint(img, shade(fill, 0.35), func(p *pen) {
			p.rect(0.31, 0.33, 0.59, 0.67) // slot frame
			p.rect(0, 0.9, 1, 1)           // floor band
		})
	default:
		return nil, fmt.Errorf("assets: unknown shape %q", shape)
	}
	return img, nil
}
