package core

import "image"

// Surface is the 2D drawing capability the loader and game screens render into.
// Coordinates are logical (LogicalWidth x LogicalHeight); each backend scales them.
type Surface interface {
	// Clear wipes the whole surface.
	Clear()

	// FillRect fills r with a solid color.
	FillRect(r Rect, c Color)

	// DrawText draws text whose baseline starts at (x, y).
	DrawText(x, y int, text string, f Font)

	// DrawImage draws the sprite scaled to fill dst.
	DrawImage(s *Sprite, dst Rect)
}

// Font describes how text is drawn. The family is fixed per backend.
type Font struct {
	Size  int
	Color Color
}

// Sprite is a decoded catalog image handle.
// Image may be nil; backends then fall back to Glyph drawn in Tint.
type Sprite struct {
	Name  string
	Image image.Image
	Glyph rune
	Tint  Color
}

// Size returns the pixel dimensions of the underlying image (0, 0 if none).
func (s *Sprite) Size() (int, int) {
	if s == nil || s.Image == nil {
		return 0, 0
	}
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}

// FullRect returns the rectangle covering the whole logical surface.
func FullRect() Rect {
	return NewRect(0, 0, LogicalWidth, LogicalHeight)
}
