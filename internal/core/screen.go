package core

import (
	"strings"
)

// Cell is one character position of a Screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// blankCell is the value every cell holds after Clear.
var blankCell = Cell{Rune: ' '}

// Rasterizer converts a sprite into a block of cells of the given size.
// Cells whose Rune is zero are transparent and leave the screen untouched.
type Rasterizer interface {
	Rasterize(s *Sprite, w, h int) [][]Cell
}

// Screen is a 2D character buffer for rendering game graphics.
// It implements Surface by mapping logical coordinates onto its cell grid,
// so the platform only has to turn cells into terminal output.
type Screen struct {
	width    int
	height   int
	logicalW int
	logicalH int
	cells    [][]Cell
	raster   Rasterizer
}

// NewScreen creates a new screen buffer with the given dimensions in cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:    Max(width, 1),
		height:   Max(height, 1),
		logicalW: LogicalWidth,
		logicalH: LogicalHeight,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// SetRasterizer installs the sprite rasterizer used by DrawImage.
func (s *Screen) SetRasterizer(r Rasterizer) {
	s.raster = r
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; the next
// tick redraws the full frame anyway.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 1), Max(height, 1)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places a rune at the given cell, keeping its colors.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
}

// SetCell merges c into the cell at (x, y). Empty colors keep the old value.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	cur := &s.cells[y][x]
	if c.Rune != 0 {
		cur.Rune = c.Rune
	}
	if c.Fg != ColorNone {
		cur.Fg = c.Fg
	}
	if c.Bg != ColorNone {
		cur.Bg = c.Bg
	}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// WriteText writes a string horizontally starting at cell (x, y).
func (s *Screen) WriteText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Fg: fg})
		i++
	}
}

// ToCell maps a logical point onto the cell grid.
func (s *Screen) ToCell(x, y int) (int, int) {
	return x * s.width / s.logicalW, y * s.height / s.logicalH
}

// ToLogical maps a cell back to the logical point at its center.
func (s *Screen) ToLogical(cx, cy int) (int, int) {
	return (2*cx + 1) * s.logicalW / (2 * s.width), (2*cy + 1) * s.logicalH / (2 * s.height)
}

// cellRect maps a logical rectangle onto the cells it touches.
// A non-empty rectangle always covers at least one cell.
func (s *Screen) cellRect(r Rect) Rect {
	x0, y0 := s.ToCell(r.X, r.Y)
	x1 := CeilDiv(r.Right()*s.width, s.logicalW)
	y1 := CeilDiv(r.Bottom()*s.height, s.logicalH)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// FillRect implements Surface.
func (s *Screen) FillRect(r Rect, c Color) {
	if r.Empty() {
		return
	}
	cr := s.cellRect(r)
	for y := cr.Y; y < cr.Bottom(); y++ {
		for x := cr.X; x < cr.Right(); x++ {
			s.SetCell(x, y, Cell{Rune: ' ', Bg: c})
		}
	}
}

// DrawText implements Surface. Font size only moves the row so the glyphs
// sit roughly where a proportional font of that size would.
func (s *Screen) DrawText(x, y int, text string, f Font) {
	cx, cy := s.ToCell(x, y-f.Size/2)
	s.WriteText(cx, cy, text, f.Color)
}

// DrawImage implements Surface.
func (s *Screen) DrawImage(sp *Sprite, dst Rect) {
	if sp == nil || dst.Empty() {
		return
	}
	cr := s.cellRect(dst)

	if s.raster != nil && sp.Image != nil {
		block := s.raster.Rasterize(sp, cr.W, cr.H)
		for y, row := range block {
			for x, c := range row {
				if c.Rune == 0 {
					continue
				}
				s.SetCell(cr.X+x, cr.Y+y, c)
			}
		}
		return
	}

	// No pixels: fill with the tint and center the glyph.
	for y := cr.Y; y < cr.Bottom(); y++ {
		for x := cr.X; x < cr.Right(); x++ {
			s.SetCell(x, y, Cell{Rune: ' ', Bg: sp.Tint})
		}
	}
	if sp.Glyph != 0 {
		cx, cy := cr.X+cr.W/2, cr.Y+cr.H/2
		s.SetCell(cx, cy, Cell{Rune: sp.Glyph, Fg: ColorBlack})
	}
}

// String converts the screen buffer to plain text, one row per line.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
