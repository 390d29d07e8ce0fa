package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slots/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache maps fg/bg pairs to lipgloss styles. Palettes are small, so it
// is never pruned.
type styleCache map[colorPair]lipgloss.Style

func (c styleCache) get(p colorPair) lipgloss.Style {
	if st, ok := c[p]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if p.fg != core.ColorNone {
		st = st.Foreground(lipgloss.Color(p.fg))
	}
	if p.bg != core.ColorNone {
		st = st.Background(lipgloss.Color(p.bg))
	}
	c[p] = st
	return st
}

// Renderer converts a Screen buffer to a styled string for display.
type Renderer struct {
	styles styleCache
}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(styleCache)}
}

// Render groups adjacent cells with the same colors to minimize ANSI escape
// sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			pair := colorPair{fg: cell.Fg, bg: cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != pair.fg || cell.Bg != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if pair == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.styles.get(pair).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with a throwaway style cache.
func RenderScreen(s *core.Screen) string {
	return NewRenderer().Render(s)
}
