// Package loader implements the loading screen: a random tile reveal that
// covers the surface batch by batch while the asset gate loads the catalog.
package loader

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-slots/internal/core"
)

// Tile is the top-left corner of one grid square in logical coordinates.
type Tile struct {
	X, Y int
}

// GenerateTiles lays a grid of size x size squares over a w x h surface,
// column by column: for each x, a full sweep over y.
func GenerateTiles(w, h, size int) []Tile {
	cols, rows := core.CeilDiv(w, size), core.CeilDiv(h, size)
	tiles := make([]Tile, 0, cols*rows)
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			tiles = append(tiles, Tile{X: x * size, Y: y * size})
		}
	}
	return tiles
}

// Animator moves tiles from pending to revealed in random batches.
// Every tile is in exactly one of the two lists at all times.
type Animator struct {
	pending  []Tile
	revealed []Tile
	size     int
	batch    int
	done     bool
	updates  int
	rng      *rand.Rand
}

// NewAnimator creates an animator for a w x h surface.
func NewAnimator(w, h, tileSize, batch int, rng *rand.Rand) *Animator {
	tiles := GenerateTiles(w, h, tileSize)
	return &Animator{
		pending:  tiles,
		revealed: make([]Tile, 0, len(tiles)),
		size:     tileSize,
		batch:    batch,
		rng:      rng,
	}
}

// Update reveals up to one batch of tiles, each drawn uniformly from the
// remaining pending tiles. Done flips as soon as pending runs dry.
func (a *Animator) Update() {
	if len(a.pending) == 0 {
		a.done = true
		return
	}
	a.updates++

	n := core.Min(a.batch, len(a.pending))
	for i := 0; i < n; i++ {
		idx := a.rng.Intn(len(a.pending))
		a.revealed = append(a.revealed, a.pending[idx])
		a.pending = slices.Delete(a.pending, idx, idx+1)
	}
	if len(a.pending) == 0 {
		a.done = true
	}
}

// Render fills every revealed tile with c.
func (a *Animator) Render(dst core.Surface, c core.Color) {
	for _, t := range a.revealed {
		dst.FillRect(core.NewRect(t.X, t.Y, a.size, a.size), c)
	}
}

// Done reports whether every tile is revealed. Once true it stays true.
func (a *Animator) Done() bool { return a.done }

// Pending returns the number of hidden tiles.
func (a *Animator) Pending() int { return len(a.pending) }

// Revealed returns the revealed tiles in reveal order. Callers must not modify it.
func (a *Animator) Revealed() []Tile { return a.revealed }

// Total returns the number of tiles in the grid.
func (a *Animator) Total() int { return len(a.pending) + len(a.revealed) }

// Updates returns how many updates revealed tiles.
func (a *Animator) Updates() int { return a.updates }
