package changer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-slots/internal/config"
)

func TestArrowPingPong(t *testing.T) {
	a := NewArrow(config.DefaultConfig().Arrow)
	assert.Equal(t, 140, a.Y())
	assert.Equal(t, 1, a.Dir())

	prevDir := a.Dir()
	for i := 0; i < 500; i++ {
		prevY := a.Y()
		a.Update()

		assert.GreaterOrEqual(t, a.Y(), 140)
		assert.LessOrEqual(t, a.Y(), 160)
		if a.Dir() != prevDir {
			// Reversal only happens when the arrow sat on a bound.
			assert.Contains(t, []int{140, 160}, prevY, "reversed at %d", prevY)
			prevDir = a.Dir()
		}
	}
}

func TestArrowReversesExactlyAtBounds(t *testing.T) {
	a := NewArrow(config.DefaultConfig().Arrow)

	for i := 0; i < 20; i++ {
		a.Update()
	}
	assert.Equal(t, 160, a.Y())
	assert.Equal(t, 1, a.Dir(), "still heading down on arrival")

	a.Update()
	assert.Equal(t, 159, a.Y())
	assert.Equal(t, -1, a.Dir())

	for i := 0; i < 19; i++ {
		a.Update()
	}
	assert.Equal(t, 140, a.Y())
	a.Update()
	assert.Equal(t, 141, a.Y())
	assert.Equal(t, 1, a.Dir())
}

func TestArrowSpeedOvershootClamps(t *testing.T) {
	cfg := config.DefaultConfig().Arrow
	cfg.Speed = 7
	a := NewArrow(cfg)

	ys := []int{}
	for i := 0; i < 8; i++ {
		a.Update()
		ys = append(ys, a.Y())
	}
	assert.Equal(t, []int{147, 154, 160, 153, 146, 140, 147, 154}, ys)
}

func TestArrowFixedBounds(t *testing.T) {
	cfg := config.DefaultConfig().Arrow
	cfg.MinY, cfg.MaxY = 150, 150
	a := NewArrow(cfg)
	a.Update()
	assert.Equal(t, 150, a.Y())
}

func TestArrowRect(t *testing.T) {
	a := NewArrow(config.DefaultConfig().Arrow)
	r := a.Rect()
	assert.Equal(t, 856, r.X)
	assert.Equal(t, 140, r.Y)
	assert.Equal(t, 32, r.W)
	assert.Equal(t, 41, r.H)
}
