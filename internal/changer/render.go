package changer

import (
	"fmt"

	"github.com/vovakirdan/tui-slots/internal/config"
	"github.com/vovakirdan/tui-slots/internal/core"
)

// Captions shown under the verdict.
const (
	WinText  = "You win!"
	LoseText = "You lose!"
	idleTime = "00:00"
)

// View holds what Render needs besides the state machine.
type View struct {
	Layout  config.LayoutConfig
	Palette core.Palette
	Arrow   *core.Sprite // nil skips the arrow
}

// TimerText returns the timer string for the current state.
func (c *Changer) TimerText() string {
	if c.state != Spinning {
		return idleTime
	}
	return FormatSeconds(c.sess.countdown)
}

// FormatSeconds renders a countdown as "00:0N", or "00:NN" from ten up.
func FormatSeconds(n int) string {
	if n >= 10 {
		return fmt.Sprintf("00:%d", n)
	}
	return fmt.Sprintf("00:0%d", n)
}

// Render draws the slot, timer, verdict and arrow. It reads state only.
func (c *Changer) Render(dst core.Surface, v View) {
	l := v.Layout
	timerFont := core.Font{Size: l.Timer.Size, Color: v.Palette.Yellow}
	slot := l.Slot.Rect()

	if c.state == Spinning {
		dst.DrawImage(c.sess.current, slot)
	}
	dst.DrawText(l.Timer.X, l.Timer.Y, c.TimerText(), timerFont)

	if win, ok := c.Win(); ok {
		dst.DrawImage(c.verdict, slot)
		caption, col := LoseText, v.Palette.Red
		if win {
			caption, col = WinText, v.Palette.Green
		}
		dst.DrawText(l.Caption.X, l.Caption.Y, caption, core.Font{Size: l.Caption.Size, Color: col})
	}

	if c.state == Ready && v.Arrow != nil {
		dst.DrawImage(v.Arrow, c.arrow.Rect())
	}
}
