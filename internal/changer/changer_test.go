package changer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-slots/internal/config"
	"github.com/vovakirdan/tui-slots/internal/core"
)

var playable = []string{"cherry", "lemon", "bar", "bell", "seven", "diamond"}

func symbols(names ...string) []*core.Sprite {
	out := make([]*core.Sprite, len(names))
	for i, n := range names {
		out[i] = &core.Sprite{Name: n}
	}
	return out
}

func newChanger(t *testing.T, seed int64) *Changer {
	t.Helper()
	cfg := config.DefaultConfig()
	c, err := New(cfg.Changer, cfg.Arrow, symbols(playable...), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return c
}

// snapshot captures every observable field of a Changer.
type snapshot struct {
	State     State
	Target    string
	Verdict   string
	Reel      []string
	Cursor    int
	Elapsed   int
	Countdown int
	Current   string
	ArrowY    int
	ArrowDir  int
}

func names(s []*core.Sprite) []string {
	out := make([]string, len(s))
	for i, sp := range s {
		out[i] = sp.Name
	}
	return out
}

func nameOf(s *core.Sprite) string {
	if s == nil {
		return ""
	}
	return s.Name
}

func snap(c *Changer) snapshot {
	return snapshot{
		State:     c.State(),
		Target:    c.Target(),
		Verdict:   nameOf(c.Verdict()),
		Reel:      names(c.Reel()),
		Cursor:    c.Cursor(),
		Elapsed:   c.Elapsed(),
		Countdown: c.Countdown(),
		Current:   nameOf(c.Current()),
		ArrowY:    c.Arrow().Y(),
		ArrowDir:  c.Arrow().Dir(),
	}
}

func TestNewChangerIsIdle(t *testing.T) {
	c := newChanger(t, 1)
	assert.Equal(t, Idle, c.State())
	assert.False(t, c.HasSelection())
	assert.False(t, c.ButtonEnabled())
	assert.Equal(t, 5, c.Countdown())
	assert.Zero(t, c.Cursor())
	assert.Empty(t, c.Reel())
	assert.Equal(t, "00:00", c.TimerText())
}

func TestNewRejectsSingleSymbol(t *testing.T) {
	cfg := config.DefaultConfig()
	_, err := New(cfg.Changer, cfg.Arrow, symbols("cherry", "cherry"), rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrNotEnoughSymbols)
}

func TestSpinWithoutSelectionIsNoop(t *testing.T) {
	c := newChanger(t, 42)
	twin := newChanger(t, 42)

	before := snap(c)
	assert.False(t, c.Spin())
	assert.Equal(t, before, snap(c))

	// The RNG was not touched: both instances produce the same reel.
	c.SelectSymbol("cherry")
	twin.SelectSymbol("cherry")
	require.True(t, c.Spin())
	require.True(t, twin.Spin())
	assert.Equal(t, names(twin.Reel()), names(c.Reel()))
}

func TestSpinWhileSpinningIsNoop(t *testing.T) {
	c := newChanger(t, 3)
	c.SelectSymbol("bar")
	require.True(t, c.Spin())
	for i := 0; i < 37; i++ {
		c.Update()
	}

	before := snap(c)
	assert.False(t, c.Spin())
	assert.Equal(t, before, snap(c))
}

func TestSpinAfterSettleNeedsFreshSelection(t *testing.T) {
	c := newChanger(t, 3)
	c.SelectSymbol("bar")
	require.True(t, c.Spin())
	for i := 0; i < 300; i++ {
		c.Update()
	}
	require.Equal(t, Settled, c.State())

	before := snap(c)
	assert.False(t, c.Spin())
	assert.Equal(t, before, snap(c))

	c.SelectSymbol("bar")
	assert.True(t, c.Spin())
}

func TestReelInvariants(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		c := newChanger(t, seed)
		c.SelectSymbol("cherry")
		require.True(t, c.Spin())

		reel := c.Reel()
		require.Len(t, reel, 30)
		for i := 1; i < len(reel); i++ {
			require.NotEqual(t, reel[i-1].Name, reel[i].Name, "seed %d index %d", seed, i)
		}
		assert.Same(t, reel[0], c.Current())
	}
}

func TestReelWithTwoSymbolsAlternates(t *testing.T) {
	cfg := config.DefaultConfig()
	c, err := New(cfg.Changer, cfg.Arrow, symbols("a", "b"), rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	c.SelectSymbol("a")
	require.True(t, c.Spin())

	reel := names(c.Reel())
	for i := 1; i < len(reel); i++ {
		assert.NotEqual(t, reel[i-1], reel[i])
	}
}

func TestSpinScenario300Ticks(t *testing.T) {
	c := newChanger(t, 2024)
	c.SelectSymbol("cherry")
	require.True(t, c.Spin())
	reel := c.Reel()

	for i := 1; i < 300; i++ {
		c.Update()
		require.Equal(t, Spinning, c.State(), "still spinning after %d ticks", i)
		assert.Same(t, reel[i/10], c.Current(), "tick %d", i)
	}

	c.Update()
	assert.Equal(t, Settled, c.State())
	assert.Same(t, reel[29], c.Verdict())
	assert.False(t, c.HasSelection())
	assert.Equal(t, "cherry", c.Target(), "target is kept for the outcome")

	// Session reset.
	assert.Equal(t, 5, c.Countdown())
	assert.Zero(t, c.Cursor())
	assert.Zero(t, c.Elapsed())
	assert.Empty(t, c.Reel())
	assert.Nil(t, c.Current())
}

func TestCountdownTimeline(t *testing.T) {
	c := newChanger(t, 8)
	c.SelectSymbol("bell")
	require.True(t, c.Spin())
	assert.Equal(t, "00:05", c.TimerText())

	expect := map[int]int{59: 5, 60: 4, 119: 4, 120: 3, 180: 2, 240: 1, 299: 1}
	for tick := 1; tick < 300; tick++ {
		c.Update()
		if want, ok := expect[tick]; ok {
			assert.Equal(t, want, c.Countdown(), "tick %d", tick)
			assert.Equal(t, FormatSeconds(want), c.TimerText())
		}
	}
}

func TestCountdownClamp(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Changer.ReelLength = 60 // 600 ticks, countdown would reach -5

	for _, clamp := range []bool{true, false} {
		cfg.Changer.ClampCountdown = clamp
		c, err := New(cfg.Changer, cfg.Arrow, symbols(playable...), rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		c.SelectSymbol("seven")
		require.True(t, c.Spin())

		for i := 0; i < 599; i++ {
			c.Update()
		}
		require.Equal(t, Spinning, c.State())
		if clamp {
			assert.Equal(t, 0, c.Countdown())
			assert.Equal(t, "00:00", c.TimerText())
		} else {
			assert.Equal(t, -4, c.Countdown())
			assert.Equal(t, "00:0-4", c.TimerText())
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "00:05", FormatSeconds(5))
	assert.Equal(t, "00:00", FormatSeconds(0))
	assert.Equal(t, "00:12", FormatSeconds(12))
}

func TestReselectBeforeSpinning(t *testing.T) {
	c := newChanger(t, 5)

	c.SelectSymbol("bar")
	assert.Equal(t, Ready, c.State())
	assert.Equal(t, "bar", c.Target())

	c.SelectSymbol("bell")
	assert.Equal(t, Ready, c.State())
	assert.Equal(t, "bell", c.Target())
	assert.Nil(t, c.Verdict())
}

func TestSelectClearsVerdict(t *testing.T) {
	c := newChanger(t, 5)
	c.SelectSymbol("bar")
	require.True(t, c.Spin())
	for i := 0; i < 300; i++ {
		c.Update()
	}
	require.NotNil(t, c.Verdict())

	c.SelectSymbol("bell")
	assert.Nil(t, c.Verdict())
	assert.Equal(t, Ready, c.State())
	_, ok := c.Win()
	assert.False(t, ok)
}

func TestSelectWhileSpinningKeepsSpinning(t *testing.T) {
	c := newChanger(t, 11)
	c.SelectSymbol("bar")
	require.True(t, c.Spin())
	for i := 0; i < 50; i++ {
		c.Update()
	}
	reel := c.Reel()

	c.SelectSymbol("diamond")
	assert.Equal(t, Spinning, c.State())
	assert.Equal(t, "diamond", c.Target())
	assert.Equal(t, names(reel), names(c.Reel()), "running spin is not restarted")

	for i := 50; i < 300; i++ {
		c.Update()
	}
	win, ok := c.Win()
	require.True(t, ok)
	assert.Equal(t, reel[29].Name == "diamond", win)
}

func TestOutcomeIsPure(t *testing.T) {
	assert.True(t, Outcome("bell", "bell"))
	assert.False(t, Outcome("bell", "bar"))
	assert.False(t, Outcome("", "bar"))
}

func TestWinMatchesVerdict(t *testing.T) {
	wins, losses := 0, 0
	for seed := int64(0); seed < 60; seed++ {
		c := newChanger(t, seed)
		c.SelectSymbol("lemon")
		require.True(t, c.Spin())
		final := c.Reel()[29].Name
		for i := 0; i < 300; i++ {
			c.Update()
		}
		win, ok := c.Win()
		require.True(t, ok)
		assert.Equal(t, final == "lemon", win)
		if win {
			wins++
		} else {
			losses++
		}
	}
	assert.Positive(t, losses)
	assert.Equal(t, 60, wins+losses)
}

func TestArrowOnlyMovesWhenReady(t *testing.T) {
	c := newChanger(t, 1)
	c.Update()
	assert.Equal(t, 140, c.Arrow().Y(), "idle: arrow still")

	c.SelectSymbol("cherry")
	c.Update()
	assert.Equal(t, 141, c.Arrow().Y())

	require.True(t, c.Spin())
	c.Update()
	assert.Equal(t, 141, c.Arrow().Y(), "spinning: arrow still")
}

func TestListenerEvents(t *testing.T) {
	c := newChanger(t, 77)
	var kinds []EventKind
	var settle Event
	c.AddListener(ListenerFunc(func(e Event) {
		kinds = append(kinds, e.Kind)
		if e.Kind == EventSettle {
			settle = e
		}
	}))

	c.SelectSymbol("seven")
	c.Spin()
	final := c.Reel()[29].Name
	for i := 0; i < 300; i++ {
		c.Update()
	}

	count := map[EventKind]int{}
	for _, k := range kinds {
		count[k]++
	}
	assert.Equal(t, 1, count[EventSelect])
	assert.Equal(t, 1, count[EventSpin])
	assert.Equal(t, 29, count[EventAdvance])
	assert.Equal(t, 5, count[EventCountdown])
	assert.Equal(t, 1, count[EventSettle])
	assert.Equal(t, EventSettle, kinds[len(kinds)-1])

	assert.Equal(t, final, settle.Symbol)
	assert.Equal(t, "seven", settle.Target)
	assert.Equal(t, final == "seven", settle.Win)
	assert.Equal(t, Settled, settle.State)
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "settled", Settled.String())
	assert.Equal(t, "advance", EventAdvance.String())
}
