package scheduler

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-slots/internal/core"
)

// tracePhase records every call in order.
type tracePhase struct {
	name  string
	trace *[]string
	onUpd func()
}

func (p *tracePhase) Handle(cmd core.Command) {
	*p.trace = append(*p.trace, fmt.Sprintf("%s.handle(%s)", p.name, cmd.Kind))
}

func (p *tracePhase) Update() {
	*p.trace = append(*p.trace, p.name+".update")
	if p.onUpd != nil {
		p.onUpd()
	}
}

func (p *tracePhase) Render(dst core.Surface) {
	*p.trace = append(*p.trace, p.name+".render")
	dst.DrawText(0, 0, p.name, core.Font{})
}

func TestTickOrder(t *testing.T) {
	var trace []string
	p := &tracePhase{name: "a", trace: &trace}
	dl := core.NewDrawList()
	s := New(p, dl, 60, nil)

	s.Enqueue(core.SelectIndexCommand(0))
	s.Enqueue(core.SpinCommand())
	s.Tick()

	assert.Equal(t, []string{"a.handle(SelectIndex)", "a.handle(Spin)", "a.update", "a.render"}, trace)
	assert.Equal(t, []string{"a"}, dl.Texts())
	assert.Equal(t, uint64(1), s.Ticks())
	assert.Zero(t, s.Pending())
}

func TestSwitchPhaseAppliesAfterTick(t *testing.T) {
	var trace []string
	b := &tracePhase{name: "b", trace: &trace}
	var s *Scheduler
	a := &tracePhase{name: "a", trace: &trace}
	a.onUpd = func() { s.SwitchPhase(b) }
	s = New(a, core.NewDrawList(), 60, nil)

	s.Tick()
	assert.Equal(t, []string{"a.update", "a.render"}, trace, "the switching tick finishes on the old phase")
	assert.Same(t, b, s.Phase())

	trace = trace[:0]
	s.Enqueue(core.SpinCommand())
	s.Tick()
	assert.Equal(t, []string{"b.handle(Spin)", "b.update", "b.render"}, trace)
}

func TestEnqueueFromManyGoroutines(t *testing.T) {
	var trace []string
	s := New(&tracePhase{name: "a", trace: &trace}, nil, 60, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				s.Enqueue(core.SpinCommand())
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 200, s.Pending())

	s.Tick()
	handled := 0
	for _, e := range trace {
		if e == "a.handle(Spin)" {
			handled++
		}
	}
	assert.Equal(t, 200, handled, "no command is dropped")
}

func TestNilSurfaceSkipsRender(t *testing.T) {
	var trace []string
	s := New(&tracePhase{name: "a", trace: &trace}, nil, 60, nil)
	s.Tick()
	assert.Equal(t, []string{"a.update"}, trace)
}

func TestStartStopsWithContext(t *testing.T) {
	var trace []string
	s := New(&tracePhase{name: "a", trace: &trace}, nil, 1000, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := s.Start(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, s.Ticks())
}

func TestInterval(t *testing.T) {
	s := New(&tracePhase{name: "a", trace: new([]string)}, nil, 60, nil)
	assert.Equal(t, time.Second/60, s.Interval())

	s = New(&tracePhase{name: "a", trace: new([]string)}, nil, 0, nil)
	assert.Equal(t, 60, s.TickRate(), "non-positive rates fall back to the default")
}

// tickWithin fails the test if one tick does not return in time.
func tickWithin(t *testing.T, s *Scheduler, d time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		s.Tick()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatal("tick did not return")
	}
}

func TestAccessorsFromInsideTick(t *testing.T) {
	var trace []string
	a := &tracePhase{name: "a", trace: &trace}
	b := &tracePhase{name: "b", trace: &trace}
	s := New(a, core.NewDrawList(), 60, nil)

	var (
		seenTicks    uint64
		seenPhase    Phase
		renderedInto bool
	)
	a.onUpd = func() {
		seenTicks = s.Ticks()
		seenPhase = s.Phase()
		renderedInto = s.Render()
		s.SwitchPhase(b)
	}

	s.Tick()
	tickWithin(t, s, 2*time.Second)

	assert.Equal(t, uint64(1), seenTicks)
	assert.Same(t, a, seenPhase)
	assert.False(t, renderedInto)
	assert.Same(t, b, s.Phase())
	assert.True(t, s.Render())
}
