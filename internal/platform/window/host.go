// Package window runs the slot game in a desktop window via Ebiten.
package window

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-slots/internal/core"
	"github.com/vovakirdan/tui-slots/internal/game"
)

const title = "Slots"

// Host is an ebiten.Game driving one session. Each Update runs one
// scheduler tick into a draw list; Draw replays it onto the window.
type Host struct {
	session *game.Session
	frame   *core.DrawList
	surface *surface
	logger  *log.Logger
}

// NewFrame creates the draw list a windowed session must render into.
func NewFrame() *core.DrawList {
	return core.NewDrawList()
}

// NewHost creates a host for session, which must render into frame.
func NewHost(session *game.Session, frame *core.DrawList, logger *log.Logger) (*Host, error) {
	sf, err := newSurface()
	if err != nil {
		return nil, err
	}
	return &Host{
		session: session,
		frame:   frame,
		surface: sf,
		logger:  logger,
	}, nil
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for _, cmd := range commands() {
		h.session.Enqueue(cmd)
	}

	h.frame.Reset()
	h.session.Tick()
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	h.surface.dst = screen
	h.frame.Replay(h.surface)
}

// Layout implements ebiten.Game. The logical surface is fixed; ebiten
// scales it to the window.
func (h *Host) Layout(int, int) (int, int) {
	return core.LogicalWidth, core.LogicalHeight
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

// commands collects this frame's input as game commands.
func commands() []core.Command {
	var cmds []core.Command
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			cmds = append(cmds, core.SelectIndexCommand(i))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			cmds = append(cmds, core.Command{Kind: core.CommandSelectPrev})
		} else {
			cmds = append(cmds, core.Command{Kind: core.CommandSelectNext})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		cmds = append(cmds, core.SpinCommand())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		cmds = append(cmds, core.ClickCommand(x, y))
	}
	return cmds
}

// Run opens the window and plays until it is closed.
func Run(session *game.Session, frame *core.DrawList, logger *log.Logger) error {
	h, err := NewHost(session, frame, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(core.LogicalWidth, core.LogicalHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(session.Scheduler().TickRate())

	logger.Info("window opened", "tps", session.Scheduler().TickRate(), "seed", session.Seed())
	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
