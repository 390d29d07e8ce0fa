package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slots/internal/core"
)

// KeyMap defines the slot screen key bindings.
type KeyMap struct {
	Spin       key.Binding
	Next       key.Binding
	Prev       key.Binding
	Pick       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Next, k.Spin, k.Help, k.Quit}
}

// FullHelp returns all bindings for the expanded footer.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pick, k.Next, k.Prev},
		{k.Spin, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Spin: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "spin"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab", "next symbol"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab", "prev symbol"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "pick symbol"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyAction is a frontend action that is not a game command.
type KeyAction int

const (
	KeyActionNone KeyAction = iota
	KeyActionQuit
	KeyActionScreenshot
	KeyActionHelp
)

// MapKey translates a key message to a game command or a frontend action.
// At most one of the two is set.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Command, KeyAction) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Command{}, KeyActionQuit
	case key.Matches(msg, k.Screenshot):
		return core.Command{}, KeyActionScreenshot
	case key.Matches(msg, k.Help):
		return core.Command{}, KeyActionHelp
	case key.Matches(msg, k.Spin):
		return core.SpinCommand(), KeyActionNone
	case key.Matches(msg, k.Next):
		return core.Command{Kind: core.CommandSelectNext}, KeyActionNone
	case key.Matches(msg, k.Prev):
		return core.Command{Kind: core.CommandSelectPrev}, KeyActionNone
	case key.Matches(msg, k.Pick):
		s := msg.String()
		return core.SelectIndexCommand(int(s[0] - '1')), KeyActionNone
	}
	return core.Command{}, KeyActionNone
}

// MapMouse translates a left click on screen into a logical click command.
func MapMouse(msg tea.MouseMsg, screen *core.Screen) (core.Command, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.Command{}, false
	}
	if msg.X < 0 || msg.X >= screen.Width() || msg.Y < 0 || msg.Y >= screen.Height() {
		return core.Command{}, false
	}
	x, y := screen.ToLogical(msg.X, msg.Y)
	return core.ClickCommand(x, y), true
}
