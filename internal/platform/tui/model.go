package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slots/internal/core"
	"github.com/vovakirdan/tui-slots/internal/game"
)

// footerRows is the space kept below the play surface for the help bar.
const footerRows = 1

// Model is the Bubble Tea model running one slot session.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	status   string
	quitting bool

	screenshotDir string
}

// NewScreen creates a play surface for a terminal of w x h cells.
func NewScreen(w, h int, raster core.Rasterizer) *core.Screen {
	s := core.NewScreen(w, h-footerRows)
	s.SetRasterizer(raster)
	return s
}

// NewModel creates a model for session, which must render into screen.
func NewModel(session *game.Session, screen *core.Screen, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		session:       session,
		screen:        screen,
		renderer:      NewRenderer(),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        logger,
		screenshotDir: defaultScreenshotDir(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.Scheduler().Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if cmd, ok := MapMouse(msg, m.screen); ok {
			m.session.Enqueue(cmd)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.session.Tick()
		return m, tickCmd(m.session.Scheduler().Interval())
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, action := m.keys.MapKey(msg)
	switch action {
	case KeyActionQuit:
		m.quitting = true
		return m, tea.Quit
	case KeyActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "err", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + path
		}
		return m, nil
	case KeyActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if cmd.Kind != core.CommandNone {
		m.session.Enqueue(cmd)
	}
	return m, nil
}

// handleResize rescales the play surface. Game state is untouched; the
// next frame is drawn at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height-footerRows)
	m.help.Width = msg.Width
	m.session.Render()
	return m, nil
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("slots_%s.txt", timestamp)
	if id := m.session.ID(); id != "" {
		name = fmt.Sprintf("slots_%s_%s.txt", id, timestamp)
	}
	path := filepath.Join(m.screenshotDir, name)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".slots", "screenshots")
	}
	return filepath.Join(home, ".slots", "screenshots")
}

// View renders the current frame with the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	footer := m.help.View(m.keys)
	if m.status != "" {
		footer += "  " + m.status
	}
	return m.renderer.Render(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for session until the player quits or
// ctx is done.
func Run(ctx context.Context, session *game.Session, screen *core.Screen, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(session, screen, logger),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
