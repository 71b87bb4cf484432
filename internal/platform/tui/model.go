package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lge88/snake/internal/core"
	"github.com/lge88/snake/internal/game"
	"github.com/lge88/snake/internal/platform/canvas"
)

const (
	// DefaultFPS is the tick rate for frame callbacks. The session
	// drops callbacks that land inside an already processed frame, so
	// this only bounds input latency, not game speed.
	DefaultFPS = 60

	screenshotCell = 24 // pixels per grid cell in saved screenshots
)

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tooSmall    = "Window too small. Resize to continue."
)

// Model is the Bubble Tea model for a snake session.
type Model struct {
	opts     game.Options
	session  *game.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	fps      int
	width    int
	height   int
	quitting bool
}

// NewModel creates a model running one session with the given options.
func NewModel(opts game.Options, fps int) (Model, error) {
	if fps <= 0 {
		fps = DefaultFPS
	}

	session, err := game.NewSession(opts)
	if err != nil {
		return Model{}, err
	}

	return Model{
		opts:    opts,
		session: session,
		screen:  core.NewScreen(opts.Width, opts.Height),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		fps:     fps,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.session.Advance(time.Time(msg), m.screen)
		return m, tickCmd(m.fps)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.session.State().Ended {
			return m.restart()
		}
		return m, nil
	}

	if dir, ok := m.keys.DirectionFor(msg); ok {
		m.session.SetDirectionIntent(dir)
	}
	return m, nil
}

// restart starts a fresh session with a new food sequence.
func (m Model) restart() (tea.Model, tea.Cmd) {
	opts := m.opts
	opts.Seed = time.Now().UnixNano()

	session, err := game.NewSession(opts)
	if err != nil {
		// Shouldn't happen since the ended session ran the same options
		return m, nil
	}

	m.session = session
	m.screen.Clear()
	return m, nil
}

// saveScreenshot renders the current frame to a PNG under
// ~/.snake/screenshots.
func (m *Model) saveScreenshot() {
	r := canvas.New(
		m.opts.Width, m.opts.Height,
		m.opts.Width*screenshotCell, m.opts.Height*screenshotCell,
		m.opts.SpacingRatio,
	)
	m.session.Render(r)

	dir := filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.png", timestamp))
	//nolint:errcheck // Best-effort save, game continues regardless
	r.SavePNG(path)
}

// View renders the board with a score footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.session.State()
	status := fmt.Sprintf("Score: %d", state.Score)
	if state.Ended {
		status += "  (r to restart)"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		statusStyle.Render(status),
		helpStyle.Render(m.help.View(m.keys)),
	)

	// Before the first WindowSizeMsg the terminal size is unknown; show
	// the content unplaced.
	if m.width == 0 || m.height == 0 {
		return content
	}
	if m.width < m.opts.Width || m.height < m.opts.Height+2 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, tooSmall)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts game.Options, fps int) error {
	model, err := NewModel(opts, fps)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
