package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris"
	"github.com/vovakirdan/termtris/internal/runner"
)

// Model is the Bubble Tea model of one game. It never touches the session:
// keys go to the mailbox and frames come from the latest published snapshot.
type Model struct {
	mailbox  *runner.Mailbox
	latest   *runner.Latest
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	snap     tetris.Snapshot
	hasSnap  bool
	quitting bool
}

// NewModel creates a model that posts to mailbox and draws from latest.
func NewModel(mailbox *runner.Mailbox, latest *runner.Latest, cfg core.RuntimeConfig) Model {
	return Model{
		mailbox: mailbox,
		latest:  latest,
		screen:  core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init starts the redraw loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey forwards game keys to the mailbox. Once the game is over only
// quit and help are handled so the final board stays on screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.mailbox.Post(core.ActionQuit)
		m.quitting = true
		return m, tea.Quit
	}
	if !m.snap.Terminal() {
		m.mailbox.Post(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick picks up the newest snapshot.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if snap, ok := m.latest.Load(); ok {
		m.snap, m.hasSnap = snap, true
	}
	return m, tickCmd(m.config.FPS)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.hasSnap {
		return "starting..."
	}

	tetris.Render(m.snap, m.screen)
	return RenderScreen(m.screen, m.snap.Terminal()) + "\n" + m.help.View(m.keys)
}

// Run plays one game in the terminal. The driver loop and the Bubble Tea
// program run side by side; latest must be the driver's snapshot sink.
// Leaving the program quits the game, and a finished game stays on screen
// until the player quits.
func Run(d *runner.Driver, latest *runner.Latest, cfg core.RuntimeConfig) (tetris.Snapshot, error) {
	p := tea.NewProgram(
		NewModel(d.Mailbox(), latest, cfg),
		tea.WithAltScreen(),
	)

	var (
		g     errgroup.Group
		final tetris.Snapshot
	)
	g.Go(func() error {
		final = d.Run()
		return nil
	})
	g.Go(func() error {
		_, err := p.Run()
		d.Mailbox().Post(core.ActionQuit)
		return err
	})

	err := g.Wait()
	return final, err
}
