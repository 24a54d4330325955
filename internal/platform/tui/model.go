package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/engine"
	"github.com/vovakirdan/tui-ladders/internal/session"
)

// Options configures the game screen.
type Options struct {
	Runtime    core.RuntimeConfig
	RollFrames int // Animation frames before a roll is revealed, 0 disables it
}

// Model is the Bubble Tea model for a running match.
//
// A roll is applied to the session the moment the key is pressed. The
// animation only delays what is shown: shown is the snapshot on screen and
// catches up with the session once the dice stop.
type Model struct {
	driver   *session.Driver
	screen   *core.Screen
	opts     Options
	keys     KeyMap
	help     help.Model
	tumble   dice.Source // Faces shown while rolling
	shown    engine.Snapshot
	face     int
	status   string
	pending  engine.Outcome
	rolling  int // Frames left in the current animation
	quitting bool
}

// NewModel creates a game screen for the driver's current match.
func NewModel(driver *session.Driver, opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	width := max(opts.Runtime.ScreenW, LayoutWidth)
	snap := driver.Game()

	return Model{
		driver: driver,
		screen: core.NewScreen(width, LayoutHeight),
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		tumble: dice.NewRandom(opts.Runtime.Seed),
		shown:  snap,
		face:   snap.LastRoll,
		status: snap.Players[snap.Turn].Name + " starts. Roll a 1 or 6 to enter the board.",
	}
}

// Init implements tea.Model. Ticks only run while the dice tumble.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(max(msg.Width, LayoutWidth), LayoutHeight)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionRoll:
		if m.rolling > 0 {
			return m, nil
		}
		return m.roll()

	case core.ActionRestart:
		if m.rolling > 0 {
			return m, nil
		}
		if !m.driver.Game().Terminal() {
			m.status = "Restart is available once someone wins."
			return m, nil
		}
		m.driver.SubmitReset()
		m.shown = m.driver.Game()
		m.face = m.shown.LastRoll
		m.status = "New game! " + m.shown.Players[m.shown.Turn].Name + " starts."
		return m, nil
	}

	return m, nil
}

func (m Model) roll() (tea.Model, tea.Cmd) {
	out, err := m.driver.SubmitRoll()
	if err != nil {
		if errors.Is(err, engine.ErrInvalidCall) {
			m.status = "The game is over. Press R to restart."
		} else {
			m.status = err.Error()
		}
		return m, nil
	}

	m.pending = out
	if m.opts.RollFrames <= 0 {
		m.reveal()
		return m, nil
	}

	m.rolling = m.opts.RollFrames
	m.face = m.tumble.Roll()
	return m, tickCmd(m.opts.Runtime.TickRate)
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.rolling == 0 {
		return m, nil
	}

	m.rolling--
	if m.rolling == 0 {
		m.reveal()
		return m, nil
	}

	m.face = m.tumble.Roll()
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// reveal brings the screen up to date with the session.
func (m *Model) reveal() {
	m.shown = m.driver.Game()
	m.face = m.pending.Roll
	m.status = m.pending.Describe(m.shown.Players[m.pending.Player].Name)
}

// Rolling reports whether the dice animation is running.
func (m Model) Rolling() bool {
	return m.rolling > 0
}

// Status returns the status line currently shown.
func (m Model) Status() string {
	return m.status
}

// Shown returns the game snapshot currently on screen.
func (m Model) Shown() engine.Snapshot {
	return m.shown
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, Frame{
		Table:   m.driver.Table(),
		Game:    m.shown,
		Face:    m.face,
		Rolling: m.rolling > 0,
		Status:  m.status,
	})

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program for the driver's match.
func Run(driver *session.Driver, opts Options) error {
	p := tea.NewProgram(
		NewModel(driver, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
