package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/game"
	"github.com/vovakirdan/brickbreaker/internal/i18n"
)

// Minimum terminal size that still shows the whole grid and the prompt.
const (
	minScreenW = 20
	minScreenH = 8
)

// Options configures a terminal session.
type Options struct {
	Runtime core.RuntimeConfig

	// KeyHoldTicks is how long a key press keeps the paddle moving.
	KeyHoldTicks int

	Messages i18n.Messages

	// Logger receives session events. Nil discards them.
	Logger *log.Logger
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	state  *game.State
	screen *core.Screen
	opts   Options
	keys   KeyMap
	help   help.Model

	left  keyHold
	right keyHold

	quitting bool
	declined bool
}

// NewModel creates a model driving state.
func NewModel(state *game.State, opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.KeyHoldTicks <= 0 {
		opts.KeyHoldTicks = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		state:  state,
		screen: core.NewScreen(opts.Runtime.ScreenW, fieldRows(opts.Runtime.ScreenH)),
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// fieldRows is the number of rows left for the field under the status row.
func fieldRows(screenH int) int {
	return core.Max(screenH-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, fieldRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.state.Outcome().Terminal() {
		switch action {
		case core.ActionYes:
			m.opts.Logger.Debug("round restarted")
			m.state.Reset()
			return m, tickCmd(m.opts.Runtime.TickRate)
		case core.ActionNo:
			m.declined = true
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch action {
	case core.ActionLeft:
		m.left.press(m.opts.KeyHoldTicks)
		m.state.SetMoveLeft(true)
	case core.ActionRight:
		m.right.press(m.opts.KeyHoldTicks)
		m.state.SetMoveRight(true)
	case core.ActionStop:
		m.left.release()
		m.right.release()
		m.state.SetMoveLeft(false)
		m.state.SetMoveRight(false)
	}
	return m, nil
}

// handleTick releases expired keys and advances the simulation. The tick
// chain stops once the round ends and restarts on retry.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state.Outcome().Terminal() {
		return m, nil
	}

	m.left.tick()
	m.right.tick()
	m.state.SetMoveLeft(m.left.held())
	m.state.SetMoveRight(m.right.held())

	if outcome := m.state.Step(); outcome.Terminal() {
		m.opts.Logger.Info("round ended",
			"outcome", outcome,
			"ticks", m.state.Tick(),
			"bricks", m.state.BricksRemaining(),
		)
		return m, nil
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// View renders the field, the retry prompt and the status row.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH
	if w < minScreenW || h < minScreenH {
		return m.tooSmallView()
	}

	m.screen.Clear()
	fieldW, fieldH := m.state.Field()
	Rasterize(m.screen, m.state.Render(), fieldW, fieldH)

	if outcome := m.state.Outcome(); outcome.Terminal() {
		title, body := dialogText(outcome == game.OutcomeWon, m.opts.Messages)
		drawDialog(m.screen, title, body, m.opts.Messages)
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteRune('\n')
	b.WriteString(m.statusLine())
	return b.String()
}

// statusLine shows the brick count followed by the key help.
func (m Model) statusLine() string {
	count := fmt.Sprintf("Bricks %d/%d  ", m.state.BricksRemaining(), m.state.BricksTotal())
	return statusStyle.Render(count) + m.help.View(m.keys)
}

func (m Model) tooSmallView() string {
	w, h := m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH
	s := core.NewScreen(w, h)
	s.DrawTextCentered(h/2-1, "Window too small", core.ColorYellow)
	s.DrawTextCentered(h/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
	return RenderScreen(s)
}

// Quitting reports whether the session has ended.
func (m Model) Quitting() bool {
	return m.quitting
}

// Declined reports whether the player answered No at the retry prompt.
func (m Model) Declined() bool {
	return m.declined
}

// Run starts the Bubble Tea program on the local terminal and blocks until
// the player quits.
func Run(state *game.State, opts Options) error {
	p := tea.NewProgram(NewModel(state, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
