package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/registry"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// helpRows is the number of terminal rows used by the help bar.
const helpRows = 1

// Options configures the platform around a game.
type Options struct {
	Logger      *log.Logger
	InitialHold time.Duration // Key latch window after the first press
	RepeatHold  time.Duration // Key latch window after an auto-repeat
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	queue     *core.EventQueue
	latch     *KeyLatch
	keys      KeyMap
	help      help.Model
	log       *log.Logger
	gameState core.GameState

	width, height int
	mouseOn       bool // Whether mouse reporting is enabled
	recorded      bool // Whether the current game over has been recorded
	showScores    bool
	scores        scoreboardView
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		store:   store,
		config:  cfg,
		queue:   &core.EventQueue{},
		latch:   NewKeyLatch(opts.InitialHold, opts.RepeatHold),
		keys:    DefaultKeyMap(),
		help:    h,
		log:     logger,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		mouseOn: true, // Run starts with mouse reporting for the Play button
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey turns a key press into game events.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Abort) {
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Scores) {
		if m.gameState.ShowMenu || m.showScores {
			m.toggleScores()
		}
		return m, nil
	}
	if m.showScores {
		if key.Matches(msg, m.keys.Pause) {
			m.showScores = false
			return m, nil
		}
		if !key.Matches(msg, m.keys.Quit) {
			return m, nil
		}
	}

	k := m.keys.MapKey(msg)
	if k == core.KeyNone {
		return m, nil
	}

	if !isHoldKey(k) {
		m.queue.Push(core.KeyDown(k))
		return m, nil
	}

	// A terminal only repeats the last key pressed, so switching direction
	// releases the other one.
	if other := opposite(k); m.latch.Release(other) {
		m.queue.Push(core.KeyUp(other))
	}
	if m.latch.Press(k, now) {
		m.queue.Push(core.KeyDown(k))
	}
	return m, nil
}

// handleMouse forwards left clicks in world coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.showScores {
		return m, nil
	}

	fieldH := m.screen.Height() - core.HUDRows
	if msg.Y < core.HUDRows || fieldH <= 0 {
		return m, nil
	}
	ww, wh := m.game.Bounds()
	x, y := core.Unscale(msg.X, msg.Y-core.HUDRows, m.screen.Width(), fieldH, ww, wh)
	m.queue.Push(core.MouseClick(x, y))
	return m, nil
}

// handleResize re-projects the world onto the new terminal size.
// The simulation itself is independent of the terminal size and keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick releases timed-out keys and advances the simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, k := range m.latch.Expire(now) {
		m.queue.Push(core.KeyUp(k))
	}

	result := m.game.Step(m.queue.Drain())
	m.gameState = result.State

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	m.recordGameOver()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if cmd := m.syncMouse(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// recordGameOver saves the final result once per finished game.
func (m *Model) recordGameOver() {
	if !m.gameState.GameOver {
		m.recorded = false
		return
	}
	if m.recorded {
		return
	}
	m.recorded = true

	if m.store == nil {
		return
	}
	if _, err := m.store.RecordGame(m.gameState.Score, m.gameState.Level); err != nil {
		// Best-effort save, game continues regardless
		m.log.Warn("cannot record game", "err", err)
		return
	}
	m.log.Info("game recorded", "score", m.gameState.Score, "level", m.gameState.Level)
}

// syncMouse enables mouse reporting while the Play button is shown and
// disables it during play, the terminal's version of showing and hiding
// the cursor.
func (m *Model) syncMouse() tea.Cmd {
	if m.gameState.ShowMenu == m.mouseOn {
		return nil
	}
	m.mouseOn = m.gameState.ShowMenu
	if m.mouseOn {
		return tea.EnableMouseCellMotion
	}
	m.showScores = false
	return tea.DisableMouse
}

func (m *Model) toggleScores() {
	m.showScores = !m.showScores
	if m.showScores {
		m.scores = newScoreboardView(m.store, m.height)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpBar := helpStyle.Render(m.help.View(m.keys))

	if m.showScores {
		return m.scores.View(m.width, m.screen.Height()) + "\n" + helpBar
	}

	// Render game to screen buffer
	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpBar
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Play button clicks
	)

	_, err := p.Run()
	return err
}
