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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slither/internal/core"
	"github.com/vovakirdan/tui-slither/internal/registry"
	"github.com/vovakirdan/tui-slither/internal/storage"
)

// helpRows is the number of terminal rows reserved below the game screen.
const helpRows = 1

// Model is the Bubble Tea model for running a game.
// Mouse motion drives the pointer, keys drive the phase machine.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	helpStyle  lipgloss.Style
	store      *storage.Store
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	log        *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	embedded   bool // Owned by a SessionModel; never quits the program on back
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil renderer uses stdout's lipgloss renderer.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, r *lipgloss.Renderer) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	if ska, ok := game.(registry.ScoreKeeperAware); ok && store != nil {
		ska.SetScoreKeeper(store.Keeper(game.ID()))
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-helpRows)),
		renderer:   NewScreenRenderer(r),
		helpStyle:  r.NewStyle().Foreground(lipgloss.Color("241")),
		store:      store,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		log:        log.Default().With("game", game.ID()),
		inputFrame: core.NewInputFrame(),
	}
}

// WithLogger returns a copy of the model that logs to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.log = l.With("game", m.game.ID())
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is filled on the first tick (value receiver)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		// Back on the title screen leaves the game entirely
		if m.gameState.InMenu {
			m.backToMenu = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		}
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleMouse maps terminal cells to world coordinates for the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if pm, ok := m.game.(registry.PointerMapper); ok {
		p := pm.CellToWorld(msg.X, msg.Y, m.screen.Width(), m.screen.Height())
		m.inputFrame.SetPointer(p.X, p.Y)
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Set(core.ActionPointerPress)
	}
	return m, nil
}

// handleResize processes window resize events.
// The world has a fixed size, so only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-helpRows))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Finished {
		m.recordRun(result.State)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores a finished game in the run history.
func (m Model) recordRun(state core.GameState) {
	if m.store == nil {
		return
	}
	id, err := m.store.RecordFinished(m.game, state)
	if err != nil {
		m.log.Warn("could not record run", "err", err)
		return
	}
	if id != 0 {
		m.log.Debug("run recorded", "id", id, "score", state.Score)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".slither", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + m.helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player left the game's title screen.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game.
// It reports whether the player asked to quit rather than return to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (quit bool, err error) {
	model := NewModel(game, store, cfg, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer follows the mouse without a button held
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.IsQuitting(), nil
	}
	return false, nil
}
