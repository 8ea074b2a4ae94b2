package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slither/internal/config"
	"github.com/vovakirdan/tui-slither/internal/core"
	"github.com/vovakirdan/tui-slither/internal/storage"
)

var presetBlurbs = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "5 lives, gentle top speed",
	config.DifficultyNormal: "3 lives, speeds up as you eat",
	config.DifficultyHard:   "2 lives, fast start, steep ramp",
	config.DifficultyFixed:  "3 lives, speed never changes",
}

// DifficultyModel lets users pick a difficulty preset before a game.
type DifficultyModel struct {
	gameID   string
	presets  []config.DifficultyPreset
	best     map[config.DifficultyPreset]int
	cursor   int
	width    int
	height   int
	selected config.DifficultyPreset
	quitting bool
	back     bool
}

// NewDifficultyModel creates a selector. store may be nil, in which case
// no best scores are shown.
func NewDifficultyModel(store *storage.Store, gameID string, width, height int) DifficultyModel {
	m := DifficultyModel{
		gameID:  gameID,
		presets: config.Presets(),
		best:    make(map[config.DifficultyPreset]int),
		width:   width,
		height:  height,
	}

	for i, p := range m.presets {
		if p == config.DifficultyNormal {
			m.cursor = i
		}
		if store == nil {
			continue
		}
		if runs, err := store.TopRuns(gameID, string(p), 1); err == nil && len(runs) > 0 {
			m.best[p] = runs[0].Score
		}
	}

	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = m.presets[m.cursor]
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the selector.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S L I T H E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-7s %s", cursor, p, presetBlurbs[p])
		if best, ok := m.best[p]; ok {
			line += fmt.Sprintf("  (best %d)", best)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or "" if none was chosen.
func (m DifficultyModel) Selected() config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector runs the selector. It returns "" if the user backed
// out or quit.
func RunDifficultySelector(store *storage.Store, gameID string, cfg core.RuntimeConfig) (config.DifficultyPreset, core.RuntimeConfig, error) {
	model := NewDifficultyModel(store, gameID, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", cfg, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return "", cfg, nil
	}
	cfg.ScreenW, cfg.ScreenH = m.width, m.height

	if m.IsQuitting() || m.WantsBack() {
		return "", cfg, nil
	}
	return m.Selected(), cfg, nil
}
