package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slither/internal/config"
	"github.com/vovakirdan/tui-slither/internal/core"
	"github.com/vovakirdan/tui-slither/internal/games/slither"
	"github.com/vovakirdan/tui-slither/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, store *storage.Store) (Model, *slither.Game) {
	t.Helper()
	game := slither.NewWithConfig(config.DefaultSlitherConfig())
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 42}
	m := NewModel(game, store, cfg, nil)
	m.Init()
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg(time.Now()))
	return m
}

func TestModelMouseMotionSetsPointer(t *testing.T) {
	m, game := newTestModel(t, nil)

	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionMotion})

	if !m.inputFrame.HasPointer {
		t.Fatal("mouse motion did not set the pointer")
	}
	want := game.CellToWorld(40, 12, 80, 24)
	if m.inputFrame.Pointer != want {
		t.Errorf("pointer = %+v, expected %+v", m.inputFrame.Pointer, want)
	}
	if m.inputFrame.Has(core.ActionPointerPress) {
		t.Error("motion should not press")
	}
}

func TestModelClickStartsGame(t *testing.T) {
	m, game := newTestModel(t, nil)
	m = tick(t, m)
	if !m.GameState().InMenu {
		t.Fatal("expected title screen after first tick")
	}

	m, _ = update(t, m, tea.MouseMsg{
		X: 40, Y: 12,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m = tick(t, m)

	if game.Phase() != slither.PhasePlaying {
		t.Errorf("phase = %s, expected playing", game.Phase())
	}
	if m.inputFrame.Has(core.ActionPointerPress) {
		t.Error("actions should be cleared after a tick")
	}
	if !m.inputFrame.HasPointer {
		t.Error("pointer should persist across ticks")
	}
}

func TestModelKeys(t *testing.T) {
	m, game := newTestModel(t, nil)
	m = tick(t, m)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	if game.Phase() != slither.PhasePlaying {
		t.Fatalf("enter: phase = %s, expected playing", game.Phase())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = tick(t, m)
	if game.Phase() != slither.PhasePaused {
		t.Fatalf("p: phase = %s, expected paused", game.Phase())
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Error("esc while paused should not leave the program")
	}
	m = tick(t, m)
	if game.Phase() != slither.PhaseMenu {
		t.Fatalf("esc: phase = %s, expected menu", game.Phase())
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || cmd == nil {
		t.Error("esc on the title screen should leave the game")
	}
}

func TestModelEmbeddedBackKeepsProgram(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.embedded = true
	m = tick(t, m)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("expected BackToMenu")
	}
	if cmd != nil {
		t.Error("embedded model must not quit the program")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, game := newTestModel(t, nil)
	m = tick(t, m)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	frame := game.Frame()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if game.Phase() != slither.PhasePlaying || game.Frame() != frame {
		t.Error("resize should not reset the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelWiresScoreKeeper(t *testing.T) {
	store := openTestStore(t)
	if err := store.SetHighScore(slither.GameID, 500); err != nil {
		t.Fatalf("SetHighScore() error = %v", err)
	}

	_, game := newTestModel(t, store)

	if hs := game.Stats().HighScore; hs != 500 {
		t.Errorf("HighScore = %d, expected 500", hs)
	}
}

func TestModelRecordRun(t *testing.T) {
	store := openTestStore(t)
	m, _ := newTestModel(t, store)

	m.recordRun(core.GameState{Score: 0, Level: 1, Length: 8})
	m.recordRun(core.GameState{Score: 40, Level: 2, Length: 12, FoodEaten: 4})

	runs, err := store.TopRuns(slither.GameID, "", 10)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, expected 1 (zero scores are skipped)", len(runs))
	}
	r := runs[0]
	if r.Score != 40 || r.Level != 2 || r.Length != 12 || r.FoodEaten != 4 {
		t.Errorf("run = %+v", r)
	}
	if r.Difficulty != "custom" {
		t.Errorf("Difficulty = %q, expected custom", r.Difficulty)
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = tick(t, m)

	out := m.View()
	if out == "" {
		t.Fatal("View() is empty")
	}
	lines := 0
	for _, c := range out {
		if c == '\n' {
			lines++
		}
	}
	// 24 game rows plus the help row
	if lines != 24 {
		t.Errorf("View() has %d line breaks, expected 24", lines)
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tc := range tests {
		if got := tickInterval(tc.rate); got != tc.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tc.rate, got, tc.want)
		}
	}
}
