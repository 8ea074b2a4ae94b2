package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slither/internal/config"
	"github.com/vovakirdan/tui-slither/internal/core"
	"github.com/vovakirdan/tui-slither/internal/games/slither"
	"github.com/vovakirdan/tui-slither/internal/storage"
)

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuChoice
	}{
		{"play", []tea.KeyMsg{keyEnter}, MenuChoicePlay},
		{"scores", []tea.KeyMsg{keyDown, keyEnter}, MenuChoiceScores},
		{"quit entry", []tea.KeyMsg{keyDown, keyDown, keyEnter}, MenuChoiceQuit},
		{"down clamps", []tea.KeyMsg{keyDown, keyDown, keyDown, keyDown, keyEnter}, MenuChoiceQuit},
		{"up clamps", []tea.KeyMsg{{Type: tea.KeyUp}, keyEnter}, MenuChoicePlay},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var m tea.Model = NewMenuModel(nil, slither.GameID, core.DefaultConfig())
			for _, k := range tc.keys {
				m, _ = m.Update(k)
			}
			if got := m.(MenuModel).Selected(); got != tc.want {
				t.Errorf("Selected() = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store := openTestStore(t)
	if err := store.SetHighScore(slither.GameID, 230); err != nil {
		t.Fatalf("SetHighScore() error = %v", err)
	}

	m := NewMenuModel(store, slither.GameID, core.DefaultConfig())
	if !strings.Contains(m.View(), "High score: 230") {
		t.Errorf("View() missing high score:\n%s", m.View())
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"toolong", 4, "toolong"},
	}
	for _, tc := range tests {
		if got := centerText(tc.text, tc.width); got != tc.want {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.want)
		}
	}
}

func TestDifficultyModel(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(storage.Run{GameID: slither.GameID, Difficulty: "hard", Score: 90}); err != nil {
		t.Fatalf("SaveRun() error = %v", err)
	}

	m := NewDifficultyModel(store, slither.GameID, 80, 24)
	if m.presets[m.cursor] != config.DifficultyNormal {
		t.Errorf("cursor starts on %s, expected normal", m.presets[m.cursor])
	}
	if !strings.Contains(m.View(), "(best 90)") {
		t.Errorf("View() missing best score:\n%s", m.View())
	}

	var tm tea.Model = m
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyUp})
	tm, cmd := tm.Update(keyEnter)
	if got := tm.(DifficultyModel).Selected(); got != config.DifficultyEasy {
		t.Errorf("Selected() = %q, expected easy", got)
	}
	if cmd == nil {
		t.Error("selecting should finish the program")
	}
}

func TestScoreboardTabs(t *testing.T) {
	store := openTestStore(t)
	for _, r := range []storage.Run{
		{GameID: slither.GameID, Difficulty: "normal", Score: 50, Level: 2, Length: 12},
		{GameID: slither.GameID, Difficulty: "hard", Score: 70, Level: 3, Length: 15},
		{GameID: slither.GameID, Difficulty: "normal", Score: 30, Level: 1, Length: 9},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}

	m := NewScoreboardModel(store, slither.GameID, 100, 30)
	if len(m.tabs) != 3 || m.tabs[0] != allDifficulties || m.tabs[1] != "hard" || m.tabs[2] != "normal" {
		t.Fatalf("tabs = %v", m.tabs)
	}
	if len(m.runs) != 3 || m.runs[0].Score != 70 {
		t.Fatalf("all tab runs = %+v", m.runs)
	}

	var tm tea.Model = m
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyTab})
	sm := tm.(ScoreboardModel)
	if len(sm.runs) != 1 || sm.runs[0].Difficulty != "hard" {
		t.Errorf("hard tab runs = %+v", sm.runs)
	}

	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	sm = tm.(ScoreboardModel)
	if sm.tabs[sm.tabCursor] != "normal" || len(sm.runs) != 2 {
		t.Errorf("wrapped to %q with %d runs", sm.tabs[sm.tabCursor], len(sm.runs))
	}

	if !strings.Contains(sm.statsLine(), "Games: 3") || !strings.Contains(sm.statsLine(), "Best: 70") {
		t.Errorf("statsLine() = %q", sm.statsLine())
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, slither.GameID, 60, 20)
	if len(m.tabs) != 1 || len(m.runs) != 0 {
		t.Errorf("tabs=%v runs=%d", m.tabs, len(m.runs))
	}
	if m.statsLine() != "No games recorded" {
		t.Errorf("statsLine() = %q", m.statsLine())
	}
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("View() should show the empty message")
	}
}
