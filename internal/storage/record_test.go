package storage

import (
	"testing"

	"github.com/vovakirdan/tui-slither/internal/core"
)

type stubGame struct {
	difficulty string
}

func (g *stubGame) ID() string                           { return "stub" }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) SetDifficulty(p string)               { g.difficulty = p }
func (g *stubGame) Difficulty() string                   { return g.difficulty }

func TestRecordFinished(t *testing.T) {
	store := openTestStore(t)
	g := &stubGame{difficulty: "easy"}

	id, err := store.RecordFinished(g, core.GameState{Score: 0, Level: 1})
	if err != nil || id != 0 {
		t.Errorf("scoreless run: id=%d err=%v", id, err)
	}

	id, err = store.RecordFinished(g, core.GameState{Score: 60, Level: 2, Length: 14, FoodEaten: 5})
	if err != nil {
		t.Fatalf("RecordFinished() error = %v", err)
	}
	if id == 0 {
		t.Error("expected a run ID")
	}

	runs, err := store.TopRuns("stub", "", 10)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, expected 1", len(runs))
	}
	want := Run{ID: id, GameID: "stub", Difficulty: "easy", Score: 60, Level: 2, Length: 14, FoodEaten: 5}
	got := runs[0]
	got.CreatedAt = want.CreatedAt
	if got != want {
		t.Errorf("run = %+v, expected %+v", got, want)
	}
}
