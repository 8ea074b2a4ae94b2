package storage

import (
	"github.com/vovakirdan/tui-slither/internal/core"
	"github.com/vovakirdan/tui-slither/internal/registry"
)

// RecordFinished saves the run a game just finished with.
// Scoreless runs are skipped and reported with ID 0. The difficulty comes
// from the game when it reports one.
func (s *Store) RecordFinished(g registry.Game, state core.GameState) (int64, error) {
	if state.Score <= 0 {
		return 0, nil
	}

	run := Run{
		GameID:    g.ID(),
		Score:     state.Score,
		Level:     state.Level,
		Length:    state.Length,
		FoodEaten: state.FoodEaten,
	}
	if da, ok := g.(registry.DifficultyAware); ok {
		run.Difficulty = da.Difficulty()
	}

	return s.SaveRun(run)
}
