package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-slither/internal/registry"
)

// HighScore returns the stored best score for the given game.
// Returns 0 if none has been stored.
func (s *Store) HighScore(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM high_scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	return score, nil
}

// SetHighScore stores score as the best for the game unless a higher one
// is already stored.
func (s *Store) SetHighScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (game_id, score) VALUES (?, ?)
		 ON CONFLICT(game_id) DO UPDATE
		 SET score = excluded.score, updated_at = CURRENT_TIMESTAMP
		 WHERE excluded.score > high_scores.score`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// Keeper adapts a Store to the single-record high score interface games use.
type Keeper struct {
	store  *Store
	gameID string
}

// Keeper returns a high score keeper for one game.
func (s *Store) Keeper(gameID string) *Keeper {
	return &Keeper{store: s, gameID: gameID}
}

// LoadHighScore implements registry.ScoreKeeper.
func (k *Keeper) LoadHighScore() (int, error) {
	return k.store.HighScore(k.gameID)
}

// SaveHighScore implements registry.ScoreKeeper.
func (k *Keeper) SaveHighScore(score int) error {
	return k.store.SetHighScore(k.gameID, score)
}

// Ensure Keeper implements ScoreKeeper
var _ registry.ScoreKeeper = (*Keeper)(nil)
