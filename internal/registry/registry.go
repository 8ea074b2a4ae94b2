// Package registry maps game IDs to factories. Games register from init();
// frontends create them by ID and probe the optional interfaces below.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-slither/internal/core"
)

// Game is a fixed-tick simulation driven by a frontend. Implementations do
// no I/O of their own beyond the collaborators handed to them.
type Game interface {
	// ID is the registry key and the storage game_id.
	ID() string
	Title() string

	// Reset initializes the game state.
	// Called once before the first Step. Restarting after game over is
	// driven by input and does not go through Reset.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst, which it clears first.
	Render(dst *core.Screen)

	State() core.GameState
}

// ScoreKeeper persists a single best score.
// Implementations decide the storage format; games treat load errors as
// "no high score".
type ScoreKeeper interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// ScoreKeeperAware is implemented by games that keep their own high score.
// The platform calls SetScoreKeeper before Reset.
type ScoreKeeperAware interface {
	SetScoreKeeper(k ScoreKeeper)
}

// DifficultyAware is implemented by games with difficulty presets.
// The platform calls SetDifficulty before Reset.
type DifficultyAware interface {
	SetDifficulty(preset string)
	Difficulty() string
}

// PointerMapper is implemented by games whose pointer lives in world
// coordinates. It converts a terminal cell to the world point drawn there.
type PointerMapper interface {
	CellToWorld(cellX, cellY, screenW, screenH int) core.Vec2
}

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a factory under id. It panics on an empty id, a nil factory
// or a duplicate id.
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: empty id or nil factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), factory: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
