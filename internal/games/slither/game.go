// Package slither implements a pointer-chasing serpent game.
// The creature is a chain of segments that trails the pointer with damped,
// wiggling motion. Eating food grows it and speeds it up; walls, obstacles
// and its own body cost a life.
package slither

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slither/internal/config"
	"github.com/vovakirdan/tui-slither/internal/core"
	"github.com/vovakirdan/tui-slither/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "slither"

// Phase is the top-level game state.
type Phase string

const (
	PhaseMenu     Phase = "menu"
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
)

// Stats is the per-session scoreboard and timer block.
type Stats struct {
	Score             int
	Level             int
	FoodEaten         int
	Lives             int
	HighScore         int
	PowerUpTimer      int
	InvulnerableTimer int
	NewHighScore      bool
	LastHit           Hit
}

// Defaults applied to every new Game; set from the CLI before creation.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the default difficulty for new games.
// Unknown presets are ignored.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok {
		difficultyPreset = p
	}
}

// SetLogger sets the logger used by all games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game is the slither coordinator. It owns the creature, the level and the
// stats, and mutates them only inside Step.
type Game struct {
	cfg      config.SlitherConfig
	override *config.SlitherConfig
	preset   config.DifficultyPreset

	rng     *rand.Rand
	frame   uint64
	phase   Phase
	stats   Stats
	pointer core.Vec2
	// sessionActive is false once a game ends, until a new one starts
	sessionActive bool

	creature *Creature
	speed    SpeedModel
	spawner  *Spawner
	detector Detector
	level    Level

	keeper registry.ScoreKeeper
	log    *log.Logger
}

// New creates a game that loads its config from the configured path.
func New() *Game {
	return &Game{preset: difficultyPreset}
}

// NewWithConfig creates a game with an explicit config. The difficulty
// preset is not applied on top of it.
func NewWithConfig(cfg config.SlitherConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Slither"
}

// SetScoreKeeper sets the high score collaborator. Must be called before Reset.
func (g *Game) SetScoreKeeper(k registry.ScoreKeeper) {
	g.keeper = k
}

// SetDifficulty selects the preset applied on the next Reset.
func (g *Game) SetDifficulty(preset string) {
	if p, ok := config.ParsePreset(preset); ok {
		g.preset = p
	}
}

// Difficulty returns the active preset name.
func (g *Game) Difficulty() string {
	if g.override != nil {
		return "custom"
	}
	if g.preset == "" {
		return string(config.DifficultyNormal)
	}
	return string(g.preset)
}

// Config returns the active configuration.
func (g *Game) Config() config.SlitherConfig {
	return g.cfg
}

// Reset loads config, seeds the RNG, reads the high score and shows the menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.log = logger.With("game", GameID)
	g.cfg = g.loadConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.frame = 0

	home := core.Vec2{X: g.cfg.World.Width / 2, Y: g.cfg.World.Height / 2}
	g.creature = NewCreature(g.cfg.Creature, home)
	g.speed = NewSpeedModel(g.cfg.Speed)
	g.spawner = NewSpawner(g.cfg, g.rng)
	g.detector = NewDetector(g.cfg.World, g.cfg.Collision)

	g.stats = Stats{HighScore: g.loadHighScore()}
	g.newSession()
	g.phase = PhaseMenu
}

func (g *Game) loadConfig() config.SlitherConfig {
	if g.override != nil {
		return *g.override
	}
	cfg, err := config.LoadSlither(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultSlitherConfig()
	}
	if g.preset != "" {
		config.ApplySlitherPreset(&cfg, g.preset)
	}
	return cfg
}

func (g *Game) loadHighScore() int {
	if g.keeper == nil {
		return 0
	}
	hs, err := g.keeper.LoadHighScore()
	if err != nil {
		g.log.Warn("high score unavailable", "err", err)
		return 0
	}
	return max(0, hs)
}

// newSession reinitializes stats, creature and level in place. The high
// score carries over.
func (g *Game) newSession() {
	g.stats = Stats{
		Level:     1,
		Lives:     g.cfg.Gameplay.Lives,
		HighScore: g.stats.HighScore,
	}
	g.creature.Reset()
	g.pointer = g.creature.Head().Pos()
	g.level = g.spawner.GenerateLevel(1, g.creature.Head().Pos())
	g.sessionActive = true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	if in.HasPointer {
		g.pointer = g.clampToWorld(in.Pointer)
	}

	g.handleInput(in)

	finished := false
	if g.phase == PhasePlaying {
		follow := g.speed.Follow(g.stats.FoodEaten, g.creature.Boost())
		g.creature.Advance(g.pointer.X, g.pointer.Y, follow, g.frame)
		finished = g.update()
	}

	return core.StepResult{State: g.State(), Finished: finished}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart) && g.phase == PhaseGameOver:
		g.newSession()
		g.phase = PhasePlaying
	case in.Has(core.ActionBack):
		if g.phase == PhasePlaying {
			g.phase = PhasePaused
		} else {
			g.phase = PhaseMenu
		}
	case in.Has(core.ActionPause):
		switch g.phase {
		case PhasePlaying:
			g.phase = PhasePaused
		case PhasePaused:
			g.phase = PhasePlaying
		}
	case in.Has(core.ActionPointerPress):
		switch g.phase {
		case PhaseMenu:
			if !g.sessionActive {
				g.newSession()
			}
			g.phase = PhasePlaying
		case PhasePaused:
			g.phase = PhasePlaying
		}
	}
}

// update runs the playing-phase rules for one tick and reports whether the
// game ended on it.
func (g *Game) update() bool {
	s := &g.stats

	if s.PowerUpTimer > 0 {
		s.PowerUpTimer--
		if s.PowerUpTimer == 0 {
			g.creature.SetBoost(1)
		}
	}
	if s.InvulnerableTimer > 0 {
		s.InvulnerableTimer--
	}

	g.level.Food.Animate()

	if i := g.detector.Food(g.creature.Head(), g.level.Food.Items()); i >= 0 {
		g.consume(i)
	}

	if s.InvulnerableTimer == 0 {
		if hit := g.detector.Hazard(g.creature, g.level.Obstacles); hit != HitNone {
			return g.loseLife(hit)
		}
	}
	return false
}

func (g *Game) consume(i int) {
	s := &g.stats
	f := g.level.Food.Remove(i)

	s.Score += f.Points
	s.FoodEaten++
	if f.Kind == FoodPower {
		s.PowerUpTimer = g.cfg.Gameplay.PowerUpTicks
		g.creature.SetBoost(g.cfg.Speed.Boost)
	}
	g.creature.Grow(f.Growth)

	if g.level.Food.Len() == 0 {
		s.Level++
		s.InvulnerableTimer = g.cfg.Gameplay.InvulnerableTicks
		g.level = g.spawner.GenerateLevel(s.Level, g.creature.Head().Pos())
		g.log.Debug("level up", "level", s.Level, "score", s.Score)
	}
}

func (g *Game) loseLife(hit Hit) bool {
	s := &g.stats
	s.Lives--
	s.LastHit = hit
	g.log.Debug("life lost", "hit", hit, "lives", s.Lives)

	if s.Lives <= 0 {
		g.phase = PhaseGameOver
		g.sessionActive = false
		if s.Score > s.HighScore {
			s.HighScore = s.Score
			s.NewHighScore = true
			g.saveHighScore(s.Score)
		}
		g.log.Info("game over", "score", s.Score, "level", s.Level, "length", g.creature.Len())
		return true
	}

	g.creature.Reset()
	s.InvulnerableTimer = g.cfg.Gameplay.InvulnerableTicks
	return false
}

func (g *Game) saveHighScore(score int) {
	if g.keeper == nil {
		return
	}
	if err := g.keeper.SaveHighScore(score); err != nil {
		g.log.Warn("failed to save high score", "score", score, "err", err)
	}
}

// clampToWorld clamps out-of-window pointer coordinates into the world.
func (g *Game) clampToWorld(p core.Vec2) core.Vec2 {
	return core.Vec2{
		X: core.ClampF(p.X, 0, g.cfg.World.Width),
		Y: core.ClampF(p.Y, 0, g.cfg.World.Height),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.stats.Score,
		Level:     g.stats.Level,
		Length:    g.creature.Len(),
		FoodEaten: g.stats.FoodEaten,
		GameOver:  g.phase == PhaseGameOver,
		Paused:    g.phase == PhasePaused,
		InMenu:    g.phase == PhaseMenu,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Stats returns a copy of the session stats.
func (g *Game) Stats() Stats {
	return g.stats
}

// Frame returns the number of ticks since Reset.
func (g *Game) Frame() uint64 {
	return g.frame
}

// CurrentSpeed returns the unboosted speed for the session so far.
func (g *Game) CurrentSpeed() float64 {
	return g.speed.Current(g.stats.FoodEaten)
}
