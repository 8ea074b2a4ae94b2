// Package config provides YAML-based game configuration loading and
// difficulty presets for slither.
package config

// SlitherConfig contains all configuration for the Slither game.
// Distances are in world units; durations are in ticks.
type SlitherConfig struct {
	World     WorldConfig     `yaml:"world"`
	Creature  CreatureConfig  `yaml:"creature"`
	Speed     SpeedConfig     `yaml:"speed"`
	Food      FoodConfig      `yaml:"food"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Collision CollisionConfig `yaml:"collision"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	WallMargin float64 `yaml:"wall_margin"` // Head closer than this to an edge hits the wall
}

// CreatureConfig defines the segment chain.
type CreatureConfig struct {
	InitialSegments int     `yaml:"initial_segments"`
	SegmentLength   float64 `yaml:"segment_length"`
	MoveThreshold   float64 `yaml:"move_threshold"` // Below this head-to-pointer distance the creature is idle
	HeadWiggle      float64 `yaml:"head_wiggle"`
	BodyWiggle      float64 `yaml:"body_wiggle"`
	WigglePhaseStep float64 `yaml:"wiggle_phase_step"` // Phase offset per segment index
	WiggleRate      float64 `yaml:"wiggle_rate"`       // Phase advance per tick
}

// SpeedConfig defines the follow-rate progression.
type SpeedConfig struct {
	Base      float64 `yaml:"base"`
	Increment float64 `yaml:"increment"` // Added per food eaten
	Max       float64 `yaml:"max"`
	Boost     float64 `yaml:"boost"` // Multiplier while a power-up is active
}

// FoodConfig defines food placement and category odds.
type FoodConfig struct {
	BaseCount         int     `yaml:"base_count"` // Food per level is base_count + level
	SpawnMargin       float64 `yaml:"spawn_margin"`
	MinHeadDistance   float64 `yaml:"min_head_distance"`
	SuperChance       float64 `yaml:"super_chance"`
	PowerChance       float64 `yaml:"power_chance"`
	PlacementAttempts int     `yaml:"placement_attempts"`
}

// ObstacleConfig defines obstacle generation.
type ObstacleConfig struct {
	MaxCount  int `yaml:"max_count"`
	MinWidth  int `yaml:"min_width"`
	MaxWidth  int `yaml:"max_width"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
	Margin    int `yaml:"margin"`
}

// CollisionConfig defines hit-box sizes.
type CollisionConfig struct {
	FoodHeadBox   float64 `yaml:"food_head_box"`
	HazardHeadBox float64 `yaml:"hazard_head_box"`
	SelfMinLength int     `yaml:"self_min_length"`
	SelfSkip      int     `yaml:"self_skip"` // Segments below this index never collide with the head
}

// GameplayConfig defines lives and timers.
type GameplayConfig struct {
	Lives             int `yaml:"lives"`
	PowerUpTicks      int `yaml:"power_up_ticks"`
	InvulnerableTicks int `yaml:"invulnerable_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value into a preset.
// Empty input selects normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	if s == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}
