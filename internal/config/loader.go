package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSlither loads Slither configuration.
// Search order: customPath -> ~/.slither/configs/slither.yaml -> ./configs/slither.yaml -> embedded default
// Files only need to set the keys they change; everything else keeps its default.
func LoadSlither(customPath string) (SlitherConfig, error) {
	cfg := DefaultSlitherConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("slither.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "slither.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSlitherYAML, &cfg); err != nil {
		return DefaultSlitherConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid
// files are skipped so the next search location is used.
func tryLoad(path string) (SlitherConfig, bool) {
	cfg := DefaultSlitherConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slither", "configs", filename)
}

// Validate reports every value that would make the game unplayable.
func (c SlitherConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world: size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.World.WallMargin >= 0, "world: wall_margin must not be negative")
	check(c.Creature.InitialSegments >= 1, "creature: initial_segments must be at least 1")
	check(c.Creature.SegmentLength > 0, "creature: segment_length must be positive")
	check(c.Speed.Base > 0 && c.Speed.Base <= 1, "speed: base must be in (0, 1], got %v", c.Speed.Base)
	check(c.Speed.Max >= c.Speed.Base && c.Speed.Max <= 1, "speed: max must be in [base, 1], got %v", c.Speed.Max)
	check(c.Speed.Increment >= 0, "speed: increment must not be negative")
	check(c.Speed.Boost >= 1, "speed: boost must be at least 1")
	check(c.Food.BaseCount >= 0, "food: base_count must not be negative")
	check(c.Food.PlacementAttempts >= 1, "food: placement_attempts must be at least 1")
	check(2*c.Food.SpawnMargin < c.World.Width && 2*c.Food.SpawnMargin < c.World.Height,
		"food: spawn_margin %v leaves no room in the world", c.Food.SpawnMargin)
	check(inUnit(c.Food.SuperChance) && inUnit(c.Food.PowerChance), "food: chances must be in [0, 1]")
	check(c.Obstacles.MaxCount >= 0, "obstacles: max_count must not be negative")
	check(c.Obstacles.MinWidth > 0 && c.Obstacles.MinWidth <= c.Obstacles.MaxWidth, "obstacles: need 0 < min_width <= max_width")
	check(c.Obstacles.MinHeight > 0 && c.Obstacles.MinHeight <= c.Obstacles.MaxHeight, "obstacles: need 0 < min_height <= max_height")
	check(float64(c.Obstacles.MaxWidth+2*c.Obstacles.Margin) <= c.World.Width &&
		float64(c.Obstacles.MaxHeight+2*c.Obstacles.Margin) <= c.World.Height,
		"obstacles: largest obstacle plus margins does not fit in the world")
	check(c.Collision.FoodHeadBox > 0 && c.Collision.HazardHeadBox > 0, "collision: head boxes must be positive")
	check(c.Collision.SelfSkip >= 1, "collision: self_skip must be at least 1")
	check(c.Gameplay.Lives >= 1, "gameplay: lives must be at least 1")
	check(c.Gameplay.PowerUpTicks >= 0 && c.Gameplay.InvulnerableTicks >= 0, "gameplay: timers must not be negative")

	return errors.Join(errs...)
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}

// ApplySlitherPreset modifies the config based on a difficulty preset.
func ApplySlitherPreset(cfg *SlitherConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Speed.Max = 0.6
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Speed.Base = 0.2
		cfg.Speed.Increment = 0.03
	case DifficultyFixed:
		// No progression: speed stays at base regardless of food eaten
		cfg.Speed.Increment = 0
	}
	if cfg.Speed.Max < cfg.Speed.Base {
		cfg.Speed.Max = cfg.Speed.Base
	}
}
