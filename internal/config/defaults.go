package config

import (
	_ "embed"
)

//go:embed defaults/slither.yaml
var defaultSlitherYAML []byte

// DefaultSlitherConfig returns the default Slither configuration.
func DefaultSlitherConfig() SlitherConfig {
	return SlitherConfig{
		World: WorldConfig{
			Width:      1000,
			Height:     700,
			WallMargin: 25,
		},
		Creature: CreatureConfig{
			InitialSegments: 8,
			SegmentLength:   18,
			MoveThreshold:   15,
			HeadWiggle:      5,
			BodyWiggle:      12,
			WigglePhaseStep: 0.4,
			WiggleRate:      1.0 / 3.0, // 0.02 rad per ms at 60fps
		},
		Speed: SpeedConfig{
			Base:      0.15,
			Increment: 0.02,
			Max:       0.8,
			Boost:     2.0,
		},
		Food: FoodConfig{
			BaseCount:         6,
			SpawnMargin:       50,
			MinHeadDistance:   120,
			SuperChance:       0.18,
			PowerChance:       0.08,
			PlacementAttempts: 1000,
		},
		Obstacles: ObstacleConfig{
			MaxCount:  10,
			MinWidth:  70,
			MaxWidth:  140,
			MinHeight: 40,
			MaxHeight: 90,
			Margin:    60,
		},
		Collision: CollisionConfig{
			FoodHeadBox:   44,
			HazardHeadBox: 36,
			SelfMinLength: 6,
			SelfSkip:      5,
		},
		Gameplay: GameplayConfig{
			Lives:             3,
			PowerUpTicks:      300, // 5 seconds at 60fps
			InvulnerableTicks: 180, // 3 seconds at 60fps
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "slither":
		return defaultSlitherYAML
	default:
		return nil
	}
}
