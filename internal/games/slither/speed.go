package slither

import (
	"math"

	"github.com/vovakirdan/tui-slither/internal/config"
	"github.com/vovakirdan/tui-slither/internal/core"
)

// SpeedModel derives the creature's follow rate from how much it has eaten.
type SpeedModel struct {
	cfg config.SpeedConfig
}

// NewSpeedModel creates a speed model from config.
func NewSpeedModel(cfg config.SpeedConfig) SpeedModel {
	return SpeedModel{cfg: cfg}
}

// Current returns the unboosted speed after foodEaten items, clamped to
// [base, max].
func (m SpeedModel) Current(foodEaten int) float64 {
	s := m.cfg.Base + float64(max(0, foodEaten))*m.cfg.Increment
	return core.ClampF(s, m.cfg.Base, m.cfg.Max)
}

// Follow returns the rate passed to Creature.Advance: the current speed
// multiplied by boost, capped at 1 so a segment never overshoots its target.
func (m SpeedModel) Follow(foodEaten int, boost float64) float64 {
	return math.Min(m.Current(foodEaten)*math.Max(1, boost), 1)
}

// Ratio returns the position of the current speed between base and max,
// for speed meters. It is 0 when base == max.
func (m SpeedModel) Ratio(foodEaten int) float64 {
	span := m.cfg.Max - m.cfg.Base
	if span <= 0 {
		return 0
	}
	return (m.Current(foodEaten) - m.cfg.Base) / span
}

// Percent returns the current speed as a whole percentage of max.
func (m SpeedModel) Percent(foodEaten int) int {
	if m.cfg.Max <= 0 {
		return 0
	}
	return int(m.Current(foodEaten) / m.cfg.Max * 100)
}
