package slither

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-slither/internal/config"
	"github.com/vovakirdan/tui-slither/internal/core"
)

func stillCreatureConfig(segments int) config.CreatureConfig {
	cfg := config.DefaultSlitherConfig().Creature
	cfg.InitialSegments = segments
	cfg.HeadWiggle = 0
	cfg.BodyWiggle = 0
	return cfg
}

func TestCreatureReset(t *testing.T) {
	c := NewCreature(config.DefaultSlitherConfig().Creature, core.Vec2{X: 500, Y: 350})

	if c.Len() != 8 {
		t.Fatalf("Len() = %d, expected 8", c.Len())
	}
	for i, s := range c.Segments() {
		if s.Index != i || s.Total != 8 {
			t.Errorf("segment %d: Index=%d Total=%d", i, s.Index, s.Total)
		}
		if s.Y != 350 || s.X != 500-float64(i)*18 {
			t.Errorf("segment %d at (%v, %v)", i, s.X, s.Y)
		}
	}
	if c.Boost() != 1 {
		t.Errorf("Boost() = %v, expected 1", c.Boost())
	}

	c.SetBoost(2)
	c.Grow(4)
	c.Reset()
	if c.Len() != 8 || c.Boost() != 1 {
		t.Errorf("after Reset: Len=%d Boost=%v", c.Len(), c.Boost())
	}
}

func TestSegmentThickness(t *testing.T) {
	tests := []struct {
		index, total int
		want         float64
	}{
		{0, 8, 32},
		{1, 8, 31},
		{7, 8, 18},
		{1, 2, 18},
	}

	for _, tc := range tests {
		s := Segment{Index: tc.index, Total: tc.total}
		if got := s.Thickness(); got != tc.want {
			t.Errorf("Thickness(index=%d, total=%d) = %v, expected %v", tc.index, tc.total, got, tc.want)
		}
		b := s.Bounds()
		if b.W != tc.want || b.H != tc.want {
			t.Errorf("Bounds() size = %vx%v, expected %v", b.W, b.H, tc.want)
		}
	}
}

func TestAdvanceConvergesOnStationaryTarget(t *testing.T) {
	c := NewCreature(stillCreatureConfig(1), core.Vec2{X: 500, Y: 350})
	target := core.Vec2{X: 800, Y: 350}
	lagged := target.X - 18

	prev := c.Head().Pos().Dist(target)
	for frame := uint64(1); frame <= 100; frame++ {
		c.Advance(target.X, target.Y, 0.15, frame)
		head := c.Head()

		d := head.Pos().Dist(target)
		if d >= prev {
			t.Fatalf("frame %d: distance %v did not decrease from %v", frame, d, prev)
		}
		if head.X > lagged {
			t.Fatalf("frame %d: head overshot lagged target: x=%v", frame, head.X)
		}
		prev = d
	}

	if math.Abs(c.Head().X-lagged) > 0.01 {
		t.Errorf("head x = %v, expected to settle near %v", c.Head().X, lagged)
	}
}

func TestAdvanceHeadBeforeTail(t *testing.T) {
	c := NewCreature(stillCreatureConfig(2), core.Vec2{X: 500, Y: 350})

	c.Advance(600, 350, 0.5, 1)

	segs := c.Segments()
	if segs[0].X != 541 {
		t.Errorf("head x = %v, expected 541", segs[0].X)
	}
	// Follower chases the head's updated position: target 541-18 = 523
	if segs[1].X != 502.5 {
		t.Errorf("follower x = %v, expected 502.5", segs[1].X)
	}
}

func TestAdvanceClampsRate(t *testing.T) {
	c := NewCreature(stillCreatureConfig(1), core.Vec2{X: 500, Y: 350})

	c.Advance(600, 350, 5, 1)

	// Rate 1 lands exactly on the lagged target
	if c.Head().X != 582 {
		t.Errorf("head x = %v, expected 582", c.Head().X)
	}
}

func TestWiggleOnlyWhileMoving(t *testing.T) {
	cfg := config.DefaultSlitherConfig().Creature
	cfg.InitialSegments = 1

	idle := NewCreature(cfg, core.Vec2{X: 500, Y: 350})
	idle.Advance(510, 350, 0.15, 1)
	if idle.Moving() {
		t.Error("creature within threshold should not be moving")
	}
	if idle.Head().Y != 350 {
		t.Errorf("idle head drifted sideways: y=%v", idle.Head().Y)
	}

	moving := NewCreature(cfg, core.Vec2{X: 500, Y: 350})
	moving.Advance(800, 350, 0.15, 1)
	if !moving.Moving() {
		t.Error("creature far from target should be moving")
	}
	if moving.Head().Y == 350 {
		t.Error("moving head should wiggle sideways")
	}
}

func TestGrowTelescopesFromTail(t *testing.T) {
	c := NewCreature(config.DefaultSlitherConfig().Creature, core.Vec2{X: 500, Y: 350})
	tail := c.Segments()[c.Len()-1]

	c.Grow(3)

	if c.Len() != 11 {
		t.Fatalf("Len() = %d, expected 11", c.Len())
	}
	for i, s := range c.Segments() {
		if s.Index != i || s.Total != 11 {
			t.Errorf("segment %d: Index=%d Total=%d", i, s.Index, s.Total)
		}
	}
	for _, s := range c.Segments()[8:] {
		if s.X != tail.X || s.Y != tail.Y {
			t.Errorf("new segment at (%v, %v), expected tail (%v, %v)", s.X, s.Y, tail.X, tail.Y)
		}
	}

	c.Grow(0)
	if c.Len() != 11 {
		t.Errorf("Grow(0) changed length to %d", c.Len())
	}
}

func TestSetBoostFloor(t *testing.T) {
	c := NewCreature(config.DefaultSlitherConfig().Creature, core.Vec2{X: 500, Y: 350})
	c.SetBoost(0.5)
	if c.Boost() != 1 {
		t.Errorf("Boost() = %v, expected 1", c.Boost())
	}
}
