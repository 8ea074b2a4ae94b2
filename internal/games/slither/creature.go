package slither

import (
	"math"

	"github.com/vovakirdan/tui-slither/internal/config"
	"github.com/vovakirdan/tui-slither/internal/core"
)

const (
	headThickness     = 32
	bodyThicknessBase = 26
	bodyThicknessMin  = 8
	bodyTaper         = 0.6
)

// Segment is one link of the creature's body. Index 0 is the head.
type Segment struct {
	X, Y   float64
	Angle  float64 // Bearing towards the segment's target, radians
	Length float64
	Index  int
	Total  int // Creature length when indices were last recomputed
}

// Progress returns how far along the body the segment sits, 0 at the head
// and 1 at the tail.
func (s Segment) Progress() float64 {
	return float64(s.Index) / float64(max(1, s.Total-1))
}

// Thickness returns the segment's width in world units. Body segments taper
// towards the tail.
func (s Segment) Thickness() float64 {
	if s.Index == 0 {
		return headThickness
	}
	return float64(int(bodyThicknessBase*(1-s.Progress()*bodyTaper) + bodyThicknessMin))
}

// Bounds returns the segment's square hit box.
func (s Segment) Bounds() core.Rect {
	t := s.Thickness()
	return core.RectAround(s.X, s.Y, t, t)
}

// Pos returns the segment position.
func (s Segment) Pos() core.Vec2 {
	return core.Vec2{X: s.X, Y: s.Y}
}

// follow moves the segment towards a point trailing (tx, ty) by one link
// length, displaced sideways by wiggle. rate is the damping factor in [0, 1].
func (s *Segment) follow(tx, ty, wiggle, rate float64) {
	s.Angle = math.Atan2(ty-s.Y, tx-s.X)

	sideX := math.Cos(s.Angle+math.Pi/2) * wiggle
	sideY := math.Sin(s.Angle+math.Pi/2) * wiggle

	targetX := tx - math.Cos(s.Angle)*s.Length + sideX
	targetY := ty - math.Sin(s.Angle)*s.Length + sideY

	s.X += (targetX - s.X) * rate
	s.Y += (targetY - s.Y) * rate
}

// Creature is the player-controlled segment chain.
type Creature struct {
	cfg      config.CreatureConfig
	home     core.Vec2
	segments []Segment
	boost    float64
	moving   bool
}

// NewCreature creates a creature coiled at home.
func NewCreature(cfg config.CreatureConfig, home core.Vec2) *Creature {
	c := &Creature{cfg: cfg, home: home}
	c.Reset()
	return c
}

// Reset puts the creature back at its starting position and length and
// clears any speed boost. The body is laid out in a straight line trailing
// to the left of the head, one link length apart.
func (c *Creature) Reset() {
	n := max(1, c.cfg.InitialSegments)
	c.segments = make([]Segment, n)
	for i := range c.segments {
		c.segments[i] = Segment{
			X:      c.home.X - float64(i)*c.cfg.SegmentLength,
			Y:      c.home.Y,
			Length: c.cfg.SegmentLength,
		}
	}
	c.reindex()
	c.boost = 1
	c.moving = false
}

// Advance moves every segment one tick towards the pursuit point (tx, ty).
// The head chases the pointer; each following segment chases the already
// updated position of the one ahead of it.
func (c *Creature) Advance(tx, ty, speed float64, frame uint64) {
	rate := core.ClampF(speed, 0, 1)

	head := &c.segments[0]
	c.moving = math.Hypot(tx-head.X, ty-head.Y) > c.cfg.MoveThreshold

	t := float64(frame) * c.cfg.WiggleRate
	head.follow(tx, ty, c.wiggle(0, t, rate), rate)

	for i := 1; i < len(c.segments); i++ {
		lead := c.segments[i-1]
		c.segments[i].follow(lead.X, lead.Y, c.wiggle(i, t, rate), rate)
	}
}

// wiggle returns the lateral displacement for segment i at phase time t.
func (c *Creature) wiggle(i int, t, rate float64) float64 {
	if !c.moving {
		return 0
	}
	amp := c.cfg.BodyWiggle
	if i == 0 {
		amp = c.cfg.HeadWiggle
	}
	return math.Sin(t+float64(i)*c.cfg.WigglePhaseStep) * amp * rate
}

// Grow appends n segments stacked on the current tail. They unfold over the
// following ticks as the chain pulls them along.
func (c *Creature) Grow(n int) {
	if n <= 0 {
		return
	}
	tail := c.segments[len(c.segments)-1]
	for i := 0; i < n; i++ {
		c.segments = append(c.segments, Segment{
			X:      tail.X,
			Y:      tail.Y,
			Angle:  tail.Angle,
			Length: c.cfg.SegmentLength,
		})
	}
	c.reindex()
}

// reindex recomputes Index and Total for every segment.
func (c *Creature) reindex() {
	total := len(c.segments)
	for i := range c.segments {
		c.segments[i].Index = i
		c.segments[i].Total = total
	}
}

// Head returns the head segment.
func (c *Creature) Head() Segment {
	return c.segments[0]
}

// Segments returns the body, head first. Callers must not modify it.
func (c *Creature) Segments() []Segment {
	return c.segments
}

// Len returns the number of segments.
func (c *Creature) Len() int {
	return len(c.segments)
}

// Moving reports whether the head was further than the idle threshold from
// its target on the last Advance.
func (c *Creature) Moving() bool {
	return c.moving
}

// Boost returns the active speed multiplier.
func (c *Creature) Boost() float64 {
	return c.boost
}

// SetBoost sets the speed multiplier. Values below 1 are treated as 1.
func (c *Creature) SetBoost(b float64) {
	c.boost = math.Max(1, b)
}
