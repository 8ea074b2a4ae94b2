package slither

import (
	"github.com/vovakirdan/tui-slither/internal/config"
	"github.com/vovakirdan/tui-slither/internal/core"
)

// Hit identifies what the head ran into.
type Hit int

const (
	HitNone Hit = iota
	HitWall
	HitObstacle
	HitSelf
)

func (h Hit) String() string {
	switch h {
	case HitNone:
		return "none"
	case HitWall:
		return "wall"
	case HitObstacle:
		return "obstacle"
	case HitSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Detector runs the per-frame bounding box tests. It holds only the
// configured box sizes and is safe to share.
type Detector struct {
	world     config.WorldConfig
	collision config.CollisionConfig
}

// NewDetector creates a detector from config.
func NewDetector(world config.WorldConfig, collision config.CollisionConfig) Detector {
	return Detector{world: world, collision: collision}
}

func (d Detector) foodBox(head Segment) core.Rect {
	return core.RectAround(head.X, head.Y, d.collision.FoodHeadBox, d.collision.FoodHeadBox)
}

func (d Detector) hazardBox(head Segment) core.Rect {
	return core.RectAround(head.X, head.Y, d.collision.HazardHeadBox, d.collision.HazardHeadBox)
}

// Food returns the index of the first food item the head touches, or -1.
func (d Detector) Food(head Segment, food []Food) int {
	box := d.foodBox(head)
	for i, f := range food {
		if box.Intersects(f.Bounds()) {
			return i
		}
	}
	return -1
}

// Obstacle reports whether the head overlaps any obstacle.
func (d Detector) Obstacle(head Segment, obstacles []Obstacle) bool {
	box := d.hazardBox(head)
	for _, o := range obstacles {
		if box.Intersects(o.Rect) {
			return true
		}
	}
	return false
}

// Wall reports whether the head center is inside the wall margin.
func (d Detector) Wall(head Segment) bool {
	m := d.world.WallMargin
	return head.X < m || head.X > d.world.Width-m ||
		head.Y < m || head.Y > d.world.Height-m
}

// Self reports whether the head overlaps its own body. The segments right
// behind the head are exempt, and short creatures never collide with
// themselves.
func (d Detector) Self(segments []Segment) bool {
	if len(segments) < d.collision.SelfMinLength {
		return false
	}
	box := d.hazardBox(segments[0])
	for i := max(1, d.collision.SelfSkip); i < len(segments); i++ {
		if box.Intersects(segments[i].Bounds()) {
			return true
		}
	}
	return false
}

// Hazard runs the wall, obstacle and self tests in that order and returns
// the first hit.
func (d Detector) Hazard(c *Creature, obstacles []Obstacle) Hit {
	head := c.Head()
	switch {
	case d.Wall(head):
		return HitWall
	case d.Obstacle(head, obstacles):
		return HitObstacle
	case d.Self(c.Segments()):
		return HitSelf
	default:
		return HitNone
	}
}
