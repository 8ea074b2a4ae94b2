package slither

import "math"

// invulnerableBlink is the length in ticks of each on/off blink window.
const invulnerableBlink = 6

// SegmentView is the drawable state of one segment.
type SegmentView struct {
	X, Y      float64
	Angle     float64
	Index     int
	Total     int
	Progress  float64
	Thickness float64
}

// FoodView is the drawable state of one food item.
type FoodView struct {
	X, Y      float64
	Kind      FoodKind
	Size      float64
	Pulse     float64
	Sparkling bool
}

// ObstacleView is an obstacle rectangle.
type ObstacleView struct {
	X, Y, W, H float64
}

// Snapshot is a read-only copy of everything a renderer needs for a frame.
type Snapshot struct {
	Frame  uint64
	Phase  Phase
	WorldW float64
	WorldH float64
	Margin float64

	Segments  []SegmentView
	Food      []FoodView
	Obstacles []ObstacleView

	Score             int
	HighScore         int
	NewHighScore      bool
	Level             int
	Lives             int
	FoodEaten         int
	PowerUpTimer      int
	InvulnerableTimer int
	SpeedPercent      int
	SpeedRatio        float64
	Boosted           bool
	Difficulty        string
	LastHit           Hit

	// CreatureVisible is false during the off half of the invulnerability blink.
	CreatureVisible bool

	PointerX, PointerY float64
}

// Snapshot returns the current presentation state.
func (g *Game) Snapshot() Snapshot {
	segs := g.creature.Segments()
	snap := Snapshot{
		Frame:  g.frame,
		Phase:  g.phase,
		WorldW: g.cfg.World.Width,
		WorldH: g.cfg.World.Height,
		Margin: g.cfg.World.WallMargin,

		Segments:  make([]SegmentView, len(segs)),
		Food:      make([]FoodView, g.level.Food.Len()),
		Obstacles: make([]ObstacleView, len(g.level.Obstacles)),

		Score:             g.stats.Score,
		HighScore:         g.stats.HighScore,
		NewHighScore:      g.stats.NewHighScore,
		Level:             g.stats.Level,
		Lives:             g.stats.Lives,
		FoodEaten:         g.stats.FoodEaten,
		PowerUpTimer:      g.stats.PowerUpTimer,
		InvulnerableTimer: g.stats.InvulnerableTimer,
		SpeedPercent:      g.speed.Percent(g.stats.FoodEaten),
		SpeedRatio:        g.speed.Ratio(g.stats.FoodEaten),
		Boosted:           g.creature.Boost() > 1,
		Difficulty:        g.Difficulty(),
		LastHit:           g.stats.LastHit,

		CreatureVisible: g.stats.InvulnerableTimer == 0 ||
			(g.frame/invulnerableBlink)%2 == 0,

		PointerX: g.pointer.X,
		PointerY: g.pointer.Y,
	}

	for i, s := range segs {
		snap.Segments[i] = SegmentView{
			X:         s.X,
			Y:         s.Y,
			Angle:     s.Angle,
			Index:     s.Index,
			Total:     s.Total,
			Progress:  s.Progress(),
			Thickness: s.Thickness(),
		}
	}
	for i, f := range g.level.Food.Items() {
		snap.Food[i] = FoodView{
			X:         f.X,
			Y:         f.Y,
			Kind:      f.Kind,
			Size:      f.Size,
			Pulse:     f.Pulse(),
			Sparkling: f.Sparkling(),
		}
	}
	for i, o := range g.level.Obstacles {
		snap.Obstacles[i] = ObstacleView{X: o.X, Y: o.Y, W: o.W, H: o.H}
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Positions are quantized to 1/1000 of a world unit.
func (snap *Snapshot) Hash() uint64 {
	q := func(v float64) uint64 {
		return uint64(int64(math.Round(v * 1000))) //#nosec G115 -- hash computation
	}

	h := snap.Frame
	h = h*31 + uint64(snap.Score)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FoodEaten)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUpTimer)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.InvulnerableTimer) //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.Phase))

	for _, s := range snap.Segments {
		h = h*31 + q(s.X)
		h = h*31 + q(s.Y)
	}
	for _, f := range snap.Food {
		h = h*31 + q(f.X)
		h = h*31 + q(f.Y)
		h = h*31 + uint64(f.Kind) //#nosec G115 -- hash computation
	}
	for _, o := range snap.Obstacles {
		h = h*31 + q(o.X)
		h = h*31 + q(o.Y)
		h = h*31 + q(o.W)
		h = h*31 + q(o.H)
	}

	return h
}
