package slither

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-slither/internal/config"
	"github.com/vovakirdan/tui-slither/internal/core"
)

// FoodKind is the category of a food item.
type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodSuper
	FoodPower
)

func (k FoodKind) String() string {
	switch k {
	case FoodNormal:
		return "normal"
	case FoodSuper:
		return "super"
	case FoodPower:
		return "power"
	default:
		return "unknown"
	}
}

type foodTraits struct {
	size   float64
	points int
	growth int
}

var foodTable = map[FoodKind]foodTraits{
	FoodNormal: {size: 12, points: 10, growth: 1},
	FoodSuper:  {size: 18, points: 50, growth: 3},
	FoodPower:  {size: 18, points: 50, growth: 3},
}

const (
	foodPulseStep  = 0.2
	sparklePeriod  = 20
	sparkleVisible = 10
)

// Food is a collectible item.
type Food struct {
	X, Y   float64
	Kind   FoodKind
	Size   float64
	Points int
	Growth int

	pulse   float64
	sparkle int
}

// NewFood creates a food item of the given kind at (x, y).
func NewFood(x, y float64, kind FoodKind) Food {
	t := foodTable[kind]
	return Food{
		X:      x,
		Y:      y,
		Kind:   kind,
		Size:   t.size,
		Points: t.points,
		Growth: t.growth,
	}
}

// Bounds returns the food's hit box, twice its size and centered on it.
func (f Food) Bounds() core.Rect {
	return core.RectAround(f.X, f.Y, f.Size*2, f.Size*2)
}

// Pulse returns a value in [-1, 1] for size pulsing.
func (f Food) Pulse() float64 {
	return math.Sin(f.pulse)
}

// Sparkling reports whether the sparkle highlight is on this frame.
func (f Food) Sparkling() bool {
	return f.sparkle%sparklePeriod < sparkleVisible
}

func (f *Food) animate() {
	f.pulse += foodPulseStep
	f.sparkle++
}

// Obstacle is a static hazard rectangle.
type Obstacle struct {
	core.Rect
}

// FoodSet holds the active food items. Removal swaps the last item into the
// freed slot, so indices returned by a scan stay valid until the next Remove.
type FoodSet struct {
	items []Food
}

// Add appends a food item.
func (s *FoodSet) Add(f Food) {
	s.items = append(s.items, f)
}

// Remove deletes the item at i and returns it.
func (s *FoodSet) Remove(i int) Food {
	f := s.items[i]
	last := len(s.items) - 1
	s.items[i] = s.items[last]
	s.items = s.items[:last]
	return f
}

// At returns the item at i.
func (s *FoodSet) At(i int) Food {
	return s.items[i]
}

// Len returns the number of items.
func (s *FoodSet) Len() int {
	return len(s.items)
}

// Items returns the backing slice. Callers must not retain it across Remove.
func (s *FoodSet) Items() []Food {
	return s.items
}

// Animate advances the pulse and sparkle phase of every item.
func (s *FoodSet) Animate() {
	for i := range s.items {
		s.items[i].animate()
	}
}

// Level is the set of food and obstacles currently in play.
type Level struct {
	Number    int
	Food      FoodSet
	Obstacles []Obstacle
}

// Spawner places food and obstacles for new levels.
type Spawner struct {
	world     config.WorldConfig
	food      config.FoodConfig
	obstacles config.ObstacleConfig
	rng       *rand.Rand

	// fallbacks counts placements that gave up on constraints
	fallbacks int
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.SlitherConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		world:     cfg.World,
		food:      cfg.Food,
		obstacles: cfg.Obstacles,
		rng:       rng,
	}
}

// FoodCount returns the number of food items on the given level.
func (s *Spawner) FoodCount(level int) int {
	return s.food.BaseCount + level
}

// ObstacleCount returns the number of obstacles on the given level.
func (s *Spawner) ObstacleCount(level int) int {
	return core.Clamp(level-1, 0, s.obstacles.MaxCount)
}

// GenerateLevel builds a fresh level. Obstacles are placed first so food
// can avoid them.
func (s *Spawner) GenerateLevel(level int, head core.Vec2) Level {
	lv := Level{Number: level}

	n := s.ObstacleCount(level)
	lv.Obstacles = make([]Obstacle, 0, n)
	for i := 0; i < n; i++ {
		lv.Obstacles = append(lv.Obstacles, s.placeObstacle())
	}

	for i, count := 0, s.FoodCount(level); i < count; i++ {
		x, y := s.placeFood(head, lv.Obstacles)
		lv.Food.Add(NewFood(x, y, s.rollKind()))
	}

	return lv
}

// Fallbacks returns how many food placements exhausted their retries.
func (s *Spawner) Fallbacks() int {
	return s.fallbacks
}

// rollKind draws the super roll first; the power roll is only drawn when
// the super roll misses.
func (s *Spawner) rollKind() FoodKind {
	if s.rng.Float64() < s.food.SuperChance {
		return FoodSuper
	}
	if s.rng.Float64() < s.food.PowerChance {
		return FoodPower
	}
	return FoodNormal
}

func (s *Spawner) placeFood(head core.Vec2, obstacles []Obstacle) (float64, float64) {
	var x, y float64
	for i, attempts := 0, s.food.PlacementAttempts; i < attempts; i++ {
		x, y = s.randomFoodPos()
		if s.foodPosOK(x, y, head, obstacles) {
			return x, y
		}
	}
	s.fallbacks++
	return s.randomFoodPos()
}

func (s *Spawner) randomFoodPos() (float64, float64) {
	m := int(s.food.SpawnMargin)
	x := s.randRange(m, int(s.world.Width)-m)
	y := s.randRange(m, int(s.world.Height)-m)
	return float64(x), float64(y)
}

func (s *Spawner) foodPosOK(x, y float64, head core.Vec2, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if o.Contains(x, y) {
			return false
		}
	}
	return head.Dist(core.Vec2{X: x, Y: y}) >= s.food.MinHeadDistance
}

func (s *Spawner) placeObstacle() Obstacle {
	o := s.obstacles
	w := s.randRange(o.MinWidth, o.MaxWidth)
	h := s.randRange(o.MinHeight, o.MaxHeight)
	x := s.randRange(o.Margin, int(s.world.Width)-w-o.Margin)
	y := s.randRange(o.Margin, int(s.world.Height)-h-o.Margin)
	return Obstacle{Rect: core.NewRect(float64(x), float64(y), float64(w), float64(h))}
}

// randRange returns an int in [lo, hi]. If hi < lo it returns lo.
func (s *Spawner) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
