package core

import (
	"math"
	"testing"
)

func TestVec2Dist(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"same point", Vec2{3, 4}, Vec2{3, 4}, 0},
		{"3-4-5", Vec2{0, 0}, Vec2{3, 4}, 5},
		{"negative", Vec2{-1, -1}, Vec2{2, 3}, 5},
		{"horizontal", Vec2{10, 7}, Vec2{2, 7}, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Dist(tc.b); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Dist = %v, want %v", got, tc.want)
			}
			if got := tc.b.Dist(tc.a); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("reverse Dist = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(50, 40, 20, 10)
	want := Rect{X: 40, Y: 35, W: 20, H: 10}
	if r != want {
		t.Fatalf("RectAround = %+v, want %+v", r, want)
	}
	if r.Right() != 60 || r.Bottom() != 45 {
		t.Errorf("edges = (%v, %v), want (60, 45)", r.Right(), r.Bottom())
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(5, 5, 10, 10), true},
		{"left of", NewRect(-20, 0, 10, 10), false},
		{"below", NewRect(0, 15, 10, 10), false},
		{"shared right edge", NewRect(10, 0, 10, 10), false},
		{"shared bottom edge", NewRect(0, 10, 10, 10), false},
		{"contained", NewRect(2, 2, 3, 3), true},
		{"containing", NewRect(-5, -5, 30, 30), true},
		{"fractional overlap", NewRect(9.75, 9.75, 1, 1), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Intersects(tc.other); got != tc.want {
				t.Errorf("Intersects = %v, want %v", got, tc.want)
			}
			if got := tc.other.Intersects(base); got != tc.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 5, 5)
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{14.9, 24.9, true},
		{15, 22, false},
		{12, 25, false},
		{9.9, 22, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{12, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, want float64
	}{
		{0.5, 0.2, 0.95, 0.5},
		{0.1, 0.2, 0.95, 0.2},
		{1.4, 0.2, 0.95, 0.95},
		{-50, 0, 800, 0},
		{900, 0, 800, 800},
	}
	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}
