package slither

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-slither/internal/core"
)

const (
	hudHeight = 2
	minCols   = 24
	minRows   = 10
)

// Viewport maps the world onto the terminal cells below the HUD, inside a
// one-cell border.
type Viewport struct {
	X, Y, W, H     int // Inner play area in cells
	WorldW, WorldH float64
}

// NewViewport computes the play area for a screen of the given size.
func NewViewport(screenW, screenH int, worldW, worldH float64) Viewport {
	return Viewport{
		X:      1,
		Y:      hudHeight + 1,
		W:      max(1, screenW-2),
		H:      max(1, screenH-hudHeight-2),
		WorldW: worldW,
		WorldH: worldH,
	}
}

// ToCell returns the cell a world point falls in, clamped to the play area.
func (v Viewport) ToCell(wx, wy float64) (int, int) {
	cx := int(wx / v.WorldW * float64(v.W))
	cy := int(wy / v.WorldH * float64(v.H))
	return v.X + core.Clamp(cx, 0, v.W-1), v.Y + core.Clamp(cy, 0, v.H-1)
}

// ToWorld returns the world point at the center of a cell.
func (v Viewport) ToWorld(cx, cy int) core.Vec2 {
	return core.Vec2{
		X: (float64(cx-v.X) + 0.5) / float64(v.W) * v.WorldW,
		Y: (float64(cy-v.Y) + 0.5) / float64(v.H) * v.WorldH,
	}
}

// CellToWorld converts a terminal cell to a world point for pointer input.
func (g *Game) CellToWorld(cellX, cellY, screenW, screenH int) core.Vec2 {
	v := NewViewport(screenW, screenH, g.cfg.World.Width, g.cfg.World.Height)
	return g.clampToWorld(v.ToWorld(cellX, cellY))
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	if dst.Width() < minCols || dst.Height() < minRows {
		dst.DrawText(0, 0, "Window too small")
		return
	}

	v := NewViewport(dst.Width(), dst.Height(), snap.WorldW, snap.WorldH)

	renderHUD(dst, &snap)
	dst.DrawBox(v.X-1, v.Y-1, v.W+2, v.H+2, core.ColorGray)

	if snap.Phase != PhaseMenu {
		renderWorld(dst, v, &snap)
	}

	switch snap.Phase {
	case PhaseMenu:
		renderOverlay(dst,
			"S L I T H E R",
			"",
			"Move the pointer to steer",
			"Eat food to grow, avoid walls and blocks",
			"",
			"Click or Enter to start",
			fmt.Sprintf("High score: %d", snap.HighScore),
		)
	case PhasePaused:
		renderOverlay(dst, "Paused", "", "Click or P to continue", "Esc for menu")
	case PhaseGameOver:
		lines := []string{
			"Game Over",
			"",
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("Level: %d  Length: %d", snap.Level, len(snap.Segments)),
			fmt.Sprintf("Food eaten: %d", snap.FoodEaten),
		}
		if snap.NewHighScore {
			lines = append(lines, "NEW HIGH SCORE!")
		} else {
			lines = append(lines, fmt.Sprintf("High score: %d", snap.HighScore))
		}
		lines = append(lines, "", "R to restart, Esc for menu")
		renderOverlay(dst, lines...)
	}
}

// renderHUD draws the top status bar.
func renderHUD(dst *core.Screen, snap *Snapshot) {
	lives := strings.Repeat("♥", max(0, snap.Lives))
	hud := fmt.Sprintf(" Slither  Score: %d  Level: %d  Lives: %s  Length: %d  Speed: %d%%  Best: %d",
		snap.Score, snap.Level, lives, len(snap.Segments), snap.SpeedPercent, snap.HighScore)
	dst.DrawText(0, 0, hud)

	if snap.Boosted && snap.Phase == PhasePlaying {
		tag := fmt.Sprintf(" BOOST %ds ", (snap.PowerUpTimer+59)/60)
		dst.DrawTextColored(dst.Width()-len(tag), 0, tag, core.ColorBrightMagenta)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDefault)
}

func renderWorld(dst *core.Screen, v Viewport, snap *Snapshot) {
	for _, o := range snap.Obstacles {
		x0, y0 := v.ToCell(o.X, o.Y)
		x1, y1 := v.ToCell(o.X+o.W, o.Y+o.H)
		dst.FillArea(x0, y0, max(1, x1-x0), max(1, y1-y0), '▓', core.ColorOrange)
	}

	for _, f := range snap.Food {
		x, y := v.ToCell(f.X, f.Y)
		r, c := foodGlyph(f)
		dst.SetColored(x, y, r, c)
	}

	if snap.Phase == PhasePlaying {
		px, py := v.ToCell(snap.PointerX, snap.PointerY)
		if dst.Get(px, py) == ' ' {
			dst.SetColored(px, py, '+', core.ColorGray)
		}
	}

	if !snap.CreatureVisible {
		return
	}
	// Tail first so the head stays on top
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		s := snap.Segments[i]
		x, y := v.ToCell(s.X, s.Y)
		r, c := segmentGlyph(s, snap.Boosted)
		dst.SetColored(x, y, r, c)
	}
}

func foodGlyph(f FoodView) (rune, core.Color) {
	switch f.Kind {
	case FoodSuper:
		if f.Sparkling {
			return '◆', core.ColorBrightYellow
		}
		return '◆', core.ColorYellow
	case FoodPower:
		if f.Sparkling {
			return '✦', core.ColorBrightMagenta
		}
		return '✦', core.ColorMagenta
	default:
		return '●', core.ColorBrightRed
	}
}

func segmentGlyph(s SegmentView, boosted bool) (rune, core.Color) {
	if s.Index == 0 {
		if boosted {
			return '@', core.ColorBrightCyan
		}
		return '@', core.ColorBrightGreen
	}
	if s.Progress < 0.5 {
		return 'O', core.ColorGreen
	}
	return 'o', core.ColorGreen
}

// renderOverlay draws a centered box with one line of text per row.
func renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := min(maxLen+4, dst.Width())
	boxH := min(len(lines)+2, dst.Height())
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillArea(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)

	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightGreen
		}
		dst.DrawTextCentered(boxY+1+i, l, c)
	}
}
