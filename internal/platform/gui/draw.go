package gui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-slither/internal/core"
	"github.com/vovakirdan/tui-slither/internal/games/slither"
)

// debugGlyphW and debugLineH are the DebugPrint font metrics in pixels.
const (
	debugGlyphW = 6
	debugLineH  = 16
)

var (
	backgroundColor = color.RGBA{0x10, 0x14, 0x18, 0xff}
	hudColor        = color.RGBA{0x1c, 0x22, 0x28, 0xff}
	wallColor       = color.RGBA{0x5a, 0x1e, 0x1e, 0xff}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, 0xff}
}

func foodColor(f slither.FoodView) core.Color {
	switch f.Kind {
	case slither.FoodSuper:
		if f.Sparkling {
			return core.ColorBrightYellow
		}
		return core.ColorYellow
	case slither.FoodPower:
		if f.Sparkling {
			return core.ColorBrightMagenta
		}
		return core.ColorMagenta
	default:
		return core.ColorBrightRed
	}
}

func segmentColor(s slither.SegmentView, boosted bool) core.Color {
	switch {
	case s.Index == 0 && boosted:
		return core.ColorBrightCyan
	case s.Index == 0:
		return core.ColorBrightGreen
	case s.Progress < 0.5:
		return core.ColorGreen
	default:
		return core.ColorCyan
	}
}

// foodRadius is the drawn radius; the pulse breathes it by up to 2 pixels.
func foodRadius(f slither.FoodView) float32 {
	return float32(f.Size + 2*math.Sin(f.Pulse))
}

func drawFrame(screen *ebiten.Image, snap *slither.Snapshot) {
	screen.Fill(backgroundColor)

	if snap.Phase != slither.PhaseMenu {
		drawWorld(screen, snap)
	}
	drawHUD(screen, snap)

	if lines := overlayLines(snap); len(lines) > 0 {
		drawOverlay(screen, lines)
	}
}

func drawWorld(screen *ebiten.Image, snap *slither.Snapshot) {
	oy := float32(hudHeight)
	w, h, m := float32(snap.WorldW), float32(snap.WorldH), float32(snap.Margin)

	// Wall band
	vector.DrawFilledRect(screen, 0, oy, w, m, wallColor, false)
	vector.DrawFilledRect(screen, 0, oy+h-m, w, m, wallColor, false)
	vector.DrawFilledRect(screen, 0, oy, m, h, wallColor, false)
	vector.DrawFilledRect(screen, w-m, oy, m, h, wallColor, false)

	for _, o := range snap.Obstacles {
		vector.DrawFilledRect(screen, float32(o.X), oy+float32(o.Y), float32(o.W), float32(o.H), rgba(core.ColorOrange), false)
	}

	for _, f := range snap.Food {
		vector.DrawFilledCircle(screen, float32(f.X), oy+float32(f.Y), foodRadius(f), rgba(foodColor(f)), true)
	}

	if snap.Phase == slither.PhasePlaying {
		vector.StrokeCircle(screen, float32(snap.PointerX), oy+float32(snap.PointerY), 6, 1, rgba(core.ColorGray), true)
	}

	if !snap.CreatureVisible {
		return
	}
	// Tail first so the head stays on top
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		s := snap.Segments[i]
		vector.DrawFilledCircle(screen, float32(s.X), oy+float32(s.Y), float32(s.Thickness/2), rgba(segmentColor(s, snap.Boosted)), true)
	}
}

func drawHUD(screen *ebiten.Image, snap *slither.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, float32(snap.WorldW), hudHeight, hudColor, false)
	ebitenutil.DebugPrintAt(screen, hudText(snap), 6, 4)

	if snap.Phase == slither.PhasePlaying {
		// Speed meter on the right edge of the bar
		const meterW, meterH = 100, 8
		x := float32(snap.WorldW) - meterW - 8
		vector.StrokeRect(screen, x, 8, meterW, meterH, 1, rgba(core.ColorGray), false)
		vector.DrawFilledRect(screen, x, 8, float32(snap.SpeedRatio)*meterW, meterH, rgba(core.ColorBrightGreen), false)
	}
}

func hudText(snap *slither.Snapshot) string {
	txt := fmt.Sprintf("Score %d  Level %d  Lives %d  Length %d  Food left %d  Speed %d%%  Best %d",
		snap.Score, snap.Level, snap.Lives, len(snap.Segments), len(snap.Food), snap.SpeedPercent, snap.HighScore)
	if snap.Boosted {
		txt += fmt.Sprintf("  BOOST %ds", (snap.PowerUpTimer+59)/60)
	}
	return txt
}

// overlayLines returns the centered text for the menu, pause and game over
// screens, or nil while playing.
func overlayLines(snap *slither.Snapshot) []string {
	switch snap.Phase {
	case slither.PhaseMenu:
		return []string{
			"S L I T H E R",
			"",
			"Move the mouse to steer",
			"Eat food to grow, avoid walls and blocks",
			"Gold food: +50 and 3 segments",
			"Purple food: speed boost",
			"",
			"Click to start",
			fmt.Sprintf("High score: %d", snap.HighScore),
		}
	case slither.PhasePaused:
		return []string{"Paused", "", "Click or P to continue", "Esc for menu"}
	case slither.PhaseGameOver:
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
		return append(lines, "", "R to restart, Esc for menu, Q to quit")
	}
	return nil
}

func drawOverlay(screen *ebiten.Image, lines []string) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	widest := 0
	for _, l := range lines {
		widest = max(widest, len(l))
	}
	boxW := widest*debugGlyphW + 40
	boxH := len(lines)*debugLineH + 24
	boxX := (sw - boxW) / 2
	boxY := (sh - boxH) / 2

	vector.DrawFilledRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), overlayColor, false)
	vector.StrokeRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), 1, rgba(core.ColorBrightWhite), false)

	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		x := sw/2 - len(l)*debugGlyphW/2
		ebitenutil.DebugPrintAt(screen, l, x, boxY+12+i*debugLineH)
	}
}
