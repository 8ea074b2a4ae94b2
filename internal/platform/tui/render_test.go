package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-slither/internal/core"
)

func TestScreenRendererKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Score: 10")
	s.SetColored(3, 1, '@', core.ColorBrightGreen)
	s.SetColored(4, 1, 'o', core.ColorGreen)
	s.SetColored(5, 1, 'o', core.ColorGreen)
	s.DrawTextColored(0, 2, "▓▓", core.ColorOrange)

	sr := NewScreenRenderer(lipgloss.NewRenderer(&bytes.Buffer{}))
	out := sr.Render(s)

	if got := ansi.Strip(out); got != s.String() {
		t.Errorf("stripped output =\n%q\nexpected\n%q", got, s.String())
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("output has %d newlines, expected 2", n)
	}
}

func TestScreenRendererNilUsesDefault(t *testing.T) {
	sr := NewScreenRenderer(nil)
	s := core.NewScreen(4, 1)
	s.DrawText(0, 0, "ok")

	if got := ansi.Strip(sr.Render(s)); got != "ok  " {
		t.Errorf("Render() = %q, expected %q", got, "ok  ")
	}
}
