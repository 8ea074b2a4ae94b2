package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		wantW      int
		wantH      int
		wantString string
	}{
		{"normal", 3, 2, 3, 2, "   \n   "},
		{"negative clamps to empty", -4, -1, 0, 0, ""},
		{"zero height", 5, 0, 5, 0, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(tc.w, tc.h)
			if s.Width() != tc.wantW || s.Height() != tc.wantH {
				t.Fatalf("size = %dx%d, want %dx%d", s.Width(), s.Height(), tc.wantW, tc.wantH)
			}
			if got := s.String(); got != tc.wantString {
				t.Errorf("String() = %q, want %q", got, tc.wantString)
			}
		})
	}
}

func TestScreenSetColoredClips(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColored(1, 2, '@', ColorBrightGreen)

	// Out of bounds writes are dropped
	s.SetColored(-1, 0, 'x', ColorRed)
	s.SetColored(4, 0, 'x', ColorRed)
	s.SetColored(0, 3, 'x', ColorRed)

	if got := s.GetCell(1, 2); got != (Cell{Rune: '@', Color: ColorBrightGreen}) {
		t.Errorf("GetCell(1, 2) = %+v", got)
	}
	if got := s.Get(9, 9); got != ' ' {
		t.Errorf("Get out of bounds = %q, want space", got)
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Errorf("out-of-bounds write leaked into buffer:\n%s", s.String())
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	if got := s.String(); got != "ab\nef\n  " {
		t.Errorf("after shrink width = %q", got)
	}

	s.Resize(3, 1)
	if got := s.String(); got != "ab " {
		t.Errorf("after shrink height = %q", got)
	}

	s.Resize(-1, 2)
	if s.Width() != 0 || s.Height() != 2 {
		t.Errorf("negative width resize = %dx%d", s.Width(), s.Height())
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 1)
	s.SetColored(0, 0, 'o', ColorGreen)
	s.Clear()

	if got := s.GetCell(0, 0); got != blankCell {
		t.Errorf("cell after Clear = %+v, want blank", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		want string
	}{
		{"fits", 1, "hi", " hi  "},
		{"clipped right", 3, "score", "   sc"},
		{"clipped left", -2, "level", "vel  "},
		{"multibyte", 0, "♥♥♥", "♥♥♥  "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(5, 1)
			s.DrawText(tc.x, 0, tc.text)
			if got := s.Row(0); got != tc.want {
				t.Errorf("Row(0) = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(9, 1)
	s.DrawTextCentered(0, "Ready", ColorBrightGreen)

	if got := s.Row(0); got != "  Ready  " {
		t.Errorf("Row(0) = %q", got)
	}
	if c := s.GetCell(2, 0).Color; c != ColorBrightGreen {
		t.Errorf("color = %v, want bright green", c)
	}
}

func TestScreenFillArea(t *testing.T) {
	s := NewScreen(5, 3)
	s.FillArea(3, 1, 4, 4, '▓', ColorOrange)

	want := "     \n   ▓▓\n   ▓▓"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if c := s.GetCell(4, 2).Color; c != ColorOrange {
		t.Errorf("fill color = %v, want orange", c)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(0, 0, 4, 3, ColorGray)

	want := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}

	// Too small to draw
	s.Clear()
	s.DrawBox(0, 0, 1, 3, ColorGray)
	if got := s.Row(0); got != "    " {
		t.Errorf("1-wide box drew %q", got)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawHLine(1, 1, 10, '─', ColorDefault)

	if got := s.Row(1); got != " ─────" {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(0); got != "      " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, want blanks", got)
	}
	if got := s.Row(-1); got != "   " {
		t.Errorf("Row(-1) = %q, want blanks", got)
	}
}
