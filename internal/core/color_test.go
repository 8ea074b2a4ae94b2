package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightGreen, "10"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{Color(200), ""},
	}

	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.want {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.c, got, tc.want)
		}
	}
}

func TestColorRGBUnknownFallsBack(t *testing.T) {
	r, g, b := Color(200).RGB()
	dr, dg, db := ColorDefault.RGB()
	if r != dr || g != dg || b != db {
		t.Errorf("unknown color RGB = (%d,%d,%d), expected default (%d,%d,%d)", r, g, b, dr, dg, db)
	}

	if r, g, b := ColorBrightWhite.RGB(); r != 0xff || g != 0xff || b != 0xff {
		t.Errorf("bright white RGB = (%d,%d,%d)", r, g, b)
	}
}
