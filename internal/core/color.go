package core

// Color is a palette entry for a screen cell or a drawn shape.
// Terminal frontends map it to an ANSI 256-color code, graphical ones to RGB.
type Color uint8

// Palette used by slither renderers.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

type paletteEntry struct {
	ansi    string
	r, g, b uint8
}

// ColorDefault has no ANSI code so the terminal's own foreground is kept.
var palette = [...]paletteEntry{
	ColorDefault:       {"", 0xe0, 0xe0, 0xe0},
	ColorRed:           {"1", 0xcd, 0x31, 0x31},
	ColorGreen:         {"2", 0x0d, 0xbc, 0x79},
	ColorYellow:        {"3", 0xe5, 0xe5, 0x10},
	ColorBlue:          {"4", 0x24, 0x72, 0xc8},
	ColorMagenta:       {"5", 0xbc, 0x3f, 0xbc},
	ColorCyan:          {"6", 0x11, 0xa8, 0xcd},
	ColorWhite:         {"7", 0xe5, 0xe5, 0xe5},
	ColorBrightRed:     {"9", 0xf1, 0x4c, 0x4c},
	ColorBrightGreen:   {"10", 0x23, 0xd1, 0x8b},
	ColorBrightYellow:  {"11", 0xf5, 0xf5, 0x43},
	ColorBrightBlue:    {"12", 0x3b, 0x8e, 0xea},
	ColorBrightMagenta: {"13", 0xd6, 0x70, 0xd6},
	ColorBrightCyan:    {"14", 0x29, 0xb8, 0xdb},
	ColorBrightWhite:   {"15", 0xff, 0xff, 0xff},
	ColorOrange:        {"208", 0xff, 0x87, 0x00},
	ColorGray:          {"245", 0x8a, 0x8a, 0x8a},
}

// ANSI returns the 256-color code for c, or "" for ColorDefault and
// unknown colors.
func (c Color) ANSI() string {
	if int(c) >= len(palette) {
		return ""
	}
	return palette[c].ansi
}

// RGB returns the color's 8-bit red, green and blue components.
// Unknown colors map to ColorDefault.
func (c Color) RGB() (r, g, b uint8) {
	if int(c) >= len(palette) {
		c = ColorDefault
	}
	p := palette[c]
	return p.r, p.g, p.b
}
