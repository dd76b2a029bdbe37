package gamearena

import (
	"strings"

	"github.com/gogpu/gg"
)

// palette holds the classic teaching colours. Names match
// case-insensitively.
var palette = map[string]gg.RGBA{
	"BLACK":     gg.Black,
	"BLUE":      gg.Blue,
	"CYAN":      gg.Cyan,
	"DARKGREY":  gg.Hex("#404040"),
	"GREY":      gg.Hex("#808080"),
	"GREEN":     gg.Green,
	"LIGHTGREY": gg.Hex("#C0C0C0"),
	"MAGENTA":   gg.Magenta,
	"ORANGE":    gg.Hex("#FFC800"),
	"PINK":      gg.Hex("#FFAFAF"),
	"RED":       gg.Red,
	"WHITE":     gg.White,
	"YELLOW":    gg.Yellow,
}

// parseColour converts a colour string to its RGBA value. Accepted
// forms are the palette names in any case and hex notation (#RGB,
// #RGBA, #RRGGBB, #RRGGBBAA). Unknown names come back white.
func parseColour(s string) gg.RGBA {
	if c, ok := palette[strings.ToUpper(s)]; ok {
		return c
	}
	if strings.HasPrefix(s, "#") {
		return gg.Hex(s)
	}
	return gg.White
}
