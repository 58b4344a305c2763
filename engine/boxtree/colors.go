package boxtree

import (
	"strconv"
	"strings"

	"github.com/foilterm/foil/engine/frame"
)

var namedColors = map[string]frame.Color{
	"black":   frame.RGB(0, 0, 0),
	"white":   frame.RGB(255, 255, 255),
	"red":     frame.RGB(255, 0, 0),
	"green":   frame.RGB(0, 128, 0),
	"blue":    frame.RGB(0, 0, 255),
	"yellow":  frame.RGB(255, 255, 0),
	"cyan":    frame.RGB(0, 255, 255),
	"magenta": frame.RGB(255, 0, 255),
	"gray":    frame.RGB(128, 128, 128),
	"grey":    frame.RGB(128, 128, 128),
	"orange":  frame.RGB(255, 165, 0),
}

// parseColor resolves a CSS color value (a subset of CSS Color Module
// Level 3: named colors and #rrggbb/#rgb hex notation — terminal output
// has no alpha channel, so rgba()/hsl() are not supported) into a
// frame.Color. "transparent"/"" leave the terminal's current color alone.
func parseColor(value string) (frame.Color, bool) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" || value == "transparent" || value == "currentcolor" {
		return frame.NoColor, false
	}
	if c, ok := namedColors[value]; ok {
		return c, true
	}
	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			n, err := strconv.ParseUint(hex, 16, 32)
			if err == nil {
				return frame.RGB(uint8(n>>16), uint8(n>>8), uint8(n)), true
			}
		}
	}
	return frame.NoColor, false
}
