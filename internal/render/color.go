package render

import (
	"regexp"
	"strconv"
)

// RGB is a three-channel color with each channel in [0,255].
type RGB struct {
	R, G, B int
}

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
	gray  = RGB{100, 100, 100}
)

var hexColorRe = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// ResolveColor converts a "#RRGGBB" string (hash optional, case-insensitive)
// into an RGB value. Malformed input falls back to black rather than failing;
// the renderer must never be stopped by a bad color string.
func ResolveColor(hex string) RGB {
	m := hexColorRe.FindStringSubmatch(hex)
	if m == nil {
		return black
	}
	v, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return black
	}
	return RGB{
		R: int(v >> 16 & 0xff),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}
}
