package render

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]string{
	"white": "#ffffff",
	"black": "#000000",
	"red":   "#ff0000",
	"green": "#008000",
	"blue":  "#0000ff",
	"gray":  "#808080",
	"grey":  "#808080",
}

// parseColor reads a CSS hex or basic named color and applies opacity.
// Transparent and unparseable values report false.
func parseColor(s string, opacity float64) (color.NRGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "transparent" || s == "none" {
		return color.NRGBA{}, false
	}
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b := c.RGB255()
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(opacity*255 + 0.5)}, true
}
