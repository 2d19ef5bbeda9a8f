package graphics

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB channels of the shared palette. They mirror the stylesheet's
// --color-primary and --color-secondary, which SVG animate values cannot read.
const (
	Primary   = "184, 162, 217"
	Secondary = "160, 210, 235"
	Pink      = "247, 197, 216"
	Mint      = "170, 230, 200"
	Peach     = "255, 223, 186"
	Steel     = "176, 200, 230"
	Plum      = "221, 160, 221"
)

// RGBA formats a palette channel triple with an alpha
func RGBA(rgb string, alpha float64) string {
	return fmt.Sprintf("rgba(%s, %s)", rgb, num(alpha))
}

// CSSVar references a stylesheet custom property
func CSSVar(name string) string {
	return "var(--" + name + ")"
}

// AccentColor returns the soft random tint used for card accents
func AccentColor(src Source) string {
	r := src.Float64()*50 + 150
	g := src.Float64()*50 + 180
	b := src.Float64()*50 + 200
	return fmt.Sprintf("rgba(%.0f, %.0f, %.0f, 0.15)", r, g, b)
}

// withAlpha replaces the alpha channel of an rgb() or rgba() color.
// Other color forms are returned unchanged.
func withAlpha(color string, alpha float64) string {
	var body string
	switch {
	case strings.HasPrefix(color, "rgba(") && strings.HasSuffix(color, ")"):
		body = color[len("rgba(") : len(color)-1]
	case strings.HasPrefix(color, "rgb(") && strings.HasSuffix(color, ")"):
		body = color[len("rgb(") : len(color)-1]
	default:
		return color
	}

	parts := strings.Split(body, ",")
	if len(parts) < 3 {
		return color
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return fmt.Sprintf("rgba(%s, %s, %s, %s)", parts[0], parts[1], parts[2], num(alpha))
}

// num formats a float without trailing zeros
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
