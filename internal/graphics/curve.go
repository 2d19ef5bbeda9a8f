package graphics

import (
	"strings"

	g "maragu.dev/gomponents"
)

// Variant selects one of the literal line-art path datasets
type Variant string

const (
	VariantOne     Variant = "one"
	VariantTwo     Variant = "two"
	VariantThree   Variant = "three"
	VariantDefault Variant = "default"
)

var curvePaths = map[Variant]string{
	VariantOne:     "M10,50 Q30,10 50,50 T90,50 M20,30 Q50,70 80,30",
	VariantTwo:     "M20,80 C40,20 60,100 80,20 M15,50 C50,-10 50,110 85,50",
	VariantThree:   "M50,10 C10,30 90,70 50,90 M30,20 Q70,50 30,80",
	VariantDefault: "M10,90 C30,70 40,30 50,10 C60,30 70,70 90,90",
}

// Curve defaults
const (
	DefaultCurveSize        = 100
	DefaultCurveStroke      = "rgba(184, 162, 217, 0.7)"
	DefaultCurveStrokeWidth = 2
)

// CurveProps configures AbstractCurve. Zero values take the defaults.
type CurveProps struct {
	Size        float64
	StrokeColor string
	StrokeWidth float64
	Variant     Variant
	Class       string
}

// CurvePath returns the path data for a variant, falling back to the default set
func CurvePath(v Variant) string {
	if d, ok := curvePaths[v]; ok {
		return d
	}
	return curvePaths[VariantDefault]
}

// AbstractCurve renders a static line-art flourish
func AbstractCurve(p CurveProps) g.Node {
	if p.Size <= 0 {
		p.Size = DefaultCurveSize
	}
	if p.StrokeColor == "" {
		p.StrokeColor = DefaultCurveStroke
	}
	if p.StrokeWidth <= 0 {
		p.StrokeWidth = DefaultCurveStrokeWidth
	}
	if _, ok := curvePaths[p.Variant]; !ok {
		p.Variant = VariantDefault
	}

	size := num(p.Size)
	return el("svg",
		attr("width", size),
		attr("height", size),
		attr("viewBox", "0 0 100 100"),
		attr("fill", "none"),
		attr("xmlns", "http://www.w3.org/2000/svg"),
		attr("class", strings.TrimSpace("abstract-curve-graphic "+p.Class)),
		attr("data-variant", string(p.Variant)),
		attr("aria-hidden", "true"),
		el("path",
			attr("d", CurvePath(p.Variant)),
			attr("stroke", p.StrokeColor),
			attr("stroke-width", num(p.StrokeWidth)),
			attr("stroke-linecap", "round"),
			attr("stroke-linejoin", "round"),
		),
	)
}
