package graphics

import (
	"math"
	"strconv"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ShapeKind picks the blob outline of a floating shape
type ShapeKind string

const (
	Sphere   ShapeKind = "sphere"
	Organic1 ShapeKind = "organic1"
	Organic2 ShapeKind = "organic2"
)

var borderRadii = map[ShapeKind]string{
	Sphere:   "50%",
	Organic1: "30% 70% 70% 30% / 30% 30% 70% 70%",
	Organic2: "60% 40% 30% 70% / 50% 60% 40% 50%",
}

// Floating shape defaults
const (
	DefaultShapeOpacity = 0.15
	DefaultShapeZIndex  = -1
)

// Shape describes one absolute-positioned glowing blob.
// Offsets are CSS lengths and are omitted when empty.
type Shape struct {
	Size    float64
	Color   string
	Kind    ShapeKind
	Top     string
	Left    string
	Right   string
	Bottom  string
	Opacity float64 // zero means DefaultShapeOpacity
	Delay   time.Duration
	ZIndex  *int // nil means DefaultShapeZIndex
}

// Z returns a pointer for Shape.ZIndex literals
func Z(n int) *int {
	return &n
}

// LoopDuration is the float cycle for a shape: 6s plus up to 4s of jitter
func LoopDuration(src Source) time.Duration {
	d := time.Duration((6 + src.Float64()*4) * float64(time.Second))
	return d.Round(10 * time.Millisecond)
}

// FloatingShape renders the blob as a decorative div driven by the
// stylesheet's float keyframes
func FloatingShape(s Shape, src Source) g.Node {
	if s.Kind == "" {
		s.Kind = Sphere
	}
	radius, ok := borderRadii[s.Kind]
	if !ok {
		s.Kind = Sphere
		radius = borderRadii[Sphere]
	}
	if s.Opacity == 0 {
		s.Opacity = DefaultShapeOpacity
	}
	z := DefaultShapeZIndex
	if s.ZIndex != nil {
		z = *s.ZIndex
	}

	decls := []string{
		"width: " + px(s.Size),
		"height: " + px(s.Size),
		"background-color: " + s.Color,
		"border-radius: " + radius,
		"position: absolute",
	}
	for _, off := range []struct{ name, value string }{
		{"top", s.Top}, {"left", s.Left}, {"right", s.Right}, {"bottom", s.Bottom},
	} {
		if off.value != "" {
			decls = append(decls, off.name+": "+off.value)
		}
	}
	decls = append(decls,
		"opacity: "+num(s.Opacity),
		"box-shadow: 0 0 "+px(s.Size/6)+" "+px(s.Size/12)+" "+withAlpha(s.Color, s.Opacity/2),
		"animation: float "+seconds(LoopDuration(src))+" ease-in-out infinite "+seconds(s.Delay),
		"z-index: "+strconv.Itoa(z),
		"will-change: transform",
	)

	return h.Div(
		h.Class("floating-shape"),
		attr("data-kind", string(s.Kind)),
		attr("style", strings.Join(decls, "; ")),
		attr("aria-hidden", "true"),
	)
}

func px(f float64) string {
	return num(math.Round(f*100)/100) + "px"
}
