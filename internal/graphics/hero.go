package graphics

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HeroRings is the number of radiating ellipses behind the hero heading
const HeroRings = 6

// HeroAnimation renders the full-bleed radiating backdrop of the home hero.
// Sizing comes from the stylesheet, so only Class is honoured.
func HeroAnimation(p Props) g.Node {
	rings := make(g.Group, 0, HeroRings)
	for i := 1; i <= HeroRings; i++ {
		rings = append(rings, heroRing(i))
	}

	return el("svg",
		attr("viewBox", "0 0 500 300"),
		g.If(p.Class != "", h.Class(p.Class)),
		attr("preserveAspectRatio", "xMidYMid slice"),
		attr("aria-hidden", "true"),
		el("defs",
			el("filter", attr("id", "heroAnimBlur"), attr("x", "-50%"), attr("y", "-50%"), attr("width", "200%"), attr("height", "200%"),
				el("feGaussianBlur", attr("in", "SourceGraphic"), attr("stdDeviation", "2")),
			),
			heroGradient("lineGrad1", "rotate(45)", Primary, 0.2),
			heroGradient("lineGrad2", "rotate(-45)", Secondary, 0.15),
		),
		el("g", attr("filter", "url(#heroAnimBlur)"),
			rings,
			el("path", attr("stroke", "url(#lineGrad1)"), attr("stroke-width", "40"), attr("fill", "none"),
				attr("stroke-linecap", "round"), attr("opacity", "0.5"),
				animated(Loop("d", ms(15000),
					"M0,100 Q125,50 250,100 T500,150",
					"M0,150 Q125,200 250,150 T500,100",
					"M0,100 Q125,50 250,100 T500,150",
				)),
			),
			el("path", attr("stroke", "url(#lineGrad2)"), attr("stroke-width", "50"), attr("fill", "none"),
				attr("stroke-linecap", "round"), attr("opacity", "0.4"),
				animated(Loop("d", ms(18000),
					"M0,200 Q125,250 250,200 T500,150",
					"M0,150 Q125,100 250,150 T500,200",
					"M0,200 Q125,250 250,200 T500,150",
				).At(ms(-3000))),
			),
		),
	)
}

// heroRing is the i-th (1-based) expanding ellipse; later rings are slower
// and slightly more opaque, alternating primary and secondary strokes.
func heroRing(i int) g.Node {
	rgb := Primary
	if i%2 == 0 {
		rgb = Secondary
	}
	dur := ms(4000 + i*1200)
	begin := ms(i * 350)

	return el("ellipse",
		attr("cx", "250"), attr("cy", "150"), attr("rx", "10"), attr("ry", "5"),
		attr("fill", "none"),
		attr("stroke", RGBA(rgb, float64(5+i)/100)),
		attr("stroke-width", "1.5"),
		attr("data-ring", strconv.Itoa(i)),
		animated(
			Loop("rx", dur, "10", "250", "10").At(begin).Eased(0, 0.7, 1),
			Loop("ry", dur, "5", "150", "5").At(begin).Eased(0, 0.7, 1),
			Loop("opacity", dur, "0", "1", "0").At(begin).Eased(0, 0.5, 1),
		),
	)
}

func heroGradient(id, rotate, rgb string, peak float64) g.Node {
	return el("linearGradient", attr("id", id), attr("gradientTransform", rotate),
		el("stop", attr("offset", "0%"), attr("stop-color", RGBA(rgb, 0.01))),
		el("stop", attr("offset", "50%"), attr("stop-color", RGBA(rgb, peak))),
		el("stop", attr("offset", "100%"), attr("stop-color", RGBA(rgb, 0.01))),
	)
}
