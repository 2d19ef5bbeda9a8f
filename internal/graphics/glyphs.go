package graphics

import (
	g "maragu.dev/gomponents"
)

// EphemeralGlyphs renders three glowing symbols that spin, pulse and morph
func EphemeralGlyphs(p Props) g.Node {
	return scene(p,
		el("defs",
			el("filter", attr("id", "glyphSoftGlow"), attr("x", "-50%"), attr("y", "-50%"), attr("width", "200%"), attr("height", "200%"),
				el("feGaussianBlur", attr("in", "SourceAlpha"), attr("stdDeviation", "2.5"), attr("result", "blur")),
				el("feFlood", attr("flood-color", CSSVar("color-accent")), attr("flood-opacity", "0.7"), attr("result", "flood")),
				el("feComposite", attr("in", "flood"), attr("in2", "blur"), attr("operator", "in"), attr("result", "glow")),
				el("feMerge",
					el("feMergeNode", attr("in", "glow")),
					el("feMergeNode", attr("in", "SourceGraphic")),
				),
			),
			el("linearGradient", attr("id", "glyphBgGradient"),
				attr("x1", "0%"), attr("y1", "0%"), attr("x2", "100%"), attr("y2", "100%"),
				stop("0%", "stop-color: rgba(var(--color-accent-rgb), 0.05)"),
				stop("100%", "stop-color: rgba(var(--color-primary-rgb), 0.05)"),
			),
		),
		el("rect", attr("width", "300"), attr("height", "200"), attr("fill", "rgba(59, 50, 79, 0.1)")),

		el("g", attr("filter", "url(#glyphSoftGlow)"), attr("stroke", RGBA(Pink, 0.9)),
			attr("stroke-width", "2.5"), attr("fill", "none"), attr("stroke-linecap", "round"),

			// spiral
			el("path", attr("d", "M60,100 a35,35 0 0,1 35,-35 a25,25 0 0,0 -25,-25 a15,15 0 0,1 15,-15"),
				animated(
					Spin("rotate", "0 77.5 65", "360 77.5 65", ms(18000)),
					Loop("stroke-dasharray", ms(6000), "0 100", "50 50", "0 100"),
				),
			),

			// crossed lines inside a dashed ring
			el("g", attr("transform", "translate(150, 100)"),
				el("line", attr("x1", "-35"), attr("y1", "-35"), attr("x2", "35"), attr("y2", "35"),
					animated(Loop("stroke-width", ms(3000), "2.5", "4", "2.5")),
				),
				el("line", attr("x1", "-35"), attr("y1", "35"), attr("x2", "35"), attr("y2", "-35"),
					animated(Loop("stroke-width", ms(3000), "2.5", "4", "2.5").At(ms(-1500))),
				),
				el("circle", attr("cx", "0"), attr("cy", "0"), attr("r", "40"), attr("stroke-dasharray", "6,4"), attr("opacity", "0.7"),
					animated(
						Loop("stroke-dashoffset", ms(4500), "0", "20", "0"),
						Spin("rotate", "0 0 0", "-360 0 0", ms(25000)),
					),
				),
			),

			// wave
			el("path", attr("d", "M230,40 Q250,70 230,100 T230,160"), attr("stroke-width", "3"),
				animated(
					Loop("d", ms(7000),
						"M230,40 Q250,70 230,100 T230,160",
						"M230,40 Q210,70 230,100 T230,160",
						"M230,40 Q250,70 230,100 T230,160",
					),
					Loop("opacity", ms(3500), "0.5", "1", "0.5"),
				),
			),
		),
	)
}
