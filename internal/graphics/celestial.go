package graphics

import (
	g "maragu.dev/gomponents"
)

// CelestialHarmonies renders drifting nebula trails around glowing spheres
func CelestialHarmonies(p Props) g.Node {
	return scene(p,
		el("defs",
			el("radialGradient", attr("id", "celestialSphere1"),
				attr("cx", "30%"), attr("cy", "30%"), attr("r", "70%"), attr("fx", "35%"), attr("fy", "35%"),
				stop("0%", "stop-color: "+CSSVar("color-primary")+"; stop-opacity: 0.8"),
				stop("100%", "stop-color: "+CSSVar("color-primary")+"; stop-opacity: 0.1"),
			),
			el("radialGradient", attr("id", "celestialSphere2"),
				attr("cx", "40%"), attr("cy", "40%"), attr("r", "60%"), attr("fx", "45%"), attr("fy", "45%"),
				stop("0%", "stop-color: "+CSSVar("color-secondary")+"; stop-opacity: 0.7"),
				stop("100%", "stop-color: "+CSSVar("color-secondary")+"; stop-opacity: 0.1"),
			),
			el("filter", attr("id", "celestialBlur"),
				el("feGaussianBlur", attr("in", "SourceGraphic"), attr("stdDeviation", "1.5")),
			),
			el("filter", attr("id", "subtleGlow"),
				el("feGaussianBlur", attr("stdDeviation", "1"), attr("result", "coloredBlur")),
				el("feMerge",
					el("feMergeNode", attr("in", "coloredBlur")),
					el("feMergeNode", attr("in", "SourceGraphic")),
				),
			),
		),

		el("rect", attr("width", "300"), attr("height", "200"), attr("fill", "rgba(30,20,40,0.1)")),

		// trails
		el("path",
			attr("d", "M40 60 Q 100 100 180 50"),
			attr("stroke", RGBA(Primary, 0.2)), attr("stroke-width", "20"), attr("fill", "none"),
			attr("filter", "url(#celestialBlur)"),
			animated(Loop("d", ms(10000), "M40 60 Q 100 100 180 50", "M60 80 Q 120 120 200 70", "M40 60 Q 100 100 180 50")),
		),
		el("path",
			attr("d", "M250 150 Q 180 120 100 160"),
			attr("stroke", RGBA(Secondary, 0.15)), attr("stroke-width", "25"), attr("fill", "none"),
			attr("filter", "url(#celestialBlur)"),
			animated(Loop("d", ms(12000), "M250 150 Q 180 120 100 160", "M230 130 Q 160 100 80 140", "M250 150 Q 180 120 100 160").At(ms(-2000))),
		),

		el("circle", attr("cx", "70"), attr("cy", "60"), attr("r", "45"),
			attr("fill", "url(#celestialSphere1)"), attr("opacity", "0.85"), attr("filter", "url(#subtleGlow)")),
		el("circle", attr("cx", "190"), attr("cy", "130"), attr("r", "60"),
			attr("fill", "url(#celestialSphere2)"), attr("opacity", "0.75"), attr("filter", "url(#subtleGlow)")),
		el("circle", attr("cx", "140"), attr("cy", "70"), attr("r", "30"),
			attr("fill", RGBA(Pink, 0.5)), attr("opacity", "0.7"), attr("filter", "url(#subtleGlow)")),

		// twinkling stars
		el("circle", attr("cx", "260"), attr("cy", "40"), attr("r", "2.5"), attr("fill", "rgba(255, 255, 220, 0.9)"),
			animated(
				Loop("opacity", ms(2300), "0.2", "0.9", "0.2"),
				Loop("r", ms(3000), "2", "3", "2").At(ms(-500)),
			),
		),
		el("circle", attr("cx", "50"), attr("cy", "160"), attr("r", "2"), attr("fill", "rgba(220, 230, 255, 0.8)"),
			animated(Loop("opacity", ms(2800), "0.3", "1", "0.3").At(ms(-1000))),
		),
		el("circle", attr("cx", "150"), attr("cy", "170"), attr("r", "1.5"), attr("fill", "rgba(255, 210, 230, 0.7)"),
			animated(Loop("opacity", ms(2000), "0.4", "0.8", "0.4").At(ms(-200))),
		),
	)
}
