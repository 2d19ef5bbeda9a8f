package graphics

import (
	g "maragu.dev/gomponents"
)

// DreamscapesUI renders soft floating interface panels
func DreamscapesUI(p Props) g.Node {
	return scene(p,
		el("defs",
			el("linearGradient", attr("id", "dreamScapeGradient1"),
				attr("x1", "0%"), attr("y1", "0%"), attr("x2", "100%"), attr("y2", "100%"),
				stop("0%", "stop-color: "+RGBA(Mint, 0.7)),
				stop("100%", "stop-color: "+RGBA(Mint, 0.3)),
			),
			el("linearGradient", attr("id", "dreamScapeGradient2"),
				attr("x1", "0%"), attr("y1", "100%"), attr("x2", "100%"), attr("y2", "0%"),
				stop("0%", "stop-color: "+RGBA(Secondary, 0.6)),
				stop("100%", "stop-color: "+RGBA(Secondary, 0.2)),
			),
			blur("dreamSoftFocus", "2.5"),
			el("filter", attr("id", "dreamSubtleShadow"),
				el("feDropShadow", attr("dx", "1"), attr("dy", "1"), attr("stdDeviation", "1.5"),
					attr("flood-color", "#000"), attr("flood-opacity", "0.1")),
			),
		),
		el("rect", attr("width", "300"), attr("height", "200"), attr("fill", "rgba(230, 240, 250, 0.1)")),

		// background panels
		el("rect", attr("x", "5"), attr("y", "5"), attr("width", "200"), attr("height", "130"), attr("rx", "25"), attr("ry", "25"),
			attr("fill", "url(#dreamScapeGradient1)"), attr("opacity", "0.7"), attr("filter", "url(#dreamSoftFocus)"),
			animated(
				Loop("x", ms(10000), "5", "15", "5"),
				Loop("y", ms(8000), "5", "0", "5"),
			),
		),
		el("rect", attr("x", "90"), attr("y", "60"), attr("width", "200"), attr("height", "130"), attr("rx", "35"), attr("ry", "35"),
			attr("fill", "url(#dreamScapeGradient2)"), attr("opacity", "0.6"), attr("filter", "url(#dreamSoftFocus)"),
			animated(
				Loop("width", ms(9000), "200", "210", "200"),
				Sway("rotate", ms(12000), "0 190 125", "2 190 125", "0 190 125"),
			),
		),

		// foreground widgets
		el("g", attr("filter", "url(#dreamSubtleShadow)"),
			el("rect", attr("x", "30"), attr("y", "30"), attr("width", "140"), attr("height", "80"), attr("rx", "15"), attr("ry", "15"),
				attr("fill", "rgba(255,255,255,0.25)"), attr("stroke", "rgba(255,255,255,0.5)"), attr("stroke-width", "1"),
				animated(Loop("fill-opacity", ms(5000), "0.25", "0.35", "0.25")),
			),
			el("circle", attr("cx", "65"), attr("cy", "70"), attr("r", "18"),
				attr("fill", "rgba(255,255,255,0.35)"), attr("stroke", "rgba(255,255,255,0.6)"), attr("stroke-width", "1"),
				animated(Loop("r", ms(4000), "18", "20", "18")),
			),
			el("path", attr("d", "M95 55 L145 55 M95 85 L135 85"),
				attr("stroke", "rgba(255,255,255,0.6)"), attr("stroke-width", "1.5"), attr("stroke-linecap", "round"),
				animated(Loop("stroke-dasharray", ms(6000), "none", "5 5", "none")),
			),
			el("rect", attr("x", "185"), attr("y", "100"), attr("width", "90"), attr("height", "60"), attr("rx", "12"), attr("ry", "12"),
				attr("fill", "rgba(255,255,255,0.2)"), attr("stroke", "rgba(255,255,255,0.4)"), attr("stroke-width", "1")),
			el("path", attr("d", "M200 130 Q215 115 230 130"),
				attr("stroke", "rgba(255,255,255,0.7)"), attr("stroke-width", "1.5"), attr("fill", "none"), attr("stroke-linecap", "round"),
				animated(Sway("translate", ms(3000), "0 0", "0 -3", "0 0")),
			),
		),
	)
}
