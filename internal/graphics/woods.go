package graphics

import (
	g "maragu.dev/gomponents"
)

// WhisperingWoods renders layered misty trees under swaying light rays
func WhisperingWoods(p Props) g.Node {
	tree := func(d, fill string) g.Node {
		return el("path", attr("d", d), attr("fill", fill))
	}

	return scene(p,
		el("defs",
			el("linearGradient", attr("id", "woodsSkyGradient"),
				attr("x1", "0%"), attr("y1", "0%"), attr("x2", "0%"), attr("y2", "100%"),
				stop("0%", "stop-color: "+RGBA(Secondary, 0.4)),
				stop("60%", "stop-color: "+RGBA(Mint, 0.3)),
				stop("100%", "stop-color: rgba(120, 180, 150, 0.4)"),
			),
			blur("woodsSoftGlow", "1"),
			el("filter", attr("id", "mistFilter"),
				el("feTurbulence", attr("type", "fractalNoise"), attr("baseFrequency", "0.02 0.05"),
					attr("numOctaves", "2"), attr("result", "turbulence")),
				el("feDisplacementMap", attr("in2", "turbulence"), attr("in", "SourceGraphic"), attr("scale", "5"),
					attr("xChannelSelector", "R"), attr("yChannelSelector", "G")),
				el("feGaussianBlur", attr("stdDeviation", "1")),
			),
		),
		el("rect", attr("width", "300"), attr("height", "200"), attr("fill", "url(#woodsSkyGradient)")),

		// mist
		el("ellipse", attr("cx", "150"), attr("cy", "180"), attr("rx", "180"), attr("ry", "60"),
			attr("fill", "rgba(180, 200, 190, 0.3)"), attr("filter", "url(#mistFilter)"), attr("opacity", "0.7"),
			animated(Loop("baseFrequency", ms(10000), "0.02 0.05", "0.03 0.06", "0.02 0.05")),
		),

		// background trees
		el("g", attr("opacity", "0.6"), attr("transform", "translate(0, 10) scale(0.9)"), attr("filter", "url(#woodsSoftGlow)"),
			tree("M70 190 L75 120 Q 77 100 85 100 Q 93 100 95 120 L100 190 Z", "rgba(100, 130, 110, 0.5)"),
			tree("M170 190 L175 130 Q 177 110 185 110 Q 193 110 195 130 L200 190 Z", "rgba(90, 120, 100, 0.55)"),
			tree("M20 190 L25 140 Q 27 125 35 125 Q 43 125 45 140 L50 190 Z", "rgba(110, 140, 120, 0.45)"),
		),
		// midground
		el("g", attr("opacity", "0.8"), attr("transform", "scale(0.95)"),
			tree("M45 200 L55 100 Q 60 70 75 70 Q 90 70 95 100 L105 200 Z", "rgba(70, 100, 80, 0.7)"),
			tree("M210 200 L220 120 Q 225 90 240 90 Q 255 90 260 120 L270 200 Z", "rgba(60, 90, 70, 0.65)"),
		),
		// foreground
		el("g",
			tree("M110 200 L125 80 Q 135 40 155 40 Q 175 40 185 80 L200 200 Z", "rgba(50, 80, 60, 0.8)"),
		),

		tree("M0 185 Q80 175 150 180 T300 175 L300 200 L0 200 Z", "rgba(70, 100, 80, 0.6)"),
		tree("M0 190 Q100 185 150 192 T300 190 L300 200 L0 200 Z", "rgba(60, 90, 70, 0.4)"),

		// light rays
		el("g", attr("opacity", "0.15"),
			el("path", attr("d", "M150 0 L130 200 L170 200 Z"), attr("fill", "rgba(220, 230, 200, 0.5)"),
				animated(Sway("skewX", ms(15000), "-5", "5", "-5")),
			),
			el("path", attr("d", "M80 0 L60 200 L100 200 Z"), attr("fill", "rgba(200, 220, 190, 0.4)"),
				animated(Sway("skewX", ms(12000), "3", "-3", "3").At(ms(-2000))),
			),
		),
	)
}
