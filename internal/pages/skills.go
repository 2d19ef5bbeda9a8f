package pages

import (
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"ayasaad.dev/internal/graphics"
)

// Skills renders the full toolkit list
func Skills(p Props) g.Node {
	return h.Section(h.ID("skills"), h.Class("page-section"), g.Attr("aria-labelledby", "skills-heading"),
		h.H2(h.ID("skills-heading"), g.Text("My Toolkit")),
		h.Div(h.Class("section-content-wrapper"),
			graphics.FloatingShape(graphics.Shape{
				Size: 60, Color: graphics.RGBA(graphics.Secondary, 0.07), Kind: graphics.Organic2,
				Top: "-15px", Right: "-30px", ZIndex: graphics.Z(1), Delay: 600 * time.Millisecond,
			}, p.rand()),
			h.Ul(h.Class("skills-list"),
				g.Map(p.Skills, func(s string) g.Node { return h.Li(g.Text(s)) }),
			),
		),
	)
}
