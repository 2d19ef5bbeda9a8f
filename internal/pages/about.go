package pages

import (
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"ayasaad.dev/internal/content"
	"ayasaad.dev/internal/graphics"
)

// About renders the three narrative sections, each beside its line-art variant
func About(p Props) g.Node {
	src := p.rand()
	return h.Section(h.ID("about"), h.Class("page-section about-page-content"), g.Attr("aria-labelledby", "about-heading"),
		h.H2(h.ID("about-heading"), g.Text("About Me")),
		h.Div(h.Class("section-content-wrapper"),
			graphics.FloatingShape(graphics.Shape{
				Size: 70, Color: graphics.RGBA(graphics.Plum, 0.08), Kind: graphics.Organic1,
				Top: "-35px", Left: "-45px", ZIndex: graphics.Z(0), Delay: 300 * time.Millisecond,
			}, src),
			g.Map(content.About(), func(s content.Section) g.Node {
				return h.Article(h.Class("about-section-item"), g.Attr("aria-labelledby", s.ID),
					h.Div(h.Class("about-text"),
						h.H3(h.ID(s.ID), g.Text(s.Heading)),
						Markdown(s.Body),
					),
					h.Div(h.Class("about-graphic"),
						graphics.AbstractCurve(graphics.CurveProps{Size: 120, StrokeColor: s.Stroke, Variant: s.Variant}),
					),
				)
			}),
			graphics.FloatingShape(graphics.Shape{
				Size: 90, Color: graphics.RGBA(graphics.Mint, 0.06), Kind: graphics.Organic2,
				Bottom: "-40px", Right: "-30px", ZIndex: graphics.Z(0), Delay: 800 * time.Millisecond,
			}, src),
		),
	)
}
