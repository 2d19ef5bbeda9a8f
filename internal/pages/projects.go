package pages

import (
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"ayasaad.dev/internal/graphics"
	"ayasaad.dev/internal/models"
)

// Projects renders every project as a card
func Projects(p Props) g.Node {
	src := p.rand()
	return h.Section(h.ID("projects"), h.Class("page-section"), g.Attr("aria-labelledby", "projects-heading"),
		h.H2(h.ID("projects-heading"), g.Text("My Creations")),
		h.Div(h.Class("projects-grid"),
			g.Group(mapIndexed(p.Projects, func(i int, pr models.Project) g.Node {
				return projectCard(pr, cardOptions{
					idPrefix: "project-title-",
					summary:  pr.Description,
					action: h.A(h.Href(pr.Link), h.Class("project-link"),
						g.Attr("aria-label", "Learn more about "+pr.Title), g.Text("Learn More")),
					accentSize: 25,
					accentGap:  "8px",
				}, i, src)
			})),
		),
	)
}

type cardOptions struct {
	idPrefix   string
	summary    string
	action     g.Node
	accentSize float64
	accentGap  string
}

// projectCard renders one project with its scene and a jittered accent blob
func projectCard(pr models.Project, o cardOptions, index int, src graphics.Source) g.Node {
	titleID := o.idPrefix + pr.ID

	var scene g.Node = g.Group(nil)
	if c, ok := graphics.Lookup(pr.Graphic); ok {
		scene = c(graphics.Props{Class: "project-svg-graphic"})
	}

	kind := graphics.Sphere
	if index%2 != 0 {
		kind = graphics.Organic1
	}

	return h.Article(h.Class("project-card"), g.Attr("aria-labelledby", titleID),
		h.Div(h.Class("project-svg-container"), scene),
		h.Div(h.Class("project-info"),
			h.H3(h.ID(titleID), g.Text(pr.Title)),
			h.P(g.Text(o.summary)),
			o.action,
			graphics.FloatingShape(graphics.Shape{
				Size:   o.accentSize,
				Color:  graphics.AccentColor(src),
				Kind:   kind,
				Bottom: o.accentGap,
				Right:  o.accentGap,
				ZIndex: graphics.Z(1),
				Delay:  time.Duration(index) * 150 * time.Millisecond,
			}, src),
		),
	)
}
