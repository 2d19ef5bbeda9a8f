package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"ayasaad.dev/internal/content"
	"ayasaad.dev/internal/graphics"
	"ayasaad.dev/internal/models"
)

type navItem struct {
	page  models.Page
	label string
}

var navItems = []navItem{
	{models.PageHome, "Home"},
	{models.PageAbout, "About"},
	{models.PageProjects, "Creations"},
	{models.PageSkills, "Toolkit"},
	{models.PageContact, "Connect"},
}

// App renders the whole mounted tree: backdrop, header, current page, footer
func App(p Props) g.Node {
	src := p.rand()
	return h.Div(h.Class("portfolio-container"),
		g.Map(content.Backdrop(), func(s graphics.Shape) g.Node {
			return graphics.FloatingShape(s, src)
		}),
		Header(p),
		h.Main(h.Class("main-content"),
			g.Attr("role", "main"),
			g.Attr("aria-live", "polite"),
			g.Attr("aria-atomic", "true"),
			Render(p),
		),
		Footer(p),
	)
}

// Render selects the renderer for the current page, defaulting to Home
func Render(p Props) g.Node {
	switch p.Current {
	case models.PageAbout:
		return About(p)
	case models.PageProjects:
		return Projects(p)
	case models.PageSkills:
		return Skills(p)
	case models.PageContact:
		return Contact(p)
	default:
		return Home(p)
	}
}

// Header renders the logo and main navigation, marking the current page
func Header(p Props) g.Node {
	return h.Header(h.ID("top"), h.Class("portfolio-header"), g.Attr("role", "banner"),
		h.Nav(g.Attr("aria-label", "Main navigation"),
			p.Navigate(models.PageHome, p.Profile.Name, h.Class("nav-logo"), g.Attr("aria-label", "Go to homepage")),
			h.Ul(
				g.Map(navItems, func(it navItem) g.Node {
					active := p.Current == it.page
					return h.Li(
						p.Navigate(it.page, it.label,
							g.If(active, h.Class("active-nav-link")),
							g.If(active, g.Attr("aria-current", "page")),
						),
					)
				}),
			),
		),
	)
}

// Footer renders the copyright line
func Footer(p Props) g.Node {
	return h.Footer(h.Class("portfolio-footer"), g.Attr("role", "contentinfo"),
		h.P(g.Textf("© %d %s. All rights reserved.", p.year(), p.Profile.Name)),
		h.P(g.Text("Crafted with ethereal concepts and artistic creations.")),
	)
}
