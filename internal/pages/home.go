package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"ayasaad.dev/internal/content"
	"ayasaad.dev/internal/graphics"
	"ayasaad.dev/internal/models"
)

// Teaser sizes on the home page
const (
	TeaserProjects    = 2
	TeaserSkills      = 4
	TeaserDescription = 80
)

// Home renders the hero and one teaser section per other page
func Home(p Props) g.Node {
	src := p.rand()
	return g.Group{
		h.Section(h.ID("hero"), h.Class("hero-section page-section"), g.Attr("aria-labelledby", "hero-heading"),
			graphics.HeroAnimation(graphics.Props{Class: "hero-background-animation"}),
			h.Div(h.Class("hero-content"),
				h.H1(h.ID("hero-heading"), h.Class("slogan"), g.Text("ethereal concepts, jawdropping creations")),
				h.P(h.Class("name-subtitle"), g.Text("Digital Portfolio for "+p.Profile.Name)),
				p.Navigate(models.PageProjects, "View My Work", h.Class("cta-button")),
			),
		),

		teaser("home-about", "A Glimpse Into My World",
			h.Div(h.Class("teaser-content"),
				h.P(g.Text(content.AboutSnippet)),
				p.Navigate(models.PageAbout, "More About Me", h.Class("teaser-cta-button")),
			),
		),

		teaser("home-projects", "Recent Creations",
			h.Div(h.Class("projects-grid-teaser"),
				g.Group(mapIndexed(first(p.Projects, TeaserProjects), func(i int, pr models.Project) g.Node {
					return projectCard(pr, cardOptions{
						idPrefix:   "teaser-project-title-",
						summary:    truncate(pr.Description, TeaserDescription) + "...",
						action:     p.Navigate(models.PageProjects, "View Details", h.Class("project-link"), g.Attr("aria-label", "Learn more about "+pr.Title)),
						accentSize: 20,
						accentGap:  "5px",
					}, i, src)
				})),
			),
			p.Navigate(models.PageProjects, "View All Creations", h.Class("teaser-cta-button")),
		),

		teaser("home-skills", "My Creative Toolkit",
			h.Div(h.Class("teaser-content"),
				h.Ul(h.Class("skills-list-teaser"),
					g.Map(first(p.Skills, TeaserSkills), func(s string) g.Node { return h.Li(g.Text(s)) }),
				),
				p.Navigate(models.PageSkills, "Explore My Toolkit", h.Class("teaser-cta-button")),
			),
		),

		teaser("home-contact", "Let's Create Together",
			h.Div(h.Class("teaser-content"),
				h.P(g.Text("Interested in collaborating or have a project in mind? I'd love to connect.")),
				p.Navigate(models.PageContact, "Get In Touch", h.Class("teaser-cta-button")),
			),
		),
	}
}

func teaser(id, heading string, children ...g.Node) g.Node {
	return h.Section(h.ID(id), h.Class("home-teaser-section page-section"), g.Attr("aria-labelledby", id+"-heading"),
		h.H2(h.ID(id+"-heading"), g.Text(heading)),
		g.Group(children),
	)
}

// truncate cuts s to at most n characters
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func mapIndexed[T any](items []T, fn func(int, T) g.Node) []g.Node {
	nodes := make([]g.Node, len(items))
	for i, it := range items {
		nodes[i] = fn(i, it)
	}
	return nodes
}
