package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"ayasaad.dev/internal/models"
)

// Contact renders the mail call-to-action and social profile links
func Contact(p Props) g.Node {
	return h.Section(h.ID("contact"), h.Class("page-section"), g.Attr("aria-labelledby", "contact-heading"),
		h.H2(h.ID("contact-heading"), g.Text("Connect With Me")),
		h.Div(h.Class("section-content-wrapper"),
			h.P(g.Text("I'd love to hear about your ideas, discuss potential collaborations, or just chat about art. Feel free to reach out!")),
			h.A(h.Href("mailto:"+p.Profile.Email), h.Class("cta-button"), g.Text("Send an Email")),
			h.Div(h.Class("social-links"), g.Attr("aria-label", "Social media links"),
				g.Map(p.Profile.Social, func(l models.SocialLink) g.Node {
					return h.A(h.Href(l.URL), g.Attr("aria-label", l.Aria),
						h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text(l.Label))
				}),
			),
		),
	)
}
