// Package pages renders the portfolio's page tree. Every renderer is a pure
// function of Props: the current page and a navigate capability come from
// the root, content comes in as plain slices.
package pages

import (
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"ayasaad.dev/internal/graphics"
	"ayasaad.dev/internal/models"
)

// NavFunc renders a control that navigates to page when activated.
// Extra attrs are applied to the control itself.
type NavFunc func(page models.Page, label string, attrs ...g.Node) g.Node

// Props is everything a page renderer reads
type Props struct {
	Current  models.Page
	Navigate NavFunc
	Profile  models.Profile
	Projects []models.Project
	Skills   []string
	Rand     graphics.Source
	Year     int
}

// FormNav returns a NavFunc that posts the page to action
func FormNav(action string) NavFunc {
	return func(page models.Page, label string, attrs ...g.Node) g.Node {
		return h.Form(h.Method("post"), h.Action(action), h.Class("nav-form"),
			h.Button(
				h.Type("submit"),
				h.Name("page"),
				h.Value(string(page)),
				g.Group(attrs),
				g.Text(label),
			),
		)
	}
}

func (p Props) rand() graphics.Source {
	if p.Rand == nil {
		return graphics.NewRNG(0)
	}
	return p.Rand
}

func (p Props) year() int {
	if p.Year == 0 {
		return time.Now().Year()
	}
	return p.Year
}

// first returns at most n leading elements
func first[T any](items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
