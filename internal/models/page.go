package models

// Page identifies one of the site's fixed pages
type Page string

const (
	PageHome     Page = "home"
	PageAbout    Page = "about"
	PageProjects Page = "projects"
	PageSkills   Page = "skills"
	PageContact  Page = "contact"
)

// Pages lists every page in navigation order
var Pages = []Page{PageHome, PageAbout, PageProjects, PageSkills, PageContact}

// Valid reports whether p belongs to the fixed page set
func (p Page) Valid() bool {
	switch p {
	case PageHome, PageAbout, PageProjects, PageSkills, PageContact:
		return true
	}
	return false
}

// ParsePage converts a raw value into a Page
func ParsePage(s string) (Page, bool) {
	p := Page(s)
	return p, p.Valid()
}
