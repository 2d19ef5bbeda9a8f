package navigation

import "ayasaad.dev/internal/models"

// DefaultTitle is used for any page outside the known set
const DefaultTitle = "Aya Saad - Product Designer"

var titles = map[models.Page]string{
	models.PageHome:     "Home | Aya Saad - Product Designer",
	models.PageAbout:    "About Me | Aya Saad",
	models.PageProjects: "Creations | Aya Saad",
	models.PageSkills:   "Toolkit | Aya Saad",
	models.PageContact:  "Connect | Aya Saad",
}

// TitleFor returns the document title for a page
func TitleFor(p models.Page) string {
	if t, ok := titles[p]; ok {
		return t
	}
	return DefaultTitle
}
