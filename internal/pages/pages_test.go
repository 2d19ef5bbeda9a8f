package pages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"

	"ayasaad.dev/internal/content"
	"ayasaad.dev/internal/graphics"
	"ayasaad.dev/internal/models"
)

func testProps(page models.Page) Props {
	return Props{
		Current:  page,
		Navigate: FormNav("/navigate"),
		Profile:  content.DefaultProfile(),
		Projects: content.Projects(),
		Skills:   content.Skills(),
		Rand:     graphics.Fixed(0.5),
		Year:     2026,
	}
}

// parse renders n and returns the parsed document
func parse(t *testing.T, n g.Node) *html.Node {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	doc, err := html.Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc
}

func attrOf(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrOf(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func byClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool { return hasClass(n, class) }
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func texts(nodes []*html.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = text(n)
	}
	return out
}

func TestProjectsPageRendersEveryCard(t *testing.T) {
	doc := parse(t, Projects(testProps(models.PageProjects)))

	cards := findAll(doc, byClass("project-card"))
	require.Len(t, cards, len(content.Projects()))

	var titles []string
	for _, c := range cards {
		titles = append(titles, text(findAll(c, byTag("h3"))[0]))
		links := findAll(c, byClass("project-link"))
		require.Len(t, links, 1)
		assert.Equal(t, "a", links[0].Data)
		assert.Len(t, findAll(c, byClass("project-svg-graphic")), 1)
		assert.Len(t, findAll(c, byClass("floating-shape")), 1)
	}
	assert.Equal(t, []string{"Celestial Harmonies", "Whispering Woods", "Ephemeral Glyphs", "Dreamscapes UI"}, titles)
	assert.Equal(t, "#project-alpha-details", attrOf(findAll(cards[0], byClass("project-link"))[0], "href"))
}

func TestAboutPageVariants(t *testing.T) {
	doc := parse(t, About(testProps(models.PageAbout)))

	items := findAll(doc, byClass("about-section-item"))
	require.Len(t, items, 3)

	var variants []string
	for _, it := range items {
		curves := findAll(it, byClass("abstract-curve-graphic"))
		require.Len(t, curves, 1)
		variants = append(variants, attrOf(curves[0], "data-variant"))
		assert.Equal(t, "120", attrOf(curves[0], "width"))
	}
	assert.Equal(t, []string{"one", "two", "three"}, variants)
	assert.Len(t, findAll(doc, byClass("floating-shape")), 2)

	// markdown emphasis survives sanitizing
	ems := findAll(items[0], byTag("em"))
	require.Len(t, ems, 1)
	assert.Equal(t, "Académie Libanaise des Beaux-Arts", text(ems[0]))
}

func TestHomeTeasersArePrefixes(t *testing.T) {
	p := testProps(models.PageHome)
	doc := parse(t, Home(p))

	sections := findAll(doc, byClass("home-teaser-section"))
	require.Len(t, sections, 4)
	assert.Len(t, findAll(doc, byClass("hero-background-animation")), 1)

	cards := findAll(doc, byClass("project-card"))
	require.Len(t, cards, TeaserProjects)
	for i, c := range cards {
		assert.Equal(t, p.Projects[i].Title, text(findAll(c, byTag("h3"))[0]))
		summary := text(findAll(c, byTag("p"))[0])
		assert.True(t, strings.HasSuffix(summary, "..."))
		assert.LessOrEqual(t, len([]rune(summary)), TeaserDescription+3)
	}

	skills := texts(findAll(doc, func(n *html.Node) bool {
		return n.Data == "li" && n.Parent != nil && hasClass(n.Parent, "skills-list-teaser")
	}))
	assert.Equal(t, p.Skills[:TeaserSkills], skills)
}

func TestHomeNavigatesToEveryOtherPage(t *testing.T) {
	doc := parse(t, Home(testProps(models.PageHome)))

	targets := map[string]bool{}
	for _, b := range findAll(doc, func(n *html.Node) bool { return n.Data == "button" && attrOf(n, "name") == "page" }) {
		targets[attrOf(b, "value")] = true
	}
	for _, p := range []models.Page{models.PageAbout, models.PageProjects, models.PageSkills, models.PageContact} {
		assert.True(t, targets[string(p)], "no teaser navigates to %s", p)
	}
}

func TestSkillsPageFullList(t *testing.T) {
	p := testProps(models.PageSkills)
	doc := parse(t, Skills(p))
	items := findAll(doc, func(n *html.Node) bool {
		return n.Data == "li" && n.Parent != nil && hasClass(n.Parent, "skills-list")
	})
	assert.Equal(t, p.Skills, texts(items))
}

func TestContactPage(t *testing.T) {
	p := testProps(models.PageContact)
	p.Profile.Social[1].URL = "https://instagram.com/aya"
	doc := parse(t, Contact(p))

	mail := findAll(doc, byClass("cta-button"))
	require.Len(t, mail, 1)
	assert.Equal(t, "mailto:aya.saad.art@example.com", attrOf(mail[0], "href"))

	links := findAll(doc, func(n *html.Node) bool { return n.Data == "a" && n.Parent != nil && hasClass(n.Parent, "social-links") })
	require.Len(t, links, 3)
	assert.Equal(t, []string{"ArtStation", "Instagram", "Behance"}, texts(links))
	assert.Equal(t, "https://instagram.com/aya", attrOf(links[1], "href"))
	assert.Equal(t, "noopener noreferrer", attrOf(links[0], "rel"))
	assert.Equal(t, "Aya's ArtStation Profile", attrOf(links[0], "aria-label"))
}

func TestAppMarksCurrentPage(t *testing.T) {
	doc := parse(t, App(testProps(models.PageSkills)))

	active := findAll(doc, byClass("active-nav-link"))
	require.Len(t, active, 1)
	assert.Equal(t, "Toolkit", text(active[0]))
	assert.Equal(t, "page", attrOf(active[0], "aria-current"))
	assert.Equal(t, "skills", attrOf(active[0], "value"))

	logo := findAll(doc, byClass("nav-logo"))
	require.Len(t, logo, 1)
	assert.Equal(t, "home", attrOf(logo[0], "value"))

	assert.Len(t, findAll(doc, byClass("skills-list")), 1)
	assert.Len(t, findAll(doc, byTag("main")), 1)

	// backdrop shapes sit directly in the container
	container := findAll(doc, byClass("portfolio-container"))[0]
	var backdrop int
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && hasClass(c, "floating-shape") {
			backdrop++
		}
	}
	assert.Equal(t, len(content.Backdrop()), backdrop)

	footer := findAll(doc, byClass("portfolio-footer"))[0]
	assert.Contains(t, text(footer), "© 2026 Aya Saad. All rights reserved.")
}

func TestRenderUnknownPageFallsBackToHome(t *testing.T) {
	doc := parse(t, Render(testProps(models.Page("gallery"))))
	assert.Len(t, findAll(doc, func(n *html.Node) bool { return attrOf(n, "id") == "hero" }), 1)
}

func TestRenderDoesNotReorderSources(t *testing.T) {
	p := testProps(models.PageProjects)
	before := append([]models.Project(nil), p.Projects...)
	_ = parse(t, App(p))
	assert.Equal(t, before, p.Projects)
}

func TestAccentColorsFollowSource(t *testing.T) {
	var a, b strings.Builder
	p := testProps(models.PageProjects)
	p.Rand = graphics.NewRNG(99)
	require.NoError(t, Projects(p).Render(&a))
	p.Rand = graphics.NewRNG(99)
	require.NoError(t, Projects(p).Render(&b))
	assert.Equal(t, a.String(), b.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 80))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "é", truncate("éa", 1))
}
