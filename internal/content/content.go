// Package content holds the site's literal copy: projects, skills, the
// About narrative and the decorative shape layout. Everything is fixed at
// start; accessors hand out copies.
package content

import (
	"time"

	"ayasaad.dev/internal/graphics"
	"ayasaad.dev/internal/models"
)

// AboutSnippet is the short introduction used by the home teaser
const AboutSnippet = "I'm Aya Saad, a product designer based in Beirut. My journey in design began with a fascination for how objects shape our daily lives. I strive to design products that feel as intuitive as they are beautiful, blending structured thinking with unexpected creative twists."

var projects = []models.Project{
	{ID: "proj1", Title: "Celestial Harmonies", Description: "An interactive visualizer translating music into flowing nebulae.", Graphic: "celestial-harmonies", Link: "#project-alpha-details"},
	{ID: "proj2", Title: "Whispering Woods", Description: "A concept art series for an unannounced fantasy game.", Graphic: "whispering-woods", Link: "#project-beta-details"},
	{ID: "proj3", Title: "Ephemeral Glyphs", Description: "A collection of animated symbols that react to user interaction.", Graphic: "ephemeral-glyphs", Link: "#project-gamma-details"},
	{ID: "proj4", Title: "Dreamscapes UI", Description: "User interface concepts for a meditative application.", Graphic: "dreamscapes-ui", Link: "#project-delta-details"},
}

var skills = []string{
	"Digital Painting (Photoshop, Procreate, Clip Studio Paint)",
	"Ethereal & Fantasy Illustration",
	"Abstract Concept Art",
	"Gradient Artistry & Advanced Color Theory",
	"Character Design Fundamentals",
	"UI/UX for Dreamlike Interfaces",
	"Motion Graphics Basics (After Effects)",
	"3D Sculpting Basics (Blender)",
	"Vector Graphics & SVG Animation",
}

// Section is one numbered block of the About narrative
type Section struct {
	ID      string
	Heading string
	Body    string // markdown
	Variant graphics.Variant
	Stroke  string
}

var about = []Section{
	{
		ID:      "about-who-i-am",
		Heading: "1. Who I Am",
		Body:    "I'm Aya Saad, a product designer based in Beirut and a proud graduate of ALBA — the *Académie Libanaise des Beaux-Arts*. My journey in design began with a fascination for how objects shape our daily lives. Through years of exploration and hands-on experience, I’ve developed a strong foundation in design thinking, aesthetics, and functionality.",
		Variant: graphics.VariantOne,
		Stroke:  graphics.RGBA(graphics.Primary, 0.6),
	},
	{
		ID:      "about-creative-perspective",
		Heading: "2. A Creative Perspective",
		Body:    "I’m known for bringing a unique and artistic edge to every project I take on. With a deep appreciation for both form and emotion, I strive to design products that feel as intuitive as they are beautiful. My style often blends structured thinking with unexpected creative twists — something that reflects both my personality and my process.",
		Variant: graphics.VariantTwo,
		Stroke:  graphics.RGBA(graphics.Secondary, 0.6),
	},
	{
		ID:      "about-design-intention",
		Heading: "3. Design With Intention",
		Body:    "For me, design is more than problem-solving; it’s about creating meaningful connections between people and the things they use. Whether I’m working on a concept, prototype, or finished product, I aim to craft experiences that are thoughtful, sustainable, and emotionally resonant.",
		Variant: graphics.VariantThree,
		Stroke:  graphics.RGBA(graphics.Pink, 0.7),
	},
}

var backdrop = []graphics.Shape{
	{Size: 200, Color: "rgba(184, 162, 217, 0.1)", Top: "5%", Left: "10%", Kind: graphics.Organic1},
	{Size: 280, Color: "rgba(160, 210, 235, 0.08)", Top: "15%", Right: "12%", Delay: time.Second, Kind: graphics.Organic2},
	{Size: 120, Color: "rgba(247, 197, 216, 0.12)", Top: "55%", Left: "8%", Delay: 500 * time.Millisecond, Kind: graphics.Sphere},
	{Size: 300, Color: "rgba(170, 230, 200, 0.07)", Bottom: "8%", Right: "15%", Delay: 1500 * time.Millisecond, Kind: graphics.Organic1},
	{Size: 150, Color: "rgba(255, 223, 186, 0.1)", Top: "70%", Left: "30%", Delay: 200 * time.Millisecond, Kind: graphics.Sphere},
	{Size: 220, Color: "rgba(176, 200, 230, 0.09)", Top: "35%", Left: "45%", Delay: 1200 * time.Millisecond, Kind: graphics.Organic2},
}

// DefaultProfile is used when the config file does not override it.
// Social URLs are placeholders until real profiles are configured.
func DefaultProfile() models.Profile {
	return models.Profile{
		Name:  "Aya Saad",
		Email: "aya.saad.art@example.com",
		Social: []models.SocialLink{
			{Label: "ArtStation", URL: "#", Aria: "Aya's ArtStation Profile"},
			{Label: "Instagram", URL: "#", Aria: "Aya's Instagram Profile"},
			{Label: "Behance", URL: "#", Aria: "Aya's Behance Profile"},
		},
	}
}

// Projects returns the project records in display order
func Projects() []models.Project {
	return append([]models.Project(nil), projects...)
}

// Skills returns the skill list in display order
func Skills() []string {
	return append([]string(nil), skills...)
}

// About returns the narrative sections of the About page
func About() []Section {
	return append([]Section(nil), about...)
}

// Backdrop returns the global floating shapes behind every page
func Backdrop() []graphics.Shape {
	return append([]graphics.Shape(nil), backdrop...)
}
