package models

// Project represents a portfolio creation
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Graphic     string `json:"graphic"` // graphics registry name
	Link        string `json:"link"`
}

// SocialLink is an outbound profile link on the Connect page
type SocialLink struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
	Aria  string `json:"aria" yaml:"aria"`
}

// Profile holds the site owner's public details
type Profile struct {
	Name   string       `json:"name" yaml:"name"`
	Email  string       `json:"email" yaml:"email"`
	Social []SocialLink `json:"social" yaml:"social"`
}
