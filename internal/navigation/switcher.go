// Package navigation owns the current-page state. A Switcher is the single
// writer of a visitor's page identity; renderers only ever read it.
package navigation

import (
	"sync"

	"ayasaad.dev/internal/models"
)

// Switcher holds the current page and applies each navigation to its Window
type Switcher struct {
	mu      sync.RWMutex
	current models.Page
	window  Window
}

// NewSwitcher creates a Switcher on the home page
func NewSwitcher(w Window) *Switcher {
	s := &Switcher{current: models.PageHome, window: w}
	w.SetTitle(TitleFor(s.current))
	return s
}

// Navigate makes p the current page, updates the title and scrolls to the top.
// Any page is reachable from any page.
func (s *Switcher) Navigate(p models.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = p
	s.window.SetTitle(TitleFor(p))
	s.window.ScrollTo(0, 0)
}

// Current returns the current page
func (s *Switcher) Current() models.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// View runs fn with the current page while holding the read lock, so the
// page and window state it observes belong to the same navigation
func (s *Switcher) View(fn func(p models.Page)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.current)
}
