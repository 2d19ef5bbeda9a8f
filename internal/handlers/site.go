package handlers

import (
	"io"
	"net/http"

	"ayasaad.dev/internal/graphics"
	"ayasaad.dev/internal/middleware"
	"ayasaad.dev/internal/models"
	"ayasaad.dev/internal/mount"
	"ayasaad.dev/internal/navigation"
	"ayasaad.dev/internal/pages"
	"ayasaad.dev/internal/services"
)

// SessionCookie names the cookie carrying the visitor's session id
const SessionCookie = "portfolio_session"

// Site renders the mounted document for a page
type Site struct {
	root     *mount.Root
	projects *services.ProjectService
	skills   *services.SkillService
	profile  models.Profile
	seed     uint64
}

// NewSite creates a Site. A zero seed jitters accents from the clock.
func NewSite(root *mount.Root, ps *services.ProjectService, ss *services.SkillService, profile models.Profile, seed uint64) *Site {
	return &Site{root: root, projects: ps, skills: ss, profile: profile, seed: seed}
}

// Render writes the shell with page mounted and the document title set
func (s *Site) Render(w io.Writer, page models.Page, title string) error {
	props := pages.Props{
		Current:  page,
		Navigate: pages.FormNav("/navigate"),
		Profile:  s.profile,
		Projects: s.projects.GetAll(),
		Skills:   s.skills.GetAll(),
		Rand:     graphics.NewRNG(s.seed),
	}
	return s.root.Render(w, title, pages.App(props))
}

// SiteHandler serves the app and its navigation form
type SiteHandler struct {
	site     *Site
	sessions *navigation.Sessions
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(site *Site, sessions *navigation.Sessions) *SiteHandler {
	return &SiteHandler{site: site, sessions: sessions}
}

// Index handles GET /
func (h *SiteHandler) Index(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	var (
		page  models.Page
		title string
	)
	sess.Switcher.View(func(p models.Page) {
		page = p
		title = sess.Viewport.Title
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.site.Render(w, page, title); err != nil {
		middleware.GetLogger(r.Context()).Error("failed to render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Navigate handles POST /navigate
func (h *SiteHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	raw := r.PostFormValue("page")
	page, ok := models.ParsePage(raw)
	if !ok {
		middleware.GetLogger(r.Context()).Warn("unknown page, falling back to home", "page", raw)
		page = models.PageHome
	}
	sess.Switcher.Navigate(page)

	http.Redirect(w, r, "/#top", http.StatusSeeOther)
}

// session returns the visitor's session, starting one if needed
func (h *SiteHandler) session(w http.ResponseWriter, r *http.Request) *navigation.Session {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if sess, ok := h.sessions.Get(c.Value); ok {
			return sess
		}
	}

	sess := h.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	middleware.GetLogger(r.Context()).Debug("session started", "session", sess.ID)
	return sess
}
