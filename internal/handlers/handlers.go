package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ayasaad.dev/internal/config"
	"ayasaad.dev/internal/content"
	"ayasaad.dev/internal/middleware"
	"ayasaad.dev/internal/mount"
	"ayasaad.dev/internal/navigation"
	"ayasaad.dev/internal/services"
	"ayasaad.dev/web"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, root *mount.Root, sessions *navigation.Sessions) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)

	// Initialize services
	projectService := services.NewProjectService(content.Projects())
	skillService := services.NewSkillService(content.Skills())

	// Initialize handlers
	site := NewSite(root, projectService, skillService, cfg.Profile, cfg.Seed)
	siteHandler := NewSiteHandler(site, sessions)
	projectHandler := NewProjectHandler(projectService)
	skillHandler := NewSkillHandler(skillService)
	graphicsHandler := NewGraphicsHandler()

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/skills", skillHandler.ListSkills)
		r.Get("/pages", ListPages)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Get("/graphics/{name}", graphicsHandler.GetGraphic)

	// Static files
	fileServer := http.FileServer(http.FS(web.Static()))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// The mounted app
	r.Get("/", siteHandler.Index)
	r.Post("/navigate", siteHandler.Navigate)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		middleware.GetLogger(r.Context()).Error("failed to encode JSON", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, map[string]string{"error": message})
}

// parseIntParam reads an integer query param, returning defaultVal if absent or invalid
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// clamp limits a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

