package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ayasaad.dev/internal/models"
	"ayasaad.dev/internal/navigation"
	"ayasaad.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.projectService.GetAll())
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, r, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "Failed to load project")
		return
	}

	respondJSON(w, r, http.StatusOK, project)
}

// SkillHandler handles skill endpoints
type SkillHandler struct {
	skillService *services.SkillService
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(ss *services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: ss}
}

// ListSkills handles GET /api/skills?limit=n
func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	all := h.skillService.GetAll()
	limit := clamp(parseIntParam(r, "limit", len(all)), 0, len(all))
	respondJSON(w, r, http.StatusOK, h.skillService.Take(limit))
}

// PageInfo describes one navigable page
type PageInfo struct {
	ID    models.Page `json:"id"`
	Title string      `json:"title"`
}

// ListPages handles GET /api/pages
func ListPages(w http.ResponseWriter, r *http.Request) {
	pages := make([]PageInfo, 0, len(models.Pages))
	for _, p := range models.Pages {
		pages = append(pages, PageInfo{ID: p, Title: navigation.TitleFor(p)})
	}
	respondJSON(w, r, http.StatusOK, pages)
}
