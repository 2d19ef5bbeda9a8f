package services

import (
	"errors"
	"fmt"

	"ayasaad.dev/internal/models"
)

// ErrProjectNotFound is returned when no project has the requested ID
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	projects []models.Project
}

// NewProjectService creates a new ProjectService over a fixed project list
func NewProjectService(projects []models.Project) *ProjectService {
	return &ProjectService{projects: append([]models.Project(nil), projects...)}
}

// GetAll returns all projects in display order
func (s *ProjectService) GetAll() []models.Project {
	return append([]models.Project(nil), s.projects...)
}

// Take returns the first n projects, or all of them when n exceeds the count
func (s *ProjectService) Take(n int) []models.Project {
	out := make([]models.Project, bound(n, len(s.projects)))
	copy(out, s.projects)
	return out
}

// Count returns the number of projects
func (s *ProjectService) Count() int {
	return len(s.projects)
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	for i := range s.projects {
		if s.projects[i].ID == id {
			p := s.projects[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

// bound clamps a prefix length to [0, size]
func bound(n, size int) int {
	if n < 0 {
		return 0
	}
	if n > size {
		return size
	}
	return n
}
