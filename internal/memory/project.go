// Package memory keeps projects in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/rpggio/projectdash/internal/domain/project"
	"github.com/rpggio/projectdash/internal/repository"
)

// ProjectRepository implements project.Repository on an ordered slice
type ProjectRepository struct {
	mu       sync.Mutex
	projects []project.Project
	lastID   int64
}

// NewProjectRepository creates an empty ProjectRepository
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// Create appends a project and assigns the next ID. IDs are never reused.
func (r *ProjectRepository) Create(_ context.Context, proj *project.Project) error {
	if proj == nil {
		return repository.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	proj.ID = r.lastID
	r.projects = append(r.projects, proj.Clone())
	return nil
}

// Get returns a copy of the project with the given ID
func (r *ProjectRepository) Get(_ context.Context, id int64) (*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	proj := r.projects[i].Clone()
	return &proj, nil
}

// List returns copies of all projects in insertion order
func (r *ProjectRepository) List(_ context.Context) ([]project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]project.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p.Clone())
	}
	return out, nil
}

// Update replaces the stored project in place, keeping its position
func (r *ProjectRepository) Update(_ context.Context, proj *project.Project) error {
	if proj == nil {
		return repository.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(proj.ID)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.projects[i] = proj.Clone()
	return nil
}

// Delete removes the project with the given ID
func (r *ProjectRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.projects = append(r.projects[:i], r.projects[i+1:]...)
	return nil
}

func (r *ProjectRepository) indexOf(id int64) int {
	for i := range r.projects {
		if r.projects[i].ID == id {
			return i
		}
	}
	return -1
}
