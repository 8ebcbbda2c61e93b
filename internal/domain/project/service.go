package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rpggio/projectdash/internal/repository"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// List returns all projects in insertion order.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "getting project")
	}
	return proj, nil
}

// Create stores a new project. Validation is the caller's job.
func (s *Service) Create(ctx context.Context, fields Fields) (*Project, error) {
	proj := &Project{
		Progress:       0,
		Tasks:          0,
		CompletedTasks: 0,
		Team:           []TeamMember{},
	}
	fields.Apply(proj)

	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("project created", "id", proj.ID, "title", proj.Title)
	return proj, nil
}

// Update replaces the editable fields of an existing project.
func (s *Service) Update(ctx context.Context, id int64, fields Fields) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "loading project")
	}

	fields.Apply(proj)
	if err := s.repo.Update(ctx, proj); err != nil {
		return nil, mapNotFound(err, "updating project")
	}

	s.logger.Info("project updated", "id", id, "status", proj.Status)
	return proj, nil
}

// Delete removes a project.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "deleting project")
	}
	s.logger.Info("project deleted", "id", id)
	return nil
}

// Seed stores complete records, e.g. the sample dashboard. IDs are reassigned.
func (s *Service) Seed(ctx context.Context, projects []Project) ([]Project, error) {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if err := CheckInvariants(p); err != nil {
			return out, fmt.Errorf("seeding %q: %w", p.Title, err)
		}
		rec := p.Clone()
		rec.ID = 0
		if rec.Team == nil {
			rec.Team = []TeamMember{}
		}
		if err := s.repo.Create(ctx, &rec); err != nil {
			return out, fmt.Errorf("seeding %q: %w", p.Title, err)
		}
		out = append(out, rec)
	}
	s.logger.Debug("projects seeded", "count", len(out))
	return out, nil
}

func mapNotFound(err error, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProjectNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
