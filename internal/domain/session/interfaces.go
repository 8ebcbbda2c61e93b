package session

import (
	"context"

	"github.com/rpggio/projectdash/internal/domain/project"
)

// ProjectStore is the part of the project service a controller drives.
type ProjectStore interface {
	List(ctx context.Context) ([]project.Project, error)
	Get(ctx context.Context, id int64) (*project.Project, error)
	Create(ctx context.Context, fields project.Fields) (*project.Project, error)
	Update(ctx context.Context, id int64, fields project.Fields) (*project.Project, error)
	Delete(ctx context.Context, id int64) error
}
