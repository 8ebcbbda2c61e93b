package project

import "context"

// Repository provides storage for projects. Create assigns the ID.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	Get(ctx context.Context, id int64) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	Update(ctx context.Context, proj *Project) error
	Delete(ctx context.Context, id int64) error
}
