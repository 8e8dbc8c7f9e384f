package projects

import "context"

// ProjectService defines portfolio project operations
type ProjectService interface {
	List(ctx context.Context, query *ProjectQuery, includeUnpublished bool) ([]*Project, int64, error)
	GetByID(ctx context.Context, projectID string, includeUnpublished bool) (*Project, error)
	// GetBySlug returns a published project
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	Create(ctx context.Context, in *ProjectInput) (*Project, error)
	Update(ctx context.Context, projectID string, in *ProjectUpdate) (*Project, error)
	Delete(ctx context.Context, projectID string) error
}

// ProjectRepository defines the interface for Project-related operations
type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, projectID string) (*Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	Update(ctx context.Context, project *Project) error
	DeleteByID(ctx context.Context, projectID string) error
	// List orders by display_order ascending, then newest first
	List(ctx context.Context, query *ProjectQuery) ([]*Project, int64, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}
