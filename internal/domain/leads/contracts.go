package leads

import "context"

// LeadService defines contact form and lead pipeline operations
type LeadService interface {
	// Submit stores a contact form submission. A filled honeypot is dropped
	// silently and Submit returns (nil, nil).
	Submit(ctx context.Context, in *LeadInput, ipAddress, userAgent string) (*Lead, error)
	List(ctx context.Context, query *LeadQuery) ([]*Lead, int64, error)
	GetByID(ctx context.Context, leadID string) (*Lead, error)
	Update(ctx context.Context, leadID string, in *LeadUpdate) (*Lead, error)
	Delete(ctx context.Context, leadID string) error
}

// LeadRepository defines the interface for Lead-related operations
type LeadRepository interface {
	Create(ctx context.Context, lead *Lead) error
	GetByID(ctx context.Context, leadID string) (*Lead, error)
	Update(ctx context.Context, lead *Lead) error
	DeleteByID(ctx context.Context, leadID string) error
	// List returns newest first
	List(ctx context.Context, query *LeadQuery) ([]*Lead, int64, error)
}
