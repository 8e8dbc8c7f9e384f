package comments

import "context"

// CommentService defines comment submission and moderation
type CommentService interface {
	// Submit stores a pending comment on a published post
	Submit(ctx context.Context, in *CommentInput, ipAddress string) (*Comment, error)
	// List returns comments oldest first. Without moderator rights only
	// approved comments of a single post are visible.
	List(ctx context.Context, query *CommentQuery, moderator bool) ([]*Comment, int64, error)
	UpdateStatus(ctx context.Context, commentID string, in *StatusUpdate) (*Comment, error)
	Delete(ctx context.Context, commentID string) error
}

// CommentRepository defines the interface for Comment-related operations
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, commentID string) (*Comment, error)
	Update(ctx context.Context, comment *Comment) error
	// DeleteByID deletes a comment and its direct replies
	DeleteByID(ctx context.Context, commentID string) error
	List(ctx context.Context, query *CommentQuery) ([]*Comment, int64, error)
}
