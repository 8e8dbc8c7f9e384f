package posts

import (
	"context"
	"time"
)

// PostService defines blog post operations.
type PostService interface {
	// List returns a page of posts and the total count. Without
	// includeUnpublished only published posts are returned.
	List(ctx context.Context, query *PostQuery, includeUnpublished bool) ([]*Post, int64, error)

	// GetByID returns a post; unpublished posts are hidden unless includeUnpublished.
	GetByID(ctx context.Context, postID string, includeUnpublished bool) (*Post, error)

	// GetBySlug returns a published post and counts the view.
	GetBySlug(ctx context.Context, slug string) (*Post, error)

	Create(ctx context.Context, authorID string, in *PostInput) (*Post, error)
	Update(ctx context.Context, postID string, in *PostUpdate) (*Post, error)
	Delete(ctx context.Context, postID string) error
	Publish(ctx context.Context, postID string) (*Post, error)
	Unpublish(ctx context.Context, postID string) (*Post, error)

	// PublishScheduled publishes every scheduled post due at now and returns how many were published.
	PublishScheduled(ctx context.Context, now time.Time) (int, error)
}

// PostRepository defines the interface for Post-related operations
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, postID string) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	Update(ctx context.Context, post *Post) error
	// DeleteByID deletes a Post and its comments
	DeleteByID(ctx context.Context, postID string) error
	List(ctx context.Context, query *PostQuery) ([]*Post, int64, error)
	// SlugExists reports whether another post than excludeID uses slug
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	// IncrementViews adds one view atomically
	IncrementViews(ctx context.Context, postID string) error
	// PublishScheduled flips due scheduled posts to published in one statement
	// and returns the posts it changed.
	PublishScheduled(ctx context.Context, now time.Time) ([]*Post, error)
}

// ContentProcessor normalises post content to Markdown
type ContentProcessor interface {
	Process(content, format string) (*ProcessedContent, error)
}
