package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/domain/events"
	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"
	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"github.com/google/uuid"
)

// postService implements the PostService interface
type postService struct {
	repo      posts.PostRepository
	processor posts.ContentProcessor
	audit     auditlogs.AuditLogService
	notifier  notifications.NotificationService
	publisher events.Publisher
	logger    logger.Logger
	now       func() time.Time
}

// NewPostService creates a new instance of PostService
func NewPostService(
	repo posts.PostRepository,
	processor posts.ContentProcessor,
	audit auditlogs.AuditLogService,
	notifier notifications.NotificationService,
	publisher events.Publisher,
	logger logger.Logger,
) (posts.PostService, error) {
	return &postService{
		repo:      repo,
		processor: processor,
		audit:     audit,
		notifier:  notifier,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}, nil
}

// List returns a page of posts. Callers without editor rights only see published posts.
func (s *postService) List(ctx context.Context, query *posts.PostQuery, includeUnpublished bool) ([]*posts.Post, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	if !includeUnpublished {
		query.Status = posts.StatusPublished
	}
	return s.repo.List(ctx, query)
}

// GetByID returns a post, hiding unpublished ones unless includeUnpublished
func (s *postService) GetByID(ctx context.Context, postID string, includeUnpublished bool) (*posts.Post, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !includeUnpublished && !post.IsPublished() {
		return nil, errs.NotFound("post", postID)
	}
	return post, nil
}

// GetBySlug returns a published post and counts the view
func (s *postService) GetBySlug(ctx context.Context, slug string) (*posts.Post, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished() {
		return nil, errs.NotFound("post", slug)
	}

	if err := s.repo.IncrementViews(ctx, post.ID); err != nil {
		s.logger.Warn("Failed to count view of post ", post.ID, ": ", err)
	} else {
		post.Views++
	}
	return post, nil
}

// Create stores a new post, deriving slug, excerpt and reading time when needed
func (s *postService) Create(ctx context.Context, authorID string, in *posts.PostInput) (*posts.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	processed, err := s.process(in.Content, in.ContentFormat)
	if err != nil {
		return nil, err
	}

	slug, err := resolveSlug(ctx, in.Slug, in.Title, "", s.repo.SlugExists)
	if err != nil {
		return nil, err
	}

	now := s.now()
	post := &posts.Post{
		ID:             uuid.NewString(),
		Title:          strings.TrimSpace(in.Title),
		Slug:           slug,
		Excerpt:        strings.TrimSpace(in.Excerpt),
		Content:        processed.Markdown,
		CoverImage:     in.CoverImage,
		Tags:           normalizeTags(in.Tags),
		AuthorID:       authorID,
		ReadingTime:    posts.ReadingTime(processed.PlainText),
		SEOTitle:       in.SEOTitle,
		SEODescription: in.SEODescription,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if post.Excerpt == "" {
		post.Excerpt = posts.Excerpt(processed.PlainText, posts.ExcerptLength)
	}

	status := in.Status
	if status == "" {
		status = posts.StatusDraft
	}
	if err := post.ApplyStatus(status, in.ScheduledAt, now); err != nil {
		return nil, err
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, auditlogs.ActionPostCreated, auditlogs.ResourcePost, post.ID, postMetadata(post))
	if post.IsPublished() {
		publishEvent(ctx, s.publisher, s.logger, events.SubjectPostPublished, post)
	}
	return post, nil
}

// Update applies the non-nil fields of in
func (s *postService) Update(ctx context.Context, postID string, in *posts.PostUpdate) (*posts.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	wasPublished := post.IsPublished()

	if in.Title != nil {
		post.Title = strings.TrimSpace(*in.Title)
	}
	if in.Slug != nil && *in.Slug != post.Slug {
		slug, err := resolveSlug(ctx, *in.Slug, post.Title, post.ID, s.repo.SlugExists)
		if err != nil {
			return nil, err
		}
		post.Slug = slug
	}

	var plainText *string
	if in.Content != nil {
		processed, err := s.process(*in.Content, in.ContentFormat)
		if err != nil {
			return nil, err
		}
		post.Content = processed.Markdown
		post.ReadingTime = posts.ReadingTime(processed.PlainText)
		plainText = &processed.PlainText
	}
	if in.Excerpt != nil {
		post.Excerpt = strings.TrimSpace(*in.Excerpt)
	}
	if post.Excerpt == "" {
		if plainText == nil {
			processed, err := s.process(post.Content, posts.FormatMarkdown)
			if err != nil {
				return nil, err
			}
			plainText = &processed.PlainText
		}
		post.Excerpt = posts.Excerpt(*plainText, posts.ExcerptLength)
	}

	if in.CoverImage != nil {
		post.CoverImage = emptyToNil(*in.CoverImage)
	}
	if in.Tags != nil {
		post.Tags = normalizeTags(*in.Tags)
	}
	if in.SEOTitle != nil {
		post.SEOTitle = emptyToNil(*in.SEOTitle)
	}
	if in.SEODescription != nil {
		post.SEODescription = emptyToNil(*in.SEODescription)
	}

	now := s.now()
	if in.Status != nil || in.ScheduledAt != nil {
		status := post.Status
		if in.Status != nil {
			status = *in.Status
		}
		scheduledAt := in.ScheduledAt
		if scheduledAt == nil {
			scheduledAt = post.ScheduledAt
		}
		if err := post.ApplyStatus(status, scheduledAt, now); err != nil {
			return nil, err
		}
	}
	post.UpdatedAt = now

	if err := post.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, auditlogs.ActionPostUpdated, auditlogs.ResourcePost, post.ID, postMetadata(post))
	if !wasPublished && post.IsPublished() {
		publishEvent(ctx, s.publisher, s.logger, events.SubjectPostPublished, post)
	}
	return post, nil
}

// Delete removes a post and its comments
func (s *postService) Delete(ctx context.Context, postID string) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, postID); err != nil {
		return err
	}

	s.audit.Record(ctx, auditlogs.ActionPostDeleted, auditlogs.ResourcePost, postID, postMetadata(post))
	return nil
}

// Publish makes a post public now. Publishing a published post changes nothing.
func (s *postService) Publish(ctx context.Context, postID string) (*posts.Post, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.IsPublished() {
		return post, nil
	}

	now := s.now()
	if err := post.ApplyStatus(posts.StatusPublished, nil, now); err != nil {
		return nil, err
	}
	post.UpdatedAt = now

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, auditlogs.ActionPostPublished, auditlogs.ResourcePost, post.ID, postMetadata(post))
	publishEvent(ctx, s.publisher, s.logger, events.SubjectPostPublished, post)
	return post, nil
}

// Unpublish moves a post back to draft and clears its publication date
func (s *postService) Unpublish(ctx context.Context, postID string) (*posts.Post, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := post.ApplyStatus(posts.StatusDraft, nil, now); err != nil {
		return nil, err
	}
	post.PublishedAt = nil
	post.UpdatedAt = now

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, auditlogs.ActionPostUnpublished, auditlogs.ResourcePost, post.ID, postMetadata(post))
	return post, nil
}

// PublishScheduled publishes every scheduled post due at now. Auditing and
// notification failures are logged and do not undo the publish.
func (s *postService) PublishScheduled(ctx context.Context, now time.Time) (int, error) {
	published, err := s.repo.PublishScheduled(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to publish scheduled posts: %w", err)
	}

	systemCtx := auditlogs.WithActor(ctx, nil)
	for _, post := range published {
		metadata := postMetadata(post)
		if post.ScheduledAt != nil {
			metadata["scheduled_at"] = post.ScheduledAt.Format(time.RFC3339)
		}
		s.audit.Record(systemCtx, auditlogs.ActionPostAutoPublished, auditlogs.ResourcePost, post.ID, metadata)

		if s.notifier != nil {
			err := s.notifier.NotifyAdmins(ctx, notifications.TypePostPublished,
				"Scheduled post published",
				fmt.Sprintf("%q is now live", post.Title),
				stringPtr("/blog/"+post.Slug))
			if err != nil {
				s.logger.Error("Failed to notify admins about post ", post.ID, ": ", err)
			}
		}

		publishEvent(ctx, s.publisher, s.logger, events.SubjectPostPublished, post)
	}

	return len(published), nil
}

func (s *postService) process(content, format string) (*posts.ProcessedContent, error) {
	processed, err := s.processor.Process(content, format)
	if err != nil {
		return nil, errs.Invalid("content", "content could not be processed: %v", err)
	}
	return processed, nil
}

func postMetadata(post *posts.Post) map[string]interface{} {
	return map[string]interface{}{
		"title":  post.Title,
		"slug":   post.Slug,
		"status": post.Status,
	}
}

// normalizeTags trims tags, drops empty and duplicate ones and never returns nil
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func emptyToNil(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
