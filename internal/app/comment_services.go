package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/domain/comments"
	"github.com/MGTheTrain/portfolio-api/internal/domain/events"
	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"
	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/strutil"

	"github.com/google/uuid"
)

// commentService implements the CommentService interface
type commentService struct {
	repo      comments.CommentRepository
	postRepo  posts.PostRepository
	audit     auditlogs.AuditLogService
	notifier  notifications.NotificationService
	publisher events.Publisher
	logger    logger.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	repo comments.CommentRepository,
	postRepo posts.PostRepository,
	audit auditlogs.AuditLogService,
	notifier notifications.NotificationService,
	publisher events.Publisher,
	logger logger.Logger,
) (comments.CommentService, error) {
	return &commentService{
		repo:      repo,
		postRepo:  postRepo,
		audit:     audit,
		notifier:  notifier,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Submit stores a pending comment on a published post. A parent comment must
// belong to the same post.
func (s *commentService) Submit(ctx context.Context, in *comments.CommentInput, ipAddress string) (*comments.Comment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished() {
		return nil, errs.NotFound("post", in.PostID)
	}

	if in.ParentID != nil {
		parent, err := s.repo.GetByID(ctx, *in.ParentID)
		if err != nil && !errors.Is(err, errs.ErrNotFound) {
			return nil, err
		}
		if parent == nil || parent.PostID != post.ID {
			return nil, errs.Invalid("parent_id", "parent_id must reference a comment on the same post")
		}
	}

	now := time.Now().UTC()
	comment := &comments.Comment{
		ID:          uuid.NewString(),
		PostID:      post.ID,
		ParentID:    in.ParentID,
		AuthorName:  strings.TrimSpace(in.AuthorName),
		AuthorEmail: users.NormalizeEmail(in.AuthorEmail),
		Content:     strings.TrimSpace(in.Content),
		Status:      comments.StatusPending,
		IPAddress:   strutil.Truncate(ipAddress, 64),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	title := fmt.Sprintf("New comment on %q", post.Title)
	message := fmt.Sprintf("%s: %s", comment.AuthorName, comment.Content)
	if err := s.notifier.NotifyAdmins(ctx, notifications.TypeCommentCreated, title, message, stringPtr("/admin/comments?post_id="+post.ID)); err != nil {
		s.logger.Error("Failed to notify admins about comment ", comment.ID, ": ", err)
	}
	publishEvent(ctx, s.publisher, s.logger, events.SubjectCommentCreated, comment)

	return comment, nil
}

// List returns comments oldest first. Visitors only see the approved comments of one post.
func (s *commentService) List(ctx context.Context, query *comments.CommentQuery, moderator bool) ([]*comments.Comment, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	if !moderator {
		if query.PostID == "" {
			return nil, 0, errs.Invalid("post_id", "post_id is required")
		}
		query.Status = comments.StatusApproved
	}
	return s.repo.List(ctx, query)
}

// UpdateStatus moderates a comment
func (s *commentService) UpdateStatus(ctx context.Context, commentID string, in *comments.StatusUpdate) (*comments.Comment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	metadata := map[string]interface{}{
		"post_id":     comment.PostID,
		"from_status": comment.Status,
		"to_status":   in.Status,
	}
	comment.Status = in.Status
	comment.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, auditlogs.ActionCommentModerated, auditlogs.ResourceComment, comment.ID, metadata)
	return comment, nil
}

// Delete removes a comment and its direct replies
func (s *commentService) Delete(ctx context.Context, commentID string) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, commentID); err != nil {
		return err
	}

	s.audit.Record(ctx, auditlogs.ActionCommentDeleted, auditlogs.ResourceComment, commentID, map[string]interface{}{"post_id": comment.PostID})
	return nil
}
