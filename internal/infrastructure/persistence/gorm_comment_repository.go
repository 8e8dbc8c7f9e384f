package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/portfolio-api/internal/domain/comments"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCommentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCommentRepository creates a new GORM-based CommentRepository implementation
func NewGormCommentRepository(db *gorm.DB, logger logger.Logger) (comments.CommentRepository, error) {
	return &gormCommentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCommentRepository) Create(ctx context.Context, comment *comments.Comment) error {
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CommentModel{}
	model.FromDomain(comment)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	r.logger.Info("Created comment with id ", comment.ID)
	return nil
}

func (r *gormCommentRepository) GetByID(ctx context.Context, commentID string) (*comments.Comment, error) {
	var model models.CommentModel
	if err := r.db.WithContext(ctx).Where("id = ?", commentID).First(&model).Error; err != nil {
		return nil, translateError(err, "comment", commentID)
	}
	return model.ToDomain(), nil
}

func (r *gormCommentRepository) Update(ctx context.Context, comment *comments.Comment) error {
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CommentModel{}
	model.FromDomain(comment)

	result := r.db.WithContext(ctx).Model(model).Select("*").Omit("created_at").Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("comment", comment.ID)
	}
	return nil
}

func (r *gormCommentRepository) DeleteByID(ctx context.Context, commentID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? OR parent_id = ?", commentID, commentID).
		Delete(&models.CommentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("comment", commentID)
	}

	r.logger.Info("Deleted comment with id ", commentID)
	return nil
}

func (r *gormCommentRepository) List(ctx context.Context, query *comments.CommentQuery) ([]*comments.Comment, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.CommentModel{})

	if query.PostID != "" {
		dbQuery = dbQuery.Where("post_id = ?", query.PostID)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	var modelList []*models.CommentModel
	total, err := findPage(dbQuery, query.Page, "created_at asc, id asc", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch comments: %w", err)
	}

	domainList := make([]*comments.Comment, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}
