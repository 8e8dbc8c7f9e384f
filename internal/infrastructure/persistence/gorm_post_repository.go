package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormPostRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPostRepository creates a new GORM-based PostRepository implementation
func NewGormPostRepository(db *gorm.DB, logger logger.Logger) (posts.PostRepository, error) {
	return &gormPostRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPostRepository) Create(ctx context.Context, post *posts.Post) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PostModel{}
	model.FromDomain(post)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.Conflict("slug %q is already in use", post.Slug)
		}
		return fmt.Errorf("failed to create post: %w", err)
	}

	r.logger.Info("Created post with id ", post.ID)
	return nil
}

func (r *gormPostRepository) GetByID(ctx context.Context, postID string) (*posts.Post, error) {
	var model models.PostModel
	if err := r.db.WithContext(ctx).Where("id = ?", postID).First(&model).Error; err != nil {
		return nil, translateError(err, "post", postID)
	}
	return model.ToDomain(), nil
}

func (r *gormPostRepository) GetBySlug(ctx context.Context, slug string) (*posts.Post, error) {
	var model models.PostModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post with slug %s %w", slug, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPostRepository) Update(ctx context.Context, post *posts.Post) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PostModel{}
	model.FromDomain(post)

	// views are only changed by IncrementViews
	result := r.db.WithContext(ctx).Model(model).Select("*").Omit("views", "created_at").Updates(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.Conflict("slug %q is already in use", post.Slug)
		}
		return fmt.Errorf("failed to update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("post", post.ID)
	}

	r.logger.Info("Updated post with id ", post.ID)
	return nil
}

func (r *gormPostRepository) DeleteByID(ctx context.Context, postID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}

		result := tx.Where("id = ?", postID).Delete(&models.PostModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errs.NotFound("post", postID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted post with id ", postID)
	return nil
}

func (r *gormPostRepository) List(ctx context.Context, query *posts.PostQuery) ([]*posts.Post, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.PostModel{})

	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.Tag != "" {
		dbQuery = dbQuery.Where("tags LIKE ? ESCAPE '\\'", jsonElementPattern(query.Tag))
	}
	if query.Search != "" {
		pattern := containsPattern(query.Search)
		dbQuery = dbQuery.Where(
			"LOWER(title) LIKE ? ESCAPE '\\' OR LOWER(excerpt) LIKE ? ESCAPE '\\' OR LOWER(content) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern,
		)
	}

	// sort_by and sort_order are restricted to known values by query validation
	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortOrder := query.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}

	var modelList []*models.PostModel
	total, err := findPage(dbQuery, query.Page, fmt.Sprintf("%s %s, id asc", sortBy, sortOrder), &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch posts: %w", err)
	}

	domainList := make([]*posts.Post, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormPostRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64
	dbQuery := r.db.WithContext(ctx).Model(&models.PostModel{}).Where("slug = ?", slug)
	if excludeID != "" {
		dbQuery = dbQuery.Where("id <> ?", excludeID)
	}
	if err := dbQuery.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}

func (r *gormPostRepository) IncrementViews(ctx context.Context, postID string) error {
	result := r.db.WithContext(ctx).Model(&models.PostModel{}).
		Where("id = ?", postID).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("failed to increment views: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("post", postID)
	}
	return nil
}

func (r *gormPostRepository) PublishScheduled(ctx context.Context, now time.Time) ([]*posts.Post, error) {
	now = now.UTC()

	var modelList []*models.PostModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []string
		err := tx.Model(&models.PostModel{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("status = ? AND scheduled_at <= ?", posts.StatusScheduled, now).
			Pluck("id", &ids).Error
		if err != nil {
			return fmt.Errorf("failed to select due posts: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		err = tx.Model(&models.PostModel{}).
			Where("id IN ? AND status = ?", ids, posts.StatusScheduled).
			Updates(map[string]interface{}{
				"status":       posts.StatusPublished,
				"published_at": now,
				"updated_at":   now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to publish posts: %w", err)
		}

		return tx.Where("id IN ?", ids).Order("scheduled_at asc").Find(&modelList).Error
	})
	if err != nil {
		return nil, err
	}

	domainList := make([]*posts.Post, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	if len(domainList) > 0 {
		r.logger.Info("Published scheduled posts: ", len(domainList))
	}
	return domainList, nil
}
