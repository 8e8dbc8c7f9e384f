package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/analytics"
	"github.com/MGTheTrain/portfolio-api/internal/domain/comments"
	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAnalyticsRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAnalyticsRepository creates a new GORM-based AnalyticsRepository implementation
func NewGormAnalyticsRepository(db *gorm.DB, logger logger.Logger) (analytics.AnalyticsRepository, error) {
	return &gormAnalyticsRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAnalyticsRepository) CreateVisit(ctx context.Context, visit *analytics.PageVisit) error {
	if err := visit.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PageVisitModel{}
	model.FromDomain(visit)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create page visit: %w", err)
	}
	return nil
}

func (r *gormAnalyticsRepository) visits(ctx context.Context, from, to time.Time) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.PageVisitModel{}).
		Where("created_at >= ? AND created_at <= ?", from.UTC(), to.UTC())
}

func (r *gormAnalyticsRepository) CountVisits(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	if err := r.visits(ctx, from, to).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count visits: %w", err)
	}
	return count, nil
}

func (r *gormAnalyticsRepository) CountUniqueVisitors(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	if err := r.visits(ctx, from, to).Distinct("visitor_hash").Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unique visitors: %w", err)
	}
	return count, nil
}

func (r *gormAnalyticsRepository) TopPages(ctx context.Context, from, to time.Time, limit int) ([]analytics.PageCount, error) {
	var rows []analytics.PageCount
	err := r.visits(ctx, from, to).
		Select("path, COUNT(*) AS visits").
		Group("path").
		Order("visits desc, path asc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top pages: %w", err)
	}
	if rows == nil {
		rows = []analytics.PageCount{}
	}
	return rows, nil
}

// VisitsByDay buckets in Go so the same code runs on Postgres and SQLite
func (r *gormAnalyticsRepository) VisitsByDay(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	var timestamps []time.Time
	if err := r.visits(ctx, from, to).Pluck("created_at", &timestamps).Error; err != nil {
		return nil, fmt.Errorf("failed to load visit timestamps: %w", err)
	}

	counts := make(map[string]int64)
	for _, ts := range timestamps {
		counts[ts.UTC().Format("2006-01-02")]++
	}
	return counts, nil
}

func (r *gormAnalyticsRepository) CountNewLeads(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.LeadModel{}).
		Where("created_at >= ? AND created_at <= ?", from.UTC(), to.UTC()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}

func (r *gormAnalyticsRepository) CountPublishedPosts(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PostModel{}).
		Where("status = ? AND published_at >= ? AND published_at <= ?", posts.StatusPublished, from.UTC(), to.UTC()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count published posts: %w", err)
	}
	return count, nil
}

func (r *gormAnalyticsRepository) CountPendingComments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CommentModel{}).
		Where("status = ?", comments.StatusPending).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count pending comments: %w", err)
	}
	return count, nil
}
