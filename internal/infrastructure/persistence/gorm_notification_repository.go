package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormNotificationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormNotificationRepository creates a new GORM-based NotificationRepository implementation
func NewGormNotificationRepository(db *gorm.DB, logger logger.Logger) (notifications.NotificationRepository, error) {
	return &gormNotificationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormNotificationRepository) CreateBatch(ctx context.Context, list []*notifications.Notification) error {
	if len(list) == 0 {
		return nil
	}

	modelList := make([]*models.NotificationModel, len(list))
	for i, n := range list {
		if err := n.Validate(); err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
		modelList[i] = &models.NotificationModel{}
		modelList[i].FromDomain(n)
	}

	if err := r.db.WithContext(ctx).Create(&modelList).Error; err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}
	return nil
}

func (r *gormNotificationRepository) GetByID(ctx context.Context, userID, notificationID string) (*notifications.Notification, error) {
	var model models.NotificationModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", notificationID, userID).
		First(&model).Error
	if err != nil {
		return nil, translateError(err, "notification", notificationID)
	}
	return model.ToDomain(), nil
}

func (r *gormNotificationRepository) List(ctx context.Context, query *notifications.NotificationQuery) ([]*notifications.Notification, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.NotificationModel{}).Where("user_id = ?", query.UserID)
	if query.Unread {
		dbQuery = dbQuery.Where("read = ?", false)
	}

	var modelList []*models.NotificationModel
	total, err := findPage(dbQuery, query.Page, "created_at desc, id asc", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	domainList := make([]*notifications.Notification, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return count, nil
}

func (r *gormNotificationRepository) MarkRead(ctx context.Context, userID, notificationID string, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]interface{}{"read": true, "read_at": at.UTC()})
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("notification", notificationID)
	}
	return nil
}

func (r *gormNotificationRepository) MarkAllRead(ctx context.Context, userID string, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Updates(map[string]interface{}{"read": true, "read_at": at.UTC()})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormNotificationRepository) DeleteByID(ctx context.Context, userID, notificationID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Delete(&models.NotificationModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("notification", notificationID)
	}
	return nil
}
