package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAuditLogRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAuditLogRepository creates a new GORM-based AuditLogRepository implementation
func NewGormAuditLogRepository(db *gorm.DB, logger logger.Logger) (auditlogs.AuditLogRepository, error) {
	return &gormAuditLogRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAuditLogRepository) Create(ctx context.Context, entry *auditlogs.AuditLog) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AuditLogModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

func (r *gormAuditLogRepository) List(ctx context.Context, query *auditlogs.AuditLogQuery) ([]*auditlogs.AuditLog, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.AuditLogModel{})

	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}
	if query.Action != "" {
		dbQuery = dbQuery.Where("action = ?", query.Action)
	}
	if query.ResourceType != "" {
		dbQuery = dbQuery.Where("resource_type = ?", query.ResourceType)
	}
	if query.ResourceID != "" {
		dbQuery = dbQuery.Where("resource_id = ?", query.ResourceID)
	}
	if query.From != nil {
		dbQuery = dbQuery.Where("created_at >= ?", query.From.UTC())
	}
	if query.To != nil {
		dbQuery = dbQuery.Where("created_at <= ?", query.To.UTC())
	}

	var modelList []*models.AuditLogModel
	total, err := findPage(dbQuery, query.Page, "created_at desc, id asc", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	domainList := make([]*auditlogs.AuditLog, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}
