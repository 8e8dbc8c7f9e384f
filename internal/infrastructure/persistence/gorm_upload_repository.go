package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUploadRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUploadRepository creates a new GORM-based UploadRepository implementation
func NewGormUploadRepository(db *gorm.DB, logger logger.Logger) (uploads.UploadRepository, error) {
	return &gormUploadRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUploadRepository) Create(ctx context.Context, upload *uploads.Upload) error {
	if err := upload.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UploadModel{}
	model.FromDomain(upload)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "upload", upload.ID)
	}

	r.logger.Info("Created upload metadata with id ", upload.ID)
	return nil
}

func (r *gormUploadRepository) GetByID(ctx context.Context, uploadID string) (*uploads.Upload, error) {
	var model models.UploadModel
	if err := r.db.WithContext(ctx).Where("id = ?", uploadID).First(&model).Error; err != nil {
		return nil, translateError(err, "upload", uploadID)
	}
	return model.ToDomain(), nil
}

func (r *gormUploadRepository) DeleteByID(ctx context.Context, uploadID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", uploadID).Delete(&models.UploadModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete upload: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("upload", uploadID)
	}

	r.logger.Info("Deleted upload metadata with id ", uploadID)
	return nil
}

func (r *gormUploadRepository) List(ctx context.Context, query *uploads.UploadQuery) ([]*uploads.Upload, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.UploadModel{})
	if query.MimeType != "" {
		dbQuery = dbQuery.Where("mime_type = ?", query.MimeType)
	}

	var modelList []*models.UploadModel
	total, err := findPage(dbQuery, query.Page, "created_at desc, id asc", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch uploads: %w", err)
	}

	domainList := make([]*uploads.Upload, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}
