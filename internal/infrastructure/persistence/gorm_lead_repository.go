package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/portfolio-api/internal/domain/leads"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormLeadRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormLeadRepository creates a new GORM-based LeadRepository implementation
func NewGormLeadRepository(db *gorm.DB, logger logger.Logger) (leads.LeadRepository, error) {
	return &gormLeadRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormLeadRepository) Create(ctx context.Context, lead *leads.Lead) error {
	if err := lead.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.LeadModel{}
	model.FromDomain(lead)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	r.logger.Info("Created lead with id ", lead.ID)
	return nil
}

func (r *gormLeadRepository) GetByID(ctx context.Context, leadID string) (*leads.Lead, error) {
	var model models.LeadModel
	if err := r.db.WithContext(ctx).Where("id = ?", leadID).First(&model).Error; err != nil {
		return nil, translateError(err, "lead", leadID)
	}
	return model.ToDomain(), nil
}

func (r *gormLeadRepository) Update(ctx context.Context, lead *leads.Lead) error {
	if err := lead.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.LeadModel{}
	model.FromDomain(lead)

	result := r.db.WithContext(ctx).Model(model).Select("*").Omit("created_at").Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update lead: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("lead", lead.ID)
	}

	r.logger.Info("Updated lead with id ", lead.ID)
	return nil
}

func (r *gormLeadRepository) DeleteByID(ctx context.Context, leadID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", leadID).Delete(&models.LeadModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete lead: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("lead", leadID)
	}

	r.logger.Info("Deleted lead with id ", leadID)
	return nil
}

func (r *gormLeadRepository) List(ctx context.Context, query *leads.LeadQuery) ([]*leads.Lead, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.LeadModel{})

	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.Search != "" {
		pattern := containsPattern(query.Search)
		dbQuery = dbQuery.Where(
			"LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\' OR LOWER(COALESCE(company, '')) LIKE ? ESCAPE '\\' OR LOWER(message) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern, pattern,
		)
	}

	var modelList []*models.LeadModel
	total, err := findPage(dbQuery, query.Page, "created_at desc, id asc", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch leads: %w", err)
	}

	domainList := make([]*leads.Lead, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}
