package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProjectRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProjectRepository creates a new GORM-based ProjectRepository implementation
func NewGormProjectRepository(db *gorm.DB, logger logger.Logger) (projects.ProjectRepository, error) {
	return &gormProjectRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProjectRepository) Create(ctx context.Context, project *projects.Project) error {
	if err := project.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProjectModel{}
	model.FromDomain(project)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.Conflict("slug %q is already in use", project.Slug)
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	r.logger.Info("Created project with id ", project.ID)
	return nil
}

func (r *gormProjectRepository) GetByID(ctx context.Context, projectID string) (*projects.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).Where("id = ?", projectID).First(&model).Error; err != nil {
		return nil, translateError(err, "project", projectID)
	}
	return model.ToDomain(), nil
}

func (r *gormProjectRepository) GetBySlug(ctx context.Context, slug string) (*projects.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("project with slug %s %w", slug, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProjectRepository) Update(ctx context.Context, project *projects.Project) error {
	if err := project.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProjectModel{}
	model.FromDomain(project)

	result := r.db.WithContext(ctx).Model(model).Select("*").Omit("created_at").Updates(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.Conflict("slug %q is already in use", project.Slug)
		}
		return fmt.Errorf("failed to update project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("project", project.ID)
	}

	r.logger.Info("Updated project with id ", project.ID)
	return nil
}

func (r *gormProjectRepository) DeleteByID(ctx context.Context, projectID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", projectID).Delete(&models.ProjectModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("project", projectID)
	}

	r.logger.Info("Deleted project with id ", projectID)
	return nil
}

func (r *gormProjectRepository) List(ctx context.Context, query *projects.ProjectQuery) ([]*projects.Project, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.ProjectModel{})

	if query.Featured != nil {
		dbQuery = dbQuery.Where("featured = ?", *query.Featured)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.Technology != "" {
		dbQuery = dbQuery.Where("technologies LIKE ? ESCAPE '\\'", jsonElementPattern(query.Technology))
	}

	var modelList []*models.ProjectModel
	total, err := findPage(dbQuery, query.Page, "display_order asc, created_at desc, id asc", &modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch projects: %w", err)
	}

	domainList := make([]*projects.Project, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, total, nil
}

func (r *gormProjectRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64
	dbQuery := r.db.WithContext(ctx).Model(&models.ProjectModel{}).Where("slug = ?", slug)
	if excludeID != "" {
		dbQuery = dbQuery.Where("id <> ?", excludeID)
	}
	if err := dbQuery.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}
