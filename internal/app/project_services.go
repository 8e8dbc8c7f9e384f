package app

import (
	"context"
	"strings"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"github.com/google/uuid"
)

// projectService implements the ProjectService interface
type projectService struct {
	repo   projects.ProjectRepository
	audit  auditlogs.AuditLogService
	logger logger.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(repo projects.ProjectRepository, audit auditlogs.AuditLogService, logger logger.Logger) (projects.ProjectService, error) {
	return &projectService{
		repo:   repo,
		audit:  audit,
		logger: logger,
	}, nil
}

// List returns a page of projects. Callers without editor rights only see published ones.
func (s *projectService) List(ctx context.Context, query *projects.ProjectQuery, includeUnpublished bool) ([]*projects.Project, int64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	if !includeUnpublished {
		query.Status = projects.StatusPublished
	}
	return s.repo.List(ctx, query)
}

// GetByID returns a project, hiding drafts unless includeUnpublished
func (s *projectService) GetByID(ctx context.Context, projectID string, includeUnpublished bool) (*projects.Project, error) {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !includeUnpublished && !project.IsPublished() {
		return nil, errs.NotFound("project", projectID)
	}
	return project, nil
}

// GetBySlug returns a published project
func (s *projectService) GetBySlug(ctx context.Context, slug string) (*projects.Project, error) {
	project, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !project.IsPublished() {
		return nil, errs.NotFound("project", slug)
	}
	return project, nil
}

// Create stores a new project, deriving the slug from the title when none is given
func (s *projectService) Create(ctx context.Context, in *projects.ProjectInput) (*projects.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	slug, err := resolveSlug(ctx, in.Slug, in.Title, "", s.repo.SlugExists)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = projects.StatusDraft
	}

	now := time.Now().UTC()
	project := &projects.Project{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(in.Title),
		Slug:         slug,
		Summary:      strings.TrimSpace(in.Summary),
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		DemoURL:      in.DemoURL,
		RepoURL:      in.RepoURL,
		Technologies: normalizeTags(in.Technologies),
		Featured:     in.Featured,
		Status:       status,
		DisplayOrder: in.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, auditlogs.ActionProjectCreated, auditlogs.ResourceProject, project.ID, projectMetadata(project))
	return project, nil
}

// Update applies the non-nil fields of in
func (s *projectService) Update(ctx context.Context, projectID string, in *projects.ProjectUpdate) (*projects.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		project.Title = strings.TrimSpace(*in.Title)
	}
	if in.Slug != nil && *in.Slug != project.Slug {
		slug, err := resolveSlug(ctx, *in.Slug, project.Title, project.ID, s.repo.SlugExists)
		if err != nil {
			return nil, err
		}
		project.Slug = slug
	}
	if in.Summary != nil {
		project.Summary = strings.TrimSpace(*in.Summary)
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.ImageURL != nil {
		project.ImageURL = emptyToNil(*in.ImageURL)
	}
	if in.DemoURL != nil {
		project.DemoURL = emptyToNil(*in.DemoURL)
	}
	if in.RepoURL != nil {
		project.RepoURL = emptyToNil(*in.RepoURL)
	}
	if in.Technologies != nil {
		project.Technologies = normalizeTags(*in.Technologies)
	}
	if in.Featured != nil {
		project.Featured = *in.Featured
	}
	if in.Status != nil {
		project.Status = *in.Status
	}
	if in.DisplayOrder != nil {
		project.DisplayOrder = *in.DisplayOrder
	}
	project.UpdatedAt = time.Now().UTC()

	if err := project.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, auditlogs.ActionProjectUpdated, auditlogs.ResourceProject, project.ID, projectMetadata(project))
	return project, nil
}

// Delete removes a project
func (s *projectService) Delete(ctx context.Context, projectID string) error {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, projectID); err != nil {
		return err
	}

	s.audit.Record(ctx, auditlogs.ActionProjectDeleted, auditlogs.ResourceProject, projectID, projectMetadata(project))
	return nil
}

func projectMetadata(project *projects.Project) map[string]interface{} {
	return map[string]interface{}{
		"title":  project.Title,
		"slug":   project.Slug,
		"status": project.Status,
	}
}
