package models

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
)

// ProjectModel is the GORM database model for portfolio projects
type ProjectModel struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	Title        string    `gorm:"not null;type:varchar(200)"`
	Slug         string    `gorm:"not null;uniqueIndex;type:varchar(200)"`
	Summary      string    `gorm:"type:varchar(300)"`
	Description  string    `gorm:"type:text"`
	ImageURL     *string   `gorm:"type:varchar(500)"`
	DemoURL      *string   `gorm:"type:varchar(500)"`
	RepoURL      *string   `gorm:"type:varchar(500)"`
	Technologies []string  `gorm:"serializer:json;type:text"`
	Featured     bool      `gorm:"not null;default:false;index"`
	Status       string    `gorm:"not null;index;type:varchar(20)"`
	DisplayOrder int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts GORM model to domain entity
func (m *ProjectModel) ToDomain() *projects.Project {
	technologies := m.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return &projects.Project{
		ID:           m.ID,
		Title:        m.Title,
		Slug:         m.Slug,
		Summary:      m.Summary,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		DemoURL:      m.DemoURL,
		RepoURL:      m.RepoURL,
		Technologies: technologies,
		Featured:     m.Featured,
		Status:       m.Status,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProjectModel) FromDomain(p *projects.Project) {
	m.ID = p.ID
	m.Title = p.Title
	m.Slug = p.Slug
	m.Summary = p.Summary
	m.Description = p.Description
	m.ImageURL = p.ImageURL
	m.DemoURL = p.DemoURL
	m.RepoURL = p.RepoURL
	m.Technologies = p.Technologies
	m.Featured = p.Featured
	m.Status = p.Status
	m.DisplayOrder = p.DisplayOrder
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}
