package projects

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/validators"
)

// Project statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Project entity
type Project struct {
	ID           string    `json:"id" validate:"required,uuid4"`
	Title        string    `json:"title" validate:"required,min=1,max=200"`
	Slug         string    `json:"slug" validate:"required,max=200,slug"`
	Summary      string    `json:"summary" validate:"max=300"`
	Description  string    `json:"description"`
	ImageURL     *string   `json:"image_url,omitempty" validate:"omitempty,max=500"`
	DemoURL      *string   `json:"demo_url,omitempty" validate:"omitempty,url,max=500"`
	RepoURL      *string   `json:"repo_url,omitempty" validate:"omitempty,url,max=500"`
	Technologies []string  `json:"technologies" validate:"max=30,dive,min=1,max=50"`
	Featured     bool      `json:"featured"`
	Status       string    `json:"status" validate:"required,oneof=draft published"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate for validating Project struct
func (p *Project) Validate() error {
	return validators.ValidateStruct(p)
}

// IsPublished reports whether the project is publicly visible
func (p *Project) IsPublished() bool {
	return p.Status == StatusPublished
}

// ProjectInput is the payload for creating a project
type ProjectInput struct {
	Title        string   `json:"title" validate:"required,min=1,max=200"`
	Slug         string   `json:"slug" validate:"omitempty,max=200,slug"`
	Summary      string   `json:"summary" validate:"max=300"`
	Description  string   `json:"description"`
	ImageURL     *string  `json:"image_url" validate:"omitempty,max=500"`
	DemoURL      *string  `json:"demo_url" validate:"omitempty,url,max=500"`
	RepoURL      *string  `json:"repo_url" validate:"omitempty,url,max=500"`
	Technologies []string `json:"technologies" validate:"max=30,dive,min=1,max=50"`
	Featured     bool     `json:"featured"`
	Status       string   `json:"status" validate:"omitempty,oneof=draft published"`
	DisplayOrder int      `json:"display_order"`
}

// Validate for validating ProjectInput struct
func (in *ProjectInput) Validate() error {
	return validators.ValidateStruct(in)
}

// ProjectUpdate is a partial update; nil fields are left untouched
type ProjectUpdate struct {
	Title        *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Slug         *string   `json:"slug" validate:"omitempty,max=200,slug"`
	Summary      *string   `json:"summary" validate:"omitempty,max=300"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"image_url" validate:"omitempty,max=500"`
	DemoURL      *string   `json:"demo_url" validate:"omitempty,url,max=500"`
	RepoURL      *string   `json:"repo_url" validate:"omitempty,url,max=500"`
	Technologies *[]string `json:"technologies" validate:"omitempty,max=30,dive,min=1,max=50"`
	Featured     *bool     `json:"featured"`
	Status       *string   `json:"status" validate:"omitempty,oneof=draft published"`
	DisplayOrder *int      `json:"display_order"`
}

// Validate for validating ProjectUpdate struct
func (in *ProjectUpdate) Validate() error {
	return validators.ValidateStruct(in)
}

// ProjectQuery filters project listings
type ProjectQuery struct {
	Featured   *bool  `form:"featured"`
	Status     string `form:"status" validate:"omitempty,oneof=draft published"`
	Technology string `form:"technology" validate:"max=50"`
	common.Page
}

// Validate for validating ProjectQuery struct
func (q *ProjectQuery) Validate() error {
	return validators.ValidateStruct(q)
}
