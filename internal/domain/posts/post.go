package posts

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/validators"
)

// Post statuses
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
)

// Content formats accepted on input. Content is always stored as Markdown.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Post entity
type Post struct {
	ID             string     `json:"id" validate:"required,uuid4"`
	Title          string     `json:"title" validate:"required,min=1,max=200"`
	Slug           string     `json:"slug" validate:"required,max=200,slug"`
	Excerpt        string     `json:"excerpt" validate:"max=500"`
	Content        string     `json:"content"`
	CoverImage     *string    `json:"cover_image,omitempty" validate:"omitempty,max=500"`
	Tags           []string   `json:"tags" validate:"max=20,dive,min=1,max=50"`
	Status         string     `json:"status" validate:"required,oneof=draft scheduled published"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	AuthorID       string     `json:"author_id" validate:"required,uuid4"`
	Views          int64      `json:"views" validate:"gte=0"`
	ReadingTime    int        `json:"reading_time" validate:"gte=0"`
	SEOTitle       *string    `json:"seo_title,omitempty" validate:"omitempty,max=200"`
	SEODescription *string    `json:"seo_description,omitempty" validate:"omitempty,max=320"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Validate for validating Post struct
func (p *Post) Validate() error {
	if err := validators.ValidateStruct(p); err != nil {
		return err
	}
	if p.Status == StatusScheduled && p.ScheduledAt == nil {
		return errs.Invalid("scheduled_at", "scheduled_at is required for scheduled posts")
	}
	return nil
}

// IsPublished reports whether the post is publicly visible
func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished
}

// ApplyStatus moves the post to status at now, keeping the timestamps consistent:
// published sets published_at when unset, draft and published clear scheduled_at,
// and scheduling requires a future scheduled_at.
func (p *Post) ApplyStatus(status string, scheduledAt *time.Time, now time.Time) error {
	switch status {
	case StatusDraft:
		p.ScheduledAt = nil
	case StatusScheduled:
		if scheduledAt == nil {
			return errs.Invalid("scheduled_at", "scheduled_at is required for scheduled posts")
		}
		if !scheduledAt.After(now) {
			return errs.Invalid("scheduled_at", "scheduled_at must be in the future")
		}
		at := scheduledAt.UTC()
		p.ScheduledAt = &at
	case StatusPublished:
		p.ScheduledAt = nil
		if p.PublishedAt == nil {
			at := now
			p.PublishedAt = &at
		}
	default:
		return errs.Invalid("status", "status must be one of [draft scheduled published]")
	}
	p.Status = status
	return nil
}

// PostInput is the payload for creating a post
type PostInput struct {
	Title          string     `json:"title" validate:"required,min=1,max=200"`
	Slug           string     `json:"slug" validate:"omitempty,max=200,slug"`
	Excerpt        string     `json:"excerpt" validate:"max=500"`
	Content        string     `json:"content"`
	ContentFormat  string     `json:"content_format" validate:"omitempty,oneof=markdown html"`
	CoverImage     *string    `json:"cover_image" validate:"omitempty,max=500"`
	Tags           []string   `json:"tags" validate:"max=20,dive,min=1,max=50"`
	Status         string     `json:"status" validate:"omitempty,oneof=draft scheduled published"`
	ScheduledAt    *time.Time `json:"scheduled_at"`
	SEOTitle       *string    `json:"seo_title" validate:"omitempty,max=200"`
	SEODescription *string    `json:"seo_description" validate:"omitempty,max=320"`
}

// Validate for validating PostInput struct
func (in *PostInput) Validate() error {
	return validators.ValidateStruct(in)
}

// PostUpdate is a partial update; nil fields are left untouched
type PostUpdate struct {
	Title          *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Slug           *string    `json:"slug" validate:"omitempty,max=200,slug"`
	Excerpt        *string    `json:"excerpt" validate:"omitempty,max=500"`
	Content        *string    `json:"content"`
	ContentFormat  string     `json:"content_format" validate:"omitempty,oneof=markdown html"`
	CoverImage     *string    `json:"cover_image" validate:"omitempty,max=500"`
	Tags           *[]string  `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
	Status         *string    `json:"status" validate:"omitempty,oneof=draft scheduled published"`
	ScheduledAt    *time.Time `json:"scheduled_at"`
	SEOTitle       *string    `json:"seo_title" validate:"omitempty,max=200"`
	SEODescription *string    `json:"seo_description" validate:"omitempty,max=320"`
}

// Validate for validating PostUpdate struct
func (in *PostUpdate) Validate() error {
	return validators.ValidateStruct(in)
}

// PostQuery filters and orders post listings
type PostQuery struct {
	Status    string `form:"status" validate:"omitempty,oneof=draft scheduled published"`
	Tag       string `form:"tag" validate:"max=50"`
	Search    string `form:"search" validate:"max=200"`
	SortBy    string `form:"sort_by" validate:"omitempty,oneof=created_at published_at title views"`
	SortOrder string `form:"sort_order" validate:"omitempty,oneof=asc desc"`
	common.Page
}

// Validate for validating PostQuery struct
func (q *PostQuery) Validate() error {
	return validators.ValidateStruct(q)
}

// ProcessedContent is post content ready for storage
type ProcessedContent struct {
	Markdown  string
	PlainText string
}
