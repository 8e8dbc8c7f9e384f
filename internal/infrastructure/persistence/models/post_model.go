package models

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"
)

// PostModel is the GORM database model for blog posts
type PostModel struct {
	ID             string     `gorm:"primaryKey;type:varchar(36)"`
	Title          string     `gorm:"not null;type:varchar(200)"`
	Slug           string     `gorm:"not null;uniqueIndex;type:varchar(200)"`
	Excerpt        string     `gorm:"type:varchar(500)"`
	Content        string     `gorm:"type:text"`
	CoverImage     *string    `gorm:"type:varchar(500)"`
	Tags           []string   `gorm:"serializer:json;type:text"`
	Status         string     `gorm:"not null;index;type:varchar(20)"`
	ScheduledAt    *time.Time `gorm:"index"`
	PublishedAt    *time.Time `gorm:"index"`
	AuthorID       string     `gorm:"not null;index;type:varchar(36)"`
	Views          int64      `gorm:"not null;default:0"`
	ReadingTime    int        `gorm:"not null;default:1"`
	SEOTitle       *string    `gorm:"column:seo_title;type:varchar(200)"`
	SEODescription *string    `gorm:"column:seo_description;type:varchar(320)"`
	CreatedAt      time.Time  `gorm:"not null;index"`
	UpdatedAt      time.Time  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PostModel) TableName() string {
	return "posts"
}

// ToDomain converts GORM model to domain entity
func (m *PostModel) ToDomain() *posts.Post {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return &posts.Post{
		ID:             m.ID,
		Title:          m.Title,
		Slug:           m.Slug,
		Excerpt:        m.Excerpt,
		Content:        m.Content,
		CoverImage:     m.CoverImage,
		Tags:           tags,
		Status:         m.Status,
		ScheduledAt:    m.ScheduledAt,
		PublishedAt:    m.PublishedAt,
		AuthorID:       m.AuthorID,
		Views:          m.Views,
		ReadingTime:    m.ReadingTime,
		SEOTitle:       m.SEOTitle,
		SEODescription: m.SEODescription,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PostModel) FromDomain(p *posts.Post) {
	m.ID = p.ID
	m.Title = p.Title
	m.Slug = p.Slug
	m.Excerpt = p.Excerpt
	m.Content = p.Content
	m.CoverImage = p.CoverImage
	m.Tags = p.Tags
	m.Status = p.Status
	m.ScheduledAt = p.ScheduledAt
	m.PublishedAt = p.PublishedAt
	m.AuthorID = p.AuthorID
	m.Views = p.Views
	m.ReadingTime = p.ReadingTime
	m.SEOTitle = p.SEOTitle
	m.SEODescription = p.SEODescription
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}
