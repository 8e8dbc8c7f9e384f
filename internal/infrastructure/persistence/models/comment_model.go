package models

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/comments"
)

// CommentModel is the GORM database model for post comments
type CommentModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	PostID      string    `gorm:"not null;index;type:varchar(36)"`
	ParentID    *string   `gorm:"index;type:varchar(36)"`
	AuthorName  string    `gorm:"not null;type:varchar(80)"`
	AuthorEmail string    `gorm:"not null;type:varchar(254)"`
	Content     string    `gorm:"not null;type:text"`
	Status      string    `gorm:"not null;index;type:varchar(20)"`
	IPAddress   string    `gorm:"type:varchar(64)"`
	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CommentModel) TableName() string {
	return "comments"
}

// ToDomain converts GORM model to domain entity
func (m *CommentModel) ToDomain() *comments.Comment {
	return &comments.Comment{
		ID:          m.ID,
		PostID:      m.PostID,
		ParentID:    m.ParentID,
		AuthorName:  m.AuthorName,
		AuthorEmail: m.AuthorEmail,
		Content:     m.Content,
		Status:      m.Status,
		IPAddress:   m.IPAddress,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CommentModel) FromDomain(c *comments.Comment) {
	m.ID = c.ID
	m.PostID = c.PostID
	m.ParentID = c.ParentID
	m.AuthorName = c.AuthorName
	m.AuthorEmail = c.AuthorEmail
	m.Content = c.Content
	m.Status = c.Status
	m.IPAddress = c.IPAddress
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}
