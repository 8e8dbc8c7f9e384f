package models

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
)

// UploadModel is the GORM database model for uploaded file metadata
type UploadModel struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	FileName     string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	OriginalName string    `gorm:"not null;type:varchar(255)"`
	MimeType     string    `gorm:"not null;index;type:varchar(100)"`
	Size         int64     `gorm:"not null"`
	URL          string    `gorm:"not null;type:varchar(500)"`
	UserID       string    `gorm:"not null;index;type:varchar(36)"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (UploadModel) TableName() string {
	return "uploads"
}

// ToDomain converts GORM model to domain entity
func (m *UploadModel) ToDomain() *uploads.Upload {
	return &uploads.Upload{
		ID:           m.ID,
		FileName:     m.FileName,
		OriginalName: m.OriginalName,
		MimeType:     m.MimeType,
		Size:         m.Size,
		URL:          m.URL,
		UserID:       m.UserID,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UploadModel) FromDomain(u *uploads.Upload) {
	m.ID = u.ID
	m.FileName = u.FileName
	m.OriginalName = u.OriginalName
	m.MimeType = u.MimeType
	m.Size = u.Size
	m.URL = u.URL
	m.UserID = u.UserID
	m.CreatedAt = u.CreatedAt
}
