package models

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/analytics"
)

// PageVisitModel is the GORM database model for page visits
type PageVisitModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	Path        string    `gorm:"not null;index;type:varchar(500)"`
	Referrer    *string   `gorm:"type:varchar(500)"`
	SessionID   *string   `gorm:"type:varchar(100)"`
	UserAgent   string    `gorm:"type:varchar(500)"`
	VisitorHash string    `gorm:"not null;index;type:varchar(64)"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (PageVisitModel) TableName() string {
	return "page_visits"
}

// ToDomain converts GORM model to domain entity
func (m *PageVisitModel) ToDomain() *analytics.PageVisit {
	return &analytics.PageVisit{
		ID:          m.ID,
		Path:        m.Path,
		Referrer:    m.Referrer,
		SessionID:   m.SessionID,
		UserAgent:   m.UserAgent,
		VisitorHash: m.VisitorHash,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PageVisitModel) FromDomain(v *analytics.PageVisit) {
	m.ID = v.ID
	m.Path = v.Path
	m.Referrer = v.Referrer
	m.SessionID = v.SessionID
	m.UserAgent = v.UserAgent
	m.VisitorHash = v.VisitorHash
	m.CreatedAt = v.CreatedAt
}
