package models

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/auditlogs"
)

// AuditLogModel is the GORM database model for audit entries
type AuditLogModel struct {
	ID           string                 `gorm:"primaryKey;type:varchar(36)"`
	UserID       *string                `gorm:"index;type:varchar(36)"`
	Action       string                 `gorm:"not null;index;type:varchar(100)"`
	ResourceType string                 `gorm:"not null;index:idx_audit_logs_resource;type:varchar(50)"`
	ResourceID   *string                `gorm:"index:idx_audit_logs_resource;type:varchar(100)"`
	Metadata     map[string]interface{} `gorm:"serializer:json;type:text"`
	IPAddress    string                 `gorm:"type:varchar(64)"`
	UserAgent    string                 `gorm:"type:varchar(500)"`
	CreatedAt    time.Time              `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// ToDomain converts GORM model to domain entity
func (m *AuditLogModel) ToDomain() *auditlogs.AuditLog {
	return &auditlogs.AuditLog{
		ID:           m.ID,
		UserID:       m.UserID,
		Action:       m.Action,
		ResourceType: m.ResourceType,
		ResourceID:   m.ResourceID,
		Metadata:     m.Metadata,
		IPAddress:    m.IPAddress,
		UserAgent:    m.UserAgent,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AuditLogModel) FromDomain(a *auditlogs.AuditLog) {
	m.ID = a.ID
	m.UserID = a.UserID
	m.Action = a.Action
	m.ResourceType = a.ResourceType
	m.ResourceID = a.ResourceID
	m.Metadata = a.Metadata
	m.IPAddress = a.IPAddress
	m.UserAgent = a.UserAgent
	m.CreatedAt = a.CreatedAt
}
