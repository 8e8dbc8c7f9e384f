package models

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/notifications"
)

// NotificationModel is the GORM database model for user notifications
type NotificationModel struct {
	ID        string     `gorm:"primaryKey;type:varchar(36)"`
	UserID    string     `gorm:"not null;index:idx_notifications_user_read;type:varchar(36)"`
	Type      string     `gorm:"not null;type:varchar(50)"`
	Title     string     `gorm:"not null;type:varchar(200)"`
	Message   string     `gorm:"type:varchar(1000)"`
	Link      *string    `gorm:"type:varchar(500)"`
	Read      bool       `gorm:"not null;default:false;index:idx_notifications_user_read"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts GORM model to domain entity
func (m *NotificationModel) ToDomain() *notifications.Notification {
	return &notifications.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      m.Type,
		Title:     m.Title,
		Message:   m.Message,
		Link:      m.Link,
		Read:      m.Read,
		ReadAt:    m.ReadAt,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *NotificationModel) FromDomain(n *notifications.Notification) {
	m.ID = n.ID
	m.UserID = n.UserID
	m.Type = n.Type
	m.Title = n.Title
	m.Message = n.Message
	m.Link = n.Link
	m.Read = n.Read
	m.ReadAt = n.ReadAt
	m.CreatedAt = n.CreatedAt
}
