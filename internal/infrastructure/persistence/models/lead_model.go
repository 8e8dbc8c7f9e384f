package models

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/leads"
)

// LeadModel is the GORM database model for contact form leads
type LeadModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Name      string    `gorm:"not null;type:varchar(120)"`
	Email     string    `gorm:"not null;index;type:varchar(254)"`
	Phone     *string   `gorm:"type:varchar(40)"`
	Company   *string   `gorm:"type:varchar(120)"`
	Subject   *string   `gorm:"type:varchar(200)"`
	Message   string    `gorm:"not null;type:text"`
	Source    *string   `gorm:"type:varchar(100)"`
	Status    string    `gorm:"not null;index;type:varchar(20)"`
	Notes     *string   `gorm:"type:text"`
	IPAddress string    `gorm:"type:varchar(64)"`
	UserAgent string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (LeadModel) TableName() string {
	return "leads"
}

// ToDomain converts GORM model to domain entity
func (m *LeadModel) ToDomain() *leads.Lead {
	return &leads.Lead{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Company:   m.Company,
		Subject:   m.Subject,
		Message:   m.Message,
		Source:    m.Source,
		Status:    m.Status,
		Notes:     m.Notes,
		IPAddress: m.IPAddress,
		UserAgent: m.UserAgent,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *LeadModel) FromDomain(l *leads.Lead) {
	m.ID = l.ID
	m.Name = l.Name
	m.Email = l.Email
	m.Phone = l.Phone
	m.Company = l.Company
	m.Subject = l.Subject
	m.Message = l.Message
	m.Source = l.Source
	m.Status = l.Status
	m.Notes = l.Notes
	m.IPAddress = l.IPAddress
	m.UserAgent = l.UserAgent
	m.CreatedAt = l.CreatedAt
	m.UpdatedAt = l.UpdatedAt
}
