package models

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
)

// UserModel is the GORM database model for users
type UserModel struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	Name         string    `gorm:"not null;type:varchar(120)"`
	Email        string    `gorm:"not null;uniqueIndex;type:varchar(254)"`
	PasswordHash string    `gorm:"not null;type:varchar(100)"`
	Role         string    `gorm:"not null;index;type:varchar(20)"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
	LastLoginAt  *time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		LastLoginAt:  m.LastLoginAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Name = u.Name
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
	m.LastLoginAt = u.LastLoginAt
}
