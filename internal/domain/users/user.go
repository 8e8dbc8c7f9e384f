package users

import (
	"strings"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/pkg/validators"
)

// Roles
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// MinPasswordLength applies to registration and password changes
const MinPasswordLength = 8

// User entity. The password hash never leaves the service boundary.
type User struct {
	ID           string     `json:"id" validate:"required,uuid4"`
	Name         string     `json:"name" validate:"required,min=1,max=120"`
	Email        string     `json:"email" validate:"required,email,max=254"`
	PasswordHash string     `json:"-" validate:"required"`
	Role         string     `json:"role" validate:"required,oneof=admin editor"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.ValidateStruct(u)
}

// IsEditor reports whether the role may manage content
func IsEditor(role string) bool {
	return role == RoleAdmin || role == RoleEditor
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Claims are the verified contents of an access token
type Claims struct {
	UserID    string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// AuthResult is returned by login and registration
type AuthResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}

// LoginInput holds login credentials
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate for validating LoginInput struct
func (in *LoginInput) Validate() error {
	return validators.ValidateStruct(in)
}

// RegisterInput holds a self-registration request
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=1,max=120"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Validate for validating RegisterInput struct
func (in *RegisterInput) Validate() error {
	return validators.ValidateStruct(in)
}

// ChangePasswordInput holds a password change request
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// Validate for validating ChangePasswordInput struct
func (in *ChangePasswordInput) Validate() error {
	return validators.ValidateStruct(in)
}
