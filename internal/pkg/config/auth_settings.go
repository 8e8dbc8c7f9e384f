package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultTokenTTL is the lifetime of access tokens when none is configured
const DefaultTokenTTL = 24 * time.Hour

// AuthSettings holds the token signing and password hashing settings.
//
// WARNING: JWTSecret and AdminPassword are secrets and should be provided through
// environment variables rather than committed configuration files.
type AuthSettings struct {
	JWTSecret         string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	Issuer            string        `mapstructure:"issuer" validate:"required"`
	TokenTTL          time.Duration `mapstructure:"token_ttl" validate:"required"`
	BcryptCost        int           `mapstructure:"bcrypt_cost" validate:"gte=4,lte=14"`
	AllowRegistration bool          `mapstructure:"allow_registration"`
	AdminEmail        string        `mapstructure:"admin_email" validate:"omitempty,email"`
	AdminPassword     string        `mapstructure:"admin_password" validate:"omitempty,min=8"`
	AdminName         string        `mapstructure:"admin_name"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	if s.TokenTTL < time.Minute {
		return fmt.Errorf("token ttl must be at least one minute")
	}

	if (s.AdminEmail == "") != (s.AdminPassword == "") {
		return fmt.Errorf("admin email and admin password must be set together")
	}

	return nil
}
