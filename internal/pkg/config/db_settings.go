package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings holds the connection settings for the relational store
type DatabaseSettings struct {
	Type           string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN            string `mapstructure:"dsn" validate:"required"`
	Name           string `mapstructure:"name"`
	MaxOpenConns   int    `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns   int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnectRetries uint   `mapstructure:"connect_retries"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.MaxIdleConns > 0 && s.MaxOpenConns > 0 && s.MaxIdleConns > s.MaxOpenConns {
		return fmt.Errorf("max idle connections (%d) must not exceed max open connections (%d)", s.MaxIdleConns, s.MaxOpenConns)
	}

	return nil
}
