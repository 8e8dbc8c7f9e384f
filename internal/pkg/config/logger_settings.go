package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Levels accepted by the logger. Critical is logged at error level.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Logger outputs
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Entry encodings
const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// LoggerSettings selects the logger output, level and, for file output, the
// lumberjack rotation limits.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	Encoding   string `mapstructure:"encoding" validate:"omitempty,oneof=json console"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// rotationLimit bounds one lumberjack setting
type rotationLimit struct {
	name     string
	value    int
	min, max int
	unit     string
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	if s.LogType != LogTypeFile {
		return nil
	}

	for _, limit := range []rotationLimit{
		{"max size", s.MaxSize, 1, 100, " MB"},
		{"max backups", s.MaxBackups, 1, 10, ""},
		{"max age", s.MaxAge, 1, 365, " days"},
	} {
		if limit.value < limit.min || limit.value > limit.max {
			return fmt.Errorf("%s must be between %d and %d%s", limit.name, limit.min, limit.max, limit.unit)
		}
	}
	return nil
}

// ApplyEnvironment picks the entry encoding when none is configured:
// human readable in development, JSON everywhere else.
func (s *LoggerSettings) ApplyEnvironment(environment string) {
	if s.Encoding != "" {
		return
	}
	if environment == EnvDevelopment {
		s.Encoding = EncodingConsole
		return
	}
	s.Encoding = EncodingJSON
}
