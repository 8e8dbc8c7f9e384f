package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Environment constants
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// EnvPrefix is the prefix of environment variables overriding file settings,
// e.g. PORTFOLIO_AUTH_JWT_SECRET overrides auth.jwt_secret.
const EnvPrefix = "PORTFOLIO"

// SchedulerSettings controls the in-process scheduled publishing job
type SchedulerSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Spec    string `mapstructure:"spec" validate:"required_if=Enabled true"`
}

// EventSettings controls domain event publishing. An empty NatsURL disables it.
type EventSettings struct {
	NatsURL       string `mapstructure:"nats_url" validate:"omitempty,url"`
	SubjectPrefix string `mapstructure:"subject_prefix" validate:"required"`
}

// CORSSettings lists the origins allowed to call the API from a browser
type CORSSettings struct {
	AllowOrigins []string `mapstructure:"allow_origins" validate:"required,min=1"`
}

// AnalyticsSettings holds the salt mixed into visitor hashes
type AnalyticsSettings struct {
	IPSalt string `mapstructure:"ip_salt"`
}

// RestConfig is the complete configuration of the REST API
type RestConfig struct {
	Port        string            `mapstructure:"port" validate:"required,numeric"`
	Environment string            `mapstructure:"environment" validate:"required,oneof=development production test"`
	Database    DatabaseSettings  `mapstructure:"database"`
	Logger      LoggerSettings    `mapstructure:"logger"`
	Auth        AuthSettings      `mapstructure:"auth"`
	Uploads     UploadSettings    `mapstructure:"uploads"`
	Scheduler   SchedulerSettings `mapstructure:"scheduler"`
	Events      EventSettings     `mapstructure:"events"`
	CORS        CORSSettings      `mapstructure:"cors"`
	Analytics   AnalyticsSettings `mapstructure:"analytics"`
}

// IsDevelopment reports whether error details may be exposed to clients
func (c *RestConfig) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// Validate checks the top level fields and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	validators := []interface{ Validate() error }{
		&c.Database,
		&c.Logger,
		&c.Auth,
		&c.Uploads,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// setDefaults registers every key so that AutomaticEnv can override it
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("environment", EnvDevelopment)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "portfolio.db")
	v.SetDefault("database.name", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.connect_retries", 5)

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.encoding", "")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "portfolio-api")
	v.SetDefault("auth.token_ttl", DefaultTokenTTL)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.allow_registration", false)
	v.SetDefault("auth.admin_email", "")
	v.SetDefault("auth.admin_password", "")
	v.SetDefault("auth.admin_name", "Administrator")

	v.SetDefault("uploads.dir", "./uploads")
	v.SetDefault("uploads.public_path", "/uploads")
	v.SetDefault("uploads.max_size_bytes", 5<<20)
	v.SetDefault("uploads.allowed_mime_types", DefaultAllowedMimeTypes)

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.spec", "@every 1m")

	v.SetDefault("events.nats_url", "")
	v.SetDefault("events.subject_prefix", "portfolio")

	v.SetDefault("cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("analytics.ip_salt", "")
}

// InitializeRestConfig loads the configuration from the file path, falling back to
// defaults and environment variables when the file does not exist. Environment
// variables always win over values read from the file.
func InitializeRestConfig(filePath string) (*RestConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if filePath != "" {
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			v.SetConfigFile(filePath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
			}
		}
	}

	cfg := &RestConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Logger.ApplyEnvironment(cfg.Environment)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
