package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultAllowedMimeTypes is the allow-list used when none is configured
var DefaultAllowedMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/svg+xml",
	"application/pdf",
}

// UploadSettings holds the disk storage settings for uploaded assets
type UploadSettings struct {
	Dir              string   `mapstructure:"dir" validate:"required"`
	PublicPath       string   `mapstructure:"public_path" validate:"required,startswith=/"`
	MaxSizeBytes     int64    `mapstructure:"max_size_bytes" validate:"required,gt=0"`
	AllowedMimeTypes []string `mapstructure:"allowed_mime_types" validate:"required,min=1,dive,required"`
}

// Validate checks that all fields in UploadSettings are valid
func (s *UploadSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for UploadSettings: %w", err)
	}

	if strings.HasSuffix(s.PublicPath, "/") && s.PublicPath != "/" {
		return fmt.Errorf("public path must not end with a slash")
	}

	return nil
}
