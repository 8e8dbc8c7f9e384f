// Package validators wraps a shared go-playground validator configured for
// this API: field names come from json tags and a "slug" tag is registered.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/MGTheTrain/portfolio-api/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Get returns the shared validator instance
func Get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		if err := v.RegisterValidation("slug", SlugValidation); err != nil {
			panic(fmt.Sprintf("failed to register slug validator: %v", err))
		}
		instance = v
	})
	return instance
}

// SlugValidation accepts lower-case alphanumerics joined by single hyphens.
func SlugValidation(fl validator.FieldLevel) bool {
	return IsSlug(fl.Field().String())
}

// IsSlug reports whether s is a valid slug
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// ValidateStruct validates s and returns the first failure as *errs.ValidationError.
func ValidateStruct(s interface{}) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return &errs.ValidationError{Field: fe.Field(), Message: message(fe)}
	}
	return fmt.Errorf("validation error: %w", err)
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_if", "required_with":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "slug":
		return fmt.Sprintf("%s must contain only lower-case letters, digits and hyphens", field)
	case "startswith":
		return fmt.Sprintf("%s must start with %q", field, fe.Param())
	case "min", "gte":
		return boundMessage(fe, "at least")
	case "max", "lte":
		return boundMessage(fe, "at most")
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func boundMessage(fe validator.FieldError, bound string) string {
	switch fe.Kind() {
	case reflect.String:
		return fmt.Sprintf("%s must be %s %s characters long", fe.Field(), bound, fe.Param())
	case reflect.Slice, reflect.Map, reflect.Array:
		return fmt.Sprintf("%s must contain %s %s items", fe.Field(), bound, fe.Param())
	default:
		return fmt.Sprintf("%s must be %s %s", fe.Field(), bound, fe.Param())
	}
}
