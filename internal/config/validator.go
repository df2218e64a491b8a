package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/roomcrawl/internal/logger"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("loglevel", validateLogLevel)
	return v
}

// ValidLogLevels defines the accepted LOG_LEVEL values
var ValidLogLevels = map[string]bool{
	logger.LogLevelDebug:   true,
	logger.LogLevelInfo:    true,
	logger.LogLevelWarn:    true,
	logger.LogLevelWarning: true,
	logger.LogLevelError:   true,
}

func validateLogLevel(fl validator.FieldLevel) bool {
	return ValidLogLevels[strings.ToLower(fl.Field().String())]
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	fields := FormatValidationError(err)
	msgs := make([]string, 0, len(fields))
	for field, msg := range fields {
		msgs = append(msgs, field+": "+msg)
	}
	sort.Strings(msgs)
	return fmt.Errorf(ErrFmtValidation, strings.Join(msgs, "; "))
}

// FormatValidationError maps validation errors to readable messages per field
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "loglevel":
			errs[field] = fmt.Sprintf("Unknown log level %q", e.Value())
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
