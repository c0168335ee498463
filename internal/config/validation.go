package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation error for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("configuration validation failed:\n%s", strings.Join(messages, "\n"))
}

// ValidateConfig validates a configuration struct
func ValidateConfig(config *Config) error {
	var errors ValidationErrors

	errors = append(errors, validateMarker(config.Marker)...)
	errors = append(errors, validateLogging(config.Logging.Level, config.Logging.Format)...)
	errors = append(errors, validateWithHide(config.WithHide.OnFailure)...)

	if len(errors) > 0 {
		return errors
	}

	return nil
}

// validateMarker requires exactly one rune that can appear in a file name
func validateMarker(marker string) ValidationErrors {
	var errors ValidationErrors

	if !utf8.ValidString(marker) || utf8.RuneCountInString(marker) != 1 {
		return append(errors, ValidationError{
			Field:   "marker",
			Value:   marker,
			Message: "must be exactly one character",
		})
	}

	r, _ := utf8.DecodeRuneInString(marker)
	if r == 0 || (r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))) {
		errors = append(errors, ValidationError{
			Field:   "marker",
			Value:   marker,
			Message: "cannot be a path separator or NUL",
		})
	}

	return errors
}

func validateLogging(level, format string) ValidationErrors {
	var errors ValidationErrors

	if !slices.Contains(ValidLogLevels(), strings.ToLower(level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   level,
			Message: fmt.Sprintf("must be one of: %v", ValidLogLevels()),
		})
	}

	if !slices.Contains(ValidLogFormats(), strings.ToLower(format)) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Value:   format,
			Message: fmt.Sprintf("must be one of: %v", ValidLogFormats()),
		})
	}

	return errors
}

func validateWithHide(onFailure string) ValidationErrors {
	if slices.Contains(ValidOnFailureModes(), onFailure) {
		return nil
	}

	return ValidationErrors{{
		Field:   "with_hide.on_failure",
		Value:   onFailure,
		Message: fmt.Sprintf("must be one of: %v", ValidOnFailureModes()),
	}}
}
