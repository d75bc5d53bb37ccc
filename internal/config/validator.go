package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Iron-Ham/adversarial-critique/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "models.available")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// familyRegex validates model family identifiers.
// Identifiers are lowercase so that env-derived strategists compare equal.
var familyRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// IsValidFamily reports whether name is a well-formed model family identifier
func IsValidFamily(name string) bool {
	return familyRegex.MatchString(name)
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateModels()...)
	errors = append(errors, c.validateRoles()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateModels validates the ModelsConfig
func (c *Config) validateModels() []ValidationError {
	var errors []ValidationError

	if len(c.Models.Available) == 0 {
		return append(errors, ValidationError{
			Field:   "models.available",
			Value:   c.Models.Available,
			Message: "must list at least one model family",
		})
	}

	seen := make(map[string]bool, len(c.Models.Available))
	for i, family := range c.Models.Available {
		field := fmt.Sprintf("models.available[%d]", i)
		if !IsValidFamily(family) {
			errors = append(errors, ValidationError{
				Field:   field,
				Value:   family,
				Message: "must be a lowercase identifier (letters, digits, '-' or '_')",
			})
			continue
		}
		if seen[family] {
			errors = append(errors, ValidationError{
				Field:   field,
				Value:   family,
				Message: "duplicate model family",
			})
		}
		seen[family] = true
	}

	return errors
}

// validateRoles validates the RolesConfig.
// Whether the strategist is available is checked at role assignment time.
func (c *Config) validateRoles() []ValidationError {
	var errors []ValidationError

	if c.Roles.Strategist != "" && !IsValidFamily(c.Roles.Strategist) {
		errors = append(errors, ValidationError{
			Field:   "roles.strategist",
			Value:   c.Roles.Strategist,
			Message: "must be a lowercase identifier (letters, digits, '-' or '_')",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !logging.IsValidLevel(c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.ToLower(strings.Join(logging.ValidLevels(), ", "))),
		})
	}

	return errors
}
