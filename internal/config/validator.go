package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "service.base_url")
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

// isoDateFormat is the wire format for trip dates
const isoDateFormat = "2006-01-02"

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation
// errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateService()...)
	errors = append(errors, c.validateTrip()...)
	errors = append(errors, c.validateUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateService() []ValidationError {
	var errors []ValidationError

	if c.Service.BaseURL == "" {
		errors = append(errors, ValidationError{
			Field:   "service.base_url",
			Value:   c.Service.BaseURL,
			Message: "must not be empty",
		})
	} else if u, err := url.Parse(c.Service.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "service.base_url",
			Value:   c.Service.BaseURL,
			Message: "must be an absolute URL",
		})
	}

	if c.Service.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "service.timeout_seconds",
			Value:   c.Service.TimeoutSeconds,
			Message: "must be greater than zero",
		})
	}

	return errors
}

func (c *Config) validateTrip() []ValidationError {
	var errors []ValidationError

	if c.Trip.Origin == "" {
		errors = append(errors, ValidationError{
			Field:   "trip.origin",
			Value:   c.Trip.Origin,
			Message: "must not be empty",
		})
	}

	start, err := time.Parse(isoDateFormat, c.Trip.StartDate)
	if err != nil {
		errors = append(errors, ValidationError{
			Field:   "trip.start_date",
			Value:   c.Trip.StartDate,
			Message: "must be an ISO date (YYYY-MM-DD)",
		})
	}

	end, err2 := time.Parse(isoDateFormat, c.Trip.EndDate)
	if err2 != nil {
		errors = append(errors, ValidationError{
			Field:   "trip.end_date",
			Value:   c.Trip.EndDate,
			Message: "must be an ISO date (YYYY-MM-DD)",
		})
	}

	if err == nil && err2 == nil && end.Before(start) {
		errors = append(errors, ValidationError{
			Field:   "trip.end_date",
			Value:   c.Trip.EndDate,
			Message: "must not be before trip.start_date",
		})
	}

	if c.Trip.Travelers < 1 {
		errors = append(errors, ValidationError{
			Field:   "trip.travelers",
			Value:   c.Trip.Travelers,
			Message: "must be at least 1",
		})
	}

	return errors
}

func (c *Config) validateUI() []ValidationError {
	var errors []ValidationError

	if c.UI.CurrencySymbol == "" {
		errors = append(errors, ValidationError{
			Field:   "ui.currency_symbol",
			Value:   c.UI.CurrencySymbol,
			Message: "must not be empty",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
