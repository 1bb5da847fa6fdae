// Package dto defines request/response shapes for HTTP API v1.
package dto

import (
	"time"

	"roomstock/internal/core/apperror"
	"roomstock/internal/core/id"
	"roomstock/internal/core/types"
)

// IDResponse is returned from create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse is a simple success acknowledgement.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// parseDay parses a YYYY-MM-DD request field.
func parseDay(field, raw string) (time.Time, error) {
	day, err := types.ParseDay(raw)
	if err != nil {
		return time.Time{}, apperror.NewValidation("invalid date, want YYYY-MM-DD").
			WithDetail("field", field).
			WithDetail("value", raw)
	}
	return day, nil
}

// parseID parses a UUID request field.
func parseID(field, raw string) (id.ID, error) {
	parsed, err := id.Parse(raw)
	if err != nil {
		return id.Nil(), apperror.NewValidation("invalid id").
			WithDetail("field", field).
			WithDetail("value", raw)
	}
	return parsed, nil
}

// parseOptionalID parses an optional UUID request field.
func parseOptionalID(field string, raw *string) (*id.ID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := parseID(field, *raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
