// Package common defines shared constants and sentinel errors used across
// HealthMate components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors reported by the reminder store boundary.
	ErrorEmptyTitle       = errors.New("title must not be empty")
	ErrorInvalidTimeOfDay = errors.New("time must be HH:MM in 24-hour format")
	ErrorUnknownType      = errors.New("unknown reminder type")
	ErrorUnknownRepeat    = errors.New("unknown repeat kind")
)
