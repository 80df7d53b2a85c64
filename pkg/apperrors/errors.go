// Package apperrors holds the error taxonomy shared by the claim, entitlement and wallet workflows
// and its mapping onto client-facing classifications.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation is returned when a required field is missing or malformed. Nothing is mutated.
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned when a claim or subscription does not exist or belongs to someone else.
	ErrNotFound = errors.New("not found")

	// ErrExpired is returned when a subscription's end date has passed.
	ErrExpired = errors.New("subscription expired")

	// ErrQuotaExhausted is returned when an entitlement has no remaining units.
	ErrQuotaExhausted = errors.New("quota exhausted")

	// ErrInvalidTransition is returned when a claim's status does not permit the requested event.
	ErrInvalidTransition = errors.New("invalid claim transition")

	// ErrDependencyFailure marks failures of notification, queue or payment collaborators.
	ErrDependencyFailure = errors.New("dependency failure")
)

// Kind is the classification carried in error responses.
type Kind string

const (
	KindValidation        Kind = "ValidationError"
	KindNotFound          Kind = "NotFound"
	KindExpired           Kind = "Expired"
	KindQuotaExhausted    Kind = "QuotaExhausted"
	KindInvalidTransition Kind = "InvalidTransition"
	KindDependencyFailure Kind = "DependencyFailure"
	KindInternal          Kind = "InternalError"
)

// Validation wraps a message as an ErrValidation.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Classify returns the Kind and HTTP status for err.
func Classify(err error) (Kind, int) {
	switch {
	case errors.Is(err, ErrValidation):
		return KindValidation, http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return KindNotFound, http.StatusNotFound
	case errors.Is(err, ErrExpired):
		return KindExpired, http.StatusForbidden
	case errors.Is(err, ErrQuotaExhausted):
		return KindQuotaExhausted, http.StatusUnprocessableEntity
	case errors.Is(err, ErrInvalidTransition):
		return KindInvalidTransition, http.StatusConflict
	case errors.Is(err, ErrDependencyFailure):
		return KindDependencyFailure, http.StatusBadGateway
	default:
		return KindInternal, http.StatusInternalServerError
	}
}
