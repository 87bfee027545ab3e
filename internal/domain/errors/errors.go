package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Join denial reasons, checked in this order by the eligibility rules.
	ErrEventClosed    = errors.New("event is closed")
	ErrDeadlinePassed = errors.New("registration deadline has passed")
	ErrAlreadyJoined  = errors.New("already registered for this event")
	ErrEventFull      = errors.New("event has reached capacity")
	ErrAlreadyMember  = errors.New("already a member of this team")

	ErrInvalidTeamName   = errors.New("invalid team name")
	ErrDuplicateTeamName = errors.New("team name already taken for this event")

	// ErrVersionConflict means a conditional write lost against a
	// concurrent writer; the caller re-reads and retries.
	ErrVersionConflict = errors.New("row version conflict")
	// ErrConcurrencyExhausted means the retry budget ran out. Distinct
	// from a policy denial so the caller can prompt a retry.
	ErrConcurrencyExhausted = errors.New("too many concurrent updates, try again")
	ErrStoreUnavailable     = errors.New("store unavailable")
)

// AppError represents an application error with an HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func Conflict(message string, err error) *AppError {
	return NewAppError(http.StatusConflict, message, err)
}

func ServiceUnavailable(message string, err error) *AppError {
	return NewAppError(http.StatusServiceUnavailable, message, err)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}
