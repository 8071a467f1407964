package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrAlreadyExists       = errors.New("resource already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrSessionNotFound     = errors.New("onboarding session not found")
	ErrInvalidPlateFormat  = errors.New("invalid plate format")
	ErrSectionGateFailed   = errors.New("section validation failed")
	ErrForwardNotPermitted = errors.New("forward navigation requires saving the current section")
	ErrLookupInFlight      = errors.New("a plate verification is already in progress")
	ErrNoActiveChallenge   = errors.New("no ownership challenge in progress")
	ErrChallengeExhausted  = errors.New("too many failed attempts, restart verification")
	ErrSubmissionPending   = errors.New("a submission is already in flight")
	ErrNotSubmittable      = errors.New("personal and car sections must be completed first")
)

// AppError represents an application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
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
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, "ERR_NOT_FOUND", message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "ERR_BAD_REQUEST", message, ErrInvalidInput)
}

func Conflict(message string, err error) *AppError {
	return NewAppError(http.StatusConflict, "ERR_CONFLICT", message, err)
}

func UnprocessableEntity(message string, err error) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, "ERR_UNPROCESSABLE", message, err)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "ERR_INTERNAL", "internal server error", err)
}

// NewError creates a new error with a custom message wrapping an existing error
func NewError(message string, err error) error {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    "ERR_BAD_REQUEST",
		Message: message,
		Err:     err,
	}
}
