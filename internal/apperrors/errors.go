package apperrors

import (
	"fmt"
	"net/http"
)

// AppError is an application error carrying the HTTP status it maps to. The
// handler boundary converts it into the uniform response envelope; anything
// that is not an AppError becomes a 500 with the raw message exposed.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewInvalidInput creates a 400 error.
func NewInvalidInput(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// NewUnauthorized creates a 401 error.
func NewUnauthorized(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Message: message}
}

// NewNotFound creates a 404 error.
func NewNotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

// NewDependency creates a 500 error for a failed downstream call. The message
// is what the client sees; the wrapped error stays in the logs.
func NewDependency(message string, err error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// BreedRejectionMessage is the fixed text returned with every 422.
const BreedRejectionMessage = "Only Labrador retrievers are accepted for adoption listings."

// BreedRejection is the submission pipeline's policy rejection. It carries the
// labels the detector saw so the client can show why the photo was refused.
type BreedRejection struct {
	Labels []string
}

func (e *BreedRejection) Error() string {
	return BreedRejectionMessage
}
