// Package server provides the HTTP REST API for the barangay records system.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jcmanalo/barangay-records/internal/certify"
	"github.com/jcmanalo/barangay-records/internal/db"
)

// ErrUsernameAlreadyExists indicates the username is already registered
type ErrUsernameAlreadyExists struct {
	Username string
}

func (e *ErrUsernameAlreadyExists) Error() string {
	return fmt.Sprintf("username already taken: %s", e.Username)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrForbidden indicates the authenticated user's role does not permit the
// requested operation
type ErrForbidden struct{}

func (e *ErrForbidden) Error() string {
	return "access denied"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrUsernameAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound:
		return http.StatusNotFound
	case *ErrForbidden:
		return http.StatusForbidden
	case *ErrValidation:
		return http.StatusBadRequest
	}

	var bindErr *certify.ValidationError
	if errors.As(err, &bindErr) {
		return http.StatusBadRequest
	}
	var typeErr *certify.UnknownTypeError
	if errors.As(err, &typeErr) {
		return http.StatusBadRequest
	}
	if errors.Is(err, db.ErrDuplicateSerial) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
