package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jcmanalo/barangay-records/internal/certify"
	"github.com/jcmanalo/barangay-records/internal/db"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"username taken", &ErrUsernameAlreadyExists{Username: "chairman"}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"user not found", &ErrUserNotFound{UserID: uuid.New()}, http.StatusNotFound},
		{"forbidden", &ErrForbidden{}, http.StatusForbidden},
		{"validation", &ErrValidation{Field: "role", Message: "unknown role"}, http.StatusBadRequest},
		{"bind validation", &certify.ValidationError{Field: "serial_number", Message: "missing serial number"}, http.StatusBadRequest},
		{"unknown certificate type", &certify.UnknownTypeError{Type: "diploma"}, http.StatusBadRequest},
		{"duplicate serial", db.ErrDuplicateSerial, http.StatusBadRequest},
		{"wrapped duplicate serial", fmt.Errorf("saving: %w", db.ErrDuplicateSerial), http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "username already taken: chairman", (&ErrUsernameAlreadyExists{Username: "chairman"}).Error())
	assert.Equal(t, "invalid username or password", (&ErrInvalidCredentials{}).Error())
	assert.Equal(t, "access denied", (&ErrForbidden{}).Error())
	assert.Equal(t, "validation error: role - unknown role", (&ErrValidation{Field: "role", Message: "unknown role"}).Error())
}
