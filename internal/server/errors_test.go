package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/candidate-matcher/internal/db"
	"github.com/jonathan/candidate-matcher/internal/ingestion"
)

func TestErrorMessages(t *testing.T) {
	userID := uuid.New()
	assert.Equal(t, "email already registered: test@example.com", (&ErrEmailAlreadyExists{Email: "test@example.com"}).Error())
	assert.Equal(t, "invalid email or password", (&ErrInvalidCredentials{}).Error())
	assert.Equal(t, "user not found: "+userID.String(), (&ErrUserNotFound{UserID: userID}).Error())
	assert.Equal(t, "job not found: 42", (&ErrNotFound{Resource: "job", ID: "42"}).Error())
	assert.Equal(t, "job not found", (&ErrNotFound{Resource: "job"}).Error())
	assert.Equal(t, "validation error: email - invalid format", (&ErrValidation{Field: "email", Message: "invalid format"}).Error())
	assert.Equal(t, "validation error: bad input", (&ErrValidation{Message: "bad input"}).Error())
	assert.Equal(t, "unauthorized", (&ErrUnauthorized{}).Error())
	assert.Equal(t, "unauthorized: token expired", (&ErrUnauthorized{Reason: "token expired"}).Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, http.StatusOK},
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.co"}, http.StatusConflict},
		{"bad credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"unauthorized", &ErrUnauthorized{}, http.StatusUnauthorized},
		{"user not found", &ErrUserNotFound{}, http.StatusNotFound},
		{"resource not found", &ErrNotFound{Resource: "job"}, http.StatusNotFound},
		{"db not found wrapped", fmt.Errorf("job x: %w", db.ErrNotFound), http.StatusNotFound},
		{"validation", &ErrValidation{Message: "x"}, http.StatusBadRequest},
		{"text too short", fmt.Errorf("%w: 3 characters", ingestion.ErrTextTooShort), http.StatusBadRequest},
		{"unsupported media", ingestion.ErrUnsupportedMediaType, http.StatusBadRequest},
		{"wrapped typed error", fmt.Errorf("register: %w", &ErrEmailAlreadyExists{}), http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
