//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateUserRequest represents the request to register a recruiter account.
type CreateUserRequest struct {
	Name     string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries a refresh token in the body. The token may also be
// sent as a Bearer header, in which case the body can be empty.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
	// LegacyRefreshToken is the camelCase field sent by older web clients.
	LegacyRefreshToken string `json:"refreshToken,omitempty"`
}

// Token returns whichever body field carries the refresh token.
func (r RefreshRequest) Token() string {
	if t := strings.TrimSpace(r.RefreshToken); t != "" {
		return t
	}
	return strings.TrimSpace(r.LegacyRefreshToken)
}

// User represents a user profile for API responses (avoids import cycle with db package).
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name,omitempty"`
	Email       string    `json:"email"`
	PasswordSet bool      `json:"password_set"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginResponse represents the login/register/refresh response.
type LoginResponse struct {
	User         *User  `json:"user,omitempty"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// Validate validates the CreateUserRequest using the validator.
func (r *CreateUserRequest) Validate() error {
	return newValidator().Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	return newValidator().Struct(r)
}
