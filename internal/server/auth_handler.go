package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/server/middleware"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	log         *zap.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService *UserService, jwtService *JWTService, log *zap.Logger) *AuthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		log:         log,
	}
}

// Register handles user registration requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.fail(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.log.Info("user registered", zap.String("user_id", user.ID.String()))
	h.issueTokens(w, http.StatusCreated, user)
}

// Login handles user login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.fail(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.issueTokens(w, http.StatusOK, user)
}

// Refresh exchanges a refresh token for a new token pair. The token comes
// from the body or, when the body has none, the Bearer header.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req types.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token := req.Token()
	if token == "" {
		token, _ = middleware.BearerToken(r)
	}
	if token == "" {
		h.fail(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(token)
	if err != nil {
		h.log.Debug("refresh rejected", zap.Error(err))
		h.fail(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	user, err := h.userService.GetUser(r.Context(), claims.UserID)
	if err != nil {
		var notFound *ErrUserNotFound
		if errors.As(err, &notFound) {
			h.fail(w, http.StatusUnauthorized, "Invalid or expired refresh token")
			return
		}
		h.serviceError(w, err)
		return
	}
	h.issueTokens(w, http.StatusOK, user)
}

// User returns the authenticated user's profile.
func (h *AuthHandler) User(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		h.fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user, h.log)
}

func (h *AuthHandler) issueTokens(w http.ResponseWriter, status int, user *types.User) {
	access, refresh, err := h.jwtService.GenerateTokenPair(user.ID)
	if err != nil {
		h.log.Error("failed to generate tokens", zap.String("user_id", user.ID.String()), zap.Error(err))
		h.fail(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	writeJSON(w, status, types.LoginResponse{
		User:         user,
		Token:        access,
		RefreshToken: refresh,
	}, h.log)
}

func (h *AuthHandler) serviceError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("auth request failed", zap.Error(err))
		h.fail(w, status, "Internal server error")
		return
	}
	h.fail(w, status, err.Error())
}

func (h *AuthHandler) fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message}, h.log)
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		// First failure only.
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}
