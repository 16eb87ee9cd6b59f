package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/scoreforge/scoreforge/internal/handler/dto"
	"github.com/scoreforge/scoreforge/internal/service"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	svc    *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		logger: logger,
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	user, err := h.svc.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			writeError(w, http.StatusBadRequest, "USERNAME_TAKEN", "Username already exists")
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusBadRequest, "EMAIL_TAKEN", "Email already exists")
		default:
			h.logger.Error("failed to register user", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register user")
		}
		return
	}

	h.logger.Info("user_registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)

	writeJSON(w, http.StatusCreated, user.ToResponse())
}

// Login handles POST /auth/login.
// Credentials arrive form-encoded (username, password), matching the
// OAuth2 password flow the dashboard uses.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FORM", "Invalid form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeError(w, http.StatusBadRequest, "MISSING_CREDENTIALS", "Username and password are required")
		return
	}

	token, err := h.svc.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One message for unknown user and wrong password alike.
			writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
			return
		}
		h.logger.Error("failed to login user", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to login")
		return
	}

	writeJSON(w, http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
