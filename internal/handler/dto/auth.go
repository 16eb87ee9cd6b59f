// Package dto defines request/response payloads and their field-level
// validation. Constraints are checked here, before any core logic runs.
package dto

import (
	"errors"
	"regexp"
	"strings"
)

// Field limits for account payloads.
const (
	MinUsernameLen = 3
	MaxUsernameLen = 50
	MinPasswordLen = 6
	MaxPasswordLen = 256
)

// Validation errors for account payloads.
var (
	ErrUsernameLength = errors.New("username must be 3-50 characters")
	ErrEmailInvalid   = errors.New("email address is invalid")
	ErrPasswordLength = errors.New("password must be 6-256 characters")
)

// emailRegex is a pragmatic format check, not a full RFC 5322 parser.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks field constraints.
// Password length is measured in characters; byte-length normalization for
// the hash primitive happens inside the hasher, not here.
func (r *RegisterRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)

	if n := len([]rune(r.Username)); n < MinUsernameLen || n > MaxUsernameLen {
		return ErrUsernameLength
	}
	if !emailRegex.MatchString(r.Email) {
		return ErrEmailInvalid
	}
	if n := len([]rune(r.Password)); n < MinPasswordLen || n > MaxPasswordLen {
		return ErrPasswordLength
	}
	return nil
}

// TokenResponse is returned after a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
