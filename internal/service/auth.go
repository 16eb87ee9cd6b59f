// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/scoreforge/scoreforge/internal/auth"
	"github.com/scoreforge/scoreforge/internal/model"
	"github.com/scoreforge/scoreforge/internal/repository"
)

// Auth service errors.
var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so the boundary cannot be used as a user enumeration oracle.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles registration and login for dashboard users.
type AuthService struct {
	repo   *repository.Repository
	tokens *auth.TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.Repository, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
	}
}

// RegisterInput defines input for creating a user account.
// Field constraints are checked at the HTTP boundary before this runs.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new user with a hashed password. The store's unique
// constraints are the authoritative conflict signal; there is no existence
// pre-check to race against.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	passwordHash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameExists):
			return nil, ErrUsernameTaken
		case errors.Is(err, repository.ErrEmailExists):
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and returns a signed session token.
// Unknown username and wrong password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

// ResolveUser loads the user behind a validated session token subject.
// A valid token whose user no longer exists fails the same way as an
// invalid token; the distinction stays internal.
func (s *AuthService) ResolveUser(ctx context.Context, token string) (*model.User, error) {
	username, err := s.tokens.Validate(token)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	return user, nil
}
