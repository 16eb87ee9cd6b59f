package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/scoreforge/scoreforge/internal/auth"
	"github.com/scoreforge/scoreforge/internal/cache"
	"github.com/scoreforge/scoreforge/internal/model"
	"github.com/scoreforge/scoreforge/internal/repository"
)

// Project service errors.
var (
	ErrProjectNameTaken = errors.New("project name already exists")
	// ErrProjectNotFound is returned both when the project is absent and
	// when it belongs to another user, so key issuance cannot be used to
	// probe for foreign project IDs.
	ErrProjectNotFound = errors.New("project not found")
	ErrKeyExists       = errors.New("project already has an API key")
	ErrUnknownAPIKey   = errors.New("unknown API key")
)

// ProjectService handles tenant namespaces and their API keys.
type ProjectService struct {
	repo   *repository.Repository
	cache  *cache.Cache
	logger *slog.Logger
	keyEnv string
}

// NewProjectService creates a new ProjectService.
// keyEnv selects the generated key prefix (auth.EnvLive or auth.EnvTest).
func NewProjectService(repo *repository.Repository, cacheClient *cache.Cache, logger *slog.Logger, keyEnv string) *ProjectService {
	return &ProjectService{
		repo:   repo,
		cache:  cacheClient,
		logger: logger,
		keyEnv: keyEnv,
	}
}

// Create creates a project owned by ownerID.
func (s *ProjectService) Create(ctx context.Context, ownerID int64, name string) (*model.Project, error) {
	project := &model.Project{
		Name:    name,
		OwnerID: ownerID,
	}

	if err := s.repo.CreateProject(ctx, project); err != nil {
		if errors.Is(err, repository.ErrProjectNameExists) {
			return nil, ErrProjectNameTaken
		}
		return nil, err
	}

	return project, nil
}

// List returns all projects owned by ownerID.
func (s *ProjectService) List(ctx context.Context, ownerID int64) ([]*model.Project, error) {
	return s.repo.ListProjectsByOwner(ctx, ownerID)
}

// IssueKey generates the API key for a project the caller owns.
// The plaintext is returned exactly once and never persisted; only its
// lookup hash is stored. A second call fails with ErrKeyExists - the
// unique constraint on project_id is the real guard under concurrency.
func (s *ProjectService) IssueKey(ctx context.Context, ownerID, projectID int64) (string, error) {
	project, err := s.repo.GetProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return "", ErrProjectNotFound
		}
		return "", err
	}
	if project.OwnerID != ownerID {
		return "", ErrProjectNotFound
	}

	generated, err := auth.GenerateAPIKey(s.keyEnv)
	if err != nil {
		return "", fmt.Errorf("generate api key: %w", err)
	}

	key := &model.APIKey{
		ID:        ulid.Make().String(),
		ProjectID: projectID,
		KeyHash:   generated.Hash,
	}

	if err := s.repo.CreateAPIKey(ctx, key); err != nil {
		if errors.Is(err, repository.ErrKeyAlreadyExists) {
			return "", ErrKeyExists
		}
		return "", err
	}

	s.logger.Info("api_key_issued",
		slog.String("key_id", key.ID),
		slog.Int64("project_id", projectID),
		slog.Int64("owner_id", ownerID),
	)

	return generated.Plaintext, nil
}

// ResolveAPIKey maps a presented plaintext key to its project.
// Malformed keys are rejected before any hash or lookup work; a
// well-formed key that was never issued gets ErrUnknownAPIKey. Both land
// as the same 403 at the HTTP boundary.
func (s *ProjectService) ResolveAPIKey(ctx context.Context, rawKey string) (*model.Project, error) {
	if !auth.ValidateKeyFormat(rawKey) {
		return nil, auth.ErrInvalidKeyFormat
	}

	keyHash := auth.LookupHash(rawKey)

	if cached, _ := s.cache.GetProjectByKeyHash(ctx, keyHash); cached != nil {
		return cached, nil
	}

	project, err := s.repo.GetProjectByKeyHash(ctx, keyHash)
	if err != nil {
		if errors.Is(err, repository.ErrAPIKeyNotFound) {
			return nil, ErrUnknownAPIKey
		}
		return nil, err
	}

	if err := s.cache.SetProjectByKeyHash(ctx, keyHash, project); err != nil {
		// Cache write failures must not fail resolution.
		s.logger.Warn("cache api key resolution", slog.String("error", err.Error()))
	}

	return project, nil
}
