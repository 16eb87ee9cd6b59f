package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scoreforge/scoreforge/internal/model"
)

// Common errors for API key repository operations.
var (
	ErrAPIKeyNotFound   = errors.New("API key not found")
	ErrKeyAlreadyExists = errors.New("API key already exists for project")
)

// CreateAPIKey inserts a new API key bound to a project.
// The one-key-per-project policy is enforced by the unique constraint on
// project_id: two concurrent issues for the same project cannot both
// succeed, regardless of any application-level existence check.
func (r *Repository) CreateAPIKey(ctx context.Context, key *model.APIKey) error {
	query := `
		INSERT INTO api_keys (id, project_id, key_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query,
		key.ID,
		key.ProjectID,
		key.KeyHash,
	).Scan(&key.CreatedAt)

	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if constraint == "api_keys_project_id_key" {
				return ErrKeyAlreadyExists
			}
			// key_hash collision of a freshly generated 256-bit secret.
			return fmt.Errorf("unexpected unique violation %q: %w", constraint, err)
		}
		return fmt.Errorf("failed to create API key: %w", err)
	}

	return nil
}

// GetProjectByKeyHash resolves the project that owns the API key with the
// given lookup hash. A forged or mutated key simply finds no row; the
// result shape does not reveal why.
func (r *Repository) GetProjectByKeyHash(ctx context.Context, keyHash string) (*model.Project, error) {
	query := `
		SELECT p.id, p.name, p.owner_id, p.created_at
		FROM api_keys k
		JOIN projects p ON p.id = k.project_id
		WHERE k.key_hash = $1
	`

	var project model.Project
	err := r.pool.QueryRow(ctx, query, keyHash).Scan(
		&project.ID,
		&project.Name,
		&project.OwnerID,
		&project.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAPIKeyNotFound
		}
		return nil, fmt.Errorf("failed to resolve API key: %w", err)
	}

	return &project, nil
}

// GetAPIKeyByProjectID retrieves the key row for a project, if any.
func (r *Repository) GetAPIKeyByProjectID(ctx context.Context, projectID int64) (*model.APIKey, error) {
	query := `
		SELECT id, project_id, key_hash, created_at
		FROM api_keys
		WHERE project_id = $1
	`

	var key model.APIKey
	err := r.pool.QueryRow(ctx, query, projectID).Scan(
		&key.ID,
		&key.ProjectID,
		&key.KeyHash,
		&key.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAPIKeyNotFound
		}
		return nil, fmt.Errorf("failed to get API key by project: %w", err)
	}

	return &key, nil
}
