package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scoreforge/scoreforge/internal/model"
)

// Common errors for project repository operations.
var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrProjectNameExists = errors.New("project name already exists for owner")
)

// CreateProject inserts a new project owned by a user.
// (owner_id, name) uniqueness is enforced by the store constraint.
func (r *Repository) CreateProject(ctx context.Context, project *model.Project) error {
	query := `
		INSERT INTO projects (name, owner_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		project.Name,
		project.OwnerID,
	).Scan(&project.ID, &project.CreatedAt)

	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if constraint == "projects_owner_id_name_key" {
				return ErrProjectNameExists
			}
			return fmt.Errorf("unexpected unique violation %q: %w", constraint, err)
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// GetProjectByID retrieves a project by its ID.
func (r *Repository) GetProjectByID(ctx context.Context, id int64) (*model.Project, error) {
	query := `
		SELECT id, name, owner_id, created_at
		FROM projects
		WHERE id = $1
	`

	var project model.Project
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.Name,
		&project.OwnerID,
		&project.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project by ID: %w", err)
	}

	return &project, nil
}

// ListProjectsByOwner retrieves all projects owned by a user,
// newest first.
func (r *Repository) ListProjectsByOwner(ctx context.Context, ownerID int64) ([]*model.Project, error) {
	query := `
		SELECT id, name, owner_id, created_at
		FROM projects
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		var project model.Project
		if err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.OwnerID,
			&project.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, &project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

// DeleteProject removes a project. Dependent API keys and scores are
// removed by ON DELETE CASCADE in the same transaction.
func (r *Repository) DeleteProject(ctx context.Context, id int64, ownerID int64) error {
	query := `
		DELETE FROM projects
		WHERE id = $1 AND owner_id = $2
	`

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProjectNotFound
	}

	return nil
}
