package repository

import (
	"context"
	"fmt"

	"github.com/scoreforge/scoreforge/internal/model"
)

// CreateScore appends an immutable score record under a project.
// The creation timestamp is assigned by the store at write time.
func (r *Repository) CreateScore(ctx context.Context, score *model.Score) error {
	query := `
		INSERT INTO scores (project_id, username, value)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		score.ProjectID,
		score.Username,
		score.Value,
	).Scan(&score.ID, &score.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create score: %w", err)
	}

	return nil
}

// TopScores returns up to limit scores for a project, highest value first,
// ties broken by newest created_at. The (value, created_at) pair gives a
// deterministic total order.
func (r *Repository) TopScores(ctx context.Context, projectID int64, limit int) ([]*model.Score, error) {
	query := `
		SELECT id, project_id, username, value, created_at
		FROM scores
		WHERE project_id = $1
		ORDER BY value DESC, created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top scores: %w", err)
	}
	defer rows.Close()

	var scores []*model.Score
	for rows.Next() {
		var score model.Score
		if err := rows.Scan(
			&score.ID,
			&score.ProjectID,
			&score.Username,
			&score.Value,
			&score.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, &score)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scores: %w", err)
	}

	return scores, nil
}

// CountScores returns the number of scores stored for a project.
func (r *Repository) CountScores(ctx context.Context, projectID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM scores WHERE project_id = $1`, projectID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count scores: %w", err)
	}
	return count, nil
}
