package model

import "time"

// Score is an immutable leaderboard entry under a project. The username is
// free text supplied by the game client and is unrelated to User accounts.
type Score struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	Username  string    `json:"username"`
	Value     int64     `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// ScoreResponse is a single leaderboard row.
type ScoreResponse struct {
	Username string `json:"username"`
	Value    int64  `json:"value"`
}

// ToResponse converts a Score to its public leaderboard representation.
func (s *Score) ToResponse() ScoreResponse {
	return ScoreResponse{
		Username: s.Username,
		Value:    s.Value,
	}
}
