package model

import "time"

// Project is a tenant namespace for leaderboard data. Every score and API
// key belongs to exactly one project; (owner_id, name) pairs are unique.
type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectResponse is the public representation of a project.
type ProjectResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToResponse converts a Project to its public representation.
func (p *Project) ToResponse() ProjectResponse {
	return ProjectResponse{
		ID:   p.ID,
		Name: p.Name,
	}
}
