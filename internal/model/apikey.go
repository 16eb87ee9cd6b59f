package model

import "time"

// APIKey is the stored credential bound 1:1 to a project. Only the lookup
// hash of the secret is persisted; the plaintext is shown once at issue
// time and is unrecoverable afterwards.
type APIKey struct {
	ID        string    `json:"id"`
	ProjectID int64     `json:"project_id"`
	KeyHash   string    `json:"-"` // Never serialize
	CreatedAt time.Time `json:"created_at"`
}

// APIKeyCreateResponse includes the plaintext key (shown only once).
type APIKeyCreateResponse struct {
	APIKey    string `json:"api_key"` // Plaintext - display once only!
	ProjectID int64  `json:"project_id"`
}
