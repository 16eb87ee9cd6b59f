package dto

import (
	"errors"
	"strings"
)

// Field limits for project payloads.
const (
	MinProjectNameLen = 2
	MaxProjectNameLen = 80
)

// ErrProjectNameLength indicates an out-of-range project name.
var ErrProjectNameLength = errors.New("project name must be 2-80 characters")

// CreateProjectRequest is the payload for POST /projects.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// Validate checks field constraints.
func (r *CreateProjectRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	if n := len([]rune(r.Name)); n < MinProjectNameLen || n > MaxProjectNameLen {
		return ErrProjectNameLength
	}
	return nil
}
