package dto

import "errors"

// Validation errors for score payloads.
var (
	ErrScoreUsernameLength = errors.New("username must be 3-50 characters")
	ErrScoreValueInvalid   = errors.New("value must be a non-negative integer")
)

// SubmitScoreRequest is the payload for POST /scores/submit.
// Value is a pointer so an absent field is distinguishable from zero.
type SubmitScoreRequest struct {
	Username string `json:"username"`
	Value    *int64 `json:"value"`
}

// Validate checks field constraints.
func (r *SubmitScoreRequest) Validate() error {
	if n := len([]rune(r.Username)); n < MinUsernameLen || n > MaxUsernameLen {
		return ErrScoreUsernameLength
	}
	if r.Value == nil || *r.Value < 0 {
		return ErrScoreValueInvalid
	}
	return nil
}

// SubmitScoreResponse acknowledges a stored score.
type SubmitScoreResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}
