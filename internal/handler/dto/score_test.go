package dto

import (
	"errors"
	"strings"
	"testing"
)

func ptr(v int64) *int64 { return &v }

func TestSubmitScoreRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     SubmitScoreRequest
		wantErr error
	}{
		{"valid", SubmitScoreRequest{Username: "player1", Value: ptr(1500)}, nil},
		{"zero value", SubmitScoreRequest{Username: "player1", Value: ptr(0)}, nil},
		{"negative value", SubmitScoreRequest{Username: "player1", Value: ptr(-1)}, ErrScoreValueInvalid},
		{"missing value", SubmitScoreRequest{Username: "player1", Value: nil}, ErrScoreValueInvalid},
		{"username too short", SubmitScoreRequest{Username: "ab", Value: ptr(100)}, ErrScoreUsernameLength},
		{"username too long", SubmitScoreRequest{Username: strings.Repeat("a", 51), Value: ptr(100)}, ErrScoreUsernameLength},
		{"multibyte username counts characters", SubmitScoreRequest{Username: strings.Repeat("ä", 30), Value: ptr(100)}, nil},
		{"multibyte username too long", SubmitScoreRequest{Username: strings.Repeat("ä", 51), Value: ptr(100)}, ErrScoreUsernameLength},
		{"empty username", SubmitScoreRequest{Username: "", Value: ptr(100)}, ErrScoreUsernameLength},
		{"large value", SubmitScoreRequest{Username: "player1", Value: ptr(1 << 62)}, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.req.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
