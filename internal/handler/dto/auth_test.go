package dto

import (
	"errors"
	"strings"
	"testing"
)

func TestRegisterRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{
			name:    "valid",
			req:     RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "Secret123"},
			wantErr: nil,
		},
		{
			name:    "username at minimum length",
			req:     RegisterRequest{Username: "abc", Email: "a@b.co", Password: "Secret123"},
			wantErr: nil,
		},
		{
			name:    "username at maximum length",
			req:     RegisterRequest{Username: strings.Repeat("a", 50), Email: "a@b.co", Password: "Secret123"},
			wantErr: nil,
		},
		{
			name:    "username too short",
			req:     RegisterRequest{Username: "ab", Email: "a@b.co", Password: "Secret123"},
			wantErr: ErrUsernameLength,
		},
		{
			name:    "username too long",
			req:     RegisterRequest{Username: strings.Repeat("a", 51), Email: "a@b.co", Password: "Secret123"},
			wantErr: ErrUsernameLength,
		},
		{
			name:    "username only whitespace",
			req:     RegisterRequest{Username: "   ", Email: "a@b.co", Password: "Secret123"},
			wantErr: ErrUsernameLength,
		},
		{
			name:    "email missing at sign",
			req:     RegisterRequest{Username: "alice", Email: "alice.example.com", Password: "Secret123"},
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "email missing domain dot",
			req:     RegisterRequest{Username: "alice", Email: "alice@example", Password: "Secret123"},
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "email with spaces",
			req:     RegisterRequest{Username: "alice", Email: "al ice@example.com", Password: "Secret123"},
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "empty email",
			req:     RegisterRequest{Username: "alice", Email: "", Password: "Secret123"},
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "password too short",
			req:     RegisterRequest{Username: "alice", Email: "a@b.co", Password: "12345"},
			wantErr: ErrPasswordLength,
		},
		{
			name:    "password at minimum length",
			req:     RegisterRequest{Username: "alice", Email: "a@b.co", Password: "123456"},
			wantErr: nil,
		},
		{
			name:    "password too long",
			req:     RegisterRequest{Username: "alice", Email: "a@b.co", Password: strings.Repeat("a", 257)},
			wantErr: ErrPasswordLength,
		},
		{
			name:    "password at maximum length",
			req:     RegisterRequest{Username: "alice", Email: "a@b.co", Password: strings.Repeat("a", 256)},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterRequest_Validate_TrimsFields(t *testing.T) {
	t.Parallel()

	req := RegisterRequest{Username: "  alice  ", Email: " alice@example.com ", Password: "Secret123"}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if req.Username != "alice" {
		t.Errorf("Username = %q, want trimmed %q", req.Username, "alice")
	}
	if req.Email != "alice@example.com" {
		t.Errorf("Email = %q, want trimmed %q", req.Email, "alice@example.com")
	}
}
