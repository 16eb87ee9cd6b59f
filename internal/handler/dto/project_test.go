package dto

import (
	"errors"
	"strings"
	"testing"
)

func TestCreateProjectRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     CreateProjectRequest
		wantErr error
	}{
		{"valid", CreateProjectRequest{Name: "Space Invaders"}, nil},
		{"minimum length", CreateProjectRequest{Name: "ab"}, nil},
		{"maximum length", CreateProjectRequest{Name: strings.Repeat("a", 80)}, nil},
		{"too short", CreateProjectRequest{Name: "a"}, ErrProjectNameLength},
		{"too long", CreateProjectRequest{Name: strings.Repeat("a", 81)}, ErrProjectNameLength},
		{"empty", CreateProjectRequest{Name: ""}, ErrProjectNameLength},
		{"only whitespace", CreateProjectRequest{Name: "    "}, ErrProjectNameLength},
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

func TestCreateProjectRequest_Validate_Trims(t *testing.T) {
	t.Parallel()

	req := CreateProjectRequest{Name: "  My Game  "}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if req.Name != "My Game" {
		t.Errorf("Name = %q, want trimmed %q", req.Name, "My Game")
	}
}
