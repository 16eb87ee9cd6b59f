package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSecurityHeaders(t *testing.T) {
	handler := Security(SecurityConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
		"Cache-Control":          "no-store",
	}

	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Errorf("header %s = %q, want %q", header, got, value)
		}
	}
}

func TestSecurityBodyLimit(t *testing.T) {
	tests := []struct {
		name     string
		maxBytes int64
		body     string
		wantErr  bool
	}{
		{
			name:     "small body allowed",
			maxBytes: 1024,
			body:     "small body",
			wantErr:  false,
		},
		{
			name:     "oversized body rejected",
			maxBytes: 10,
			body:     strings.Repeat("x", 100),
			wantErr:  true,
		},
		{
			name:     "zero limit disables the cap",
			maxBytes: 0,
			body:     strings.Repeat("x", 100),
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var readErr error
			handler := Security(SecurityConfig{MaxRequestBodySize: tt.maxBytes})(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					_, readErr = io.ReadAll(r.Body)
					w.WriteHeader(http.StatusOK)
				}))

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if tt.wantErr && readErr == nil {
				t.Error("expected body read to fail past the limit")
			}
			if !tt.wantErr && readErr != nil {
				t.Errorf("body read failed: %v", readErr)
			}
		})
	}
}
