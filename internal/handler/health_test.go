package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeChecker struct {
	err error
}

func (f *fakeChecker) Ping(_ context.Context) error { return f.err }

func TestHealthz(t *testing.T) {
	t.Parallel()

	// Liveness never touches dependencies, even broken ones.
	h := NewHealthHandler(&fakeChecker{err: errors.New("down")}, &fakeChecker{err: errors.New("down")})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.Healthz(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestReadyz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		dbErr        error
		cacheErr     error
		wantStatus   int
		wantPostgres string
		wantRedis    string
	}{
		{
			name:         "all healthy",
			wantStatus:   http.StatusOK,
			wantPostgres: "ok",
			wantRedis:    "ok",
		},
		{
			name:         "database down",
			dbErr:        errors.New("connection refused"),
			wantStatus:   http.StatusServiceUnavailable,
			wantPostgres: "error: connection refused",
			wantRedis:    "ok",
		},
		{
			name:         "cache down",
			cacheErr:     errors.New("connection refused"),
			wantStatus:   http.StatusServiceUnavailable,
			wantPostgres: "ok",
			wantRedis:    "error: connection refused",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(&fakeChecker{err: tt.dbErr}, &fakeChecker{err: tt.cacheErr})

			req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
			rec := httptest.NewRecorder()
			h.Readyz(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body HealthResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Checks["postgres"] != tt.wantPostgres {
				t.Errorf("postgres check = %q, want %q", body.Checks["postgres"], tt.wantPostgres)
			}
			if body.Checks["redis"] != tt.wantRedis {
				t.Errorf("redis check = %q, want %q", body.Checks["redis"], tt.wantRedis)
			}
		})
	}
}
