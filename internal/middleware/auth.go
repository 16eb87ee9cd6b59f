package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/scoreforge/scoreforge/internal/auth"
	"github.com/scoreforge/scoreforge/internal/model"
)

// APIKeyHeader is the HTTP header carrying machine credentials.
const APIKeyHeader = "X-API-Key"

// SessionResolver resolves a bearer session token to a user.
type SessionResolver interface {
	ResolveUser(ctx context.Context, token string) (*model.User, error)
}

// ProjectResolver resolves a plaintext API key to its project.
type ProjectResolver interface {
	ResolveAPIKey(ctx context.Context, rawKey string) (*model.Project, error)
}

// SessionAuthConfig holds configuration for the session middleware.
type SessionAuthConfig struct {
	Logger   *slog.Logger
	Sessions SessionResolver
}

// SessionAuth returns a middleware that authenticates dashboard requests.
// It reads Authorization: Bearer <token>, resolves the user, and injects
// the identity into the request context. A missing header, a failed token
// check and a deleted user all produce the same 401 response; the reason
// is logged but never surfaced.
func SessionAuth(cfg SessionAuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				logAuthFailure(cfg.Logger, r, "missing_token")
				writeSessionError(w)
				return
			}

			user, err := cfg.Sessions.ResolveUser(r.Context(), token)
			if err != nil {
				logAuthFailure(cfg.Logger, r, "invalid_token")
				writeSessionError(w)
				return
			}

			ctx := auth.ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// APIKeyAuthConfig holds configuration for the API key middleware.
type APIKeyAuthConfig struct {
	Logger   *slog.Logger
	Projects ProjectResolver
}

// APIKeyAuth returns a middleware that authenticates game client requests.
// It reads the X-API-Key header and injects the resolved project - the
// tenant boundary - into the request context. Unlike session auth, the two
// failure modes are distinguished: a missing header is 401, a key that
// resolves to nothing is 403.
func APIKeyAuth(cfg APIKeyAuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawKey := r.Header.Get(APIKeyHeader)
			if rawKey == "" {
				logAuthFailure(cfg.Logger, r, "missing_key")
				writeAPIKeyError(w, http.StatusUnauthorized, "MISSING_API_KEY", "Missing API key")
				return
			}

			project, err := cfg.Projects.ResolveAPIKey(r.Context(), rawKey)
			if err != nil {
				logAuthFailure(cfg.Logger, r, "invalid_key")
				writeAPIKeyError(w, http.StatusForbidden, "INVALID_API_KEY", "Invalid API key")
				return
			}

			ctx := auth.ContextWithProject(r.Context(), project)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken extracts the token from the Authorization header.
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func logAuthFailure(logger *slog.Logger, r *http.Request, reason string) {
	logger.Warn("authentication failed",
		slog.String("reason", reason),
		slog.String("ip", r.RemoteAddr),
		slog.String("endpoint", r.Method+" "+r.URL.Path),
		slog.String("request_id", GetRequestID(r.Context())),
	)
}

// writeSessionError writes a 401 response.
// One message for all session failures to prevent oracle leakage.
func writeSessionError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"Invalid or expired token"}}`))
}

// writeAPIKeyError writes a JSON error response for API key failures.
func writeAPIKeyError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":{"code":"` + code + `","message":"` + message + `"}}`))
}
