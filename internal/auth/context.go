package auth

import (
	"context"

	"github.com/scoreforge/scoreforge/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// userContextKey is the context key for the resolved dashboard user.
	userContextKey contextKey = "auth_user"
	// projectContextKey is the context key for the resolved tenant project.
	projectContextKey contextKey = "auth_project"
)

// ContextWithUser adds the resolved user to the context.
func ContextWithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext retrieves the resolved user from the context.
// Returns nil if no session middleware has run.
func UserFromContext(ctx context.Context) *model.User {
	user, ok := ctx.Value(userContextKey).(*model.User)
	if !ok {
		return nil
	}
	return user
}

// ContextWithProject adds the resolved project to the context.
func ContextWithProject(ctx context.Context, project *model.Project) context.Context {
	return context.WithValue(ctx, projectContextKey, project)
}

// ProjectFromContext retrieves the resolved project from the context.
// Returns nil if no API key middleware has run. Tenant-scoped writes must
// use this value for scoping, never a client-supplied project ID.
func ProjectFromContext(ctx context.Context) *model.Project {
	project, ok := ctx.Value(projectContextKey).(*model.Project)
	if !ok {
		return nil
	}
	return project
}
