package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/scoreforge/scoreforge/internal/auth"
	"github.com/scoreforge/scoreforge/internal/handler/dto"
	"github.com/scoreforge/scoreforge/internal/model"
	"github.com/scoreforge/scoreforge/internal/service"
)

// ProjectHandler handles project and API key management endpoints.
// All routes require session auth; the owner is always the resolved user.
type ProjectHandler struct {
	svc    *service.ProjectService
	logger *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(svc *service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req dto.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	project, err := h.svc.Create(r.Context(), user.ID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrProjectNameTaken) {
			writeError(w, http.StatusConflict, "PROJECT_NAME_TAKEN", "Project name already exists")
			return
		}
		h.logger.Error("failed to create project", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create project")
		return
	}

	h.logger.Info("project_created",
		slog.Int64("project_id", project.ID),
		slog.Int64("owner_id", user.ID),
	)

	writeJSON(w, http.StatusCreated, project.ToResponse())
}

// List handles GET /projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	projects, err := h.svc.List(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to list projects", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list projects")
		return
	}

	responses := make([]model.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, project.ToResponse())
	}

	writeJSON(w, http.StatusOK, responses)
}

// IssueKey handles POST /projects/{project_id}/keys.
func (h *ProjectHandler) IssueKey(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	projectID, err := strconv.ParseInt(chi.URLParam(r, "project_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PROJECT_ID", "Project ID must be an integer")
		return
	}

	plaintext, err := h.svc.IssueKey(r.Context(), user.ID, projectID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			// Covers both absent projects and foreign ownership.
			writeError(w, http.StatusNotFound, "PROJECT_NOT_FOUND", "Project not found")
		case errors.Is(err, service.ErrKeyExists):
			writeError(w, http.StatusConflict, "KEY_EXISTS", "API key already exists for this project")
		default:
			h.logger.Error("failed to issue API key", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue API key")
		}
		return
	}

	// The plaintext appears in this response and nowhere else, ever.
	writeJSON(w, http.StatusCreated, model.APIKeyCreateResponse{
		APIKey:    plaintext,
		ProjectID: projectID,
	})
}
