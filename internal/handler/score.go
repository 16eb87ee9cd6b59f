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

// ScoreHandler handles score submission and leaderboard reads.
type ScoreHandler struct {
	svc    *service.ScoreService
	logger *slog.Logger
}

// NewScoreHandler creates a new ScoreHandler.
func NewScoreHandler(svc *service.ScoreService, logger *slog.Logger) *ScoreHandler {
	return &ScoreHandler{
		svc:    svc,
		logger: logger,
	}
}

// Submit handles POST /scores/submit.
// The target project comes from the API key the middleware resolved;
// nothing in the request body can redirect the write to another tenant.
func (h *ScoreHandler) Submit(w http.ResponseWriter, r *http.Request) {
	project := auth.ProjectFromContext(r.Context())
	if project == nil {
		writeError(w, http.StatusUnauthorized, "MISSING_API_KEY", "Missing API key")
		return
	}

	var req dto.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "VALIDATION_FAILED", err.Error())
		return
	}

	score, err := h.svc.Submit(r.Context(), project.ID, req.Username, *req.Value)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidScoreValue),
			errors.Is(err, service.ErrInvalidScoreUsername):
			writeError(w, http.StatusUnprocessableEntity, "VALIDATION_FAILED", err.Error())
		default:
			h.logger.Error("failed to submit score", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit score")
		}
		return
	}

	h.logger.Info("score_submitted",
		slog.Int64("score_id", score.ID),
		slog.Int64("project_id", project.ID),
		slog.Int64("value", score.Value),
	)

	writeJSON(w, http.StatusOK, dto.SubmitScoreResponse{
		OK: true,
		ID: score.ID,
	})
}

// Leaderboard handles GET /scores/leaderboard/{project_id}.
// Public read: leaderboards are meant to be embedded in games and sites,
// so reads are not tenant-gated the way writes are.
func (h *ScoreHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "project_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PROJECT_ID", "Project ID must be an integer")
		return
	}

	limit := service.DefaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	scores, err := h.svc.Leaderboard(r.Context(), projectID, limit)
	if err != nil {
		h.logger.Error("failed to query leaderboard", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to query leaderboard")
		return
	}

	responses := make([]model.ScoreResponse, 0, len(scores))
	for _, score := range scores {
		responses = append(responses, score.ToResponse())
	}

	writeJSON(w, http.StatusOK, responses)
}
