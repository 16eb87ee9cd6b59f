package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/scoreforge/scoreforge/internal/cache"
	"github.com/scoreforge/scoreforge/internal/metrics"
	"github.com/scoreforge/scoreforge/internal/model"
	"github.com/scoreforge/scoreforge/internal/repository"
)

// Score service errors.
var (
	ErrInvalidScoreValue    = errors.New("score value must be non-negative")
	ErrInvalidScoreUsername = errors.New("score username must be 3-50 characters")
)

// Leaderboard limits.
const (
	DefaultLeaderboardLimit = 20
	MaxLeaderboardLimit     = 100
)

// ScoreService handles score ingestion and ranked reads.
type ScoreService struct {
	repo    *repository.Repository
	cache   *cache.Cache
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewScoreService creates a new ScoreService.
func NewScoreService(repo *repository.Repository, cacheClient *cache.Cache, logger *slog.Logger, recorder metrics.Recorder) *ScoreService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ScoreService{
		repo:    repo,
		cache:   cacheClient,
		logger:  logger,
		metrics: recorder,
	}
}

// Submit appends a score under projectID. The project ID must come from
// the resolved API key, never from client input; that rule is what keeps
// one tenant from writing into another's leaderboard.
func (s *ScoreService) Submit(ctx context.Context, projectID int64, username string, value int64) (*model.Score, error) {
	if err := validateScore(username, value); err != nil {
		s.metrics.IncScoreRejected()
		return nil, err
	}

	score := &model.Score{
		ProjectID: projectID,
		Username:  username,
		Value:     value,
	}

	if err := s.repo.CreateScore(ctx, score); err != nil {
		return nil, err
	}

	s.metrics.IncScoreSubmitted()

	if err := s.cache.InvalidateLeaderboard(ctx, projectID); err != nil {
		// Stale cache entries expire on their own shortly.
		s.logger.Warn("invalidate leaderboard cache",
			slog.Int64("project_id", projectID),
			slog.String("error", err.Error()),
		)
	}

	return score, nil
}

// validateScore checks ingestion constraints. Username length counts
// characters, not bytes, matching the HTTP boundary and the column type.
func validateScore(username string, value int64) error {
	if value < 0 {
		return ErrInvalidScoreValue
	}
	if n := len([]rune(username)); n < 3 || n > 50 {
		return ErrInvalidScoreUsername
	}
	return nil
}

// Leaderboard returns up to limit scores for projectID, highest value
// first, ties broken by newest submission. A non-positive limit falls back
// to the default; anything above the maximum is clamped.
func (s *ScoreService) Leaderboard(ctx context.Context, projectID int64, limit int) ([]*model.Score, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	if cached, _ := s.cache.GetLeaderboard(ctx, projectID, limit); cached != nil {
		s.metrics.IncLeaderboardCacheHit()
		return cached, nil
	}
	s.metrics.IncLeaderboardCacheMiss()

	scores, err := s.repo.TopScores(ctx, projectID, limit)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetLeaderboard(ctx, projectID, limit, scores); err != nil {
		s.logger.Warn("cache leaderboard",
			slog.Int64("project_id", projectID),
			slog.String("error", err.Error()),
		)
	}

	return scores, nil
}
