package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncScoreSubmitted is a no-op.
func (n *NoopRecorder) IncScoreSubmitted() {}

// IncScoreRejected is a no-op.
func (n *NoopRecorder) IncScoreRejected() {}

// IncLeaderboardCacheHit is a no-op.
func (n *NoopRecorder) IncLeaderboardCacheHit() {}

// IncLeaderboardCacheMiss is a no-op.
func (n *NoopRecorder) IncLeaderboardCacheMiss() {}
