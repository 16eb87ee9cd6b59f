package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	ScoresSubmitted        uint64
	ScoresRejected         uint64
	LeaderboardCacheHits   uint64
	LeaderboardCacheMisses uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	scoresSubmitted        uint64
	scoresRejected         uint64
	leaderboardCacheHits   uint64
	leaderboardCacheMisses uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		ScoresSubmitted:        atomic.LoadUint64(&m.scoresSubmitted),
		ScoresRejected:         atomic.LoadUint64(&m.scoresRejected),
		LeaderboardCacheHits:   atomic.LoadUint64(&m.leaderboardCacheHits),
		LeaderboardCacheMisses: atomic.LoadUint64(&m.leaderboardCacheMisses),
	}
}

// IncScoreSubmitted increments the submitted counter.
func (m *InMemoryRecorder) IncScoreSubmitted() {
	atomic.AddUint64(&m.scoresSubmitted, 1)
}

// IncScoreRejected increments the rejected counter.
func (m *InMemoryRecorder) IncScoreRejected() {
	atomic.AddUint64(&m.scoresRejected, 1)
}

// IncLeaderboardCacheHit increments the cache hit counter.
func (m *InMemoryRecorder) IncLeaderboardCacheHit() {
	atomic.AddUint64(&m.leaderboardCacheHits, 1)
}

// IncLeaderboardCacheMiss increments the cache miss counter.
func (m *InMemoryRecorder) IncLeaderboardCacheMiss() {
	atomic.AddUint64(&m.leaderboardCacheMisses, 1)
}
