package pipeline

import (
	"sync/atomic"
	"time"
)

// Stats tracks pipeline counters across the engine's lifetime.
type Stats struct {
	processed       atomic.Int64
	templateApplied atomic.Int64
	cacheHits       atomic.Int64
	remoteSuccesses atomic.Int64
	remoteFailures  atomic.Int64
	startTime       time.Time
}

// NewStats creates a Stats instance.
func NewStats() *Stats {
	return &Stats{startTime: time.Now()}
}

func (s *Stats) recordProcessed()       { s.processed.Add(1) }
func (s *Stats) recordTemplateApplied() { s.templateApplied.Add(1) }
func (s *Stats) recordCacheHit()        { s.cacheHits.Add(1) }
func (s *Stats) recordRemoteSuccess()   { s.remoteSuccesses.Add(1) }
func (s *Stats) recordRemoteFailure()   { s.remoteFailures.Add(1) }

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Processed       int64         `json:"processed"`
	TemplateApplied int64         `json:"template_applied"`
	CacheHits       int64         `json:"cache_hits"`
	RemoteSuccesses int64         `json:"remote_successes"`
	RemoteFailures  int64         `json:"remote_failures"`
	Uptime          time.Duration `json:"uptime"`
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Processed:       s.processed.Load(),
		TemplateApplied: s.templateApplied.Load(),
		CacheHits:       s.cacheHits.Load(),
		RemoteSuccesses: s.remoteSuccesses.Load(),
		RemoteFailures:  s.remoteFailures.Load(),
		Uptime:          time.Since(s.startTime),
	}
}
