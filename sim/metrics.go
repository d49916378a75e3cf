// Tracks simulation-wide and per-user request counters:
// submissions, cache hits, cache misses and executed fetches.

package sim

// Metrics aggregates request counters about the simulation
// for final reporting.
type Metrics struct {
	Submitted       int `json:"submitted"`        // Number of requests submitted
	CacheHits       int `json:"cache_hits"`       // Requests served immediately
	CacheMisses     int `json:"cache_misses"`     // Requests deferred to a scheduled fetch
	FetchesExecuted int `json:"fetches_executed"` // Deferred fetches that have run

	RequestsPerUser map[string]int `json:"requests_per_user"` // user -> submitted requests
	MissesPerUser   map[string]int `json:"misses_per_user"`   // user -> cache-miss requests
}

// NewMetrics creates a zeroed Metrics with initialized maps.
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsPerUser: make(map[string]int),
		MissesPerUser:   make(map[string]int),
	}
}

// HitRate returns CacheHits / Submitted, or 0 when nothing was submitted.
func (m *Metrics) HitRate() float64 {
	if m.Submitted == 0 {
		return 0
	}
	return float64(m.CacheHits) / float64(m.Submitted)
}

// clone returns a deep copy.
func (m *Metrics) clone() Metrics {
	out := *m
	out.RequestsPerUser = make(map[string]int, len(m.RequestsPerUser))
	for u, n := range m.RequestsPerUser {
		out.RequestsPerUser[u] = n
	}
	out.MissesPerUser = make(map[string]int, len(m.MissesPerUser))
	for u, n := range m.MissesPerUser {
		out.MissesPerUser[u] = n
	}
	return out
}
