// Package trace provides the typed event stream emitted by the simulation core.
// This package has no dependencies on sim/; it stores pure data types, so the
// reporting layer can consume it without reaching into simulator state.
package trace

// EventKind identifies what happened.
type EventKind string

const (
	// EventRequestIssued: a user submitted a request.
	EventRequestIssued EventKind = "request_issued"
	// EventCacheHit: the request was served immediately from the cache.
	EventCacheHit EventKind = "cache_hit"
	// EventFetchScheduled: a cache miss was deferred to ScheduledTick.
	EventFetchScheduled EventKind = "fetch_scheduled"
	// EventFetchExecuted: a deferred fetch ran and its delay was recorded.
	EventFetchExecuted EventKind = "fetch_executed"
)

// Record captures a single simulation event.
// Fields that do not apply to a kind are left at zero value.
type Record struct {
	Kind          EventKind `json:"kind"`
	Tick          int64     `json:"tick"` // clock value when the event was emitted
	UserID        string    `json:"user_id"`
	ContentName   string    `json:"content_name"`
	IssueTick     int64     `json:"issue_tick"`
	ScheduledTick int64     `json:"scheduled_tick,omitempty"` // fetch_scheduled, fetch_executed
	Delay         int64     `json:"delay,omitempty"`          // fetch_scheduled, fetch_executed
	State         string    `json:"state"`                    // request state after the event
	CacheInserted bool      `json:"cache_inserted,omitempty"` // fetch_executed: created the cache entry
}
