// Package report is the reporting collaborator of the simulator: it turns a
// sim.Result into delay statistics, a text summary and a JSON results file.
// It never mutates simulator state.
package report

import (
	"sort"

	"github.com/inference-sim/deferred-sim/sim"
	"github.com/inference-sim/deferred-sim/sim/trace"
)

// UserStats aggregates one user's observed fetch delays.
type UserStats struct {
	Requests int     `json:"requests"`
	Misses   int     `json:"misses"`
	Delays   []int64 `json:"delays"`
	Mean     float64 `json:"mean_delay"`
	Min      int64   `json:"min_delay"`
	Max      int64   `json:"max_delay"`
}

// Summary is the analysis of a completed run: how requests split between
// cache and deferred fetch, and how fetch delays are distributed.
type Summary struct {
	MaxDelay       int64                `json:"max_delay"`
	TotalRequests  int                  `json:"total_requests"`
	CacheHits      int                  `json:"cache_hits"`
	CacheMisses    int                  `json:"cache_misses"`
	HitRate        float64              `json:"hit_rate"`
	PendingFetches int                  `json:"pending_fetches"`
	CachedContents int                  `json:"cached_contents"`
	MeanDelay      float64              `json:"mean_delay"`
	P50Delay       float64              `json:"p50_delay"`
	P95Delay       float64              `json:"p95_delay"`
	Histogram      []sim.Bin            `json:"histogram"`
	Users          []string             `json:"users"`
	PerUser        map[string]UserStats `json:"per_user"`
	Events         *trace.TraceSummary  `json:"-"`
}

// Build computes the Summary of res.
func Build(res *sim.Result) *Summary {
	s := &Summary{
		MaxDelay:       res.MaxDelay,
		TotalRequests:  res.Metrics.Submitted,
		CacheHits:      res.Metrics.CacheHits,
		CacheMisses:    res.Metrics.CacheMisses,
		HitRate:        res.Metrics.HitRate(),
		PendingFetches: res.PendingFetches,
		CachedContents: len(res.Cache),
		PerUser:        make(map[string]UserStats),
		Events:         trace.Summarize(res.Trace),
	}

	users := make(map[string]bool)
	for u := range res.Metrics.RequestsPerUser {
		users[u] = true
	}
	for u := range res.Ledger {
		users[u] = true
	}

	var all []int64
	for u := range users {
		s.Users = append(s.Users, u)
		delays := append([]int64(nil), res.Ledger[u]...)
		all = append(all, delays...)
		s.PerUser[u] = userStats(delays, res.Metrics.RequestsPerUser[u], res.Metrics.MissesPerUser[u])
	}
	sort.Strings(s.Users)

	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	s.MeanDelay = sim.CalculateMean(all)
	s.P50Delay = sim.CalculatePercentile(all, 50)
	s.P95Delay = sim.CalculatePercentile(all, 95)
	s.Histogram = sim.DelayHistogram(all, res.MaxDelay)
	return s
}

func userStats(delays []int64, requests, misses int) UserStats {
	st := UserStats{Requests: requests, Misses: misses, Delays: delays}
	if len(delays) == 0 {
		return st
	}
	st.Mean = sim.CalculateMean(delays)
	st.Min, st.Max = delays[0], delays[0]
	for _, d := range delays[1:] {
		st.Min = min(st.Min, d)
		st.Max = max(st.Max, d)
	}
	return st
}
