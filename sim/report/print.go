package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/inference-sim/deferred-sim/sim/trace"
)

// histogramWidth is the bar length of the most frequent delay.
const histogramWidth = 40

// Print writes the human-readable summary: per-user delay sequences, overall
// statistics and a text histogram of fetch delays.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Deferred Retrieval Summary ===")
	fmt.Fprintf(w, "Requests             : %d\n", s.TotalRequests)
	fmt.Fprintf(w, "Cache Hits           : %d\n", s.CacheHits)
	fmt.Fprintf(w, "Cache Misses         : %d\n", s.CacheMisses)
	fmt.Fprintf(w, "Hit Rate             : %.2f%%\n", 100*s.HitRate)
	fmt.Fprintf(w, "Pending Fetches      : %d\n", s.PendingFetches)
	fmt.Fprintf(w, "Cached Contents      : %d\n", s.CachedContents)
	fmt.Fprintln(w)

	for _, u := range s.Users {
		fmt.Fprintf(w, "User %s - Fetch Delays: %s\n", u, formatDelays(s.PerUser[u].Delays))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Mean Delay           : %.2f ticks\n", s.MeanDelay)
	fmt.Fprintf(w, "P50 Delay            : %.2f ticks\n", s.P50Delay)
	fmt.Fprintf(w, "P95 Delay            : %.2f ticks\n", s.P95Delay)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Distribution of Fetch Delays ===")
	peak := 0
	for _, b := range s.Histogram {
		peak = max(peak, b.Count)
	}
	for _, b := range s.Histogram {
		bar := 0
		if peak > 0 {
			bar = b.Count * histogramWidth / peak
		}
		fmt.Fprintf(w, "%4d | %-*s %d\n", b.Key, histogramWidth, strings.Repeat("#", bar), b.Count)
	}
}

func formatDelays(delays []int64) string {
	parts := make([]string, len(delays))
	for i, d := range delays {
		parts[i] = fmt.Sprint(d)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// WriteEventLog renders the event stream as one diagnostic line per record.
func WriteEventLog(w io.Writer, st *trace.SimulationTrace) error {
	if st == nil {
		return nil
	}
	for _, r := range st.Records {
		if _, err := fmt.Fprintln(w, FormatRecord(r)); err != nil {
			return err
		}
	}
	return nil
}

// FormatRecord returns the log line for a single event.
func FormatRecord(r trace.Record) string {
	switch r.Kind {
	case trace.EventRequestIssued:
		return fmt.Sprintf("[tick %07d] %s requested %s", r.Tick, r.UserID, r.ContentName)
	case trace.EventCacheHit:
		return fmt.Sprintf("[tick %07d] %s retrieved %s from cache", r.Tick, r.UserID, r.ContentName)
	case trace.EventFetchScheduled:
		return fmt.Sprintf("[tick %07d] %s sent interest for %s, fetch scheduled at %d", r.Tick, r.UserID, r.ContentName, r.ScheduledTick)
	case trace.EventFetchExecuted:
		cached := "already cached"
		if r.CacheInserted {
			cached = "cached for future use"
		}
		return fmt.Sprintf("[tick %07d] fetched %s for %s (delayed by %d), %s", r.ScheduledTick, r.ContentName, r.UserID, r.Delay, cached)
	default:
		return fmt.Sprintf("[tick %07d] %s %s %s", r.Tick, r.Kind, r.UserID, r.ContentName)
	}
}
