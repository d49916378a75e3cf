package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents    int
	Issued         int
	CacheHits      int
	FetchesPlanned int
	FetchesDone    int
	CacheInserts   int // executed fetches that created a cache entry
	UniqueUsers    int
	UniqueContents int
	KindCounts     map[EventKind]int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		KindCounts: make(map[EventKind]int),
	}
	if st == nil {
		return summary
	}

	users := make(map[string]bool)
	contents := make(map[string]bool)
	for _, r := range st.Records {
		summary.KindCounts[r.Kind]++
		users[r.UserID] = true
		contents[r.ContentName] = true
		if r.Kind == EventFetchExecuted && r.CacheInserted {
			summary.CacheInserts++
		}
	}

	summary.TotalEvents = len(st.Records)
	summary.Issued = summary.KindCounts[EventRequestIssued]
	summary.CacheHits = summary.KindCounts[EventCacheHit]
	summary.FetchesPlanned = summary.KindCounts[EventFetchScheduled]
	summary.FetchesDone = summary.KindCounts[EventFetchExecuted]
	summary.UniqueUsers = len(users)
	summary.UniqueContents = len(contents)

	return summary
}
