package sim

import "sort"

// DelayLedger records, per user, the delay of every cache-miss request that
// user issued, in fetch completion order. Sequences are append-only.
type DelayLedger struct {
	delays map[string][]int64
	total  int
}

// NewDelayLedger creates an empty ledger.
func NewDelayLedger() *DelayLedger {
	return &DelayLedger{delays: make(map[string][]int64)}
}

// Append adds delay to the end of userID's sequence.
func (l *DelayLedger) Append(userID string, delay int64) {
	l.delays[userID] = append(l.delays[userID], delay)
	l.total++
}

// Delays returns a copy of userID's delay sequence (nil if the user has none).
func (l *DelayLedger) Delays(userID string) []int64 {
	d, ok := l.delays[userID]
	if !ok {
		return nil
	}
	return append([]int64(nil), d...)
}

// Users returns the users with at least one recorded delay, sorted.
func (l *DelayLedger) Users() []string {
	users := make([]string, 0, len(l.delays))
	for u := range l.delays {
		users = append(users, u)
	}
	sort.Strings(users)
	return users
}

// Len returns the total number of recorded delays across all users.
func (l *DelayLedger) Len() int {
	return l.total
}

// Snapshot returns a deep copy of the ledger for reporting.
func (l *DelayLedger) Snapshot() map[string][]int64 {
	out := make(map[string][]int64, len(l.delays))
	for u, d := range l.delays {
		out[u] = append([]int64(nil), d...)
	}
	return out
}
