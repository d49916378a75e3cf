package sim

import (
	"container/heap"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/deferred-sim/sim/trace"
)

// ScheduledFetch is a deferred fetch for a cache-miss request.
// Invariant: 1 <= ScheduledTick - Request.IssueTick <= maxDelay.
type ScheduledFetch struct {
	ScheduledTick int64
	Request       Request
	seq           uint64 // insertion order, final tie-breaker
}

// Delay returns the number of ticks between issue and fetch.
func (f ScheduledFetch) Delay() int64 {
	return f.ScheduledTick - f.Request.IssueTick
}

// fetchHeap implements heap.Interface with deterministic ordering.
// Order by: scheduled tick → issue tick → insertion sequence.
type fetchHeap []ScheduledFetch

func (h fetchHeap) Len() int { return len(h) }

func (h fetchHeap) Less(i, j int) bool {
	if h[i].ScheduledTick != h[j].ScheduledTick {
		return h[i].ScheduledTick < h[j].ScheduledTick
	}
	// older requests resolve first when fetches coincide
	if h[i].Request.IssueTick != h[j].Request.IssueTick {
		return h[i].Request.IssueTick < h[j].Request.IssueTick
	}
	return h[i].seq < h[j].seq
}

func (h fetchHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *fetchHeap) Push(x any) {
	*h = append(*h, x.(ScheduledFetch))
}

func (h *fetchHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// FetchScheduler holds pending deferred fetches and executes them when due.
// Executing a fetch appends its delay to the ledger and inserts the content
// into the cache.
type FetchScheduler struct {
	fetches fetchHeap
	nextSeq uint64
	rng     *rand.Rand
	cache   *ContentCache
	ledger  *DelayLedger
	trace   *trace.SimulationTrace // nil when tracing is disabled
}

// NewFetchScheduler creates a scheduler drawing delays from rng and writing
// completed fetches into cache and ledger. st may be nil.
// Panics if rng, cache or ledger is nil.
func NewFetchScheduler(rng *rand.Rand, cache *ContentCache, ledger *DelayLedger, st *trace.SimulationTrace) *FetchScheduler {
	if rng == nil || cache == nil || ledger == nil {
		panic("NewFetchScheduler: rng, cache and ledger must not be nil")
	}
	s := &FetchScheduler{
		fetches: make(fetchHeap, 0),
		rng:     rng,
		cache:   cache,
		ledger:  ledger,
		trace:   st,
	}
	heap.Init(&s.fetches)
	return s
}

// Schedule draws a delay uniformly from [1, maxDelay] and enqueues a fetch for
// req at currentTick+delay. Returns a *ConfigurationError if maxDelay < 1.
func (s *FetchScheduler) Schedule(req Request, currentTick, maxDelay int64) (ScheduledFetch, error) {
	if err := checkMaxDelay(maxDelay); err != nil {
		return ScheduledFetch{}, err
	}
	delay := 1 + s.rng.Int63n(maxDelay)
	f := ScheduledFetch{
		ScheduledTick: currentTick + delay,
		Request:       req,
		seq:           s.nextSeq,
	}
	s.nextSeq++
	heap.Push(&s.fetches, f)

	logrus.Debugf("[tick %07d] %s sent interest for %s, fetch scheduled at %d", currentTick, req.UserID, req.ContentName, f.ScheduledTick)
	s.trace.Record(trace.Record{
		Kind:          trace.EventFetchScheduled,
		Tick:          currentTick,
		UserID:        req.UserID,
		ContentName:   req.ContentName,
		IssueTick:     req.IssueTick,
		ScheduledTick: f.ScheduledTick,
		Delay:         f.Delay(),
		State:         string(StateQueued),
	})
	return f, nil
}

// ProcessDue executes, in priority order, every fetch whose scheduled tick is
// <= currentTick. On return no such fetch remains. Returns the number executed.
func (s *FetchScheduler) ProcessDue(currentTick int64) int {
	executed := 0
	for len(s.fetches) > 0 && s.fetches[0].ScheduledTick <= currentTick {
		f := heap.Pop(&s.fetches).(ScheduledFetch)
		s.execute(f, currentTick)
		executed++
	}
	return executed
}

// execute records the fetch delay and publishes the content. The cache stores
// the scheduled tick; under ProcessDue(now) with now advanced one tick at a
// time it equals the execution tick.
func (s *FetchScheduler) execute(f ScheduledFetch, currentTick int64) {
	delay := f.Delay()
	s.ledger.Append(f.Request.UserID, delay)
	inserted := s.cache.Insert(f.Request.ContentName, f.ScheduledTick)

	logrus.WithFields(logrus.Fields{
		"user":    f.Request.UserID,
		"content": f.Request.ContentName,
		"delay":   delay,
		"cached":  inserted,
	}).Debugf("[tick %07d] fetched %s", f.ScheduledTick, f.Request.ContentName)
	s.trace.Record(trace.Record{
		Kind:          trace.EventFetchExecuted,
		Tick:          currentTick,
		UserID:        f.Request.UserID,
		ContentName:   f.Request.ContentName,
		IssueTick:     f.Request.IssueTick,
		ScheduledTick: f.ScheduledTick,
		Delay:         delay,
		State:         string(StateServed),
		CacheInserted: inserted,
	})
}

// Len returns the number of pending fetches.
func (s *FetchScheduler) Len() int {
	return len(s.fetches)
}

// Peek returns the next fetch to execute without removing it.
func (s *FetchScheduler) Peek() (ScheduledFetch, bool) {
	if len(s.fetches) == 0 {
		return ScheduledFetch{}, false
	}
	return s.fetches[0], true
}

func (f ScheduledFetch) String() string {
	return fmt.Sprintf("ScheduledFetch: (Tick: %d, %s)", f.ScheduledTick, f.Request)
}
