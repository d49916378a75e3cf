// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/deferred-sim/sim/trace"
)

// Operation is one request submitted to the simulator: a user asking for a
// named piece of content. The issue tick is assigned by the simulator clock.
type Operation struct {
	UserID      string `yaml:"user" json:"user"`
	ContentName string `yaml:"content" json:"content"`
}

// Result is the state handed to the reporting layer after a run.
type Result struct {
	Seed           int64                  `json:"seed"`
	MaxDelay       int64                  `json:"max_delay"`
	FinalClock     int64                  `json:"final_clock"`
	PendingFetches int                    `json:"pending_fetches"`
	Ledger         map[string][]int64     `json:"ledger"`
	Cache          map[string]int64       `json:"cache"`
	Metrics        Metrics                `json:"metrics"`
	Trace          *trace.SimulationTrace `json:"-"`
}

// Simulator is the core object that holds simulation time and state.
// It exclusively owns the cache, ledger, scheduler and RNG for the run;
// nothing is shared through package-level state.
type Simulator struct {
	Clock     int64
	Cache     *ContentCache
	Ledger    *DelayLedger
	Scheduler *FetchScheduler
	// Trace is the typed event stream; nil when tracing is disabled.
	Trace   *trace.SimulationTrace
	Metrics *Metrics

	maxDelay int64
	rng      *PartitionedRNG
}

// NewSimulator validates cfg and builds a simulator at tick 0.
// Returns a *ConfigurationError if cfg.MaxDelay < 1.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	cache := NewContentCache()
	ledger := NewDelayLedger()
	st := trace.NewSimulationTrace(cfg.TraceLevel)

	return &Simulator{
		Clock:     0,
		Cache:     cache,
		Ledger:    ledger,
		Scheduler: NewFetchScheduler(rng.ForSubsystem(SubsystemDelay), cache, ledger, st),
		Trace:     st,
		Metrics:   NewMetrics(),
		maxDelay:  cfg.MaxDelay,
		rng:       rng,
	}, nil
}

// MaxDelay returns the configured upper bound of the delay draw.
func (sim *Simulator) MaxDelay() int64 {
	return sim.maxDelay
}

// Submit handles a request from userID for contentName at currentTick.
// A cache hit is served immediately: no scheduling and no ledger entry.
// A miss builds a Request issued at currentTick and defers its fetch.
// Returns the request's state after submission.
func (sim *Simulator) Submit(userID, contentName string, currentTick int64) RequestState {
	sim.Metrics.Submitted++
	sim.Metrics.RequestsPerUser[userID]++
	sim.Trace.Record(trace.Record{
		Kind:        trace.EventRequestIssued,
		Tick:        currentTick,
		UserID:      userID,
		ContentName: contentName,
		IssueTick:   currentTick,
		State:       string(StateIssued),
	})

	if _, ok := sim.Cache.Lookup(contentName); ok {
		sim.Metrics.CacheHits++
		logrus.Debugf("[tick %07d] %s retrieved %s from cache", currentTick, userID, contentName)
		sim.Trace.Record(trace.Record{
			Kind:        trace.EventCacheHit,
			Tick:        currentTick,
			UserID:      userID,
			ContentName: contentName,
			IssueTick:   currentTick,
			State:       string(StateServedImmediately),
		})
		return StateServedImmediately
	}

	sim.Metrics.CacheMisses++
	sim.Metrics.MissesPerUser[userID]++
	req := NewRequest(userID, contentName, currentTick)
	if _, err := sim.Scheduler.Schedule(req, currentTick, sim.maxDelay); err != nil {
		// maxDelay was validated by NewSimulator and cannot change.
		panic(fmt.Sprintf("Submit: %v", err))
	}
	return StateQueued
}

// Advance executes every deferred fetch due at or before currentTick.
func (sim *Simulator) Advance(currentTick int64) {
	sim.Metrics.FetchesExecuted += sim.Scheduler.ProcessDue(currentTick)
}

// Run feeds ops in order: each is submitted at the current clock, then the
// clock moves forward one tick and due fetches execute. Fetches scheduled past
// the final tick stay pending (see Drain).
func (sim *Simulator) Run(ops []Operation) *Result {
	logrus.Infof("[tick %07d] Starting simulation: %d operations, max delay %d", sim.Clock, len(ops), sim.maxDelay)
	for _, op := range ops {
		sim.Submit(op.UserID, op.ContentName, sim.Clock)
		sim.Clock++
		sim.Advance(sim.Clock)
	}
	logrus.Infof("[tick %07d] Simulation ended, %d fetches pending", sim.Clock, sim.Scheduler.Len())
	return sim.Results()
}

// Drain advances the clock to each remaining scheduled tick in turn until no
// fetch is pending.
func (sim *Simulator) Drain() *Result {
	for {
		next, ok := sim.Scheduler.Peek()
		if !ok {
			break
		}
		if next.ScheduledTick > sim.Clock {
			sim.Clock = next.ScheduledTick
		}
		sim.Advance(sim.Clock)
	}
	logrus.Infof("[tick %07d] Drained pending fetches", sim.Clock)
	return sim.Results()
}

// Results snapshots the current simulator state.
func (sim *Simulator) Results() *Result {
	return &Result{
		Seed:           int64(sim.rng.Key()),
		MaxDelay:       sim.maxDelay,
		FinalClock:     sim.Clock,
		PendingFetches: sim.Scheduler.Len(),
		Ledger:         sim.Ledger.Snapshot(),
		Cache:          sim.Cache.Snapshot(),
		Metrics:        sim.Metrics.clone(),
		Trace:          sim.Trace,
	}
}
