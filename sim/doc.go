// Package sim provides the core discrete-event simulation of deferred content retrieval.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - request.go: the immutable Request and its lifecycle states
//   - scheduler.go: the deferred-fetch priority queue and its execution rule
//   - simulator.go: the driver loop (submit, advance clock, process due fetches)
//
// # Model
//
// A user submits a request for a named piece of content. If the ContentCache
// already holds the name, the request is served immediately. Otherwise the
// FetchScheduler defers the fetch by a delay drawn uniformly from
// [1, MaxDelay] ticks, hiding the real request time from an observer. When a
// fetch executes, its delay is appended to the user's DelayLedger sequence and
// the content is inserted into the cache (first fetch wins).
//
// All randomness comes from a PartitionedRNG keyed by the configured seed, so
// identical seed and operations give identical ledger, cache and trace output.
//
// Sub-packages:
//   - sim/trace/: typed event stream (issued, cache hit, scheduled, executed)
//   - sim/workload/: operation sources (YAML spec, explicit lists, generation)
//   - sim/report/: delay statistics, text summary and JSON results
package sim
