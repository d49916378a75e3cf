package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/deferred-sim/sim"
	"github.com/inference-sim/deferred-sim/sim/trace"
)

// ResultsOutput is the JSON document written by SaveResults.
type ResultsOutput struct {
	Seed       int64              `json:"seed"`
	MaxDelay   int64              `json:"max_delay"`
	FinalClock int64              `json:"final_clock"`
	Summary    *Summary           `json:"summary"`
	Ledger     map[string][]int64 `json:"ledger"`
	Cache      map[string]int64   `json:"cache"`
	Events     []trace.Record     `json:"events,omitempty"`
}

// NewResultsOutput assembles the results document. Events are included only
// when includeEvents is set and the run was traced.
func NewResultsOutput(res *sim.Result, summary *Summary, includeEvents bool) *ResultsOutput {
	out := &ResultsOutput{
		Seed:       res.Seed,
		MaxDelay:   res.MaxDelay,
		FinalClock: res.FinalClock,
		Summary:    summary,
		Ledger:     res.Ledger,
		Cache:      res.Cache,
	}
	if includeEvents && res.Trace != nil {
		out.Events = res.Trace.Records
	}
	return out
}

// SaveResults writes out as indented JSON to path.
func SaveResults(out *ResultsOutput, path string) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	logrus.Debugf("Successfully wrote results to '%s'", path)
	return nil
}
