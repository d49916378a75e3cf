package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/deferred-sim/sim"
	"github.com/inference-sim/deferred-sim/sim/trace"
	"github.com/inference-sim/deferred-sim/sim/workload"
)

// runOptions is the flag state relevant to building a run, with the
// Changed() bits that decide whether a flag overrides the workload file.
type runOptions struct {
	Seed            int64
	SeedSet         bool
	MaxDelay        int64
	MaxDelaySet     bool
	TraceLevel      string
	WorkloadPath    string
	NumRequests     int
	NumRequestsSet  bool
	Users           []string
	UsersSet        bool
	ContentCount    int
	ContentCountSet bool
	Popularity      string
	PopularitySet   bool
	ZipfS           float64
}

func optionsFromFlags(cmd *cobra.Command) runOptions {
	flags := cmd.Flags()
	return runOptions{
		Seed:            seed,
		SeedSet:         flags.Changed("seed"),
		MaxDelay:        maxDelay,
		MaxDelaySet:     flags.Changed("max-delay"),
		TraceLevel:      traceLevel,
		WorkloadPath:    workloadPath,
		NumRequests:     numRequests,
		NumRequestsSet:  flags.Changed("num-requests"),
		Users:           users,
		UsersSet:        flags.Changed("users"),
		ContentCount:    contentCount,
		ContentCountSet: flags.Changed("content-count"),
		Popularity:      popularity,
		PopularitySet:   flags.Changed("popularity"),
		ZipfS:           zipfS,
	}
}

// buildRun resolves the workload spec and simulator config.
// Without a workload file, flags describe a generated workload. With one, the
// file's values win unless the matching flag was set explicitly.
func buildRun(opts runOptions) (*workload.WorkloadSpec, sim.Config, error) {
	if !trace.IsValidTraceLevel(opts.TraceLevel) {
		return nil, sim.Config{}, fmt.Errorf("unknown trace level %q; valid: none, events", opts.TraceLevel)
	}

	var spec *workload.WorkloadSpec
	if opts.WorkloadPath != "" {
		loaded, err := workload.LoadWorkloadSpec(opts.WorkloadPath)
		if err != nil {
			return nil, sim.Config{}, err
		}
		spec = loaded
		logrus.Infof("Loaded workload spec from %s", opts.WorkloadPath)
	} else {
		spec = workload.DefaultWorkloadSpec(opts.Seed)
	}

	fromFile := opts.WorkloadPath != ""
	if !fromFile || opts.SeedSet {
		spec.Seed = opts.Seed
	}
	if !fromFile || opts.NumRequestsSet {
		spec.NumRequests = opts.NumRequests
	}
	if !fromFile || opts.UsersSet {
		spec.Users = append([]string(nil), opts.Users...)
	}
	if !fromFile || opts.ContentCountSet {
		spec.ContentCount = opts.ContentCount
	}
	if !fromFile || opts.PopularitySet {
		spec.Popularity = workload.PopularitySpec{Type: opts.Popularity, S: opts.ZipfS}
	}

	cfg := sim.Config{
		MaxDelay:   opts.MaxDelay,
		Seed:       spec.Seed,
		TraceLevel: trace.TraceLevel(opts.TraceLevel),
	}
	if fromFile && !opts.MaxDelaySet && spec.MaxDelay != nil {
		cfg.MaxDelay = *spec.MaxDelay
	}
	return spec, cfg, nil
}
