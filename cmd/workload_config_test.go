package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/deferred-sim/sim"
	"github.com/inference-sim/deferred-sim/sim/trace"
	"github.com/inference-sim/deferred-sim/sim/workload"
)

// defaultOptions mirrors the flag defaults with nothing explicitly set.
func defaultOptions() runOptions {
	return runOptions{
		Seed:         sim.DefaultSeed,
		MaxDelay:     sim.DefaultMaxDelay,
		TraceLevel:   string(trace.TraceLevelEvents),
		NumRequests:  workload.DefaultNumRequests,
		Users:        workload.DefaultUsers,
		ContentCount: workload.DefaultContentCount,
		Popularity:   "uniform",
		ZipfS:        1.2,
	}
}

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuildRun_NoFile_FlagsDescribeWorkload(t *testing.T) {
	opts := defaultOptions()
	opts.Seed = 7
	opts.NumRequests = 30
	opts.Users = []string{"u1"}

	spec, cfg, err := buildRun(opts)

	require.NoError(t, err)
	assert.Equal(t, int64(7), spec.Seed)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 30, spec.NumRequests)
	assert.Equal(t, []string{"u1"}, spec.Users)
	assert.Equal(t, sim.DefaultMaxDelay, cfg.MaxDelay)
	assert.Equal(t, trace.TraceLevelEvents, cfg.TraceLevel)
}

func TestBuildRun_FileValuesWinOverDefaults(t *testing.T) {
	// GIVEN a workload file with its own seed and max delay
	opts := defaultOptions()
	opts.WorkloadPath = writeSpec(t, "seed: 5\nmax_delay: 2\nusers: [Zed]\ncontent_count: 3\nnum_requests: 4\n")

	// WHEN no flag was explicitly set
	spec, cfg, err := buildRun(opts)

	// THEN the file decides
	require.NoError(t, err)
	assert.Equal(t, int64(5), cfg.Seed)
	assert.Equal(t, int64(2), cfg.MaxDelay)
	assert.Equal(t, []string{"Zed"}, spec.Users)
	assert.Equal(t, 4, spec.NumRequests)
}

func TestBuildRun_ChangedFlagsOverrideFile(t *testing.T) {
	opts := defaultOptions()
	opts.WorkloadPath = writeSpec(t, "seed: 5\nmax_delay: 2\nusers: [Zed]\ncontent_count: 3\nnum_requests: 4\n")
	opts.Seed, opts.SeedSet = 99, true
	opts.MaxDelay, opts.MaxDelaySet = 8, true
	opts.NumRequests, opts.NumRequestsSet = 12, true

	spec, cfg, err := buildRun(opts)

	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, int64(99), spec.Seed)
	assert.Equal(t, int64(8), cfg.MaxDelay)
	assert.Equal(t, 12, spec.NumRequests)
	assert.Equal(t, []string{"Zed"}, spec.Users, "unset flags leave file values alone")
}

func TestBuildRun_FileMaxDelayZero_SurfacesAsConfigurationError(t *testing.T) {
	opts := defaultOptions()
	opts.WorkloadPath = writeSpec(t, "max_delay: 0\noperations:\n  - {user: Alice, content: X}\n")

	_, cfg, err := buildRun(opts)
	require.NoError(t, err)

	_, err = sim.NewSimulator(cfg)
	var cfgErr *sim.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestBuildRun_InvalidTraceLevel_Error(t *testing.T) {
	opts := defaultOptions()
	opts.TraceLevel = "verbose"

	_, _, err := buildRun(opts)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown trace level")
}

func TestBuildRun_MissingFile_Error(t *testing.T) {
	opts := defaultOptions()
	opts.WorkloadPath = filepath.Join(t.TempDir(), "nope.yaml")

	_, _, err := buildRun(opts)

	assert.Error(t, err)
}

// TestBuildRun_EndToEnd_SameSeedSameResult runs the resolved workload twice.
func TestBuildRun_EndToEnd_SameSeedSameResult(t *testing.T) {
	run := func() *sim.Result {
		spec, cfg, err := buildRun(defaultOptions())
		require.NoError(t, err)
		ops, err := workload.GenerateOperations(spec)
		require.NoError(t, err)
		s, err := sim.NewSimulator(cfg)
		require.NoError(t, err)
		return s.Run(ops)
	}

	r1, r2 := run(), run()

	assert.Equal(t, r1.Ledger, r2.Ledger)
	assert.Equal(t, r1.Cache, r2.Cache)
	assert.Equal(t, r1.Trace.Records, r2.Trace.Records)
}
