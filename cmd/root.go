package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/deferred-sim/sim"
	"github.com/inference-sim/deferred-sim/sim/report"
	"github.com/inference-sim/deferred-sim/sim/trace"
	"github.com/inference-sim/deferred-sim/sim/workload"
)

var (
	// CLI flags for the simulation core
	seed       int64  // Master seed for delay draws and workload generation
	maxDelay   int64  // Upper bound of the deferred-fetch delay, in ticks
	logLevel   string // Log verbosity level
	traceLevel string // Event recording level
	drain      bool   // Keep advancing the clock until every pending fetch ran

	// CLI flags for the workload
	workloadPath string   // YAML workload spec (optional)
	numRequests  int      // Number of generated requests
	users        []string // Generated user population
	contentCount int      // Size of the generated content catalog
	popularity   string   // Content popularity model
	zipfS        float64  // Zipf exponent

	// CLI flags for output
	resultsPath   string // JSON results file (optional)
	printEventLog bool   // Print one line per simulation event
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "deferred-sim",
	Short: "Discrete-event simulator for deferred content retrieval",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the deferred retrieval simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		spec, cfg, err := buildRun(optionsFromFlags(cmd))
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		ops, err := workload.GenerateOperations(spec)
		if err != nil {
			logrus.Fatalf("Unable to build operations: %v", err)
		}

		s, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("Simulation aborted: %v", err)
		}

		logrus.Infof("Starting simulation with seed=%d, max delay=%d, %d operations", cfg.Seed, cfg.MaxDelay, len(ops))
		res := s.Run(ops)
		if drain {
			res = s.Drain()
		}

		if printEventLog {
			if err := report.WriteEventLog(os.Stdout, res.Trace); err != nil {
				logrus.Fatalf("Writing event log: %v", err)
			}
			fmt.Println()
		}
		summary := report.Build(res)
		summary.Print(os.Stdout)

		if resultsPath != "" {
			out := report.NewResultsOutput(res, summary, res.Trace != nil)
			if err := report.SaveResults(out, resultsPath); err != nil {
				logrus.Fatalf("%v", err)
			}
		}

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {

	runCmd.Flags().Int64Var(&seed, "seed", sim.DefaultSeed, "Seed for delay draws and request generation")
	runCmd.Flags().Int64Var(&maxDelay, "max-delay", sim.DefaultMaxDelay, "Maximum deferred-fetch delay in ticks (>= 1)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelEvents), "Event recording level (none, events)")
	runCmd.Flags().BoolVar(&drain, "drain", false, "After the last operation, advance the clock until no fetch is pending")

	// Workload generation
	runCmd.Flags().StringVar(&workloadPath, "workload", "", "Path to a YAML workload spec")
	runCmd.Flags().IntVar(&numRequests, "num-requests", workload.DefaultNumRequests, "Number of generated requests")
	runCmd.Flags().StringSliceVar(&users, "users", workload.DefaultUsers, "Comma-separated user IDs for generated requests")
	runCmd.Flags().IntVar(&contentCount, "content-count", workload.DefaultContentCount, "Number of distinct generated content names")
	runCmd.Flags().StringVar(&popularity, "popularity", "uniform", "Content popularity model (uniform, zipf)")
	runCmd.Flags().Float64Var(&zipfS, "zipf-s", 1.2, "Zipf exponent (> 1) when --popularity=zipf")

	// Output
	runCmd.Flags().StringVar(&resultsPath, "results-path", "", "Write ledger, cache trace and summary as JSON to this path")
	runCmd.Flags().BoolVar(&printEventLog, "event-log", false, "Print one line per simulation event before the summary")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
