package sim

import "github.com/inference-sim/deferred-sim/sim/trace"

const (
	// DefaultMaxDelay is the upper bound of the deferred-fetch delay draw, in ticks.
	DefaultMaxDelay int64 = 5
	// DefaultSeed is the master seed used when none is configured.
	DefaultSeed int64 = 42
)

// Config groups the simulation-wide parameters handed to NewSimulator.
type Config struct {
	MaxDelay   int64            // upper bound of the delay draw, in ticks (must be >= 1)
	Seed       int64            // master seed for every RNG subsystem
	TraceLevel trace.TraceLevel // event recording verbosity ("" or "none" disables)
}

// DefaultConfig returns the configuration used by the CLI when no flags are set.
func DefaultConfig() Config {
	return Config{
		MaxDelay:   DefaultMaxDelay,
		Seed:       DefaultSeed,
		TraceLevel: trace.TraceLevelEvents,
	}
}

// Validate checks the configuration. The returned error, if any, is a *ConfigurationError.
func (c Config) Validate() error {
	return checkMaxDelay(c.MaxDelay)
}
