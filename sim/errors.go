package sim

import "fmt"

// ConfigurationError reports a simulation parameter outside its accepted domain.
// It is the only failure mode of the simulator and is always detected before
// the first operation is processed.
type ConfigurationError struct {
	Field  string // configuration field name, e.g. "max_delay"
	Value  int64  // offending value
	Reason string // human-readable constraint
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s=%d: %s", e.Field, e.Value, e.Reason)
}

// checkMaxDelay returns a *ConfigurationError when maxDelay < 1.
func checkMaxDelay(maxDelay int64) error {
	if maxDelay < 1 {
		return &ConfigurationError{Field: "max_delay", Value: maxDelay, Reason: "must be >= 1"}
	}
	return nil
}
