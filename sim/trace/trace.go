package trace

// TraceLevel controls the verbosity of event recording.
type TraceLevel string

const (
	// TraceLevelNone disables recording (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvents captures every issue, hit, schedule and fetch event.
	TraceLevelEvents TraceLevel = "events"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelEvents: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// SimulationTrace collects event records during a simulation run, in emission order.
type SimulationTrace struct {
	Level   TraceLevel
	Records []Record
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
// Returns nil for TraceLevelNone or an empty level; every method on a nil
// *SimulationTrace is a no-op.
func NewSimulationTrace(level TraceLevel) *SimulationTrace {
	if level == "" || level == TraceLevelNone {
		return nil
	}
	return &SimulationTrace{
		Level:   level,
		Records: make([]Record, 0),
	}
}

// Record appends an event record.
func (st *SimulationTrace) Record(record Record) {
	if st == nil {
		return
	}
	st.Records = append(st.Records, record)
}

// Len returns the number of recorded events.
func (st *SimulationTrace) Len() int {
	if st == nil {
		return 0
	}
	return len(st.Records)
}

// Filter returns the records of the given kind, in emission order.
func (st *SimulationTrace) Filter(kind EventKind) []Record {
	if st == nil {
		return nil
	}
	var out []Record
	for _, r := range st.Records {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}
