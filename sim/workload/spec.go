package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/deferred-sim/sim"
)

const (
	// DefaultContentPrefix names generated content "Content-1" .. "Content-N".
	DefaultContentPrefix = "Content-"
	// DefaultContentCount is the size of the generated content catalog.
	DefaultContentCount = 5
	// DefaultNumRequests is the number of generated operations.
	DefaultNumRequests = 10
)

// DefaultUsers is the user population when a spec names none.
var DefaultUsers = []string{"Alice", "Bob", "Charlie"}

// WorkloadSpec is the top-level workload configuration.
// Loaded from YAML via LoadWorkloadSpec(path).
//
// When Operations is non-empty it is replayed verbatim and the generation
// fields (Users, ContentCount, Popularity, NumRequests) are ignored.
type WorkloadSpec struct {
	Version       string          `yaml:"version"`
	Seed          int64           `yaml:"seed"`
	MaxDelay      *int64          `yaml:"max_delay,omitempty"` // nil = use the CLI/default value
	Users         []string        `yaml:"users,omitempty"`
	ContentCount  int             `yaml:"content_count,omitempty"`
	ContentPrefix string          `yaml:"content_prefix,omitempty"`
	Popularity    PopularitySpec  `yaml:"popularity,omitempty"`
	NumRequests   int             `yaml:"num_requests,omitempty"`
	Operations    []sim.Operation `yaml:"operations,omitempty"`
}

// PopularitySpec selects how generated requests pick content.
type PopularitySpec struct {
	Type string  `yaml:"type"`        // "uniform" (default) or "zipf"
	S    float64 `yaml:"s,omitempty"` // zipf exponent, must be > 1
	V    float64 `yaml:"v,omitempty"` // zipf offset, must be >= 1 (default 1)
}

var validPopularityTypes = map[string]bool{
	"": true, "uniform": true, "zipf": true,
}

// DefaultWorkloadSpec returns the generated workload used when no file is given:
// three users drawing uniformly over five contents for ten requests.
func DefaultWorkloadSpec(seed int64) *WorkloadSpec {
	return &WorkloadSpec{
		Version:       "1",
		Seed:          seed,
		Users:         append([]string(nil), DefaultUsers...),
		ContentCount:  DefaultContentCount,
		ContentPrefix: DefaultContentPrefix,
		Popularity:    PopularitySpec{Type: "uniform"},
		NumRequests:   DefaultNumRequests,
	}
}

// LoadWorkloadSpec reads and parses a YAML workload specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	return ParseWorkloadSpec(data)
}

// ParseWorkloadSpec parses YAML bytes into a WorkloadSpec, rejecting unknown keys.
func ParseWorkloadSpec(data []byte) (*WorkloadSpec, error) {
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	if spec.ContentPrefix == "" {
		spec.ContentPrefix = DefaultContentPrefix
	}
	return &spec, nil
}

// IsReplay reports whether the spec carries an explicit operation list.
func (s *WorkloadSpec) IsReplay() bool {
	return len(s.Operations) > 0
}

// Validate checks that all fields needed to produce operations are valid.
// A max_delay below 1 is not rejected here; NewSimulator reports it as a
// ConfigurationError.
func (s *WorkloadSpec) Validate() error {
	if s.IsReplay() {
		return nil
	}
	if len(s.Users) == 0 {
		return fmt.Errorf("at least one user or an explicit operations list is required")
	}
	if s.ContentCount < 1 {
		return fmt.Errorf("content_count must be >= 1, got %d", s.ContentCount)
	}
	if s.NumRequests < 0 {
		return fmt.Errorf("num_requests must be non-negative, got %d", s.NumRequests)
	}
	return validatePopularity(&s.Popularity)
}

func validatePopularity(p *PopularitySpec) error {
	if !validPopularityTypes[p.Type] {
		return fmt.Errorf("popularity: unknown type %q; valid: uniform, zipf", p.Type)
	}
	if p.Type != "zipf" {
		return nil
	}
	if math.IsNaN(p.S) || math.IsInf(p.S, 0) || p.S <= 1 {
		return fmt.Errorf("popularity: zipf s must be a finite number > 1, got %f", p.S)
	}
	if p.V != 0 && (math.IsNaN(p.V) || math.IsInf(p.V, 0) || p.V < 1) {
		return fmt.Errorf("popularity: zipf v must be a finite number >= 1, got %f", p.V)
	}
	return nil
}
