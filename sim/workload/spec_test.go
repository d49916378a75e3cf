package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWorkloadSpec_ValidYAML_LoadsCorrectly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.yaml")
	content := `
version: "1"
seed: 7
max_delay: 3
users: [Alice, Bob]
content_count: 4
popularity:
  type: zipf
  s: 1.5
num_requests: 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	spec, err := LoadWorkloadSpec(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), spec.Seed)
	require.NotNil(t, spec.MaxDelay)
	assert.Equal(t, int64(3), *spec.MaxDelay)
	assert.Equal(t, []string{"Alice", "Bob"}, spec.Users)
	assert.Equal(t, 4, spec.ContentCount)
	assert.Equal(t, DefaultContentPrefix, spec.ContentPrefix)
	assert.Equal(t, "zipf", spec.Popularity.Type)
	assert.Equal(t, 25, spec.NumRequests)
	assert.NoError(t, spec.Validate())
}

func TestParseWorkloadSpec_ExplicitOperations(t *testing.T) {
	spec, err := ParseWorkloadSpec([]byte(`
seed: 1
operations:
  - {user: Alice, content: X}
  - {user: Alice, content: X}
`))
	require.NoError(t, err)

	assert.True(t, spec.IsReplay())
	require.Len(t, spec.Operations, 2)
	assert.Equal(t, "Alice", spec.Operations[1].UserID)
	assert.Equal(t, "X", spec.Operations[1].ContentName)
	assert.Nil(t, spec.MaxDelay)
	assert.NoError(t, spec.Validate(), "replay specs need no generation fields")
}

func TestParseWorkloadSpec_UnknownKey_Rejected(t *testing.T) {
	// typo: "user" instead of "users"
	_, err := ParseWorkloadSpec([]byte("seed: 1\nuser: [Alice]\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing workload spec")
}

func TestLoadWorkloadSpec_MissingFile_Error(t *testing.T) {
	_, err := LoadWorkloadSpec(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading workload spec")
}

func TestWorkloadSpec_Validate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*WorkloadSpec)
		wantErr string
	}{
		{"no users", func(s *WorkloadSpec) { s.Users = nil }, "at least one user"},
		{"zero contents", func(s *WorkloadSpec) { s.ContentCount = 0 }, "content_count"},
		{"negative requests", func(s *WorkloadSpec) { s.NumRequests = -1 }, "num_requests"},
		{"unknown popularity", func(s *WorkloadSpec) { s.Popularity.Type = "pareto" }, "unknown type"},
		{"zipf s too small", func(s *WorkloadSpec) { s.Popularity = PopularitySpec{Type: "zipf", S: 1} }, "zipf s"},
		{"zipf v too small", func(s *WorkloadSpec) { s.Popularity = PopularitySpec{Type: "zipf", S: 2, V: 0.5} }, "zipf v"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := DefaultWorkloadSpec(42)
			tt.mutate(spec)

			err := spec.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultWorkloadSpec_IsValid(t *testing.T) {
	spec := DefaultWorkloadSpec(42)

	assert.NoError(t, spec.Validate())
	assert.Equal(t, DefaultUsers, spec.Users)
	assert.Equal(t, DefaultNumRequests, spec.NumRequests)
}

func TestLoadWorkloadSpec_BundledExamples_Valid(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.yaml"))
	require.NoError(t, err)
	if len(paths) == 0 {
		t.Skip("examples directory not found, skipping")
	}
	for _, p := range paths {
		spec, err := LoadWorkloadSpec(p)
		require.NoError(t, err, p)
		assert.NoError(t, spec.Validate(), p)
		ops, err := GenerateOperations(spec)
		require.NoError(t, err, p)
		assert.NotEmpty(t, ops, p)
	}
}
