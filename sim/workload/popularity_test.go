package workload

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContentSampler_RangeOneToN(t *testing.T) {
	for _, p := range []PopularitySpec{{Type: "uniform"}, {Type: ""}, {Type: "zipf", S: 1.1}} {
		sampler, err := NewContentSampler(p, 4, rand.New(rand.NewSource(1)))
		require.NoError(t, err, "type %q", p.Type)
		for i := 0; i < 500; i++ {
			v := sampler.Next()
			if v < 1 || v > 4 {
				t.Fatalf("type %q: sample %d outside [1, 4]", p.Type, v)
			}
		}
	}
}

func TestNewContentSampler_SingleContent_AlwaysOne(t *testing.T) {
	sampler, err := NewContentSampler(PopularitySpec{Type: "zipf", S: 2}, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, 1, sampler.Next())
	}
}

func TestNewContentSampler_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := NewContentSampler(PopularitySpec{Type: "uniform"}, 0, rng)
	assert.Error(t, err)

	_, err = NewContentSampler(PopularitySpec{Type: "zipf", S: 0.5}, 3, rng)
	assert.Error(t, err, "rand.NewZipf rejects s <= 1")

	_, err = NewContentSampler(PopularitySpec{Type: "bogus"}, 3, rng)
	assert.Error(t, err)
}
