package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePercentile(t *testing.T) {
	data := []int64{1, 2, 3, 4, 5}
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{50, 3},
		{100, 5},
		{25, 2},
		{90, 4.6},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, CalculatePercentile(data, tt.p), 1e-9, "p%.0f", tt.p)
	}
}

func TestCalculatePercentile_Empty_Zero(t *testing.T) {
	assert.Equal(t, 0.0, CalculatePercentile([]int64{}, 95))
}

func TestCalculateMean(t *testing.T) {
	assert.Equal(t, 0.0, CalculateMean([]int64{}))
	assert.InDelta(t, 2.5, CalculateMean([]int64{1, 2, 3, 4}), 1e-9)
}

func TestDelayHistogram_AllBinsPresent(t *testing.T) {
	bins := DelayHistogram([]int64{1, 3, 3, 5}, 5)

	assert.Equal(t, []Bin{
		{Key: 1, Count: 1},
		{Key: 2, Count: 0},
		{Key: 3, Count: 2},
		{Key: 4, Count: 0},
		{Key: 5, Count: 1},
	}, bins)
}

func TestDelayHistogram_OutOfRangeAppendedSorted(t *testing.T) {
	bins := DelayHistogram([]int64{9, 1, 7}, 2)

	assert.Equal(t, []Bin{{Key: 1, Count: 1}, {Key: 2, Count: 0}, {Key: 7, Count: 1}, {Key: 9, Count: 1}}, bins)
}

func TestMetrics_HitRate(t *testing.T) {
	m := NewMetrics()
	assert.Equal(t, 0.0, m.HitRate())

	m.Submitted = 4
	m.CacheHits = 1
	assert.InDelta(t, 0.25, m.HitRate(), 1e-9)
}

func TestMetrics_Clone_DeepCopiesMaps(t *testing.T) {
	m := NewMetrics()
	m.RequestsPerUser["Alice"] = 2

	c := m.clone()
	c.RequestsPerUser["Alice"] = 9

	assert.Equal(t, 2, m.RequestsPerUser["Alice"])
}
