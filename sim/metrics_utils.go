// sim/metrics_utils.go
package sim

import (
	"math"
	"sort"
)

// Bin represents a single histogram bin with its integer key and count.
type Bin struct {
	Key   int64 `json:"key"`
	Count int   `json:"count"`
}

type IntOrFloat64 interface {
	int | int64 | float64
}

// CalculatePercentile returns the p-th percentile of data using linear
// interpolation between closest ranks. data must be sorted ascending.
// Returns 0 for empty input.
func CalculatePercentile[T IntOrFloat64](data []T, p float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}

	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))
	if upperIdx >= n {
		return float64(data[n-1])
	}
	if lowerIdx == upperIdx {
		return float64(data[lowerIdx])
	}
	lowerVal := float64(data[lowerIdx])
	upperVal := float64(data[upperIdx])
	return lowerVal + (upperVal-lowerVal)*(rank-float64(lowerIdx))
}

// CalculateMean is a util function that calculates the mean of a data list
func CalculateMean[T IntOrFloat64](numbers []T) float64 {
	if len(numbers) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, number := range numbers {
		sum += float64(number)
	}

	return sum / float64(len(numbers))
}

// DelayHistogram counts delays into one bin per tick in [1, maxDelay].
// Every key in range is present, including empty bins; delays outside the
// range get their own bins after the in-range ones, sorted by key.
func DelayHistogram(delays []int64, maxDelay int64) []Bin {
	counts := make(map[int64]int)
	for _, d := range delays {
		counts[d]++
	}
	bins := make([]Bin, 0, max(maxDelay, 0))
	for k := int64(1); k <= maxDelay; k++ {
		bins = append(bins, Bin{Key: k, Count: counts[k]})
		delete(counts, k)
	}
	var extra []Bin
	for k, c := range counts {
		extra = append(extra, Bin{Key: k, Count: c})
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Key < extra[j].Key })
	return append(bins, extra...)
}
