// Package stats provides the summary statistics attached to per-cluster
// metric sequences.
package stats

import (
	"math"
	"sort"
)

// Aggregation summarizes a sequence of metric values.
type Aggregation struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Count  int     `json:"count"` // finite values included in the summary
}

// Aggregate computes summary statistics over values. NaN entries are
// skipped; when every entry is NaN (or values is empty) the summary
// fields are all NaN and Count is 0.
func Aggregate(values []float64) *Aggregation {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}

	if len(finite) == 0 {
		nan := math.NaN()
		return &Aggregation{Min: nan, Max: nan, Mean: nan, Median: nan, StdDev: nan}
	}

	min, max := finite[0], finite[0]
	sum := 0.0
	for _, v := range finite {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	mean := sum / float64(len(finite))

	variance := 0.0
	for _, v := range finite {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(finite))

	return &Aggregation{
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: Median(finite),
		StdDev: math.Sqrt(variance),
		Count:  len(finite),
	}
}

// Median returns the median of values, averaging the two middle
// elements for even-length input. Returns NaN for empty input.
// The input slice is not modified.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2.0
}
