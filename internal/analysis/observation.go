package analysis

import (
	"fmt"
	"math"
	"sort"
)

// Observation is a single benchmark measurement: one method executed once
// at one input size. Times are always in milliseconds; unit conversion is
// the collector's job, never the analyzer's.
type Observation struct {
	Method string  `json:"method"`
	Size   int     `json:"size"`
	TimeMS float64 `json:"time_ms"`
	Run    int     `json:"run,omitempty"`
}

// AggregatedPoint collapses all repeated runs of one (method, size) pair
// into a single representative point. Never mutated after creation.
type AggregatedPoint struct {
	Size   int     `json:"size"`
	MeanMS float64 `json:"mean_ms"`
	// StdDevMS is the sample standard deviation (n-1 divisor).
	// A single-run group has a standard deviation of zero.
	StdDevMS float64 `json:"stddev_ms"`
	MinMS    float64 `json:"min_ms"`
	MaxMS    float64 `json:"max_ms"`
	Count    int     `json:"count"`
}

// MethodSeries is the aggregated (size, time) series for one method,
// sorted ascending by size. Sizes within a series are unique.
type MethodSeries struct {
	Method string            `json:"method"`
	Points []AggregatedPoint `json:"points"`
}

// Sizes returns the input sizes of the series as floats, in order.
func (s MethodSeries) Sizes() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = float64(p.Size)
	}
	return out
}

// MeanTimes returns the mean times of the series in milliseconds, in order.
func (s MethodSeries) MeanTimes() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.MeanMS
	}
	return out
}

// Aggregate groups observations by (method, size) and reduces each group
// to mean, sample standard deviation, minimum and maximum. It returns one
// series per method, methods sorted by name and points sorted by size, so
// repeated runs over the same input always produce identical output.
//
// Aggregation is a pure transformation: the input slice is not modified.
func Aggregate(observations []Observation) ([]MethodSeries, error) {
	if len(observations) == 0 {
		return nil, ErrEmptyInput
	}

	type group struct {
		times []float64
	}
	groups := make(map[string]map[int]*group)

	for _, obs := range observations {
		if obs.Method == "" {
			return nil, fmt.Errorf("analysis: observation with empty method name")
		}
		if obs.Size < 1 {
			return nil, fmt.Errorf("analysis: observation for %q has non-positive size %d", obs.Method, obs.Size)
		}
		bySize, ok := groups[obs.Method]
		if !ok {
			bySize = make(map[int]*group)
			groups[obs.Method] = bySize
		}
		g, ok := bySize[obs.Size]
		if !ok {
			g = &group{}
			bySize[obs.Size] = g
		}
		g.times = append(g.times, obs.TimeMS)
	}

	methods := make([]string, 0, len(groups))
	for m := range groups {
		methods = append(methods, m)
	}
	sort.Strings(methods)

	series := make([]MethodSeries, 0, len(methods))
	for _, m := range methods {
		bySize := groups[m]
		sizes := make([]int, 0, len(bySize))
		for size := range bySize {
			sizes = append(sizes, size)
		}
		sort.Ints(sizes)

		points := make([]AggregatedPoint, 0, len(sizes))
		for _, size := range sizes {
			points = append(points, reduceGroup(size, bySize[size].times))
		}
		series = append(series, MethodSeries{Method: m, Points: points})
	}

	return series, nil
}

func reduceGroup(size int, times []float64) AggregatedPoint {
	minT := times[0]
	maxT := times[0]
	sum := 0.0
	for _, t := range times {
		sum += t
		if t < minT {
			minT = t
		}
		if t > maxT {
			maxT = t
		}
	}
	mean := sum / float64(len(times))

	stddev := 0.0
	if len(times) > 1 {
		var ss float64
		for _, t := range times {
			d := t - mean
			ss += d * d
		}
		stddev = math.Sqrt(ss / float64(len(times)-1))
	}

	return AggregatedPoint{
		Size:     size,
		MeanMS:   mean,
		StdDevMS: stddev,
		MinMS:    minT,
		MaxMS:    maxT,
		Count:    len(times),
	}
}
