package stats

import (
	"math"
	"slices"
)

// HistogramBins is the fixed bin count of a savings histogram.
const HistogramBins = 40

// Summary holds the summary statistics of a savings distribution.
type Summary struct {
	Mean         float64 `json:"mean"`
	Median       float64 `json:"median"`
	Std          float64 `json:"std"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	P10          float64 `json:"p10"`
	P90          float64 `json:"p90"`
	ProbPositive float64 `json:"probPositive"`
}

// Bin is one histogram bucket. Value is the bin's lower edge, rounded to the
// nearest integer for display.
type Bin struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Reduce collapses a savings sequence into summary statistics and a binned
// frequency table. Order statistics use exact sorted-index semantics: median
// is the element at index n/2 (the upper median for even n), p10 and p90 the
// elements at floor(n*0.1) and floor(n*0.9). Std uses the sample (n-1)
// denominator and is reported as 0 for a single trial, where spread is
// undefined.
func Reduce(savings []float64) (Summary, []Bin) {
	n := len(savings)
	if n == 0 {
		return Summary{}, nil
	}

	sorted := make([]float64, n)
	copy(sorted, savings)
	slices.Sort(sorted)

	sum := 0.0
	positive := 0
	for _, v := range savings {
		sum += v
		if v > 0 {
			positive++
		}
	}
	mean := sum / float64(n)

	std := 0.0
	if n > 1 {
		ss := 0.0
		for _, v := range savings {
			d := v - mean
			ss += d * d
		}
		std = math.Sqrt(ss / float64(n-1))
	}

	summary := Summary{
		Mean:         mean,
		Median:       sorted[n/2],
		Std:          std,
		Min:          sorted[0],
		Max:          sorted[n-1],
		P10:          sorted[int(float64(n)*0.1)],
		P90:          sorted[int(float64(n)*0.9)],
		ProbPositive: float64(positive) / float64(n),
	}

	return summary, histogram(sorted)
}

// histogram bins the values into HistogramBins equal-width buckets spanning
// [min, max]. The maximum value clamps into the last bin. When every value is
// identical the width would be 0, so a single bin holds all counts instead.
func histogram(sorted []float64) []Bin {
	lo := sorted[0]
	hi := sorted[len(sorted)-1]

	if lo == hi {
		return []Bin{{Value: math.Round(lo), Count: len(sorted)}}
	}

	width := (hi - lo) / HistogramBins
	bins := make([]Bin, HistogramBins)
	for i := range bins {
		bins[i].Value = math.Round(lo + float64(i)*width)
	}
	for _, v := range sorted {
		idx := int((v - lo) / width)
		if idx >= HistogramBins {
			idx = HistogramBins - 1
		}
		bins[idx].Count++
	}
	return bins
}
