// 24 May 2026

package contigcounter

import "math"

// A Summary holds the across-keys statistics for one tally.
type Summary struct {
	Total    int     // top hits over all keys
	Distinct int     // number of different keys
	Mean     float64 // hits per key
	StdDev   float64 // spread of the per-key counts
}

// Summarize computes the statistics across the keys of a tally. The
// deviation is the sample standard deviation, divisor n-1, except
// that a single key divides by 1 instead of 0. An empty tally gives
// a zero Summary.
func Summarize(t Tally) Summary {
	var s Summary
	s.Distinct = len(t)
	if s.Distinct == 0 {
		return s
	}
	s.Total = t.Total()
	s.Mean = float64(s.Total) / float64(s.Distinct)
	var ssq float64
	for _, e := range t {
		d := float64(e.Count) - s.Mean
		ssq += d * d
	}
	div := s.Distinct - 1
	if div == 0 {
		div = 1
	}
	s.StdDev = math.Sqrt(ssq / float64(div))
	return s
}
