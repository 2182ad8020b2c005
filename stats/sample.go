// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of possibly weighted data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights is the weight of each sample. If Weights is nil, all
	// weights are 1. Weights must have the same length as Xs and
	// all weights must be >= 0.
	Weights []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Weight returns the total weight of the sample.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	return floats.Sum(s.Weights)
}

// Sum returns the weighted sum of the sample values.
func (s Sample) Sum() float64 {
	if s.Weights == nil {
		return floats.Sum(s.Xs)
	}
	return floats.Dot(s.Xs, s.Weights)
}

// Mean returns the arithmetic mean of the sample.
func (s Sample) Mean() float64 {
	return stat.Mean(s.Xs, s.Weights)
}

// GeoMean returns the geometric mean of the sample. All values must be
// positive; otherwise the result is NaN.
func (s Sample) GeoMean() float64 {
	return stat.GeometricMean(s.Xs, s.Weights)
}

// Variance returns the sample variance (unbiased) of the sample.
func (s Sample) Variance() float64 {
	return stat.Variance(s.Xs, s.Weights)
}

// StdDev returns the sample standard deviation of the sample.
func (s Sample) StdDev() float64 {
	return stat.StdDev(s.Xs, s.Weights)
}

// Bounds returns the minimum and maximum values of the sample.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Quantile returns the q'th quantile of the sample using the
// median-unbiased interpolation of the order statistics (Hyndman and
// Fan's definition 8). q values outside [0, 1] are clamped to the
// sample's extremes.
//
// For weighted samples, the order statistics are placed at their
// cumulative weights and interpolated linearly between.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	if s.Weights == nil {
		n := float64(len(s.Xs))
		h := (n+1.0/3)*q + 1.0/3
		if h <= 1 {
			return s.Xs[0]
		}
		if h >= n {
			return s.Xs[len(s.Xs)-1]
		}
		i := int(h)
		frac := h - float64(i)
		return s.Xs[i-1] + frac*(s.Xs[i]-s.Xs[i-1])
	}

	h := (s.Weight()+1.0/3)*q + 1.0/3
	cum := 0.0
	prevCum, prevX := 0.0, s.Xs[0]
	for i, x := range s.Xs {
		cum += s.Weights[i]
		if h <= cum {
			if i == 0 || cum == prevCum {
				return x
			}
			return prevX + (x-prevX)*(h-prevCum)/(cum-prevCum)
		}
		prevCum, prevX = cum, x
	}
	return s.Xs[len(s.Xs)-1]
}

// Copy returns a copy of the Sample that shares no state with the
// original.
func (s Sample) Copy() *Sample {
	xs := append([]float64(nil), s.Xs...)
	var weights []float64
	if s.Weights != nil {
		weights = append([]float64(nil), s.Weights...)
	}
	return &Sample{xs, weights, s.Sorted}
}

// Sort sorts the sample in place by value and returns it for method
// chaining. Weights move with their values.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		s.Sorted = true
		return s
	}
	if s.Weights == nil {
		sort.Float64s(s.Xs)
	} else {
		sort.Stable(&weightedSort{s.Xs, s.Weights})
	}
	s.Sorted = true
	return s
}

type weightedSort struct {
	xs, weights []float64
}

func (p *weightedSort) Len() int           { return len(p.xs) }
func (p *weightedSort) Less(i, j int) bool { return p.xs[i] < p.xs[j] }
func (p *weightedSort) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.weights[i], p.weights[j] = p.weights[j], p.weights[i]
}

// MeanCI returns the sample mean of xs along with the bounds of the
// Student-t confidence interval for the population mean at the given
// confidence level.
//
// It returns (NaN, NaN, NaN) for an empty sample and (mean, -Inf,
// +Inf) when the sample is too small or the confidence level too high
// for a finite interval.
func MeanCI(xs []float64, confidence float64) (mean, lo, hi float64) {
	if len(xs) == 0 {
		return nan, nan, nan
	}
	s := Sample{Xs: xs}
	mean = s.Mean()
	if confidence <= 0 {
		return mean, mean, mean
	}
	if len(xs) < 2 || confidence >= 1 {
		return mean, -inf, inf
	}
	n := float64(len(xs))
	se := s.StdDev() / math.Sqrt(n)
	margin := TDist{n - 1}.InvCDF((1+confidence)/2) * se
	return mean, mean - margin, mean + margin
}
