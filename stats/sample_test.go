// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestSampleQuantile(t *testing.T) {
	s := Sample{Xs: []float64{15, 20, 35, 40, 50}}
	testFunc(t, "Quantile", s.Quantile, map[float64]float64{
		-1:  15,
		0:   15,
		.05: 15,
		.30: 19.666666666666666,
		.40: 27,
		.95: 50,
		1:   50,
		2:   50,
	})

	// An unsorted sample must not be mutated.
	s = Sample{Xs: []float64{40, 15, 50, 20, 35}}
	if got := s.Quantile(.40); !aeq(27, got) {
		t.Errorf("Quantile(.40) on unsorted sample = %v, want 27", got)
	}
	if s.Xs[0] != 40 {
		t.Errorf("Quantile mutated its receiver: %v", s.Xs)
	}

	// Uniform weights agree with the unweighted path.
	u := Sample{Xs: []float64{15, 20, 35, 40, 50}}
	w := Sample{Xs: []float64{15, 20, 35, 40, 50}, Weights: []float64{1, 1, 1, 1, 1}}
	for _, q := range []float64{0, .25, .5, .75, 1} {
		if got, want := w.Quantile(q), u.Quantile(q); !aeq(want, got) {
			t.Errorf("weighted Quantile(%v) = %v, want %v", q, got, want)
		}
	}

	if got := (Sample{}).Quantile(.5); !math.IsNaN(got) {
		t.Errorf("Quantile of empty sample = %v, want NaN", got)
	}
}

func TestMeanCI(t *testing.T) {
	var xs []float64
	naneq := func(a, b float64) bool {
		return math.Abs(a-b) < 1e-4 || a == b ||
			(math.IsNaN(a) && math.IsNaN(b))
	}
	check := func(conf, wmean, wlo, whi float64) {
		t.Helper()
		mean, lo, hi := MeanCI(xs, conf)
		if !(naneq(mean, wmean) && naneq(lo, wlo) && naneq(hi, whi)) {
			t.Errorf("for %v, want %v@[%v,%v], got %v@[%v,%v]", xs, wmean, wlo, whi, mean, lo, hi)
		}
	}

	xs = []float64{-8, 2, 3, 4, 5, 6}
	check(0, 2, 2, 2)
	check(0.95, 2, -3.351092806089359, 7.351092806089359)
	check(0.99, 2, -6.39357495385287, 10.39357495385287)
	check(1, 2, -inf, inf)

	xs = []float64{1}
	check(0, 1, 1, 1)
	check(0.95, 1, -inf, inf)
	check(1, 1, -inf, inf)

	xs = nil
	check(0, math.NaN(), math.NaN(), math.NaN())
	check(0.95, math.NaN(), math.NaN(), math.NaN())
	check(1, math.NaN(), math.NaN(), math.NaN())
}

func TestSampleMoments(t *testing.T) {
	s := Sample{Xs: []float64{2, 1, 3, 4}}
	if got := s.Mean(); got != 2.5 {
		t.Errorf("Mean = %v, want 2.5", got)
	}
	if got := s.Sum(); got != 10 {
		t.Errorf("Sum = %v, want 10", got)
	}
	if got := s.Weight(); got != 4 {
		t.Errorf("Weight = %v, want 4", got)
	}
	if got := s.Variance(); !aeq(5.0/3, got) {
		t.Errorf("Variance = %v, want 5/3", got)
	}
	if got := s.StdDev(); !aeq(math.Sqrt(5.0/3), got) {
		t.Errorf("StdDev = %v, want sqrt(5/3)", got)
	}
	if got := s.GeoMean(); !aeq(math.Pow(24, 0.25), got) {
		t.Errorf("GeoMean = %v, want 24^(1/4)", got)
	}
	if lo, hi := s.Bounds(); lo != 1 || hi != 4 {
		t.Errorf("Bounds = %v, %v, want 1, 4", lo, hi)
	}

	w := Sample{Xs: []float64{1, 10}, Weights: []float64{3, 1}}
	if got := w.Weight(); got != 4 {
		t.Errorf("weighted Weight = %v, want 4", got)
	}
	if got := w.Sum(); got != 13 {
		t.Errorf("weighted Sum = %v, want 13", got)
	}
	if got := w.Mean(); !aeq(3.25, got) {
		t.Errorf("weighted Mean = %v, want 3.25", got)
	}
}

func TestSampleSort(t *testing.T) {
	s := Sample{Xs: []float64{3, 1, 2}, Weights: []float64{30, 10, 20}}
	c := s.Copy().Sort()
	for i, want := range []float64{1, 2, 3} {
		if c.Xs[i] != want {
			t.Errorf("sorted Xs[%d] = %v, want %v", i, c.Xs[i], want)
		}
		if c.Weights[i] != want*10 {
			t.Errorf("sorted Weights[%d] = %v, want %v", i, c.Weights[i], want*10)
		}
	}
	if !c.Sorted {
		t.Error("Sort did not mark the sample sorted")
	}
	// Copy means the original is untouched.
	if s.Xs[0] != 3 || s.Weights[0] != 30 {
		t.Errorf("Copy shared state with the original: %v %v", s.Xs, s.Weights)
	}
}
