// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against a table of expected values.
func testFunc(t *testing.T, name string, f func(float64) float64, cases map[float64]float64) {
	t.Helper()
	for x, want := range cases {
		if got := f(x); !aeq(want, got) {
			t.Errorf("%s(%v): expected %v, got %v", name, x, want, got)
		}
	}
}

// testInvCDF checks that d.InvCDF is the inverse of d.CDF and that the
// element-wise form preserves shape. If bounded is false, the quantile
// must diverge to ±Inf at 0 and 1.
func testInvCDF(t *testing.T, d Dist, bounded bool) {
	t.Helper()
	ps := []float64{0.001, 0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 0.999}
	for _, p := range ps {
		x := d.InvCDF(p)
		if got := d.CDF(x); math.Abs(got-p) > 1e-4 {
			t.Errorf("CDF(InvCDF(%v)) = %v, want %v", p, got, p)
		}
	}

	xs := d.InvCDFEach(ps)
	if len(xs) != len(ps) {
		t.Fatalf("InvCDFEach returned %d values for %d probabilities", len(xs), len(ps))
	}
	for i, p := range ps {
		if want := d.InvCDF(p); xs[i] != want && !(math.IsNaN(xs[i]) && math.IsNaN(want)) {
			t.Errorf("InvCDFEach[%d] = %v, want InvCDF(%v) = %v", i, xs[i], p, want)
		}
	}

	if !bounded {
		if got := d.InvCDF(0); !math.IsInf(got, -1) {
			t.Errorf("InvCDF(0) = %v, want -Inf", got)
		}
		if got := d.InvCDF(1); !math.IsInf(got, 1) {
			t.Errorf("InvCDF(1) = %v, want +Inf", got)
		}
	}
}
