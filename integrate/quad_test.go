// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"math"
	"testing"
)

func aeq(expect, got, tol float64) bool {
	return math.Abs(expect-got) <= tol
}

func TestQuadPolynomials(t *testing.T) {
	checks := []struct {
		name string
		f    func(float64) float64
		a, b float64
		want float64
	}{
		{"const", func(x float64) float64 { return 1 }, 0, 5, 5},
		{"line", func(x float64) float64 { return 2 * x }, 0, 3, 9},
		{"square", func(x float64) float64 { return x * x }, 0, 1, 1.0 / 3},
		{"cubic", func(x float64) float64 { return x*x*x - x }, -2, 2, 0},
		{"cosine", math.Cos, 0, math.Pi / 2, 1},
		{"recip", func(x float64) float64 { return 1 / x }, 1, math.E, 1},
	}
	for _, c := range checks {
		got, err := Quad{}.Integrate(c.f, c.a, c.b)
		if err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
		} else if !aeq(c.want, got, 1e-6) {
			t.Errorf("%s: want %v, got %v", c.name, c.want, got)
		}
	}
}

func TestQuadEmptyInterval(t *testing.T) {
	got, err := Quad{}.Integrate(math.Exp, 2, 2)
	if err != nil || got != 0 {
		t.Errorf("want 0, <nil>; got %v, %v", got, err)
	}
}

func TestQuadInfiniteBounds(t *testing.T) {
	gauss := func(x float64) float64 {
		return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
	}

	got, err := Quad{}.Integrate(gauss, math.Inf(-1), math.Inf(1))
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(1, got, 1e-4) {
		t.Errorf("∫gauss over ℝ: want 1, got %v", got)
	}

	got, err = Quad{}.Integrate(gauss, math.Inf(-1), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(0.5, got, 1e-4) {
		t.Errorf("∫gauss over (-∞,0]: want 0.5, got %v", got)
	}

	got, err = Quad{}.Integrate(func(x float64) float64 { return math.Exp(-x) }, 0, math.Inf(1))
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(1, got, 1e-6) {
		t.Errorf("∫exp(-x) over [0,∞): want 1, got %v", got)
	}
}

func TestQuadBadBounds(t *testing.T) {
	if _, err := (Quad{}).Integrate(math.Sin, 1, 0); err == nil {
		t.Error("want error for b < a")
	}
	if _, err := (Quad{}).Integrate(math.Sin, math.NaN(), 1); err == nil {
		t.Error("want error for NaN lower bound")
	}
	if _, err := (Quad{}).Integrate(math.Sin, 0, math.NaN()); err == nil {
		t.Error("want error for NaN upper bound")
	}
}

func TestQuadMaxDepth(t *testing.T) {
	// A narrow spike forces deep subdivision; with a tight depth
	// cap the integrator must report truncation but still return
	// a finite estimate.
	spike := func(x float64) float64 {
		return math.Exp(-50 * x * x)
	}
	got, err := Quad{MaxDepth: 3}.Integrate(spike, -1, 1)
	if err != ErrMaxDepth {
		t.Errorf("want ErrMaxDepth, got %v", err)
	}
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("estimate not finite: %v", got)
	}

	// The same integral converges with no depth limit.
	want := math.Sqrt(math.Pi / 50)
	got, err = Quad{}.Integrate(spike, -1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(want, got, 1e-9) {
		t.Errorf("spike integral: want %v, got %v", want, got)
	}
}

func TestQuadTolerance(t *testing.T) {
	// A loose tolerance must still honor its own error contract.
	f := func(x float64) float64 { return math.Sin(x) * math.Sin(x) }
	got, err := Quad{AbsTol: 1e-3, RelTol: 1e-3}.Integrate(f, 0, math.Pi)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Pi / 2
	if !aeq(want, got, 1e-2) {
		t.Errorf("want %v, got %v", want, got)
	}
}
