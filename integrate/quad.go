// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrate provides adaptive numerical quadrature.
package integrate // import "github.com/statkit/go-statkit/integrate"

import (
	"errors"
	"fmt"
	"math"
)

// ErrMaxDepth is returned by Quad.Integrate when MaxDepth is positive
// and some subinterval failed to converge before reaching it. The
// returned value is still the best available estimate.
var ErrMaxDepth = errors.New("integrate: maximum subdivision depth exceeded")

// Quad configures adaptive quadrature.
//
// The integrator evaluates the integrand at four interior nodes of
// each interval, forms a high-order and a low-order estimate from
// them, and accepts the high-order estimate when the difference
// between the two is within tolerance. Otherwise it bisects the
// interval and recurses, recycling the two node values that fall in
// each half.
//
// The default (zero) value of Quad is a reasonable default
// configuration.
type Quad struct {
	// AbsTol is the absolute error tolerance. An interval's
	// estimate is accepted when the local error estimate is below
	// AbsTol + RelTol*|estimate|. On each bisection the absolute
	// tolerance passed to the halves shrinks by 1/√2. The local
	// estimate is a heuristic, not a bound, so the achieved error
	// can exceed the requested tolerance by a couple of orders of
	// magnitude on unfavorable integrands.
	//
	// If this is zero, it defaults to 1e-10.
	AbsTol float64

	// RelTol is the relative error tolerance.
	//
	// If this is zero, it defaults to 1e-10.
	RelTol float64

	// MaxDepth limits the bisection depth. If it is zero there is
	// no limit, matching the historical behavior: a pathological
	// integrand or an extreme tolerance can recurse until the
	// stack is exhausted. If it is positive, intervals that fail
	// to converge within MaxDepth bisections keep their current
	// estimate and Integrate reports ErrMaxDepth.
	MaxDepth int
}

const debugQuad = false

// Integrate returns an approximation of the integral of f from a to b,
// accurate to approximately AbsTol + RelTol*|estimate|. The tolerance
// is advisory: it is enforced against a local error estimate rather
// than a true error bound. Either or both bounds may be infinite;
// infinite ranges are folded onto (0, 1) by the substitution
// x = (1-t)/t before integrating.
//
// The initial error estimate samples f at only four points, so an
// integrand whose mass is far narrower than the integration interval
// can be mistaken for zero and accepted immediately. Split the
// interval at known features when integrating such functions.
//
// It requires a <= b and returns an error naming the offending bound
// otherwise. f is never evaluated at a or b, so integrands may be
// singular at the endpoints.
func (q Quad) Integrate(f func(float64) float64, a, b float64) (float64, error) {
	if math.IsNaN(a) {
		return 0, fmt.Errorf("integrate: lower bound a is NaN")
	}
	if math.IsNaN(b) {
		return 0, fmt.Errorf("integrate: upper bound b is NaN")
	}
	if b < a {
		return 0, fmt.Errorf("integrate: lower bound a=%v exceeds upper bound b=%v", a, b)
	}
	if a == b {
		return 0, nil
	}

	if q.AbsTol == 0 {
		q.AbsTol = 1e-10
	}
	if q.RelTol == 0 {
		q.RelTol = 1e-10
	}

	// Fold infinite bounds onto the open unit interval. The
	// substitution x = (1-t)/t maps t ∈ (0, 1) to x ∈ (0, ∞) with
	// dx = -dt/t², so each half-line integrand picks up a 1/t²
	// Jacobian.
	aInf, bInf := math.IsInf(a, -1), math.IsInf(b, 1)
	g, lo, hi := f, a, b
	switch {
	case aInf && bInf:
		g = func(t float64) float64 {
			u := (1 - t) / t
			return (f(u) + f(-u)) / (t * t)
		}
		lo, hi = 0, 1
	case aInf:
		g = func(t float64) float64 {
			return f(b-(1-t)/t) / (t * t)
		}
		lo, hi = 0, 1
	case bInf:
		g = func(t float64) float64 {
			return f(a+(1-t)/t) / (t * t)
		}
		lo, hi = 0, 1
	}

	w := &quadrature{q: q, f: g}
	h := hi - lo
	est := w.step(lo, hi, q.AbsTol, g(lo+h/3), g(lo+2*h/3), 0)
	if w.truncated {
		return est, ErrMaxDepth
	}
	return est, nil
}

// quadrature carries per-call state so the recursion only threads the
// values that change.
type quadrature struct {
	q         Quad
	f         func(float64) float64
	truncated bool
}

// step integrates f over [a, b] to absolute tolerance acc. f2 and f3
// are the integrand values at the second and third nodes (1/3 and 2/3
// of the way across), which the caller has already computed.
func (w *quadrature) step(a, b, acc, f2, f3 float64, depth int) float64 {
	h := b - a
	f1 := w.f(a + h/6)
	f4 := w.f(a + 5*h/6)

	q4 := h * (2*f1 + f2 + f3 + 2*f4) / 6
	q2 := h * (f1 + f2 + f3 + f4) / 4
	est := math.Abs(q4-q2) / 3
	if est < acc+w.q.RelTol*math.Abs(q4) {
		return q4
	}
	if w.q.MaxDepth > 0 && depth >= w.q.MaxDepth {
		if debugQuad {
			fmt.Printf("integrate: depth %d on [%v,%v], err %v\n", depth, a, b, est)
		}
		w.truncated = true
		return q4
	}

	// Bisect. The old nodes at h/6 and h/3 land on the second and
	// third node positions of the left half, and likewise the
	// nodes at 2h/3 and 5h/6 for the right half, so each half
	// needs only two fresh evaluations.
	m := a + h/2
	acc /= math.Sqrt2
	return w.step(a, m, acc, f1, f2, depth+1) + w.step(m, b, acc, f3, f4, depth+1)
}
