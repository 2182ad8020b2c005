// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Coefficients of the Abramowitz & Stegun 7.1.26 rational
// approximation to erf.
const (
	erfP  = 0.3275911
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
)

// Erf returns the error function of x, computed with the Abramowitz &
// Stegun 7.1.26 five-coefficient rational approximation. The maximum
// absolute error is 1.5e-7.
//
// Erf is antisymmetric: Erf(-x) == -Erf(x), and Erf(0) == 0 exactly.
func Erf(x float64) float64 {
	if x == 0 {
		return 0
	}
	sign := 1.0
	if x < 0 {
		sign = -1.0
		x = -x
	}
	t := 1 / (1 + erfP*x)
	y := 1 - (((((erfA5*t+erfA4)*t)+erfA3)*t+erfA2)*t+erfA1)*t*math.Exp(-x*x)
	return sign * y
}

// ErfEach returns Erf(xs[i]) for each i.
func ErfEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = Erf(x)
	}
	return res
}
