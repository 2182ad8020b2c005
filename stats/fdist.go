// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"github.com/statkit/go-statkit/mathx"
)

// FDist is an F-distribution with D1 and D2 degrees of freedom.
//
// D1 and D2 must be positive and D2 must exceed D1. The D2 > D1
// restriction is not a property of the F-distribution itself; it is a
// numerical-range restriction this package deliberately preserves for
// compatibility, since relaxing it would change which inputs are
// accepted.
type FDist struct {
	D1, D2 float64
}

func (d FDist) check() {
	if d.D1 <= 0 {
		panic(fmt.Sprintf("stats: FDist requires D1 > 0; got D1=%v", d.D1))
	}
	if d.D2 <= 0 {
		panic(fmt.Sprintf("stats: FDist requires D2 > 0; got D2=%v", d.D2))
	}
	if d.D2 <= d.D1 {
		panic(fmt.Sprintf("stats: FDist requires D2 > D1; got D1=%v, D2=%v", d.D1, d.D2))
	}
}

func (d FDist) PDF(x float64) float64 {
	d.check()
	if x <= 0 {
		return 0
	}
	num := math.Pow(d.D1*x, d.D1) * math.Pow(d.D2, d.D2) /
		math.Pow(d.D1*x+d.D2, d.D1+d.D2)
	return math.Sqrt(num) / (x * mathx.Beta(d.D1/2, d.D2/2))
}

func (d FDist) PDFEach(xs []float64) []float64 {
	return eachFunc(d.PDF, xs)
}

func (d FDist) CDF(x float64) float64 {
	d.check()
	if x <= 0 {
		return 0
	}
	if math.IsInf(x, 1) {
		return 1
	}
	return mathx.RegIncBeta(d.D1*x/(d.D1*x+d.D2), d.D1/2, d.D2/2)
}

func (d FDist) CDFEach(xs []float64) []float64 {
	return eachFunc(d.CDF, xs)
}

// InvCDF is not implemented for the F-distribution.
func (d FDist) InvCDF(p float64) float64 {
	panic("stats: FDist.InvCDF is not implemented")
}

func (d FDist) InvCDFEach(ps []float64) []float64 {
	return eachFunc(d.InvCDF, ps)
}

func (d FDist) Bounds() (float64, float64) {
	d.check()
	// The mean is D2/(D2-2) for D2 > 2; four times the mean covers
	// the right tail comfortably for plotting purposes.
	if d.D2 > 2 {
		return 0, 4 * d.D2 / (d.D2 - 2)
	}
	return 0, 10
}
