// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// DeltaDist is the Dirac delta function centered at T. Its PDF is not
// well-defined (it is +Inf at T and 0 elsewhere), but its CDF is a
// unit step at T. It is primarily useful as a kernel for constructing
// empirical CDFs.
type DeltaDist struct {
	T float64
}

func (d DeltaDist) PDF(x float64) float64 {
	if x == d.T {
		return math.Inf(1)
	}
	return 0
}

func (d DeltaDist) PDFEach(xs []float64) []float64 {
	return eachFunc(d.PDF, xs)
}

func (d DeltaDist) CDF(x float64) float64 {
	if x >= d.T {
		return 1
	}
	return 0
}

func (d DeltaDist) CDFEach(xs []float64) []float64 {
	return eachFunc(d.CDF, xs)
}

func (d DeltaDist) InvCDF(y float64) float64 {
	if y < 0 || y > 1 {
		return nan
	}
	return d.T
}

func (d DeltaDist) InvCDFEach(ys []float64) []float64 {
	return eachFunc(d.InvCDF, ys)
}

func (d DeltaDist) Bounds() (float64, float64) {
	return d.T - 1, d.T + 1
}
