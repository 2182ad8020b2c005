// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "fmt"

// UniformDist is the continuous uniform distribution on [A, B].
type UniformDist struct {
	A, B float64
}

func (d UniformDist) check() {
	if !(d.A < d.B) {
		panic(fmt.Sprintf("stats: UniformDist requires A < B; got A=%v, B=%v", d.A, d.B))
	}
}

func (d UniformDist) PDF(x float64) float64 {
	d.check()
	if x < d.A || x > d.B {
		return 0
	}
	return 1 / (d.B - d.A)
}

func (d UniformDist) PDFEach(xs []float64) []float64 {
	return eachFunc(d.PDF, xs)
}

func (d UniformDist) CDF(x float64) float64 {
	d.check()
	switch {
	case x < d.A:
		return 0
	case x > d.B:
		return 1
	}
	return (x - d.A) / (d.B - d.A)
}

func (d UniformDist) CDFEach(xs []float64) []float64 {
	return eachFunc(d.CDF, xs)
}

func (d UniformDist) InvCDF(p float64) float64 {
	d.check()
	if !(0 <= p && p <= 1) {
		panic(fmt.Sprintf("stats: UniformDist.InvCDF requires p in [0, 1]; got p=%v", p))
	}
	return d.A + p*(d.B-d.A)
}

func (d UniformDist) InvCDFEach(ps []float64) []float64 {
	return eachFunc(d.InvCDF, ps)
}

func (d UniformDist) Bounds() (float64, float64) {
	return d.A, d.B
}
