// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

func sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// series returns the sum of f(0), f(1), f(2), ... until the sum stops
// changing. f must converge to 0.
func series(f func(float64) float64) float64 {
	y, yp := f(0), math.NaN()
	for n := 1.0; y != yp; n++ {
		yp = y
		y += f(n)
	}
	return y
}

// bisect returns an x in [low, high] such that |f(x)| <= tolerance
// using the bisection method.
//
// f(low) and f(high) must have opposite signs.
//
// If f does not have a root in this interval (e.g., it is
// discontiguous), returns the X of the apparent discontinuity and
// false.
func bisect(f func(float64) float64, low, high, tolerance float64) (float64, bool) {
	flow, fhigh := f(low), f(high)
	if -tolerance <= flow && flow <= tolerance {
		return low, true
	}
	if -tolerance <= fhigh && fhigh <= tolerance {
		return high, true
	}
	if sign(flow) == sign(fhigh) {
		panic("bisect: root is not bracketed")
	}
	for {
		mid := (low + high) / 2
		fmid := f(mid)
		if -tolerance <= fmid && fmid <= tolerance {
			return mid, true
		}
		if mid == low || mid == high {
			return mid, false
		}
		if sign(fmid) == sign(flow) {
			low, flow = mid, fmid
		} else {
			high, fhigh = mid, fmid
		}
	}
}
