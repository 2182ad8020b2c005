// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformDist(t *testing.T) {
	d := UniformDist{A: 2, B: 6}
	testFunc(t, "UniformDist{2,6}.PDF", d.PDF, map[float64]float64{
		1.9: 0,
		2:   0.25,
		4:   0.25,
		6:   0.25,
		6.1: 0,
	})
	testFunc(t, "UniformDist{2,6}.CDF", d.CDF, map[float64]float64{
		1:   0,
		2:   0,
		3:   0.25,
		4:   0.5,
		6:   1,
		100: 1,
	})
	testFunc(t, "UniformDist{2,6}.InvCDF", d.InvCDF, map[float64]float64{
		0:    2,
		0.25: 3,
		0.5:  4,
		1:    6,
	})
	testInvCDF(t, d, true)

	if lo, hi := d.Bounds(); lo != 2 || hi != 6 {
		t.Errorf("Bounds() = %v, %v, want 2, 6", lo, hi)
	}
}

func TestUniformDistDomain(t *testing.T) {
	assert.Panics(t, func() { UniformDist{A: 1, B: 1}.PDF(1) })
	assert.Panics(t, func() { UniformDist{A: 2, B: 1}.CDF(1) })
	assert.Panics(t, func() { UniformDist{A: 0, B: 1}.InvCDF(-0.5) })
	assert.Panics(t, func() { UniformDist{A: 0, B: 1}.InvCDF(1.5) })

	// NaN probabilities are rejected, not propagated.
	assert.Panics(t, func() { UniformDist{A: 0, B: 1}.InvCDF(math.NaN()) })
}
