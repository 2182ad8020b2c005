// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"github.com/statkit/go-statkit/mathx"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{0, 1}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

func (d NormalDist) PDF(x float64) float64 {
	z := x - d.Mu
	return math.Exp(-z*z/(2*d.Sigma*d.Sigma)) * invSqrt2Pi / d.Sigma
}

func (d NormalDist) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	if d.Mu == 0 && d.Sigma == 1 {
		// Standard normal fast path
		for i, x := range xs {
			res[i] = math.Exp(-x*x/2) * invSqrt2Pi
		}
	} else {
		a := -1 / (2 * d.Sigma * d.Sigma)
		b := invSqrt2Pi / d.Sigma
		for i, x := range xs {
			z := x - d.Mu
			res[i] = math.Exp(z*z*a) * b
		}
	}
	return res
}

func (d NormalDist) CDF(x float64) float64 {
	return 0.5 * (1 + mathx.Erf((x-d.Mu)/(d.Sigma*math.Sqrt2)))
}

func (d NormalDist) CDFEach(xs []float64) []float64 {
	return eachFunc(d.CDF, xs)
}

// invCDFTailMin is the probability band inside which the rational
// quantile approximation is trusted. Beyond it the quantile
// short-circuits to ±Inf rather than risk underflow in the tail
// polynomials.
const invCDFTailMin = 1e-10

// Coefficients of the AS 241 (Wichura) rational approximations to the
// standard normal quantile.
var (
	// Central region, |p - 0.5| <= 0.425.
	normA = [8]float64{
		3.3871328727963666080e0,
		1.3314166789178437745e2,
		1.9715909503065514427e3,
		1.3731693765509461125e4,
		4.5921953931549871457e4,
		6.7265770927008700853e4,
		3.3430575583588128105e4,
		2.5090809287301226727e3,
	}
	normB = [8]float64{
		1,
		4.2313330701600911252e1,
		6.8718700749205790830e2,
		5.3941960214247511077e3,
		2.1213794301586595867e4,
		3.9307895800092710610e4,
		2.8729085735721942674e4,
		5.2264952788528545610e3,
	}
	// Near tail, r = sqrt(-log(min(p, 1-p))) <= 5.
	normC = [8]float64{
		1.42343711074968357734e0,
		4.63033784615654529590e0,
		5.76949722146069140550e0,
		3.64784832476320460504e0,
		1.27045825245236838258e0,
		2.41780725177450611770e-1,
		2.27238449892691845833e-2,
		7.74545014278341407640e-4,
	}
	normD = [8]float64{
		1,
		2.05319162663775882187e0,
		1.67638483018380384940e0,
		6.89767334985100004550e-1,
		1.48103976427480074590e-1,
		1.51986665636164571966e-2,
		5.47593808499534494600e-4,
		1.05075007164441684324e-9,
	}
	// Far tail, r > 5.
	normE = [8]float64{
		6.65790464350110377720e0,
		5.46378491116411436990e0,
		1.78482653991729133580e0,
		2.96560571828504891230e-1,
		2.65321895265761230930e-2,
		1.24266094738807843860e-3,
		2.71155556874348757815e-5,
		2.01033439929228813265e-7,
	}
	normF = [8]float64{
		1,
		5.99832206555887937690e-1,
		1.36929880922735805310e-1,
		1.48753612908506148525e-2,
		7.86869131145613259100e-4,
		1.84631831751005468180e-6,
		1.42151175831644588870e-7,
		2.04426310338993978564e-15,
	}
)

// poly7 evaluates the degree-7 polynomial with coefficients c
// (constant term first) at r.
func poly7(c *[8]float64, r float64) float64 {
	return ((((((c[7]*r+c[6])*r+c[5])*r+c[4])*r+c[3])*r+c[2])*r+c[1])*r + c[0]
}

// InvCDF returns the x such that CDF(x) = p.
//
// It uses the AS 241 rational approximation: one rational polynomial
// in the central region |p-0.5| <= 0.425 and, in the tails, a second
// approximation in sqrt(-log(min(p, 1-p))) with two sub-branches for
// numerical stability. Probabilities within 1e-10 of 0 or 1 return
// ±Inf without invoking the tail polynomials. It panics if p is
// outside [0, 1].
func (d NormalDist) InvCDF(p float64) float64 {
	if !(0 <= p && p <= 1) {
		panic(fmt.Sprintf("stats: NormalDist.InvCDF requires p in [0, 1]; got p=%v", p))
	}
	if p < invCDFTailMin {
		return math.Inf(-1)
	}
	if p > 1-invCDFTailMin {
		return math.Inf(1)
	}
	return d.Mu + d.Sigma*stdNormalInvCDF(p)
}

func stdNormalInvCDF(p float64) float64 {
	q := p - 0.5
	if math.Abs(q) <= 0.425 {
		r := 0.180625 - q*q
		return q * poly7(&normA, r) / poly7(&normB, r)
	}

	r := p
	if q > 0 {
		r = 1 - p
	}
	r = math.Sqrt(-math.Log(r))
	var x float64
	if r <= 5 {
		r -= 1.6
		x = poly7(&normC, r) / poly7(&normD, r)
	} else {
		r -= 5
		x = poly7(&normE, r) / poly7(&normF, r)
	}
	if q < 0 {
		return -x
	}
	return x
}

func (d NormalDist) InvCDFEach(ps []float64) []float64 {
	return eachFunc(d.InvCDF, ps)
}

func (d NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return d.Mu - stddevs*d.Sigma, d.Mu + stddevs*d.Sigma
}
