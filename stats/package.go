// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides continuous probability distributions, sample
// statistics, and classical hypothesis tests.
//
// Every function in this package is a pure function of its arguments:
// there is no shared state and no caching, so concurrent use requires
// no synchronization.
package stats // import "github.com/statkit/go-statkit/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
