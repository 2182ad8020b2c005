// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions missing from the math
// package.
//
// The approximations here are the classical fixed-coefficient ones
// (Abramowitz & Stegun for the error function, Lanczos for Gamma) and
// have the accuracy of their published reference tables rather than
// full double precision. Callers that depend on the exact shape of
// these approximations should not substitute other implementations.
//
// Functions in this package panic with a message naming the offending
// parameter when called outside their domain.
package mathx // import "github.com/statkit/go-statkit/mathx"
