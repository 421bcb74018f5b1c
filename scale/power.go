// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Power maps like a linear scale and then raises the result to a
// fixed exponent, so an exponent of 0.5 spreads out small values the
// way a square root axis does.
type Power struct {
	lin Linear
	exp float64
}

// NewPower returns a new power scale.
func NewPower(input []float64, exp float64) Power {
	return Power{NewLinear(input), exp}
}

func (s Power) Of(x float64) float64 {
	return math.Pow(s.lin.Of(x), s.exp)
}

// Nice expands the domain of s so it begins and ends on major tick
// marks.
//
// n is the maximum number of major ticks.  n must be >= 2.
func (s *Power) Nice(n int) {
	s.lin.Nice(n)
}

// Ticks places ticks in input space, where they are evenly spread
// before the power is applied.
func (s Power) Ticks(n int) (major, minor []float64) {
	return s.lin.Ticks(n)
}
