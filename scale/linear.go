// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"gonum.org/v1/gonum/floats"

	"github.com/sthagen/go-breaks/breaks"
)

// Linear maps an input range onto [0, 1] by an affine transform.
type Linear struct {
	min, width float64
}

// NewLinear returns a new linear scale over the range of input.
// input must not be empty.
func NewLinear(input []float64) Linear {
	min, max := floats.Min(input), floats.Max(input)
	return Linear{min, max - min}
}

func (s Linear) Of(x float64) float64 {
	return (x - s.min) / s.width
}

// Nice expands the domain of s so it begins and ends on major tick
// marks.
//
// n is the maximum number of major ticks.  n must be >= 2.
func (s *Linear) Nice(n int) {
	if n < 2 {
		panic("n must be >= 2")
	}

	// Pretty breaks always enclose the domain, so the first and
	// last are the expanded limits.
	major := breaks.Pretty{N: n}.Breaks(s.min, s.min+s.width)
	if len(major) < 2 {
		return
	}
	s.min = major[0]
	s.width = major[len(major)-1] - major[0]
}

func (s Linear) Ticks(n int) (major, minor []float64) {
	major = breaks.Extended{N: n}.Breaks(s.min, s.min+s.width)
	minor = breaks.Minor{}.Breaks(major, s.min, s.min+s.width)
	return
}
