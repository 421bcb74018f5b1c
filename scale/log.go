// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sthagen/go-breaks/breaks"
)

// Log maps an input range onto [0, 1] so equal ratios get equal
// spans. The input range must be positive.
type Log struct {
	min, max, base float64
	logMin, denom  float64
}

// NewLog returns a new logarithmic scale over the range of input,
// which must not be empty.
//
// base has no effect on the scaling.  It is only used for computing
// tick marks.
func NewLog(input []float64, base float64) *Log {
	min, max := floats.Min(input), floats.Max(input)
	s := &Log{min: min, max: max, base: base}
	s.precompute()
	return s
}

func (s *Log) precompute() {
	s.logMin = math.Log(s.min)
	s.denom = math.Log(s.max) - s.logMin
}

func (s *Log) Of(x float64) float64 {
	return (math.Log(x) - s.logMin) / s.denom
}

// Nice expands the domain of s to "nice" values of the scale, which
// will translate into major tick marks.
//
// n is the maximum number of major ticks.  n must be >= 2.
func (s *Log) Nice(n int) {
	if n < 2 {
		panic("n must be >= 2")
	}

	// Increase the effective base until there are <= n major ticks
	for ebase := s.base; ; ebase *= s.base {
		// Compute major tick below s.min and above s.max
		lo := math.Pow(ebase, math.Floor(logQuant(s.min, ebase)))
		hi := math.Pow(ebase, math.Ceil(logQuant(s.max, ebase)))

		// Compute number of ticks between lo and hi
		nticks := 1 + logQuant(hi, ebase) - logQuant(lo, ebase)

		if nticks <= float64(n) {
			// Found it
			s.min, s.max = lo, hi
			s.precompute()
			break
		}
	}
}

func (s *Log) Ticks(n int) (major, minor []float64) {
	if n < 2 {
		panic("n must be >= 2")
	}

	major = breaks.Log{N: n, Base: s.base}.Breaks(s.min, s.max)
	minor = []float64{}
	if sub := int(s.base) - 2; sub >= 1 {
		minor = breaks.Minor{N: sub}.Breaks(major, s.min, s.max)
	}
	return
}

// logQuant returns log base b of x rounded to 12 decimals, so exact
// powers floor and ceil cleanly.
func logQuant(x, b float64) float64 {
	l := math.Log(x) / math.Log(b)
	return math.Round(l*1e12) / 1e12
}
