// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trans provides the monotone axis transforms used by
// continuous scales: identity, logarithmic, square root, and
// reverse. Every transform satisfies breaks.Trans and additionally
// knows how to place its own major and minor breaks, so a scale can
// delegate both mapping and tick placement to its transform.
//
// Breaks takes and returns data-space values. MinorBreaks, like
// breaks.TransMinor, works on transformed-space majors and limits.
package trans

import (
	"math"

	"github.com/sthagen/go-breaks/breaks"
)

// Identity is the do-nothing transform of plain linear scales.
type Identity struct{}

func (Identity) Transform(x float64) float64 { return x }
func (Identity) Inverse(x float64) float64   { return x }
func (Identity) Numeric() bool               { return true }

// Breaks places major breaks with the extended Wilkinson search.
func (Identity) Breaks(lo, hi float64) []float64 {
	return breaks.Extended{}.Breaks(lo, hi)
}

// MinorBreaks places one minor break between each pair of majors.
func (Identity) MinorBreaks(major []float64, lo, hi float64) []float64 {
	return breaks.Minor{}.Breaks(major, lo, hi)
}

// Sqrt compresses by the square root. Its domain is the non-negative
// reals.
type Sqrt struct{}

func (Sqrt) Transform(x float64) float64 { return math.Sqrt(x) }
func (Sqrt) Inverse(x float64) float64   { return x * x }
func (Sqrt) Numeric() bool               { return true }

func (Sqrt) Breaks(lo, hi float64) []float64 {
	return breaks.Extended{}.Breaks(lo, hi)
}

func (Sqrt) MinorBreaks(major []float64, lo, hi float64) []float64 {
	return breaks.Minor{}.Breaks(major, lo, hi)
}

// Reverse flips the axis direction.
type Reverse struct{}

func (Reverse) Transform(x float64) float64 { return -x }
func (Reverse) Inverse(x float64) float64   { return -x }
func (Reverse) Numeric() bool               { return true }

func (Reverse) Breaks(lo, hi float64) []float64 {
	return breaks.Extended{}.Breaks(lo, hi)
}

func (Reverse) MinorBreaks(major []float64, lo, hi float64) []float64 {
	return breaks.Minor{}.Breaks(major, lo, hi)
}
