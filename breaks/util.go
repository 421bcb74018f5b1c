// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breaks

import "math"

// minMax returns the smallest and largest value in xs.
func minMax(xs []float64) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

// orderLimits returns lo and hi in ascending order.
func orderLimits(lo, hi float64) (float64, float64) {
	if hi < lo {
		return hi, lo
	}
	return lo, hi
}

// finite reports whether every x is neither NaN nor infinite.
func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// pymod is the modulo that takes the sign of the divisor, so
// pymod(-1, 10) is 9 rather than -1. The simplicity score depends on
// this form when testing whether zero lands on the break grid.
func pymod(x, y float64) float64 {
	m := math.Mod(x, y)
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return m
}

// log10 is math.Log10 with results within 1e-9 of an integer snapped
// to it, so floor and ceil treat exact powers of ten as exact. The
// library logarithm can be off by an ulp at them.
func log10(x float64) float64 {
	l := math.Log10(x)
	if r := math.Round(l); math.Abs(l-r) < 1e-9 {
		return r
	}
	return l
}

// Precision returns the power of ten matching the order of magnitude
// of the span of xs. Labels commonly round break values to this
// precision before formatting. An empty or zero-span slice has
// precision 1.
func Precision(xs []float64) float64 {
	if len(xs) == 0 {
		return 1
	}
	lo, hi := minMax(xs)
	span := hi - lo
	if lo == hi {
		span = math.Abs(lo)
	}
	if span == 0 || !finite(span) {
		return 1
	}
	return math.Pow(10, math.Floor(log10(span)))
}

// RoundAny rounds x to a multiple of accuracy. A nil f rounds to the
// nearest multiple; passing math.Floor or math.Ceil selects the
// direction instead.
func RoundAny(x, accuracy float64, f func(float64) float64) float64 {
	if f == nil {
		f = math.Round
	}
	return f(x/accuracy) * accuracy
}

// SameLog10Order reports whether all values in xs fall within a
// single power-of-ten order of magnitude. The range is widened by
// 10% at each end before comparing, so values that crowd a decade
// edge, like a maximum of 9.5, do not count as staying inside it.
// Non-positive values never share an order.
func SameLog10Order(xs []float64) bool {
	if len(xs) == 0 {
		return false
	}
	lo, hi := minMax(xs)
	const delta = 0.1
	dmin := math.Floor(log10(lo * (1 - delta)))
	dmax := math.Floor(log10(hi * (1 + delta)))
	return dmin == dmax
}
