// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trans

import (
	"fmt"
	"math"

	"github.com/sthagen/go-breaks/breaks"
)

// Log is the logarithmic transform. Its domain is the positive
// reals.
type Log struct {
	base float64
}

// Predefined log transforms for the common bases.
var (
	Log10 = NewLog(10)
	Log2  = NewLog(2)
	Ln    = NewLog(math.E)
)

// NewLog returns the log transform with the given base. It panics if
// base is not greater than 1.
func NewLog(base float64) *Log {
	if !(base > 1) {
		panic(fmt.Sprintf("log base must be > 1, got %v", base))
	}
	return &Log{base}
}

// Base returns the logarithm base. Its presence also marks the
// transform as log-like for breaks.TransMinor.
func (l *Log) Base() float64 { return l.base }

func (l *Log) Transform(x float64) float64 {
	switch l.base {
	case 10:
		return math.Log10(x)
	case 2:
		return math.Log2(x)
	case math.E:
		return math.Log(x)
	}
	return math.Log(x) / math.Log(l.base)
}

func (l *Log) Inverse(x float64) float64 { return math.Pow(l.base, x) }

func (l *Log) Numeric() bool { return true }

// Breaks places major breaks at powers of the base, subdivided when
// the limits span too few powers.
func (l *Log) Breaks(lo, hi float64) []float64 {
	return breaks.Log{Base: l.base}.Breaks(lo, hi)
}

// MinorBreaks places base minus 2 minors in each gap, evenly spaced
// in data space, so base 10 gets the familiar 2..9 marks within each
// decade. Base 2 gets no minors.
func (l *Log) MinorBreaks(major []float64, lo, hi float64) []float64 {
	n := int(l.base) - 2
	if n < 1 {
		return nil
	}
	// Cannot fail: the data space is numeric.
	minor, _ := breaks.TransMinor(l, major, lo, hi, n)
	return minor
}
