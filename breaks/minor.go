// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breaks

import (
	"errors"

	"github.com/aclements/go-moremath/vec"
)

// ErrNonNumeric is returned when minor breaks are requested through
// a transform whose data space is not numeric. Interpolating between
// such values has no meaning.
var ErrNonNumeric = errors.New("breaks: minor breaks require a numeric data space")

// Minor fills the gaps between major breaks with N evenly spaced
// minor breaks per gap. When the majors are equidistant the grid is
// first extended by one major step on each end, so minors continue
// to the edges of the axis rather than stopping at the outermost
// majors.
//
// The zero value is ready to use and places one minor break per gap.
type Minor struct {
	// N is the number of minor breaks between each pair of major
	// breaks. Zero or negative means 1.
	N int
}

// Breaks returns the minor break positions for the given major
// breaks, clipped to the limits lo and hi. The major breaks must be
// sorted ascending. Fewer than two majors yield nil.
func (m Minor) Breaks(major []float64, lo, hi float64) []float64 {
	n := m.N
	if n < 1 {
		n = 1
	}
	lo, hi = orderLimits(lo, hi)
	if len(major) < 2 {
		return nil
	}
	// Only grids of three or more majors are considered
	// equidistant; two points always are, trivially.
	if len(major) > 2 {
		if d, ok := equidistant(major); ok {
			major = extendMajors(major, d)
		}
	}

	var out []float64
	for i := 0; i+1 < len(major); i++ {
		seg := vec.Linspace(major[i], major[i+1], n+2)
		for _, x := range seg[1 : n+1] {
			if lo <= x && x <= hi {
				out = append(out, x)
			}
		}
	}
	return out
}

// equidistant reports whether all gaps in major are identical and
// returns the gap. The comparison is exact: generators produce
// equidistant grids with identical float arithmetic, and near-misses
// mean the grid is genuinely uneven, as with subdivided log breaks.
func equidistant(major []float64) (float64, bool) {
	d := major[1] - major[0]
	for i := 1; i+1 < len(major); i++ {
		if major[i+1]-major[i] != d {
			return 0, false
		}
	}
	return d, true
}

// extendMajors returns major with one extra step d on each end.
func extendMajors(major []float64, d float64) []float64 {
	ext := make([]float64, 0, len(major)+2)
	ext = append(ext, major[0]-d)
	ext = append(ext, major...)
	ext = append(ext, major[len(major)-1]+d)
	return ext
}

// A Trans is a monotone mapping between data space and the
// transformed space an axis is drawn in. Transform and Inverse must
// be inverses of each other over the transform's domain. Numeric
// reports whether the data space supports arithmetic; minor break
// interpolation requires it.
//
// Log-like transforms should additionally expose their base as a
// Base() float64 method. TransMinor uses it to recognize grids that
// are equidistant in transformed space.
type Trans interface {
	Transform(x float64) float64
	Inverse(x float64) float64
	Numeric() bool
}

// TransMinor computes minor breaks through the transform t. The
// major breaks and limits are given in transformed space, but the
// minors are spaced evenly in data space and then mapped back, so a
// log axis shows the familiar compressed minor spacing within each
// decade.
//
// n is the number of minors per gap; values below 1 mean 1. For
// transforms exposing a log base, an equidistant major grid is
// extended one step on each end before interpolation, mirroring
// Minor. Transforms over non-numeric data return ErrNonNumeric.
func TransMinor(t Trans, major []float64, lo, hi float64, n int) ([]float64, error) {
	if !t.Numeric() {
		return nil, ErrNonNumeric
	}
	if n < 1 {
		n = 1
	}
	if len(major) >= 2 {
		// A two-point grid counts as equidistant here: a log axis
		// spanning one decade still wants minors past both ends.
		if _, ok := t.(interface{ Base() float64 }); ok {
			if d, ok := equidistant(major); ok {
				major = extendMajors(major, d)
			}
		}
	}
	dmajor := vec.Map(t.Inverse, major)
	dlo, dhi := orderLimits(t.Inverse(lo), t.Inverse(hi))
	minor := Minor{N: n}.Breaks(dmajor, dlo, dhi)
	return vec.Map(t.Transform, minor), nil
}
