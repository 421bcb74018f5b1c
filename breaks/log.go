// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breaks

import (
	"math"
	"sort"
)

// Log computes major breaks for logarithmic axes. Breaks are placed
// at integer powers of Base when enough of them land within the
// limits, thinned by an integer stride when there are too many. For
// narrow ranges that span only a few powers, the powers are
// subdivided by small integer multiples chosen greedily to keep the
// breaks evenly spread in log space, so a range like [35, 60] still
// gets usable breaks. Ranges well under a single power fall back to
// the linear Extended search.
//
// The zero value is ready to use with base 10 and about five breaks.
type Log struct {
	// N is the desired number of breaks. Zero means 5.
	N int

	// Base is the logarithm base and must be greater than 1.
	// Zero means 10.
	Base float64
}

// Breaks returns the break positions for the data limits lo and hi.
// Reversed limits are swapped and equal limits yield the single
// break hi. Non-finite or non-positive limits yield nil: a log axis
// has no defensible breaks at or below zero, and callers are
// expected to have clamped their data first.
//
// All arithmetic is in floats, so bases and exponents that overflow
// int64, such as 10^19 and beyond, are handled like any others.
func (l Log) Breaks(lo, hi float64) []float64 {
	if !finite(lo, hi) {
		return nil
	}
	lo, hi = orderLimits(lo, hi)
	if lo <= 0 {
		return nil
	}
	if lo == hi {
		return []float64{hi}
	}

	n := l.N
	if n <= 0 {
		n = 5
	}
	base := l.Base
	if base == 0 {
		base = 10
	}
	if base <= 1 {
		return nil
	}

	eMin := int(math.Floor(logb(lo, base)))
	eMax := int(math.Ceil(logb(hi, base)))

	// Integer powers, thinned by the largest stride that still
	// yields enough breaks inside the limits.
	for stride := (eMax-eMin)/n + 1; stride >= 1; stride-- {
		var pows []float64
		for e := eMin; e <= eMax; e += stride {
			pows = append(pows, math.Pow(base, float64(e)))
		}
		if countWithin(pows, lo, hi) >= n-2 {
			return pows
		}
	}
	return logSubBreaks(lo, hi, n, base, eMin, eMax)
}

// logSubBreaks subdivides the powers of base in [eMin, eMax] by small
// integer step multiples. Steps are admitted greedily, each time
// taking the candidate that maximizes the smallest gap in log space,
// until enough breaks land within the limits.
func logSubBreaks(lo, hi float64, n int, base float64, eMin, eMax int) []float64 {
	if base == 2 {
		var pows []float64
		for e := eMin; e <= eMax; e++ {
			pows = append(pows, math.Pow(base, float64(e)))
		}
		return pows
	}

	lnBase := math.Log(base)
	steps := []float64{1}

	// delta is the smallest log-space gap if x joins the steps.
	// Quantizing keeps platform libm rounding from reordering
	// candidates whose true gaps are equal, like 5 and 6 in base
	// 10; ties go to the smaller candidate.
	delta := func(x float64) float64 {
		vals := make([]float64, 0, len(steps)+2)
		vals = append(vals, steps...)
		vals = append(vals, x, base)
		sort.Float64s(vals)
		d := math.Inf(1)
		prev := math.Log(vals[0]) / lnBase
		for _, v := range vals[1:] {
			lv := math.Log(v) / lnBase
			if lv-prev < d {
				d = lv - prev
			}
			prev = lv
		}
		return math.Round(d*1e12) / 1e12
	}

	var candidates []float64
	for c := 2.0; c < base; c++ {
		candidates = append(candidates, c)
	}

	for len(candidates) > 0 {
		best, bestDelta := 0, math.Inf(-1)
		for i, c := range candidates {
			if d := delta(c); d > bestDelta {
				best, bestDelta = i, d
			}
		}
		steps = append(steps, candidates[best])
		candidates = append(candidates[:best], candidates[best+1:]...)

		breaks := make([]float64, 0, (eMax-eMin+1)*len(steps))
		for e := eMin; e <= eMax; e++ {
			p := math.Pow(base, float64(e))
			for _, s := range steps {
				breaks = append(breaks, p*s)
			}
		}
		if countWithin(breaks, lo, hi) >= n-2 {
			sort.Float64s(breaks)
			// Keep one break beyond the limits on each side.
			lower := 0
			for i, b := range breaks {
				if lo <= b {
					lower = i - 1
					if lower < 0 {
						lower = 0
					}
					break
				}
			}
			upper := len(breaks) - 1
			for i := len(breaks) - 1; i >= 0; i-- {
				if breaks[i] <= hi {
					upper = i + 1
					if upper > len(breaks)-1 {
						upper = len(breaks) - 1
					}
					break
				}
			}
			return breaks[lower : upper+1]
		}
	}
	// No subdivision worked; the range is too narrow for log
	// spacing to matter.
	return Extended{N: n}.Breaks(lo, hi)
}

func countWithin(xs []float64, lo, hi float64) int {
	n := 0
	for _, x := range xs {
		if lo <= x && x <= hi {
			n++
		}
	}
	return n
}

// logb computes log base b of x, using the dedicated logarithms for
// bases 10, 2, and e so that exact powers stay exact. Near-integer
// results snap to the integer; see log10.
func logb(x, b float64) float64 {
	var l float64
	switch b {
	case 10:
		return log10(x)
	case 2:
		return math.Log2(x)
	case math.E:
		l = math.Log(x)
	default:
		l = math.Log(x) / math.Log(b)
	}
	if r := math.Round(l); math.Abs(l-r) < 1e-9 {
		return r
	}
	return l
}
