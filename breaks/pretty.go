// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breaks

import "math"

// Pretty computes major breaks on a staircase of round step sizes,
// in the manner of the classic "pretty" axis locators. Unlike
// Extended it guarantees an upper bound: the result never has more
// than N intervals, which makes it the right choice when axis space
// is fixed.
//
// The zero value is ready to use and allows at most five intervals.
type Pretty struct {
	// N is the maximum number of intervals between breaks.
	// Zero means 5.
	N int

	// Steps lists the acceptable step multiples, ascending and
	// within [1, 10]. Nil means 1, 2, 2.5, 5, 10. The candidate
	// step sizes are these values scaled by powers of ten, with
	// one extra decade added on each side.
	Steps []float64

	// MinTicks is the minimum number of breaks that must land
	// within the limits. Zero means 2.
	MinTicks int
}

var defaultPrettySteps = []float64{1, 2, 2.5, 5, 10}

// Breaks returns the break positions for the data limits lo and hi.
// Reversed limits are swapped, equal limits yield the single break
// hi, and non-finite limits yield nil. The outermost breaks may
// extend slightly past the limits.
//
// When the limits sit far from zero relative to their span, the grid
// is computed against a power-of-ten offset so the steps stay round
// despite limited float precision.
func (p Pretty) Breaks(lo, hi float64) []float64 {
	if !finite(lo, hi) {
		return nil
	}
	lo, hi = orderLimits(lo, hi)
	if lo == hi {
		return []float64{hi}
	}

	n := p.N
	if n <= 0 {
		n = 5
	}
	steps := p.Steps
	if steps == nil {
		steps = defaultPrettySteps
	}
	minTicks := p.MinTicks
	if minTicks <= 0 {
		minTicks = 2
	}

	vmin, vmax := nonsingular(lo, hi)
	scale, offset := scaleRange(vmin, vmax, n)
	vmin -= offset
	vmax -= offset

	rawStep := (vmax - vmin) / float64(n)
	ext := make([]float64, 0, len(steps)+2)
	for _, s := range steps[:len(steps)-1] {
		ext = append(ext, s/10*scale)
	}
	for _, s := range steps {
		ext = append(ext, s*scale)
	}
	ext = append(ext, steps[len(steps)-1]*10*scale)

	istep := len(ext) - 1
	for i, s := range ext {
		if s >= rawStep {
			istep = i
			break
		}
	}

	var ticks []float64
	for ; istep >= 0; istep-- {
		step := ext[istep]
		edge := edgeInteger{step: step, offset: math.Abs(offset)}
		bestMin := math.Floor(vmin/step) * step
		low := edge.le(vmin - bestMin)
		high := edge.ge(vmax - bestMin)
		k := int(high-low) + 1
		ticks = make([]float64, k)
		inside := 0
		for i := range ticks {
			t := (low+float64(i))*step + bestMin
			ticks[i] = t
			if vmin <= t && t <= vmax {
				inside++
			}
		}
		if inside >= minTicks {
			break
		}
	}

	if offset != 0 {
		for i := range ticks {
			ticks[i] += offset
		}
	}
	return ticks
}

// scaleRange returns the power-of-ten scale of one interval and the
// offset to subtract before gridding. The offset is zero unless the
// limits are at least two orders of magnitude away from zero
// relative to their span.
func scaleRange(vmin, vmax float64, n int) (scale, offset float64) {
	dv := math.Abs(vmax - vmin)
	meanv := (vmax + vmin) / 2
	if math.Abs(meanv)/dv < 100 {
		offset = 0
	} else {
		offset = math.Copysign(math.Pow(10, math.Floor(math.Log10(math.Abs(meanv)))), meanv)
	}
	scale = math.Pow(10, math.Floor(math.Log10(dv/float64(n))))
	return
}

// nonsingular expands ranges that are degenerate at float precision.
func nonsingular(vmin, vmax float64) (float64, float64) {
	const (
		expander = 1e-13
		tiny     = 1e-14
	)
	maxabs := math.Max(math.Abs(vmin), math.Abs(vmax))
	if maxabs < (1e6/tiny)*2.2250738585072014e-308 {
		return -expander, expander
	}
	if vmax-vmin <= maxabs*tiny {
		vmin -= expander * math.Abs(vmin)
		vmax += expander * math.Abs(vmax)
	}
	return vmin, vmax
}

// edgeInteger computes the outermost grid indices covering a value,
// forgiving values that miss an index by float noise. The tolerance
// widens with the ratio of offset to step since that ratio bounds
// the precision available to the grid arithmetic.
type edgeInteger struct {
	step, offset float64
}

func (e edgeInteger) closeto(ms, edge float64) bool {
	tol := 1e-10
	if e.offset > 0 {
		digits := math.Log10(e.offset / e.step)
		tol = math.Max(1e-10, math.Pow(10, digits-12))
		tol = math.Min(0.4999, tol)
	}
	return math.Abs(ms-edge) < tol
}

// le returns the largest n such that n*step <= x.
func (e edgeInteger) le(x float64) float64 {
	d := math.Floor(x / e.step)
	m := x - d*e.step
	if e.closeto(m/e.step, 1) {
		return d + 1
	}
	return d
}

// ge returns the smallest n such that n*step >= x.
func (e edgeInteger) ge(x float64) float64 {
	d := math.Floor(x / e.step)
	m := x - d*e.step
	if e.closeto(m/e.step, 0) {
		return d
	}
	return d + 1
}
