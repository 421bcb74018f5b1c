// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breaks

import "math"

// Weights controls the relative importance of the four scoring terms
// in the extended Wilkinson search. The zero value selects the
// published weighting of 0.25, 0.2, 0.5, 0.05.
type Weights struct {
	Simplicity float64
	Coverage   float64
	Density    float64
	Legibility float64
}

var defaultWeights = Weights{0.25, 0.2, 0.5, 0.05}

var defaultQ = []float64{1, 5, 2, 2.5, 4, 3}

// Extended computes major breaks with the extended Wilkinson
// algorithm of Talbot, Lin, and Hanrahan. It searches step multiples
// drawn from Q at every power of ten and scores each candidate
// labeling by simplicity (preferring early members of Q and grids
// that include zero), coverage (limits close to the outermost
// breaks), density (break count close to N), and legibility. Partial
// scores bound the search so only a small portion of the candidate
// space is visited.
//
// The zero value is ready to use and asks for about five breaks. The
// first and last break can extend slightly past the limits unless
// OnlyInside is set.
type Extended struct {
	// N is the target number of breaks. The result may have a few
	// more or fewer. Zero means 5.
	N int

	// Q lists the acceptable step multiples in decreasing
	// preference. Nil means 1, 5, 2, 2.5, 4, 3.
	Q []float64

	// W weighs the four scoring terms. The zero value selects the
	// published weights.
	W Weights

	// OnlyInside discards candidate labelings whose outermost
	// breaks fall outside the limits.
	OnlyInside bool

	// Legibility, if non-nil, scores the candidate labeling with
	// breaks from lmin to lmax spaced lstep. Results should stay
	// in [-inf, 1], with 1 for perfectly legible labels. Nil
	// scores every candidate 1.
	Legibility func(lmin, lmax, lstep float64) float64
}

// Breaks returns the break positions for the data limits lo and hi.
// Reversed limits are swapped, equal limits yield the single break
// hi, and non-finite limits yield nil. If the search space is
// exhausted without an acceptable labeling, which happens only for
// pathological limits such as spans below 1e-300, the two limits
// themselves are returned.
func (e Extended) Breaks(lo, hi float64) []float64 {
	if !finite(lo, hi) {
		return nil
	}
	lo, hi = orderLimits(lo, hi)
	if lo == hi {
		return []float64{hi}
	}

	n := e.N
	if n <= 0 {
		n = 5
	}
	q := e.Q
	if q == nil {
		q = defaultQ
	}
	w := e.W
	if w == (Weights{}) {
		w = defaultWeights
	}
	leg := e.Legibility
	if leg == nil {
		leg = func(lmin, lmax, lstep float64) float64 { return 1 }
	}

	dmin, dmax := lo, hi
	nf := float64(n)
	bestScore := -2.0
	var bestMin, bestStep float64
	bestK := 0

	for j := 1.0; j < 1e4; j++ {
		for qi, qv := range q {
			sm := extSimplicityMax(qi, len(q), j)
			if w.Simplicity*sm+w.Coverage+w.Density+w.Legibility < bestScore {
				j = 1e4
				break
			}
			for k := 2.0; k < 1e4; k++ {
				dm := extDensityMax(k, nf)
				if w.Simplicity*sm+w.Coverage+w.Density*dm+w.Legibility < bestScore {
					break
				}
				delta := (dmax - dmin) / (k + 1) / j / qv
				z := math.Ceil(math.Log10(delta))
				if math.IsInf(z, -1) {
					// delta underflowed to zero
					z = -323
				}
				for ; z < 1e4; z++ {
					step := j * qv * math.Pow(10, z)
					cm := extCoverageMax(dmin, dmax, step*(k-1))
					if w.Simplicity*sm+w.Coverage*cm+w.Density*dm+w.Legibility < bestScore {
						break
					}
					minStart := math.Floor(dmax/step)*j - (k-1)*j
					maxStart := math.Ceil(dmin/step) * j
					// Huge start indices mean the limits dwarf their
					// span; no grid this fine can be represented.
					if minStart > maxStart || math.Abs(minStart) > 1e15 || math.Abs(maxStart) > 1e15 {
						continue
					}
					for start := minStart; start <= maxStart; start++ {
						lmin := start * step / j
						lmax := lmin + step*(k-1)
						s := extSimplicity(qi, len(q), j, lmin, lmax, step)
						c := extCoverage(dmin, dmax, lmin, lmax)
						g := extDensity(k, nf, dmin, dmax, lmin, lmax)
						l := leg(lmin, lmax, step)
						score := w.Simplicity*s + w.Coverage*c + w.Density*g + w.Legibility*l
						if score > bestScore && (!e.OnlyInside || (lmin >= dmin && lmax <= dmax)) {
							bestScore = score
							bestMin, bestStep, bestK = lmin, step, int(k)
						}
					}
				}
			}
		}
	}

	if bestK == 0 {
		return []float64{dmin, dmax}
	}
	out := make([]float64, bestK)
	for i := range out {
		out[i] = bestMin + float64(i)*bestStep
	}
	return out
}

// extSimplicity prefers steps early in Q, coarse j, and grids that
// place a break on zero when zero is within the labeling.
func extSimplicity(qi, nq int, j, lmin, lmax, lstep float64) float64 {
	const eps = 1e-10
	v := 0.0
	if lmin <= 0 && lmax >= 0 {
		if r := pymod(lmin, lstep); r < eps || lstep-r < eps {
			v = 1
		}
	}
	return extQRank(qi, nq) + v - j
}

func extSimplicityMax(qi, nq int, j float64) float64 {
	return extQRank(qi, nq) + 1 - j
}

func extQRank(qi, nq int) float64 {
	if nq < 2 {
		return 0
	}
	return float64(nq-qi-1) / float64(nq-1)
}

// extCoverage penalizes labelings whose ends sit far from the data
// limits, normalized so that ends within 10% of the span score well.
func extCoverage(dmin, dmax, lmin, lmax float64) float64 {
	d := 0.1 * (dmax - dmin)
	return 1 - 0.5*((dmax-lmax)*(dmax-lmax)+(dmin-lmin)*(dmin-lmin))/(d*d)
}

func extCoverageMax(dmin, dmax, span float64) float64 {
	r := dmax - dmin
	if span <= r {
		return 1
	}
	half := (span - r) / 2
	d := 0.1 * r
	return 1 - 0.5*(half*half+half*half)/(d*d)
}

// extDensity compares the candidate break density against the
// requested density, counting breaks across the union of the data
// and labeling ranges.
func extDensity(k, n, dmin, dmax, lmin, lmax float64) float64 {
	r := (k - 1) / (lmax - lmin)
	rt := (n - 1) / (math.Max(lmax, dmax) - math.Min(lmin, dmin))
	return 2 - math.Max(r/rt, rt/r)
}

func extDensityMax(k, n float64) float64 {
	if k >= n {
		return 2 - (k-1)/(n-1)
	}
	return 1
}
