// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breaks

import (
	"math"
	"time"
)

// Timedelta computes major breaks for duration-valued axes. The
// limits are rescaled to the unit chosen by BestDurationUnit, run
// through the extended Wilkinson search restricted to the decimal
// steps 1, 2, 5, 10, and scaled back, so a span of a few hours gets
// breaks on whole hours rather than on multiples of some awkward
// number of seconds.
//
// The zero value is ready to use and asks for about five breaks.
type Timedelta struct {
	// N is the target number of breaks. Zero means 5.
	N int
}

var timedeltaQ = []float64{1, 2, 5, 10}

// Breaks returns the break positions for the limits lo and hi.
// Reversed limits are swapped and equal limits yield the single
// break hi.
func (t Timedelta) Breaks(lo, hi time.Duration) []time.Duration {
	if hi < lo {
		lo, hi = hi, lo
	}
	n := t.N
	if n <= 0 {
		n = 5
	}
	unit := BestDurationUnit(lo, hi)
	f := float64(unit.Duration())

	ext := Extended{N: n, Q: timedeltaQ}
	xs := ext.Breaks(float64(lo)/f, float64(hi)/f)
	out := make([]time.Duration, len(xs))
	for i, x := range xs {
		out[i] = time.Duration(math.Round(x * f))
	}
	return out
}
