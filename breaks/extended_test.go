// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breaks

import (
	"math"
	"testing"
)

func TestExtended(t *testing.T) {
	tests := []struct {
		ext    Extended
		lo, hi float64
		want   []float64
	}{
		{Extended{}, 0, 99, []float64{0, 25, 50, 75, 100}},
		{Extended{}, 99, 0, []float64{0, 25, 50, 75, 100}},
		{Extended{}, 0, 100, []float64{0, 25, 50, 75, 100}},
		{Extended{N: 2}, 0, 99, []float64{0, 100}},
		{Extended{N: 3}, 0, 99, []float64{0, 50, 100}},
		{Extended{N: 7}, 0, 99, []float64{0, 20, 40, 60, 80, 100}},
		{Extended{}, 8, 13, []float64{8, 9, 10, 11, 12, 13}},
		{Extended{}, 4, 8, []float64{4, 5, 6, 7, 8}},
		{Extended{}, -31, 27, []float64{-30, -20, -10, 0, 10, 20, 30}},
		{Extended{N: 7}, 0, 6, []float64{0, 1, 2, 3, 4, 5, 6}},
		{Extended{N: 13}, 1, 10, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{Extended{}, -1e-3, 1e-3, []float64{-0.001, -0.0005, 0, 0.0005, 0.001}},
		{Extended{}, 1.2e30, 8.3e30, []float64{0, 2e30, 4e30, 6e30, 8e30}},
		{Extended{}, 0.1234, 0.1236, []float64{0.1234, 0.12345, 0.1235, 0.12355, 0.1236}},

		// Restricting Q to decimal steps forbids grids like
		// 0, 2.5, 5.
		{Extended{Q: []float64{1, 2, 5, 10}}, 0, 9, []float64{0, 2, 4, 6, 8}},
		{Extended{Q: []float64{1, 2, 5, 10}}, 0, 24, []float64{0, 5, 10, 15, 20, 25}},
		{Extended{Q: []float64{1, 2, 5, 10}}, 0, 36, []float64{0, 10, 20, 30, 40}},
		{Extended{Q: []float64{1, 2, 5, 10}}, -60, 60, []float64{-60, -40, -20, 0, 20, 40, 60}},

		{Extended{OnlyInside: true}, 0.5, 9.5, []float64{1, 3, 5, 7, 9}},
		{Extended{}, 0.5, 9.5, []float64{0, 2.5, 5, 7.5, 10}},
	}
	for _, test := range tests {
		diff(t, test.want, test.ext.Breaks(test.lo, test.hi), approx)
	}
}

func TestExtendedWeights(t *testing.T) {
	// Weighing simplicity over density rewards unit steps no
	// matter how many breaks they take.
	ext := Extended{W: Weights{Simplicity: 0.9, Coverage: 0.05, Density: 0.02, Legibility: 0.03}}
	want := []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	diff(t, want, ext.Breaks(0, 99), approx)
}

func TestExtendedLegibility(t *testing.T) {
	// A hook that vetoes fine steps pushes the search to coarser
	// grids, even onto a less preferred member of Q.
	coarse := func(min float64) func(lmin, lmax, lstep float64) float64 {
		return func(lmin, lmax, lstep float64) float64 {
			if lstep < min {
				return math.Inf(-1)
			}
			return 1
		}
	}
	ext := Extended{Legibility: coarse(30)}
	diff(t, []float64{0, 30, 60, 90}, ext.Breaks(0, 99), approx)
	ext = Extended{Legibility: coarse(50)}
	diff(t, []float64{0, 50, 100}, ext.Breaks(0, 99), approx)
}

func TestExtendedEdge(t *testing.T) {
	if got := (Extended{}).Breaks(2, 2); len(got) != 1 || got[0] != 2 {
		t.Errorf("Breaks(2, 2) = %v, want [2]", got)
	}
	if got := (Extended{}).Breaks(math.NaN(), 5); got != nil {
		t.Errorf("Breaks(NaN, 5) = %v, want nil", got)
	}
	if got := (Extended{}).Breaks(0, math.Inf(1)); got != nil {
		t.Errorf("Breaks(0, +Inf) = %v, want nil", got)
	}
	// Spans below 1e-300 underflow the coverage score; the limits
	// come back unchanged.
	diff(t, []float64{1e-305, 7e-305}, (Extended{}).Breaks(1e-305, 7e-305))
}
