// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trans

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/sthagen/go-breaks/breaks"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(1e-9, 0)

func TestRoundTrip(t *testing.T) {
	trs := []struct {
		name string
		tr   breaks.Trans
	}{
		{"Identity", Identity{}},
		{"Sqrt", Sqrt{}},
		{"Reverse", Reverse{}},
		{"Log10", Log10},
		{"Log2", Log2},
		{"Ln", Ln},
		{"Log7", NewLog(7)},
	}
	for _, test := range trs {
		if !test.tr.Numeric() {
			t.Errorf("%s.Numeric() = false", test.name)
		}
		for _, x := range []float64{0.5, 1, 2, 64, 1000} {
			got := test.tr.Inverse(test.tr.Transform(x))
			if math.Abs(got-x) > 1e-9*x {
				t.Errorf("%s: Inverse(Transform(%v)) = %v", test.name, x, got)
			}
		}
	}
}

func TestLogTransform(t *testing.T) {
	// Exact powers stay exact through the dedicated logarithms.
	if got := Log2.Transform(64); got != 6 {
		t.Errorf("Log2.Transform(64) = %v, want 6", got)
	}
	if got := Log10.Inverse(3); got != 1000 {
		t.Errorf("Log10.Inverse(3) = %v, want 1000", got)
	}
	if got := Ln.Transform(math.E); math.Abs(got-1) > 1e-15 {
		t.Errorf("Ln.Transform(e) = %v, want 1", got)
	}
	if got := NewLog(7).Transform(49); math.Abs(got-2) > 1e-12 {
		t.Errorf("Log7.Transform(49) = %v, want 2", got)
	}
	if got := Log10.Base(); got != 10 {
		t.Errorf("Log10.Base() = %v, want 10", got)
	}
}

func TestNewLogPanics(t *testing.T) {
	for _, base := range []float64{1, 0.5, -2, math.NaN()} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewLog(%v) did not panic", base)
				}
			}()
			NewLog(base)
		}()
	}
}

func TestBreaks(t *testing.T) {
	diff(t, []float64{0, 25, 50, 75, 100}, Identity{}.Breaks(0, 99), approx)
	diff(t, []float64{4, 5, 6, 7, 8}, Sqrt{}.Breaks(4, 8), approx)
	diff(t, []float64{8, 9, 10, 11, 12, 13}, Reverse{}.Breaks(8, 13), approx)
	diff(t, []float64{1, 10, 100, 1000}, Log10.Breaks(2, 1000), approx)
	diff(t, []float64{16, 32, 64, 128}, Log2.Breaks(20, 80), approx)
}

func TestMinorBreaks(t *testing.T) {
	diff(t, []float64{1.5, 2.5, 3.5}, Identity{}.MinorBreaks([]float64{1, 2, 3, 4}, 1, 4), approx)

	// Majors at 1, 10, 100. The grid extends a decade past each
	// end, and within every decade the minors sit on the 2..9
	// multiples.
	got := Log10.MinorBreaks([]float64{0, 1, 2}, -1, 3)
	var want []float64
	for _, scale := range []float64{0.1, 1, 10, 100} {
		for m := 2.0; m <= 9; m++ {
			want = append(want, math.Log10(m*scale))
		}
	}
	diff(t, want, got, approx)

	// Base 2 has no multiples between consecutive powers.
	if got := Log2.MinorBreaks([]float64{1, 2, 3}, 0, 4); got != nil {
		t.Errorf("Log2.MinorBreaks = %v, want nil", got)
	}
}
