// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	_ Interface = Linear{}
	_ Interface = &Log{}
	_ Interface = Power{}
)

var approx = cmpopts.EquateApprox(1e-9, 0)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestLinear(t *testing.T) {
	s := NewLinear([]float64{7, 77})
	for _, test := range []struct{ x, want float64 }{
		{7, 0}, {42, 0.5}, {77, 1}, {0, -0.1},
	} {
		if got := s.Of(test.x); got != test.want {
			t.Errorf("Of(%v) = %v, want %v", test.x, got, test.want)
		}
	}
}

func TestLinearNice(t *testing.T) {
	s := NewLinear([]float64{7, 77})
	s.Nice(5)
	if got := s.Of(0); got != 0 {
		t.Errorf("after Nice(5), Of(0) = %v, want 0", got)
	}
	if got := s.Of(80); got != 1 {
		t.Errorf("after Nice(5), Of(80) = %v, want 1", got)
	}

	s = NewLinear([]float64{7, 77})
	s.Nice(2)
	if got := s.Of(100); got != 1 {
		t.Errorf("after Nice(2), Of(100) = %v, want 1", got)
	}
}

func TestLinearTicks(t *testing.T) {
	s := NewLinear([]float64{0, 99})
	major, minor := s.Ticks(5)
	diff(t, []float64{0, 25, 50, 75, 100}, major, approx)
	diff(t, []float64{12.5, 37.5, 62.5, 87.5}, minor, approx)
}

func TestLog(t *testing.T) {
	s := NewLog([]float64{1, 10000}, 10)
	if got := s.Of(1); got != 0 {
		t.Errorf("Of(1) = %v, want 0", got)
	}
	if got := s.Of(10000); got != 1 {
		t.Errorf("Of(10000) = %v, want 1", got)
	}
	diff(t, 0.5, s.Of(100), approx)
	diff(t, 0.25, s.Of(10), approx)
}

func TestLogNice(t *testing.T) {
	s := NewLog([]float64{2, 800}, 10)
	s.Nice(5)
	if got := s.Of(1); got != 0 {
		t.Errorf("after Nice, Of(1) = %v, want 0", got)
	}
	if got := s.Of(1000); got != 1 {
		t.Errorf("after Nice, Of(1000) = %v, want 1", got)
	}

	// A minimum already on a power must stay put rather than slip a
	// whole power down.
	s = NewLog([]float64{1000, 50000}, 10)
	s.Nice(5)
	if got := s.Of(1000); got != 0 {
		t.Errorf("after Nice, Of(1000) = %v, want 0", got)
	}
	if got := s.Of(100000); got != 1 {
		t.Errorf("after Nice, Of(100000) = %v, want 1", got)
	}

	// Too many powers for n escalates to powers of base squared.
	s = NewLog([]float64{1, 1e8}, 10)
	s.Nice(5)
	if got := s.Of(1); got != 0 {
		t.Errorf("after Nice, Of(1) = %v, want 0", got)
	}
	if got := s.Of(1e8); got != 1 {
		t.Errorf("after Nice, Of(1e8) = %v, want 1", got)
	}
}

func TestLogTicks(t *testing.T) {
	s := NewLog([]float64{2, 800}, 10)
	s.Nice(5)
	major, minor := s.Ticks(5)
	diff(t, []float64{1, 10, 100, 1000}, major, approx)
	var wminor []float64
	for _, decade := range []float64{1, 10, 100} {
		for i := 2.0; i <= 9; i++ {
			wminor = append(wminor, i*decade)
		}
	}
	diff(t, wminor, minor, approx)

	// Base 2 has no integer multiples strictly between powers.
	s = NewLog([]float64{20, 80}, 2)
	major, minor = s.Ticks(5)
	diff(t, []float64{16, 32, 64, 128}, major, approx)
	if len(minor) != 0 {
		t.Errorf("base-2 minor ticks = %v, want none", minor)
	}
}

func TestPower(t *testing.T) {
	s := NewPower([]float64{0, 100}, 2)
	for _, test := range []struct{ x, want float64 }{
		{0, 0}, {50, 0.25}, {100, 1},
	} {
		if got := s.Of(test.x); got != test.want {
			t.Errorf("Of(%v) = %v, want %v", test.x, got, test.want)
		}
	}
	if got := NewPower([]float64{0, 16}, 0.5).Of(4); got != 0.5 {
		t.Errorf("sqrt scale Of(4) = %v, want 0.5", got)
	}

	major, _ := NewPower([]float64{0, 99}, 2).Ticks(5)
	diff(t, []float64{0, 25, 50, 75, 100}, major, approx)

	nice := NewPower([]float64{0, 97}, 2)
	nice.Nice(5)
	if got := nice.Of(100); got != 1 {
		t.Errorf("after Nice(5), Of(100) = %v, want 1", got)
	}
}

func TestOutputScale(t *testing.T) {
	s := NewOutputScale(10, 20)

	check := func(x, want float64, wantOK bool) {
		t.Helper()
		got, ok := s.Of(x)
		if got != want || ok != wantOK {
			t.Errorf("Of(%v) = %v, %v, want %v, %v", x, got, ok, want, wantOK)
		}
	}

	// The default crops out-of-range values.
	check(0, 10, true)
	check(0.5, 15, true)
	check(1, 20, true)
	check(-0.1, 0, false)
	check(1.5, 0, false)

	s.Clamp()
	check(-0.1, 10, true)
	check(1.5, 20, true)

	s.Unclamp()
	check(1.5, 25, true)
	check(-0.5, 5, true)

	s.Crop()
	check(1.5, 0, false)
}

func TestNicePanics(t *testing.T) {
	mustPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}

	lin := NewLinear([]float64{0, 10})
	mustPanic("Linear.Nice(1)", func() { lin.Nice(1) })
	log := NewLog([]float64{1, 10}, 10)
	mustPanic("Log.Nice(1)", func() { log.Nice(1) })
	mustPanic("Log.Ticks(1)", func() { log.Ticks(1) })
	pow := NewPower([]float64{0, 10}, 2)
	mustPanic("Power.Nice(1)", func() { pow.Nice(1) })
}
