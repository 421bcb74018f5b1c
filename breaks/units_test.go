// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breaks

import (
	"testing"
	"time"
)

func TestDurationUnit(t *testing.T) {
	units := []DurationUnit{
		Nanoseconds, Microseconds, Milliseconds, Seconds, Minutes,
		Hours, Days, Weeks, Months, Years,
	}
	for _, u := range units {
		got, err := ParseDurationUnit(u.String())
		if err != nil {
			t.Errorf("ParseDurationUnit(%q): %v", u.String(), err)
		} else if got != u {
			t.Errorf("ParseDurationUnit(%q) = %v, want %v", u.String(), got, u)
		}
	}
	if _, err := ParseDurationUnit("parsec"); err == nil {
		t.Error("ParseDurationUnit(\"parsec\") succeeded, want error")
	}

	if got := Months.Duration(); got != 744*time.Hour {
		t.Errorf("Months.Duration() = %v, want 744h", got)
	}
	if got := Years.Duration(); got != 8760*time.Hour {
		t.Errorf("Years.Duration() = %v, want 8760h", got)
	}
}

func TestBestDurationUnit(t *testing.T) {
	tests := []struct {
		span time.Duration
		want DurationUnit
	}{
		{3 * 8760 * time.Hour, Years},
		{3*8760*time.Hour - time.Second, Months},
		{4 * 744 * time.Hour, Months},
		{4*744*time.Hour - time.Second, Weeks},
		{4 * 7 * 24 * time.Hour, Weeks},
		{4*7*24*time.Hour - time.Second, Days},
		{96 * time.Hour, Days},
		{96*time.Hour - time.Second, Hours},
		{6 * time.Hour, Hours},
		{6*time.Hour - time.Second, Minutes},
		{9 * time.Minute, Minutes},
		{9*time.Minute - time.Second, Seconds},
		{900 * time.Millisecond, Seconds},
		{899 * time.Millisecond, Milliseconds},
		{900 * time.Microsecond, Milliseconds},
		{899 * time.Microsecond, Microseconds},
		{900 * time.Nanosecond, Microseconds},
		{899 * time.Nanosecond, Nanoseconds},
	}
	for _, test := range tests {
		if got := BestDurationUnit(0, test.span); got != test.want {
			t.Errorf("BestDurationUnit(0, %v) = %v, want %v", test.span, got, test.want)
		}
	}
	// Reversed limits measure the same span.
	if got := BestDurationUnit(time.Hour, 0); got != Minutes {
		t.Errorf("BestDurationUnit(1h, 0) = %v, want Minutes", got)
	}
}
