// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breaks

import (
	"fmt"
	"time"
)

// A DurationUnit is a granularity for date and duration breaks.
// Months and years are calendar units; when treated as durations
// they use the fixed approximations of 31 and 365 days.
type DurationUnit int

const (
	Nanoseconds DurationUnit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
	Weeks
	Months
	Years
)

var unitNames = [...]string{"ns", "us", "ms", "s", "m", "h", "d", "w", "M", "y"}

func (u DurationUnit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("DurationUnit(%d)", int(u))
	}
	return unitNames[u]
}

// Duration returns the length of one unit.
func (u DurationUnit) Duration() time.Duration {
	switch u {
	case Nanoseconds:
		return time.Nanosecond
	case Microseconds:
		return time.Microsecond
	case Milliseconds:
		return time.Millisecond
	case Seconds:
		return time.Second
	case Minutes:
		return time.Minute
	case Hours:
		return time.Hour
	case Days:
		return 24 * time.Hour
	case Weeks:
		return 7 * 24 * time.Hour
	case Months:
		return 31 * 24 * time.Hour
	case Years:
		return 365 * 24 * time.Hour
	}
	panic(fmt.Sprintf("bad DurationUnit %d", int(u)))
}

// ParseDurationUnit parses the short unit codes produced by
// DurationUnit.String.
func ParseDurationUnit(s string) (DurationUnit, error) {
	for i, name := range unitNames {
		if s == name {
			return DurationUnit(i), nil
		}
	}
	return 0, fmt.Errorf("breaks: bad duration unit %q", s)
}

// BestDurationUnit returns the unit best suited to labeling the span
// between lo and hi. The thresholds are chosen so that a span shows
// at least a handful of whole units: for example spans of four days
// and up use days, while shorter ones drop to hours.
func BestDurationUnit(lo, hi time.Duration) DurationUnit {
	span := hi - lo
	if span < 0 {
		span = -span
	}
	switch {
	case span >= 3*Years.Duration():
		return Years
	case span >= 4*Months.Duration():
		return Months
	case span >= 4*Weeks.Duration():
		return Weeks
	case span >= 4*Days.Duration():
		return Days
	case span >= 6*Hours.Duration():
		return Hours
	case span >= 9*Minutes.Duration():
		return Minutes
	case span >= 900*time.Millisecond:
		return Seconds
	case span >= 900*time.Microsecond:
		return Milliseconds
	case span >= 900*time.Nanosecond:
		return Microseconds
	}
	return Nanoseconds
}
