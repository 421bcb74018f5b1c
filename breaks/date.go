// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breaks

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrTooManyBreaks is returned when a date width would generate an
// unreasonable number of breaks, such as second-resolution breaks
// across a decade.
var ErrTooManyBreaks = errors.New("breaks: too many date breaks")

const maxDateBreaks = 10000

// Date computes major breaks at calendar boundaries: whole seconds,
// minutes, hours, days, weeks, months, or years, possibly several at
// a time. The grid starts at or before the lower limit, rounded down
// to a multiple of the interval, and runs until the first boundary
// at or past the upper limit, so the breaks always enclose the data.
//
// Week breaks land on Mondays. Month and year multiples align to
// January so that, for example, a three month interval gives
// calendar quarters.
type Date struct {
	interval int
	unit     DurationUnit
	auto     bool
}

// NewDate returns a Date that places breaks width apart, where width
// reads like "2 weeks" or "5 years". The unit may be singular or
// plural and is one of second, minute, hour, day, week, month, or
// year. An empty width selects both the unit and the interval
// automatically from the span of the limits.
func NewDate(width string) (*Date, error) {
	width = strings.TrimSpace(width)
	if width == "" {
		return &Date{auto: true}, nil
	}
	fields := strings.Fields(strings.ToLower(width))
	count, unit := "1", ""
	switch len(fields) {
	case 1:
		unit = fields[0]
	case 2:
		count, unit = fields[0], fields[1]
	default:
		return nil, fmt.Errorf("breaks: bad date width %q", width)
	}
	q, err := strconv.Atoi(count)
	if err != nil || q < 1 {
		return nil, fmt.Errorf("breaks: bad date width %q", width)
	}
	u, ok := dateUnits[strings.TrimSuffix(unit, "s")]
	if !ok {
		return nil, fmt.Errorf("breaks: bad date width %q", width)
	}
	return &Date{interval: q, unit: u}, nil
}

var dateUnits = map[string]DurationUnit{
	"second": Seconds,
	"minute": Minutes,
	"hour":   Hours,
	"day":    Days,
	"week":   Weeks,
	"month":  Months,
	"year":   Years,
}

// Breaks returns the break times for the limits lo and hi. Reversed
// limits are swapped and a zero time on either end yields no breaks,
// mirroring how missing values propagate through limit computation.
// A fixed width that would produce more than maxDateBreaks breaks
// returns ErrTooManyBreaks.
func (d *Date) Breaks(lo, hi time.Time) ([]time.Time, error) {
	if lo.IsZero() || hi.IsZero() {
		return nil, nil
	}
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	unit, q := d.unit, d.interval
	if d.auto {
		unit, q = autoDateUnit(lo, hi)
	}

	var out []time.Time
	for t := dateFloor(lo, unit, q); ; t = dateNext(t, unit, q) {
		out = append(out, t)
		if !t.Before(hi) {
			return out, nil
		}
		if len(out) > maxDateBreaks {
			return nil, fmt.Errorf("%w: %d %s spacing over %v", ErrTooManyBreaks, q, unit, hi.Sub(lo))
		}
	}
}

// autoDateUnit picks the coarsest unit showing at least minTicks
// whole units across the span, then the smallest listed interval
// that brings the count under maxTicks.
func autoDateUnit(lo, hi time.Time) (DurationUnit, int) {
	const (
		minTicks = 5
		maxTicks = 11
	)
	span := hi.Sub(lo)
	for _, ui := range autoDateIntervals {
		n := float64(span) / float64(ui.unit.Duration())
		if ui.unit == Years {
			// A Duration caps at about 292 years; count years
			// from the calendar instead.
			n = float64(hi.Year() - lo.Year())
		}
		if n < minTicks {
			continue
		}
		for _, q := range ui.intervals {
			if n/float64(q) <= maxTicks {
				return ui.unit, q
			}
		}
		// Beyond the listed intervals, which only spans of many
		// centuries reach.
		return ui.unit, niceInterval(n / maxTicks)
	}
	return Seconds, 1
}

var autoDateIntervals = []struct {
	unit      DurationUnit
	intervals []int
}{
	{Years, []int{1, 2, 4, 5, 10, 20, 50, 100}},
	{Months, []int{1, 2, 3, 4, 6}},
	{Days, []int{1, 2, 3, 7, 14, 21}},
	{Hours, []int{1, 2, 3, 4, 6, 12}},
	{Minutes, []int{1, 5, 10, 15, 30}},
	{Seconds, []int{1, 5, 10, 15, 30}},
}

// niceInterval rounds x up to the next 1, 2, or 5 times a power of
// ten.
func niceInterval(x float64) int {
	q := 1
	for {
		for _, m := range [...]int{1, 2, 5} {
			if float64(m*q) >= x {
				return m * q
			}
		}
		q *= 10
	}
}

// dateFloor rounds t down to a multiple of q units.
func dateFloor(t time.Time, unit DurationUnit, q int) time.Time {
	loc := t.Location()
	switch unit {
	case Years:
		y := floorDiv(t.Year(), q) * q
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case Months:
		// Months count from year zero so that quarter and
		// half-year intervals align to January.
		mi := floorDiv(t.Year()*12+int(t.Month())-1, q) * q
		return time.Date(floorDiv(mi, 12), time.Month(mod(mi, 12)+1), 1, 0, 0, 0, 0, loc)
	case Weeks:
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		monday := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -monday)
	case Days:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	case Hours:
		h := t.Hour() - mod(t.Hour(), q)
		return time.Date(t.Year(), t.Month(), t.Day(), h, 0, 0, 0, loc)
	case Minutes:
		m := t.Minute() - mod(t.Minute(), q)
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), m, 0, 0, loc)
	case Seconds:
		s := t.Second() - mod(t.Second(), q)
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), s, 0, loc)
	}
	panic(fmt.Sprintf("bad date unit %v", unit))
}

// dateNext advances t by q units.
func dateNext(t time.Time, unit DurationUnit, q int) time.Time {
	switch unit {
	case Years:
		return t.AddDate(q, 0, 0)
	case Months:
		return t.AddDate(0, q, 0)
	case Weeks:
		return t.AddDate(0, 0, 7*q)
	case Days:
		return t.AddDate(0, 0, q)
	case Hours, Minutes, Seconds:
		return t.Add(time.Duration(q) * unit.Duration())
	}
	panic(fmt.Sprintf("bad date unit %v", unit))
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
