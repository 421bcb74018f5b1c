// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package labels

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tebeka/strftime"

	"github.com/sthagen/go-breaks/breaks"
)

// Date formats times with a strftime pattern. The zero value uses
// "%Y-%m-%d" in each time's own location; a non-nil TZ converts
// every time there first.
type Date struct {
	Fmt string
	TZ  *time.Location
}

func (f Date) Labels(ts []time.Time) ([]string, error) {
	format := f.Fmt
	if format == "" {
		format = "%Y-%m-%d"
	}
	out := make([]string, len(ts))
	for i, t := range ts {
		if f.TZ != nil {
			t = t.In(f.TZ)
		}
		s, err := strftime.Format(format, t)
		if err != nil {
			return nil, fmt.Errorf("labels: format %q: %v", format, err)
		}
		out[i] = s
	}
	return out, nil
}

// Timedelta formats durations, measuring all of them in one unit so
// a run of breaks reads consistently. The unit comes from Units (a
// breaks.ParseDurationUnit code such as "us" or "M") or, when empty,
// from the span of the values. Short units abut the number ("31s"),
// long units are spelled out and pluralized ("2 months"), and an
// exact zero is a bare "0".
type Timedelta struct {
	Units   string // fixed unit code; empty picks from the span
	NoUnits bool   // numbers only
	UseTex  bool   // render microseconds as $\mu s$
}

func (f Timedelta) Labels(ds []time.Duration) ([]string, error) {
	if len(ds) == 0 {
		return []string{}, nil
	}
	var unit breaks.DurationUnit
	if f.Units != "" {
		var err error
		unit, err = breaks.ParseDurationUnit(f.Units)
		if err != nil {
			return nil, err
		}
	} else {
		lo, hi := ds[0], ds[0]
		for _, d := range ds[1:] {
			if d < lo {
				lo = d
			}
			if d > hi {
				hi = d
			}
		}
		unit = breaks.BestDurationUnit(lo, hi)
	}

	ulabel := durationUnitLabel(unit)
	if unit == breaks.Microseconds && f.UseTex {
		ulabel = `$\mu s$`
	}
	// Spelled-out units take a plural s, abbreviations do not.
	spelled := strings.HasPrefix(ulabel, " ")
	div := float64(unit.Duration())
	out := make([]string, len(ds))
	for i, d := range ds {
		v := float64(d) / div
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if f.NoUnits || v == 0 {
			out[i] = s
			continue
		}
		u := ulabel
		if spelled && v != 1 {
			u += "s"
		}
		out[i] = s + u
	}
	return out, nil
}

func durationUnitLabel(u breaks.DurationUnit) string {
	switch u {
	case breaks.Minutes:
		return " minute"
	case breaks.Hours:
		return " hour"
	case breaks.Days:
		return " day"
	case breaks.Weeks:
		return " week"
	case breaks.Months:
		return " month"
	case breaks.Years:
		return " year"
	}
	return u.String()
}
