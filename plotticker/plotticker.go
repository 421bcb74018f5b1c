// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotticker feeds break generators into plotting libraries.
//
// The adapters only hand tick values and labels to the libraries'
// own types; all drawing stays with the libraries.
package plotticker

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"

	"github.com/sthagen/go-breaks/breaks"
	"github.com/sthagen/go-breaks/labels"
)

// A Generator computes major break values for a data range. The
// major generators in package breaks satisfy it.
type Generator interface {
	Breaks(lo, hi float64) []float64
}

// Gonum adapts a break generator to gonum/plot's plot.Ticker. Major
// breaks become labeled ticks and minor breaks unlabeled ones, which
// plot draws at half length.
type Gonum struct {
	Major  Generator                // nil means breaks.Extended{}
	MinorN int                      // minors per gap; 0 means 1, negative means none
	Labels func([]float64) []string // nil means labels.Number{}.Labels
}

var _ plot.Ticker = Gonum{}

func (g Gonum) Ticks(min, max float64) []plot.Tick {
	gen := g.Major
	if gen == nil {
		gen = breaks.Extended{}
	}
	format := g.Labels
	if format == nil {
		format = labels.Number{}.Labels
	}
	major := gen.Breaks(min, max)
	labs := format(major)
	ticks := make([]plot.Tick, 0, 2*len(major))
	for i, v := range major {
		ticks = append(ticks, plot.Tick{Value: v, Label: labs[i]})
	}
	n := g.MinorN
	if n == 0 {
		n = 1
	}
	if n > 0 {
		for _, v := range (breaks.Minor{N: n}).Breaks(major, min, max) {
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}

// Chart adapts a break generator to go-chart ticks.
type Chart struct {
	Major  Generator                // nil means breaks.Extended{}
	Labels func([]float64) []string // nil means labels.Number{}.Labels
}

func (c Chart) Ticks(lo, hi float64) []chart.Tick {
	gen := c.Major
	if gen == nil {
		gen = breaks.Extended{}
	}
	format := c.Labels
	if format == nil {
		format = labels.Number{}.Labels
	}
	major := gen.Breaks(lo, hi)
	labs := format(major)
	ticks := make([]chart.Tick, len(major))
	for i, v := range major {
		ticks[i] = chart.Tick{Value: v, Label: labs[i]}
	}
	return ticks
}

// NiceRange returns a go-chart range covering both the data limits
// and g's breaks for them, so axes start and end on tick values. A
// nil g means breaks.Pretty{}, whose breaks always enclose the data.
func NiceRange(lo, hi float64, g Generator) *chart.ContinuousRange {
	if g == nil {
		g = breaks.Pretty{}
	}
	bs := g.Breaks(lo, hi)
	rng := &chart.ContinuousRange{Min: lo, Max: hi}
	if len(bs) > 0 {
		rng.Min = math.Min(lo, bs[0])
		rng.Max = math.Max(hi, bs[len(bs)-1])
	}
	return rng
}
