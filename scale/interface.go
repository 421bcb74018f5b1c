// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data values onto the unit interval for axis
// layout. Each scale pairs the forward mapping with tick placement:
// Ticks asks the break generators in package breaks for major and
// minor positions in the scale's input range, and Nice widens the
// range so it starts and ends on a break. OutputScale then carries
// unit-interval positions to device coordinates.
package scale

// A scale satisfies Interface if it maps from some input range to an
// output interval [0, 1].
type Interface interface {
	// Of maps x to [0, 1]. Values outside the input range map
	// outside the unit interval.
	Of(x float64) float64

	// Ticks returns about n major tick positions within the input
	// range and the minor ticks between them, both in input space.
	Ticks(n int) (major, minor []float64)
}
