// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package breaks computes axis break locations for plots.
//
// A break generator takes a pair of data limits and returns the
// positions where an axis should place its ticks. Extended implements
// the extended Wilkinson optimization, which searches for labelings
// that balance simplicity, coverage, and density. Pretty is a
// staircase locator in the style of the classic "pretty" axis
// algorithms and bounds the number of intervals. Log places breaks at
// integer powers of a base and falls back to subdivided powers when
// too few land within the limits.
//
// Minor fills the gaps between major breaks with evenly spaced minor
// breaks, and TransMinor does the same through a monotone axis
// transform so the minors are even in data space rather than screen
// space. Date and Timedelta adapt the numeric generators to
// time.Time and time.Duration limits.
//
// Generators accept degenerate limits: reversed limits are swapped,
// equal limits yield a single break, and non-finite limits yield no
// breaks at all.
package breaks
