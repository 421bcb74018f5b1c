// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// An OutputScale maps from the unit interval to a device range, such
// as pixel or point coordinates. It is the final stage after an input
// scale: device position = out.Of(in.Of(x)).
type OutputScale struct {
	min, max float64
	clamp    int
}

const (
	clampCrop = iota
	clampNone
	clampClamp
)

// NewOutputScale returns an output scale mapping [0, 1] to
// [min, max]. It crops out-of-range values until Clamp or Unclamp
// says otherwise.
func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{min, max, clampCrop}
}

// Crop makes Of reject values outside [0, 1]. This is the default.
func (s *OutputScale) Crop() {
	s.clamp = clampCrop
}

// Unclamp makes Of extrapolate values outside [0, 1].
func (s *OutputScale) Unclamp() {
	s.clamp = clampNone
}

// Clamp makes Of pin values outside [0, 1] to the range ends.
func (s *OutputScale) Clamp() {
	s.clamp = clampClamp
}

// Of maps x from [0, 1] to the output range. The boolean is false
// only when cropping rejects x.
func (s OutputScale) Of(x float64) (float64, bool) {
	switch s.clamp {
	case clampCrop:
		if x < 0 || x > 1 {
			return 0, false
		}
	case clampClamp:
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
	}
	return x*(s.max-s.min) + s.min, true
}
