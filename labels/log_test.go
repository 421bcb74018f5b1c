// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package labels_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sthagen/go-breaks/labels"
)

func TestLog(t *testing.T) {
	// Powers of ten within the exponent limits stay plain.
	got := labels.Log{}.Labels([]float64{0.001, 0.1, 100})
	require.Equal(t, []string{"0.001", "0.1", "100"}, got)

	// Reaching an exponent of -4 flips the whole run to exponent form.
	got = labels.Log{}.Labels([]float64{0.0001, 0.1, 10000})
	require.Equal(t, []string{"1e-4", "1e-1", "1e4"}, got)

	got = labels.Log{MathTex: true}.Labels([]float64{0.0001, 0.1, 10000})
	require.Equal(t, []string{"$10^{-4}$", "$10^{-1}$", "$10^{4}$"}, got)

	// Values crowding one decade label by exponent even when they are
	// not powers of ten.
	got = labels.Log{}.Labels([]float64{5e-5, 8e-5, 9e-5})
	require.Equal(t, []string{"5e-5", "8e-5", "9e-5"}, got)

	// Mixed magnitudes inside the limits stay plain decimals.
	got = labels.Log{}.Labels([]float64{0.002, 0.05, 0.7})
	require.Equal(t, []string{"0.002", "0.05", "0.7"}, got)

	require.Empty(t, labels.Log{}.Labels(nil))
}

func TestLogExponentLimits(t *testing.T) {
	f := labels.Log{ExponentLimits: [2]int{-2, 2}}
	got := f.Labels([]float64{0.01, 0.1, 1})
	require.Equal(t, []string{"1e-2", "1e-1", "1"}, got)

	// The defaults leave the same values alone.
	got = labels.Log{}.Labels([]float64{0.01, 0.1, 1})
	require.Equal(t, []string{"0.01", "0.1", "1"}, got)
}

func TestLogTidy(t *testing.T) {
	// One label in exponent form drags the rest along, but exponents
	// of zero still collapse to the bare mantissa.
	got := labels.Log{}.Labels([]float64{2e-5, 3})
	require.Equal(t, []string{"2e-5", "3"}, got)
}

func TestLogBase(t *testing.T) {
	got := labels.Log{Base: 2}.Labels([]float64{16, 32, 64, 128})
	require.Equal(t, []string{"2^4", "2^5", "2^6", "2^7"}, got)

	got = labels.Log{Base: 2}.Labels([]float64{0.25, 1, 4})
	require.Equal(t, []string{"2^-2", "2^0", "2^2"}, got)

	got = labels.Log{Base: 2, MathTex: true}.Labels([]float64{64})
	require.Equal(t, []string{"$2^{6}$"}, got)

	// Off-grid values get the exponent to three decimals.
	got = labels.Log{Base: 2}.Labels([]float64{10})
	require.Equal(t, []string{"2^3.322"}, got)

	got = labels.Log{Base: math.E}.Labels([]float64{math.E, math.E * math.E})
	require.Equal(t, []string{"e^1", "e^2"}, got)
}
