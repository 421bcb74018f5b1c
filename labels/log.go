// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package labels

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sthagen/go-breaks/breaks"
)

// Log formats values from a logarithmic axis. In base 10 the labels
// are plain decimals, switching to exponent form ("1e-4") when the
// values are powers of ten or span a single decade and reach beyond
// ExponentLimits: [0.001 0.1 100] gives ["0.001" "0.1" "100"] but
// [0.0001 0.1 10000] gives ["1e-4" "1e-1" "1e4"]. Other bases always
// label by exponent, as in "2^10". MathTex renders the exponent form
// as TeX math, "$10^{-4}$", for plot backends with a TeX renderer.
type Log struct {
	Base           float64 // zero means 10
	ExponentLimits [2]int  // zero value means (-4, 4)
	MathTex        bool
}

func (f Log) Labels(xs []float64) []string {
	base := f.Base
	if base == 0 {
		base = 10
	}
	out := make([]string, len(xs))
	if len(xs) == 0 {
		return out
	}
	if base != 10 {
		return f.powerLabels(out, xs, base)
	}

	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	emin, emax := -4, 4
	if f.ExponentLimits != [2]int{} {
		emin, emax = f.ExponentLimits[0], f.ExponentLimits[1]
	}
	xmin := int(math.Floor(log10(lo)))
	xmax := int(math.Ceil(log10(hi)))
	allMultiples := true
	for _, x := range xs {
		// Log10 can be off by an ulp at exact powers, so an
		// exact integer test would misclassify values like 1000.
		if l := math.Log10(x); !(math.Abs(l-math.Round(l)) < 1e-8) {
			allMultiples = false
			break
		}
	}
	beyond := xmin <= emin || emax <= xmax
	useExp := (breaks.SameLog10Order(xs) || allMultiples) && beyond
	for i, x := range xs {
		if useExp {
			out[i] = strconv.FormatFloat(x, 'e', 0, 64)
		} else {
			out[i] = strconv.FormatFloat(x, 'g', -1, 64)
		}
	}
	return f.tidy(out)
}

// tidy makes the labels uniform: if any are in exponent form all of
// them become exponent form, redundant mantissa zeros and exponent
// padding go away, and MathTex rewrites what remains.
func (f Log) tidy(labels []string) []string {
	ne := 0
	for _, s := range labels {
		if strings.Contains(s, "e") {
			ne++
		}
	}
	if ne > 0 && ne < len(labels) {
		for i, s := range labels {
			if !strings.Contains(s, "e") {
				v, _ := strconv.ParseFloat(s, 64)
				labels[i] = strconv.FormatFloat(v, 'e', 0, 64)
			}
		}
	}
	ne = 0
	for i, s := range labels {
		labels[i] = collapseExp(s)
		if strings.Contains(labels[i], "e") {
			ne++
		}
	}
	if f.MathTex && ne > 0 {
		for i, s := range labels {
			if j := strings.IndexByte(s, 'e'); j >= 0 {
				labels[i] = fmt.Sprintf("$10^{%s}$", s[j+1:])
			} else {
				// Only a collapsed "1e0" lacks the marker.
				labels[i] = "$10^{0}$"
			}
		}
	}
	return labels
}

// log10 snaps near-integer results to the integer so that floor and
// ceil treat exact powers of ten as exact. The library logarithm can
// be off by an ulp at them.
func log10(x float64) float64 {
	l := math.Log10(x)
	if r := math.Round(l); math.Abs(l-r) < 1e-9 {
		return r
	}
	return l
}

// collapseExp shortens an exponent-form label: "1.0e-04" becomes
// "1e-4" and "1e+00" becomes plain "1".
func collapseExp(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s
	}
	m := strings.TrimSuffix(strings.TrimRight(s[:i], "0"), ".")
	exp, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return s
	}
	if exp == 0 {
		return m
	}
	return m + "e" + strconv.Itoa(exp)
}

func (f Log) powerLabels(out []string, xs []float64, base float64) []string {
	baseTxt := strconv.FormatFloat(base, 'g', -1, 64)
	if base == math.E {
		baseTxt = "e"
	}
	for i, x := range xs {
		e := math.Log(x) / math.Log(base)
		var es string
		if r := math.Round(e); math.Abs(e-r) <= 1e-8+1e-5*math.Abs(r) {
			es = strconv.Itoa(int(r))
		} else {
			es = strconv.FormatFloat(math.Round(e*1000)/1000, 'g', -1, 64)
		}
		if f.MathTex {
			out[i] = fmt.Sprintf("$%s^{%s}$", baseTxt, es)
		} else {
			out[i] = baseTxt + "^" + es
		}
	}
	return out
}
