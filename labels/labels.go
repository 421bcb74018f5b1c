// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package labels turns break values into display strings.
//
// Each formatter is a small option struct whose Labels method maps a
// slice of break values to a slice of strings of the same length.
// Formatters look at the whole slice at once so related breaks get
// consistent labels: Percent picks one precision for all values,
// Scientific trims only zeros shared by every mantissa, and
// Timedelta measures all durations in a single unit.
package labels

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sthagen/go-breaks/breaks"
)

// Custom formats every value with a single fmt verb, such as
// "%.2f km".
type Custom struct {
	Fmt string
}

func (f Custom) Labels(xs []float64) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = fmt.Sprintf(f.Fmt, x)
	}
	return out
}

// Number formats values as plain decimals. With Digits positive each
// value gets that many decimal places, with an all-zero decimal part
// trimmed; otherwise each value gets the fewest digits that
// represent it exactly.
type Number struct {
	Digits int
}

func (f Number) Labels(xs []float64) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		if f.Digits <= 0 {
			out[i] = strconv.FormatFloat(x, 'f', -1, 64)
		} else {
			out[i] = trimZeroDecimals(strconv.FormatFloat(x, 'f', f.Digits, 64))
		}
	}
	return out
}

// trimZeroDecimals drops the decimal part when it is entirely zero,
// so "16.000" becomes "16" but "16.500" is left alone.
func trimZeroDecimals(s string) string {
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return s
	}
	for _, c := range s[i+1:] {
		if c != '0' {
			return s
		}
	}
	return s[:i]
}

// Currency formats values as amounts of money: a fixed number of
// decimal places between a prefix and suffix, with an optional
// thousands separator. The zero value formats whole units with no
// adornment.
type Currency struct {
	Prefix  string
	Suffix  string
	Digits  int
	BigMark string // thousands separator, usually ","
}

// Dollar formats cents precision with a dollar prefix.
var Dollar = Currency{Prefix: "$", Digits: 2}

func (f Currency) Labels(xs []float64) []string {
	digits := f.Digits
	if digits < 0 {
		digits = 0
	}
	out := make([]string, len(xs))
	for i, x := range xs {
		var s string
		if f.BigMark != "" {
			// The trailing dot matters: without it FormatFloat
			// reads the comma as a decimal separator.
			pattern := "#,###." + strings.Repeat("0", digits)
			s = humanize.FormatFloat(pattern, x)
			if f.BigMark != "," {
				s = strings.ReplaceAll(s, ",", f.BigMark)
			}
		} else {
			s = strconv.FormatFloat(x, 'f', digits, 64)
		}
		out[i] = f.Prefix + s + f.Suffix
	}
	return out
}

// Comma formats values with thousands separators, as in "33,000".
type Comma struct {
	Digits int
}

func (f Comma) Labels(xs []float64) []string {
	return Currency{Digits: f.Digits, BigMark: ","}.Labels(xs)
}

// Percent multiplies proportions by one hundred and appends a
// percent sign. All values share one precision, derived from their
// span, so a run of breaks reads consistently: [0.12 0.23 0.34]
// gives ["12%" "23%" "34%"].
type Percent struct {
	UseComma bool // comma thousands separator
}

func (f Percent) Labels(xs []float64) []string {
	if len(xs) == 0 {
		return []string{}
	}
	prec := breaks.Precision(xs)
	digits := 0
	if prec < 1 {
		digits = int(math.Round(-math.Log10(prec)))
	}
	vals := make([]float64, len(xs))
	for i, x := range xs {
		vals[i] = breaks.RoundAny(x, prec/100, nil) * 100
	}
	big := ""
	if f.UseComma {
		big = ","
	}
	out := Currency{Suffix: "%", Digits: digits, BigMark: big}.Labels(vals)
	if digits > 0 {
		stripZeroDecimalSuffix(out, "%")
	}
	return out
}

// stripZeroDecimalSuffix drops the decimal part ahead of the suffix,
// but only when every label's decimals are zero, so a mixed run like
// ["65.4%" "10.0%"] stays aligned while ["10.0%" "20.0%"] shortens
// to ["10%" "20%"].
func stripZeroDecimalSuffix(labels []string, suffix string) {
	for _, s := range labels {
		body := strings.TrimSuffix(s, suffix)
		if trimZeroDecimals(body) == body {
			return
		}
	}
	for i, s := range labels {
		labels[i] = trimZeroDecimals(strings.TrimSuffix(s, suffix)) + suffix
	}
}

// Scientific formats values in exponent notation with Digits decimal
// places in the mantissa (three when zero), then trims the trailing
// mantissa zeros shared by every label: [0.12 0.23 45] gives
// ["1.2e-01" "2.3e-01" "4.5e+01"].
type Scientific struct {
	Digits int
}

func (f Scientific) Labels(xs []float64) []string {
	digits := f.Digits
	if digits <= 0 {
		digits = 3
	}
	out := make([]string, len(xs))
	common := digits
	for i, x := range xs {
		out[i] = strconv.FormatFloat(x, 'e', digits, 64)
		if n := mantissaZeros(out[i]); n < common {
			common = n
		}
	}
	if common == 0 {
		return out
	}
	for i, s := range out {
		e := strings.IndexByte(s, 'e')
		m := strings.TrimSuffix(s[:e-common], ".")
		out[i] = m + s[e:]
	}
	return out
}

// mantissaZeros counts the trailing zeros of the mantissa in a
// strconv 'e' formatted value, not counting past the decimal point.
func mantissaZeros(s string) int {
	e := strings.IndexByte(s, 'e')
	n := 0
	for i := e - 1; i >= 0 && s[i] == '0'; i-- {
		n++
	}
	return n
}

// PValue formats p-values, collapsing anything below Accuracy to a
// "<" bound: [0.9 0.015 0.0005] gives ["0.9" "0.015" "<0.001"].
type PValue struct {
	Accuracy float64 // zero means 0.001
	AddP     bool    // prefix labels with "p=" or "p<"
}

func (f PValue) Labels(xs []float64) []string {
	acc := f.Accuracy
	if acc == 0 {
		acc = 0.001
	}
	// Six significant digits hide the dust that products of the
	// accuracy leave behind, so 9*0.001 labels as 0.009.
	bound := strconv.FormatFloat(acc, 'g', 6, 64)
	out := make([]string, len(xs))
	for i, x := range xs {
		if x < acc {
			if f.AddP {
				out[i] = "p<" + bound
			} else {
				out[i] = "<" + bound
			}
			continue
		}
		s := strconv.FormatFloat(breaks.RoundAny(x, acc, nil), 'g', 6, 64)
		if f.AddP {
			s = "p=" + s
		}
		out[i] = s
	}
	return out
}

// Ordinal formats values as ordinals: 1st, 2nd, 3rd. BigMark adds a
// thousands separator, as in "12,345th", and Prefix and Suffix wrap
// the whole label.
type Ordinal struct {
	Prefix  string
	Suffix  string
	BigMark string
}

func (f Ordinal) Labels(xs []float64) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		n := int(math.Round(x))
		s := humanize.Ordinal(n)
		if f.BigMark != "" {
			ord := strings.TrimLeft(s, "-0123456789")
			s = humanize.Comma(int64(n))
			if f.BigMark != "," {
				s = strings.ReplaceAll(s, ",", f.BigMark)
			}
			s += ord
		}
		out[i] = f.Prefix + s + f.Suffix
	}
	return out
}
