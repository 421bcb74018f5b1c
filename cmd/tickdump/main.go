// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tickdump prints the axis breaks for a data range.
//
// tickdump computes major and minor breaks for a linear or
// logarithmic axis between -min and -max, formats their labels, and
// draws the axis in ASCII. For example,
//
//	tickdump -min 0 -max 99
//	tickdump -min 2 -max 2000 -scale log -labels log
//
// It exists to eyeball what the break generators do to a range
// without plotting anything.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/aclements/go-moremath/vec"

	"github.com/sthagen/go-breaks/labels"
	"github.com/sthagen/go-breaks/scale"
)

func main() {
	var (
		flagMin    = flag.Float64("min", 0, "`lower` limit of the data range")
		flagMax    = flag.Float64("max", 100, "`upper` limit of the data range")
		flagN      = flag.Int("n", 5, "maximum `count` of major breaks")
		flagScale  = flag.String("scale", "linear", "axis `kind`: linear or log")
		flagBase   = flag.Float64("base", 10, "log `base`")
		flagLabels = flag.String("labels", "number", "label `format`: number, comma, percent, scientific, si, bytes, or log")
		flagWidth  = flag.Int("w", 72, "axis `width` in characters")
	)
	flag.Parse()
	if flag.NArg() > 0 || *flagWidth < 2 || *flagN < 2 {
		flag.Usage()
		os.Exit(1)
	}

	var (
		s            scale.Interface
		major, minor []float64
	)
	switch *flagScale {
	case "linear":
		lin := scale.NewLinear([]float64{*flagMin, *flagMax})
		lin.Nice(*flagN)
		major, minor = lin.Ticks(*flagN)
		s = lin
	case "log":
		if *flagMin <= 0 || *flagMax <= *flagMin {
			log.Fatalf("log scale needs 0 < min < max, got [%v, %v]", *flagMin, *flagMax)
		}
		lg := scale.NewLog([]float64{*flagMin, *flagMax}, *flagBase)
		lg.Nice(*flagN)
		major, minor = lg.Ticks(*flagN)
		s = lg
	default:
		log.Fatalf("unknown scale %q", *flagScale)
	}

	var format func([]float64) []string
	switch *flagLabels {
	case "number":
		format = labels.Number{}.Labels
	case "comma":
		format = labels.Comma{}.Labels
	case "percent":
		format = labels.Percent{}.Labels
	case "scientific":
		format = labels.Scientific{}.Labels
	case "si":
		format = labels.SI{}.Labels
	case "bytes":
		format = labels.Bytes{}.Labels
	case "log":
		format = labels.Log{Base: *flagBase}.Labels
	default:
		log.Fatalf("unknown label format %q", *flagLabels)
	}
	labs := format(major)

	fmt.Printf("major: %v\n", major)
	fmt.Printf("minor: %v\n", minor)

	// Draw the axis: labels above, major ticks as '|', minor as '+'.
	out := scale.NewOutputScale(0, float64(*flagWidth-1))
	axis := make([]byte, *flagWidth)
	for i := range axis {
		axis[i] = '-'
	}
	text := make([]byte, *flagWidth)
	for i := range text {
		text[i] = ' '
	}
	for _, p := range vec.Map(s.Of, minor) {
		if x, ok := out.Of(p); ok {
			axis[int(math.Round(x))] = '+'
		}
	}
	for i, p := range vec.Map(s.Of, major) {
		x, ok := out.Of(p)
		if !ok {
			continue
		}
		pos := int(math.Round(x))
		axis[pos] = '|'
		if pos+len(labs[i]) > len(text) {
			pos = len(text) - len(labs[i])
		}
		copy(text[pos:], labs[i])
	}
	fmt.Println(strings.TrimRight(string(text), " "))
	fmt.Println(string(axis))
}
