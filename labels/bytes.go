// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package labels

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Bytes formats values as byte sizes. The zero value picks a binary
// prefix per value, so [1000 1000000 400000] gives
// ["1000 B" "977 KiB" "391 KiB"]; SI switches to decimal prefixes,
// giving ["1.0 kB" "1.0 MB" "400 kB"]. A non-empty Symbol fixes one
// unit for every value instead. An unrecognized Symbol labels raw
// byte counts with that suffix.
type Bytes struct {
	Symbol string // fixed unit such as "MB" or "MiB"; empty picks per value
	SI     bool   // decimal prefixes (base 1000) instead of binary (base 1024)
}

var (
	siByteSyms  = []string{"B", "kB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}
	iecByteSyms = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}
)

func (f Bytes) Labels(xs []float64) []string {
	syms, base := iecByteSyms, 1024.0
	if f.SI {
		syms, base = siByteSyms, 1000.0
	}
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = f.label(x, syms, base)
	}
	return out
}

func (f Bytes) label(x float64, syms []string, base float64) string {
	if f.Symbol != "" {
		pow := 0
		for k, s := range syms {
			if s == f.Symbol {
				pow = k
				break
			}
		}
		return fmt.Sprintf("%.0f %s", x/math.Pow(base, float64(pow)), f.Symbol)
	}

	neg := ""
	if x < 0 {
		neg, x = "-", -x
	}
	// humanize counts bytes in a uint64; beyond that range pick the
	// prefix here so zetta and yotta sizes still label.
	if x < 1<<62 {
		n := uint64(math.Round(x))
		if f.SI {
			return neg + humanize.Bytes(n)
		}
		return neg + humanize.IBytes(n)
	}
	pow := 0
	for pow+1 < len(syms) && x >= math.Pow(base, float64(pow+1)) {
		pow++
	}
	return neg + fmt.Sprintf("%.0f %s", x/math.Pow(base, float64(pow)), syms[pow])
}

// SI formats values with metric prefixes ahead of Unit, so 2200 with
// unit "W" reads "2.2 kW".
type SI struct {
	Unit string
}

func (f SI) Labels(xs []float64) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = humanize.SI(x, f.Unit)
	}
	return out
}
