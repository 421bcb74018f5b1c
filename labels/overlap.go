// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package labels

import (
	"errors"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Overlap scores candidate labelings by whether their rendered
// labels fit side by side, for use as a breaks.Extended Legibility
// hook. A labeling whose neighboring labels keep at least an em of
// space scores 1, tighter spacings fall off toward negative
// infinity, and colliding labels score negative infinity outright,
// steering the search toward labelings that fit the axis.
type Overlap struct {
	font    *truetype.Font
	scale   fixed.Int26_6
	axisLen float64
	em      float64
	format  func([]float64) []string
}

// NewOverlap returns a scorer for labels set in font at size points
// on an axis axisLen points long. A nil font means Go Regular, a
// zero size means 12, and a nil format means Number{}.Labels.
func NewOverlap(font *truetype.Font, size, axisLen float64, format func([]float64) []string) (*Overlap, error) {
	if axisLen <= 0 {
		return nil, errors.New("labels: overlap axis length must be positive")
	}
	if font == nil {
		var err error
		font, err = freetype.ParseFont(goregular.TTF)
		if err != nil {
			return nil, err
		}
	}
	if size <= 0 {
		size = 12
	}
	if format == nil {
		format = Number{}.Labels
	}
	o := &Overlap{
		font:    font,
		scale:   fixed.Int26_6(size * 64),
		axisLen: axisLen,
		format:  format,
	}
	o.em = o.width("m")
	return o, nil
}

// Score rates the labeling lmin, lmin+lstep, ..., lmax by its worst
// pair of neighboring labels, assuming the labels are centered on
// evenly spaced ticks along the axis.
func (o *Overlap) Score(lmin, lmax, lstep float64) float64 {
	k := int(math.Round((lmax-lmin)/lstep)) + 1
	if k < 2 {
		return 1
	}
	if k > 1000 {
		return math.Inf(-1)
	}
	values := make([]float64, k)
	for i := range values {
		values[i] = lmin + float64(i)*lstep
	}
	labels := o.format(values)
	sep := o.axisLen / float64(k-1)
	score := 1.0
	for i := 0; i+1 < k; i++ {
		gap := sep - (o.width(labels[i])+o.width(labels[i+1]))/2
		var s float64
		switch {
		case gap >= o.em:
			s = 1
		case gap > 0:
			s = 2 - o.em/gap
		default:
			s = math.Inf(-1)
		}
		if s < score {
			score = s
		}
	}
	return score
}

// width measures s in points by advance widths alone, ignoring
// kerning.
func (o *Overlap) width(s string) float64 {
	var w fixed.Int26_6
	for _, r := range s {
		w += o.font.HMetric(o.scale, o.font.Index(r)).AdvanceWidth
	}
	return float64(w) / 64
}
