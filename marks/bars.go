// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package marks lays out the geometry of series marks over a pair of
// scales. It computes positions and extents only; drawing them is up
// to the caller.
package marks

import (
	"log"
	"math"
	"os"

	"github.com/aclements/go-xychart/scale"
	"github.com/aclements/go-xychart/series"
)

// Warning is a logger for reporting data that can't be laid out.
var Warning = log.New(os.Stderr, "[marks] ", log.Lshortfile)

// barFill is the fraction of the per-datum slot a bar occupies on a
// continuous x axis.
const barFill = 0.8

// Rect is the geometry of one bar or bar segment, in pixels. Y is the
// top edge.
type Rect struct {
	Series string
	Index  int

	// Key is the stack or group key of this segment, if any.
	Key string

	Datum      series.Datum
	X, Y, W, H float64
}

// Bandwidth returns the band width of s, or 0 if s is not banded.
func Bandwidth(s scale.Scale) float64 {
	if b, ok := s.(interface{ Bandwidth() float64 }); ok {
		return b.Bandwidth()
	}
	return 0
}

// xSlot returns the left edge and width of the bar for x value v. On
// a band scale the bar fills the band. Otherwise it is centered on v
// and its width is a fraction of the range width divided among n
// data points.
func xSlot(x scale.Scale, v interface{}, n int) (left, width float64, ok bool) {
	px, ok := x.Map(v)
	if !ok {
		return 0, 0, false
	}
	if bw := Bandwidth(x); bw > 0 {
		return px, bw, true
	}
	width = math.Abs(x.Range().Width()) / float64(n) * barFill
	return px - width/2, width, true
}

// baseline returns the pixel coordinate bars grow from: the low end
// of the y scale's range.
func baseline(y scale.Scale) float64 {
	return y.Range().Lo
}

// span returns the rect between pixel coordinates y0 and y1.
func span(r Rect, y0, y1 float64) Rect {
	r.Y, r.H = math.Min(y0, y1), math.Abs(y1-y0)
	return r
}

// Bars returns one rect per datum of s, extending from the bottom of
// the y range to the datum's Y value.
func Bars(s *series.Series, x, y scale.Scale) []Rect {
	var rects []Rect
	for i, d := range s.Data {
		left, w, ok := xSlot(x, d.X, len(s.Data))
		if !ok {
			Warning.Printf("series %q: cannot place x value %v", s.Label, d.X)
			continue
		}
		top, ok := y.Map(d.Y)
		if !ok {
			Warning.Printf("series %q: cannot place y value %v", s.Label, d.Y)
			continue
		}
		r := Rect{Series: s.Label, Index: i, Datum: d, X: left, W: w}
		rects = append(rects, span(r, baseline(y), top))
	}
	return rects
}

// StackedBars returns one rect per datum and key of s. The segments
// of each datum are stacked in key order from the bottom of the y
// range.
func StackedBars(s *series.Series, x, y scale.Scale) []Rect {
	cy, ok := y.(*scale.Continuous)
	if !ok {
		Warning.Printf("series %q: stacked bars need a continuous y scale", s.Label)
		return nil
	}
	var rects []Rect
	for i, d := range s.Data {
		left, w, ok := xSlot(x, d.X, len(s.Data))
		if !ok {
			Warning.Printf("series %q: cannot place x value %v", s.Label, d.X)
			continue
		}
		sum := 0.0
		for _, k := range s.Keys {
			v, _ := series.ToFloat(d.Field(k))
			r := Rect{Series: s.Label, Index: i, Key: k, Datum: d, X: left, W: w}
			y0 := baseline(y)
			if sum != 0 {
				y0 = cy.MapFloat(sum)
			}
			sum += v
			rects = append(rects, span(r, y0, cy.MapFloat(sum)))
		}
	}
	return rects
}

// GroupedBars returns one rect per datum and key of s. Within each x
// slot, the keys are laid out side by side on an inner band scale
// with the given inner padding.
func GroupedBars(s *series.Series, x, y scale.Scale, paddingInner float64) []Rect {
	cy, ok := y.(*scale.Continuous)
	if !ok {
		Warning.Printf("series %q: grouped bars need a continuous y scale", s.Label)
		return nil
	}
	keys := make([]interface{}, len(s.Keys))
	for i, k := range s.Keys {
		keys[i] = k
	}
	var rects []Rect
	for i, d := range s.Data {
		left, w, ok := xSlot(x, d.X, len(s.Data))
		if !ok {
			Warning.Printf("series %q: cannot place x value %v", s.Label, d.X)
			continue
		}
		inner := scale.NewBand(keys, scale.Range{Lo: left, Hi: left + w}, paddingInner, 0)
		for _, k := range s.Keys {
			v, ok := series.ToFloat(d.Field(k))
			if !ok {
				continue
			}
			kx, _ := inner.Map(k)
			r := Rect{Series: s.Label, Index: i, Key: k, Datum: d, X: kx, W: inner.Bandwidth()}
			rects = append(rects, span(r, baseline(y), cy.MapFloat(v)))
		}
	}
	return rects
}
