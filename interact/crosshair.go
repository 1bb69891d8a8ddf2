// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import "github.com/aclements/go-xychart/nearest"

// Segment is a line segment in chart-local pixels.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// CrossHair computes the guide lines drawn through a hovered point.
//
// By default, the horizontal line runs from the left edge of the
// chart to the point and the vertical line runs from the point to the
// bottom edge.
type CrossHair struct {
	HideHorizontal bool
	HideVertical   bool

	// FullWidth extends the horizontal line across the whole
	// chart. FullHeight does the same for the vertical line.
	FullWidth  bool
	FullHeight bool
}

// Lines returns the cross-hair segments for ev within bounds. It
// returns nil for events other than Hover.
func (c CrossHair) Lines(ev Event, bounds nearest.Rect) []Segment {
	if ev.Kind != Hover {
		return nil
	}
	x, y := ev.Record.X, ev.Record.Y
	var segs []Segment
	if !c.HideHorizontal {
		x1 := x
		if c.FullWidth {
			x1 = bounds.X1
		}
		segs = append(segs, Segment{bounds.X0, y, x1, y})
	}
	if !c.HideVertical {
		y0 := y
		if c.FullHeight {
			y0 = bounds.Y0
		}
		segs = append(segs, Segment{x, y0, x, bounds.Y1})
	}
	return segs
}
