// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marks

import (
	"math"
	"sort"
)

// Circle is a circle in pixels.
type Circle struct {
	X, Y, R float64
}

// Pack arranges circles in a swarm along a horizontal center line at
// pixel y = center. Each circle keeps its X and is moved vertically
// to the position closest to center where it overlaps no circle
// placed before it. Circles are placed in order of X, breaking ties
// by input order. It returns the packed circles in input order.
func Pack(circles []Circle, center float64) []Circle {
	out := make([]Circle, len(circles))
	order := make([]int, len(circles))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return circles[order[i]].X < circles[order[j]].X
	})

	placed := make([]Circle, 0, len(circles))
	for _, i := range order {
		c := circles[i]
		c.Y = bestY(c, center, placed)
		placed = append(placed, c)
		out[i] = c
	}
	return out
}

// bestY returns the y closest to center at which c overlaps nothing
// in placed.
func bestY(c Circle, center float64, placed []Circle) float64 {
	// Candidates are center and every position where c is
	// tangent to a nearby placed circle.
	cands := []float64{center}
	var near []Circle
	for _, p := range placed {
		dx, rr := c.X-p.X, c.R+p.R
		if math.Abs(dx) >= rr {
			continue
		}
		near = append(near, p)
		dy := math.Sqrt(rr*rr - dx*dx)
		cands = append(cands, p.Y-dy, p.Y+dy)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return math.Abs(cands[i]-center) < math.Abs(cands[j]-center)
	})
	for _, y := range cands {
		if !overlaps(Circle{c.X, y, c.R}, near) {
			return y
		}
	}
	// Unreachable: the topmost tangent candidate overlaps nothing.
	return center
}

// overlapSlop tolerates rounding in tangent positions.
const overlapSlop = 1e-9

func overlaps(c Circle, others []Circle) bool {
	for _, o := range others {
		dx, dy, rr := c.X-o.X, c.Y-o.Y, c.R+o.R
		if dx*dx+dy*dy < rr*rr-overlapSlop*rr {
			return true
		}
	}
	return false
}
