// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nearest

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Cell is the region of the plane for which Record is the nearest
// record.
type Cell struct {
	Record Record

	// Polygon is the cell boundary in counter-clockwise order
	// (in a y-up frame). It is empty if the record owns no area,
	// which happens when a lower-ID record has the same position.
	Polygon []Point
}

// Cells returns the Voronoi cell of every record in idx, clipped to
// bounds, in ID order. It is intended for debug overlays and hit map
// rendering and takes O(n²) time.
func (idx *Index) Cells(bounds Rect) []Cell {
	recs := idx.Records()
	cells := make([]Cell, 0, len(recs))
	box := []Point{
		{bounds.X0, bounds.Y0},
		{bounds.X1, bounds.Y0},
		{bounds.X1, bounds.Y1},
		{bounds.X0, bounds.Y1},
	}
	for _, r := range recs {
		poly := append([]Point(nil), box...)
		for _, o := range recs {
			if o.ID == r.ID {
				continue
			}
			if o.X == r.X && o.Y == r.Y {
				if o.ID < r.ID {
					poly = nil
					break
				}
				continue
			}
			poly = clip(poly, r, o)
			if len(poly) == 0 {
				break
			}
		}
		cells = append(cells, Cell{r, poly})
	}
	return cells
}

// clip clips poly to the half-plane of points at least as close to r
// as to o.
func clip(poly []Point, r, o Record) []Point {
	// p is inside if (p - m)·n <= 0, where m is the midpoint of
	// r and o, and n = o - r.
	nx, ny := o.X-r.X, o.Y-r.Y
	mx, my := (o.X+r.X)/2, (o.Y+r.Y)/2
	side := func(p Point) float64 {
		return (p.X-mx)*nx + (p.Y-my)*ny
	}

	var out []Point
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		sc, sp := side(cur), side(prev)
		if sc <= 0 {
			if sp > 0 && sc < 0 {
				out = append(out, intersect(prev, cur, sp, sc))
			}
			out = append(out, cur)
		} else if sp < 0 {
			out = append(out, intersect(prev, cur, sp, sc))
		}
	}
	return out
}

func intersect(a, b Point, sa, sb float64) Point {
	t := sa / (sa - sb)
	return Point{a.X + t*(b.X-a.X), a.Y + t*(b.Y-a.Y)}
}

// Area returns the area of polygon poly.
func Area(poly []Point) float64 {
	var a float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	if a < 0 {
		a = -a
	}
	return a / 2
}
