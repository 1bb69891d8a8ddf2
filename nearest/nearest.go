// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nearest implements nearest-point hit testing over the
// screen positions of rendered marks.
//
// An Index is immutable once built. When any point moves, build a new
// Index and discard the old one.
package nearest

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/aclements/go-xychart/series"
)

// Warning is a logger for reporting conditions that don't prevent
// building an index, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[nearest] ", log.Lshortfile)

// Record is one rendered mark.
type Record struct {
	// ID is the position of this record in the slice passed to
	// Build. Ties in distance go to the lowest ID.
	ID int

	// Series is the label of the series that owns this mark.
	Series string

	// SeriesIndex is the index of that series in the chart, and
	// Index is the index of Datum within the series.
	SeriesIndex, Index int

	Datum series.Datum

	// X and Y are the mark's position in chart-local pixels.
	X, Y float64
}

func (r Record) String() string {
	return fmt.Sprintf("%s[%d] (%g,%g)", r.Series, r.Index, r.X, r.Y)
}

// Rect is an axis-aligned rectangle in pixels. It is closed: points
// on its edges are inside.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Contains reports whether (x, y) is within r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Index answers nearest-point queries. It is a 2-d tree stored
// implicitly in perm: the subtree over perm[lo:hi] at depth d is
// rooted at perm[(lo+hi)/2] and split on x if d is even and y if d is
// odd. Every point in the left half has a split coordinate <= the
// root's and every point in the right half has one >= the root's.
type Index struct {
	recs []Record
	perm []int
}

// Build returns an index over recs. It assigns each record's ID from
// its position in recs. Records with a non-finite position are
// skipped and reported on Warning.
//
// Build takes O(n log n) expected time.
func Build(recs []Record) *Index {
	idx := &Index{recs: make([]Record, 0, len(recs))}
	for i, r := range recs {
		r.ID = i
		if !finite(r.X) || !finite(r.Y) {
			Warning.Printf("skipping %s: position is not finite", r)
			continue
		}
		idx.recs = append(idx.recs, r)
	}
	idx.perm = make([]int, len(idx.recs))
	for i := range idx.perm {
		idx.perm[i] = i
	}
	idx.build(0, len(idx.perm), 0)
	return idx
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func (idx *Index) coord(i, axis int) float64 {
	if axis == 0 {
		return idx.recs[i].X
	}
	return idx.recs[i].Y
}

func (idx *Index) build(lo, hi, depth int) {
	if hi-lo <= 1 {
		return
	}
	mid := (lo + hi) / 2
	idx.selectNth(lo, hi, mid, depth%2)
	idx.build(lo, mid, depth+1)
	idx.build(mid+1, hi, depth+1)
}

// selectNth partially orders perm[lo:hi] on axis so perm[k] holds the
// element that would be there if perm[lo:hi] were sorted, with no
// greater element before it and no lesser element after it.
func (idx *Index) selectNth(lo, hi, k, axis int) {
	perm := idx.perm
	for hi-lo > 1 {
		p := idx.coord(perm[lo+(hi-lo)/2], axis)
		i, j := lo, hi-1
		for i <= j {
			for idx.coord(perm[i], axis) < p {
				i++
			}
			for idx.coord(perm[j], axis) > p {
				j--
			}
			if i <= j {
				perm[i], perm[j] = perm[j], perm[i]
				i++
				j--
			}
		}
		// perm[lo:j+1] <= p, perm[i:hi] >= p, and anything
		// between is == p.
		switch {
		case k <= j:
			hi = j + 1
		case k >= i:
			lo = i
		default:
			return
		}
	}
}

// Len returns the number of points in the index.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.recs)
}

// Records returns the indexed records in ID order. The caller must
// not modify the returned slice.
func (idx *Index) Records() []Record {
	if idx == nil {
		return nil
	}
	return idx.recs
}

// Nearest returns the record whose position is the Euclidean-nearest
// to (x, y), breaking ties by lowest ID. It returns false if the
// index is empty or (x, y) is NaN.
func (idx *Index) Nearest(x, y float64) (Record, bool) {
	if idx.Len() == 0 || math.IsNaN(x) || math.IsNaN(y) {
		return Record{}, false
	}
	s := search{idx: idx, q: [2]float64{x, y}, best: -1}
	s.visit(0, len(idx.perm), 0)
	return idx.recs[s.best], true
}

type search struct {
	idx   *Index
	q     [2]float64
	best  int
	bestD float64
}

func (s *search) visit(lo, hi, depth int) {
	if lo >= hi {
		return
	}
	mid := (lo + hi) / 2
	i := s.idx.perm[mid]
	r := &s.idx.recs[i]
	dx, dy := s.q[0]-r.X, s.q[1]-r.Y
	d := dx*dx + dy*dy
	if s.best < 0 || d < s.bestD || (d == s.bestD && r.ID < s.idx.recs[s.best].ID) {
		s.best, s.bestD = i, d
	}

	axis := depth % 2
	diff := s.q[axis] - s.idx.coord(i, axis)
	near, far := [2]int{lo, mid}, [2]int{mid + 1, hi}
	if diff >= 0 {
		near, far = far, near
	}
	s.visit(near[0], near[1], depth+1)
	// Points on the far side are at least |diff| away. Visit
	// them on equality too, since they may win the ID tie-break.
	if diff*diff <= s.bestD {
		s.visit(far[0], far[1], depth+1)
	}
}
