// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-xychart/chart"
	"github.com/aclements/go-xychart/marks"
	"github.com/aclements/go-xychart/scale"
	"github.com/aclements/go-xychart/series"
)

// groupPadding is the inner padding between the bars of a group.
const groupPadding = 0.1

// report writes the domains, ticks, hit-testable points, and mark
// geometry of p to w.
func report(w io.Writer, p *chart.Pass, ticks int) error {
	for _, sec := range []struct {
		title string
		tab   *table.Table
	}{
		{"domains", domainTable(p)},
		{"ticks", tickTable(p, ticks)},
		{"points", pointTable(p)},
		{"marks", markTable(p)},
	} {
		fmt.Fprintf(w, "# %s\n", sec.title)
		if sec.tab.Len() == 0 {
			fmt.Fprintf(w, "(none)\n\n")
			continue
		}
		if err := table.Fprint(w, sec.tab); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

func domainTable(p *chart.Pass) *table.Table {
	return new(table.Builder).
		Add("axis", []string{"x", "y"}).
		Add("type", []string{p.XDomain.Type.String(), p.YDomain.Type.String()}).
		Add("inferred", []string{p.XDomain.String(), p.YDomain.String()}).
		Add("scale", []string{fmt.Sprint(p.X), fmt.Sprint(p.Y)}).
		Done()
}

func tickTable(p *chart.Pass, max int) *table.Table {
	var axes, labels []string
	var pos []float64
	for _, ax := range []struct {
		name string
		s    scale.Scale
	}{{"x", p.X}, {"y", p.Y}} {
		for _, t := range ax.s.Ticks(max) {
			axes = append(axes, ax.name)
			labels = append(labels, t.Label)
			pos = append(pos, t.Pos)
		}
	}
	return new(table.Builder).
		Add("axis", axes).
		Add("label", labels).
		Add("pos", pos).
		Done()
}

func pointTable(p *chart.Pass) *table.Table {
	var (
		labels []string
		index  []int
		xs, ys []float64
	)
	for _, r := range p.Index.Records() {
		labels = append(labels, r.Series)
		index = append(index, r.Index)
		xs = append(xs, r.X)
		ys = append(ys, r.Y)
	}
	return new(table.Builder).
		Add("series", labels).
		Add("index", index).
		Add("x", xs).
		Add("y", ys).
		Done()
}

// markTable lays out the bar and violin marks of p.
func markTable(p *chart.Pass) *table.Table {
	var rects []marks.Rect
	for i := range p.Series {
		s := &p.Series[i]
		switch s.Kind {
		case series.Bar:
			rects = append(rects, marks.Bars(s, p.X, p.Y)...)
		case series.StackedBar:
			rects = append(rects, marks.StackedBars(s, p.X, p.Y)...)
		case series.GroupedBar:
			rects = append(rects, marks.GroupedBars(s, p.X, p.Y, groupPadding)...)
		case series.Violin:
			for _, v := range marks.Violins(s, p.X, p.Y, marks.ViolinOptions{}) {
				rects = append(rects, violinRect(v))
			}
		}
	}

	var (
		labels, keys []string
		index        []int
		xs, ys       []float64
		ws, hs       []float64
	)
	for _, r := range rects {
		labels = append(labels, r.Series)
		index = append(index, r.Index)
		keys = append(keys, r.Key)
		xs, ys = append(xs, r.X), append(ys, r.Y)
		ws, hs = append(ws, r.W), append(hs, r.H)
	}
	return new(table.Builder).
		Add("series", labels).
		Add("index", index).
		Add("key", keys).
		Add("x", xs).
		Add("y", ys).
		Add("w", ws).
		Add("h", hs).
		Done()
}

// violinRect returns the bounding box of a vertical violin.
func violinRect(v marks.Violin) marks.Rect {
	r := marks.Rect{Series: v.Series, Index: v.Index, Datum: v.Datum, X: v.Offset, W: v.Width}
	if len(v.Bins) == 0 {
		return r
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, b := range v.Bins {
		lo, hi = math.Min(lo, b.Pos), math.Max(hi, b.Pos)
	}
	r.Y, r.H = lo, hi-lo
	return r
}
