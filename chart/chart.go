// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart runs render passes: it infers the domains of a set of
// series, builds the x and y scales over the chart's plot area, lays
// out the hit-testable marks, and indexes them for hover.
//
// All coordinates produced by a render pass are relative to the
// top-left corner of the plot area (the chart minus its margins),
// with y increasing downward.
package chart

import (
	"fmt"
	"log"
	"math"
	"os"
	"sync"
	"sync/atomic"

	"github.com/aclements/go-xychart/domain"
	"github.com/aclements/go-xychart/interact"
	"github.com/aclements/go-xychart/marks"
	"github.com/aclements/go-xychart/nearest"
	"github.com/aclements/go-xychart/scale"
	"github.com/aclements/go-xychart/series"
)

// Warning is a logger for reporting conditions that don't prevent a
// render pass, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[chart] ", log.Lshortfile)

// DefaultPointSize is the radius of packed circles whose series sets
// no "size".
const DefaultPointSize = 4

// Margin is the space around the plot area, in pixels.
type Margin struct {
	Top    float64 `json:"top" yaml:"top" toml:"top"`
	Right  float64 `json:"right" yaml:"right" toml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom" toml:"bottom"`
	Left   float64 `json:"left" yaml:"left" toml:"left"`
}

// Config is the configuration of a chart.
type Config struct {
	Width  float64 `json:"width" yaml:"width" toml:"width"`
	Height float64 `json:"height" yaml:"height" toml:"height"`
	Margin Margin  `json:"margin" yaml:"margin" toml:"margin"`

	X domain.Axis `json:"x" yaml:"x" toml:"x"`
	Y domain.Axis `json:"y" yaml:"y" toml:"y"`
}

// Inner returns the size of the plot area. Margins that exceed the
// chart size leave an empty plot area.
func (c Config) Inner() (w, h float64) {
	w = math.Max(0, c.Width-c.Margin.Left-c.Margin.Right)
	h = math.Max(0, c.Height-c.Margin.Top-c.Margin.Bottom)
	return
}

// Pass is the result of one render pass. It is immutable.
type Pass struct {
	Config Config
	Series []series.Series

	XDomain, YDomain domain.Domain

	// X maps onto [0, w] and Y onto [h, 0], where w and h are the
	// plot area size.
	X, Y scale.Scale

	// Points are the hit-testable marks, in series then data
	// order. Index is built over them.
	Points []nearest.Record
	Index  *nearest.Index

	// Bounds is the plot area.
	Bounds nearest.Rect
}

// Render runs a render pass of ss under cfg. It returns a
// *domain.ConfigError if either axis is misconfigured.
func Render(cfg Config, ss []series.Series) (*Pass, error) {
	series.CheckLabels(ss)
	w, h := cfg.Inner()

	xd, err := domain.Compute(ss, series.X, cfg.X)
	if err != nil {
		return nil, fmt.Errorf("x %w", err)
	}
	yd, err := domain.Compute(ss, series.Y, cfg.Y)
	if err != nil {
		return nil, fmt.Errorf("y %w", err)
	}
	xs, err := scale.Build(xd, scale.Range{Lo: 0, Hi: w}, cfg.X)
	if err != nil {
		return nil, fmt.Errorf("x %w", err)
	}
	ys, err := scale.Build(yd, scale.Range{Lo: h, Hi: 0}, cfg.Y)
	if err != nil {
		return nil, fmt.Errorf("y %w", err)
	}

	p := &Pass{
		Config:  cfg,
		Series:  ss,
		XDomain: xd,
		YDomain: yd,
		X:       xs,
		Y:       ys,
		Bounds:  nearest.Rect{X0: 0, Y0: 0, X1: w, Y1: h},
	}
	for si := range ss {
		p.Points = append(p.Points, p.layout(si)...)
	}
	for i := range p.Points {
		p.Points[i].ID = i
	}
	p.Index = nearest.Build(p.Points)
	return p, nil
}

// layout returns the hit-testable marks of series si.
func (p *Pass) layout(si int) []nearest.Record {
	s := &p.Series[si]
	if !s.Kind.Marked() {
		return nil
	}
	var recs []nearest.Record
	var circles []marks.Circle
	for i, d := range s.Data {
		x, ok := center(p.X, d.X)
		if !ok {
			Warning.Printf("series %q: cannot place x value %v", s.Label, d.X)
			continue
		}
		r := nearest.Record{Series: s.Label, SeriesIndex: si, Index: i, Datum: d, X: x}
		if s.Kind == series.CirclePack {
			size := series.ResolveFloat(d, i, "size", s.Attr("size"), DefaultPointSize)
			circles = append(circles, marks.Circle{X: x, R: size})
			recs = append(recs, r)
			continue
		}
		var yv interface{} = d.Y
		if s.Kind == series.StackedBar {
			yv = s.StackTotal(d)
		}
		y, ok := center(p.Y, yv)
		if !ok {
			Warning.Printf("series %q: cannot place y value %v", s.Label, yv)
			continue
		}
		r.Y = y
		recs = append(recs, r)
	}
	if circles != nil {
		packed := marks.Pack(circles, p.Bounds.Height()/2)
		for i := range recs {
			recs[i].Y = packed[i].Y
		}
	}
	return recs
}

// center maps v to a pixel coordinate, using the band center on band
// scales.
func center(s scale.Scale, v interface{}) (float64, bool) {
	px, ok := s.Map(v)
	return px + marks.Bandwidth(s)/2, ok
}

// Chart holds the current render pass of a chart and drives hover
// interaction over it. A Chart is safe for concurrent use. Readers of
// Pass always see a complete pass.
type Chart struct {
	pass atomic.Value // *Pass

	mu    sync.Mutex
	coord *interact.Coordinator
}

// New returns a chart with no render pass. Hover events are delivered
// to h, which may be nil.
func New(h interact.Handler) *Chart {
	return &Chart{coord: interact.New(h)}
}

// Update runs a render pass and makes it current. On error, the
// current pass is left in place.
func (c *Chart) Update(cfg Config, ss []series.Series) error {
	p, err := Render(cfg, ss)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pass.Store(p)
	c.coord.SetIndex(p.Index, p.Bounds)
	return nil
}

// Pass returns the current render pass, or nil if there is none.
func (c *Chart) Pass() *Pass {
	p, _ := c.pass.Load().(*Pass)
	return p
}

// PointerMove handles a pointer move to (x, y) in plot-area pixels.
func (c *Chart) PointerMove(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.coord.Move(x, y)
}

// PointerLeave handles the pointer leaving the chart.
func (c *Chart) PointerLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.coord.Leave()
}

// Hovered returns the record currently under the pointer, if any.
func (c *Chart) Hovered() (nearest.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.coord.Current()
}
