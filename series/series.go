// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series defines the data model shared by the chart geometry
// packages: data points, labeled series, and the values each kind of
// series contributes to an axis.
//
// Series and Datum values are owned by the caller. Nothing in this
// module mutates them once they are passed in.
package series

import (
	"fmt"
	"log"
	"os"
)

// Warning is a logger for reporting conditions that don't prevent
// the computation of a chart, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[series] ", log.Lshortfile)

// Datum is a single data point.
type Datum struct {
	// X is the x value. It may be any Go numeric type, a
	// time.Time, or any comparable category key.
	X interface{}

	// Y is the y value. It is typically numeric, but may be a
	// category key for horizontal band charts.
	Y interface{}

	// Size is the size (radius) of sized or packed marks. 0 means
	// unset, in which case the series Size attribute applies.
	Size float64

	// Fields holds additional named values. Interval series read
	// "x0" and "x1"; Area series read "y0" and "y1"; stacked and
	// grouped bar series read one field per key.
	Fields map[string]interface{}

	// Samples holds the raw observations of a Violin datum.
	Samples []float64

	// Style holds per-datum style overrides such as "fill",
	// "stroke", and "strokeWidth". These win over the series
	// attributes. See Resolve.
	Style map[string]interface{}
}

// Field returns d.Fields[name], or nil if it is not set.
func (d Datum) Field(name string) interface{} {
	if d.Fields == nil {
		return nil
	}
	return d.Fields[name]
}

// Kind is the kind of mark a series is drawn with. It determines
// which values a series contributes to each axis.
type Kind int

const (
	Line Kind = iota
	Point
	Bar
	Area
	Interval
	CirclePack
	StackedBar
	GroupedBar
	Violin
)

var kindNames = []string{
	Line:       "line",
	Point:      "point",
	Bar:        "bar",
	Area:       "area",
	Interval:   "interval",
	CirclePack: "circlepack",
	StackedBar: "stackedbar",
	GroupedBar: "groupedbar",
	Violin:     "violin",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown series kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown series kind %q", text)
}

// Marked reports whether each datum of a series of kind k is drawn
// as a single mark at an (x, y) position. Only those marks take part
// in nearest-point hit testing.
func (k Kind) Marked() bool {
	switch k {
	case Interval, GroupedBar, Violin:
		return false
	}
	return true
}

// Field names an axis.
type Field int

const (
	X Field = iota
	Y
)

func (f Field) String() string {
	if f == X {
		return "x"
	}
	return "y"
}

// Series is a named, ordered sequence of data points.
type Series struct {
	// Label identifies the series. It must be unique within a
	// chart and is used as the legend and tooltip key.
	Label string

	Kind Kind
	Data []Datum

	// Keys are the stack keys of a StackedBar series or the group
	// keys of a GroupedBar series. Each key names a numeric field
	// of every Datum.
	Keys []string

	// Style maps attribute names ("fill", "stroke",
	// "strokeWidth", "size", ...) to series-level attributes.
	Style map[string]Attr
}

// Values returns the values s contributes to the axis f, in data
// order. The values are not converted; see package domain.
func (s *Series) Values(f Field) []interface{} {
	var out []interface{}
	for _, d := range s.Data {
		out = s.appendValues(out, d, f)
	}
	return out
}

func (s *Series) appendValues(out []interface{}, d Datum, f Field) []interface{} {
	if f == X {
		if s.Kind == Interval {
			for _, name := range []string{"x0", "x1"} {
				if v := d.Field(name); v != nil {
					out = append(out, v)
				}
			}
			return out
		}
		return appendNonNil(out, d.X)
	}

	switch s.Kind {
	case Interval:
		return out

	case StackedBar:
		return append(out, s.StackTotal(d))

	case GroupedBar:
		for _, k := range s.Keys {
			if v, ok := ToFloat(d.Field(k)); ok {
				out = append(out, v)
			}
		}
		return out

	case Violin:
		for _, v := range d.Samples {
			out = append(out, v)
		}
		return out

	case Area:
		out = appendNonNil(out, d.Y)
		for _, name := range []string{"y0", "y1"} {
			out = appendNonNil(out, d.Field(name))
		}
		return out
	}
	return appendNonNil(out, d.Y)
}

func appendNonNil(out []interface{}, v interface{}) []interface{} {
	if v == nil {
		return out
	}
	return append(out, v)
}

// StackTotal returns the sum of d's values over s.Keys. Keys that are
// missing or not numeric count as 0.
func (s *Series) StackTotal(d Datum) float64 {
	total := 0.0
	for _, k := range s.Keys {
		if v, ok := ToFloat(d.Field(k)); ok {
			total += v
		}
	}
	return total
}

// CheckLabels reports duplicate or empty labels in ss on Warning. It
// returns false if any were found.
func CheckLabels(ss []Series) bool {
	ok := true
	seen := make(map[string]bool, len(ss))
	for i, s := range ss {
		if s.Label == "" {
			Warning.Printf("series %d has no label", i)
			ok = false
			continue
		}
		if seen[s.Label] {
			Warning.Printf("duplicate series label %q", s.Label)
			ok = false
		}
		seen[s.Label] = true
	}
	return ok
}
