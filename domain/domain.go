// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package domain infers axis domains from the data of one or more
// series.
//
// Compute is deterministic and has no side effects other than
// reporting skipped values on Warning: the same series and Axis
// always produce the same Domain.
package domain

import (
	"fmt"
	"log"
	"math"
	"os"
	"reflect"
	"time"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-xychart/series"
)

// Warning is a logger for reporting conditions that don't prevent
// domain inference, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[domain] ", log.Lshortfile)

// niceTicks is the target number of intervals for Nice rounding.
const niceTicks = 10

// Domain is the extent of the data on one axis.
//
// A continuous Domain is the closed interval [Min, Max]. Time domains
// are in Unix seconds. An empty continuous Domain has Min and Max set
// to NaN. Min == Max is a degenerate, single-point Domain; package
// scale widens it when building a scale.
//
// A band Domain is the ordered list of distinct Categories.
type Domain struct {
	Type       Type
	Min, Max   float64
	Categories []interface{}
}

// Empty reports whether d covers no data.
func (d Domain) Empty() bool {
	if d.Type == Band {
		return len(d.Categories) == 0
	}
	return math.IsNaN(d.Min) || math.IsNaN(d.Max)
}

// Degenerate reports whether d is a continuous domain covering a
// single value.
func (d Domain) Degenerate() bool {
	return d.Type.Continuous() && !d.Empty() && d.Min == d.Max
}

// TimeBounds returns the bounds of a time domain as time.Time values.
func (d Domain) TimeBounds() (min, max time.Time) {
	return series.FromUnixSeconds(d.Min), series.FromUnixSeconds(d.Max)
}

// Index returns the position of category v in a band domain.
func (d Domain) Index(v interface{}) (int, bool) {
	for i, c := range d.Categories {
		if c == v {
			return i, true
		}
	}
	return 0, false
}

func (d Domain) String() string {
	switch {
	case d.Type == Band:
		return fmt.Sprintf("band %v", d.Categories)
	case d.Empty():
		return fmt.Sprintf("%s []", d.Type)
	case d.Type == Time:
		min, max := d.TimeBounds()
		return fmt.Sprintf("time [%s,%s]", min.Format(time.RFC3339), max.Format(time.RFC3339))
	}
	return fmt.Sprintf("%s [%g,%g]", d.Type, d.Min, d.Max)
}

// Empty returns the empty Domain of type t.
func Empty(t Type) Domain {
	if t == Band {
		return Domain{Type: Band}
	}
	return Domain{Type: t, Min: math.NaN(), Max: math.NaN()}
}

// Compute returns the domain of field f across all of ss, as
// configured by a.
//
// If a has an explicit Domain override, Compute returns it without
// looking at ss. Otherwise, a continuous domain is the [min, max] of
// all values, extended to 0 if a.IncludeZero and rounded outward if
// a.Nice; a band domain is the distinct values in first-seen order.
//
// Compute returns a *ConfigError if a is invalid.
func Compute(ss []series.Series, f series.Field, a Axis) (Domain, error) {
	if err := a.Validate(); err != nil {
		return Domain{}, err
	}
	if len(a.Domain) > 0 {
		return a.override()
	}

	if a.Type == Band {
		var all []interface{}
		for i := range ss {
			for _, v := range ss[i].Values(f) {
				if !hashable(v) {
					Warning.Printf("series %q: %s value %v (%T) cannot be a category", ss[i].Label, f, v, v)
					continue
				}
				all = append(all, v)
			}
		}
		if len(all) == 0 {
			return Empty(Band), nil
		}
		return Domain{Type: Band, Categories: slice.Nub(all).([]interface{})}, nil
	}

	d := Empty(a.Type)
	for i := range ss {
		d.expand(ss[i].Label, f, ss[i].Values(f))
	}
	if d.Empty() {
		return d, nil
	}
	if a.IncludeZero {
		d.Min, d.Max = math.Min(d.Min, 0), math.Max(d.Max, 0)
	}
	if a.Nice && d.Min < d.Max {
		d = d.nice()
	}
	return d, nil
}

// expand widens d to cover vals, skipping values that are not
// finite or not convertible to d's type.
func (d *Domain) expand(label string, f series.Field, vals []interface{}) {
	min, max := d.Min, d.Max
	for _, v := range vals {
		x, ok := toFloat(d.Type, v)
		if !ok {
			Warning.Printf("series %q: %s value %v (%T) is not a %s value", label, f, v, v, d.Type)
			continue
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if x < min || math.IsNaN(min) {
			min = x
		}
		if x > max || math.IsNaN(max) {
			max = x
		}
	}
	d.Min, d.Max = min, max
}

func (d Domain) nice() Domain {
	if d.Type == Time {
		d.Min, d.Max = niceTime(d.Min, d.Max, niceTicks)
		return d
	}
	ls := scale.Linear{Min: d.Min, Max: d.Max}
	ls.Nice(scale.TickOptions{Max: niceTicks})
	d.Min, d.Max = ls.Min, ls.Max
	return d
}

// ToFloat converts v to a position on a continuous axis of type t.
func ToFloat(t Type, v interface{}) (float64, bool) {
	return toFloat(t, v)
}

func toFloat(t Type, v interface{}) (float64, bool) {
	if t == Time {
		return series.ToTime(v)
	}
	return series.ToFloat(v)
}

func newBand(cats []interface{}) (Domain, error) {
	seen := make(map[interface{}]bool, len(cats))
	for _, c := range cats {
		if !hashable(c) {
			return Domain{}, &ConfigError{"domain", fmt.Sprintf("category %v (%T) is not comparable", c, c)}
		}
		if seen[c] {
			return Domain{}, &ConfigError{"domain", fmt.Sprintf("duplicate category %v", c)}
		}
		seen[c] = true
	}
	return Domain{Type: Band, Categories: append([]interface{}(nil), cats...)}, nil
}

func hashable(v interface{}) bool {
	return v != nil && reflect.TypeOf(v).Comparable()
}
