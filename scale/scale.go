// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps domain values to pixel coordinates.
//
// A Scale is an immutable value. When the domain or the pixel range
// changes, build a new Scale rather than modifying the old one.
package scale

import (
	"fmt"

	"github.com/aclements/go-xychart/domain"
)

// Range is a pixel extent. Hi may be less than Lo, which flips the
// axis (as is usual for y).
type Range struct {
	Lo, Hi float64
}

// Width returns the signed width of r.
func (r Range) Width() float64 {
	return r.Hi - r.Lo
}

// Map maps t in [0, 1] to r.
func (r Range) Map(t float64) float64 {
	return r.Lo + t*(r.Hi-r.Lo)
}

// Unmap is the inverse of Map. It returns 0 for an empty range.
func (r Range) Unmap(px float64) float64 {
	if r.Hi == r.Lo {
		return 0
	}
	return (px - r.Lo) / (r.Hi - r.Lo)
}

func (r Range) String() string {
	return fmt.Sprintf("[%g,%g]", r.Lo, r.Hi)
}

// Scale maps values of a domain to pixel coordinates.
type Scale interface {
	Type() domain.Type

	// Domain returns the domain this scale was built from. For
	// continuous scales, this is the widened domain actually
	// used for mapping.
	Domain() domain.Domain

	Range() Range

	// Map maps a domain value to a pixel coordinate. For band
	// scales, this is the start of the value's band. It returns
	// false if v cannot be mapped.
	Map(v interface{}) (float64, bool)

	// Ticks returns at most max ticks for an axis along this
	// scale. It returns nil if max <= 0.
	Ticks(max int) []Tick
}

// Tick is an axis tick mark.
type Tick struct {
	// Value is the tick's domain value: a float64 for linear
	// scales, a time.Time for time scales, or a category.
	Value interface{}

	// Pos is the tick's pixel coordinate. For band scales, it is
	// the center of the band.
	Pos float64

	Label string
}

// Build returns the scale for domain d over the pixel range r,
// configured by a. It returns a *domain.ConfigError if a is invalid
// or does not match d's type.
func Build(d domain.Domain, r Range, a domain.Axis) (Scale, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if d.Type != a.Type {
		return nil, &domain.ConfigError{Field: "type", Msg: fmt.Sprintf("%s domain for %s axis", d.Type, a.Type)}
	}
	if a.Type == domain.Band {
		return NewBand(d.Categories, r, a.PaddingInner, a.PaddingOuter), nil
	}
	return NewContinuous(d, r), nil
}
