// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"fmt"
	"math"
)

// Type is the type of an axis. The zero Type is invalid.
type Type int

const (
	// Linear is a continuous numeric axis.
	Linear Type = 1 + iota

	// Time is a continuous temporal axis. Time values are
	// represented as fractional Unix seconds.
	Time

	// Band is a categorical axis with one equal-width band per
	// category.
	Band
)

var typeNames = map[Type]string{
	Linear: "linear",
	Time:   "time",
	Band:   "band",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Continuous reports whether t is Linear or Time.
func (t Type) Continuous() bool {
	return t == Linear || t == Time
}

// Valid reports whether t is a known axis type.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseType returns the Type named s.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, &ConfigError{"type", fmt.Sprintf("unknown axis type %q", s)}
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &ConfigError{"type", fmt.Sprintf("unknown axis type %d", int(t))}
	}
	return []byte(typeNames[t]), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	nt, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = nt
	return nil
}

// Axis specifies how the domain and scale of one axis are derived.
// It is configuration, not state.
type Axis struct {
	Type Type `json:"type" yaml:"type" toml:"type"`

	// Domain, if non-empty, overrides domain inference. For
	// continuous axes it must be [min, max]. For band axes it is
	// the ordered list of categories.
	Domain []interface{} `json:"domain,omitempty" yaml:"domain,omitempty" toml:"domain,omitempty"`

	// IncludeZero extends a continuous domain to include 0.
	IncludeZero bool `json:"includeZero,omitempty" yaml:"includeZero,omitempty" toml:"includeZero,omitempty"`

	// Nice rounds a continuous domain outward to round values.
	Nice bool `json:"nice,omitempty" yaml:"nice,omitempty" toml:"nice,omitempty"`

	// PaddingInner is the fraction of each band step left empty
	// between bands. It must be in [0, 1].
	PaddingInner float64 `json:"paddingInner,omitempty" yaml:"paddingInner,omitempty" toml:"paddingInner,omitempty"`

	// PaddingOuter is the padding before the first and after the
	// last band, in multiples of the band step. It must be >= 0.
	PaddingOuter float64 `json:"paddingOuter,omitempty" yaml:"paddingOuter,omitempty" toml:"paddingOuter,omitempty"`
}

// Validate checks a for configuration errors. It returns a
// *ConfigError describing the first problem found.
func (a Axis) Validate() error {
	if !a.Type.Valid() {
		return &ConfigError{"type", fmt.Sprintf("unknown axis type %d", int(a.Type))}
	}
	if math.IsNaN(a.PaddingInner) || a.PaddingInner < 0 || a.PaddingInner > 1 {
		return &ConfigError{"paddingInner", fmt.Sprintf("%g not in [0, 1]", a.PaddingInner)}
	}
	if math.IsNaN(a.PaddingOuter) || a.PaddingOuter < 0 {
		return &ConfigError{"paddingOuter", fmt.Sprintf("%g is negative", a.PaddingOuter)}
	}
	if len(a.Domain) > 0 {
		if _, err := a.override(); err != nil {
			return err
		}
	}
	return nil
}

// override returns the explicit domain override of a.
func (a Axis) override() (Domain, error) {
	if a.Type == Band {
		return newBand(a.Domain)
	}
	if len(a.Domain) != 2 {
		return Domain{}, &ConfigError{"domain", fmt.Sprintf("continuous domain needs 2 values, got %d", len(a.Domain))}
	}
	var bounds [2]float64
	for i, v := range a.Domain {
		x, ok := toFloat(a.Type, v)
		if !ok || math.IsNaN(x) || math.IsInf(x, 0) {
			return Domain{}, &ConfigError{"domain", fmt.Sprintf("bad %s domain bound %v", a.Type, v)}
		}
		bounds[i] = x
	}
	if bounds[0] > bounds[1] {
		return Domain{}, &ConfigError{"domain", fmt.Sprintf("domain min %v > max %v", a.Domain[0], a.Domain[1])}
	}
	return Domain{Type: a.Type, Min: bounds[0], Max: bounds[1]}, nil
}

// ConfigError reports an invalid axis configuration.
type ConfigError struct {
	// Field is the configuration field at fault.
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("axis %s: %s", e.Field, e.Msg)
}
