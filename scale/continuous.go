// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"time"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-xychart/domain"
	"github.com/aclements/go-xychart/series"
)

// Degenerate domain fallbacks. An empty domain maps as [-1, 1]. A
// single-value domain v is widened to [v-LinearSpan, v+LinearSpan] on
// linear axes and [v-TimeSpan, v+TimeSpan] on time axes.
const (
	LinearSpan = 1
	TimeSpan   = 12 * time.Hour
)

// Continuous is a linear or time scale. It maps its domain
// affinely onto its range.
type Continuous struct {
	typ domain.Type
	ls  mscale.Linear
	r   Range
}

// NewContinuous returns a continuous scale from d to r. d must be a
// Linear or Time domain. Empty and degenerate domains are widened.
func NewContinuous(d domain.Domain, r Range) *Continuous {
	min, max := d.Min, d.Max
	switch {
	case d.Empty():
		min, max = -1, 1
	case min == max:
		span := float64(LinearSpan)
		if d.Type == domain.Time {
			span = TimeSpan.Seconds()
		}
		min, max = min-span, max+span
	}
	return &Continuous{d.Type, mscale.Linear{Min: min, Max: max}, r}
}

func (s *Continuous) Type() domain.Type { return s.typ }

func (s *Continuous) Domain() domain.Domain {
	return domain.Domain{Type: s.typ, Min: s.ls.Min, Max: s.ls.Max}
}

func (s *Continuous) Range() Range { return s.r }

func (s *Continuous) String() string {
	return fmt.Sprintf("%s [%g,%g] => %s", s.typ, s.ls.Min, s.ls.Max, s.r)
}

// Map maps a numeric value (linear) or a time value (time) to a pixel
// coordinate.
func (s *Continuous) Map(v interface{}) (float64, bool) {
	x, ok := domain.ToFloat(s.typ, v)
	if !ok {
		return 0, false
	}
	return s.MapFloat(x), true
}

// MapFloat maps x to a pixel coordinate. For time scales, x is in
// Unix seconds.
func (s *Continuous) MapFloat(x float64) float64 {
	return s.r.Map(s.ls.Map(x))
}

// MapTime maps t to a pixel coordinate.
func (s *Continuous) MapTime(t time.Time) float64 {
	return s.MapFloat(series.UnixSeconds(t))
}

// Invert maps a pixel coordinate back to a domain value. It is the
// inverse of MapFloat.
func (s *Continuous) Invert(px float64) float64 {
	return s.ls.Min + s.r.Unmap(px)*(s.ls.Max-s.ls.Min)
}

// InvertTime is like Invert, but returns a time.Time.
func (s *Continuous) InvertTime(px float64) time.Time {
	return series.FromUnixSeconds(s.Invert(px))
}

// Bandwidth returns 0. Continuous scales have no bands.
func (s *Continuous) Bandwidth() float64 { return 0 }

func (s *Continuous) Ticks(max int) []Tick {
	if max <= 0 {
		return nil
	}
	if s.typ == domain.Time {
		return s.timeTicks(max)
	}
	major, _ := s.ls.Ticks(mscale.TickOptions{Max: max})
	ticks := make([]Tick, 0, len(major))
	for _, x := range major {
		ticks = append(ticks, Tick{x, s.MapFloat(x), fmt.Sprintf("%.6g", x)})
	}
	return ticks
}

func (s *Continuous) timeTicks(max int) []Tick {
	min, maxT := s.ls.Min, s.ls.Max
	u := domain.ChooseTimeUnit(min, maxT, max)
	layout := timeLayout(u)
	var ticks []Tick
	end := series.FromUnixSeconds(maxT)
	for t := u.Ceil(series.FromUnixSeconds(min)); !t.After(end) && len(ticks) < max; t = u.Next(t) {
		ticks = append(ticks, Tick{t, s.MapTime(t), t.Format(layout)})
	}
	return ticks
}

// timeLayout returns a label layout with enough precision for u.
func timeLayout(u domain.TimeUnit) string {
	switch {
	case u.Months >= 12:
		return "2006"
	case u.Months > 0:
		return "Jan 2006"
	case u.D >= 24*time.Hour:
		return "Jan 2"
	case u.D >= time.Minute:
		return "15:04"
	}
	return "15:04:05"
}

var _ Scale = (*Continuous)(nil)
