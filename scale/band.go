// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"

	"github.com/aclements/go-xychart/domain"
)

// Band is a categorical scale. It divides its range into one step per
// category. Each step holds a band of width Bandwidth, separated by
// paddingInner*Step, with paddingOuter*Step before the first band and
// after the last.
//
// The bands exactly fill the range:
//
//	n*Bandwidth + (n-1)*paddingInner*Step + 2*paddingOuter*Step == |range|
type Band struct {
	cats  []interface{}
	index map[interface{}]int
	r     Range

	paddingInner, paddingOuter float64

	start, step, bandwidth float64
	reverse                bool
}

// NewBand returns a band scale for cats over r. cats must be distinct
// and comparable.
func NewBand(cats []interface{}, r Range, paddingInner, paddingOuter float64) *Band {
	b := &Band{
		cats:         cats,
		index:        make(map[interface{}]int, len(cats)),
		r:            r,
		paddingInner: paddingInner,
		paddingOuter: paddingOuter,
	}
	for i, c := range cats {
		b.index[c] = i
	}

	lo, hi := r.Lo, r.Hi
	if hi < lo {
		lo, hi = hi, lo
		b.reverse = true
	}
	n := float64(len(cats))
	steps := n - paddingInner + 2*paddingOuter
	if steps <= 0 {
		steps = 1
	}
	b.step = (hi - lo) / steps
	b.bandwidth = b.step * (1 - paddingInner)
	b.start = lo + b.step*paddingOuter
	if len(cats) == 0 {
		b.bandwidth = 0
	}
	return b
}

func (b *Band) Type() domain.Type { return domain.Band }

func (b *Band) Domain() domain.Domain {
	return domain.Domain{Type: domain.Band, Categories: b.cats}
}

func (b *Band) Range() Range { return b.r }

func (b *Band) String() string {
	return fmt.Sprintf("band %v => %s", b.cats, b.r)
}

// Bandwidth returns the pixel width of each band.
func (b *Band) Bandwidth() float64 { return b.bandwidth }

// Step returns the pixel distance between the starts of adjacent
// bands.
func (b *Band) Step() float64 { return b.step }

// slot returns the ascending pixel slot of category index i.
func (b *Band) slot(i int) int {
	if b.reverse {
		return len(b.cats) - 1 - i
	}
	return i
}

// Map returns the lower pixel edge of v's band.
func (b *Band) Map(v interface{}) (float64, bool) {
	i, ok := b.lookup(v)
	if !ok {
		return 0, false
	}
	return b.start + float64(b.slot(i))*b.step, true
}

// Center returns the pixel center of v's band.
func (b *Band) Center(v interface{}) (float64, bool) {
	px, ok := b.Map(v)
	return px + b.bandwidth/2, ok
}

func (b *Band) lookup(v interface{}) (i int, ok bool) {
	defer func() {
		// Unhashable values panic on map lookup.
		if recover() != nil {
			i, ok = 0, false
		}
	}()
	i, ok = b.index[v]
	return
}

// Invert returns the category whose step contains pixel px. Each
// step extends from the start of its band to the start of the next
// band. It returns false if px is outside all steps.
func (b *Band) Invert(px float64) (interface{}, bool) {
	if len(b.cats) == 0 || b.step == 0 {
		return nil, false
	}
	k := math.Floor((px - b.start) / b.step)
	if k < 0 || k >= float64(len(b.cats)) {
		return nil, false
	}
	// The last step ends at the end of its band.
	if int(k) == len(b.cats)-1 && px > b.start+k*b.step+b.bandwidth {
		return nil, false
	}
	return b.cats[b.slot(int(k))], true
}

// Ticks returns one tick per category, at the band centers. If there
// are more than max categories, every k'th category is returned.
func (b *Band) Ticks(max int) []Tick {
	if max <= 0 || len(b.cats) == 0 {
		return nil
	}
	every := (len(b.cats) + max - 1) / max
	var ticks []Tick
	for i := 0; i < len(b.cats); i += every {
		c := b.cats[i]
		pos, _ := b.Center(c)
		ticks = append(ticks, Tick{c, pos, fmt.Sprintf("%v", c)})
	}
	return ticks
}

var _ Scale = (*Band)(nil)
