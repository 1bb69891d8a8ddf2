// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marks

import (
	"math"

	"github.com/aclements/go-xychart/kde"
	"github.com/aclements/go-xychart/scale"
	"github.com/aclements/go-xychart/series"
)

// MaxViolinWidth is the widest a violin box may be, in pixels.
const MaxViolinWidth = 50

// DefaultViolinBins is the number of density bins of a violin when
// ViolinOptions.Bins is 0.
const DefaultViolinBins = 50

type ViolinOptions struct {
	// Horizontal lays violins along a band y axis with densities
	// along x. Otherwise violins sit on a band x axis.
	Horizontal bool

	// WidthRatio is the fraction of the box width the violin
	// fills. 0 means 1.
	WidthRatio float64

	Bins int
}

// Violin is the geometry of one violin.
type Violin struct {
	Series string
	Index  int
	Datum  series.Datum

	// Offset is the left edge (top edge, if horizontal) of the
	// violin and Width its extent across the band.
	Offset, Width float64

	// Bins is the outline. Each bin is centered on Offset+Width/2.
	Bins []ViolinBin
}

// ViolinBin is one step of a violin outline.
type ViolinBin struct {
	// Pos is the pixel coordinate of the bin along the value axis.
	Pos float64

	// Half is the half-width of the violin at Pos. The widest bin
	// has Half == Width/2.
	Half float64
}

// Violins lays out one violin per datum of s, estimating each
// datum's density from its Samples with a Gaussian kernel.
func Violins(s *series.Series, x, y scale.Scale, opts ViolinOptions) []Violin {
	offsetScale, valueScale := x, y
	if opts.Horizontal {
		offsetScale, valueScale = y, x
	}
	vs, ok := valueScale.(*scale.Continuous)
	if !ok {
		Warning.Printf("series %q: violins need a continuous value scale", s.Label)
		return nil
	}
	ratio := opts.WidthRatio
	if ratio == 0 {
		ratio = 1
	}
	nbins := opts.Bins
	if nbins <= 0 {
		nbins = DefaultViolinBins
	}

	boxWidth := Bandwidth(offsetScale)
	if boxWidth == 0 {
		Warning.Printf("series %q: violins need a band offset scale", s.Label)
		return nil
	}
	width := math.Min(MaxViolinWidth, boxWidth)

	var out []Violin
	for i, d := range s.Data {
		ov := d.X
		if opts.Horizontal {
			ov = d.Y
		}
		px, ok := offsetScale.Map(ov)
		if !ok {
			Warning.Printf("series %q: cannot place %v", s.Label, ov)
			continue
		}
		v := Violin{
			Series: s.Label,
			Index:  i,
			Datum:  d,
			Offset: px + (boxWidth-width)/2 + (1-ratio)/2*width,
			Width:  width * ratio,
		}
		v.Bins = violinBins(d.Samples, nbins, vs, v.Width/2)
		out = append(out, v)
	}
	return out
}

func violinBins(samples []float64, n int, vs *scale.Continuous, half float64) []ViolinBin {
	bins := kde.Bins(samples, n, 0)
	if bins == nil {
		return nil
	}
	pts := kde.Estimator(kde.Gaussian(kde.Scott(samples)), bins)(samples)
	max := 0.0
	for _, p := range pts {
		max = math.Max(max, p.Value)
	}
	out := make([]ViolinBin, len(pts))
	for i, p := range pts {
		h := 0.0
		if max > 0 {
			h = p.Value / max * half
		}
		out[i] = ViolinBin{vs.MapFloat(p.Bin), h}
	}
	return out
}
