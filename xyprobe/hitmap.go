// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/aclements/go-gg/palette"
	"golang.org/x/image/draw"

	"github.com/aclements/go-xychart/chart"
)

// hitmap renders which point the pointer would hover at each pixel of
// p's plot area. The index is sampled once per cell×cell block and
// scaled up. Each point's own pixel is marked in black.
func hitmap(p *chart.Pass, cell int) (*image.RGBA, error) {
	w, h := int(math.Ceil(p.Bounds.Width())), int(math.Ceil(p.Bounds.Height()))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("empty plot area %gx%g", p.Bounds.Width(), p.Bounds.Height())
	}
	if cell < 1 {
		cell = 1
	}

	sw, sh := (w+cell-1)/cell, (h+cell-1)/cell
	small := image.NewRGBA(image.Rect(0, 0, sw, sh))
	scale := math.Max(1, float64(len(p.Points)-1))
	for y := 0; y < sh; y++ {
		py := (float64(y) + 0.5) * float64(cell)
		for x := 0; x < sw; x++ {
			px := (float64(x) + 0.5) * float64(cell)
			r, ok := p.Index.Nearest(px, py)
			if !ok {
				continue
			}
			small.Set(x, y, palette.Viridis.Map(float64(r.ID)/scale))
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), small, small.Bounds(), draw.Src, nil)
	for _, r := range p.Index.Records() {
		dst.Set(int(r.X), int(r.Y), color.Black)
	}
	return dst, nil
}

func writeHitmap(w io.Writer, p *chart.Pass, cell int) error {
	img, err := hitmap(p, cell)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
