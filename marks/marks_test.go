// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marks

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-xychart/domain"
	"github.com/aclements/go-xychart/scale"
	"github.com/aclements/go-xychart/series"
)

func band(cats ...interface{}) *scale.Band {
	return scale.NewBand(cats, scale.Range{Lo: 0, Hi: 100}, 0, 0)
}

func linearY(max float64) *scale.Continuous {
	return scale.NewContinuous(domain.Domain{Type: domain.Linear, Min: 0, Max: max}, scale.Range{Lo: 100, Hi: 0})
}

func TestBarsBand(t *testing.T) {
	s := &series.Series{Label: "b", Kind: series.Bar, Data: []series.Datum{
		{X: "a", Y: 10},
		{X: "b", Y: 5},
		{X: "zz", Y: 5},
	}}
	rects := Bars(s, band("a", "b"), linearY(10))
	require.Len(t, rects, 2)
	assert.Equal(t, Rect{Series: "b", Index: 0, Datum: s.Data[0], X: 0, Y: 0, W: 50, H: 100}, rects[0])
	assert.Equal(t, 50.0, rects[1].X)
	assert.Equal(t, 50.0, rects[1].Y)
	assert.Equal(t, 50.0, rects[1].H)
}

func TestBarsContinuous(t *testing.T) {
	s := &series.Series{Label: "b", Kind: series.Bar, Data: []series.Datum{
		{X: 0, Y: 10},
		{X: 10, Y: 10},
	}}
	x := scale.NewContinuous(domain.Domain{Type: domain.Linear, Min: 0, Max: 10}, scale.Range{Lo: 0, Hi: 200})
	rects := Bars(s, x, linearY(10))
	require.Len(t, rects, 2)
	assert.Equal(t, 80.0, rects[0].W)
	assert.Equal(t, -40.0, rects[0].X)
	assert.Equal(t, 160.0, rects[1].X)
}

func TestStackedBars(t *testing.T) {
	s := &series.Series{Label: "s", Kind: series.StackedBar, Keys: []string{"lo", "hi"}, Data: []series.Datum{
		{X: "a", Fields: map[string]interface{}{"lo": 2, "hi": 3}},
		{X: "b", Fields: map[string]interface{}{"hi": 10}},
	}}
	rects := StackedBars(s, band("a", "b"), linearY(10))
	require.Len(t, rects, 4)

	assert.Equal(t, "lo", rects[0].Key)
	assert.Equal(t, 80.0, rects[0].Y)
	assert.Equal(t, 20.0, rects[0].H)
	assert.Equal(t, "hi", rects[1].Key)
	assert.Equal(t, 50.0, rects[1].Y)
	assert.Equal(t, 30.0, rects[1].H)
	// Segments of the same datum touch.
	assert.Equal(t, rects[0].Y, rects[1].Y+rects[1].H)

	assert.Equal(t, 0.0, rects[2].H)
	assert.Equal(t, 0.0, rects[3].Y)
	assert.Equal(t, 100.0, rects[3].H)

	assert.Nil(t, StackedBars(s, band("a", "b"), band("x")))
}

func TestGroupedBars(t *testing.T) {
	s := &series.Series{Label: "g", Kind: series.GroupedBar, Keys: []string{"k1", "k2"}, Data: []series.Datum{
		{X: "a", Fields: map[string]interface{}{"k1": 5, "k2": 10}},
		{X: "b", Fields: map[string]interface{}{"k2": 2.5}},
	}}
	rects := GroupedBars(s, band("a", "b"), linearY(10), 0)
	require.Len(t, rects, 3)
	assert.Equal(t, []float64{0, 25, 75}, []float64{rects[0].X, rects[1].X, rects[2].X})
	for _, r := range rects {
		assert.Equal(t, 25.0, r.W)
	}
	assert.Equal(t, 50.0, rects[0].H)
	assert.Equal(t, 100.0, rects[1].H)
	assert.Equal(t, "k2", rects[2].Key)
	assert.Equal(t, 25.0, rects[2].H)
}

func TestViolins(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	samples := make([]float64, 200)
	for i := range samples {
		samples[i] = 5 + r.NormFloat64()
	}
	s := &series.Series{Label: "v", Kind: series.Violin, Data: []series.Datum{
		{X: "a", Samples: samples},
		{X: "b"},
	}}
	x := scale.NewBand([]interface{}{"a", "b"}, scale.Range{Lo: 0, Hi: 200}, 0, 0)
	y := scale.NewContinuous(domain.Domain{Type: domain.Linear, Min: 0, Max: 10}, scale.Range{Lo: 100, Hi: 0})

	vs := Violins(s, x, y, ViolinOptions{WidthRatio: 0.5, Bins: 20})
	require.Len(t, vs, 2)
	v := vs[0]
	// Band is 100 wide; the box is capped at 50 and centered,
	// and the violin fills half of it.
	assert.Equal(t, 25.0, v.Width)
	assert.Equal(t, 25+12.5, v.Offset)
	assert.Equal(t, 100+25+12.5, vs[1].Offset)

	require.Len(t, v.Bins, 20)
	maxHalf := 0.0
	for _, b := range v.Bins {
		assert.True(t, b.Half >= 0 && b.Half <= v.Width/2)
		maxHalf = math.Max(maxHalf, b.Half)
	}
	assert.Equal(t, v.Width/2, maxHalf)
	assert.Empty(t, vs[1].Bins)

	// Needs a band offset scale.
	assert.Nil(t, Violins(s, y, y, ViolinOptions{}))

	h := Violins(&series.Series{Label: "h", Data: []series.Datum{{Y: "a", Samples: samples}}},
		y, scale.NewBand([]interface{}{"a"}, scale.Range{Lo: 0, Hi: 40}, 0, 0), ViolinOptions{Horizontal: true})
	require.Len(t, h, 1)
	assert.Equal(t, 40.0, h[0].Width)
	assert.Equal(t, 0.0, h[0].Offset)
}

func TestPack(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 50; iter++ {
		circles := make([]Circle, 1+r.Intn(60))
		for i := range circles {
			circles[i] = Circle{X: r.Float64() * 100, R: 1 + r.Float64()*4}
		}
		packed := Pack(circles, 50)
		require.Len(t, packed, len(circles))
		for i, c := range packed {
			assert.Equal(t, circles[i].X, c.X)
			assert.Equal(t, circles[i].R, c.R)
			for _, o := range packed[i+1:] {
				d := math.Hypot(c.X-o.X, c.Y-o.Y)
				assert.True(t, d >= c.R+o.R-1e-6, "overlap %v %v", c, o)
			}
		}
	}
}

func TestPackCenter(t *testing.T) {
	packed := Pack([]Circle{{X: 0, R: 5}, {X: 100, R: 5}, {X: 0, R: 5}}, 20)
	assert.Equal(t, 20.0, packed[0].Y)
	assert.Equal(t, 20.0, packed[1].Y)
	assert.Equal(t, 10.0, math.Abs(packed[2].Y-20))
}
