// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-xychart/series"
)

func line(label string, pts ...[2]interface{}) series.Series {
	s := series.Series{Label: label, Kind: series.Line}
	for _, p := range pts {
		s.Data = append(s.Data, series.Datum{X: p[0], Y: p[1]})
	}
	return s
}

func TestComputeLinear(t *testing.T) {
	ss := []series.Series{
		line("a", [2]interface{}{0, 0}, [2]interface{}{10, 100}),
	}
	x, err := Compute(ss, series.X, Axis{Type: Linear})
	require.NoError(t, err)
	assert.Equal(t, Domain{Type: Linear, Min: 0, Max: 10}, x)

	y, err := Compute(ss, series.Y, Axis{Type: Linear})
	require.NoError(t, err)
	assert.Equal(t, Domain{Type: Linear, Min: 0, Max: 100}, y)
}

func TestComputeMerge(t *testing.T) {
	ss := []series.Series{
		line("a", [2]interface{}{2, 5.5}, [2]interface{}{3, 7}),
		line("b", [2]interface{}{-4, 6}, [2]interface{}{1, math.NaN()}),
	}
	y, err := Compute(ss, series.Y, Axis{Type: Linear})
	require.NoError(t, err)
	assert.Equal(t, 5.5, y.Min)
	assert.Equal(t, 7.0, y.Max)

	y, err = Compute(ss, series.Y, Axis{Type: Linear, IncludeZero: true})
	require.NoError(t, err)
	assert.Equal(t, 0.0, y.Min)
	assert.Equal(t, 7.0, y.Max)

	x, err := Compute(ss, series.X, Axis{Type: Linear})
	require.NoError(t, err)
	assert.Equal(t, -4.0, x.Min)
	assert.Equal(t, 3.0, x.Max)
}

func TestComputeNice(t *testing.T) {
	ss := []series.Series{line("a", [2]interface{}{0.13, 1}, [2]interface{}{9.7, 2})}
	x, err := Compute(ss, series.X, Axis{Type: Linear, Nice: true})
	require.NoError(t, err)
	assert.LessOrEqual(t, x.Min, 0.13)
	assert.GreaterOrEqual(t, x.Max, 9.7)
	assert.Equal(t, 0.0, x.Min)
	assert.Equal(t, 10.0, x.Max)
}

func TestComputeTimeNice(t *testing.T) {
	day := func(d, h int) time.Time { return time.Date(2017, 3, d, h, 0, 0, 0, time.UTC) }
	ss := []series.Series{line("a",
		[2]interface{}{day(2, 5), 1},
		[2]interface{}{day(8, 19), 2},
	)}

	x, err := Compute(ss, series.X, Axis{Type: Time})
	require.NoError(t, err)
	min, max := x.TimeBounds()
	assert.True(t, min.Equal(day(2, 5)))
	assert.True(t, max.Equal(day(8, 19)))

	x, err = Compute(ss, series.X, Axis{Type: Time, Nice: true})
	require.NoError(t, err)
	min, max = x.TimeBounds()
	assert.True(t, min.Equal(day(2, 0)), "min %v", min)
	assert.True(t, max.Equal(day(9, 0)), "max %v", max)
}

func TestComputeBand(t *testing.T) {
	ss := []series.Series{
		line("a", [2]interface{}{"c", 1}, [2]interface{}{"a", 2}, [2]interface{}{"c", 3}),
		line("b", [2]interface{}{"b", 1}, [2]interface{}{"a", 1}),
	}
	x, err := Compute(ss, series.X, Axis{Type: Band})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"c", "a", "b"}, x.Categories)
	i, ok := x.Index("b")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
}

func TestComputeOverride(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 50; iter++ {
		var ss []series.Series
		for i := r.Intn(4); i > 0; i-- {
			s := series.Series{Label: "s"}
			for j := r.Intn(20); j > 0; j-- {
				s.Data = append(s.Data, series.Datum{X: r.NormFloat64() * 100, Y: r.Float64()})
			}
			ss = append(ss, s)
		}
		a := Axis{Type: Linear, Domain: []interface{}{40, 80}, IncludeZero: true, Nice: true}
		y, err := Compute(ss, series.Y, a)
		require.NoError(t, err)
		assert.Equal(t, Domain{Type: Linear, Min: 40, Max: 80}, y)
	}

	x, err := Compute(nil, series.X, Axis{Type: Band, Domain: []interface{}{"z", "y"}})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"z", "y"}, x.Categories)
}

func TestComputeBounds(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for iter := 0; iter < 100; iter++ {
		var ss []series.Series
		min, max := math.Inf(1), math.Inf(-1)
		for i := 1 + r.Intn(3); i > 0; i-- {
			s := series.Series{Label: "s"}
			for j := 1 + r.Intn(20); j > 0; j-- {
				y := r.NormFloat64()*50 + 20
				min, max = math.Min(min, y), math.Max(max, y)
				s.Data = append(s.Data, series.Datum{X: j, Y: y})
			}
			ss = append(ss, s)
		}
		for _, a := range []Axis{
			{Type: Linear},
			{Type: Linear, IncludeZero: true},
			{Type: Linear, Nice: true},
			{Type: Linear, IncludeZero: true, Nice: true},
		} {
			d, err := Compute(ss, series.Y, a)
			require.NoError(t, err)
			assert.LessOrEqual(t, d.Min, min)
			assert.GreaterOrEqual(t, d.Max, max)
			if !a.IncludeZero && !a.Nice {
				assert.Equal(t, min, d.Min)
				assert.Equal(t, max, d.Max)
			}
		}
	}
}

func TestComputeEmpty(t *testing.T) {
	for _, typ := range []Type{Linear, Time, Band} {
		d, err := Compute(nil, series.X, Axis{Type: typ, IncludeZero: true, Nice: true})
		require.NoError(t, err)
		assert.True(t, d.Empty(), "%s", typ)
	}
}

func TestComputeDegenerate(t *testing.T) {
	ss := []series.Series{line("a", [2]interface{}{3, 3}, [2]interface{}{3, 3})}
	d, err := Compute(ss, series.X, Axis{Type: Linear, Nice: true})
	require.NoError(t, err)
	assert.True(t, d.Degenerate())
	assert.Equal(t, 3.0, d.Min)
}

func TestComputeConfigErrors(t *testing.T) {
	for _, a := range []Axis{
		{},
		{Type: Type(42)},
		{Type: Linear, Domain: []interface{}{1}},
		{Type: Linear, Domain: []interface{}{1, 2, 3}},
		{Type: Linear, Domain: []interface{}{"a", 2}},
		{Type: Linear, Domain: []interface{}{5, 2}},
		{Type: Linear, Domain: []interface{}{math.NaN(), 2}},
		{Type: Band, Domain: []interface{}{"a", "a"}},
		{Type: Band, Domain: []interface{}{[]int{1}}},
		{Type: Band, PaddingInner: 1.5},
		{Type: Band, PaddingOuter: -1},
	} {
		_, err := Compute(nil, series.X, a)
		var cerr *ConfigError
		assert.True(t, errors.As(err, &cerr), "%+v: got %v", a, err)
	}
}

func TestTypeText(t *testing.T) {
	var typ Type
	require.NoError(t, typ.UnmarshalText([]byte("band")))
	assert.Equal(t, Band, typ)

	err := typ.UnmarshalText([]byte("log"))
	var cerr *ConfigError
	assert.True(t, errors.As(err, &cerr))
	assert.Equal(t, "type", cerr.Field)
}

func TestTimeUnit(t *testing.T) {
	tm := time.Date(2017, 8, 17, 13, 45, 10, 0, time.UTC)
	for _, test := range []struct {
		u           TimeUnit
		floor, ceil time.Time
	}{
		{TimeUnit{D: time.Hour}, time.Date(2017, 8, 17, 13, 0, 0, 0, time.UTC), time.Date(2017, 8, 17, 14, 0, 0, 0, time.UTC)},
		{TimeUnit{D: 24 * time.Hour}, time.Date(2017, 8, 17, 0, 0, 0, 0, time.UTC), time.Date(2017, 8, 18, 0, 0, 0, 0, time.UTC)},
		{TimeUnit{Months: 3}, time.Date(2017, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(2017, 10, 1, 0, 0, 0, 0, time.UTC)},
		{TimeUnit{Months: 120}, time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	} {
		assert.True(t, test.floor.Equal(test.u.Floor(tm)), "%+v floor %v", test.u, test.u.Floor(tm))
		assert.True(t, test.ceil.Equal(test.u.Ceil(tm)), "%+v ceil %v", test.u, test.u.Ceil(tm))
		assert.True(t, test.floor.Equal(test.u.Ceil(test.floor)))
	}
}
