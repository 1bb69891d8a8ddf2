// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"testing"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues(t *testing.T) {
	for _, test := range []struct {
		name  string
		s     Series
		field Field
		want  []interface{}
	}{
		{"line x", Series{Kind: Line, Data: []Datum{{X: 1, Y: 2}, {X: 3, Y: 4}}}, X, []interface{}{1, 3}},
		{"line y", Series{Kind: Line, Data: []Datum{{X: 1, Y: 2}, {X: 3, Y: 4}}}, Y, []interface{}{2, 4}},
		{"nil skipped", Series{Kind: Point, Data: []Datum{{X: 1}, {X: 3, Y: 4.0}}}, Y, []interface{}{4.0}},
		{"interval x", Series{Kind: Interval, Data: []Datum{
			{Fields: map[string]interface{}{"x0": 1, "x1": 5}},
		}}, X, []interface{}{1, 5}},
		{"interval y", Series{Kind: Interval, Data: []Datum{
			{Y: 3, Fields: map[string]interface{}{"x0": 1, "x1": 5}},
		}}, Y, nil},
		{"stacked y", Series{Kind: StackedBar, Keys: []string{"a", "b"}, Data: []Datum{
			{X: "mon", Fields: map[string]interface{}{"a": 1, "b": 2.5}},
			{X: "tue", Fields: map[string]interface{}{"a": 4}},
		}}, Y, []interface{}{3.5, 4.0}},
		{"grouped y", Series{Kind: GroupedBar, Keys: []string{"a", "b"}, Data: []Datum{
			{X: "mon", Fields: map[string]interface{}{"a": 1, "b": 7}},
		}}, Y, []interface{}{1.0, 7.0}},
		{"violin y", Series{Kind: Violin, Data: []Datum{{X: "a", Samples: []float64{3, -1}}}}, Y, []interface{}{3.0, -1.0}},
		{"area band y", Series{Kind: Area, Data: []Datum{
			{X: 0, Y: 5, Fields: map[string]interface{}{"y0": 2, "y1": 9}},
		}}, Y, []interface{}{5, 2, 9}},
	} {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.s.Values(test.field))
		})
	}
}

func TestResolve(t *testing.T) {
	fn := Func(func(d Datum, i int) interface{} {
		if i == 1 {
			return "red"
		}
		return ""
	})

	// Per-datum field wins over everything.
	d := Datum{Style: map[string]interface{}{"fill": "url(#lines)"}}
	assert.Equal(t, "url(#lines)", Resolve(d, 1, "fill", fn))

	// Then the function.
	assert.Equal(t, "red", Resolve(Datum{}, 1, "fill", fn))
	assert.Equal(t, "blue", ResolveString(Datum{}, 0, "fill", fn, "blue"))

	// Then the constant.
	assert.Equal(t, "#484848", Resolve(Datum{}, 0, "fill", Const("#484848")))

	// Nothing at all.
	assert.Nil(t, Resolve(Datum{}, 0, "fill", Attr{}))
	assert.Equal(t, 2.0, ResolveFloat(Datum{}, 0, "strokeWidth", Attr{}, 2))

	// Size honors the datum's Size field before the attribute.
	assert.Equal(t, 4.0, ResolveFloat(Datum{Size: 4}, 0, "size", Const(10), 1))
	assert.Equal(t, 10.0, ResolveFloat(Datum{}, 0, "size", Const(10), 1))
}

func TestKindText(t *testing.T) {
	for k := Line; k <= Violin; k++ {
		text, err := k.MarshalText()
		require.NoError(t, err)
		var k2 Kind
		require.NoError(t, k2.UnmarshalText(text))
		assert.Equal(t, k, k2)
	}
	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("pie")))
}

func TestToTime(t *testing.T) {
	want := UnixSeconds(time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC))
	for _, v := range []interface{}{
		time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC),
		"2017-01-02",
		"2017-01-02T00:00:00Z",
		want,
	} {
		got, ok := ToTime(v)
		require.True(t, ok, "%v", v)
		assert.Equal(t, want, got, "%v", v)
	}
	_, ok := ToTime("yesterday")
	assert.False(t, ok)

	tm := time.Date(2017, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.True(t, tm.Equal(FromUnixSeconds(UnixSeconds(tm))))
}

func TestFromTable(t *testing.T) {
	tab := new(table.Builder).
		Add("day", []string{"mon", "tue"}).
		Add("temp", []int{60, 72}).
		Add("city", []string{"SF", "SF"}).
		Done()
	s, err := FromTable("temps", Bar, tab, "day", "temp")
	require.NoError(t, err)
	assert.Equal(t, "temps", s.Label)
	require.Len(t, s.Data, 2)
	assert.Equal(t, "tue", s.Data[1].X)
	assert.Equal(t, 72.0, s.Data[1].Y)
	assert.Equal(t, "SF", s.Data[0].Field("city"))

	_, err = FromTable("temps", Bar, tab, "day", "humidity")
	assert.Error(t, err)
}

func TestFromGrouping(t *testing.T) {
	tab := new(table.Builder).
		Add("x", []float64{1, 2, 3}).
		Add("y", []float64{10, 20, 30}).
		Add("city", []string{"SF", "NY", "SF"}).
		Done()
	ss, err := FromGrouping(table.GroupBy(tab, "city"), Line, "x", "y")
	require.NoError(t, err)
	require.Len(t, ss, 2)
	assert.Equal(t, "SF", ss[0].Label)
	assert.Len(t, ss[0].Data, 2)
	assert.Equal(t, "NY", ss[1].Label)
}

func TestCheckLabels(t *testing.T) {
	assert.True(t, CheckLabels([]Series{{Label: "a"}, {Label: "b"}}))
	assert.False(t, CheckLabels([]Series{{Label: "a"}, {Label: "a"}}))
	assert.False(t, CheckLabels([]Series{{}}))
}
