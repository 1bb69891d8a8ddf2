// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// FromTable returns a series of kind k whose X and Y values are the
// columns xcol and ycol of t. ycol may be "" for kinds that read no
// y value. Any other columns become datum Fields.
func FromTable(label string, k Kind, t *table.Table, xcol, ycol string) (Series, error) {
	s := Series{Label: label, Kind: k, Data: make([]Datum, t.Len())}

	xs := t.Column(xcol)
	if xs == nil {
		return Series{}, fmt.Errorf("series %q: unknown column %q", label, xcol)
	}
	xv := reflect.ValueOf(xs)
	for i := range s.Data {
		s.Data[i].X = xv.Index(i).Interface()
	}

	if ycol != "" {
		ycolumn := t.Column(ycol)
		if ycolumn == nil {
			return Series{}, fmt.Errorf("series %q: unknown column %q", label, ycol)
		}
		if isNumericSlice(ycolumn) {
			var ys []float64
			slice.Convert(&ys, ycolumn)
			for i, y := range ys {
				s.Data[i].Y = y
			}
		} else {
			yv := reflect.ValueOf(ycolumn)
			for i := range s.Data {
				s.Data[i].Y = yv.Index(i).Interface()
			}
		}
	}

	for _, col := range t.Columns() {
		if col == xcol || col == ycol {
			continue
		}
		cv := reflect.ValueOf(t.Column(col))
		for i := range s.Data {
			d := &s.Data[i]
			if d.Fields == nil {
				d.Fields = make(map[string]interface{})
			}
			d.Fields[col] = cv.Index(i).Interface()
		}
	}
	return s, nil
}

// FromGrouping returns one series per group of g. Each series is
// labeled by its group label, or by ycol for an ungrouped table.
func FromGrouping(g table.Grouping, k Kind, xcol, ycol string) ([]Series, error) {
	var ss []Series
	for _, gid := range g.Tables() {
		label := ycol
		if gid != table.RootGroupID {
			label = fmt.Sprint(gid.Label())
		}
		s, err := FromTable(label, k, g.Table(gid), xcol, ycol)
		if err != nil {
			return nil, err
		}
		ss = append(ss, s)
	}
	return ss, nil
}

func isNumericSlice(v interface{}) bool {
	switch reflect.TypeOf(v).Elem().Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
