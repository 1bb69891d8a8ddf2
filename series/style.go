// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

// Attr is a series-level style attribute. It is either a constant or
// a function of the datum and its index. If Func is non-nil, it takes
// precedence over Const.
type Attr struct {
	Const interface{}
	Func  func(d Datum, i int) interface{}
}

// Const returns an Attr that always resolves to v.
func Const(v interface{}) Attr {
	return Attr{Const: v}
}

// Func returns an Attr that resolves to f(d, i).
func Func(f func(d Datum, i int) interface{}) Attr {
	return Attr{Func: f}
}

// Resolve returns the value of the style attribute name for the i'th
// datum d of a series whose attribute is a. A per-datum value in
// d.Style wins, then a.Func, then a.Const. The "size" attribute also
// honors d.Size.
func Resolve(d Datum, i int, name string, a Attr) interface{} {
	if v, ok := d.Style[name]; ok && v != nil {
		return v
	}
	if name == "size" && d.Size != 0 {
		return d.Size
	}
	if a.Func != nil {
		return a.Func(d, i)
	}
	return a.Const
}

// ResolveString is like Resolve, but returns def if the resolved
// value is not a non-empty string.
func ResolveString(d Datum, i int, name string, a Attr, def string) string {
	if s, ok := Resolve(d, i, name, a).(string); ok && s != "" {
		return s
	}
	return def
}

// ResolveFloat is like Resolve, but returns def if the resolved value
// is not numeric.
func ResolveFloat(d Datum, i int, name string, a Attr, def float64) float64 {
	if v, ok := ToFloat(Resolve(d, i, name, a)); ok {
		return v
	}
	return def
}

// Attr returns the series attribute name, or the zero Attr.
func (s *Series) Attr(name string) Attr {
	return s.Style[name]
}
