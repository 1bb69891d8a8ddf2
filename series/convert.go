// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"reflect"
	"time"
)

var float64Type = reflect.TypeOf(float64(0))

// ToFloat converts a numeric value of any Go numeric kind to float64.
// It returns false for nil and for non-numeric values. Note that
// time.Time is not numeric; see ToTime.
func ToFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case int:
		return float64(v), true
	case float32:
		return float64(v), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Convert(float64Type).Float(), true
	}
	return 0, false
}

// timeLayouts are the string forms accepted for time values.
var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// ToTime converts v to Unix seconds. v may be a time.Time, a number of
// Unix seconds, or a string in RFC 3339 or "2006-01-02" form.
func ToTime(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case time.Time:
		return UnixSeconds(v), true
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return UnixSeconds(t), true
			}
		}
		return 0, false
	}
	return ToFloat(v)
}

// UnixSeconds returns t as fractional seconds since the Unix epoch.
func UnixSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// FromUnixSeconds is the inverse of UnixSeconds, to within the
// precision of a float64. The result is in UTC.
func FromUnixSeconds(s float64) time.Time {
	sec := int64(s)
	if float64(sec) > s {
		sec--
	}
	nsec := int64((s - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC()
}
