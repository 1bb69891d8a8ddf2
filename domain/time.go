// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"time"

	"github.com/aclements/go-xychart/series"
)

// A TimeUnit is a calendar step: either a fixed duration or a whole
// number of months. All arithmetic is in UTC.
type TimeUnit struct {
	D      time.Duration
	Months int
}

// timeUnits are the candidate steps for time axes, in increasing
// order.
var timeUnits = []TimeUnit{
	{D: time.Second}, {D: 5 * time.Second}, {D: 15 * time.Second}, {D: 30 * time.Second},
	{D: time.Minute}, {D: 5 * time.Minute}, {D: 15 * time.Minute}, {D: 30 * time.Minute},
	{D: time.Hour}, {D: 3 * time.Hour}, {D: 6 * time.Hour}, {D: 12 * time.Hour},
	{D: 24 * time.Hour}, {D: 2 * 24 * time.Hour}, {D: 7 * 24 * time.Hour},
	{Months: 1}, {Months: 3}, {Months: 6},
	{Months: 12}, {Months: 24}, {Months: 60}, {Months: 120}, {Months: 240}, {Months: 600}, {Months: 1200},
}

// approx returns the approximate length of u in seconds.
func (u TimeUnit) approx() float64 {
	if u.Months != 0 {
		return float64(u.Months) * 30.436875 * 24 * 3600
	}
	return u.D.Seconds()
}

// Floor returns the latest step boundary at or before t.
func (u TimeUnit) Floor(t time.Time) time.Time {
	t = t.UTC()
	if u.Months == 0 {
		return t.Truncate(u.D)
	}
	if u.Months%12 == 0 {
		years := u.Months / 12
		y := t.Year() - mod(t.Year(), years)
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	m := int(t.Month()) - 1
	m -= mod(m, u.Months)
	return time.Date(t.Year(), time.Month(m+1), 1, 0, 0, 0, 0, time.UTC)
}

// Ceil returns the earliest step boundary at or after t.
func (u TimeUnit) Ceil(t time.Time) time.Time {
	f := u.Floor(t)
	if f.Equal(t) {
		return f
	}
	return u.Next(f)
}

// Next returns the step boundary following the boundary t.
func (u TimeUnit) Next(t time.Time) time.Time {
	if u.Months == 0 {
		return t.Add(u.D)
	}
	return t.AddDate(0, u.Months, 0)
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// ChooseTimeUnit returns the smallest unit that divides the span
// [min, max] (in Unix seconds) into at most n steps.
func ChooseTimeUnit(min, max float64, n int) TimeUnit {
	if n < 1 {
		n = 1
	}
	span := max - min
	for _, u := range timeUnits {
		if span/u.approx() <= float64(n) {
			return u
		}
	}
	return timeUnits[len(timeUnits)-1]
}

// niceTime rounds [min, max] outward to the boundaries of the unit
// chosen for n intervals.
func niceTime(min, max float64, n int) (float64, float64) {
	u := ChooseTimeUnit(min, max, n)
	lo := u.Floor(series.FromUnixSeconds(min))
	hi := u.Ceil(series.FromUnixSeconds(max))
	return series.UnixSeconds(lo), series.UnixSeconds(hi)
}
