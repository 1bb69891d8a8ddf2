// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kde estimates probability densities for histogram and
// violin overlays.
//
// Estimates are computed at a caller-chosen sequence of bins, which
// need not be uniformly spaced. The density at bin b is the mean over
// the sample of kernel(b - v).
package kde

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// A Kernel is a kernel function evaluated at the offset between a bin
// and a sample value.
type Kernel func(x float64) float64

// Point is the density estimate at one bin.
type Point struct {
	Bin   float64
	Value float64
}

// Estimator returns a function that estimates the density of a sample
// at each of bins, in order.
//
// If the sample is empty, every Value is NaN, following the
// convention of stats.Mean.
//
// The returned function retains bins, but has no other state, so it
// may be called concurrently.
func Estimator(k Kernel, bins []float64) func(values []float64) []Point {
	return func(values []float64) []Point {
		pts := make([]Point, len(bins))
		ks := make([]float64, len(values))
		for i, b := range bins {
			for j, v := range values {
				ks[j] = k(b - v)
			}
			pts[i] = Point{b, stats.Mean(ks)}
		}
		return pts
	}
}

// Epanechnikov returns the Epanechnikov kernel with bandwidth bw.
func Epanechnikov(bw float64) Kernel {
	return func(x float64) float64 {
		x /= bw
		if math.Abs(x) <= 1 {
			return 0.75 * (1 - x*x) / bw
		}
		return 0
	}
}

// Gaussian returns the Gaussian kernel with standard deviation bw.
func Gaussian(bw float64) Kernel {
	return stats.NormalDist{Mu: 0, Sigma: bw}.PDF
}

// Indicator returns a kernel that is 1 within width/2 of 0 and 0
// elsewhere. Indicator(0) is 1 exactly at 0, which turns the
// estimator into a relative frequency count.
func Indicator(width float64) Kernel {
	return func(x float64) float64 {
		if math.Abs(x) <= width/2 {
			return 1
		}
		return 0
	}
}

// Bins returns n evenly spaced bins spanning the bounds of values,
// widened on each side by widen. It returns nil if values is empty or
// n < 1.
func Bins(values []float64, n int, widen float64) []float64 {
	if len(values) == 0 || n < 1 {
		return nil
	}
	min, max := stats.Sample{Xs: values}.Bounds()
	if math.IsNaN(min) {
		return nil
	}
	if n == 1 {
		return []float64{(min + max) / 2}
	}
	return vec.Linspace(min-widen, max+widen, n)
}

// Scott returns Scott's rule-of-thumb bandwidth for values. It
// returns 1 for samples too small or too uniform to estimate.
func Scott(values []float64) float64 {
	if len(values) < 2 {
		return 1
	}
	bw := stats.BandwidthScott(stats.Sample{Xs: values})
	if bw <= 0 || math.IsNaN(bw) || math.IsInf(bw, 0) {
		return 1
	}
	return bw
}
