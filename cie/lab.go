// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

const (
	// Epsilon is the CIE LAB junction point between the linear and
	// cube root segments of the lightness function.
	Epsilon = 216.0 / 24389.0

	// Kappa is the slope of the linear segment of the CIE LAB
	// lightness function.
	Kappa = 24389.0 / 27.0
)

// LABCompress applies the cube root lightness compression to a
// white-relative XYZ component.
func LABCompress(t float64) float64 {
	if t > Epsilon {
		return math.Cbrt(t)
	}
	return (Kappa*t + 16) / 116
}

// LABUncompress undoes the cube root lightness compression.
func LABUncompress(ft float64) float64 {
	if ft*ft*ft > Epsilon {
		return ft * ft * ft
	}
	return (116*ft - 16) / Kappa
}

// XYZToLAB converts XYZ to CIE LAB, using the D65 reference white.
// L is on a 0-100 scale and a, b are roughly -128..127.
func XYZToLAB(x, y, z float64) (l, a, b float64) {
	fx := LABCompress(x / WhiteD65[0])
	fy := LABCompress(y / WhiteD65[1])
	fz := LABCompress(z / WhiteD65[2])
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts CIE LAB to XYZ, using the D65 reference white.
func LABToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	xr := LABUncompress(fx)
	yr := fy * fy * fy
	if l <= Kappa*Epsilon {
		yr = l / Kappa
	}
	zr := LABUncompress(fz)
	x = xr * WhiteD65[0]
	y = yr * WhiteD65[1]
	z = zr * WhiteD65[2]
	return
}

// LABToLCH converts CIE LAB to its cylindrical LCH form,
// with hue in degrees in 0-360.
func LABToLCH(l, a, b float64) (ll, c, h float64) {
	ll = l
	c = math.Hypot(a, b)
	h = math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return
}

// LCHToLAB converts cylindrical LCH back to CIE LAB.
func LCHToLAB(l, c, h float64) (ll, a, b float64) {
	ll = l
	hr := h * math.Pi / 180
	a = c * math.Cos(hr)
	b = c * math.Sin(hr)
	return
}

// YToL returns the CIE L* lightness (0-100) of the given
// XYZ Y luminance component (0-1).
func YToL(y float64) float64 {
	return 116*LABCompress(y) - 16
}

// LToY returns the XYZ Y luminance component (0-1) of the given
// CIE L* lightness (0-100).
func LToY(l float64) float64 {
	if l > 8 {
		t := (l + 16) / 116
		return t * t * t
	}
	return l / Kappa
}
