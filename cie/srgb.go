// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the standard CIE color spaces and conversions
// between them, including sRGB, linear RGB, XYZ, LAB, and LCH.
// All conversions operate on float64 components, with sRGB and XYZ
// values on a 0-1 scale and LAB lightness on the usual 0-100 scale.
package cie

import "math"

// SRGBToLinearComp converts an sRGB component value (gamma corrected)
// to its linear form, which is used in the XYZ conversion matrix.
func SRGBToLinearComp(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

// SRGBFromLinearComp converts a linear RGB component value back to the
// gamma corrected sRGB form.
func SRGBFromLinearComp(c float64) float64 {
	if c > 0.0031308 {
		return 1.055*math.Pow(c, 1.0/2.4) - 0.055
	}
	return 12.92 * c
}

// SRGBToLinear converts sRGB components to linear RGB.
func SRGBToLinear(r, g, b float64) (rl, gl, bl float64) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts linear RGB components to gamma corrected sRGB.
func SRGBFromLinear(rl, gl, bl float64) (r, g, b float64) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBToXYZ converts sRGB components to XYZ using the standard
// D65 transformation matrix.
func SRGBToXYZ(r, g, b float64) (x, y, z float64) {
	rl, gl, bl := SRGBToLinear(r, g, b)
	return SRGBLinToXYZ(rl, gl, bl)
}

// XYZToSRGB converts XYZ to gamma corrected sRGB components.
func XYZToSRGB(x, y, z float64) (r, g, b float64) {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	return SRGBFromLinear(rl, gl, bl)
}
