// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorpro

import "math"

// srgbToCMYK converts gamma-encoded sRGB channels to CMYK fractions.
// The key is the complement of the brightest channel; pure black has
// zero in every chromatic channel.
func srgbToCMYK(r, g, b float64) (c, m, y, k float64) {
	k = 1 - math.Max(r, math.Max(g, b))
	if k < 1 {
		c = (1 - r - k) / (1 - k)
		m = (1 - g - k) / (1 - k)
		y = (1 - b - k) / (1 - k)
	}
	return c, m, y, k
}

// cmykToSRGB converts CMYK fractions to gamma-encoded sRGB channels.
func cmykToSRGB(c, m, y, k float64) (r, g, b float64) {
	r = (1 - c) * (1 - k)
	g = (1 - m) * (1 - k)
	b = (1 - y) * (1 - k)
	return r, g, b
}

func srgbaToCMYK(s ColorData) ColorData {
	c, m, y, k := srgbToCMYK(s[0], s[1], s[2])
	return ColorData{c, m, y, k}
}

// cmykToSRGBA expands a CMYK tuple to sRGB. CMYK carries no alpha, so
// the result is opaque.
func cmykToSRGBA(d ColorData) ColorData {
	r, g, b := cmykToSRGB(d[0], d[1], d[2], d[3])
	return ColorData{r, g, b, 1}
}
