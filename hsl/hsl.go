// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides the cylindrical hue-based color spaces HSL, HSV,
// and HWB, converting to and from gamma corrected sRGB components.
// Hue is in degrees (0-360) and all other components are on a 0-1 scale.
package hsl

import "math"

// RGBToHSL converts sRGB components to hue, saturation, and lightness.
// Achromatic colors (zero delta) have hue and saturation 0.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min
	l = (max + min) / 2
	if delta == 0 {
		return 0, 0, l
	}
	s = delta / (1 - math.Abs(2*l-1))
	h = hueFromRGB(r, g, b, max, delta)
	return
}

// HSLToRGB converts hue, saturation, and lightness to sRGB components.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2
	r, g, b = sector(h, c, x)
	return r + m, g + m, b + m
}

// hueFromRGB computes the hexagonal hue angle shared by HSL, HSV,
// and HWB, normalized into [0, 360).
func hueFromRGB(r, g, b, max, delta float64) float64 {
	var h float64
	switch max {
	case r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h
}

// sector returns the primary and secondary chroma components for the
// 60 degree hue sector containing h.
func sector(h, c, x float64) (r, g, b float64) {
	switch {
	case h < 60:
		return c, x, 0
	case h < 120:
		return x, c, 0
	case h < 180:
		return 0, c, x
	case h < 240:
		return 0, x, c
	case h < 300:
		return x, 0, c
	default:
		return c, 0, x
	}
}
