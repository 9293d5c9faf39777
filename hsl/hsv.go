// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import "math"

// RGBToHSV converts sRGB components to hue, saturation, and value.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min
	v = max
	if max != 0 {
		s = delta / max
	}
	if delta == 0 {
		return 0, s, v
	}
	h = hueFromRGB(r, g, b, max, delta)
	return
}

// HSVToRGB converts hue, saturation, and value to sRGB components.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	r, g, b = sector(h, c, x)
	return r + m, g + m, b + m
}
