// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

// RGBToHWB converts sRGB components to hue, whiteness, and blackness.
func RGBToHWB(r, g, b float64) (h, w, bk float64) {
	h, s, v := RGBToHSV(r, g, b)
	w = v * (1 - s)
	bk = 1 - v
	return
}

// HWBToRGB converts hue, whiteness, and blackness to sRGB components.
func HWBToRGB(h, w, bk float64) (r, g, b float64) {
	v := 1 - bk
	s := 0.0
	if v != 0 {
		s = 1 - w/v
	}
	return HSVToRGB(h, s, v)
}
