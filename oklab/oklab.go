// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklab provides the OKLab perceptual color space and its
// cylindrical OKLch form, converting to and from XYZ coordinates
// relative to the D65 white point.
package oklab

import "math"

// XYZToOKLab converts XYZ (0-1 scale, D65) to OKLab. L is on a 0-1
// scale and a, b are roughly -0.4..0.4.
func XYZToOKLab(x, y, z float64) (l, a, b float64) {
	lm := 0.8189330101*x + 0.3618667424*y - 0.1288597137*z
	mm := 0.0329845436*x + 0.9293118715*y + 0.0361456387*z
	sm := 0.0482003018*x + 0.2643662691*y + 0.6338517070*z
	lc := math.Cbrt(lm)
	mc := math.Cbrt(mm)
	sc := math.Cbrt(sm)
	l = 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc
	a = 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc
	b = 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc
	return
}

// OKLabToXYZ converts OKLab back to XYZ (0-1 scale, D65).
func OKLabToXYZ(l, a, b float64) (x, y, z float64) {
	lc := 1.00000000*l + 0.39633779*a + 0.21580376*b
	mc := 1.00000001*l - 0.10556134*a - 0.06385417*b
	sc := 1.00000005*l - 0.08948418*a - 1.29148554*b
	lm := lc * lc * lc
	mm := mc * mc * mc
	sm := sc * sc * sc
	x = 1.22701385*lm - 0.55779998*mm + 0.28125615*sm
	y = -0.04058018*lm + 1.11225687*mm - 0.07167668*sm
	z = -0.07638128*lm - 0.42148198*mm + 1.58616322*sm
	return
}

// OKLabToOKLch converts OKLab to its cylindrical form, with hue in
// degrees in 0-360.
func OKLabToOKLch(l, a, b float64) (ll, c, h float64) {
	ll = l
	c = math.Hypot(a, b)
	h = math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return
}

// OKLchToOKLab converts cylindrical OKLch back to OKLab.
func OKLchToOKLab(l, c, h float64) (ll, a, b float64) {
	ll = l
	hr := h * math.Pi / 180
	a = c * math.Cos(hr)
	b = c * math.Sin(hr)
	return
}
