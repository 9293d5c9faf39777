// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// WhiteD65 is the D65 standard illuminant reference white in XYZ
// coordinates, on a 0-1 scale.
var WhiteD65 = [3]float64{0.9504559270516716, 1, 1.0890577507598784}

// SRGBLinToXYZ converts linear RGB components to XYZ,
// using the BT.709 primaries with the D65 white point.
func SRGBLinToXYZ(rl, gl, bl float64) (x, y, z float64) {
	x = 0.4124564*rl + 0.3575761*gl + 0.1804375*bl
	y = 0.2126729*rl + 0.7151522*gl + 0.0721750*bl
	z = 0.0193339*rl + 0.1191920*gl + 0.9503041*bl
	return
}

// XYZToSRGBLin converts XYZ to linear RGB components.
func XYZToSRGBLin(x, y, z float64) (rl, gl, bl float64) {
	rl = 3.2404542*x - 1.5371385*y - 0.4985314*z
	gl = -0.9692660*x + 1.8760108*y + 0.0415560*z
	bl = 0.0556434*x - 0.2040259*y + 1.0572252*z
	return
}
