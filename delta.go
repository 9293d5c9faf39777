// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorpro

import "math"

// DeltaECIE76 returns the CIE 1976 color difference between two LAB
// tuples, the plain Euclidean distance in LAB space. A value around
// 2.3 corresponds to one just-noticeable difference.
func DeltaECIE76(lab1, lab2 ColorData) float64 {
	dl := lab1[0] - lab2[0]
	da := lab1[1] - lab2[1]
	db := lab1[2] - lab2[2]
	return math.Sqrt(dl*dl + da*da + db*db)
}

// DeltaECIEDE2000 returns the CIEDE2000 color difference between two
// LAB tuples following Sharma, Wu, and Dalal (2005), with the
// parametric weights kL, kC, and kH all 1.
func DeltaECIEDE2000(lab1, lab2 ColorData) float64 {
	const pow25To7 = 6103515625.0 // 25^7

	l1, a1, b1 := lab1[0], lab1[1], lab1[2]
	l2, a2, b2 := lab2[0], lab2[1], lab2[2]

	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)
	cBar := (c1 + c2) / 2

	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25To7)))

	a1p := a1 * (1 + g)
	a2p := a2 * (1 + g)

	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)

	h1p := hueAngle(a1p, b1)
	h2p := hueAngle(a2p, b2)

	dlp := l2 - l1
	dcp := c2p - c1p

	// When either chroma vanishes the hue is indeterminate and the
	// hue difference is taken as zero.
	var dhp float64
	switch {
	case math.Abs(c1p*c2p) < 1e-4:
		dhp = 0
	case math.Abs(h2p-h1p) <= 180:
		dhp = h2p - h1p
	case h2p <= h1p:
		dhp = h2p - h1p + 360
	default:
		dhp = h2p - h1p - 360
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(degToRad(dhp)/2)

	lBarP := (l1 + l2) / 2
	cBarP := (c1p + c2p) / 2

	var hBarP float64
	switch {
	case math.Abs(c1p*c2p) < 1e-4:
		hBarP = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBarP = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hBarP = (h1p + h2p + 360) / 2
	default:
		hBarP = (h1p + h2p - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(degToRad(hBarP-30)) +
		0.24*math.Cos(degToRad(2*hBarP)) +
		0.32*math.Cos(degToRad(3*hBarP+6)) -
		0.20*math.Cos(degToRad(4*hBarP-63))

	lTerm := (lBarP - 50) * (lBarP - 50)
	sl := 1 + 0.015*lTerm/math.Sqrt(20+lTerm)
	sc := 1 + 0.045*cBarP
	sh := 1 + 0.015*cBarP*t

	cBarP7 := math.Pow(cBarP, 7)
	rc := 2 * math.Sqrt(cBarP7/(cBarP7+pow25To7))
	dTheta := 30 * math.Exp(-((hBarP-275)/25)*((hBarP-275)/25))
	rt := -rc * math.Sin(2*degToRad(dTheta))

	lRatio := dlp / sl
	cRatio := dcp / sc
	hRatio := dHp / sh
	return math.Sqrt(lRatio*lRatio + cRatio*cRatio + hRatio*hRatio + rt*cRatio*hRatio)
}

// hueAngle returns the LAB hue angle in degrees within [0, 360).
func hueAngle(a, b float64) float64 {
	return modPositive(radToDeg(math.Atan2(b, a)), 360)
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

func radToDeg(r float64) float64 {
	return r * 180 / math.Pi
}
