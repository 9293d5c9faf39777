// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cam16 implements the CAM16 color appearance model
// (Li et al, 2017), which predicts the perceived attributes of a
// color under explicit viewing conditions. It is the basis for the
// hct tone-chroma-hue space.
package cam16

import "math"

// CAM represents a point in the cam16 model along 6 appearance
// dimensions plus the hue quadrature, representing perceived hue,
// colorfulness, and brightness, much better calibrated to human
// judgments than HSL-style spaces.
type CAM struct {

	// hue (h) is the spectral identity of the color in degrees
	Hue float64

	// chroma (C) is the colorfulness relative to the white point;
	// grayscale colors have no chroma
	Chroma float64

	// colorfulness (M) is the absolute chromatic intensity
	Colorfulness float64

	// saturation (s) is the colorfulness relative to brightness
	Saturation float64

	// brightness (Q) is the apparent amount of light from the color
	Brightness float64

	// lightness (J) is the brightness relative to a reference white
	Lightness float64

	// hue quadrature (H) positions the hue on the 0-400 scale
	// anchored at the unique red, yellow, green, and blue hues
	HueQuadrature float64
}

const adaptedCoef = 0.42

// cat16 is the CAM16 chromatic adaptation matrix, taking XYZ on a
// 0-100 scale to cone-like RGB responses.
var cat16 = [3][3]float64{
	{0.401288, 0.650173, -0.051461},
	{-0.250268, 1.204414, 0.045854},
	{-0.002079, 0.048952, 0.953127},
}

var cat16Inverse = [3][3]float64{
	{1.8620678550872327, -1.0112546305316843, 0.14918677544445175},
	{0.38752654323613717, 0.6214474419314753, -0.008973985167612518},
	{-0.015841498849333856, -0.03412293802851557, 1.0499644368778496},
}

// opponentToCones recovers the adapted cone responses from the
// achromatic and opponent signals, after division by 1403.
var opponentToCones = [3][3]float64{
	{460, 451, 288},
	{460, -891, -261},
	{460, -220, -6300},
}

// hueQuadMap holds the unique hue angles, their eccentricities, and
// the quadrature values they anchor.
var hueQuadMap = [3][5]float64{
	{20.14, 90.00, 164.25, 237.53, 380.14},
	{0.8, 0.7, 1.0, 1.2, 0.8},
	{0, 100, 200, 300, 400},
}

// FromXYZ returns the CAM appearance correlates for the given XYZ
// coordinates (0-1 scale) under the standard viewing conditions.
func FromXYZ(x, y, z float64) *CAM {
	return FromXYZView(x, y, z, StdView())
}

// FromXYZView returns the CAM appearance correlates for the given XYZ
// coordinates (0-1 scale) under the given viewing conditions.
func FromXYZView(x, y, z float64, vw *View) *CAM {
	xyz100 := [3]float64{x * 100, y * 100, z * 100}
	rgb := mulMat(cat16, xyz100)
	rgbC := [3]float64{rgb[0] * vw.RGBD[0], rgb[1] * vw.RGBD[1], rgb[2] * vw.RGBD[2]}
	rgbA := adapt(rgbC, vw.FL)

	a := rgbA[0] + (-12*rgbA[1]+rgbA[2])/11
	b := (rgbA[0] + rgbA[1] - 2*rgbA[2]) / 9
	const tau = 2 * math.Pi
	hRad := math.Mod(math.Mod(math.Atan2(b, a), tau)+tau, tau)

	et := 0.25 * (math.Cos(hRad+2) + 3.8)
	t := 50000.0 / 13.0 * vw.NC * vw.NCB *
		zdiv(et*math.Hypot(a, b), rgbA[0]+rgbA[1]+1.05*rgbA[2]+0.305)
	alpha := math.Pow(t, 0.9) * math.Pow(1.64-math.Pow(0.29, vw.BgYToWhiteY), 0.73)

	ach := vw.NBB * (2*rgbA[0] + rgbA[1] + 0.05*rgbA[2])
	jRoot := math.Pow(ach/vw.AW, 0.5*vw.C*vw.Z)

	hue := constrain(hRad * 180 / math.Pi)
	chroma := alpha * jRoot
	return &CAM{
		Hue:           hue,
		Chroma:        chroma,
		Colorfulness:  chroma * vw.FLRoot,
		Saturation:    50 * math.Sqrt(vw.C*alpha/(vw.AW+4)),
		Brightness:    4 / vw.C * jRoot * (vw.AW + 4) * vw.FLRoot,
		Lightness:     100 * jRoot * jRoot,
		HueQuadrature: HueQuadrature(hue),
	}
}

// XYZ returns the XYZ coordinates (0-1 scale) that produce this CAM
// appearance under the standard viewing conditions.
func (cam *CAM) XYZ() (x, y, z float64) {
	return cam.XYZView(StdView())
}

// XYZView returns the XYZ coordinates (0-1 scale) that produce this
// CAM appearance under the given viewing conditions, driving the
// inverse model from the Lightness, Chroma, and Hue correlates.
// Zero lightness is black regardless of the other correlates.
func (cam *CAM) XYZView(vw *View) (x, y, z float64) {
	if cam.Lightness == 0 {
		return 0, 0, 0
	}
	jRoot := math.Pow(cam.Lightness, 0.5) * 0.1
	return inverse(jRoot, cam.Chroma/jRoot, constrain(cam.Hue)*math.Pi/180, vw)
}

// FromJCH returns the full set of appearance correlates implied by
// the lightness (J), chroma (C), and hue (h) correlates under the
// given viewing conditions. The remaining correlates follow in
// closed form; combined with [LightnessFromBrightness],
// [ChromaFromColorfulness], [ChromaFromSaturation], and
// [InverseHueQuadrature], any complete correlate triple determines
// the color.
func FromJCH(j, c, h float64, vw *View) *CAM {
	jRoot := math.Pow(j, 0.5) * 0.1
	alpha := 0.0
	if j != 0 {
		alpha = c / jRoot
	}
	return &CAM{
		Hue:           constrain(h),
		Chroma:        c,
		Colorfulness:  c * vw.FLRoot,
		Saturation:    50 * math.Sqrt(vw.C*alpha/(vw.AW+4)),
		Brightness:    4 / vw.C * jRoot * (vw.AW + 4) * vw.FLRoot,
		Lightness:     j,
		HueQuadrature: HueQuadrature(constrain(h)),
	}
}

// FromJMH returns the full set of appearance correlates implied by
// the lightness (J), colorfulness (M), and hue (h) correlates under
// the given viewing conditions.
func FromJMH(j, m, h float64, vw *View) *CAM {
	return FromJCH(j, ChromaFromColorfulness(m, vw), h, vw)
}

// LightnessFromBrightness returns the lightness (J) correlate implied
// by the brightness (Q) correlate under the given viewing conditions.
func LightnessFromBrightness(q float64, vw *View) float64 {
	jRoot := 0.25 * vw.C * q / ((vw.AW + 4) * vw.FLRoot)
	return 100 * jRoot * jRoot
}

// ChromaFromColorfulness returns the chroma (C) correlate implied by
// the colorfulness (M) correlate under the given viewing conditions.
func ChromaFromColorfulness(m float64, vw *View) float64 {
	return m / vw.FLRoot
}

// ChromaFromSaturation returns the chroma (C) correlate implied by
// the saturation (s) correlate at lightness J under the given
// viewing conditions.
func ChromaFromSaturation(s, j float64, vw *View) float64 {
	alpha := 0.0004 * s * s * (vw.AW + 4) / vw.C
	return alpha * math.Pow(j, 0.5) * 0.1
}

// inverse runs the core inverse model from the reduced correlates:
// the square root of lightness scaled to 0-1, the chroma to lightness
// ratio, and the hue angle in radians.
func inverse(jRoot, alpha, hRad float64, vw *View) (x, y, z float64) {
	t := math.Pow(alpha*math.Pow(1.64-math.Pow(0.29, vw.BgYToWhiteY), -0.73), 10.0/9.0)

	cosH := math.Cos(hRad)
	sinH := math.Sin(hRad)
	et := 0.25 * (math.Cos(hRad+2) + 3.8)

	ach := vw.AW * math.Pow(jRoot, 2/(vw.C*vw.Z))
	p1 := 50000.0 / 13.0 * vw.NC * vw.NCB * et
	p2 := ach / vw.NBB

	r := 23 * (p2 + 0.305) * zdiv(t, 23*p1+t*(11*cosH+108*sinH))
	a := r * cosH
	b := r * sinH

	rgbA := mulMat(opponentToCones, [3]float64{p2, a, b})
	for i := range rgbA {
		rgbA[i] /= 1403
	}
	rgbC := unadapt(rgbA, vw.FL)
	xyz := mulMat(cat16Inverse, [3]float64{
		rgbC[0] * vw.RGBDInverse[0],
		rgbC[1] * vw.RGBDInverse[1],
		rgbC[2] * vw.RGBDInverse[2],
	})
	return xyz[0] / 100, xyz[1] / 100, xyz[2] / 100
}

// HueQuadrature returns the hue quadrature H (0-400) for the given
// hue angle in degrees, interpolating between the unique hues by
// their eccentricities.
func HueQuadrature(h float64) float64 {
	hp := constrain(h)
	if hp <= hueQuadMap[0][0] {
		hp += 360
	}
	i := 3
	for k := 1; k < 5; k++ {
		if hueQuadMap[0][k] > hp {
			i = k - 1
			break
		}
	}
	hi := hueQuadMap[0][i]
	hii := hueQuadMap[0][i+1]
	ei := hueQuadMap[1][i]
	eii := hueQuadMap[1][i+1]
	t := (hp - hi) / ei
	return hueQuadMap[2][i] + 100*t/(t+(hii-hp)/eii)
}

// InverseHueQuadrature returns the hue angle in degrees for the given
// hue quadrature H.
func InverseHueQuadrature(hq float64) float64 {
	hqp := math.Mod(math.Mod(hq, 400)+400, 400)
	i := int(math.Floor(hqp / 100))
	hqp = math.Mod(hqp, 100)
	hi := hueQuadMap[0][i]
	hii := hueQuadMap[0][i+1]
	ei := hueQuadMap[1][i]
	eii := hueQuadMap[1][i+1]
	return constrain((hqp*(eii*hi-ei*hii) - 100*hi*eii) / (hqp*(eii-ei) - 100*eii))
}

// adapt applies the post-adaptation cone response compression.
func adapt(v [3]float64, fl float64) [3]float64 {
	var out [3]float64
	for i, c := range v {
		x := math.Pow(fl*math.Abs(c)*0.01, adaptedCoef)
		out[i] = 400 * math.Copysign(x, c) / (x + 27.13)
	}
	return out
}

// unadapt undoes the cone response compression.
func unadapt(v [3]float64, fl float64) [3]float64 {
	constant := 100 / fl * math.Pow(27.13, 1/adaptedCoef)
	var out [3]float64
	for i, c := range v {
		cabs := math.Abs(c)
		out[i] = math.Copysign(constant*math.Pow(cabs/(400-cabs), 1/adaptedCoef), c)
	}
	return out
}

func mulMat(m [3][3]float64, v [3]float64) [3]float64 {
	var out [3]float64
	for i := range m {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

// zdiv is division that returns 0 for a zero divisor.
func zdiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// constrain wraps a hue angle into 0-360 degrees.
func constrain(v float64) float64 {
	if v < 0 {
		return v + 360
	}
	return math.Mod(v, 360)
}
