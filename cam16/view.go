// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import (
	"math"
	"sync"

	"github.com/zipxing/colorpro/cie"
)

// Surround selects the relative luminance of the field surrounding
// the stimulus, which sets the impact factor F, the exponential
// nonlinearity c, and the chromatic induction factor Nc.
type Surround int32

const (
	Dark Surround = iota
	Dim
	Average
)

// surroundFactors holds F, c, and Nc per surround.
var surroundFactors = [3][3]float64{
	{0.8, 0.525, 0.8},
	{0.9, 0.59, 0.9},
	{1.0, 0.69, 1.0},
}

// View represents viewing conditions under which a color is perceived,
// which greatly affect the subjective appearance. All derived factors
// are computed once by Update and reused for every conversion.
type View struct {

	// white point illumination, typically cie.WhiteD65
	WhitePoint [3]float64

	// luminance of the adapting field in cd/m2
	AdaptingLuminance float64

	// relative background luminance on a 0-100 scale
	BgLuminance float64

	// relative luminance of the surround field
	Surround Surround

	// whether the illuminant is fully discounted
	Discounting bool

	// exponential nonlinearity
	C float64

	// chromatic induction factor
	NC float64

	// ratio of background luminance to white luminance
	BgYToWhiteY float64

	// base exponential nonlinearity
	Z float64

	// luminance level induction factors
	NBB, NCB float64

	// luminance level adaptation factor
	FL float64

	// FL to the 1/4 power
	FLRoot float64

	// degree of adaptation applied to the cone responses
	RGBD [3]float64

	// inverse of the RGBD factors
	RGBDInverse [3]float64

	// achromatic response to the white point
	AW float64
}

// NewView returns a new view with all derived factors computed from
// the given major parameters. The background luminance is on a 0-100
// scale relative to the white point.
func NewView(whitePoint [3]float64, adaptingLuminance, bgLuminance float64, surround Surround, discounting bool) *View {
	vw := &View{
		WhitePoint:        whitePoint,
		AdaptingLuminance: adaptingLuminance,
		BgLuminance:       bgLuminance,
		Surround:          surround,
		Discounting:       discounting,
	}
	vw.Update()
	return vw
}

// stdView is the standard viewing environment for CAM16 correlates,
// using the conventional 4.07 cd/m2 adapting luminance against a 20%
// gray background under the average surround.
var stdView = sync.OnceValue(func() *View {
	return NewView(cie.WhiteD65, 64.0/math.Pi*0.2, 20, Average, false)
})

// StdView returns the standard viewing conditions model, created once
// on first use.
func StdView() *View {
	return stdView()
}

// Update computes all derived factors from the major parameters.
func (vw *View) Update() {
	xyzW := [3]float64{vw.WhitePoint[0] * 100, vw.WhitePoint[1] * 100, vw.WhitePoint[2] * 100}
	la := vw.AdaptingLuminance
	yw := xyzW[1]
	rgbW := mulMat(cat16, xyzW)

	f := surroundFactors[vw.Surround][0]
	vw.C = surroundFactors[vw.Surround][1]
	vw.NC = surroundFactors[vw.Surround][2]

	k := 1 / (5*la + 1)
	k4 := k * k * k * k

	vw.FL = k4*la + 0.1*(1-k4)*(1-k4)*math.Cbrt(5*la)
	vw.FLRoot = math.Pow(vw.FL, 0.25)

	n := vw.BgLuminance / yw
	vw.BgYToWhiteY = n
	vw.Z = 1.48 + math.Sqrt(n)
	vw.NBB = 0.725 * math.Pow(n, -0.2)
	vw.NCB = vw.NBB

	d := 1.0
	if !vw.Discounting {
		d = f * clamp01(1-1.0/3.6*math.Exp((-la-42)/92))
	}
	for i, c := range rgbW {
		vw.RGBD[i] = lerp(1, yw/c, d)
		vw.RGBDInverse[i] = 1 / vw.RGBD[i]
	}

	rgbCW := [3]float64{rgbW[0] * vw.RGBD[0], rgbW[1] * vw.RGBD[1], rgbW[2] * vw.RGBD[2]}
	rgbAW := adapt(rgbCW, vw.FL)
	vw.AW = vw.NBB * (2*rgbAW[0] + rgbAW[1] + 0.05*rgbAW[2])
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
