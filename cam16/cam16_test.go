// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zipxing/colorpro/cie"
)

func expect(t *testing.T, ref, val, tol float64) {
	t.Helper()
	if math.Abs(ref-val) > tol {
		t.Errorf("expected value: %g != %g\n", ref, val)
	}
}

func TestView(t *testing.T) {
	vw := StdView()
	expect(t, 4.0743665, vw.AdaptingLuminance, 1e-6)
	expect(t, 20, vw.BgLuminance, 0)
	expect(t, 0.69, vw.C, 0)
	expect(t, 1, vw.NC, 0)
	expect(t, 0.2, vw.BgYToWhiteY, 1e-12)
	expect(t, 1.9272136, vw.Z, 1e-6)
	expect(t, 1.0003047, vw.NBB, 1e-4)
	expect(t, 1.0003047, vw.NCB, 1e-4)
	expect(t, 0.2731272, vw.FL, 1e-4)
	expect(t, 0.7229223, vw.FLRoot, 1e-4)
	expect(t, 1.0208562, vw.RGBD[0], 1e-4)
	expect(t, 0.9865142, vw.RGBD[1], 1e-4)
	expect(t, 0.9348569, vw.RGBD[2], 1e-4)
	expect(t, 25.5185, vw.AW, 0.01)

	// the same view comes back on every call
	assert.Same(t, vw, StdView())
}

func TestHueQuadrature(t *testing.T) {
	// unique yellow, green, and blue anchor the quadrature scale
	assert.InDelta(t, 100, HueQuadrature(90), 1e-12)
	assert.InDelta(t, 200, HueQuadrature(164.25), 1e-12)
	assert.InDelta(t, 300, HueQuadrature(237.53), 1e-12)

	// unique red sits at the wrap point
	assert.InDelta(t, 400, HueQuadrature(20.14), 1e-9)
	assert.InDelta(t, 20.14, InverseHueQuadrature(0), 1e-12)
	assert.InDelta(t, 90, InverseHueQuadrature(100), 1e-12)

	for _, h := range []float64{5, 25, 60, 90, 150, 200, 237.53, 280, 350} {
		assert.InDelta(t, h, InverseHueQuadrature(HueQuadrature(h)), 1e-9)
	}
}

func TestCAM(t *testing.T) {
	black := FromXYZ(0, 0, 0)
	assert.Equal(t, 0.0, black.Lightness)
	assert.Equal(t, 0.0, black.Chroma)
	assert.Equal(t, 0.0, black.Colorfulness)
	assert.Equal(t, 0.0, black.Saturation)
	assert.Equal(t, 0.0, black.Brightness)

	x, y, z := cie.SRGBToXYZ(1, 1, 1)
	white := FromXYZView(x, y, z, StdView())
	assert.InDelta(t, 100, white.Lightness, 0.1)
	assert.Less(t, white.Chroma, 4.0)

	// lightness orders achromatic colors
	x, y, z = cie.SRGBToXYZ(0.5, 0.5, 0.5)
	gray := FromXYZ(x, y, z)
	assert.Greater(t, white.Lightness, gray.Lightness)
	assert.Greater(t, gray.Lightness, black.Lightness)
}

func TestXYZRoundTrip(t *testing.T) {
	vw := StdView()
	tests := [][3]float64{{0.5, 0.1, 0.6}, {0.3, 0.5, 0.1}, {0.777, 0.424, 0.521}, {0.01, 0.02, 0.03}}
	for _, tt := range tests {
		x, y, z := cie.SRGBToXYZ(tt[0], tt[1], tt[2])
		cam := FromXYZView(x, y, z, vw)
		xc, yc, zc := cam.XYZView(vw)
		assert.InDelta(t, x, xc, 1e-9)
		assert.InDelta(t, y, yc, 1e-9)
		assert.InDelta(t, z, zc, 1e-9)
	}
}

func TestCorrelateRelations(t *testing.T) {
	vw := StdView()
	for _, tt := range [][3]float64{{0.5, 0.1, 0.6}, {0.2, 0.7, 0.3}, {0.9, 0.9, 0.1}} {
		x, y, z := cie.SRGBToXYZ(tt[0], tt[1], tt[2])
		cam := FromXYZView(x, y, z, vw)

		assert.InDelta(t, cam.Lightness, LightnessFromBrightness(cam.Brightness, vw), 1e-9)
		assert.InDelta(t, cam.Chroma, ChromaFromColorfulness(cam.Colorfulness, vw), 1e-9)
		assert.InDelta(t, cam.Chroma, ChromaFromSaturation(cam.Saturation, cam.Lightness, vw), 1e-9)
		assert.InDelta(t, cam.Hue, InverseHueQuadrature(cam.HueQuadrature), 1e-9)

		jmh := FromJMH(cam.Lightness, cam.Colorfulness, cam.Hue, vw)
		assert.InDelta(t, cam.Chroma, jmh.Chroma, 1e-9)
		assert.InDelta(t, cam.Saturation, jmh.Saturation, 1e-9)
		assert.InDelta(t, cam.Brightness, jmh.Brightness, 1e-9)
		assert.InDelta(t, cam.HueQuadrature, jmh.HueQuadrature, 1e-9)
	}
}

func TestInverse(t *testing.T) {
	vw := StdView()
	cam := FromJCH(40, 30, 120, vw)
	x, y, z := cam.XYZView(vw)
	back := FromXYZView(x, y, z, vw)
	assert.InDelta(t, 40, back.Lightness, 1e-6)
	assert.InDelta(t, 30, back.Chroma, 1e-6)
	assert.InDelta(t, 120, back.Hue, 1e-6)

	// zero lightness is black no matter the chroma
	x, y, z = FromJCH(0, 25, 200, vw).XYZView(vw)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, 0.0, z)
}
