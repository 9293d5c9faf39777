// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSRGBGamma(t *testing.T) {
	assert.InDelta(t, 0.0001547987616099071, SRGBToLinearComp(0.002), 1e-15)
	assert.InDelta(t, 0.012920, SRGBFromLinearComp(0.001), 1e-9)

	// both segments meet at the junction point
	assert.InDelta(t, SRGBToLinearComp(0.040449999), SRGBToLinearComp(0.040450001), 1e-6)

	for _, c := range []float64{0, 0.002, 0.04045, 0.2, 0.52, 0.75, 1} {
		assert.InDelta(t, c, SRGBFromLinearComp(SRGBToLinearComp(c)), 1e-12)
	}

	rl, gl, bl := SRGBToLinear(1, 1, 1)
	assert.Equal(t, 1.0, rl)
	assert.Equal(t, 1.0, gl)
	assert.Equal(t, 1.0, bl)

	r, g, b := SRGBFromLinear(0, 0, 0)
	assert.Equal(t, 0.0, r)
	assert.Equal(t, 0.0, g)
	assert.Equal(t, 0.0, b)
}

func TestSRGBToXYZ(t *testing.T) {
	// primaries map to the matrix columns exactly
	x, y, z := SRGBToXYZ(1, 0, 0)
	assert.Equal(t, 0.4124564, x)
	assert.Equal(t, 0.2126729, y)
	assert.Equal(t, 0.0193339, z)

	x, y, z = SRGBToXYZ(0, 1, 0)
	assert.Equal(t, 0.3575761, x)
	assert.Equal(t, 0.7151522, y)
	assert.Equal(t, 0.1191920, z)

	x, y, z = SRGBToXYZ(0, 0, 1)
	assert.Equal(t, 0.1804375, x)
	assert.Equal(t, 0.0721750, y)
	assert.Equal(t, 0.9503041, z)

	for _, c := range [][3]float64{{0.5, 0.1, 0.6}, {0.3, 0.5, 0.1}, {0.777, 0.424, 0.521}} {
		x, y, z := SRGBToXYZ(c[0], c[1], c[2])
		r, g, b := XYZToSRGB(x, y, z)
		assert.InDelta(t, c[0], r, 0.001)
		assert.InDelta(t, c[1], g, 0.001)
		assert.InDelta(t, c[2], b, 0.001)
	}
}
