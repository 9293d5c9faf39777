// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLAB(t *testing.T) {
	// the reference white is exactly L=100, a=0, b=0
	l, a, b := XYZToLAB(WhiteD65[0], WhiteD65[1], WhiteD65[2])
	assert.InDelta(t, 100, l, 1e-12)
	assert.InDelta(t, 0, a, 1e-12)
	assert.InDelta(t, 0, b, 1e-12)

	x, y, z := LABToXYZ(100, 0, 0)
	assert.InDelta(t, WhiteD65[0], x, 1e-12)
	assert.InDelta(t, WhiteD65[1], y, 1e-12)
	assert.InDelta(t, WhiteD65[2], z, 1e-12)

	x, y, z = LABToXYZ(0, 0, 0)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)
	assert.InDelta(t, 0, z, 1e-12)

	for _, c := range [][3]float64{{0.2, 0.3, 0.4}, {0.1, 0.3, 0.5}, {0.002, 0.001, 0.003}} {
		l, a, b := XYZToLAB(c[0], c[1], c[2])
		x, y, z := LABToXYZ(l, a, b)
		assert.InDelta(t, c[0], x, 1e-12)
		assert.InDelta(t, c[1], y, 1e-12)
		assert.InDelta(t, c[2], z, 1e-12)
	}
}

func TestLCH(t *testing.T) {
	_, c, h := LABToLCH(50, 0, 0)
	assert.Equal(t, 0.0, c)
	assert.Equal(t, 0.0, h)

	_, c, h = LABToLCH(50, -50, 0)
	assert.InDelta(t, 50, c, 1e-12)
	assert.InDelta(t, 180, h, 1e-12)

	_, c, h = LABToLCH(50, 0, -50)
	assert.InDelta(t, 50, c, 1e-12)
	assert.InDelta(t, 270, h, 1e-12)

	for _, in := range [][3]float64{{62, 30, -40}, {30, -12.5, 7}, {95, 1, 1}} {
		l, c, h := LABToLCH(in[0], in[1], in[2])
		ll, a, b := LCHToLAB(l, c, h)
		assert.InDelta(t, in[0], ll, 1e-12)
		assert.InDelta(t, in[1], a, 1e-12)
		assert.InDelta(t, in[2], b, 1e-12)
	}
}

func TestLightness(t *testing.T) {
	assert.InDelta(t, 0, YToL(0), 1e-12)
	assert.InDelta(t, 100, YToL(1), 1e-12)
	assert.InDelta(t, 0, LToY(0), 1e-12)
	assert.InDelta(t, 1, LToY(100), 1e-12)

	// both segments meet exactly at L=8
	assert.InDelta(t, 8, YToL(LToY(8)), 1e-12)

	for _, l := range []float64{0.5, 4, 8, 17, 50, 99} {
		assert.InDelta(t, l, YToL(LToY(l)), 1e-12)
	}
}
