// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHSL(t *testing.T) {
	tests := []struct {
		r, g, b float64
		h, s, l float64
	}{
		{1, 0, 0, 0, 1, 0.5},
		{0, 1, 0, 120, 1, 0.5},
		{0, 0, 1, 240, 1, 0.5},
		{1, 0, 1, 300, 1, 0.5}, // hue normalized from the negative sector
		{0.5, 0.5, 0.5, 0, 0, 0.5},
		{0.4, 0.8, 0.4, 120, 0.5, 0.6},
		{0, 0, 0, 0, 0, 0},
		{1, 1, 1, 0, 0, 1},
	}
	for _, tt := range tests {
		h, s, l := RGBToHSL(tt.r, tt.g, tt.b)
		assert.InDelta(t, tt.h, h, 1e-12)
		assert.InDelta(t, tt.s, s, 1e-12)
		assert.InDelta(t, tt.l, l, 1e-12)
	}

	r, g, b := HSLToRGB(0, 0, 0.75)
	assert.InDelta(t, 0.75, r, 1e-12)
	assert.InDelta(t, 0.75, g, 1e-12)
	assert.InDelta(t, 0.75, b, 1e-12)

	for _, c := range [][3]float64{{0.2, 0.4, 0.9}, {0.9, 0.1, 0.3}, {0.31, 0.72, 0.06}} {
		h, s, l := RGBToHSL(c[0], c[1], c[2])
		r, g, b := HSLToRGB(h, s, l)
		assert.InDelta(t, c[0], r, 1e-12)
		assert.InDelta(t, c[1], g, 1e-12)
		assert.InDelta(t, c[2], b, 1e-12)
	}
}

func TestHSV(t *testing.T) {
	h, s, v := RGBToHSV(1, 0, 0)
	assert.Equal(t, 0.0, h)
	assert.Equal(t, 1.0, s)
	assert.Equal(t, 1.0, v)

	h, s, v = RGBToHSV(0.4, 0.8, 0.4)
	assert.InDelta(t, 120, h, 1e-12)
	assert.InDelta(t, 0.5, s, 1e-12)
	assert.InDelta(t, 0.8, v, 1e-12)

	// value 0 keeps saturation 0 rather than dividing by zero
	h, s, v = RGBToHSV(0, 0, 0)
	assert.Equal(t, 0.0, h)
	assert.Equal(t, 0.0, s)
	assert.Equal(t, 0.0, v)

	for _, c := range [][3]float64{{0.2, 0.4, 0.9}, {0.9, 0.1, 0.3}, {0.31, 0.72, 0.06}} {
		h, s, v := RGBToHSV(c[0], c[1], c[2])
		r, g, b := HSVToRGB(h, s, v)
		assert.InDelta(t, c[0], r, 1e-12)
		assert.InDelta(t, c[1], g, 1e-12)
		assert.InDelta(t, c[2], b, 1e-12)
	}
}

func TestHWB(t *testing.T) {
	h, w, bk := RGBToHWB(0.4, 0.8, 0.4)
	assert.InDelta(t, 120, h, 1e-12)
	assert.InDelta(t, 0.4, w, 1e-12)
	assert.InDelta(t, 0.2, bk, 1e-12)

	// whiteness is the min component, blackness one minus the max
	h, w, bk = RGBToHWB(0.3, 0.3, 0.3)
	assert.Equal(t, 0.0, h)
	assert.InDelta(t, 0.3, w, 1e-12)
	assert.InDelta(t, 0.7, bk, 1e-12)

	r, g, b := HWBToRGB(0, 0, 1)
	assert.Equal(t, 0.0, r)
	assert.Equal(t, 0.0, g)
	assert.Equal(t, 0.0, b)

	for _, c := range [][3]float64{{0.2, 0.4, 0.9}, {0.9, 0.1, 0.3}, {0.31, 0.72, 0.06}} {
		h, w, bk := RGBToHWB(c[0], c[1], c[2])
		r, g, b := HWBToRGB(h, w, bk)
		assert.InDelta(t, c[0], r, 1e-12)
		assert.InDelta(t, c[1], g, 1e-12)
		assert.InDelta(t, c[2], b, 1e-12)
	}
}
