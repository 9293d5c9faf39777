// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXYZ(t *testing.T) {
	x, y, z := SRGBLinToXYZ(0.5, 0.6, 0.7)
	assert.InDelta(t, 0.54708011, x, 1e-8)
	assert.InDelta(t, 0.58595027, y, 1e-8)
	assert.InDelta(t, 0.74639502, z, 1e-8)

	// the matrix pair are approximate inverses, good to about 1e-4
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	assert.InDelta(t, 0.5, rl, 0.001)
	assert.InDelta(t, 0.6, gl, 0.001)
	assert.InDelta(t, 0.7, bl, 0.001)

	// linear white lands near the D65 reference white
	x, y, z = SRGBLinToXYZ(1, 1, 1)
	assert.InDelta(t, WhiteD65[0], x, 0.001)
	assert.InDelta(t, WhiteD65[1], y, 0.001)
	assert.InDelta(t, WhiteD65[2], z, 0.001)
}
