// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hct implements the HCT color system, which pairs the hue and
// chroma appearance correlates from CAM16 with the tone (CIE L*)
// lightness scale. Tone is linear in the human perception of lightness,
// so the three axes can be adjusted independently with predictable
// perceptual results.
package hct

import (
	"math"
	"sync"

	"github.com/zipxing/colorpro/cam16"
	"github.com/zipxing/colorpro/cie"
)

// view is the viewing environment under which hue and chroma are
// measured. The background is a mid gray of L* 50 and the adapting
// luminance is derived from it.
var view = sync.OnceValue(func() *cam16.View {
	bgY := cie.LToY(50)
	return cam16.NewView(cie.WhiteD65, 200.0/math.Pi*bgY, bgY*100, cam16.Average, false)
})

// FromXYZ returns the hue, chroma, and tone of the color with the
// given XYZ coordinates (Y on a 0-1 scale). A color with zero
// luminance has zero hue and chroma.
func FromXYZ(x, y, z float64) (hue, chroma, tone float64) {
	tone = cie.YToL(y)
	if tone == 0 {
		return 0, 0, 0
	}
	cam := cam16.FromXYZView(x, y, z, view())
	return cam.Hue, cam.Chroma, tone
}

const (
	// toneThreshold is the luminance residual below which a tone
	// solve is taken as converged.
	toneThreshold = 2e-12

	// maxAttempts bounds the Newton iterations per solve.
	maxAttempts = 15
)

// ToXYZ returns the XYZ coordinates of the color with the given hue,
// chroma, and tone. The CAM16 lightness that realizes the requested
// tone has no closed form, so it is solved by Newton iteration on the
// luminance. If the iteration fails to converge, the lightness with
// the smallest residual seen is used.
func ToXYZ(hue, chroma, tone float64) (x, y, z float64) {
	if tone == 0 {
		return 0, 0, 0
	}
	want := cie.LToY(tone)
	vw := view()

	j := lightnessEstimate(tone)
	best := j
	last := math.Inf(1)
	for attempt := 0; attempt <= maxAttempts; attempt++ {
		x, y, z = cam16.FromJCH(j, chroma, hue, vw).XYZView(vw)
		delta := math.Abs(y - want)
		if delta < last {
			if delta <= toneThreshold {
				return x, y, z
			}
			best = j
			last = delta
		}
		j -= (y - want) * j / (2 * y)
	}
	return cam16.FromJCH(best, chroma, hue, vw).XYZView(vw)
}

// lightnessEstimate returns the starting CAM16 lightness for a tone
// solve, a quadratic fit of lightness against L*.
func lightnessEstimate(tone float64) float64 {
	if tone > 0 {
		return 0.00379058511492914*tone*tone + 0.608983189401032*tone + 0.9155088574762233
	}
	return 9.514440756550361e-06*tone*tone + 0.08693057439788597*tone - 21.928975842194614
}
