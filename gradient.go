// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorpro

import (
	"math"
	"slices"
)

// Stop is one anchor of a gradient: a color pinned at a position
// within [0, 1].
type Stop struct {
	Color ColorPro
	Pos   float64
}

// ColorGradient interpolates between a sequence of color stops kept
// sorted by position. The zero value is an empty gradient ready for
// stops.
type ColorGradient struct {
	stops []Stop
}

// Stops returns the gradient's stops in position order.
func (g *ColorGradient) Stops() []Stop {
	return g.stops
}

// AddStop inserts a color at the given position, clamped to [0, 1].
// Adding at a position that already has a stop replaces that stop's
// color, so positions stay unique. It returns the gradient for
// chaining.
func (g *ColorGradient) AddStop(color ColorPro, pos float64) *ColorGradient {
	pos = clamp01(pos)
	for i, s := range g.stops {
		if s.Pos == pos {
			g.stops[i].Color = color
			return g
		}
		if s.Pos > pos {
			g.stops = slices.Insert(g.stops, i, Stop{color, pos})
			return g
		}
	}
	g.stops = append(g.stops, Stop{color, pos})
	return g
}

// Sample returns the gradient color at the given position within
// [0, 1], blended in the given color space between the two nearest
// stops. It reports false when the gradient has fewer than two stops.
func (g *ColorGradient) Sample(pos float64, cs ColorSpace) (ColorData, bool) {
	if len(g.stops) < 2 {
		return ColorData{}, false
	}
	pos = clamp01(pos)

	li := -1
	for i := len(g.stops) - 1; i >= 0; i-- {
		if pos >= g.stops[i].Pos {
			li = i
			break
		}
	}
	ri := -1
	for i, s := range g.stops {
		if pos <= s.Pos {
			ri = i
			break
		}
	}
	if li < 0 || ri < 0 {
		return ColorData{}, false
	}

	left, right := g.stops[li], g.stops[ri]
	lc, ok := left.Color.In(cs)
	if !ok {
		return ColorData{}, false
	}
	rc, ok := right.Color.In(cs)
	if !ok {
		return ColorData{}, false
	}
	if li == ri {
		return lc, true
	}
	fra := clamp01((pos - left.Pos) / (right.Pos - left.Pos))
	return mix(lc, rc, fra), true
}

// mix blends two tuples channel-wise, taking channel 2 around the
// shortest angular path so that hue-bearing spaces do not sweep the
// long way around the wheel. A nearly achromatic endpoint, with
// channel 1 below 0.1, borrows the other endpoint's angle instead of
// contributing a meaningless one.
func mix(c1, c2 ColorData, fra float64) ColorData {
	selfHue := c1[2]
	if c1[1] < 0.1 {
		selfHue = c2[2]
	}
	otherHue := c2[2]
	if c2[1] < 0.1 {
		otherHue = c1[2]
	}
	return ColorData{
		lerp(c1[0], c2[0], fra),
		lerp(c1[1], c2[1], fra),
		InterpolateAngle(selfHue, otherHue, fra),
		lerp(c1[3], c2[3], fra),
	}
}

// InterpolateAngle blends two angles in degrees along the shortest arc
// between them, returning a result normalized to [0, 360).
func InterpolateAngle(a, b, fra float64) float64 {
	paths := [3][2]float64{{a, b}, {a, b + 360}, {a + 360, b}}
	best := paths[0]
	for _, p := range paths[1:] {
		if math.Abs(p[0]-p[1]) < math.Abs(best[0]-best[1]) {
			best = p
		}
	}
	return modPositive(lerp(best[0], best[1], fra), 360)
}

// Ramp builds a smooth n-color ramp through the given colors, spacing
// them evenly as gradient stops and resampling in the given space. It
// returns nil when fewer than two colors or fewer than two outputs
// are requested.
func Ramp(colors []ColorPro, n int, cs ColorSpace) []ColorPro {
	if len(colors) < 2 || n < 2 {
		return nil
	}
	var g ColorGradient
	k := len(colors)
	for i, c := range colors {
		g.AddStop(c, float64(i)/float64(k-1))
	}
	out := make([]ColorPro, 0, n)
	for i := 0; i < n; i++ {
		data, ok := g.Sample(float64(i)/float64(n-1), cs)
		if !ok {
			return nil
		}
		c, err := FromSpace(cs, data)
		if err != nil {
			return nil
		}
		out = append(out, c)
	}
	return out
}
