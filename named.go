// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorpro

import (
	"cmp"
	"slices"
	"sync"

	"golang.org/x/image/colornames"
)

// NamedColor pairs an SVG 1.1 color name with its resolved record.
type NamedColor struct {
	Name  string
	Color ColorPro
}

var namedOnce sync.Once
var namedTable []NamedColor

// Named returns the SVG 1.1 color names in alphabetical order, each
// resolved across all color spaces. The table is built once and then
// shared; callers must not modify it.
func Named() []NamedColor {
	namedOnce.Do(func() {
		namedTable = make([]NamedColor, 0, len(colornames.Names))
		for _, name := range colornames.Names {
			c := colornames.Map[name]
			cp, _ := FromSpaceU8(SRGBA, c.R, c.G, c.B, c.A)
			namedTable = append(namedTable, NamedColor{Name: name, Color: cp})
		}
	})
	return namedTable
}

// FindSimilar returns the n named colors nearest to c by CIEDE2000
// distance. Exact matches are skipped, so for a color that is itself
// in the table the results are its true neighbors; note that the SVG
// list contains aliases such as aqua and cyan that resolve to the
// same color and are skipped together.
func FindSimilar(c ColorPro, n int) []NamedColor {
	if n <= 0 {
		return nil
	}
	lab, ok := c.In(LabA)
	if !ok {
		return nil
	}
	type ranked struct {
		nc   NamedColor
		dist float64
	}
	table := Named()
	rs := make([]ranked, 0, len(table))
	for _, nc := range table {
		nl, _ := nc.Color.In(LabA)
		rs = append(rs, ranked{nc, DeltaECIEDE2000(lab, nl)})
	}
	slices.SortStableFunc(rs, func(a, b ranked) int {
		return cmp.Compare(a.dist, b.dist)
	})
	out := make([]NamedColor, 0, n)
	for _, r := range rs {
		if r.dist == 0 {
			continue
		}
		out = append(out, r.nc)
		if len(out) == n {
			break
		}
	}
	return out
}
