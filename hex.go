// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorpro

import (
	"fmt"
	"strings"
)

// FromHex parses a hex color string such as #F00, #FF0000, or
// #FF0000CC, with or without the leading #, and resolves it across
// all color spaces.
func FromHex(hex string) (ColorPro, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	a := 255
	switch len(hex) {
	case 3:
		fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return ColorPro{}, fmt.Errorf("colorpro: could not parse hex color %q", hex)
	}
	return FromSpaceU8(SRGBA, uint8(r), uint8(g), uint8(b), uint8(a))
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-
// component string. Alpha is included only when the color is not
// fully opaque.
func (c ColorPro) AsHex() string {
	r, g, b, a := c.SRGBAUint8()
	if a == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}
