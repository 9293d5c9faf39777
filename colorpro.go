// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorpro provides a color record that holds one color in all
// of its supported color spaces at once. A record is built from a
// single (space, value) pair; construction resolves the CIE XYZ anchor
// for that input and fans it out so every space can be read back
// without further conversion. Constructed records are read-only values,
// safe to copy and to share between goroutines.
package colorpro

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/zipxing/colorpro/cam16"
	"github.com/zipxing/colorpro/cie"
	"github.com/zipxing/colorpro/hct"
	"github.com/zipxing/colorpro/hsl"
	"github.com/zipxing/colorpro/oklab"
)

// ColorSpace identifies one of the supported color spaces. The ordinal
// is the slot address of that space within a record, so the set is
// closed and ordered.
type ColorSpace int32

// The supported color spaces and their channel layouts.
const (
	// sRGB: gamma-encoded r, g, b 0-1, alpha 0-1
	SRGBA ColorSpace = iota
	// linear-light RGB: r, g, b 0-1, alpha 0-1
	LinearRGBA
	// CMYK: cyan, magenta, yellow, key, each 0-1; key occupies the alpha slot
	CMYK
	// HSL: hue in degrees 0-360, saturation 0-1, lightness 0-1, alpha 0-1
	HSLA
	// HSV: hue in degrees 0-360, saturation 0-1, value 0-1, alpha 0-1
	HSVA
	// HWB: hue in degrees 0-360, whiteness 0-1, blackness 0-1, alpha 0-1
	HWBA
	// CIE LAB: L* 0-100, a and b roughly -128 to 127, alpha 0-1
	LabA
	// polar LAB: L* 0-100, chroma >= 0, hue in degrees 0-360, alpha 0-1
	LchA
	// OKLab: L 0-1, a and b roughly -0.5 to 0.5, alpha 0-1
	OKLabA
	// polar OKLab: L 0-1, chroma >= 0, hue in degrees 0-360, alpha 0-1
	OKLchA
	// CAM16: lightness J 0-100, colorfulness M, hue in degrees, alpha 0-1
	CAM16A
	// HCT: hue in degrees 0-360, chroma >= 0, tone 0-100, alpha 0-1
	HCTA
	// CIE XYZ tristimulus, normalized so that white has Y = 1, alpha 0-1
	XYZA

	// SpacesN is the number of color spaces.
	SpacesN
)

var spaceNames = [SpacesN]string{
	"SRGBA", "LinearRGBA", "CMYK", "HSLA", "HSVA", "HWBA",
	"LabA", "LchA", "OKLabA", "OKLchA", "CAM16A", "HCTA", "XYZA",
}

// String returns the name of the color space.
func (cs ColorSpace) String() string {
	if cs < 0 || cs >= SpacesN {
		return "ColorSpace(" + strconv.Itoa(int(cs)) + ")"
	}
	return spaceNames[cs]
}

// MarshalText implements encoding.TextMarshaler.
func (cs ColorSpace) MarshalText() ([]byte, error) {
	return []byte(cs.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, matching space
// names case-insensitively.
func (cs *ColorSpace) UnmarshalText(text []byte) error {
	name := string(text)
	for i, n := range spaceNames {
		if strings.EqualFold(name, n) {
			*cs = ColorSpace(i)
			return nil
		}
	}
	return fmt.Errorf("unknown color space %q", name)
}

// ColorData is one four-channel color tuple. The channel meaning
// depends on the space the tuple is stored under; the fourth channel
// is alpha in every space except CMYK, where it carries the key.
type ColorData [4]float64

// ColorPro is a color held simultaneously in every supported color
// space. Each slot fills once and is never overwritten, so a record
// never drifts as it is read from different spaces.
type ColorPro struct {
	spaces [SpacesN]ColorData
	filled [SpacesN]bool
}

// ErrNoAnchor is returned when a record is constructed with no
// populated color space to resolve from.
var ErrNoAnchor = errors.New("no color data available for conversion")

// FromSpace builds a record carrying the given tuple in the given
// space and resolves every other space from it.
func FromSpace(cs ColorSpace, data ColorData) (ColorPro, error) {
	var c ColorPro
	if cs >= 0 && cs < SpacesN {
		c.spaces[cs] = data
		c.filled[cs] = true
	}
	if err := c.fillAllSpaces(); err != nil {
		return ColorPro{}, err
	}
	return c, nil
}

// FromSpaceF64 builds a record from four named channel values in the
// given space.
func FromSpaceF64(cs ColorSpace, v0, v1, v2, v3 float64) (ColorPro, error) {
	return FromSpace(cs, ColorData{v0, v1, v2, v3})
}

// FromSpaceU8 builds a record from four 8-bit channel values scaled by
// 1/255. Only the device spaces SRGBA, LinearRGBA, CMYK, and XYZA
// accept 8-bit channels; any other space seeds an opaque zero tuple.
func FromSpaceU8(cs ColorSpace, v0, v1, v2, v3 uint8) (ColorPro, error) {
	data := ColorData{0, 0, 0, 1}
	switch cs {
	case SRGBA, LinearRGBA, CMYK, XYZA:
		data = ColorData{
			float64(v0) / 255.0,
			float64(v1) / 255.0,
			float64(v2) / 255.0,
			float64(v3) / 255.0,
		}
	}
	return FromSpace(cs, data)
}

// FromGraytone builds an achromatic color from a lightness fraction,
// 0 for black through 1 for white.
func FromGraytone(l float64) ColorPro {
	c, _ := FromSpace(HSLA, ColorData{0, 0, l, 1})
	return c
}

// FromColor builds a record from a standard color.Color, reversing the
// alpha premultiplication.
func FromColor(ci color.Color) ColorPro {
	r, g, b, a := ci.RGBA()
	if a == 0 {
		c, _ := FromSpaceF64(SRGBA, 0, 0, 0, 0)
		return c
	}
	fa := float64(a) / 65535.0
	c, _ := FromSpaceF64(SRGBA,
		float64(r)/65535.0/fa,
		float64(g)/65535.0/fa,
		float64(b)/65535.0/fa,
		fa)
	return c
}

// In returns the tuple cached for the given space. The second value
// reports whether the slot is populated; it is true for every space
// of a successfully constructed record.
func (c ColorPro) In(cs ColorSpace) (ColorData, bool) {
	if cs < 0 || cs >= SpacesN || !c.filled[cs] {
		return ColorData{}, false
	}
	return c.spaces[cs], true
}

// SRGBAUint8 returns the color as four 8-bit sRGB channels. Negative
// out-of-gamut channels clamp to 0 and channels above 1 saturate at
// 255. Alpha is not premultiplied.
func (c ColorPro) SRGBAUint8() (r, g, b, a uint8) {
	s, _ := c.In(SRGBA)
	return channel8(s[0]), channel8(s[1]), channel8(s[2]), channel8(s[3])
}

func channel8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(255.0 * v))
}

// Luminance returns the WCAG relative luminance of the color, computed
// from the linear RGB channels.
// See: <https://www.w3.org/TR/2008/REC-WCAG20-20081211/#relativeluminancedef>
func (c ColorPro) Luminance() float64 {
	l, _ := c.In(LinearRGBA)
	return 0.2126*l[0] + 0.7152*l[1] + 0.0722*l[2]
}

// IsDark reports whether the color reads as dark, using the WCAG
// luminance midpoint.
func (c ColorPro) IsDark() bool {
	return c.Luminance() <= 0.179
}

// Brightness returns the perceived brightness of the gamma-encoded
// sRGB channels on a 0-1 scale.
func (c ColorPro) Brightness() float64 {
	s, _ := c.In(SRGBA)
	return 0.299*s[0] + 0.587*s[1] + 0.114*s[2]
}

// Chroma returns the OKLch chroma of the color.
func (c ColorPro) Chroma() float64 {
	o, _ := c.In(OKLchA)
	return o[1]
}

// Hue returns the OKLch hue of the color in degrees.
func (c ColorPro) Hue() float64 {
	o, _ := c.In(OKLchA)
	return o[2]
}

// RGBA implements the color.Color interface. The premultiplication of
// the channels by alpha happens at this point.
func (c ColorPro) RGBA() (r, g, b, a uint32) {
	s, _ := c.In(SRGBA)
	af := clamp01(s[3])
	r = uint32(clamp01(s[0])*af*65535.0 + 0.5)
	g = uint32(clamp01(s[1])*af*65535.0 + 0.5)
	b = uint32(clamp01(s[2])*af*65535.0 + 0.5)
	a = uint32(af*65535.0 + 0.5)
	return
}

// AsRGBA returns the color as a standard 8-bit color.RGBA, which is
// alpha-premultiplied.
func (c ColorPro) AsRGBA() color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillAllSpaces resolves the XYZ anchor and then derives every
// remaining space from it in a fixed order, skipping any slot already
// populated by the input path.
func (c *ColorPro) fillAllSpaces() error {
	if err := c.makeXYZ(); err != nil {
		return err
	}
	xyza := c.spaces[XYZA]
	c.setData(SRGBA, xyzToSRGBA(xyza))
	srgba := c.spaces[SRGBA]
	c.setData(CMYK, srgbaToCMYK(srgba))
	c.setData(LinearRGBA, xyzToLinear(xyza))
	c.setData(HSLA, srgbaToHSLA(srgba))
	c.setData(HSVA, srgbaToHSVA(srgba))
	c.setData(HWBA, srgbaToHWBA(srgba))
	c.setData(LabA, xyzToLabA(xyza))
	c.setData(LchA, labaToLchA(c.spaces[LabA]))
	c.setData(OKLabA, xyzToOKLabA(xyza))
	c.setData(OKLchA, oklabaToOKLchA(c.spaces[OKLabA]))
	c.setData(CAM16A, xyzToCAM16A(xyza))
	c.setData(HCTA, xyzToHCTA(xyza))
	return nil
}

// setData fills a slot unless it is already populated. First writer
// wins; the seeded input tuple is never recomputed.
func (c *ColorPro) setData(cs ColorSpace, data ColorData) {
	if !c.filled[cs] {
		c.spaces[cs] = data
		c.filled[cs] = true
	}
}

// makeXYZ resolves the XYZ anchor from whichever space the record was
// seeded with, populating the intermediate spaces each path crosses.
func (c *ColorPro) makeXYZ() error {
	if c.filled[XYZA] {
		return nil
	}

	if s, ok := c.In(SRGBA); ok {
		xyza, linear := srgbaToXYZ(s)
		c.setData(LinearRGBA, linear)
		c.setData(XYZA, xyza)
	}
	if d, ok := c.In(CMYK); ok {
		s := cmykToSRGBA(d)
		c.setData(SRGBA, s)
		xyza, linear := srgbaToXYZ(s)
		c.setData(LinearRGBA, linear)
		c.setData(XYZA, xyza)
	}
	if l, ok := c.In(LinearRGBA); ok {
		c.setData(XYZA, linearToXYZ(l))
	}
	if d, ok := c.In(HSLA); ok {
		s := hslaToSRGBA(d)
		c.setData(SRGBA, s)
		xyza, linear := srgbaToXYZ(s)
		c.setData(LinearRGBA, linear)
		c.setData(XYZA, xyza)
	}
	if d, ok := c.In(HSVA); ok {
		s := hsvaToSRGBA(d)
		c.setData(SRGBA, s)
		xyza, linear := srgbaToXYZ(s)
		c.setData(LinearRGBA, linear)
		c.setData(XYZA, xyza)
	}
	if d, ok := c.In(HWBA); ok {
		s := hwbaToSRGBA(d)
		c.setData(SRGBA, s)
		xyza, linear := srgbaToXYZ(s)
		c.setData(LinearRGBA, linear)
		c.setData(XYZA, xyza)
	}
	if d, ok := c.In(LabA); ok {
		c.setData(XYZA, labaToXYZ(d))
	}
	if d, ok := c.In(LchA); ok {
		xyza, laba := lchaToXYZ(d)
		c.setData(LabA, laba)
		c.setData(XYZA, xyza)
	}
	if d, ok := c.In(OKLabA); ok {
		c.setData(XYZA, oklabaToXYZ(d))
	}
	if d, ok := c.In(OKLchA); ok {
		xyza, oklaba := oklchaToXYZ(d)
		c.setData(XYZA, xyza)
		c.setData(OKLabA, oklaba)
	}
	if d, ok := c.In(CAM16A); ok {
		c.setData(XYZA, cam16ToXYZ(d))
	}
	if d, ok := c.In(HCTA); ok {
		c.setData(XYZA, hctToXYZ(d))
	}

	if !c.filled[XYZA] {
		return ErrNoAnchor
	}
	return nil
}

func srgbaToXYZ(s ColorData) (xyza, linear ColorData) {
	rl, gl, bl := cie.SRGBToLinear(s[0], s[1], s[2])
	x, y, z := cie.SRGBLinToXYZ(rl, gl, bl)
	return ColorData{x, y, z, s[3]}, ColorData{rl, gl, bl, s[3]}
}

func xyzToSRGBA(xyza ColorData) ColorData {
	r, g, b := cie.XYZToSRGB(xyza[0], xyza[1], xyza[2])
	return ColorData{r, g, b, xyza[3]}
}

func linearToXYZ(l ColorData) ColorData {
	x, y, z := cie.SRGBLinToXYZ(l[0], l[1], l[2])
	return ColorData{x, y, z, l[3]}
}

func xyzToLinear(xyza ColorData) ColorData {
	rl, gl, bl := cie.XYZToSRGBLin(xyza[0], xyza[1], xyza[2])
	return ColorData{rl, gl, bl, xyza[3]}
}

func hslaToSRGBA(d ColorData) ColorData {
	r, g, b := hsl.HSLToRGB(d[0], d[1], d[2])
	return ColorData{r, g, b, d[3]}
}

func srgbaToHSLA(s ColorData) ColorData {
	h, sat, l := hsl.RGBToHSL(s[0], s[1], s[2])
	return ColorData{h, sat, l, s[3]}
}

func hsvaToSRGBA(d ColorData) ColorData {
	r, g, b := hsl.HSVToRGB(d[0], d[1], d[2])
	return ColorData{r, g, b, d[3]}
}

func srgbaToHSVA(s ColorData) ColorData {
	h, sat, v := hsl.RGBToHSV(s[0], s[1], s[2])
	return ColorData{h, sat, v, s[3]}
}

func hwbaToSRGBA(d ColorData) ColorData {
	r, g, b := hsl.HWBToRGB(d[0], d[1], d[2])
	return ColorData{r, g, b, d[3]}
}

func srgbaToHWBA(s ColorData) ColorData {
	h, w, bk := hsl.RGBToHWB(s[0], s[1], s[2])
	return ColorData{h, w, bk, s[3]}
}

func xyzToLabA(xyza ColorData) ColorData {
	l, a, b := cie.XYZToLAB(xyza[0], xyza[1], xyza[2])
	return ColorData{l, a, b, xyza[3]}
}

func labaToXYZ(d ColorData) ColorData {
	x, y, z := cie.LABToXYZ(d[0], d[1], d[2])
	return ColorData{x, y, z, d[3]}
}

func labaToLchA(d ColorData) ColorData {
	l, ch, h := cie.LABToLCH(d[0], d[1], d[2])
	return ColorData{l, ch, h, d[3]}
}

func lchaToXYZ(d ColorData) (xyza, laba ColorData) {
	l, a, b := cie.LCHToLAB(d[0], d[1], d[2])
	laba = ColorData{l, a, b, d[3]}
	return labaToXYZ(laba), laba
}

func xyzToOKLabA(xyza ColorData) ColorData {
	l, a, b := oklab.XYZToOKLab(xyza[0], xyza[1], xyza[2])
	return ColorData{l, a, b, xyza[3]}
}

func oklabaToXYZ(d ColorData) ColorData {
	x, y, z := oklab.OKLabToXYZ(d[0], d[1], d[2])
	return ColorData{x, y, z, d[3]}
}

func oklabaToOKLchA(d ColorData) ColorData {
	l, ch, h := oklab.OKLabToOKLch(d[0], d[1], d[2])
	return ColorData{l, ch, h, d[3]}
}

func oklchaToXYZ(d ColorData) (xyza, oklaba ColorData) {
	l, a, b := oklab.OKLchToOKLab(d[0], d[1], d[2])
	oklaba = ColorData{l, a, b, d[3]}
	return oklabaToXYZ(oklaba), oklaba
}

func xyzToCAM16A(xyza ColorData) ColorData {
	cam := cam16.FromXYZView(xyza[0], xyza[1], xyza[2], cam16.StdView())
	return ColorData{cam.Lightness, cam.Colorfulness, cam.Hue, xyza[3]}
}

func cam16ToXYZ(d ColorData) ColorData {
	vw := cam16.StdView()
	x, y, z := cam16.FromJMH(d[0], d[1], d[2], vw).XYZView(vw)
	return ColorData{x, y, z, d[3]}
}

func xyzToHCTA(xyza ColorData) ColorData {
	h, ch, t := hct.FromXYZ(xyza[0], xyza[1], xyza[2])
	return ColorData{h, ch, t, xyza[3]}
}

func hctToXYZ(d ColorData) ColorData {
	x, y, z := hct.ToXYZ(d[0], d[1], d[2])
	return ColorData{x, y, z, d[3]}
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

func modPositive(x, y float64) float64 {
	return math.Mod(math.Mod(x, y)+y, y)
}
