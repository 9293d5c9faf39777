// Copyright (c) 2025, The ColorPro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Colorpro inspects colors from the command line. It resolves a hex
// string or an SVG 1.1 color name across all supported color spaces
// and prints the full record, the scalar correlates, and the nearest
// named colors. Given a second color, it also prints a ramp between
// the two, blended in the configured space.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/image/colornames"

	"github.com/zipxing/colorpro"
)

var (
	flagConfig  = flag.String("config", "", "path to a TOML config file")
	flagSpace   = flag.String("space", "", "color space for ramps, for example OKLchA or HSLA")
	flagSteps   = flag.Int("steps", 0, "number of colors in a ramp")
	flagSimilar = flag.Int("similar", -1, "number of similar named colors to list")
	flagLog     = flag.String("log", "", "log level: debug, info, warn, or error")
	flagLogFile = flag.String("logfile", "", "write diagnostic logs to this file")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg, err := loadConfig(*flagConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, "colorpro:", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	initLogger(cfg.Logging)
	defer syncLogger()

	args := flag.Args()
	if len(args) == 0 || len(args) > 2 {
		usage()
		os.Exit(2)
	}

	out := termenv.NewOutput(os.Stdout)

	c, err := resolve(args[0])
	if err != nil {
		logger.Fatalw("unknown color", "input", args[0], "err", err)
	}
	logger.Debugw("resolved color", "input", args[0], "hex", c.AsHex())

	printRecord(out, args[0], c)
	printSimilar(out, c, cfg.Similar)

	if len(args) == 2 {
		c2, err := resolve(args[1])
		if err != nil {
			logger.Fatalw("unknown color", "input", args[1], "err", err)
		}
		printRamp(out, c, c2, cfg)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: colorpro [flags] <color> [<color2>]

A color is a hex string such as #F00, #FF0000, or #FF0000CC, or an
SVG 1.1 color name such as steelblue. With two colors, a ramp from
the first to the second is printed as well.

flags:
`)
	flag.PrintDefaults()
}

// applyFlags applies flag overrides on top of the loaded config.
func applyFlags(cfg *Config) {
	if *flagSpace != "" {
		cfg.Space = *flagSpace
	}
	if *flagSteps > 0 {
		cfg.Steps = *flagSteps
	}
	if *flagSimilar >= 0 {
		cfg.Similar = *flagSimilar
	}
	if *flagLog != "" {
		cfg.Logging.Level = *flagLog
	}
	if *flagLogFile != "" {
		cfg.Logging.File = *flagLogFile
	}
}

// resolve turns a command line argument into a color record.
func resolve(arg string) (colorpro.ColorPro, error) {
	if named, ok := colornames.Map[strings.ToLower(arg)]; ok {
		return colorpro.FromColor(named), nil
	}
	return colorpro.FromHex(arg)
}

// swatch returns a colored block for terminals that support it.
func swatch(out *termenv.Output, c colorpro.ColorPro, width int) string {
	r, g, b, _ := c.SRGBAUint8()
	hex := fmt.Sprintf("#%02x%02x%02x", r, g, b)
	return out.String(strings.Repeat(" ", width)).Background(out.Color(hex)).String()
}

// printRecord prints the color in every supported space along with
// its scalar correlates.
func printRecord(out *termenv.Output, name string, c colorpro.ColorPro) {
	fmt.Fprintf(out, "%s %s  %s\n\n", swatch(out, c, 4), c.AsHex(), name)
	for cs := colorpro.SRGBA; cs < colorpro.SpacesN; cs++ {
		d, _ := c.In(cs)
		fmt.Fprintf(out, "  %-10v %10.4f %10.4f %10.4f %10.4f\n", cs, d[0], d[1], d[2], d[3])
	}
	fmt.Fprintf(out, "\n  luminance %.4f  brightness %.4f  chroma %.4f  hue %.1f  dark %v\n",
		c.Luminance(), c.Brightness(), c.Chroma(), c.Hue(), c.IsDark())
}

// printSimilar lists the nearest named colors by CIEDE2000 distance.
func printSimilar(out *termenv.Output, c colorpro.ColorPro, n int) {
	similar := colorpro.FindSimilar(c, n)
	if len(similar) == 0 {
		return
	}
	lab, _ := c.In(colorpro.LabA)
	fmt.Fprint(out, "\nsimilar:\n")
	for _, nc := range similar {
		ncLab, _ := nc.Color.In(colorpro.LabA)
		fmt.Fprintf(out, "  %s %-20s %s  dE2000 %.2f\n",
			swatch(out, nc.Color, 2), nc.Name, nc.Color.AsHex(),
			colorpro.DeltaECIEDE2000(lab, ncLab))
	}
}

// printRamp prints an evenly spaced ramp between two colors, blended
// in the configured space.
func printRamp(out *termenv.Output, from, to colorpro.ColorPro, cfg *Config) {
	var cs colorpro.ColorSpace
	if err := cs.UnmarshalText([]byte(cfg.Space)); err != nil {
		logger.Fatalw("bad ramp space", "space", cfg.Space, "err", err)
	}
	ramp := colorpro.Ramp([]colorpro.ColorPro{from, to}, cfg.Steps, cs)
	if ramp == nil {
		logger.Fatalw("ramp needs at least two steps", "steps", cfg.Steps)
	}
	fmt.Fprintf(out, "\nramp in %v:\n  ", cs)
	for _, c := range ramp {
		fmt.Fprint(out, swatch(out, c, 2))
	}
	fmt.Fprint(out, "\n  ")
	for _, c := range ramp {
		fmt.Fprintf(out, "%s ", c.AsHex())
	}
	fmt.Fprintln(out)
}
