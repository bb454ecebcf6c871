// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style describes the BioLizard visual defaults and applies
// them to go-chart charts.
//
// A Style is an immutable value. It is read from a stylesheet of
// "key: value" lines whose keys follow matplotlib's rc names:
//
//	# comment
//	font.family: Lato, Roboto
//	font.size: 10
//	axes.prop_cycle: #01a086, #1e2237, #e9b940
//
// Keys this package does not understand are kept and can be read
// back with Extra.
package style

import (
	"bytes"
	"errors"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/lizard-bio/lizardstyle/assets"
	"github.com/lizard-bio/lizardstyle/fonts"
	"github.com/lizard-bio/lizardstyle/lzerr"
	"github.com/lizard-bio/lizardstyle/palette"
	"github.com/spf13/afero"
)

// Margins are the insets of the plot area as fractions of the figure
// size.
type Margins struct {
	Left, Bottom, Right float64
}

// A Style is a set of visual defaults. The zero Style is not useful;
// start from Default or Load.
type Style struct {
	fontFamily []string
	fontSize   float64 // points
	titleSize  float64 // points

	textColor  color.RGBA
	edgeColor  color.RGBA
	axesFace   color.RGBA
	figureFace color.RGBA
	axesWidth  float64 // points
	lineWidth  float64 // points
	dpi        float64
	margins    Margins
	cycle      palette.Discrete
	extra      map[string]string
	extraKeys  []string // in file order
}

// Default returns the BioLizard house style.
func Default() Style {
	s, err := parse(fallback(), bytes.NewReader(assets.Stylesheet))
	if err != nil {
		panic("style: bundled stylesheet: " + err.Error())
	}
	return s
}

// Load reads a stylesheet from path on fs. Keys missing from the
// file take their values from Default.
func Load(fs afero.Fs, path string) (Style, error) {
	f, err := fs.Open(path)
	if err != nil {
		return Style{}, &lzerr.Error{Kind: lzerr.ResourceNotFound, Op: "style.Load", Path: path, Err: err}
	}
	defer f.Close()
	s, err := Parse(f)
	var e *lzerr.Error
	if errors.As(err, &e) {
		e.Path = path
	}
	return s, err
}

// FontFamily returns the font families to try, in order.
func (s Style) FontFamily() []string { return append([]string(nil), s.fontFamily...) }

// FontSize returns the base text size in points.
func (s Style) FontSize() float64 { return s.fontSize }

// TitleSize returns the chart title size in points.
func (s Style) TitleSize() float64 { return s.titleSize }

// TextColor returns the color of titles, labels and captions.
func (s Style) TextColor() color.RGBA { return s.textColor }

// EdgeColor returns the color of axis lines.
func (s Style) EdgeColor() color.RGBA { return s.edgeColor }

// AxesFaceColor returns the background color of the plot area.
func (s Style) AxesFaceColor() color.RGBA { return s.axesFace }

// FigureFaceColor returns the background color of the figure.
func (s Style) FigureFaceColor() color.RGBA { return s.figureFace }

// AxesLineWidth returns the width of axis lines in points.
func (s Style) AxesLineWidth() float64 { return s.axesWidth }

// LineWidth returns the width of data lines in points.
func (s Style) LineWidth() float64 { return s.lineWidth }

// DPI returns the figure resolution.
func (s Style) DPI() float64 { return s.dpi }

// Margins returns the default plot-area insets.
func (s Style) Margins() Margins { return s.margins }

// Cycle returns the series color cycle.
func (s Style) Cycle() palette.Discrete { return append(palette.Discrete(nil), s.cycle...) }

// Extra returns the raw value of a key this package does not
// interpret.
func (s Style) Extra(key string) (string, bool) {
	v, ok := s.extra[key]
	return v, ok
}

// WithFontFamily returns a copy of s using the given font families.
func (s Style) WithFontFamily(families ...string) Style {
	s.fontFamily = append([]string(nil), families...)
	return s
}

// WithFontSize returns a copy of s with base text size pt.
func (s Style) WithFontSize(pt float64) Style {
	s.fontSize = pt
	return s
}

// WithCycle returns a copy of s whose series colors cycle through d.
// An empty d leaves the cycle unchanged.
func (s Style) WithCycle(d palette.Discrete) Style {
	if len(d) == 0 {
		return s
	}
	s.cycle = append(palette.Discrete(nil), d...)
	return s
}

// WithDPI returns a copy of s with figure resolution dpi.
func (s Style) WithDPI(dpi float64) Style {
	s.dpi = dpi
	return s
}

// WithMargins returns a copy of s with plot-area insets m.
func (s Style) WithMargins(m Margins) Style {
	s.margins = m
	return s
}

// Font resolves the style's font family list through reg. If reg is
// nil, a registry of the bundled fonts is used.
func (s Style) Font(reg *fonts.Registry) (*truetype.Font, error) {
	if reg == nil {
		reg = fonts.NewRegistry()
	}
	f, _, err := reg.Resolve(s.fontFamily...)
	return f, err
}
