// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"image/color"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ColorPalette returns s as a go-chart color palette.
func (s Style) ColorPalette() chart.ColorPalette {
	return colorPalette{s}
}

type colorPalette struct {
	s Style
}

func (p colorPalette) BackgroundColor() drawing.Color       { return dc(p.s.figureFace) }
func (p colorPalette) BackgroundStrokeColor() drawing.Color { return dc(p.s.figureFace) }
func (p colorPalette) CanvasColor() drawing.Color           { return dc(p.s.axesFace) }
func (p colorPalette) CanvasStrokeColor() drawing.Color     { return dc(p.s.edgeColor) }
func (p colorPalette) AxisStrokeColor() drawing.Color       { return dc(p.s.edgeColor) }
func (p colorPalette) TextColor() drawing.Color             { return dc(p.s.textColor) }

func (p colorPalette) GetSeriesColor(index int) drawing.Color {
	return dc(p.s.cycle.At(index))
}

func dc(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Apply returns a copy of c styled with s. Settings already present
// in c take precedence. Line widths are converted from points to
// pixels at the chart's DPI, so set DPI before calling Apply. Apply
// does not set the font, which depends on a font registry; use Font
// for that.
//
// Series are copied, so the caller's Series slice is not modified.
func (s Style) Apply(c chart.Chart) chart.Chart {
	if c.ColorPalette == nil {
		c.ColorPalette = s.ColorPalette()
	}
	if c.DPI == 0 {
		c.DPI = s.dpi
	}
	px := func(pt float64) float64 { return pt * c.DPI / 72 }
	setDefault(&c.TitleStyle.FontSize, s.titleSize)
	for _, st := range []*chart.Style{
		&c.XAxis.Style, &c.XAxis.NameStyle,
		&c.YAxis.Style, &c.YAxis.NameStyle,
	} {
		setDefault(&st.FontSize, s.fontSize)
		setDefault(&st.StrokeWidth, px(s.axesWidth))
	}

	series := make([]chart.Series, len(c.Series))
	for i, ser := range c.Series {
		switch ser := ser.(type) {
		case chart.ContinuousSeries:
			setDefault(&ser.Style.StrokeWidth, px(s.lineWidth))
			series[i] = ser
		case chart.TimeSeries:
			setDefault(&ser.Style.StrokeWidth, px(s.lineWidth))
			series[i] = ser
		default:
			series[i] = ser
		}
	}
	c.Series = series
	return c
}

// StyleBar returns a copy of c styled with s.
func (s Style) StyleBar(c chart.BarChart) chart.BarChart {
	if c.ColorPalette == nil {
		c.ColorPalette = s.ColorPalette()
	}
	if c.DPI == 0 {
		c.DPI = s.dpi
	}
	setDefault(&c.TitleStyle.FontSize, s.titleSize)
	setDefault(&c.XAxis.FontSize, s.fontSize)
	setDefault(&c.YAxis.Style.FontSize, s.fontSize)
	c.Bars = append([]chart.Value(nil), c.Bars...)
	for i := range c.Bars {
		if c.Bars[i].Style.FillColor.IsZero() {
			col := dc(s.cycle.At(i))
			c.Bars[i].Style.FillColor = col
			c.Bars[i].Style.StrokeColor = col
		}
	}
	return c
}

func setDefault(p *float64, v float64) {
	if *p == 0 {
		*p = v
	}
}
