// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package finalize

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"reflect"

	"github.com/golang/freetype/truetype"
	"github.com/lizard-bio/lizardstyle/lzerr"
	"github.com/lizard-bio/lizardstyle/style"
	"github.com/wcharczuk/go-chart/v2"
)

// rasterize renders c at o.DPI and returns the result.
func rasterize(c Chart, face *truetype.Font, o Options) (image.Image, error) {
	const op = "finalize.rasterize"
	if img, ok := c.(Image); ok {
		if img.Image == nil || img.Bounds().Empty() {
			return nil, lzerr.New(lzerr.InvalidInput, op, "empty image")
		}
		return img.Image, nil
	}
	if c == nil {
		return nil, lzerr.New(lzerr.InvalidInput, op, "nil chart")
	}
	if v := reflect.ValueOf(c); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, lzerr.New(lzerr.InvalidInput, op, "nil %T", c)
	}

	var buf bytes.Buffer
	if err := prepare(c, face, o).Render(chart.PNG, &buf); err != nil {
		return nil, &lzerr.Error{Kind: lzerr.InvalidInput, Op: op, Err: err}
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, &lzerr.Error{Kind: lzerr.InvalidInput, Op: op, Err: err}
	}
	if img.Bounds().Empty() {
		return nil, lzerr.New(lzerr.InvalidInput, op, "chart rendered to %v", img.Bounds())
	}
	return img, nil
}

// prepare returns a copy of c ready to render at o.DPI. Charts of
// types it does not know are returned unchanged.
func prepare(c Chart, face *truetype.Font, o Options) Chart {
	switch v := c.(type) {
	case *chart.Chart:
		return prepare(*v, face, o)
	case chart.Chart:
		v.Width, v.Height, v.DPI = scale(v.GetWidth(), v.GetHeight(), v.GetDPI(), o.DPI)
		v = o.Style.Apply(v)
		if v.Font == nil {
			v.Font = face
		}
		v.Background.Padding = padding(v.Width, v.Height, *o.Margins, v.DPI)
		return v
	case *chart.BarChart:
		return prepare(*v, face, o)
	case chart.BarChart:
		v.Width, v.Height, v.DPI = scale(v.GetWidth(), v.GetHeight(), v.GetDPI(), o.DPI)
		v = o.Style.StyleBar(v)
		if v.Font == nil {
			v.Font = face
		}
		v.Background.Padding = padding(v.Width, v.Height, *o.Margins, v.DPI)
		return v
	case *chart.StackedBarChart:
		return prepare(*v, face, o)
	case chart.StackedBarChart:
		v.Width, v.Height, v.DPI = scale(v.GetWidth(), v.GetHeight(), v.GetDPI(), o.DPI)
		if v.Font == nil {
			v.Font = face
		}
		v.Background.Padding = padding(v.Width, v.Height, *o.Margins, v.DPI)
		return v
	case *chart.PieChart:
		return prepare(*v, face, o)
	case chart.PieChart:
		v.Width, v.Height, v.DPI = scale(v.GetWidth(), v.GetHeight(), v.GetDPI(), o.DPI)
		if v.Font == nil {
			v.Font = face
		}
		if v.ColorPalette == nil {
			v.ColorPalette = o.Style.ColorPalette()
		}
		return v
	case *chart.DonutChart:
		return prepare(*v, face, o)
	case chart.DonutChart:
		v.Width, v.Height, v.DPI = scale(v.GetWidth(), v.GetHeight(), v.GetDPI(), o.DPI)
		if v.Font == nil {
			v.Font = face
		}
		if v.ColorPalette == nil {
			v.ColorPalette = o.Style.ColorPalette()
		}
		return v
	}
	return c
}

// scale converts a w×h pixel size at dpi to the same size in inches
// at target.
func scale(w, h int, dpi, target float64) (int, int, float64) {
	f := target / dpi
	return int(math.Round(float64(w) * f)), int(math.Round(float64(h) * f)), target
}

// padding converts the margin fractions to a go-chart padding box
// for a w×h chart. The top inset is go-chart's default, scaled to
// dpi.
func padding(w, h int, m style.Margins, dpi float64) chart.Box {
	top := float64(chart.DefaultBackgroundPadding.Top) * dpi / chart.DefaultDPI
	return chart.Box{
		Top:    int(math.Round(top)),
		Left:   int(math.Round(m.Left * float64(w))),
		Right:  int(math.Round(m.Right * float64(w))),
		Bottom: int(math.Round(m.Bottom * float64(h))),
		IsSet:  true,
	}
}
