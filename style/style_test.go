// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lizard-bio/lizardstyle/fonts"
	"github.com/lizard-bio/lizardstyle/lzerr"
	"github.com/lizard-bio/lizardstyle/palette"
	"github.com/spf13/afero"
	"github.com/wcharczuk/go-chart/v2"
)

var green = color.RGBA{0x01, 0xa0, 0x86, 255}

func TestDefault(t *testing.T) {
	s := Default()
	if diff := cmp.Diff([]string{"Lato", "Roboto", "Go"}, s.FontFamily()); diff != "" {
		t.Errorf("font family (-want +got):\n%s", diff)
	}
	if s.FontSize() != 10 || s.TitleSize() != 14 || s.DPI() != 100 {
		t.Errorf("sizes %v/%v/%v", s.FontSize(), s.TitleSize(), s.DPI())
	}
	if got := s.TextColor(); got != (color.RGBA{0x1e, 0x22, 0x37, 255}) {
		t.Errorf("text color %v", got)
	}
	q, _ := palette.Qualitative(palette.Standard)
	if diff := cmp.Diff(q, s.Cycle()); diff != "" {
		t.Errorf("color cycle is not the qualitative palette (-want +got):\n%s", diff)
	}
	m := s.Margins()
	if m.Left != 0.11 || m.Bottom != 0.13 || !approx(m.Right, 0.05) {
		t.Errorf("margins %+v", m)
	}
	if v, ok := s.Extra("axes.spines.top"); !ok || v != "False" {
		t.Errorf("Extra(axes.spines.top) = %q, %v", v, ok)
	}
}

func TestParse(t *testing.T) {
	for _, test := range []struct {
		input string
		check func(Style) bool
	}{
		{"font.size: 12", func(s Style) bool { return s.FontSize() == 12 }},
		{"  font.size:12  ", func(s Style) bool { return s.FontSize() == 12 }},
		{"# font.size: 12\n\nfont.size: 8", func(s Style) bool { return s.FontSize() == 8 }},
		{"font.size: 12\nfont.size: 9", func(s Style) bool { return s.FontSize() == 9 }},
		{"font.family: 'Lato', Go", func(s Style) bool { return cmp.Equal(s.FontFamily(), []string{"Lato", "Go"}) }},
		{"text.color: 01a086", func(s Style) bool { return s.TextColor() == green }},
		{"text.color: #01A086", func(s Style) bool { return s.TextColor() == green }},
		{"axes.facecolor: none", func(s Style) bool { return s.AxesFaceColor().A == 0 }},
		{"axes.prop_cycle: #000, #fff", func(s Style) bool { return len(s.Cycle()) == 2 && s.Cycle()[1].R == 255 }},
		{"figure.subplot.right: 0.9", func(s Style) bool { return approx(s.Margins().Right, 0.1) }},
		{"svg.fonttype: none", func(s Style) bool { v, _ := s.Extra("svg.fonttype"); return v == "none" }},
		{"lines.linewidth: 2.5", func(s Style) bool { return s.LineWidth() == 2.5 && s.FontSize() == 10 }},
	} {
		s, err := Parse(strings.NewReader(test.input))
		if err != nil {
			t.Errorf("Parse(%q): %v", test.input, err)
			continue
		}
		if !test.check(s) {
			t.Errorf("Parse(%q) = %v", test.input, s)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		input string
		line  string
	}{
		{"font.size 12", "line 1"},
		{"font.size: 12\n: 3", "line 2"},
		{"\n\nfont.size: big", "line 3"},
		{"font.size: -1", "line 1"},
		{"font.size:", "line 1"},
		{"text.color: #12345", "line 1"},
		{"axes.prop_cycle: , ,", "line 1"},
		{"figure.subplot.left: 1.5", "line 1"},
		{"font.family:", "line 1"},
	} {
		_, err := Parse(strings.NewReader(test.input))
		if !errors.Is(err, lzerr.Configuration) {
			t.Errorf("Parse(%q): got %v, want configuration error", test.input, err)
			continue
		}
		if !strings.Contains(err.Error(), test.line) {
			t.Errorf("Parse(%q): error %q does not mention %s", test.input, err, test.line)
		}
	}

	_, err := Parse(strings.NewReader("figure.subplot.left: 0.6\nfigure.subplot.right: 0.5"))
	if !errors.Is(err, lzerr.Configuration) {
		t.Errorf("crossed margins: got %v, want configuration error", err)
	}
}

func TestRoundTrip(t *testing.T) {
	orig, err := Parse(strings.NewReader(`
font.family: Go
font.size: 11.5
text.color: #860202
axes.facecolor: none
figure.subplot.right: 0.9
axes.prop_cycle: #01a086, #e9b940
legend.frameon: False
`))
	if err != nil {
		t.Fatal(err)
	}
	again, err := Parse(strings.NewReader(orig.String()))
	if err != nil {
		t.Fatalf("parsing %q: %v", orig.String(), err)
	}
	if diff := cmp.Diff(orig, again, cmp.AllowUnexported(Style{})); diff != "" {
		t.Errorf("round trip changed the style (-want +got):\n%s", diff)
	}
}

func TestWithDoesNotAlias(t *testing.T) {
	s := Default()
	q := s.Cycle()
	t2 := s.WithFontSize(20).WithCycle(palette.Discrete{green})
	if s.FontSize() != 10 || len(s.Cycle()) != len(q) {
		t.Errorf("With methods modified the receiver")
	}
	if t2.FontSize() != 20 || len(t2.Cycle()) != 1 {
		t.Errorf("With methods did not apply: %v", t2)
	}
	c := t2.Cycle()
	c[0] = color.RGBA{}
	if t2.Cycle()[0] != green {
		t.Errorf("Cycle returned an alias of the style's colors")
	}
}

func TestEmptyCycle(t *testing.T) {
	want := Default().Cycle()
	for _, d := range []palette.Discrete{nil, {}} {
		s := Default().WithCycle(d)
		if diff := cmp.Diff(want, s.Cycle()); diff != "" {
			t.Errorf("WithCycle(%v) changed the cycle (-want +got):\n%s", d, diff)
		}
		// Series colors still resolve.
		if got := s.ColorPalette().GetSeriesColor(3); got.A == 0 {
			t.Errorf("WithCycle(%v): series color 3 is transparent", d)
		}
		s.StyleBar(chart.BarChart{Bars: []chart.Value{{Label: "a", Value: 1}}})
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/styles/big.style", []byte("font.size: 18\n"), 0o644)
	afero.WriteFile(fs, "/styles/bad.style", []byte("font.size: 18\noops\n"), 0o644)

	s, err := Load(fs, "/styles/big.style")
	if err != nil {
		t.Fatal(err)
	}
	if s.FontSize() != 18 || s.TitleSize() != Default().TitleSize() {
		t.Errorf("Load: font size %v, title size %v", s.FontSize(), s.TitleSize())
	}

	_, err = Load(fs, "/styles/bad.style")
	var e *lzerr.Error
	if !errors.As(err, &e) || e.Kind != lzerr.Configuration || e.Path != "/styles/bad.style" {
		t.Errorf("Load(bad.style): got %v", err)
	}
	if _, err := Load(fs, "/styles/missing.style"); !errors.Is(err, lzerr.ResourceNotFound) {
		t.Errorf("Load(missing): got %v, want resource not found", err)
	}
}

func TestFont(t *testing.T) {
	reg := fonts.NewRegistry()
	f, err := Default().Font(reg)
	if err != nil {
		t.Fatal(err)
	}
	roboto, _ := reg.Lookup(fonts.Roboto)
	if f != roboto {
		t.Errorf("default style without Lato did not fall back to Roboto")
	}
	if _, err := Default().WithFontFamily("Comic Sans").Font(reg); !errors.Is(err, lzerr.ResourceNotFound) {
		t.Errorf("unknown family: got %v, want resource not found", err)
	}
}

func TestApply(t *testing.T) {
	s := Default()
	orig := chart.Chart{
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: []float64{0, 1}, YValues: []float64{0, 1}},
			chart.ContinuousSeries{Style: chart.Style{StrokeWidth: 4}, XValues: []float64{0, 1}, YValues: []float64{1, 0}},
		},
	}
	c := s.Apply(orig)

	if c.DPI != 100 || c.TitleStyle.FontSize != 14 || c.XAxis.Style.FontSize != 10 {
		t.Errorf("Apply: DPI %v, title %v, axis font %v", c.DPI, c.TitleStyle.FontSize, c.XAxis.Style.FontSize)
	}
	if got, want := c.Series[0].(chart.ContinuousSeries).Style.StrokeWidth, 1.5*100.0/72; !approx(got, want) {
		t.Errorf("series 0 stroke width %v, want %v", got, want)
	}
	if got := c.Series[1].(chart.ContinuousSeries).Style.StrokeWidth; got != 4 {
		t.Errorf("series 1 stroke width %v, want the explicit 4", got)
	}
	if got := orig.Series[0].(chart.ContinuousSeries).Style.StrokeWidth; got != 0 {
		t.Errorf("Apply modified the caller's series")
	}
	if orig.ColorPalette != nil {
		t.Errorf("Apply modified the caller's chart")
	}

	p := c.ColorPalette
	if got := p.GetSeriesColor(0); got.R != green.R || got.G != green.G || got.B != green.B {
		t.Errorf("series 0 color %v, want BioLizard green", got)
	}
	if got, want := p.GetSeriesColor(12), p.GetSeriesColor(0); got != want {
		t.Errorf("series colors do not cycle: %v != %v", got, want)
	}
	if got := p.TextColor(); got.R != 0x1e || got.B != 0x37 {
		t.Errorf("text color %v", got)
	}
}

func TestStyleBar(t *testing.T) {
	c := Default().StyleBar(chart.BarChart{
		Bars: []chart.Value{{Label: "a", Value: 1}, {Label: "b", Value: 2}},
	})
	if got := c.Bars[0].Style.FillColor; got.R != green.R || got.G != green.G {
		t.Errorf("bar 0 fill %v, want BioLizard green", got)
	}
	if c.Bars[1].Style.FillColor == c.Bars[0].Style.FillColor {
		t.Errorf("bars share a color")
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
