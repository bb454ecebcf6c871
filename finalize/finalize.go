// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package finalize appends the BioLizard footer to a chart and
// writes the result.
//
// The footer is a strip as wide as the rendered chart holding a rule
// along its top edge, a left-aligned caption and the logo at the
// right. The chart and footer are composed in memory and written in
// one step, so a failed call leaves no partial output behind.
package finalize

import (
	"fmt"
	"image"
	"io"
	"math"
	"strings"

	"github.com/lizard-bio/lizardstyle/fonts"
	"github.com/lizard-bio/lizardstyle/lzerr"
	"github.com/lizard-bio/lizardstyle/style"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/wcharczuk/go-chart/v2"
)

// Defaults for the zero values of Options.
const (
	DefaultFontSize      = 12
	DefaultOutputName    = "TempLizardPlot"
	DefaultDPI           = 300
	DefaultPDFResolution = 100
	DefaultFooterHeight  = 0.4 // inches
)

// A Chart is anything that renders itself through go-chart. Every
// go-chart chart type qualifies, as does Image.
type Chart interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Image is a Chart that has already been rendered.
type Image struct {
	image.Image
}

// Render writes the image as a PNG. Finalize uses the image directly
// and never calls Render.
func (i Image) Render(_ chart.RendererProvider, w io.Writer) error {
	return encodePNG(w, i.Image)
}

// Format is an output file format.
type Format int

const (
	PNG Format = iota
	PDF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case PDF:
		return "pdf"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the file name extension for f, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat parses "png" or "pdf", ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return PNG, nil
	case "pdf":
		return PDF, nil
	}
	return 0, lzerr.New(lzerr.Configuration, "finalize.ParseFormat", "unknown format %q", s)
}

// Options configures Finalize. The zero value selects the defaults.
type Options struct {
	// FontSize is the caption size in points.
	FontSize float64

	Format Format

	// OutputName is the base name of the output file, without
	// extension. The file is written to the working directory.
	OutputName string

	// Path, if set, is the exact output path. No extension is
	// added, and OutputName is ignored.
	Path string

	// DPI is the resolution at which the chart and footer are
	// rasterized.
	DPI float64

	// PDFResolution is the pixels-per-inch at which the raster is
	// placed on the PDF page. It is independent of DPI, so a 300
	// DPI raster placed at 100 gives a page three times the
	// chart's nominal size.
	PDFResolution float64

	// FooterHeight is the footer height in inches.
	FooterHeight float64

	// Margins insets the plot area of go-chart charts, as
	// fractions of the chart size. If nil, the style's margins are
	// used.
	Margins *style.Margins

	// Style supplies fonts and colors. If nil, style.Default() is
	// used.
	Style *style.Style

	// Fonts resolves the style's font family. If nil, the bundled
	// fonts are used.
	Fonts *fonts.Registry

	// Logo is the path on Fs of the logo image. If empty, the
	// bundled logo is used.
	Logo string

	// Fs is the file system the logo is read from and the output
	// written to. If nil, the operating system's file system is
	// used.
	Fs afero.Fs

	// Log receives progress messages. If nil, nothing is logged.
	Log logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if o.OutputName == "" {
		o.OutputName = DefaultOutputName
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.PDFResolution == 0 {
		o.PDFResolution = DefaultPDFResolution
	}
	if o.FooterHeight == 0 {
		o.FooterHeight = DefaultFooterHeight
	}
	if o.Style == nil {
		s := style.Default()
		o.Style = &s
	}
	if o.Margins == nil {
		m := o.Style.Margins()
		o.Margins = &m
	}
	if o.Fonts == nil {
		o.Fonts = fonts.NewRegistry()
	}
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Log == nil {
		l := logrus.New()
		l.Out = io.Discard
		o.Log = l
	}
	return o
}

func (o Options) check() error {
	const op = "finalize.Options"
	for _, v := range []struct {
		name string
		x    float64
	}{
		{"font size", o.FontSize},
		{"DPI", o.DPI},
		{"PDF resolution", o.PDFResolution},
		{"footer height", o.FooterHeight},
	} {
		if !(v.x > 0) || math.IsInf(v.x, 0) {
			return lzerr.New(lzerr.Configuration, op, "%s must be positive, got %g", v.name, v.x)
		}
	}
	if o.Format != PNG && o.Format != PDF {
		return lzerr.New(lzerr.Configuration, op, "unknown format %v", o.Format)
	}
	m := *o.Margins
	if m.Left < 0 || m.Right < 0 || m.Bottom < 0 || m.Left+m.Right >= 1 || m.Bottom >= 1 {
		return lzerr.New(lzerr.Configuration, op, "bad margins %+v", m)
	}
	return nil
}

// OutputPath returns the path Finalize writes to for opts.
func OutputPath(opts Options) string {
	if opts.Path != "" {
		return opts.Path
	}
	name := opts.OutputName
	if name == "" {
		name = DefaultOutputName
	}
	return name + opts.Format.Ext()
}

// Finalize renders c, appends the footer with caption and writes the
// combined image. It returns the path written.
//
// Finalize does not modify c. Go-chart charts are copied, styled with
// opts.Style, given the configured margins and rescaled so that their
// size in inches is kept at opts.DPI.
func Finalize(c Chart, caption string, opts Options) (string, error) {
	const op = "finalize.Finalize"
	o := opts.withDefaults()
	if err := o.check(); err != nil {
		return "", err
	}
	path := OutputPath(o)
	log := o.Log.WithFields(logrus.Fields{"path": path, "format": o.Format})

	// Everything that can fail for want of a resource is resolved
	// before any rendering or writing.
	logo, err := loadLogo(o.Fs, o.Logo)
	if err != nil {
		return "", err
	}
	face, err := o.Style.Font(o.Fonts)
	if err != nil {
		return "", err
	}

	plot, err := rasterize(c, face, o)
	if err != nil {
		return "", err
	}
	w, h1 := plot.Bounds().Dx(), plot.Bounds().Dy()
	log.WithFields(logrus.Fields{"width": w, "height": h1}).Debug("rendered chart")

	footer, err := drawFooter(w, caption, face, logo, o)
	if err != nil {
		return "", err
	}
	log.WithField("height", footer.Bounds().Dy()).Debug("rendered footer")

	img := stack(plot, footer)
	data, err := encode(img, o.Format, o.PDFResolution)
	if err != nil {
		return "", &lzerr.Error{Kind: lzerr.IO, Op: op, Path: path, Err: err}
	}
	if err := writeFile(o.Fs, path, data); err != nil {
		return "", err
	}
	log.WithField("bytes", len(data)).Info("wrote finalized plot")
	return path, nil
}
