// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/lizard-bio/lizardstyle/finalize"
	"github.com/lizard-bio/lizardstyle/fonts"
	"github.com/lizard-bio/lizardstyle/lzerr"
	"github.com/lizard-bio/lizardstyle/style"
	"github.com/spf13/cobra"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func (a *app) plotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "Plot columns of numbers and add the BioLizard footer",
		Long: `Plot reads columns of numbers from file, or standard input if file is
omitted or "-", and plots every column after the first against the
first. An optional first line of column names labels the series.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return a.plot(cmd.InOrStdin(), cmd.OutOrStdout(), path)
		},
	}
	f := cmd.Flags()
	f.String(keyCaption, "", "footer caption, such as the data source")
	f.String(keyTitle, "", "chart title")
	f.Float64(keyFontSize, finalize.DefaultFontSize, "caption size in points")
	f.Bool(keyPDF, false, "write a PDF instead of a PNG")
	f.StringP(keyOutput, "o", "", "write to `path` exactly, ignoring --name")
	f.String(keyName, finalize.DefaultOutputName, "output file name without extension")
	f.Float64(keyDPI, finalize.DefaultDPI, "output resolution")
	f.String(keyLogo, "", "footer logo `file` (default: bundled logo)")
	f.String(keyStyle, "", "stylesheet `file` (default: bundled style)")
	f.String(keyFonts, "", "load TrueType fonts from `dir`")
	f.Int(keyWidth, 1024, "chart width in pixels at the style's DPI")
	f.Int(keyHeight, 600, "chart height in pixels at the style's DPI")
	f.Bool(keyTable, false, "print the parsed data instead of plotting it")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		a.bind(cmd.Flags(), keyCaption, keyTitle, keyFontSize, keyPDF, keyOutput, keyName,
			keyDPI, keyLogo, keyStyle, keyFonts, keyWidth, keyHeight, keyTable)
	}
	return cmd
}

func (a *app) plot(stdin io.Reader, stdout io.Writer, path string) error {
	const op = "lizardplot.plot"
	r := stdin
	if path != "-" {
		f, err := a.fs.Open(path)
		if err != nil {
			return &lzerr.Error{Kind: lzerr.ResourceNotFound, Op: op, Path: path, Err: err}
		}
		defer f.Close()
		r = f
	}
	d, err := parseData(r)
	if err != nil {
		return err
	}
	a.log.WithField("rows", d.rows()).Debugf("read %s", path)

	if a.v.GetBool(keyTable) {
		return table.Fprint(stdout, d.table())
	}

	st, err := a.style()
	if err != nil {
		return err
	}
	reg := fonts.NewRegistry()
	if dir := a.v.GetString(keyFonts); dir != "" {
		fams, err := reg.LoadDir(a.fs, dir)
		if err != nil {
			return err
		}
		a.log.WithField("families", fams).Debug("loaded fonts")
	}

	format := finalize.PNG
	if a.v.GetBool(keyPDF) {
		format = finalize.PDF
	}
	c := d.chart(st, a.v.GetString(keyTitle), a.v.GetInt(keyWidth), a.v.GetInt(keyHeight))
	out, err := finalize.Finalize(c, a.v.GetString(keyCaption), finalize.Options{
		FontSize:   a.v.GetFloat64(keyFontSize),
		Format:     format,
		OutputName: a.v.GetString(keyName),
		Path:       a.v.GetString(keyOutput),
		DPI:        a.v.GetFloat64(keyDPI),
		Style:      &st,
		Fonts:      reg,
		Logo:       a.v.GetString(keyLogo),
		Fs:         a.fs,
		Log:        a.log,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

func (a *app) style() (style.Style, error) {
	if path := a.v.GetString(keyStyle); path != "" {
		return style.Load(a.fs, path)
	}
	return style.Default(), nil
}

// chart returns a line chart of d with one series per column after
// the first. Series colors follow the style's color cycle.
func (d *dataset) chart(st style.Style, title string, width, height int) chart.Chart {
	cycle := st.Cycle()
	c := chart.Chart{
		Title:        title,
		Width:        width,
		Height:       height,
		DPI:          st.DPI(),
		ColorPalette: st.ColorPalette(),
		XAxis:        chart.XAxis{Name: d.names[0]},
	}
	for i := 1; i < len(d.cols); i++ {
		col := cycle.At(i - 1)
		c.Series = append(c.Series, chart.ContinuousSeries{
			Name: d.names[i],
			Style: chart.Style{
				StrokeColor: drawing.Color{R: col.R, G: col.G, B: col.B, A: col.A},
			},
			XValues: d.cols[0],
			YValues: d.cols[i],
		})
	}
	if len(c.Series) == 1 {
		c.YAxis.Name = d.names[1]
	} else {
		c.Elements = []chart.Renderable{chart.Legend(&c)}
	}
	return c
}
