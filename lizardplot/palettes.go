// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/lizard-bio/lizardstyle/lzerr"
	"github.com/lizard-bio/lizardstyle/palette"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
)

// previewLen is the number of colors shown for each colormap by the
// palettes command.
const previewLen = 5

func (a *app) palettesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List the BioLizard palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPalettes(cmd.OutOrStdout(), palette.DefaultRegistry())
		},
	}
}

func listPalettes(w io.Writer, reg *palette.Registry) error {
	var names, kinds, colors []string
	add := func(name, kind string, d palette.Discrete) {
		names = append(names, name)
		kinds = append(kinds, kind)
		colors = append(colors, strings.Join(d.Hex(), " "))
	}
	for _, name := range palette.DiscreteNames() {
		d, err := palette.DiscreteByName(name)
		if err != nil {
			return err
		}
		add(name, "discrete", d)
	}
	for _, name := range reg.Names() {
		c, _ := reg.Lookup(name)
		add(name, "continuous", c.Discrete(previewLen))
	}
	tab := new(table.Builder).
		Add("name", names).
		Add("kind", kinds).
		Add("colors", colors).
		Done()
	return table.Fprint(w, tab)
}

func (a *app) swatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swatch NAME",
		Short: "Write a PNG strip showing a palette",
		Long: `Swatch writes a PNG strip of the named palette. NAME is a colormap or
discrete palette as listed by the palettes command. Colormaps are
drawn as a smooth gradient, discrete palettes as blocks.`,
		Args: cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			a.bind(cmd.Flags(), keyWidth, keyHeight, keyOutput)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w, h := a.v.GetInt(keyWidth), a.v.GetInt(keyHeight)
			out := a.v.GetString(keyOutput)
			if out == "" {
				out = args[0] + ".png"
			}
			if err := a.swatch(args[0], w, h, out); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().Int(keyWidth, 512, "strip width in pixels")
	cmd.Flags().Int(keyHeight, 64, "strip height in pixels")
	cmd.Flags().StringP(keyOutput, "o", "", "output `path` (default NAME.png)")
	return cmd
}

func (a *app) swatch(name string, w, h int, path string) error {
	const op = "lizardplot.swatch"
	if w < 1 || h < 1 {
		return lzerr.New(lzerr.Configuration, op, "bad swatch size %d×%d", w, h)
	}
	var img image.Image
	if c, ok := palette.DefaultRegistry().Lookup(name); ok {
		img = strip(c.Samples(), w, h, draw.BiLinear)
	} else {
		d, err := palette.DiscreteByName(name)
		if err != nil {
			return err
		}
		img = strip(d, w, h, draw.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return &lzerr.Error{Kind: lzerr.IO, Op: op, Path: path, Err: err}
	}
	if err := afero.WriteFile(a.fs, path, buf.Bytes(), 0o644); err != nil {
		return &lzerr.Error{Kind: lzerr.IO, Op: op, Path: path, Err: err}
	}
	a.log.WithField("path", path).Info("wrote swatch")
	return nil
}

// strip scales a one-pixel-high row of colors to w×h.
func strip(colors []color.RGBA, w, h int, s draw.Scaler) *image.RGBA {
	row := image.NewRGBA(image.Rect(0, 0, len(colors), 1))
	for i, c := range colors {
		row.SetRGBA(i, 0, c)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	s.Scale(dst, dst.Bounds(), row, row.Bounds(), draw.Src, nil)
	return dst
}
