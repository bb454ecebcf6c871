// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/lizard-bio/lizardstyle/lzerr"
	"github.com/spf13/afero"
)

const squares = `x squares cubes
1 1 1
2 4 8
3 9 27
`

// run runs lizardplot with args on fs and returns its standard
// output.
func run(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	a := newApp(fs)
	a.log.Out = io.Discard
	cmd := a.command()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(squares))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decode(t *testing.T, fs afero.Fs, path string) image.Image {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestPlot(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "squares.txt", []byte(squares), 0o644)
	out, err := run(t, fs, "plot", "squares.txt", "--caption", "Source: arithmetic",
		"--dpi", "100", "--width", "400", "--height", "300")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != "TempLizardPlot.png" {
		t.Errorf("printed %q, want TempLizardPlot.png", got)
	}
	// The style's DPI is 100, so the chart keeps its size; the
	// footer is 0.4 inches.
	if b := decode(t, fs, "TempLizardPlot.png").Bounds(); b != image.Rect(0, 0, 400, 340) {
		t.Errorf("output bounds %v, want 400×340", b)
	}
}

func TestPlotStdin(t *testing.T) {
	fs := afero.NewMemMapFs()
	out, err := run(t, fs, "plot", "--pdf", "--name", "stdin", "--dpi", "100", "--width", "300", "--height", "200")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != "stdin.pdf" {
		t.Errorf("printed %q, want stdin.pdf", got)
	}
	data, _ := afero.ReadFile(fs, "stdin.pdf")
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("stdin.pdf is not a PDF")
	}
}

func TestPlotTable(t *testing.T) {
	fs := afero.NewMemMapFs()
	out, err := run(t, fs, "plot", "-", "--table")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"squares", "cubes", "27"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output %q does not contain %q", out, want)
		}
	}
	if ok, _ := afero.Exists(fs, "TempLizardPlot.png"); ok {
		t.Errorf("--table wrote a plot")
	}
}

func TestPlotConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/etc/lizardplot.toml", []byte(`
name = "fromconfig"
dpi = 100
width = 300
height = 200
`), 0o644)
	out, err := run(t, fs, "plot", "--config", "/etc/lizardplot.toml")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != "fromconfig.png" {
		t.Errorf("printed %q, want fromconfig.png", got)
	}

	// Flags override the file.
	out, err = run(t, fs, "plot", "--config", "/etc/lizardplot.toml", "--name", "fromflag")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != "fromflag.png" {
		t.Errorf("printed %q, want fromflag.png", got)
	}

	if _, err := run(t, fs, "plot", "--config", "/etc/missing.toml"); !errors.Is(err, lzerr.Configuration) {
		t.Errorf("missing config: got %v, want configuration error", err)
	}
}

func TestPlotEnv(t *testing.T) {
	t.Setenv("LIZARDPLOT_NAME", "fromenv")
	t.Setenv("LIZARDPLOT_FONT_SIZE", "9")
	fs := afero.NewMemMapFs()
	out, err := run(t, fs, "plot", "--dpi", "100", "--width", "300", "--height", "200")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != "fromenv.png" {
		t.Errorf("printed %q, want fromenv.png", got)
	}
}

func TestPlotErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "bad.txt", []byte("1 2\n3\n"), 0o644)
	for _, test := range []struct {
		args []string
		want error
	}{
		{[]string{"plot", "missing.txt"}, lzerr.ResourceNotFound},
		{[]string{"plot", "bad.txt"}, lzerr.InvalidInput},
		{[]string{"plot", "--logo", "/nope.png"}, lzerr.ResourceNotFound},
		{[]string{"plot", "--style", "/nope.style"}, lzerr.ResourceNotFound},
		{[]string{"plot", "--fonts", "/nofonts"}, lzerr.ResourceNotFound},
		{[]string{"plot", "--log-level", "loud"}, lzerr.Configuration},
	} {
		if _, err := run(t, fs, test.args...); !errors.Is(err, test.want) {
			t.Errorf("%v: got %v, want %v", test.args, err, test.want)
		}
	}
}

func TestPalettes(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), "palettes")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"qualitative", "paired", "sequential_r", "biolizard_divergent_pal", "#01a086"} {
		if !strings.Contains(out, want) {
			t.Errorf("palettes output does not mention %q", want)
		}
	}
}

func TestSwatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, test := range []struct {
		name string
		w, h int
	}{
		{"diverging", 100, 10},
		{"qualitative_r", 120, 20},
	} {
		_, err := run(t, fs, "swatch", test.name, "--width", strconv.Itoa(test.w), "--height", strconv.Itoa(test.h))
		if err != nil {
			t.Fatal(err)
		}
		img := decode(t, fs, test.name+".png")
		if b := img.Bounds(); b.Dx() != test.w || b.Dy() != test.h {
			t.Errorf("%s: swatch is %v, want %d×%d", test.name, b, test.w, test.h)
		}
	}

	// The reversed qualitative palette ends with BioLizard green.
	img := decode(t, fs, "qualitative_r.png")
	r, g, b, _ := img.At(119, 10).RGBA()
	if r>>8 != 0x01 || g>>8 != 0xa0 || b>>8 != 0x86 {
		t.Errorf("last block is %v, want #01a086", img.At(119, 10))
	}

	if _, err := run(t, fs, "swatch", "rainbow"); !errors.Is(err, lzerr.Configuration) {
		t.Errorf("unknown palette: got %v, want configuration error", err)
	}
	if _, err := run(t, fs, "swatch", "diverging", "--width", "0"); !errors.Is(err, lzerr.Configuration) {
		t.Errorf("zero width: got %v, want configuration error", err)
	}
}

func TestSwatchConfig(t *testing.T) {
	t.Setenv("LIZARDPLOT_OUTPUT", "/strip.png")
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/etc/lizardplot.toml", []byte(`
width = 40
height = 8
`), 0o644)
	out, err := run(t, fs, "swatch", "sequential", "--config", "/etc/lizardplot.toml")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != "/strip.png" {
		t.Errorf("printed %q, want /strip.png", got)
	}
	if b := decode(t, fs, "/strip.png").Bounds(); b.Dx() != 40 || b.Dy() != 8 {
		t.Errorf("swatch is %v, want 40×8", b)
	}

	// Flags override the file.
	if _, err := run(t, fs, "swatch", "sequential", "--config", "/etc/lizardplot.toml", "--height", "5"); err != nil {
		t.Fatal(err)
	}
	if b := decode(t, fs, "/strip.png").Bounds(); b.Dx() != 40 || b.Dy() != 5 {
		t.Errorf("swatch is %v, want 40×5", b)
	}
}
