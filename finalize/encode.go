// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package finalize

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"
	"github.com/lizard-bio/lizardstyle/lzerr"
	"github.com/spf13/afero"
)

func encode(img image.Image, f Format, pdfRes float64) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch f {
	case PNG:
		err = encodePNG(&buf, img)
	case PDF:
		err = encodePDF(&buf, img, pdfRes)
	default:
		err = fmt.Errorf("unknown format %v", f)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

// encodePDF writes a single-page PDF whose page is exactly img, at
// res pixels per inch.
func encodePDF(w io.Writer, img image.Image, res float64) error {
	var raster bytes.Buffer
	if err := encodePNG(&raster, img); err != nil {
		return err
	}
	b := img.Bounds()
	pw, ph := float64(b.Dx())/res, float64(b.Dy())/res

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: pw, Ht: ph},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("lizardstyle", true)
	pdf.AddPage()
	opt := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("plot", opt, &raster)
	pdf.ImageOptions("plot", 0, 0, pw, ph, false, opt, 0, "")
	return pdf.Output(w)
}

// writeFile writes data to path through a temporary file in the same
// directory, so path either has the full contents or is untouched.
// A new file gets mode 0644; an existing file keeps its mode.
func writeFile(fs afero.Fs, path string, data []byte) error {
	const op = "finalize.writeFile"
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := afero.TempFile(fs, dir, "."+base+".*")
	if err != nil {
		return &lzerr.Error{Kind: lzerr.IO, Op: op, Path: path, Err: err}
	}
	name := tmp.Name()
	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		mode := os.FileMode(0o644)
		if fi, serr := fs.Stat(path); serr == nil {
			mode = fi.Mode().Perm()
		}
		err = fs.Chmod(name, mode)
	}
	if err == nil {
		err = fs.Rename(name, path)
	}
	if err != nil {
		fs.Remove(name)
		return &lzerr.Error{Kind: lzerr.IO, Op: op, Path: path, Err: err}
	}
	return nil
}
