// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package finalize

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/lizard-bio/lizardstyle/assets"
	"github.com/lizard-bio/lizardstyle/lzerr"
	"github.com/spf13/afero"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/draw"
)

// Footer layout, in fractions of the footer size.
const (
	captionX = 0.05 // left edge of the caption
	logoLeft = 0.90 // left edge of the logo box
	logoTop  = 0.09 // top of the logo box; the box is one footer tall
	rulePt   = 1.5  // rule width in points
)

func loadLogo(fs afero.Fs, path string) (image.Image, error) {
	const op = "finalize.loadLogo"
	data := assets.Logo
	if path != "" {
		var err error
		data, err = afero.ReadFile(fs, path)
		if err != nil {
			return nil, &lzerr.Error{Kind: lzerr.ResourceNotFound, Op: op, Path: path, Err: err}
		}
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &lzerr.Error{Kind: lzerr.InvalidInput, Op: op, Path: path, Err: err}
	}
	return img, nil
}

// drawFooter returns a w-pixel-wide footer.
func drawFooter(w int, caption string, face *truetype.Font, logo image.Image, o Options) (*image.RGBA, error) {
	const op = "finalize.drawFooter"
	h := int(math.Round(o.FooterHeight * o.DPI))
	if h < 1 {
		h = 1
	}
	r, err := chart.PNG(w, h)
	if err != nil {
		return nil, &lzerr.Error{Kind: lzerr.InvalidInput, Op: op, Err: err}
	}
	r.SetDPI(o.DPI)

	fw, fh := float64(w), float64(h)
	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(w, 0)
	r.LineTo(w, h)
	r.LineTo(0, h)
	r.Close()
	r.Fill()

	rule := rulePt * o.DPI / 72
	y := int(math.Round(rule / 2))
	r.SetStrokeColor(drawing.ColorBlack)
	r.SetStrokeWidth(rule)
	r.MoveTo(0, y)
	r.LineTo(w, y)
	r.Stroke()

	if caption != "" {
		tc := o.Style.TextColor()
		r.SetFont(face)
		r.SetFontSize(o.FontSize)
		r.SetFontColor(drawing.Color{R: tc.R, G: tc.G, B: tc.B, A: tc.A})
		box := r.MeasureText(caption)
		// Text is positioned by its baseline.
		r.Text(caption, int(math.Round(captionX*fw)), (h+box.Height())/2)
	}

	iw := &chart.ImageWriter{}
	if err := r.Save(iw); err != nil {
		return nil, &lzerr.Error{Kind: lzerr.InvalidInput, Op: op, Err: err}
	}
	img, err := iw.Image()
	if err != nil {
		return nil, &lzerr.Error{Kind: lzerr.InvalidInput, Op: op, Err: err}
	}
	footer := toRGBA(img)

	// The logo goes last so nothing is drawn over it.
	lb := logo.Bounds()
	boxW, boxH := (1-logoLeft)*fw, fh
	s := math.Min(boxW/float64(lb.Dx()), boxH/float64(lb.Dy()))
	dw, dh := int(math.Round(float64(lb.Dx())*s)), int(math.Round(float64(lb.Dy())*s))
	top := int(math.Round(logoTop * fh))
	dst := image.Rect(w-dw, top, w, top+dh)
	draw.CatmullRom.Scale(footer, dst, logo, lb, draw.Over, nil)
	return footer, nil
}

// stack returns top with bottom directly beneath it, on white. Both
// must have the same width.
func stack(top, bottom image.Image) *image.RGBA {
	tb, bb := top.Bounds(), bottom.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, tb.Dx(), tb.Dy()+bb.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, 0, tb.Dx(), tb.Dy()), top, tb.Min, draw.Over)
	draw.Draw(out, image.Rect(0, tb.Dy(), bb.Dx(), tb.Dy()+bb.Dy()), bottom, bb.Min, draw.Over)
	return out
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
