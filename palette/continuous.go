// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette builds the BioLizard color palettes.
//
// Discrete palettes are fixed lists of colors for categorical data.
// Continuous palettes map [0, 1] to colors and are built by sampling
// a trajectory through HCL (polar CIE-Luv) space and interpolating
// between the samples. Continuous palettes can be registered by name
// in a Registry so chart code can look them up.
package palette

import (
	"image/color"
	"math"

	ggpalette "github.com/aclements/go-gg/palette"
	"github.com/samber/lo/mutable"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// A Continuous palette is a function from [0, 1] to colors,
// interpolated between a fixed set of samples.
type Continuous struct {
	samples []color.RGBA
	// traj is the HCL point of each sample, or nil if the palette
	// was not built from an HCL trajectory.
	traj []HCL
	grad ggpalette.RGBGradient
}

var _ ggpalette.Continuous = (*Continuous)(nil)

// FromSamples returns a continuous palette interpolating between
// samples, which are evenly spaced on [0, 1]. It panics if there are
// fewer than two samples.
func FromSamples(samples []color.RGBA) *Continuous {
	if len(samples) < 2 {
		panic("palette: continuous palette needs at least two samples")
	}
	s := append([]color.RGBA(nil), samples...)
	return &Continuous{samples: s, grad: ggpalette.RGBGradient{Colors: s}}
}

func fromTrajectory(traj []HCL) *Continuous {
	samples := make([]color.RGBA, len(traj))
	for i, p := range traj {
		samples[i] = p.RGBA()
	}
	c := FromSamples(samples)
	c.traj = traj
	return c
}

// Map returns the color at x. x is clamped to [0, 1]; NaN maps to
// the first color.
func (c *Continuous) Map(x float64) color.Color {
	if math.IsNaN(x) || x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	return c.grad.Map(x)
}

// Len returns the number of samples in c.
func (c *Continuous) Len() int {
	return len(c.samples)
}

// Samples returns a copy of the sampled colors of c.
func (c *Continuous) Samples() []color.RGBA {
	return append([]color.RGBA(nil), c.samples...)
}

// Trajectory returns a copy of the HCL coordinates of the samples, or
// nil if c was not built from an HCL specification.
func (c *Continuous) Trajectory() []HCL {
	if c.traj == nil {
		return nil
	}
	return append([]HCL(nil), c.traj...)
}

// Reversed returns c with its samples in reverse order.
func (c *Continuous) Reversed() *Continuous {
	r := FromSamples(c.samples)
	mutable.Reverse(r.samples)
	if c.traj != nil {
		r.traj = append([]HCL(nil), c.traj...)
		mutable.Reverse(r.traj)
	}
	return r
}

// Discrete returns n colors evenly spaced along c, including both
// ends.
func (c *Continuous) Discrete(n int) Discrete {
	d := make(Discrete, n)
	for i := range d {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		d[i] = toRGBA(c.Map(x))
	}
	return d
}

// DotColorProvider returns a go-chart color provider that colors
// each point by its y value, scaled to the chart's y range.
func (c *Continuous) DotColorProvider() chart.DotColorProvider {
	return func(_, yr chart.Range, _ int, _, y float64) drawing.Color {
		x := 0.0
		if d := yr.GetMax() - yr.GetMin(); d != 0 {
			x = (y - yr.GetMin()) / d
		}
		return drawingColor(c.Map(x))
	}
}

func toRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func drawingColor(c color.Color) drawing.Color {
	rgba := toRGBA(c)
	return drawing.Color{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}
}
