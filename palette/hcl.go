// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/lizard-bio/lizardstyle/lzerr"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
)

// DefaultSamples is the number of points at which continuous
// palettes sample their HCL trajectory.
const DefaultSamples = 256

// Domain of the HCL parameters. Values outside these bounds are
// rejected rather than clamped.
const (
	MaxChroma    = 180
	MaxLuminance = 100
)

// HCL is a point in polar CIE-Luv space (D65 white point). H is in
// degrees, C and L in the usual 0-100 scale.
type HCL struct {
	H, C, L float64
}

// RGBA converts p to 8-bit sRGB. Points outside the sRGB gamut are
// clamped to the nearest representable color.
func (p HCL) RGBA() color.RGBA {
	c := colorful.LuvLCh(p.L/100, p.C/100, p.H).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

// HCLOf returns the HCL coordinates of c.
func HCLOf(c color.Color) HCL {
	cf, _ := colorful.MakeColor(c)
	l, ch, h := cf.LuvLCh()
	return HCL{H: h, C: ch * 100, L: l * 100}
}

// A Kind is a family of continuous palettes.
type Kind int

const (
	// Sequential palettes have monotonic luminance, for ordered
	// data.
	Sequential Kind = iota
	// Diverging palettes join two hues at a neutral, zero-chroma
	// midpoint, for data with a meaningful center.
	Diverging
	// Hues palettes walk around the hue circle at fixed chroma
	// and luminance.
	Hues
)

func (k Kind) String() string {
	switch k {
	case Sequential:
		return "sequential"
	case Diverging:
		return "diverging"
	case Hues:
		return "hues"
	}
	return "unknown"
}

// Spec describes a continuous HCL palette.
//
// The number of values accepted for each coordinate depends on the
// Kind:
//
//	           H          C                   L         Power
//	Sequential h | h1,h2  c | c1,c2 | c1,cmax,c2  l1,l2     p | p1,p2
//	Diverging  h1,h2      c | c,cmax          l1,l2     p | p1,p2
//	Hues       h1 | h1,h2 c                   l         ignored
//
// p1 applies to chroma and p2 to luminance. A single power is used
// for both. A nil Power means linear.
//
// For Hues with a single hue, the second hue defaults to
// h1 + 360*(N-1)/N so the palette covers the full circle.
type Spec struct {
	H, C, L []float64
	Power   []float64

	// N is the number of samples. Zero means DefaultSamples.
	N int

	// Reverse inverts the order of the samples.
	Reverse bool
}

// Build samples the trajectory described by s and returns the
// resulting continuous palette.
func Build(kind Kind, s Spec) (*Continuous, error) {
	const op = "palette.Build"
	n := s.N
	if n == 0 {
		n = DefaultSamples
	}
	if n < 2 {
		return nil, lzerr.New(lzerr.Configuration, op, "need at least 2 samples, got %d", n)
	}
	if err := s.check(kind); err != nil {
		return nil, &lzerr.Error{Kind: lzerr.Configuration, Op: op, Err: err}
	}

	var traj []HCL
	switch kind {
	case Sequential:
		traj = s.sequential(n)
	case Diverging:
		traj = s.diverging(n)
	case Hues:
		traj = s.hues(n)
	default:
		return nil, lzerr.New(lzerr.Configuration, op, "unknown kind %v", kind)
	}
	c := fromTrajectory(traj)
	if s.Reverse {
		c = c.Reversed()
	}
	return c, nil
}

// NewSequential is shorthand for Build(Sequential, s).
func NewSequential(s Spec) (*Continuous, error) { return Build(Sequential, s) }

// NewDiverging is shorthand for Build(Diverging, s).
func NewDiverging(s Spec) (*Continuous, error) { return Build(Diverging, s) }

// NewHues is shorthand for Build(Hues, s).
func NewHues(s Spec) (*Continuous, error) { return Build(Hues, s) }

func (s Spec) powers() (p1, p2 float64) {
	switch len(s.Power) {
	case 0:
		return 1, 1
	case 1:
		return s.Power[0], s.Power[0]
	}
	return s.Power[0], s.Power[1]
}

func (s Spec) sequential(n int) []HCL {
	h1, h2 := pair(s.H)
	l1, l2 := s.L[0], s.L[1]
	p1, p2 := s.powers()
	traj := make([]HCL, n)
	for k, i := range vec.Linspace(1, 0, n) {
		traj[k] = HCL{
			H: h2 - (h2-h1)*i,
			C: s.chroma(i, p1),
			L: l2 - (l2-l1)*math.Pow(i, p2),
		}
	}
	return traj
}

// chroma returns the sequential chroma at position i, where i runs
// from 1 (first color) to 0 (last color).
func (s Spec) chroma(i, p float64) float64 {
	switch len(s.C) {
	case 1:
		return s.C[0]
	case 2:
		return s.C[1] - (s.C[1]-s.C[0])*math.Pow(i, p)
	}
	return triangular(i, p, s.C[0], s.C[1], s.C[2])
}

// triangular is a chroma trajectory from ca (i=1) through cmax to cb
// (i=0). It degrades to a linear ramp when cmax does not lie strictly
// between the ends of the trajectory.
func triangular(i, p, ca, cmax, cb float64) float64 {
	j := 1 / (1 + math.Abs(cmax-ca)/math.Abs(cmax-cb))
	if math.IsNaN(j) || j <= 0 || j >= 1 {
		return cb - (cb-ca)*math.Pow(i, p)
	}
	if i <= j {
		return cb - (cb-cmax)*math.Pow(i/j, p)
	}
	return cmax - (cmax-ca)*math.Pow((i-j)/(1-j), p)
}

func (s Spec) diverging(n int) []HCL {
	h1, h2 := s.H[0], s.H[1]
	l1, l2 := s.L[0], s.L[1]
	p1, p2 := s.powers()
	traj := make([]HCL, n)
	for k, r := range vec.Linspace(1, -1, n) {
		a := math.Abs(r)
		var c float64
		if len(s.C) == 1 {
			c = s.C[0] * math.Pow(a, p1)
		} else {
			c = triangular(a, p1, s.C[0], s.C[1], 0)
		}
		h := h1
		if r < 0 {
			h = h2
		}
		traj[k] = HCL{
			H: h,
			C: c,
			L: l2 - (l2-l1)*math.Pow(a, p2),
		}
	}
	return traj
}

func (s Spec) hues(n int) []HCL {
	h1 := s.H[0]
	h2 := h1 + 360*float64(n-1)/float64(n)
	if len(s.H) > 1 {
		h2 = s.H[1]
	}
	traj := make([]HCL, n)
	for k, h := range vec.Linspace(h1, h2, n) {
		traj[k] = HCL{H: h, C: s.C[0], L: s.L[0]}
	}
	return traj
}

func pair(xs []float64) (float64, float64) {
	if len(xs) == 1 {
		return xs[0], xs[0]
	}
	return xs[0], xs[1]
}

// check reports whether s is a valid specification for kind. It does
// not clamp: out-of-domain parameters produce visually broken
// gradients, so they are errors.
func (s Spec) check(kind Kind) error {
	var nh, nc, nl []int
	switch kind {
	case Sequential:
		nh, nc, nl = []int{1, 2}, []int{1, 2, 3}, []int{2}
	case Diverging:
		nh, nc, nl = []int{2}, []int{1, 2}, []int{2}
	case Hues:
		nh, nc, nl = []int{1, 2}, []int{1}, []int{1}
	default:
		return fmt.Errorf("unknown kind %v", kind)
	}
	if err := checkLen(kind, "hue", s.H, nh); err != nil {
		return err
	}
	if err := checkLen(kind, "chroma", s.C, nc); err != nil {
		return err
	}
	if err := checkLen(kind, "luminance", s.L, nl); err != nil {
		return err
	}
	for _, h := range s.H {
		if !finite(h) {
			return fmt.Errorf("hue %g is not finite", h)
		}
	}
	for _, c := range s.C {
		if !finite(c) || c < 0 || c > MaxChroma {
			return fmt.Errorf("chroma %g outside [0, %d]", c, MaxChroma)
		}
	}
	for _, l := range s.L {
		if !finite(l) || l < 0 || l > MaxLuminance {
			return fmt.Errorf("luminance %g outside [0, %d]", l, MaxLuminance)
		}
	}
	if len(s.Power) > 2 {
		return fmt.Errorf("at most 2 powers, got %d", len(s.Power))
	}
	for _, p := range s.Power {
		if !finite(p) || p <= 0 {
			return fmt.Errorf("power %g must be positive", p)
		}
	}
	if kind == Sequential && s.L[0] == s.L[1] {
		return fmt.Errorf("sequential luminance must change, got %g to %g", s.L[0], s.L[1])
	}
	return nil
}

func checkLen(kind Kind, what string, xs []float64, allowed []int) error {
	if !lo.Contains(allowed, len(xs)) {
		return fmt.Errorf("%s palette takes %v %s values, got %d", kind, allowed, what, len(xs))
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
