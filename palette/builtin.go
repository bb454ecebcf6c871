// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"

	"github.com/samber/lo"
	"github.com/wcharczuk/go-chart/v2"
)

// The BioLizard continuous palettes.
var (
	// SequentialSpec is derived from the BioLizard green. Luminance
	// falls from 90 to 35 while chroma rises from grey to a peak of
	// 75 and settles at 40, separating mid-range values from the
	// extremes.
	SequentialSpec = Spec{
		H:     []float64{170},
		C:     []float64{0, 75, 40},
		L:     []float64{90, 35},
		Power: []float64{1},
	}

	// DivergingSpec balances an orange arm (hue 60) against the
	// BioLizard green (hue 170) around a zero-chroma center. The
	// pairing stays distinguishable under the common forms of
	// color blindness.
	DivergingSpec = Spec{
		H:     []float64{60, 170},
		C:     []float64{80},
		L:     []float64{50, 95},
		Power: []float64{1},
	}

	// HuesSpec spaces hues evenly around the circle starting at
	// the BioLizard green. It is not colorblind safe.
	HuesSpec = Spec{
		H: []float64{151.6},
		C: []float64{49.5},
		L: []float64{58.9},
	}
)

// Names of the colormaps in DefaultRegistry. Each also exists with
// an "_r" suffix, reversed.
const (
	NameSequential = "sequential"
	NameDiverging  = "diverging"
	NameHues       = "qualitative-hues"
	NameViridis    = "l-viridis"
)

// aliases maps the historical BioLizard colormap names to the
// current ones.
var aliases = map[string]string{
	"biolizard_sequential_pal": NameSequential,
	"biolizard_divergent_pal":  NameDiverging,
	"biolizard_hues_pal":       NameHues,
	"l_viridis_pal":            NameViridis,
}

// DefaultRegistry returns a new registry holding the BioLizard
// colormaps, their reversals and their historical aliases.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// RegisterDefaults registers the BioLizard colormaps in r,
// overwriting any existing entries with the same names.
func RegisterDefaults(r *Registry) {
	for name, c := range builtins() {
		r.RegisterWithReverse(name, c)
	}
	for alias, name := range aliases {
		for _, suffix := range []string{"", "_r"} {
			c, _ := r.Lookup(name + suffix)
			r.Register(alias+suffix, c)
		}
	}
}

func builtins() map[string]*Continuous {
	return map[string]*Continuous{
		NameSequential: mustBuild(Sequential, SequentialSpec),
		NameDiverging:  mustBuild(Diverging, DivergingSpec),
		NameHues:       mustBuild(Hues, HuesSpec),
		NameViridis:    viridis(),
	}
}

// viridis is the viridis colormap running from yellow to purple. It
// is named after the European green lizard, Lacerta viridis.
func viridis() *Continuous {
	samples := lo.Times(DefaultSamples, func(i int) color.RGBA {
		c := chart.Viridis(float64(i), 0, DefaultSamples-1)
		return color.RGBA{c.R, c.G, c.B, c.A}
	})
	return FromSamples(samples).Reversed()
}

func mustBuild(kind Kind, s Spec) *Continuous {
	c, err := Build(kind, s)
	if err != nil {
		panic(err)
	}
	return c
}
