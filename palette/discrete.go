// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lizard-bio/lizardstyle/lzerr"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
	"github.com/samber/lo/mutable"
)

// The three BioLizard signature colors. Every qualitative palette
// starts with these, in this order.
var (
	Green  = mustHex("#01a086")
	Blue   = mustHex("#1e2237")
	Yellow = mustHex("#e9b940")
)

// A Discrete palette is a fixed, ordered list of colors for
// categorical data.
type Discrete []color.RGBA

// A Variant selects one of the fixed discrete palettes.
type Variant int

const (
	// Standard is the default variant of a palette family.
	Standard Variant = iota
	// Classic is the original eight-color qualitative palette.
	Classic
	// Vivid is the twelve-color qualitative palette derived from
	// Krzywinski's colorblind-safe palette.
	Vivid
)

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Classic:
		return "classic"
	case Vivid:
		return "vivid"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Documented lengths of the discrete palettes.
const (
	QualitativeLen        = 12
	QualitativeClassicLen = 8
	PairedLen             = 10
)

var qualitativeStandard = hexes(
	"#01A086", "#1E2237", "#E9B940", "#5D7EA5", "#860202",
	"#89D2C6", "#C56F27", "#EED8A1", "#9CAEC3", "#B073DE",
	"#03F2F7", "#71BD8B",
)

var qualitativeVivid = hexes(
	"#01A086", "#1E2237", "#E9B940", "#00C2F9", "#008DF9",
	"#FF6E3A", "#00FCCF", "#8400CD", "#E20134", "#FFB2FD",
	"#FF5AAF", "#A40122",
)

// Consecutive entries share a hue family, light then dark.
var pairedStandard = hexes(
	"#6CC7B7", "#176B59",
	"#5D7EA5", "#1E2237",
	"#EED8A1", "#E9B940",
	"#D6D6D6", "#828282",
	"#DE5F5F", "#860202",
)

// Qualitative returns the qualitative palette of variant v. The
// palette is suitable for the most common form of color blindness
// (deuteranopia) and starts with Green, Blue and Yellow.
//
// Standard and Vivid have QualitativeLen colors, Classic has
// QualitativeClassicLen.
func Qualitative(v Variant) (Discrete, error) {
	switch v {
	case Standard:
		return qualitativeStandard.clone(), nil
	case Classic:
		return qualitativeStandard[:QualitativeClassicLen].clone(), nil
	case Vivid:
		return qualitativeVivid.clone(), nil
	}
	return nil, lzerr.New(lzerr.Configuration, "palette.Qualitative", "unknown variant %v", v)
}

// Paired returns a palette whose colors come in light/dark pairs of
// the same hue family, for encodings such as control/case across
// repeated conditions. Only the Standard variant exists.
func Paired(v Variant) (Discrete, error) {
	if v != Standard {
		return nil, lzerr.New(lzerr.Configuration, "palette.Paired", "unknown variant %v", v)
	}
	return pairedStandard.clone(), nil
}

var discreteByName = map[string]func() (Discrete, error){
	"qualitative":         func() (Discrete, error) { return Qualitative(Standard) },
	"qualitative-classic": func() (Discrete, error) { return Qualitative(Classic) },
	"qualitative-vivid":   func() (Discrete, error) { return Qualitative(Vivid) },
	"paired":              func() (Discrete, error) { return Paired(Standard) },
}

// DiscreteByName returns a discrete palette by name. Names are those
// of DiscreteNames, optionally with an "_r" suffix for the reversed
// palette.
func DiscreteByName(name string) (Discrete, error) {
	base, rev := strings.CutSuffix(name, "_r")
	f, ok := discreteByName[base]
	if !ok {
		return nil, lzerr.New(lzerr.Configuration, "palette.DiscreteByName", "unknown palette %q", name)
	}
	d, err := f()
	if err != nil {
		return nil, err
	}
	if rev {
		d = d.Reversed()
	}
	return d, nil
}

// DiscreteNames returns the base names accepted by DiscreteByName.
func DiscreteNames() []string {
	return sortedKeys(discreteByName)
}

// Reversed returns a copy of d in reverse order.
func (d Discrete) Reversed() Discrete {
	r := d.clone()
	mutable.Reverse(r)
	return r
}

// At returns the i'th color, cycling through d. It panics if d is
// empty.
func (d Discrete) At(i int) color.RGBA {
	n := len(d)
	return d[((i%n)+n)%n]
}

// Take returns the first n colors of d, cycling if n > len(d).
func (d Discrete) Take(n int) Discrete {
	return lo.Times(n, d.At)
}

// Hex returns the colors of d as lower-case "#rrggbb" strings.
func (d Discrete) Hex() []string {
	return lo.Map(d, func(c color.RGBA, _ int) string {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	})
}

func (d Discrete) clone() Discrete {
	return append(Discrete(nil), d...)
}

func hexes(s ...string) Discrete {
	return lo.Map(s, func(h string, _ int) color.RGBA { return mustHex(h) })
}

func mustHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("palette: bad color %q: %v", s, err))
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}
