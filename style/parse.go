// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/lizard-bio/lizardstyle/fonts"
	"github.com/lizard-bio/lizardstyle/lzerr"
	"github.com/lizard-bio/lizardstyle/palette"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
)

var lineRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_.\-]*)[ \t]*:(?:[ \t]*(.*?))?[ \t]*$`)

// A field is one stylesheet key understood by this package.
type field struct {
	key    string
	parse  func(s *Style, v string) error
	format func(s Style) string
}

var fields = []field{
	{"font.family", func(s *Style, v string) error {
		fams := splitList(v)
		if len(fams) == 0 {
			return errors.New("empty font list")
		}
		s.fontFamily = fams
		return nil
	}, func(s Style) string { return strings.Join(s.fontFamily, ", ") }},
	{"font.size", setSize(func(s *Style) *float64 { return &s.fontSize }), formatFloat(func(s Style) float64 { return s.fontSize })},
	{"axes.titlesize", setSize(func(s *Style) *float64 { return &s.titleSize }), formatFloat(func(s Style) float64 { return s.titleSize })},
	{"text.color", setColor(func(s *Style) *color.RGBA { return &s.textColor }), formatColor(func(s Style) color.RGBA { return s.textColor })},
	{"axes.edgecolor", setColor(func(s *Style) *color.RGBA { return &s.edgeColor }), formatColor(func(s Style) color.RGBA { return s.edgeColor })},
	{"axes.facecolor", setColor(func(s *Style) *color.RGBA { return &s.axesFace }), formatColor(func(s Style) color.RGBA { return s.axesFace })},
	{"figure.facecolor", setColor(func(s *Style) *color.RGBA { return &s.figureFace }), formatColor(func(s Style) color.RGBA { return s.figureFace })},
	{"axes.linewidth", setSize(func(s *Style) *float64 { return &s.axesWidth }), formatFloat(func(s Style) float64 { return s.axesWidth })},
	{"lines.linewidth", setSize(func(s *Style) *float64 { return &s.lineWidth }), formatFloat(func(s Style) float64 { return s.lineWidth })},
	{"figure.dpi", setSize(func(s *Style) *float64 { return &s.dpi }), formatFloat(func(s Style) float64 { return s.dpi })},
	{"figure.subplot.left", setFraction(func(s *Style) *float64 { return &s.margins.Left }, false), formatFloat(func(s Style) float64 { return s.margins.Left })},
	{"figure.subplot.bottom", setFraction(func(s *Style) *float64 { return &s.margins.Bottom }, false), formatFloat(func(s Style) float64 { return s.margins.Bottom })},
	// matplotlib gives the position of the right edge, not the
	// inset.
	{"figure.subplot.right", setFraction(func(s *Style) *float64 { return &s.margins.Right }, true), formatFloat(func(s Style) float64 { return 1 - s.margins.Right })},
	{"axes.prop_cycle", func(s *Style, v string) error {
		var cycle palette.Discrete
		for _, c := range splitList(v) {
			rgba, err := parseColor(c)
			if err != nil {
				return err
			}
			cycle = append(cycle, rgba)
		}
		if len(cycle) == 0 {
			return errors.New("empty color cycle")
		}
		s.cycle = cycle
		return nil
	}, func(s Style) string { return strings.Join(s.cycle.Hex(), ", ") }},
}

var fieldByKey = lo.KeyBy(fields, func(f field) string { return f.key })

// fallback is the base of the bundled stylesheet.
func fallback() Style {
	q, _ := palette.Qualitative(palette.Standard)
	return Style{
		fontFamily: []string{fonts.Roboto},
		fontSize:   10,
		titleSize:  14,
		textColor:  color.RGBA{0, 0, 0, 255},
		edgeColor:  color.RGBA{0, 0, 0, 255},
		axesFace:   color.RGBA{255, 255, 255, 255},
		figureFace: color.RGBA{255, 255, 255, 255},
		axesWidth:  0.8,
		lineWidth:  1.5,
		dpi:        100,
		margins:    Margins{Left: 0.11, Bottom: 0.13, Right: 0.05},
		cycle:      q,
	}
}

// Parse reads a stylesheet from r. Keys absent from r keep their
// Default values.
//
// Lines starting with "#" and blank lines are ignored. Any other line
// must have the form "key: value". A key may appear more than once;
// the last value wins.
func Parse(r io.Reader) (Style, error) {
	return parse(Default(), r)
}

func parse(s Style, r io.Reader) (Style, error) {
	const op = "style.Parse"
	s.extra = clone(s.extra)
	s.extraKeys = append([]string(nil), s.extraKeys...)

	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			return Style{}, lzerr.New(lzerr.Configuration, op, "line %d: expected \"key: value\", got %q", lineno, line)
		}
		key, val := m[1], m[2]
		f, ok := fieldByKey[key]
		if !ok {
			if _, dup := s.extra[key]; !dup {
				s.extraKeys = append(s.extraKeys, key)
			}
			s.extra[key] = val
			continue
		}
		if err := f.parse(&s, val); err != nil {
			return Style{}, lzerr.New(lzerr.Configuration, op, "line %d: %s: %v", lineno, key, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return Style{}, &lzerr.Error{Kind: lzerr.IO, Op: op, Err: err}
	}
	if s.margins.Left+s.margins.Right >= 1 {
		return Style{}, lzerr.New(lzerr.Configuration, op, "left margin %g is right of the right edge %g", s.margins.Left, 1-s.margins.Right)
	}
	return s, nil
}

// Fprint writes s to w in stylesheet form. Parsing the output yields
// a Style equal to s.
func Fprint(w io.Writer, s Style) error {
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%s: %s\n", f.key, f.format(s)); err != nil {
			return err
		}
	}
	for _, k := range s.extraKeys {
		if _, err := fmt.Fprintf(w, "%s: %s\n", k, s.extra[k]); err != nil {
			return err
		}
	}
	return nil
}

// String returns s in stylesheet form.
func (s Style) String() string {
	var buf bytes.Buffer
	Fprint(&buf, s)
	return buf.String()
}

func setSize(p func(*Style) *float64) func(*Style, string) error {
	return func(s *Style, v string) error {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		if !(x > 0) || x > 1e4 {
			return fmt.Errorf("%g out of range", x)
		}
		*p(s) = x
		return nil
	}
}

func setFraction(p func(*Style) *float64, fromRight bool) func(*Style, string) error {
	return func(s *Style, v string) error {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		if !(x >= 0 && x <= 1) {
			return fmt.Errorf("%g outside [0, 1]", x)
		}
		if fromRight {
			x = 1 - x
		}
		*p(s) = x
		return nil
	}
}

func setColor(p func(*Style) *color.RGBA) func(*Style, string) error {
	return func(s *Style, v string) error {
		c, err := parseColor(v)
		if err != nil {
			return err
		}
		*p(s) = c
		return nil
	}
}

func formatFloat(get func(Style) float64) func(Style) string {
	return func(s Style) string { return strconv.FormatFloat(get(s), 'g', -1, 64) }
}

func formatColor(get func(Style) color.RGBA) func(Style) string {
	return func(s Style) string {
		c := get(s)
		if c.A == 0 {
			return "none"
		}
		return palette.Discrete{c}.Hex()[0]
	}
}

// parseColor accepts "#rrggbb", "rrggbb", the three-digit short forms
// and "none".
func parseColor(v string) (color.RGBA, error) {
	v = strings.Trim(v, ` "'`)
	if strings.EqualFold(v, "none") {
		return color.RGBA{}, nil
	}
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	if len(v) != 4 && len(v) != 7 {
		return color.RGBA{}, fmt.Errorf("bad color %q", v)
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q", v)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

func splitList(v string) []string {
	parts := lo.Map(strings.Split(v, ","), func(p string, _ int) string {
		return strings.Trim(p, ` "'`)
	})
	return lo.Compact(parts)
}

func clone(m map[string]string) map[string]string {
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
