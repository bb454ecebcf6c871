// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fonts provides the TrueType faces used to draw chart and
// footer text.
//
// A Registry maps family names to parsed faces. Every registry starts
// with the faces bundled into the binary; more can be loaded from a
// directory of .ttf files, such as an unpacked Lato distribution.
package fonts

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/lizard-bio/lizardstyle/lzerr"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Families bundled into every Registry.
const (
	Go     = "Go"
	Roboto = "Roboto"
)

// A Registry maps font family names to faces. Names are matched
// case-insensitively. It is safe for concurrent use.
type Registry struct {
	mu sync.RWMutex
	m  map[string]entry
}

type entry struct {
	name string // as registered
	font *truetype.Font
}

// NewRegistry returns a registry holding the bundled families.
func NewRegistry() *Registry {
	r := &Registry{m: make(map[string]entry)}
	goFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic("fonts: bundled Go font: " + err.Error())
	}
	r.Register(Go, goFont)
	roboto, err := chart.GetDefaultFont()
	if err != nil {
		panic("fonts: bundled Roboto font: " + err.Error())
	}
	r.Register(Roboto, roboto)
	return r
}

// Register stores f under family, replacing any face already
// registered under that name.
func (r *Registry) Register(family string, f *truetype.Font) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[strings.ToLower(family)] = entry{family, f}
}

// RegisterTTF parses a TrueType file and registers it under family.
func (r *Registry) RegisterTTF(family string, ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return &lzerr.Error{Kind: lzerr.InvalidInput, Op: "fonts.RegisterTTF", Path: family, Err: err}
	}
	r.Register(family, f)
	return nil
}

// Lookup returns the face registered under family.
func (r *Registry) Lookup(family string) (*truetype.Font, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.m[strings.ToLower(family)]
	return e.font, ok
}

// Resolve returns the first of families that is registered, along
// with the name it was registered under. Surrounding spaces and
// quotes are ignored, so the entries of a font.family list can be
// passed directly.
func (r *Registry) Resolve(families ...string) (*truetype.Font, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, fam := range families {
		fam = strings.Trim(fam, ` "'`)
		if e, ok := r.m[strings.ToLower(fam)]; ok {
			return e.font, e.name, nil
		}
	}
	return nil, "", lzerr.New(lzerr.ResourceNotFound, "fonts.Resolve", "none of %q is registered", families)
}

// Families returns the registered family names, sorted.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := lo.MapToSlice(r.m, func(_ string, e entry) string { return e.name })
	sort.Strings(names)
	return names
}

// LoadDir registers every .ttf file in dir. The family of a file is
// the part of its name before the first "-", so Lato-Regular.ttf and
// Lato-Bold.ttf are both family "Lato". When a family has several
// files, the Regular one wins; otherwise the first in directory
// order. LoadDir returns the families it registered.
func (r *Registry) LoadDir(fs afero.Fs, dir string) ([]string, error) {
	const op = "fonts.LoadDir"
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, &lzerr.Error{Kind: lzerr.ResourceNotFound, Op: op, Path: dir, Err: err}
	}

	type pick struct {
		file    string
		regular bool
	}
	picks := make(map[string]pick)
	var order []string
	for _, fi := range infos {
		name := fi.Name()
		if fi.IsDir() || !strings.EqualFold(filepath.Ext(name), ".ttf") {
			continue
		}
		base := strings.TrimSuffix(name, filepath.Ext(name))
		family, variant, _ := strings.Cut(base, "-")
		regular := variant == "" || strings.EqualFold(variant, "Regular")
		p, seen := picks[family]
		if !seen {
			order = append(order, family)
		}
		if !seen || regular && !p.regular {
			picks[family] = pick{name, regular}
		}
	}

	for _, family := range order {
		file := filepath.Join(dir, picks[family].file)
		ttf, err := afero.ReadFile(fs, file)
		if err != nil {
			return nil, &lzerr.Error{Kind: lzerr.IO, Op: op, Path: file, Err: err}
		}
		f, err := truetype.Parse(ttf)
		if err != nil {
			return nil, &lzerr.Error{Kind: lzerr.InvalidInput, Op: op, Path: file, Err: err}
		}
		r.Register(family, f)
	}
	return order, nil
}
