// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"sort"
	"sync"

	"github.com/samber/lo"
)

// A Registry maps names to continuous palettes. It is safe for
// concurrent use.
type Registry struct {
	mu sync.RWMutex
	m  map[string]*Continuous
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{m: make(map[string]*Continuous)}
}

// Register stores c under name, replacing any palette already
// registered under that name.
func (r *Registry) Register(name string, c *Continuous) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[name] = c
}

// RegisterWithReverse registers c under name and c.Reversed() under
// name+"_r".
func (r *Registry) RegisterWithReverse(name string, c *Continuous) {
	rev := c.Reversed()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[name] = c
	r.m[name+"_r"] = rev
}

// Lookup returns the palette registered under name.
func (r *Registry) Lookup(name string) (*Continuous, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.m[name]
	return c, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.m)
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
