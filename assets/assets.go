// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets holds the files bundled into every lizardstyle
// binary: the default stylesheet and the footer logo.
package assets

import _ "embed"

// Stylesheet is the default BioLizard stylesheet.
//
//go:embed lizard.style
var Stylesheet []byte

// Logo is the BioLizard logo as a PNG with an alpha channel.
//
//go:embed logo.png
var Logo []byte
