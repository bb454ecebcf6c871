// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzerr defines the error kinds shared by the lizardstyle
// packages.
//
// Every failure is fatal to the call that produced it. Callers
// distinguish kinds with errors.Is:
//
//	if errors.Is(err, lzerr.ResourceNotFound) { ... }
package lzerr

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// Configuration reports invalid palette, style or option
	// parameters.
	Configuration Kind = iota + 1
	// ResourceNotFound reports a missing font, logo or style asset.
	ResourceNotFound
	// InvalidInput reports a degenerate chart or caller input.
	InvalidInput
	// IO reports a failure to write output.
	IO
)

func (k Kind) String() string {
	switch k {
	case Configuration:
		return "configuration error"
	case ResourceNotFound:
		return "resource not found"
	case InvalidInput:
		return "invalid input"
	case IO:
		return "I/O error"
	}
	return fmt.Sprintf("lzerr.Kind(%d)", int(k))
}

// Error implements error so a Kind can be the target of errors.Is.
func (k Kind) Error() string { return k.String() }

// Error records a failed operation.
type Error struct {
	Kind Kind
	Op   string // operation, e.g. "palette.Sequential"
	Path string // file involved, if any
	Err  error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	s := e.Op + ": " + e.Kind.String()
	if e.Path != "" {
		s += " " + e.Path
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is e's Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// New returns an *Error of kind k for op with a formatted cause.
func New(k Kind, op, format string, args ...interface{}) error {
	return &Error{Kind: k, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap returns an *Error of kind k for op wrapping err. It returns
// nil if err is nil.
func Wrap(k Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: k, Op: op, Path: path, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
