// Copyright 2026 The Lizardstyle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/aclements/go-gg/table"
	"github.com/lizard-bio/lizardstyle/lzerr"
	"github.com/samber/lo"
)

// A dataset is a set of equal-length numeric columns. The first
// column is the x axis.
type dataset struct {
	names []string
	cols  [][]float64
}

// parseData reads whitespace- or comma-separated columns of numbers.
// Blank lines and lines starting with "#" are skipped. If the first
// remaining line is not all numbers, it names the columns.
func parseData(r io.Reader) (*dataset, error) {
	const op = "lizardplot.parseData"
	d := new(dataset)
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})

		vals := make([]float64, len(fields))
		numeric := true
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				numeric = false
				break
			}
			vals[i] = v
		}

		switch {
		case d.names == nil && !numeric:
			if len(fields) < 2 {
				return nil, lzerr.New(lzerr.InvalidInput, op, "line %d: need at least two columns", lineno)
			}
			d.names = fields
			d.cols = make([][]float64, len(fields))
			continue
		case !numeric:
			return nil, lzerr.New(lzerr.InvalidInput, op, "line %d: not a number in %q", lineno, line)
		case d.names == nil:
			if len(fields) < 2 {
				return nil, lzerr.New(lzerr.InvalidInput, op, "line %d: need at least two columns", lineno)
			}
			d.names = defaultNames(len(fields))
			d.cols = make([][]float64, len(fields))
		}
		if len(vals) != len(d.cols) {
			return nil, lzerr.New(lzerr.InvalidInput, op, "line %d: %d columns, want %d", lineno, len(vals), len(d.cols))
		}
		for i, v := range vals {
			d.cols[i] = append(d.cols[i], v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &lzerr.Error{Kind: lzerr.IO, Op: op, Err: err}
	}
	if d.rows() == 0 {
		return nil, lzerr.New(lzerr.InvalidInput, op, "no data")
	}
	return d, nil
}

func defaultNames(n int) []string {
	return lo.Times(n, func(i int) string {
		if i == 0 {
			return "x"
		}
		return fmt.Sprintf("y%d", i)
	})
}

func (d *dataset) rows() int {
	if len(d.cols) == 0 {
		return 0
	}
	return len(d.cols[0])
}

// table returns d as a go-gg table for printing.
func (d *dataset) table() *table.Table {
	b := new(table.Builder)
	for i, name := range d.names {
		b.Add(name, d.cols[i])
	}
	return b.Done()
}
