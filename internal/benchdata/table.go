// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchdata turns Go benchmark results into bar chart data.
package benchdata

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/perf/benchfmt"
	"golang.org/x/perf/benchproc"
)

// Table collects benchmark measurements of one unit, grouped by the keys of
// the X and series projections.
type Table struct {
	proj       dimMap[*benchproc.Projection]
	unit       string
	compare    bool
	confidence float64

	cells  map[cell][]float64
	xs     map[benchproc.Key]struct{}
	series map[benchproc.Key]struct{}
}

type cell struct {
	x, series benchproc.Key
}

// A Reader is a source of benchmark records, such as a [benchfmt.Reader] or
// [benchfmt.Files].
type Reader interface {
	Scan() bool
	Result() benchfmt.Record
	Err() error
}

func NewTable(c *Config) (*Table, error) {
	for d := Dim(0); d < dimMax; d++ {
		if c.proj.Get(d) == nil {
			return nil, fmt.Errorf("no projection for the %s dimension", d.Name())
		}
	}
	if c.unit == "" {
		return nil, fmt.Errorf("no unit selected")
	}
	return &Table{
		proj:       c.proj,
		unit:       c.unit,
		compare:    c.compare,
		confidence: c.confidence,
		cells:      make(map[cell][]float64),
		xs:         make(map[benchproc.Key]struct{}),
		series:     make(map[benchproc.Key]struct{}),
	}, nil
}

// Add adds the measurement of rec in the table's unit. It reports false if
// rec has no such measurement.
func (t *Table) Add(rec *benchfmt.Result) bool {
	val, ok := t.value(rec)
	if !ok {
		return false
	}
	c := cell{
		x:      t.proj.Get(DimX).Project(rec),
		series: t.proj.Get(DimSeries).Project(rec),
	}
	t.cells[c] = append(t.cells[c], val)
	t.xs[c.x] = struct{}{}
	t.series[c.series] = struct{}{}
	return true
}

func (t *Table) value(rec *benchfmt.Result) (float64, bool) {
	for _, v := range rec.Values {
		if v.Unit == t.unit {
			return v.Value, true
		}
		if v.OrigUnit != "" && v.OrigUnit == t.unit {
			return v.OrigValue, true
		}
	}
	return 0, false
}

// Read adds every result of r that passes filter. Syntax errors and the
// reasons results were filtered out are reported to wErr.
func (t *Table) Read(r Reader, filter *benchproc.Filter, wErr io.Writer) error {
	var nParsed, nFiltered, nUnitFiltered int
	for r.Scan() {
		switch rec := r.Result(); rec := rec.(type) {
		case *benchfmt.SyntaxError:
			// Non-fatal result parse error. Warn
			// but keep going.
			fmt.Fprintln(wErr, rec)
		case *benchfmt.Result:
			nParsed++
			if ok, err := filter.Apply(rec); !ok {
				nFiltered++
				if err != nil {
					// Print the reason we rejected this result.
					fmt.Fprintln(wErr, err)
				}
				continue
			}
			if !t.Add(rec) {
				nUnitFiltered++
			}
		}
	}
	if err := r.Err(); err != nil {
		return err
	}
	if nParsed == 0 {
		return fmt.Errorf("no data")
	} else if nUnitFiltered == nParsed {
		return fmt.Errorf("no data has unit %s", t.unit)
	} else if nUnitFiltered+nFiltered == nParsed {
		return fmt.Errorf("all data filtered")
	}
	if nFiltered > 0 || nUnitFiltered > 0 {
		fmt.Fprintf(wErr, "%d records did not match the filter, %d records had no %s\n", nFiltered, nUnitFiltered, t.unit)
	}
	return nil
}

// projString returns the fields of p, as written in a projection.
func projString(p *benchproc.Projection) string {
	var out strings.Builder
	for i, field := range p.FlattenedFields() {
		if i > 0 {
			out.WriteByte(',')
		}
		out.WriteString(field.String())
	}
	return out.String()
}

func sortedKeys(set map[benchproc.Key]struct{}) []benchproc.Key {
	sl := make([]benchproc.Key, 0, len(set))
	for k := range set {
		sl = append(sl, k)
	}
	benchproc.SortKeys(sl)
	return sl
}
