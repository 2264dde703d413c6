// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "slices"

// defaultBarWidth is the bar width of single-series bar charts, in x units.
const defaultBarWidth = 0.8

// Bar is a bar chart with a single bar per x value.
type Bar struct {
	template
}

// NewBar returns a bar chart of spec, which must have exactly one y
// sequence. Bars are placed at 0, 1, ... and labeled with the original x
// values.
func NewBar(spec Spec) *Bar {
	return &Bar{newTemplate("bar", ShapeFlat, spec, true)}
}

func (c *Bar) GridRange(r Range) []float64 {
	return barGrid(r, defaultBarWidth/2)
}

func (c *Bar) Draw(s Surface) error {
	return s.Bars(c.xs, c.spec.Y[0], defaultBarWidth, PaletteColor(0), c.label(0))
}

// MultiBar is a bar chart with one group of side-by-side bars per x value,
// one bar per y sequence.
type MultiBar struct {
	template
}

// NewMultiBar returns a grouped bar chart of spec. Groups are placed at 0,
// 1, ... and labeled with the original x values.
func NewMultiBar(spec Spec) *MultiBar {
	return &MultiBar{newTemplate("multibar", ShapeSeries, spec, true)}
}

// BarWidth returns the width of each bar: 0.25 for fewer than 5 series and
// 0.1 otherwise.
func (c *MultiBar) BarWidth() float64 {
	if len(c.spec.Y) < 5 {
		return 0.25
	}
	return 0.1
}

// span is the width of one group of bars.
func (c *MultiBar) span() float64 {
	return c.BarWidth() * float64(len(c.spec.Y))
}

func (c *MultiBar) GridRange(r Range) []float64 {
	return barGrid(r, c.span()/2)
}

func (c *MultiBar) Draw(s Surface) error {
	w := c.BarWidth()
	offset := -c.span()/2 + w/2
	for i, y := range c.spec.Y {
		xs := make([]float64, len(c.xs))
		for j, x := range c.xs {
			xs[j] = x + offset
		}
		if err := s.Bars(xs, y, w, PaletteColor(i), c.label(i)); err != nil {
			return err
		}
		offset += w
	}
	return nil
}

// barGrid returns the integer positions from r.MinX to r.MaxX plus one point
// pad beyond each end.
func barGrid(r Range, pad float64) []float64 {
	grid := arange(r.MinX, r.MaxX+1, 1)
	grid = append(grid, r.MinX-pad, r.MaxX+pad)
	slices.Sort(grid)
	return grid
}
