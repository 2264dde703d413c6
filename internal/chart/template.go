// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders line charts, bar charts and histograms with a fixed
// house style on top of a plotting backend.
//
// Every chart goes through the same pipeline in [Render]: validate the
// input, apply the style, compute the data range, ticks and grid, draw the
// data, annotate, and flush. The chart variants ([Line], [Bar], [MultiBar]
// and [Histogram]) differ only in validation, grid range and drawing.
package chart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/stats"
)

// Chart is one of the chart variants in this package.
type Chart interface {
	// Shape reports the y data layout the chart accepts.
	Shape() Shape
	// Validate checks the chart's data against its shape and returns an
	// *InvalidInputError if it does not conform.
	Validate() error
	// Range computes the bounds of the drawn data.
	Range() Range
	// Ticks computes the ticks of both axes for data range r.
	Ticks(r Range) (x, y []Tick)
	// GridRange returns the sorted x positions spanned by the background
	// grid lines.
	GridRange(r Range) []float64
	// Draw draws the chart's data on s.
	Draw(s Surface) error

	base() *template
}

// Range is the bounds of a chart's data, recomputed on each render.
type Range struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// template holds the state and the default pipeline steps shared by all
// chart variants.
type template struct {
	kind  string
	shape Shape
	spec  Spec

	// xs is the x position of each data point. It is spec.X, or 0..n-1 if
	// the x values are categorical or the chart places them at integers.
	xs []float64
	// xLabels labels the integer positions in xs, or is nil if the x
	// values are drawn at their own values.
	xLabels []string

	rendered bool
}

func newTemplate(kind string, shape Shape, spec Spec, integerX bool) template {
	spec = spec.clone()
	t := template{kind: kind, shape: shape, spec: spec}
	switch {
	case spec.Categories != nil:
		t.xs = positions(len(spec.Categories))
		t.xLabels = spec.Categories
	case integerX:
		t.xs = positions(len(spec.X))
		t.xLabels = make([]string, len(spec.X))
		for i, x := range spec.X {
			t.xLabels[i] = formatNum(x)
		}
	default:
		t.xs = spec.X
	}
	return t
}

func positions(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

func (t *template) base() *template {
	return t
}

// Spec returns a copy of the chart's specification.
func (t *template) Spec() Spec {
	return t.spec.clone()
}

func (t *template) Shape() Shape {
	return t.shape
}

func (t *template) Validate() error {
	s := &t.spec
	if s.XStep < 0 || s.YStep < 0 || isBad(s.XStep) || isBad(s.YStep) {
		return invalidf(t.kind, "tick steps must be positive, got x=%v y=%v", s.XStep, s.YStep)
	}
	if s.Samples != nil {
		return invalidf(t.kind, "raw samples are only accepted by histograms")
	}
	if s.X != nil && s.Categories != nil {
		return invalidf(t.kind, "x data must be either numeric or categorical, not both")
	}
	n := len(t.xs)
	if n == 0 {
		return invalidf(t.kind, "no x data")
	}
	for _, x := range s.X {
		if isBad(x) {
			return invalidf(t.kind, "x data contains non-finite value %v", x)
		}
	}
	if len(s.Y) == 0 {
		return invalidf(t.kind, "no y data")
	}
	if t.shape == ShapeFlat && len(s.Y) != 1 {
		return invalidf(t.kind, "this chart plots only one bar series, got %d nested series", len(s.Y))
	}
	for i, y := range s.Y {
		if len(y) != n {
			return invalidf(t.kind, "y series %d has %d values, want %d to match x", i, len(y), n)
		}
		for _, v := range y {
			if isBad(v) {
				return invalidf(t.kind, "y series %d contains non-finite value %v", i, v)
			}
		}
	}
	return checkLegend(t.kind, s.Legend, len(s.Y))
}

func checkLegend(kind string, legend []string, series int) error {
	if len(legend) != 0 && len(legend) != series {
		return invalidf(kind, "got %d legend labels for %d series", len(legend), series)
	}
	return nil
}

func isBad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

func (t *template) Range() Range {
	var r Range
	r.MinX, r.MaxX = stats.Bounds(t.xs)
	for i, y := range t.spec.Y {
		lo, hi := stats.Bounds(y)
		if i == 0 {
			r.MinY, r.MaxY = lo, hi
		} else {
			r.MinY, r.MaxY = min(r.MinY, lo), max(r.MaxY, hi)
		}
	}
	return r
}

func (t *template) Ticks(r Range) (x, y []Tick) {
	for _, v := range arange(r.MinY, r.MaxY+t.spec.YStep, t.spec.YStep) {
		y = append(y, Tick{v, formatNum(v)})
	}
	for _, v := range arange(r.MinX, r.MaxX+t.spec.XStep, t.spec.XStep) {
		x = append(x, Tick{v, t.xLabel(v)})
	}
	return x, y
}

// xLabel returns the tick label at x position v.
func (t *template) xLabel(v float64) string {
	if t.xLabels == nil {
		return formatNum(v)
	}
	i := int(v)
	if float64(i) != v || i < 0 || i >= len(t.xLabels) {
		return ""
	}
	return t.xLabels[i]
}

func (t *template) GridRange(r Range) []float64 {
	panic("chart: GridRange not implemented")
}

func (t *template) Draw(s Surface) error {
	panic("chart: Draw not implemented")
}

// label returns the legend label of series i, or "" if there is none.
func (t *template) label(i int) string {
	if i < len(t.spec.Legend) {
		return t.spec.Legend[i]
	}
	return ""
}

// Render draws c on s using style st and flushes s.
//
// Invalid chart data is reported as an *InvalidInputError before any method
// of s is called. A chart can be rendered only once; later calls return
// ErrRendered.
func Render(s Surface, c Chart, st Style) error {
	t := c.base()
	if t.rendered {
		return ErrRendered
	}
	t.rendered = true

	if err := c.Validate(); err != nil {
		return err
	}
	if err := s.SetStyle(st); err != nil {
		return fmt.Errorf("applying style: %w", err)
	}

	r := c.Range()
	xTicks, yTicks := c.Ticks(r)
	if err := s.Ticks(xTicks, yTicks); err != nil {
		return fmt.Errorf("setting ticks: %w", err)
	}
	if err := drawGrid(s, c.GridRange(r), yTicks, st); err != nil {
		return fmt.Errorf("drawing grid: %w", err)
	}

	if err := c.Draw(s); err != nil {
		return fmt.Errorf("drawing %s chart: %w", t.kind, err)
	}

	if err := s.Labels(t.spec.Title, t.spec.XLabel, t.spec.YLabel); err != nil {
		return fmt.Errorf("setting labels: %w", err)
	}
	if len(t.spec.Legend) > 0 {
		if err := s.Legend(st.LegendFontSize); err != nil {
			return fmt.Errorf("drawing legend: %w", err)
		}
	}
	return s.Flush()
}

// drawGrid draws one dashed horizontal line at each y tick, spanning the
// grid range.
func drawGrid(s Surface, grid []float64, yTicks []Tick, st Style) error {
	if len(grid) == 0 {
		return nil
	}
	ls := LineStyle{
		Width:  st.GridWidth,
		Color:  color.NRGBA{A: uint8(math.Round(st.GridAlpha * 255))},
		Dashed: true,
	}
	for _, tick := range yTicks {
		ys := make([]float64, len(grid))
		for i := range ys {
			ys[i] = tick.Value
		}
		if err := s.Line(grid, ys, ls, ""); err != nil {
			return err
		}
	}
	return nil
}

// arange returns the values start, start+step, ... that are less than stop.
func arange(start, stop, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// formatNum formats v without trailing zeros, hiding float rounding noise.
func formatNum(v float64) string {
	v = math.Round(v*1e9) / 1e9
	if v == 0 {
		v = 0 // no "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
