// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"slices"
	"strconv"

	"github.com/aclements/go-moremath/stats"
)

// edgeWidth is the width of the black outline of histogram bars, in points.
const edgeWidth = 0.5

// MaxBins is the largest number of bins a histogram accepts.
const MaxBins = 1 << 16

// A Bin is one histogram interval [Lo, Hi) and the number of samples in it.
// The last bin of a sequence also includes its upper edge.
type Bin struct {
	Lo, Hi float64
	Count  int
}

// Histogram is a histogram of one or more sample sequences.
type Histogram struct {
	template

	nbins int
	bins  [][]Bin // per sample sequence, computed on first use
}

// NewHistogram returns a histogram of spec.Samples with nbins bins. Each
// sample sequence is binned over its own range.
func NewHistogram(spec Spec, nbins int) *Histogram {
	return &Histogram{
		template: newTemplate("histogram", ShapeSamples, spec, false),
		nbins:    nbins,
	}
}

// binned returns the bins of every sample sequence. An out-of-range bin
// count yields no bins; Validate reports it.
func (c *Histogram) binned() [][]Bin {
	if c.bins != nil || c.nbins < 1 || c.nbins > MaxBins {
		return c.bins
	}
	c.bins = make([][]Bin, len(c.spec.Samples))
	for i, xs := range c.spec.Samples {
		if len(xs) > 0 {
			c.bins[i] = BinSamples(xs, c.nbins)
		}
	}
	return c.bins
}

// BinSamples divides the range of xs into n equal-width bins and counts the
// samples in each. A zero-width range is widened to [x-0.5, x+0.5]. xs must
// not be empty and n must be at least 1.
func BinSamples(xs []float64, n int) []Bin {
	lo, hi := stats.Bounds(xs)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	hist := stats.NewLinearHist(lo, hi, n)
	for _, x := range xs {
		hist.Add(x)
	}
	// Samples equal to hi land just past the last bin.
	_, counts, over := hist.Counts()

	bins := make([]Bin, n)
	width := (hi - lo) / float64(n)
	for i := range bins {
		bins[i] = Bin{
			Lo:    lo + float64(i)*width,
			Hi:    lo + float64(i+1)*width,
			Count: int(counts[i]),
		}
	}
	bins[n-1].Hi = hi
	bins[n-1].Count += int(over)
	return bins
}

// Bins returns the bins of sample sequence i.
func (c *Histogram) Bins(i int) []Bin {
	return slices.Clone(c.binned()[i])
}

// edges returns the bin edges of all sample sequences, concatenated.
func (c *Histogram) edges() []float64 {
	var edges []float64
	for _, bins := range c.binned() {
		for _, b := range bins {
			edges = append(edges, b.Lo)
		}
		if len(bins) > 0 {
			edges = append(edges, bins[len(bins)-1].Hi)
		}
	}
	return edges
}

func (c *Histogram) Validate() error {
	s := &c.spec
	if s.XStep < 0 || s.YStep < 0 || isBad(s.XStep) || isBad(s.YStep) {
		return invalidf(c.kind, "tick steps must be positive, got x=%v y=%v", s.XStep, s.YStep)
	}
	if s.X != nil || s.Categories != nil || s.Y != nil {
		return invalidf(c.kind, "histograms take raw samples, not x and y data")
	}
	if c.nbins < 1 {
		return invalidf(c.kind, "number of bins must be at least 1, got %d", c.nbins)
	}
	if c.nbins > MaxBins {
		return invalidf(c.kind, "number of bins must be at most %d, got %d", MaxBins, c.nbins)
	}
	if len(s.Samples) == 0 {
		return invalidf(c.kind, "no samples")
	}
	for i, xs := range s.Samples {
		if len(xs) == 0 {
			return invalidf(c.kind, "sample sequence %d is empty", i)
		}
		for _, x := range xs {
			if isBad(x) {
				return invalidf(c.kind, "sample sequence %d contains non-finite value %v", i, x)
			}
		}
	}
	return checkLegend(c.kind, s.Legend, len(s.Samples))
}

// Range returns the span of all bin edges in x and [0, tallest bin] in y.
func (c *Histogram) Range() Range {
	r := Range{}
	r.MinX, r.MaxX = stats.Bounds(c.edges())
	for _, bins := range c.binned() {
		for _, b := range bins {
			r.MaxY = max(r.MaxY, float64(b.Count))
		}
	}
	return r
}

func (c *Histogram) Ticks(r Range) (x, y []Tick) {
	for _, v := range arange(r.MinY, r.MaxY+c.spec.YStep, c.spec.YStep) {
		y = append(y, Tick{v, formatNum(v) + "%"})
	}
	for _, v := range arange(r.MinX, r.MaxX+c.spec.XStep, c.spec.XStep) {
		x = append(x, Tick{v, strconv.Itoa(int(v))})
	}
	return x, y
}

func (c *Histogram) GridRange(r Range) []float64 {
	edges := c.edges()
	grid := arange(r.MinX, r.MaxX, (r.MaxX-r.MinX)/float64(len(edges)))
	return append(grid, r.MaxX)
}

func (c *Histogram) Draw(s Surface) error {
	fills := make([]color.Color, len(c.spec.Samples))
	labels := make([]string, len(c.spec.Samples))
	for i := range fills {
		fills[i] = PaletteColor(i)
		labels[i] = c.label(i)
	}
	edge := LineStyle{Width: edgeWidth, Color: color.Black}
	return s.Hist(c.spec.Samples, c.nbins, fills, labels, edge)
}
