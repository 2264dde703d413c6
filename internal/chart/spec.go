// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "slices"

// Spec describes the data and annotations of a single chart.
//
// Line and bar charts take their x values from exactly one of X (numeric) or
// Categories (categorical), and one or more y sequences in Y, each as long as
// the x values. Histograms take raw samples in Samples and no x or y data.
//
// The chart constructors copy the Spec, so the caller may reuse it.
type Spec struct {
	X          []float64
	Categories []string
	Y          [][]float64
	Samples    [][]float64

	// XStep and YStep are the distance between ticks on each axis. Zero
	// selects the defaults of 1 and 10.
	XStep, YStep float64

	Title  string
	XLabel string
	YLabel string

	// Legend holds one label per y sequence (or sample sequence). If it is
	// empty, no legend is drawn.
	Legend []string
}

const (
	defaultXStep = 1
	defaultYStep = 10
)

func (s Spec) clone() Spec {
	s.X = slices.Clone(s.X)
	s.Categories = slices.Clone(s.Categories)
	s.Y = cloneSeries(s.Y)
	s.Samples = cloneSeries(s.Samples)
	s.Legend = slices.Clone(s.Legend)
	if s.XStep == 0 {
		s.XStep = defaultXStep
	}
	if s.YStep == 0 {
		s.YStep = defaultYStep
	}
	return s
}

func cloneSeries(ss [][]float64) [][]float64 {
	if ss == nil {
		return nil
	}
	out := make([][]float64, len(ss))
	for i, s := range ss {
		out[i] = slices.Clone(s)
	}
	return out
}

// Shape is the layout of y data a chart accepts.
type Shape int

const (
	// ShapeFlat is exactly one y sequence.
	ShapeFlat Shape = iota
	// ShapeSeries is one or more y sequences of equal length.
	ShapeSeries
	// ShapeSamples is one or more sequences of raw samples and no y data.
	ShapeSamples
)

func (s Shape) String() string {
	switch s {
	case ShapeFlat:
		return "flat"
	case ShapeSeries:
		return "series"
	case ShapeSamples:
		return "samples"
	}
	return "Shape(?)"
}
