// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "image/color"

// A Surface is a plotting backend that charts draw on. Render calls its
// methods in a fixed order: SetStyle, Ticks, grid Lines, the chart's own
// drawing calls, Labels, Legend (only if the chart has legend labels) and
// finally Flush.
type Surface interface {
	// SetStyle applies the font and border settings of st.
	SetStyle(st Style) error

	// Line draws a line series through the points (xs[i], ys[i]).
	Line(xs, ys []float64, ls LineStyle, label string) error
	// Bars draws one bar of the given width centered on each xs[i], rising
	// from 0 to heights[i].
	Bars(xs, heights []float64, width float64, fill color.Color, label string) error
	// Hist bins each sample sequence into bins equal-width bins and draws
	// the result. fills and labels are indexed like samples.
	Hist(samples [][]float64, bins int, fills []color.Color, labels []string, edge LineStyle) error

	// Ticks sets the tick positions and labels of both axes.
	Ticks(x, y []Tick) error
	// Labels sets the title and axis labels. Empty strings are left unset.
	Labels(title, xlabel, ylabel string) error
	// Legend draws a frameless legend of all labeled series outside the
	// right edge of the plot area.
	Legend(fontSize float64) error

	// Flush writes or displays the finished figure.
	Flush() error
}

// LineStyle is the stroke of a line.
type LineStyle struct {
	Width  float64 // in points
	Color  color.Color
	Dashed bool
}

// A Tick is a labeled position on an axis.
type Tick struct {
	Value float64
	Label string
}
