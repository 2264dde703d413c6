// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
)

// recorder is a Surface that records the calls made on it.
type recorder struct {
	calls []string

	style  *Style
	lines  []recLine
	bars   []recBars
	hists  []recHist
	xTicks []Tick
	yTicks []Tick

	title, xlabel, ylabel string
	legendSize            float64
	flushed               bool
}

type recLine struct {
	xs, ys []float64
	ls     LineStyle
	label  string
}

type recBars struct {
	xs, heights []float64
	width       float64
	fill        color.Color
	label       string
}

type recHist struct {
	samples [][]float64
	bins    int
	fills   []color.Color
	labels  []string
	edge    LineStyle
}

func (r *recorder) SetStyle(st Style) error {
	r.calls = append(r.calls, "SetStyle")
	r.style = &st
	return nil
}

func (r *recorder) Line(xs, ys []float64, ls LineStyle, label string) error {
	r.calls = append(r.calls, "Line")
	r.lines = append(r.lines, recLine{xs, ys, ls, label})
	return nil
}

func (r *recorder) Bars(xs, heights []float64, width float64, fill color.Color, label string) error {
	r.calls = append(r.calls, "Bars")
	r.bars = append(r.bars, recBars{xs, heights, width, fill, label})
	return nil
}

func (r *recorder) Hist(samples [][]float64, bins int, fills []color.Color, labels []string, edge LineStyle) error {
	r.calls = append(r.calls, "Hist")
	r.hists = append(r.hists, recHist{samples, bins, fills, labels, edge})
	return nil
}

func (r *recorder) Ticks(x, y []Tick) error {
	r.calls = append(r.calls, "Ticks")
	r.xTicks, r.yTicks = x, y
	return nil
}

func (r *recorder) Labels(title, xlabel, ylabel string) error {
	r.calls = append(r.calls, "Labels")
	r.title, r.xlabel, r.ylabel = title, xlabel, ylabel
	return nil
}

func (r *recorder) Legend(fontSize float64) error {
	r.calls = append(r.calls, "Legend")
	r.legendSize = fontSize
	return nil
}

func (r *recorder) Flush() error {
	r.calls = append(r.calls, "Flush")
	r.flushed = true
	return nil
}

// dataLines returns the solid (non-grid) lines.
func (r *recorder) dataLines() []recLine {
	var out []recLine
	for _, l := range r.lines {
		if !l.ls.Dashed {
			out = append(out, l)
		}
	}
	return out
}

// gridLines returns the dashed grid lines.
func (r *recorder) gridLines() []recLine {
	var out []recLine
	for _, l := range r.lines {
		if l.ls.Dashed {
			out = append(out, l)
		}
	}
	return out
}

func tickValues(ticks []Tick) []float64 {
	var out []float64
	for _, t := range ticks {
		out = append(out, t.Value)
	}
	return out
}

func tickLabels(ticks []Tick) []string {
	var out []string
	for _, t := range ticks {
		out = append(out, t.Label)
	}
	return out
}
