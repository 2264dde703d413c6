// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

// lineWidth is the stroke width of data lines, in points.
const lineWidth = 1

// Line is a line chart with one line per y sequence.
type Line struct {
	template
}

// NewLine returns a line chart of spec. Categorical x values are drawn at
// 0, 1, ... and labeled with the categories.
func NewLine(spec Spec) *Line {
	return &Line{newTemplate("line", ShapeSeries, spec, false)}
}

func (c *Line) GridRange(r Range) []float64 {
	return arange(r.MinX, r.MaxX+c.spec.XStep, c.spec.XStep)
}

func (c *Line) Draw(s Surface) error {
	for i, y := range c.spec.Y {
		ls := LineStyle{Width: lineWidth, Color: PaletteColor(i)}
		if err := s.Line(c.xs, y, ls, c.label(i)); err != nil {
			return err
		}
	}
	return nil
}
