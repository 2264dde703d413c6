// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

// Style is the look applied to a chart when it is rendered. It is passed to
// each Render call; nothing about it is kept between renders.
type Style struct {
	// Font is the font family of all text, such as "serif".
	Font string
	// TeX selects TeX-style text rendering.
	TeX bool
	// Spines keeps the border lines around the plot area. The default style
	// removes all four.
	Spines bool

	// LegendFontSize is the legend text size in points.
	LegendFontSize float64

	// GridWidth and GridAlpha are the stroke width (in points) and opacity
	// of the dashed background grid lines.
	GridWidth float64
	GridAlpha float64
}

// DefaultStyle returns the standard chart style: serif TeX-style text, no
// spines, faint dashed grid lines and a small legend.
func DefaultStyle() Style {
	return Style{
		Font:           "serif",
		TeX:            true,
		LegendFontSize: 8,
		GridWidth:      0.5,
		GridAlpha:      0.3,
	}
}
