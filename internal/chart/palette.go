// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "github.com/lucasb-eyer/go-colorful"

var tableau20 = [...][3]uint8{
	{31, 119, 180}, {174, 199, 232}, {255, 127, 14}, {255, 187, 120},
	{44, 160, 44}, {152, 223, 138}, {214, 39, 40}, {255, 152, 150},
	{148, 103, 189}, {197, 176, 213}, {140, 86, 75}, {196, 156, 148},
	{227, 119, 194}, {247, 182, 210}, {127, 127, 127}, {199, 199, 199},
	{188, 189, 34}, {219, 219, 141}, {23, 190, 207}, {158, 218, 229},
}

// palette is tableau20 normalized to [0, 1]. It is never modified.
var palette = func() [len(tableau20)]colorful.Color {
	var p [len(tableau20)]colorful.Color
	for i, rgb := range tableau20 {
		p[i] = colorful.Color{
			R: float64(rgb[0]) / 255,
			G: float64(rgb[1]) / 255,
			B: float64(rgb[2]) / 255,
		}
	}
	return p
}()

// PaletteSize is the number of distinct series colors.
const PaletteSize = len(tableau20)

// PaletteColor returns the color of series i. Colors repeat every
// PaletteSize series.
func PaletteColor(i int) colorful.Color {
	return palette[i%PaletteSize]
}
