// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnuplot

import (
	"image/color"
	"strings"
	"testing"

	"github.com/aclements/fancyplot/internal/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c chart.Chart, st chart.Style) string {
	t.Helper()
	var out strings.Builder
	require.NoError(t, chart.Render(New(&out, "", 0, 0), c, st))
	return out.String()
}

func TestLineChartCode(t *testing.T) {
	code := render(t, chart.NewLine(chart.Spec{
		X:      []float64{0, 1, 2, 3, 4},
		Y:      [][]float64{{10, 30, 70, 100, 150}, {20, 40, 80, 120, 30}},
		Title:  "Sample plot",
		XLabel: "Sample x-axis",
		Legend: []string{"Line 1", "Line 2"},
	}), chart.DefaultStyle())

	assert.Contains(t, code, "set border 0\n")
	assert.Contains(t, code, "set termoption enhanced\n")
	assert.Contains(t, code, `set title "Sample plot"`)
	assert.Contains(t, code, `set xlabel "Sample x-axis"`)
	assert.NotContains(t, code, "set ylabel")
	assert.Contains(t, code, `set xtics ("0" 0, "1" 1, "2" 2, "3" 3, "4" 4)`)
	assert.Contains(t, code, `set key outside right center vertical nobox font ",8"`)
	assert.Contains(t, code, `with lines lw 1 lc rgb "#1f77b4" title "Line 1"`)
	assert.Contains(t, code, `with lines lw 1 lc rgb "#aec7e8" title "Line 2"`)
	// Grid lines are dashed, translucent black.
	assert.Contains(t, code, `with lines lw 0.5 lc rgb "#b2000000" dt 2 notitle`)
	assert.NotContains(t, code, "set terminal")

	lines := strings.Split(code, "\n")
	var plot string
	for _, l := range lines {
		if strings.HasPrefix(l, "plot ") {
			plot = l
		}
	}
	// 15 grid lines and 2 data lines.
	assert.Equal(t, 17, strings.Count(plot, "'-'"))
	assert.Equal(t, 17, strings.Count(code, "\ne\n"))
}

func TestBarChartCode(t *testing.T) {
	st := chart.DefaultStyle()
	st.TeX = false
	st.Spines = true
	code := render(t, chart.NewBar(chart.Spec{
		Categories: []string{"A", "B", "C"},
		Y:          [][]float64{{10, 30, 70}},
	}), st)

	assert.NotContains(t, code, "set border 0")
	assert.Contains(t, code, "set termoption noenhanced\n")
	assert.Contains(t, code, `set xtics ("A" 0, "B" 1, "C" 2)`)
	assert.Contains(t, code, `'-' using 1:2:3 with boxes fc rgb "#1f77b4" notitle`)
	assert.Contains(t, code, "0 10 0.8\n1 30 0.8\n2 70 0.8\ne\n")
	assert.NotContains(t, code, "set key outside")
}

func TestHistogramCode(t *testing.T) {
	code := render(t, chart.NewHistogram(chart.Spec{
		Samples: [][]float64{{0, 1, 2, 3, 4}, {10, 20}},
		Legend:  []string{"a", "b"},
	}, 4), chart.DefaultStyle())

	assert.Contains(t, code, "bin1(x) = x >= 4 ? 3.5 : 0 + 1*(floor((x-0)/1)+0.5)\n")
	assert.Contains(t, code, "bin2(x) = x >= 20 ? 18.75 : 10 + 2.5*(floor((x-10)/2.5)+0.5)\n")
	assert.Contains(t, code, `'-' using (bin1($1)):(1.0) smooth frequency with boxes fs solid 1.0 border lc rgb "#000000" lw 0.5 fc rgb "#1f77b4" title "a"`)
	assert.Contains(t, code, `fc rgb "#aec7e8" title "b"`)
	assert.Contains(t, code, `set ytics ("0%" 0, "10%" 10)`)
}

func TestTerminals(t *testing.T) {
	s := New(&strings.Builder{}, "jpeg", 0, 0)
	require.NoError(t, s.Line([]float64{0}, []float64{0}, chart.LineStyle{Width: 1}, ""))
	assert.ErrorContains(t, s.Flush(), "unknown output type jpeg")

	assert.ErrorContains(t, New(&strings.Builder{}, "", 0, 0).Flush(), "no data")
}

func TestGpColor(t *testing.T) {
	assert.Equal(t, `"#000000"`, gpColor(nil))
	assert.Equal(t, `"#ff8000"`, gpColor(color.RGBA{255, 128, 0, 255}))
	assert.Equal(t, `"#7f000000"`, gpColor(color.NRGBA{A: 128}))
	assert.Equal(t, `"#FF000000"`, gpColor(color.Transparent))
}
