// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdata

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/fancyplot/internal/chart"
	"golang.org/x/perf/benchmath"
	"golang.org/x/perf/benchunit"
)

// Spec summarizes each (x, series) cell of the table to its median and
// returns the result as bar chart data, with one category per X key and one
// y sequence per series key. Cells with no measurements are charted as 0 and
// reported to wErr.
func (t *Table) Spec(wErr io.Writer) (chart.Spec, error) {
	if len(t.cells) == 0 {
		return chart.Spec{}, fmt.Errorf("no data")
	}
	xs := sortedKeys(t.xs)
	series := sortedKeys(t.series)

	// Compute the center of every cell.
	centers := make([][]float64, len(series))
	missing := make([][]bool, len(series))
	for i, s := range series {
		centers[i] = make([]float64, len(xs))
		missing[i] = make([]bool, len(xs))
		for j, x := range xs {
			vals, ok := t.cells[cell{x, s}]
			if !ok {
				missing[i][j] = true
				continue
			}
			centers[i][j] = t.summarize(vals)
		}
	}

	var yLabel string
	if t.compare {
		var err error
		centers, missing, err = compare(centers, missing)
		if err != nil {
			return chart.Spec{}, err
		}
		yLabel = fmt.Sprintf("%s vs %s", t.unit, series[0].StringValues())
		series = series[1:]
	} else {
		yLabel = scale(centers, t.unit)
	}

	for i, s := range series {
		for j, x := range xs {
			if missing[i][j] {
				fmt.Fprintf(wErr, "no %s for %s in %s\n", t.unit, x.StringValues(), s.StringValues())
			}
		}
	}

	spec := chart.Spec{
		Categories: make([]string, len(xs)),
		Y:          centers,
		XStep:      1,
		YStep:      niceStep(centers),
		XLabel:     projString(t.proj.Get(DimX)),
		YLabel:     yLabel,
	}
	for i, x := range xs {
		spec.Categories[i] = x.StringValues()
	}
	if len(series) > 1 {
		for _, s := range series {
			spec.Legend = append(spec.Legend, s.StringValues())
		}
	}
	return spec, nil
}

// summarize returns the median of vals.
func (t *Table) summarize(vals []float64) float64 {
	sample := benchmath.NewSample(vals, &benchmath.DefaultThresholds)
	return benchmath.AssumeNothing.Summary(sample, t.confidence).Center
}

// compare normalizes each series against the first series at the same X
// and drops the first series. A value is missing if it or its baseline is.
func compare(centers [][]float64, missing [][]bool) ([][]float64, [][]bool, error) {
	if len(centers) < 2 {
		return nil, nil, fmt.Errorf("comparing needs at least two series, have %d", len(centers))
	}
	base, baseMissing := centers[0], missing[0]
	centers, missing = centers[1:], missing[1:]
	for i := range centers {
		for j := range centers[i] {
			if baseMissing[j] || base[j] == 0 {
				missing[i][j] = true
			}
			if missing[i][j] {
				centers[i][j] = 0
				continue
			}
			centers[i][j] /= base[j]
		}
	}
	return centers, missing, nil
}

// scale rescales centers in place to a common SI or binary prefix for unit
// and returns the axis label.
func scale(centers [][]float64, unit string) string {
	hi := 0.0
	for _, vals := range centers {
		for _, v := range vals {
			hi = max(hi, v)
		}
	}
	// Pass only the highest value. Otherwise this will try to pick a scale
	// that keeps precision for the *smallest* value, which isn't what you
	// want on an axis.
	scaler := benchunit.CommonScale([]float64{hi}, benchunit.ClassOf(unit))
	for _, vals := range centers {
		for j := range vals {
			vals[j] /= scaler.Factor
		}
	}
	return scaler.Prefix + unit
}

// niceStep returns a tick step of 1, 2 or 5 times a power of ten that
// splits the largest value into at most 10 steps.
func niceStep(centers [][]float64) float64 {
	hi := 0.0
	for _, vals := range centers {
		for _, v := range vals {
			hi = max(hi, math.Abs(v))
		}
	}
	if hi == 0 {
		return 1
	}
	raw := hi / 10
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5} {
		if m*mag >= raw {
			return m * mag
		}
	}
	return 10 * mag
}
