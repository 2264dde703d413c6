// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/perf/benchfmt"
	"golang.org/x/perf/benchproc"
)

const oldResults = `goos: linux
goarch: amd64
BenchmarkEncode-8   	1000	      1500 ns/op	     64 B/op
BenchmarkEncode-8   	1000	      1700 ns/op	     64 B/op
BenchmarkEncode-8   	1000	      1600 ns/op	     64 B/op
BenchmarkDecode-8   	1000	      3000 ns/op	    128 B/op
`

const newResults = `goos: linux
goarch: amd64
BenchmarkEncode-8   	1000	       800 ns/op	     32 B/op
BenchmarkDecode-8   	1000	      1500 ns/op	    128 B/op
BenchmarkDecode-8   	1000	      1500 ns/op	    128 B/op
`

func newTestTable(t *testing.T, unit string, compare bool) (*Table, *benchproc.Filter) {
	t.Helper()
	filter, err := benchproc.NewFilter("*")
	require.NoError(t, err)
	var parser benchproc.ProjectionParser
	x, err := parser.Parse(".name", filter)
	require.NoError(t, err)
	series, err := parser.Parse(".file", filter)
	require.NoError(t, err)

	c := NewConfig()
	c.SetProjection(DimX, x)
	c.SetProjection(DimSeries, series)
	c.SetUnit(unit)
	c.SetCompare(compare)
	tab, err := NewTable(c)
	require.NoError(t, err)
	return tab, filter
}

func readBoth(t *testing.T, tab *Table, filter *benchproc.Filter) string {
	t.Helper()
	var wErr strings.Builder
	require.NoError(t, tab.Read(benchfmt.NewReader(strings.NewReader(oldResults), "old.txt"), filter, &wErr))
	require.NoError(t, tab.Read(benchfmt.NewReader(strings.NewReader(newResults), "new.txt"), filter, &wErr))
	return wErr.String()
}

func TestSpec(t *testing.T) {
	tab, filter := newTestTable(t, "sec/op", false)
	readBoth(t, tab, filter)

	var wErr strings.Builder
	spec, err := tab.Spec(&wErr)
	require.NoError(t, err)
	assert.Empty(t, wErr.String())

	assert.ElementsMatch(t, []string{"Encode", "Decode"}, spec.Categories)
	assert.ElementsMatch(t, []string{"old.txt", "new.txt"}, spec.Legend)
	require.Len(t, spec.Y, 2)
	assert.Equal(t, ".name", spec.XLabel)
	assert.True(t, strings.HasSuffix(spec.YLabel, "sec/op"), spec.YLabel)

	// Medians are 1600 and 3000 ns in old, 800 and 1500 ns in new, all
	// scaled by the same factor.
	idx := func(list []string, s string) int {
		for i, v := range list {
			if v == s {
				return i
			}
		}
		t.Fatalf("%q not in %v", s, list)
		return -1
	}
	oldY := spec.Y[idx(spec.Legend, "old.txt")]
	newY := spec.Y[idx(spec.Legend, "new.txt")]
	enc, dec := idx(spec.Categories, "Encode"), idx(spec.Categories, "Decode")
	assert.InDelta(t, 1600.0/3000, oldY[enc]/oldY[dec], 1e-9)
	assert.InDelta(t, 2.0, oldY[enc]/newY[enc], 1e-9)
	assert.InDelta(t, 2.0, oldY[dec]/newY[dec], 1e-9)
	assert.Greater(t, spec.YStep, 0.0)
}

func TestSpecCompare(t *testing.T) {
	tab, filter := newTestTable(t, "sec/op", true)
	readBoth(t, tab, filter)

	spec, err := tab.Spec(&strings.Builder{})
	require.NoError(t, err)
	require.Len(t, spec.Y, 1)
	assert.Empty(t, spec.Legend)
	for _, v := range spec.Y[0] {
		assert.InDelta(t, 0.5, v, 1e-9)
	}
	assert.Contains(t, spec.YLabel, "sec/op vs ")
}

func TestSpecMissingCell(t *testing.T) {
	tab, filter := newTestTable(t, "B/op", false)
	var wErr strings.Builder
	require.NoError(t, tab.Read(benchfmt.NewReader(strings.NewReader(oldResults), "old.txt"), filter, &wErr))
	extra := "BenchmarkParse-8 1000 10 ns/op 16 B/op\n"
	require.NoError(t, tab.Read(benchfmt.NewReader(strings.NewReader(extra), "new.txt"), filter, &wErr))

	wErr.Reset()
	spec, err := tab.Spec(&wErr)
	require.NoError(t, err)
	assert.Len(t, spec.Categories, 3)
	assert.Contains(t, wErr.String(), "no B/op for Parse in old.txt")
	assert.Contains(t, wErr.String(), "no B/op for Encode in new.txt")
}

func TestReadErrors(t *testing.T) {
	tab, filter := newTestTable(t, "allocs/op", false)
	err := tab.Read(benchfmt.NewReader(strings.NewReader(oldResults), "old.txt"), filter, &strings.Builder{})
	assert.EqualError(t, err, "no data has unit allocs/op")

	err = tab.Read(benchfmt.NewReader(strings.NewReader("goos: linux\n"), "empty.txt"), filter, &strings.Builder{})
	assert.EqualError(t, err, "no data")

	_, err = tab.Spec(&strings.Builder{})
	assert.EqualError(t, err, "no data")
}

func TestCompareNeedsTwoSeries(t *testing.T) {
	tab, filter := newTestTable(t, "sec/op", true)
	require.NoError(t, tab.Read(benchfmt.NewReader(strings.NewReader(oldResults), "old.txt"), filter, &strings.Builder{}))
	_, err := tab.Spec(&strings.Builder{})
	assert.ErrorContains(t, err, "at least two series")
}

func TestNewTableNeedsProjections(t *testing.T) {
	_, err := NewTable(NewConfig())
	assert.EqualError(t, err, "no projection for the x dimension")
}

func TestDimNames(t *testing.T) {
	for d := Dim(0); d < dimMax; d++ {
		got, ok := DimFromName(d.Name())
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := DimFromName("color")
	assert.False(t, ok)
}

func TestNiceStep(t *testing.T) {
	assert.Equal(t, 1.0, niceStep(nil))
	assert.Equal(t, 20.0, niceStep([][]float64{{150}}))
	assert.InDelta(t, 0.5, niceStep([][]float64{{1, 3.2}}), 1e-12)
	assert.InDelta(t, 0.1, niceStep([][]float64{{0.9, -1}}), 1e-12)
}
