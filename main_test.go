// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const benchResults = `goos: linux
BenchmarkEncode-8   	1000	      1500 ns/op
BenchmarkDecode-8   	1000	      3000 ns/op
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o666))
	return path
}

func TestBenchmarkGnuplotCode(t *testing.T) {
	in := writeFile(t, "bench.txt", benchResults)
	var out, wErr strings.Builder
	err := fancyplot(&out, &wErr, []string{"-backend", "gnuplot", "-format", "gnuplot", "-o", "-", "-title", "Codec", in})
	require.NoError(t, err, wErr.String())

	code := out.String()
	assert.Contains(t, code, `set title "Codec"`)
	assert.Contains(t, code, `set xlabel ".name"`)
	assert.Contains(t, code, `set ylabel "µsec/op"`)
	assert.Contains(t, code, `set xtics ("Encode" 0, "Decode" 1)`)
	assert.Contains(t, code, "with boxes")
}

func TestBenchmarkCompare(t *testing.T) {
	oldPath := writeFile(t, "old.txt", benchResults)
	newPath := writeFile(t, "new.txt", strings.ReplaceAll(benchResults, "00 ns/op", "50 ns/op"))
	var out, wErr strings.Builder
	err := fancyplot(&out, &wErr, []string{"-backend", "gnuplot", "-format", "gnuplot", "-o", "-", "-transform", "compare", "old=" + oldPath, "new=" + newPath})
	require.NoError(t, err, wErr.String())
	assert.Contains(t, out.String(), `set ylabel "sec/op vs old"`)
}

func TestConfigPNG(t *testing.T) {
	cfg := writeFile(t, "chart.yaml", `
kind: line
x: [0, 1, 2, 3, 4]
y: [10, 30, 70, 100, 150]
style:
  tex: false
`)
	outPath := filepath.Join(t.TempDir(), "chart.png")
	err := fancyplot(&strings.Builder{}, &strings.Builder{}, []string{"-config", cfg, "-o", outPath, "-size", "3x2"})
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestConfigErrors(t *testing.T) {
	cfg := writeFile(t, "chart.yaml", "kind: bar\nx: [A, B]\ny: [[1, 2], [3, 4]]\n")
	err := fancyplot(&strings.Builder{}, &strings.Builder{}, []string{"-config", cfg, "-o", "-"})
	assert.ErrorContains(t, err, "invalid input for bar chart")

	err = fancyplot(&strings.Builder{}, &strings.Builder{}, []string{"-config", cfg, "-backend", "vega", "-o", "-"})
	assert.EqualError(t, err, "unknown backend vega")

	err = fancyplot(&strings.Builder{}, &strings.Builder{}, []string{"-config", cfg, "-o", "-", "extra"})
	assert.EqualError(t, err, "-config does not take inputs")
}

func TestFailedRenderKeepsOutput(t *testing.T) {
	cfg := writeFile(t, "chart.yaml", "kind: bar\nx: [A, B]\ny: [[1, 2], [3, 4]]\n")
	outPath := writeFile(t, "chart.png", "previous chart")

	err := fancyplot(&strings.Builder{}, &strings.Builder{}, []string{"-config", cfg, "-o", outPath})
	assert.ErrorContains(t, err, "invalid input for bar chart")
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "previous chart", string(data))

	// A chart that cannot be rendered does not create -o either.
	missing := filepath.Join(t.TempDir(), "new.png")
	err = fancyplot(&strings.Builder{}, &strings.Builder{}, []string{"-config", cfg, "-o", missing})
	assert.Error(t, err)
	assert.NoFileExists(t, missing)
}

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("6x4.5")
	require.NoError(t, err)
	assert.Equal(t, 6.0, w)
	assert.Equal(t, 4.5, h)

	for _, bad := range []string{"6", "ax4", "6x", "0x4"} {
		_, _, err := parseSize(bad)
		assert.Error(t, err, bad)
	}
}
