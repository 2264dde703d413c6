// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chartfile reads chart descriptions written in YAML.
//
// A chart file looks like:
//
//	kind: multibar
//	title: Throughput
//	x: [small, medium, large]
//	y:
//	  - [10, 30, 70]
//	  - [20, 40, 80]
//	legend: [before, after]
//	style:
//	  tex: false
//
// Kind is one of line, bar, multibar or histogram. X holds numbers or
// category names. Y and samples may be a single sequence or a list of
// sequences.
package chartfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aclements/fancyplot/internal/chart"
	"gopkg.in/yaml.v3"
)

// DefaultBins is the number of histogram bins when a file does not say.
const DefaultBins = 10

// A Description is a parsed chart file.
type Description struct {
	Kind  string
	Spec  chart.Spec
	Bins  int
	Style chart.Style
}

// file is the YAML layout of a chart file. Fields whose shape depends on
// their contents are kept as nodes so errors can point at them.
type file struct {
	Kind    yaml.Node `yaml:"kind"`
	Title   string    `yaml:"title"`
	XLabel  string    `yaml:"xlabel"`
	YLabel  string    `yaml:"ylabel"`
	X       yaml.Node `yaml:"x"`
	Y       yaml.Node `yaml:"y"`
	Samples yaml.Node `yaml:"samples"`
	Bins    *int      `yaml:"bins"`
	XStep   float64   `yaml:"xstep"`
	YStep   float64   `yaml:"ystep"`
	Legend  []string  `yaml:"legend"`
	Style   styleFile `yaml:"style"`
}

// styleFile overrides fields of chart.DefaultStyle. Absent fields keep
// their defaults.
type styleFile struct {
	Font           *string  `yaml:"font"`
	TeX            *bool    `yaml:"tex"`
	Spines         *bool    `yaml:"spines"`
	LegendFontSize *float64 `yaml:"legendfontsize"`
	GridWidth      *float64 `yaml:"gridwidth"`
	GridAlpha      *float64 `yaml:"gridalpha"`
}

// Load reads and parses the chart file at path.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

// Parse parses a chart file. name is used in error positions.
func Parse(name string, data []byte) (*Description, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty chart file", name)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	d := &Description{
		Bins:  DefaultBins,
		Style: f.Style.apply(chart.DefaultStyle()),
		Spec: chart.Spec{
			Title:  f.Title,
			XLabel: f.XLabel,
			YLabel: f.YLabel,
			XStep:  f.XStep,
			YStep:  f.YStep,
			Legend: f.Legend,
		},
	}
	if f.Bins != nil {
		d.Bins = *f.Bins
	}

	var err error
	if d.Kind, err = kind(name, &f.Kind); err != nil {
		return nil, err
	}
	if d.Spec.X, d.Spec.Categories, err = xValues(name, &f.X); err != nil {
		return nil, err
	}
	if d.Spec.Y, err = sequences(name, &f.Y); err != nil {
		return nil, err
	}
	if d.Spec.Samples, err = sequences(name, &f.Samples); err != nil {
		return nil, err
	}
	return d, nil
}

var kinds = map[string]bool{"line": true, "bar": true, "multibar": true, "histogram": true}

func kind(name string, n *yaml.Node) (string, error) {
	if n.Kind == 0 {
		return "", fmt.Errorf("%s: missing chart kind", name)
	}
	if n.Kind != yaml.ScalarNode || !kinds[n.Value] {
		return "", errorAt{name, n.Line, fmt.Errorf("unknown chart kind %q", n.Value)}
	}
	return n.Value, nil
}

// xValues decodes x as numbers if every element is a number and as
// category names otherwise.
func xValues(name string, n *yaml.Node) ([]float64, []string, error) {
	if n.Kind == 0 {
		return nil, nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, nil, errorAt{name, n.Line, fmt.Errorf("x must be a list")}
	}
	var xs []float64
	if err := n.Decode(&xs); err == nil {
		return xs, nil, nil
	}
	var cats []string
	if err := n.Decode(&cats); err != nil {
		return nil, nil, errorAt{name, n.Line, err}
	}
	return nil, cats, nil
}

// sequences decodes a flat list of numbers as one sequence, or a list of
// lists as one sequence per element.
func sequences(name string, n *yaml.Node) ([][]float64, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, errorAt{name, n.Line, fmt.Errorf("expected a list of numbers or a list of lists")}
	}
	if len(n.Content) > 0 && n.Content[0].Kind == yaml.SequenceNode {
		var out [][]float64
		if err := n.Decode(&out); err != nil {
			return nil, errorAt{name, n.Line, err}
		}
		return out, nil
	}
	var flat []float64
	if err := n.Decode(&flat); err != nil {
		return nil, errorAt{name, n.Line, err}
	}
	return [][]float64{flat}, nil
}

func (s styleFile) apply(st chart.Style) chart.Style {
	if s.Font != nil {
		st.Font = *s.Font
	}
	if s.TeX != nil {
		st.TeX = *s.TeX
	}
	if s.Spines != nil {
		st.Spines = *s.Spines
	}
	if s.LegendFontSize != nil {
		st.LegendFontSize = *s.LegendFontSize
	}
	if s.GridWidth != nil {
		st.GridWidth = *s.GridWidth
	}
	if s.GridAlpha != nil {
		st.GridAlpha = *s.GridAlpha
	}
	return st
}

// Chart returns the chart the description names. The chart is validated
// when it is rendered.
func (d *Description) Chart() chart.Chart {
	switch d.Kind {
	case "line":
		return chart.NewLine(d.Spec)
	case "bar":
		return chart.NewBar(d.Spec)
	case "multibar":
		return chart.NewMultiBar(d.Spec)
	case "histogram":
		return chart.NewHistogram(d.Spec, d.Bins)
	}
	panic("unknown chart kind " + d.Kind)
}

type errorAt struct {
	file string
	line int
	err  error
}

func (e errorAt) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.file, e.line, e.err.Error())
}

func (e errorAt) Unwrap() error {
	return e.err
}
