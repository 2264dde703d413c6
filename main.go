// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/aclements/fancyplot/internal/benchdata"
	"github.com/aclements/fancyplot/internal/chart"
	"github.com/aclements/fancyplot/internal/chart/gnuplot"
	"github.com/aclements/fancyplot/internal/chart/gonumplot"
	"github.com/aclements/fancyplot/internal/chartfile"
	"golang.org/x/perf/benchfmt"
	"golang.org/x/perf/benchproc"
	"gonum.org/v1/plot/vg"
)

func main() {
	if err := fancyplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

type dimFlag struct {
	dim benchdata.Dim
	def string
	doc string
}

var dimFlags = []dimFlag{
	{benchdata.DimX, ".name", "group bars on the X axis by values of `projection`"},
	{benchdata.DimSeries, ".file", "draw one bar series per value of `projection`"},
}

type transformOpt struct {
	doc string
	do  func(c *benchdata.Config)
}

var transformOpts = map[string]transformOpt{
	"compare": {"normalize each value against the first series at the same X",
		func(c *benchdata.Config) { c.SetCompare(true) }},
}

// pixelsPerInch converts -size to pixels for the gnuplot backend.
const pixelsPerInch = 96

func fancyplot(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("", flag.ExitOnError)
	flags.SetOutput(wErr)

	// We break the flags into a few subsets for help printing.
	mainFlagSet := flag.NewFlagSet("", 0)
	mainFlagSet.SetOutput(wErr)
	benchFlagSet := flag.NewFlagSet("", 0)
	benchFlagSet.SetOutput(wErr)
	dimFlagSet := flag.NewFlagSet("", 0)
	dimFlagSet.SetOutput(wErr)

	flags.Usage = func() {
		fmt.Fprintf(wErr, `Usage: fancyplot [flags] -config chart.yaml
       fancyplot [flags] inputs...
`)
		mainFlagSet.PrintDefaults()

		fmt.Fprintf(wErr, "\nBenchmark flags:\n")
		benchFlagSet.PrintDefaults()

		// Print dimension flags in natural order.
		for _, f := range dimFlags {
			fset := flag.NewFlagSet("", 0)
			fset.SetOutput(wErr)
			fset.String(f.dim.Name(), f.def, f.doc)
			fset.PrintDefaults()
		}
		fmt.Fprintf(wErr, `
For the syntax of projections, see

  https://pkg.go.dev/golang.org/x/perf/benchproc/syntax
`)

		// Print transforms.
		fmt.Fprintf(wErr, "\nTransformations:\n")
		var names []string
		for name := range transformOpts {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			fmt.Fprintf(wErr, "  %s\n    \t%s\n", name, transformOpts[name].doc)
		}
	}

	// Register main flags.
	flagConfig := mainFlagSet.String("config", "", "render the chart described by YAML `file`")
	flagOut := mainFlagSet.String("o", "fancyplot.png", "write the chart to `file`, or - for stdout")
	flagBackend := mainFlagSet.String("backend", "gonum", "render with `backend` gonum or gnuplot")
	flagFormat := mainFlagSet.String("format", "", "output `format` (png, svg, pdf, or gnuplot for gnuplot code)\nDefaults to the extension of -o")
	flagSize := mainFlagSet.String("size", "6x4", "chart size as `W`xH inches")
	flagTitle := mainFlagSet.String("title", "", "chart `title`")
	flagTeX := mainFlagSet.Bool("tex", true, "typeset text in TeX style")
	flagSpines := mainFlagSet.Bool("spines", false, "draw the axis lines")

	// Register benchmark flags.
	flagFilter := benchFlagSet.String("filter", "*", "use only benchmarks matching benchfilter `query`")
	flagUnit := benchFlagSet.String("unit", "sec/op", "chart benchmark `unit`")
	flagTransform := benchFlagSet.String("transform", "", "comma-separated `list` of data transformations")
	dimStrings := make([]*string, len(dimFlags))
	for i, f := range dimFlags {
		dimStrings[i] = dimFlagSet.String(f.dim.Name(), f.def, f.doc)
	}

	// Merge flag sets.
	mergeFlags := func(dst, src *flag.FlagSet) {
		src.VisitAll(func(f *flag.Flag) {
			dst.Var(f.Value, f.Name, f.Usage)
		})
	}
	mergeFlags(flags, mainFlagSet)
	mergeFlags(flags, benchFlagSet)
	mergeFlags(flags, dimFlagSet)

	flags.Parse(args)
	if *flagConfig == "" && flags.NArg() == 0 {
		flags.Usage()
		os.Exit(2)
	}
	setFlags := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	width, height, err := parseSize(*flagSize)
	if err != nil {
		return fmt.Errorf("parsing -size: %w", err)
	}
	format := *flagFormat
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(*flagOut), ".")
		if format == "" {
			format = "png"
		}
	}

	// Build the chart.
	var c chart.Chart
	var st chart.Style
	if *flagConfig != "" {
		if flags.NArg() > 0 {
			return fmt.Errorf("-config does not take inputs")
		}
		d, err := chartfile.Load(*flagConfig)
		if err != nil {
			return err
		}
		st = d.Style
		if setFlags["title"] {
			d.Spec.Title = *flagTitle
		}
		c = d.Chart()
	} else {
		st = chart.DefaultStyle()
		spec, err := readBenchmarks(wErr, flags.Args(), *flagFilter, *flagUnit, *flagTransform, dimStrings)
		if err != nil {
			return err
		}
		spec.Title = *flagTitle
		if len(spec.Y) == 1 {
			c = chart.NewBar(spec)
		} else {
			c = chart.NewMultiBar(spec)
		}
	}
	if *flagConfig == "" || setFlags["tex"] {
		st.TeX = *flagTeX
	}
	if *flagConfig == "" || setFlags["spines"] {
		st.Spines = *flagSpines
	}

	// Render into memory. -o is written only once the chart is complete.
	var out bytes.Buffer
	s, err := newSurface(*flagBackend, format, width, height, &out)
	if err != nil {
		return err
	}
	if err := chart.Render(s, c, st); err != nil {
		return err
	}
	if *flagOut == "-" {
		_, err := w.Write(out.Bytes())
		return err
	}
	return os.WriteFile(*flagOut, out.Bytes(), 0o666)
}

func readBenchmarks(wErr io.Writer, paths []string, filterStr, unit, transform string, dimStrings []*string) (chart.Spec, error) {
	config := benchdata.NewConfig()
	config.SetUnit(unit)

	// Parse filter options.
	filter, err := benchproc.NewFilter(filterStr)
	if err != nil {
		return chart.Spec{}, fmt.Errorf("parsing -filter: %s", err)
	}

	// Parse projection options.
	var parser benchproc.ProjectionParser
	for i, f := range dimFlags {
		proj, err := parser.Parse(*dimStrings[i], filter)
		if err != nil {
			return chart.Spec{}, fmt.Errorf("parsing -%s: %s", f.dim.Name(), err)
		}
		config.SetProjection(f.dim, proj)
	}

	// Parse transforms.
	if transform != "" {
		for _, opt := range strings.Split(transform, ",") {
			t, ok := transformOpts[opt]
			if !ok {
				return chart.Spec{}, fmt.Errorf("unknown transform %s", opt)
			}
			t.do(config)
		}
	}

	// Read inputs.
	table, err := benchdata.NewTable(config)
	if err != nil {
		return chart.Spec{}, err
	}
	files := benchfmt.Files{Paths: paths, AllowStdin: true, AllowLabels: true}
	if err := table.Read(&files, filter, wErr); err != nil {
		return chart.Spec{}, err
	}
	return table.Spec(wErr)
}

func newSurface(backend, format string, width, height float64, out io.Writer) (chart.Surface, error) {
	switch backend {
	case "gonum":
		return gonumplot.New(out, gonumplot.Options{
			Width:  vg.Length(width) * vg.Inch,
			Height: vg.Length(height) * vg.Inch,
			Format: format,
		}), nil
	case "gnuplot":
		term := format
		if term == "gnuplot" || term == "gp" {
			term = ""
		}
		return gnuplot.New(out, term, int(width*pixelsPerInch), int(height*pixelsPerInch)), nil
	}
	return nil, fmt.Errorf("unknown backend %s", backend)
}

// parseSize parses a size of the form "WxH".
func parseSize(s string) (width, height float64, err error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	if width, err = strconv.ParseFloat(ws, 64); err != nil {
		return 0, 0, err
	}
	if height, err = strconv.ParseFloat(hs, 64); err != nil {
		return 0, 0, err
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("size must be positive, got %q", s)
	}
	return width, height, nil
}
