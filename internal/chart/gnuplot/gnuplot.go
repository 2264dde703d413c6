// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gnuplot implements a chart.Surface that emits gnuplot code and
// optionally runs gnuplot on it.
package gnuplot

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/aclements/fancyplot/internal/chart"
	"github.com/aclements/go-moremath/stats"
	"github.com/lucasb-eyer/go-colorful"
)

// Surface accumulates a gnuplot program for one chart.
type Surface struct {
	term          string
	width, height int
	out           io.Writer

	font string
	code bytes.Buffer

	// plotArgs and data are the arguments of the final plot command and the
	// inline data they read, in order.
	plotArgs []string
	data     strings.Builder

	nHist int
}

// New returns a Surface that writes to out on Flush.
//
// If term is "", the gnuplot code itself is written. Otherwise term is one
// of "png", "svg" or "pdf", and the code is piped through gnuplot, which
// must be on $PATH, and its output is written. width and height are in
// pixels; zero selects 640x480.
func New(out io.Writer, term string, width, height int) *Surface {
	if width == 0 {
		width = 640
	}
	if height == 0 {
		height = 480
	}
	return &Surface{term: term, width: width, height: height, out: out}
}

func (p *Surface) SetStyle(st chart.Style) error {
	switch strings.ToLower(st.Font) {
	case "", "serif":
		p.font = "Serif"
	case "sans", "sans-serif":
		p.font = "Sans"
	case "mono", "monospace":
		p.font = "Mono"
	default:
		return fmt.Errorf("unknown font family %q", st.Font)
	}
	if st.TeX {
		p.font = "Latin Modern Roman"
		fmt.Fprintf(&p.code, "set termoption enhanced\n")
	} else {
		fmt.Fprintf(&p.code, "set termoption noenhanced\n")
	}
	if !st.Spines {
		fmt.Fprintf(&p.code, "set border 0\n")
	}
	fmt.Fprintf(&p.code, "set tics nomirror\n")
	fmt.Fprintf(&p.code, "set style fill solid 1.0 noborder\n")
	fmt.Fprintf(&p.code, "unset key\n")
	return nil
}

func (p *Surface) Line(xs, ys []float64, ls chart.LineStyle, label string) error {
	arg := fmt.Sprintf("'-' using 1:2 with lines %s %s", lineSpec(ls), gpTitle(label))
	p.plotArgs = append(p.plotArgs, arg)
	for i := range xs {
		fmt.Fprintf(&p.data, "%g %g\n", xs[i], ys[i])
	}
	fmt.Fprintf(&p.data, "e\n")
	return nil
}

func (p *Surface) Bars(xs, heights []float64, width float64, fill color.Color, label string) error {
	arg := fmt.Sprintf("'-' using 1:2:3 with boxes fc rgb %s %s", gpColor(fill), gpTitle(label))
	p.plotArgs = append(p.plotArgs, arg)
	for i := range xs {
		fmt.Fprintf(&p.data, "%g %g %g\n", xs[i], heights[i], width)
	}
	fmt.Fprintf(&p.data, "e\n")
	return nil
}

// Hist lets gnuplot do the binning: each sequence gets a bin function
// mapping a sample to the center of its bin over the sequence's own range,
// and "smooth frequency" counts the samples per bin.
func (p *Surface) Hist(samples [][]float64, bins int, fills []color.Color, labels []string, edge chart.LineStyle) error {
	for i, xs := range samples {
		if len(xs) == 0 {
			return fmt.Errorf("histogram %d: no samples", i)
		}
		lo, hi := stats.Bounds(xs)
		if lo == hi {
			lo, hi = lo-0.5, hi+0.5
		}
		w := (hi - lo) / float64(bins)
		p.nHist++
		name := fmt.Sprintf("bin%d", p.nHist)
		fmt.Fprintf(&p.code, "%s(x) = x >= %g ? %g : %g + %g*(floor((x-%g)/%g)+0.5)\n",
			name, hi, hi-w/2, lo, w, lo, w)

		arg := fmt.Sprintf("'-' using (%s($1)):(1.0) smooth frequency with boxes fs solid 1.0 border lc rgb %s lw %g fc rgb %s %s",
			name, gpColor(edge.Color), edge.Width, gpColor(fills[i]), gpTitle(labels[i]))
		p.plotArgs = append(p.plotArgs, arg)
		for _, x := range xs {
			fmt.Fprintf(&p.data, "%g\n", x)
		}
		fmt.Fprintf(&p.data, "e\n")
	}
	return nil
}

func (p *Surface) Ticks(x, y []chart.Tick) error {
	fmt.Fprintf(&p.code, "set xtics %s\n", gpTics(x))
	fmt.Fprintf(&p.code, "set ytics %s\n", gpTics(y))
	return nil
}

func (p *Surface) Labels(title, xlabel, ylabel string) error {
	set := func(what, s string) {
		if s != "" {
			fmt.Fprintf(&p.code, "set %s %s\n", what, gpString(s))
		}
	}
	set("title", title)
	set("xlabel", xlabel)
	set("ylabel", ylabel)
	return nil
}

func (p *Surface) Legend(fontSize float64) error {
	fmt.Fprintf(&p.code, "set key outside right center vertical nobox font %s\n", gpString(fmt.Sprintf(",%g", fontSize)))
	return nil
}

func (p *Surface) Flush() error {
	if len(p.plotArgs) == 0 {
		return fmt.Errorf("no data")
	}
	var header bytes.Buffer
	font := gpString(p.font + ",10")
	switch p.term {
	case "":
		// Just code
	case "png":
		fmt.Fprintf(&header, "set terminal pngcairo size %d,%d font %s\n", p.width, p.height, font)
	case "svg":
		fmt.Fprintf(&header, "set terminal svg size %d,%d font %s\n", p.width, p.height, font)
	case "pdf":
		fmt.Fprintf(&header, "set terminal pdfcairo font %s\n", font)
	default:
		return fmt.Errorf("unknown output type %s", p.term)
	}
	header.Write(p.code.Bytes())
	fmt.Fprintf(&header, "plot %s\n", strings.Join(p.plotArgs, ", "))
	header.WriteString(p.data.String())
	code := header.Bytes()

	if p.term == "" {
		_, err := p.out.Write(code)
		return err
	}

	cmd := exec.Command("gnuplot")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("creating pipe to gnuplot: %w", err)
	}
	cmd.Stdout = p.out
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting gnuplot: %w", err)
	}
	defer cmd.Process.Kill()
	if _, err := stdin.Write(code); err != nil {
		return fmt.Errorf("writing to gnuplot: %w", err)
	}
	stdin.Close()
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("gnuplot failed: %w", err)
	}
	return nil
}

func lineSpec(ls chart.LineStyle) string {
	spec := fmt.Sprintf("lw %g lc rgb %s", ls.Width, gpColor(ls.Color))
	if ls.Dashed {
		spec += " dt 2"
	}
	return spec
}

func gpTitle(label string) string {
	if label == "" {
		return "notitle"
	}
	return "title " + gpString(label)
}

func gpTics(ticks []chart.Tick) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range ticks {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %g", gpString(t.Label), t.Value)
	}
	b.WriteByte(')')
	return b.String()
}

// gpColor returns c as a quoted gnuplot color. Translucent colors use
// gnuplot's "#AARRGGBB" form, where AA is the transparency.
func gpColor(c color.Color) string {
	if c == nil {
		c = color.Black
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return `"#FF000000"`
	}
	hex := cf.Hex()
	_, _, _, a := c.RGBA()
	if a == 0xffff {
		return strconv.Quote(hex)
	}
	return strconv.Quote(fmt.Sprintf("#%02x%s", 255-uint8(a>>8), hex[1:]))
}

// gpString returns s escaped for Gnuplot
func gpString(s string) string {
	// I can't find any documentation on Gnuplot's escape syntax, but as far as
	// I can tell, it's compatible with Go's escaping rules.
	return strconv.Quote(s)
}
