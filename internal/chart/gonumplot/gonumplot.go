// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gonumplot implements a chart.Surface on top of gonum.org/v1/plot.
package gonumplot

import (
	"fmt"
	"image/color"
	"io"

	"github.com/aclements/fancyplot/internal/chart"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Options configures the output of a Canvas.
type Options struct {
	// Width and Height are the size of the figure. Zero selects 6x4 inches.
	Width, Height vg.Length
	// Format is the output format, such as "png", "svg" or "pdf". Empty
	// selects "png".
	Format string
}

// Canvas is a chart.Surface that builds a gonum plot and writes it to an
// io.Writer on Flush.
type Canvas struct {
	p    *plot.Plot
	out  io.Writer
	opts Options

	// legend collects the labeled series. It is drawn beside the plot only
	// if Legend is called.
	legend     []legendEntry
	showLegend bool
	legendSize vg.Length
}

type legendEntry struct {
	label string
	thumb plot.Thumbnailer
}

// dashes is the dash pattern of dashed lines.
var dashes = []vg.Length{vg.Points(4), vg.Points(2)}

// New returns a Canvas that writes the finished figure to out.
func New(out io.Writer, opts Options) *Canvas {
	if opts.Width == 0 {
		opts.Width = 6 * vg.Inch
	}
	if opts.Height == 0 {
		opts.Height = 4 * vg.Inch
	}
	if opts.Format == "" {
		opts.Format = "png"
	}
	return &Canvas{p: plot.New(), out: out, opts: opts}
}

// Plot returns the underlying plot.
func (c *Canvas) Plot() *plot.Plot {
	return c.p
}

func (c *Canvas) SetStyle(st chart.Style) error {
	fnt, err := styleFont(st)
	if err != nil {
		return err
	}
	var handler text.Handler = text.Plain{Fonts: fontCache}
	if st.TeX {
		handler = text.Latex{Fonts: fontCache}
	}

	p := c.p
	// Tick labels are plain numbers, so they keep the plain handler.
	for _, ts := range []*text.Style{&p.X.Tick.Label, &p.Y.Tick.Label} {
		ts.Font.Typeface, ts.Font.Variant = fnt.Typeface, fnt.Variant
		ts.Handler = text.Plain{Fonts: fontCache}
	}
	for _, ts := range []*text.Style{&p.Title.TextStyle, &p.X.Label.TextStyle, &p.Y.Label.TextStyle, &p.Legend.TextStyle} {
		ts.Font.Typeface, ts.Font.Variant = fnt.Typeface, fnt.Variant
		ts.Handler = handler
	}

	if !st.Spines {
		p.X.LineStyle.Width = 0
		p.Y.LineStyle.Width = 0
	}
	return nil
}

func lineStyle(ls chart.LineStyle) draw.LineStyle {
	out := draw.LineStyle{Color: ls.Color, Width: vg.Points(ls.Width)}
	if out.Color == nil {
		out.Color = color.Black
	}
	if ls.Dashed {
		out.Dashes = dashes
	}
	return out
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	return pts
}

func (c *Canvas) addLegend(label string, thumb plot.Thumbnailer) {
	if label != "" {
		c.legend = append(c.legend, legendEntry{label, thumb})
	}
}

func (c *Canvas) Line(xs, ys []float64, ls chart.LineStyle, label string) error {
	l, err := plotter.NewLine(xys(xs, ys))
	if err != nil {
		return err
	}
	l.LineStyle = lineStyle(ls)
	c.p.Add(l)
	c.addLegend(label, l)
	return nil
}

// Bars draws each bar as a filled rectangle in data coordinates, since
// plotter.BarChart sizes bars in canvas units.
func (c *Canvas) Bars(xs, heights []float64, width float64, fill color.Color, label string) error {
	for i, x := range xs {
		lo, hi := x-width/2, x+width/2
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: lo, Y: 0}, {X: hi, Y: 0}, {X: hi, Y: heights[i]}, {X: lo, Y: heights[i]},
		})
		if err != nil {
			return fmt.Errorf("bar %d: %w", i, err)
		}
		poly.Color = fill
		poly.LineStyle.Width = 0
		c.p.Add(poly)
		if i == 0 {
			c.addLegend(label, poly)
		}
	}
	return nil
}

// Hist draws the bins of chart.BinSamples, the same bins the chart derives
// its ticks and grid from.
func (c *Canvas) Hist(samples [][]float64, bins int, fills []color.Color, labels []string, edge chart.LineStyle) error {
	for i, xs := range samples {
		if len(xs) == 0 || bins < 1 {
			return fmt.Errorf("histogram %d: no samples or bins", i)
		}
		cb := chart.BinSamples(xs, bins)
		h := &plotter.Histogram{
			Bins:  make([]plotter.HistogramBin, len(cb)),
			Width: cb[0].Hi - cb[0].Lo,
		}
		for j, b := range cb {
			h.Bins[j] = plotter.HistogramBin{Min: b.Lo, Max: b.Hi, Weight: float64(b.Count)}
		}
		h.FillColor = fills[i]
		h.LineStyle = lineStyle(edge)
		c.p.Add(h)
		c.addLegend(labels[i], h)
	}
	return nil
}

func constantTicks(ticks []chart.Tick) plot.ConstantTicks {
	out := make(plot.ConstantTicks, len(ticks))
	for i, t := range ticks {
		out[i] = plot.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}

func (c *Canvas) Ticks(x, y []chart.Tick) error {
	c.p.X.Tick.Marker = constantTicks(x)
	c.p.Y.Tick.Marker = constantTicks(y)
	return nil
}

func (c *Canvas) Labels(title, xlabel, ylabel string) error {
	c.p.Title.Text = title
	c.p.X.Label.Text = xlabel
	c.p.Y.Label.Text = ylabel
	return nil
}

func (c *Canvas) Legend(fontSize float64) error {
	c.showLegend = true
	c.legendSize = vg.Points(fontSize)
	return nil
}

// legendPad separates the legend from the plot area.
const legendPad = vg.Length(8)

func (c *Canvas) Flush() error {
	cw, err := draw.NewFormattedCanvas(c.opts.Width, c.opts.Height, c.opts.Format)
	if err != nil {
		return err
	}
	dc := draw.New(cw)

	if !c.showLegend || len(c.legend) == 0 {
		c.p.Draw(dc)
	} else {
		// The plot's own legend is drawn inside the data area, so draw a
		// copy of it in a strip on the right instead.
		leg := c.p.Legend
		leg.TextStyle.Font.Size = c.legendSize
		for _, e := range c.legend {
			leg.Add(e.label, e.thumb)
		}
		leg.Top, leg.Left = true, true
		r := leg.Rectangle(dc)
		lw := r.Size().X + 2*legendPad

		c.p.Draw(draw.Crop(dc, 0, -lw, 0, 0))

		legendArea := draw.Crop(dc, dc.Rectangle.Size().X-lw+legendPad, 0, 0, 0)
		// Center the legend vertically.
		leg.YOffs = -(legendArea.Rectangle.Size().Y - r.Size().Y) / 2
		leg.Draw(legendArea)
	}

	if _, err := cw.WriteTo(c.out); err != nil {
		return fmt.Errorf("writing %s: %w", c.opts.Format, err)
	}
	return nil
}
