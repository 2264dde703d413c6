// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdata

import "golang.org/x/perf/benchproc"

type Config struct {
	proj dimMap[*benchproc.Projection]

	unit       string
	compare    bool
	confidence float64
}

// NewConfig returns a Config that charts the sec/op unit.
func NewConfig() *Config {
	return &Config{unit: "sec/op", confidence: 0.95}
}

// SetProjection maps the keys of projection p to dimension d.
func (c *Config) SetProjection(d Dim, p *benchproc.Projection) {
	c.proj.Set(d, p)
}

// SetUnit selects the benchmark unit to chart, such as "sec/op" or "B/op".
// Either the tidied or the original unit name may be used.
func (c *Config) SetUnit(unit string) {
	c.unit = unit
}

// SetCompare makes the table chart each series as a ratio against the
// first series instead of absolute values.
func (c *Config) SetCompare(compare bool) {
	c.compare = compare
}
