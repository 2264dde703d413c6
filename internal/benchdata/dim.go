// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdata

import (
	"fmt"
	"sync"
)

// Dim is a chart dimension that benchmark keys can be projected onto.
type Dim int

const (
	DimX      Dim = iota // bar groups along the X axis
	DimSeries            // one bar series (and legend entry) per key

	dimMax
)

// Name returns a short name for dimension d, such as "x".
func (d Dim) Name() string {
	switch d {
	case DimX:
		return "x"
	case DimSeries:
		return "series"
	}
	return fmt.Sprintf("Dim(%d)", d)
}

var nameToDim = sync.OnceValue(func() map[string]Dim {
	m := make(map[string]Dim)
	for i := Dim(0); i < dimMax; i++ {
		m[i.Name()] = i
	}
	return m
})

// DimFromName is the inverse of [Dim.Name].
func DimFromName(name string) (Dim, bool) {
	d, ok := nameToDim()[name]
	return d, ok
}

// dimMap is an efficient map from Dim to T.
type dimMap[T any] struct {
	dims [dimMax]T
}

func (m *dimMap[T]) Set(d Dim, val T) {
	m.dims[d] = val
}

func (m *dimMap[T]) Get(d Dim) T {
	return m.dims[d]
}
