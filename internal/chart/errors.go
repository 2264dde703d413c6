// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
)

// An InvalidInputError reports that the data given to a chart does not have
// the shape or values that chart accepts. Render returns it before touching
// the Surface.
type InvalidInputError struct {
	Kind string // chart kind, such as "bar"
	Msg  string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %s chart: %s", e.Kind, e.Msg)
}

func invalidf(kind, format string, args ...any) error {
	return &InvalidInputError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// ErrRendered is returned when a chart is rendered more than once.
var ErrRendered = errors.New("chart already rendered")
