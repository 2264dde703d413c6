// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gonumplot

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aclements/fancyplot/internal/chart"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"
)

// fontCache holds the fonts charts may use. It starts with gonum's
// Liberation fonts; Latin Modern is added on first use.
var fontCache = font.DefaultCache

const latinModern = "Latin Modern"

var loadLatinModern = sync.OnceValue(func() error {
	faces := []struct {
		ttf    []byte
		style  xfont.Style
		weight xfont.Weight
	}{
		{lmroman10regular.TTF, xfont.StyleNormal, xfont.WeightNormal},
		{lmroman10italic.TTF, xfont.StyleItalic, xfont.WeightNormal},
		{lmroman10bold.TTF, xfont.StyleNormal, xfont.WeightBold},
		{lmroman10bolditalic.TTF, xfont.StyleItalic, xfont.WeightBold},
	}
	var coll font.Collection
	for _, f := range faces {
		face, err := opentype.Parse(f.ttf)
		if err != nil {
			return fmt.Errorf("parsing %s font: %w", latinModern, err)
		}
		coll = append(coll, font.Face{
			Font: font.Font{Typeface: latinModern, Variant: "Serif", Style: f.style, Weight: f.weight},
			Face: face,
		})
	}
	fontCache.Add(coll)
	return nil
})

// styleFont returns the font that st asks for. TeX-style text uses Latin
// Modern; otherwise the family picks a Liberation variant.
func styleFont(st chart.Style) (font.Font, error) {
	if st.TeX {
		if err := loadLatinModern(); err != nil {
			return font.Font{}, err
		}
		return font.Font{Typeface: latinModern, Variant: "Serif"}, nil
	}
	switch strings.ToLower(st.Font) {
	case "", "serif":
		return font.Font{Typeface: "Liberation", Variant: "Serif"}, nil
	case "sans", "sans-serif":
		return font.Font{Typeface: "Liberation", Variant: "Sans"}, nil
	case "mono", "monospace":
		return font.Font{Typeface: "Liberation", Variant: "Mono"}, nil
	}
	return font.Font{}, fmt.Errorf("unknown font family %q", st.Font)
}
