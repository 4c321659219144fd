// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package curve

import (
	"ctlviz/colors"

	"gioui.org/x/stroke"
)

// Pen describes how a curve line is drawn. It is derived from the curve
// appearance and never modified directly.
type Pen struct {
	Color colors.Color
	Width int
	Style LineStyle
}

func newPen(c colors.Color, width int, style LineStyle) Pen {
	return Pen{Color: c, Width: width, Style: style}
}

// Visible reports whether the pen draws anything at all.
func (p Pen) Visible() bool {
	return p.Style != NoLine && p.Color.NRGBA().A != 0
}

// StrokeWidth is the width in pixels. A width of zero is a cosmetic pen,
// which is always drawn one pixel wide.
func (p Pen) StrokeWidth() float32 {
	if p.Width == 0 {
		return 1
	}
	return float32(p.Width)
}

// Dashes returns the dash pattern scaled to the pen width. Solid lines have
// no pattern.
func (p Pen) Dashes() []float32 {
	pattern := p.Style.dashPattern()
	if pattern == nil {
		return nil
	}
	w := p.StrokeWidth()
	d := make([]float32, len(pattern))
	for i := range pattern {
		d[i] = pattern[i] * w
	}
	return d
}

// Stroke prepares stroking path with this pen.
func (p Pen) Stroke(path stroke.Path) stroke.Stroke {
	return stroke.Stroke{
		Path:   path,
		Width:  p.StrokeWidth(),
		Cap:    stroke.FlatCap,
		Dashes: stroke.Dashes{Dashes: p.Dashes()},
	}
}
