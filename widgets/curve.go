// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image"
	"math"

	"ctlviz/curve"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/x/stroke"
)

// Curve draws a polyline using the pen and the markers of a curve
// appearance. Points are in pixels, relative to the widget origin.
type Curve struct {
	Appearance *curve.Appearance
	Theme      *Theme
	Points     []f32.Point
}

func NewCurve(a *curve.Appearance, th *Theme) *Curve {
	return &Curve{Appearance: a, Theme: th}
}

func (c *Curve) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, c.Theme.PlotBgColor)

	c.drawLine(gtx)
	c.drawSymbols(gtx)
	return layout.Dimensions{Size: size}
}

func (c *Curve) drawLine(gtx layout.Context) {
	pen := c.Appearance.Pen()
	if !pen.Visible() || len(c.Points) < 2 {
		return
	}
	var path stroke.Path
	path.Segments = append(path.Segments, stroke.MoveTo(c.Points[0]))
	for _, p := range c.Points[1:] {
		path.Segments = append(path.Segments, stroke.LineTo(p))
	}
	paint.FillShape(gtx.Ops, pen.Color.NRGBA(), pen.Stroke(path).Op(gtx.Ops))
}

func (c *Curve) drawSymbols(gtx layout.Context) {
	symbol := c.Appearance.Symbol()
	if symbol == curve.SymbolNone {
		return
	}
	col := c.Appearance.Color().NRGBA()
	size := float32(gtx.Dp(unit.Dp(c.Appearance.SymbolSize())))
	for _, p := range c.Points {
		switch symbol {
		case curve.SymbolCircle:
			r := size / 2
			rect := image.Rect(int(p.X-r), int(p.Y-r), int(p.X+r), int(p.Y+r))
			paint.FillShape(gtx.Ops, col, clip.Ellipse(rect).Op(gtx.Ops))
		case curve.SymbolX, curve.SymbolPlus:
			path := stroke.Path{Segments: crossSegments(symbol, p, size)}
			paint.FillShape(gtx.Ops, col, stroke.Stroke{
				Path:  path,
				Width: float32(gtx.Dp(c.Theme.SymbolLineWidth)),
			}.Op(gtx.Ops))
		default:
			outline := markerOutline(symbol, p, size)
			if len(outline) == 0 {
				continue
			}
			var path clip.Path
			path.Begin(gtx.Ops)
			path.MoveTo(outline[0])
			for _, q := range outline[1:] {
				path.LineTo(q)
			}
			path.Close()
			paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
		}
	}
}

// markerOutline returns the corners of a filled marker of the given size
// centered at p. Markers which are not polygons have no outline.
func markerOutline(symbol curve.Symbol, p f32.Point, size float32) []f32.Point {
	r := size / 2
	switch symbol {
	case curve.SymbolSquare:
		return regularPolygon(p, r*math.Sqrt2, 4, math.Pi/4)
	case curve.SymbolTriangle:
		return regularPolygon(p, r, 3, -math.Pi/2)
	case curve.SymbolDiamond:
		return regularPolygon(p, r, 4, -math.Pi/2)
	case curve.SymbolPentagon:
		return regularPolygon(p, r, 5, -math.Pi/2)
	case curve.SymbolHexagon:
		return regularPolygon(p, r, 6, 0)
	case curve.SymbolStar:
		outer := regularPolygon(p, r, 5, -math.Pi/2)
		inner := regularPolygon(p, r*0.4, 5, -math.Pi/2+math.Pi/5)
		star := make([]f32.Point, 0, 10)
		for i := range outer {
			star = append(star, outer[i], inner[i])
		}
		return star
	}
	return nil
}

func regularPolygon(center f32.Point, radius float32, n int, startAngle float64) []f32.Point {
	points := make([]f32.Point, n)
	for i := 0; i < n; i++ {
		angle := startAngle + 2*math.Pi*float64(i)/float64(n)
		points[i] = f32.Pt(
			center.X+radius*float32(math.Cos(angle)),
			center.Y+radius*float32(math.Sin(angle)),
		)
	}
	return points
}

func crossSegments(symbol curve.Symbol, p f32.Point, size float32) []stroke.Segment {
	r := size / 2
	if symbol == curve.SymbolX {
		return []stroke.Segment{
			stroke.MoveTo(f32.Pt(p.X-r, p.Y-r)),
			stroke.LineTo(f32.Pt(p.X+r, p.Y+r)),
			stroke.MoveTo(f32.Pt(p.X-r, p.Y+r)),
			stroke.LineTo(f32.Pt(p.X+r, p.Y-r)),
		}
	}
	return []stroke.Segment{
		stroke.MoveTo(f32.Pt(p.X-r, p.Y)),
		stroke.LineTo(f32.Pt(p.X+r, p.Y)),
		stroke.MoveTo(f32.Pt(p.X, p.Y-r)),
		stroke.LineTo(f32.Pt(p.X, p.Y+r)),
	}
}
