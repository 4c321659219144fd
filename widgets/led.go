// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image"
	"image/color"

	"ctlviz/led"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// Led shows an indicator as a filled ellipse in the color of its state.
type Led struct {
	Indicator *led.Indicator
	Theme     *Theme
}

func NewLed(ind *led.Indicator, th *Theme) *Led {
	return &Led{Indicator: ind, Theme: th}
}

// FillColor is the current color of the led. Before the first sample was
// received, the disconnected color is used.
func (l *Led) FillColor() color.NRGBA {
	if _, hasValue := l.Indicator.Value(); !hasValue {
		return l.Theme.DisconnectedLed
	}
	return l.Indicator.Color()
}

func (l *Led) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Constrain(l.Theme.LedSize.Dp(gtx))
	area := clip.Ellipse(image.Rectangle{Max: size})
	paint.FillShape(gtx.Ops, l.FillColor(), area.Op(gtx.Ops))

	if border := gtx.Dp(l.Theme.LedBorderWidth); border > 0 {
		paint.FillShape(gtx.Ops, l.Theme.LedBorderColor, clip.Stroke{
			Path:  area.Path(gtx.Ops),
			Width: float32(border),
		}.Op())
	}
	return layout.Dimensions{Size: size}
}
