// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
)

type DpPoint struct {
	X unit.Dp
	Y unit.Dp
}

func (p *DpPoint) Dp(gtx layout.Context) image.Point {
	return image.Point{
		X: gtx.Dp(p.X),
		Y: gtx.Dp(p.Y),
	}
}

type Theme struct {
	LedSize         DpPoint
	LedBorderWidth  unit.Dp
	LedBorderColor  color.NRGBA
	PlotBgColor     color.NRGBA
	SymbolLineWidth unit.Dp
	DisconnectedLed color.NRGBA
}

func NewDarkTheme() *Theme {
	return &Theme{
		LedSize:         DpPoint{X: 16, Y: 16},
		LedBorderWidth:  1,
		LedBorderColor:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		PlotBgColor:     color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		SymbolLineWidth: 1,
		DisconnectedLed: color.NRGBA{R: 100, G: 100, B: 100, A: 255},
	}
}

func NewLightTheme() *Theme {
	return &Theme{
		LedSize:         DpPoint{X: 16, Y: 16},
		LedBorderWidth:  1,
		LedBorderColor:  color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		PlotBgColor:     color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		SymbolLineWidth: 1,
		DisconnectedLed: color.NRGBA{R: 150, G: 150, B: 150, A: 255},
	}
}
