// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package colors converts loosely typed input to canonical colors and back
// to canonical names.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"ctlviz/property"

	"golang.org/x/image/colornames"
)

var ErrUnsupportedInput = errors.New("unsupported color input")

// Color is an 8 bit NRGBA color which may be invalid, e.g. the result of
// parsing an unknown color name. Invalid colors compare equal to each other.
type Color struct {
	c     color.NRGBA
	valid bool
}

var (
	White = FromNRGBA(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	Black = FromNRGBA(color.NRGBA{A: 255})
)

func FromNRGBA(c color.NRGBA) Color {
	return Color{c: c, valid: true}
}

func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	return FromNRGBA(color.NRGBAModel.Convert(c).(color.NRGBA))
}

// FromRGB interprets v as 0xRRGGBB. Alpha bits are ignored, the result is
// always opaque.
func FromRGB(v uint32) Color {
	return FromNRGBA(color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255})
}

// Invalid returns the color used for unparseable input.
func Invalid() Color {
	return Color{c: color.NRGBA{A: 255}}
}

func (c Color) IsValid() bool {
	return c.valid
}

func (c Color) NRGBA() color.NRGBA {
	return c.c
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.c.RGBA()
}

// Name returns the color as lowercase "#rrggbb", ignoring alpha.
func (c Color) Name() string {
	return fmt.Sprintf("#%02x%02x%02x", c.c.R, c.c.G, c.c.B)
}

func (c Color) String() string {
	if !c.valid {
		return "invalid"
	}
	if c.c.A != 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.c.A, c.c.R, c.c.G, c.c.B)
	}
	return c.Name()
}

// Parse converts a property value to a color. Native colors, strings and
// numbers are accepted, everything else is rejected. Unknown color strings
// are not an error, they result in an invalid color.
func Parse(v property.Value) (Color, error) {
	switch v := v.(type) {
	case property.Color:
		if v.Color == nil {
			return Color{}, fmt.Errorf("%w: nil color", ErrUnsupportedInput)
		}
		return FromColor(v.Color), nil
	case property.String:
		return FromString(string(v)), nil
	case property.Int:
		return FromRGB(uint32(v)), nil
	case property.Float:
		n, err := property.Integer(v)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %v", ErrUnsupportedInput, err)
		}
		return FromRGB(uint32(n)), nil
	default:
		return Color{}, fmt.Errorf("%w: %T", ErrUnsupportedInput, v)
	}
}

// FromString parses an SVG color name or one of the hex notations #rgb,
// #rrggbb, #aarrggbb, #rrrgggbbb and #rrrrggggbbbb.
func FromString(s string) Color {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, ok := parseHex(s[1:])
		if !ok {
			return Invalid()
		}
		return c
	}
	name := strings.ToLower(s)
	if name == "transparent" {
		return FromNRGBA(color.NRGBA{})
	}
	if c, ok := colornames.Map[name]; ok {
		return FromColor(c)
	}
	return Invalid()
}

func parseHex(h string) (Color, bool) {
	var digits int
	var hasAlpha bool
	switch len(h) {
	case 3:
		digits = 1
	case 6:
		digits = 2
	case 8:
		digits = 2
		hasAlpha = true
	case 9:
		digits = 3
	case 12:
		digits = 4
	default:
		return Color{}, false
	}
	var parts []uint8
	for i := 0; i < len(h); i += digits {
		v, err := strconv.ParseUint(h[i:i+digits], 16, 16)
		if err != nil {
			return Color{}, false
		}
		parts = append(parts, scaleTo8Bit(v, digits))
	}
	if hasAlpha {
		return FromNRGBA(color.NRGBA{A: parts[0], R: parts[1], G: parts[2], B: parts[3]}), true
	}
	return FromNRGBA(color.NRGBA{R: parts[0], G: parts[1], B: parts[2], A: 255}), true
}

func scaleTo8Bit(v uint64, digits int) uint8 {
	switch digits {
	case 1:
		return uint8(v * 0x11)
	case 3:
		return uint8(v >> 4)
	case 4:
		return uint8(v >> 8)
	default:
		return uint8(v)
	}
}
