// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package property

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Value is a loosely typed property input. The set of implementations is
// closed, consumers switch over the concrete types.
type Value interface {
	fmt.Stringer
	isValue()
}

// None represents an absent value.
type None struct{}

type Int int64

type Float float64

type String string

// Color wraps a native color value.
type Color struct {
	color.Color
}

// Seq is an ordered collection of values, e.g. a list or tuple.
type Seq []Value

// Unsupported carries any input which does not fit one of the other variants.
type Unsupported struct {
	Raw any
}

func (None) isValue()        {}
func (Int) isValue()         {}
func (Float) isValue()       {}
func (String) isValue()      {}
func (Color) isValue()       {}
func (Seq) isValue()         {}
func (Unsupported) isValue() {}

func (None) String() string {
	return "None"
}

func (v Int) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v Float) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func (v String) String() string {
	return strconv.Quote(string(v))
}

func (v Color) String() string {
	if v.Color == nil {
		return "color(nil)"
	}
	c := color.NRGBAModel.Convert(v.Color).(color.NRGBA)
	return fmt.Sprintf("color(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

func (v Seq) String() string {
	items := make([]string, len(v))
	for i := range v {
		items[i] = Normalize(v[i]).String()
	}
	if len(items) == 1 {
		return "(" + items[0] + ",)"
	}
	return "(" + strings.Join(items, ", ") + ")"
}

func (v Unsupported) String() string {
	return fmt.Sprintf("%T(%v)", v.Raw, v.Raw)
}

// Of classifies an arbitrary Go value.
// Normalize returns None for a nil value and v otherwise.
func Normalize(v Value) Value {
	if v == nil {
		return None{}
	}
	return v
}

func Of(v any) Value {
	switch v := v.(type) {
	case nil:
		return None{}
	case Value:
		return v
	case int:
		return Int(v)
	case int8:
		return Int(v)
	case int16:
		return Int(v)
	case int32:
		return Int(v)
	case int64:
		return Int(v)
	case uint8:
		return Int(v)
	case uint16:
		return Int(v)
	case uint32:
		return Int(v)
	case float32:
		return Float(v)
	case float64:
		return Float(v)
	case string:
		return String(v)
	case color.Color:
		return Color{v}
	case []any:
		s := make(Seq, len(v))
		for i := range v {
			s[i] = Of(v[i])
		}
		return s
	case []int:
		s := make(Seq, len(v))
		for i := range v {
			s[i] = Int(v[i])
		}
		return s
	case []float64:
		s := make(Seq, len(v))
		for i := range v {
			s[i] = Float(v[i])
		}
		return s
	case []string:
		s := make(Seq, len(v))
		for i := range v {
			s[i] = String(v[i])
		}
		return s
	default:
		return Unsupported{Raw: v}
	}
}
