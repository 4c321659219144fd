// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package curve

import (
	"fmt"

	"ctlviz/property"
)

type LineStyle int

const (
	NoLine LineStyle = iota
	SolidLine
	DashLine
	DotLine
	DashDotLine
	DashDotDotLine
)

var lineStyleNames = map[LineStyle]string{
	NoLine:         "NoLine",
	SolidLine:      "Solid",
	DashLine:       "Dash",
	DotLine:        "Dot",
	DashDotLine:    "DashDot",
	DashDotDotLine: "DashDotDot",
}

func (s LineStyle) IsValid() bool {
	_, ok := lineStyleNames[s]
	return ok
}

func (s LineStyle) String() string {
	if name, ok := lineStyleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("LineStyle(%d)", int(s))
}

// Dash pattern in units of the pen width, alternating dash and gap.
func (s LineStyle) dashPattern() []float32 {
	switch s {
	case DashLine:
		return []float32{4, 2}
	case DotLine:
		return []float32{1, 2}
	case DashDotLine:
		return []float32{4, 2, 1, 2}
	case DashDotDotLine:
		return []float32{4, 2, 1, 2, 1, 2}
	default:
		return nil
	}
}

// parseLineStyle accepts integral numbers which are members of the
// enumeration. Names are not accepted.
func parseLineStyle(v property.Value) (LineStyle, error) {
	var n int64
	switch v := v.(type) {
	case property.Int:
		n = int64(v)
	case property.Float:
		if float64(v) != float64(int64(v)) {
			return 0, fmt.Errorf("%w: %v is not integral", ErrInvalidLineStyle, v)
		}
		n = int64(v)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidLineStyle, v)
	}
	if n < int64(NoLine) || n > int64(DashDotDotLine) {
		return 0, fmt.Errorf("%w: %d is not a pen style", ErrInvalidLineStyle, n)
	}
	return LineStyle(n), nil
}
