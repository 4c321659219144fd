// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package property

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ericlagergren/decimal"
)

var (
	ErrNotNumeric = errors.New("not a number")
	ErrNegative   = errors.New("negative value")
	ErrOutOfRange = errors.New("value out of range")
)

// Integer coerces v to an integer. Fractional values are truncated toward
// zero, numeric strings are accepted.
func Integer(v Value) (int64, error) {
	switch v := v.(type) {
	case Int:
		return int64(v), nil
	case Float:
		return truncateFloat(float64(v))
	case String:
		return parseInteger(string(v))
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrNotNumeric, v)
	}
}

// Dimension coerces v to a non-negative integer, e.g. a width or a size.
func Dimension(v Value) (int, error) {
	n, err := Integer(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	return int(n), nil
}

func truncateFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNotNumeric, f)
	}
	t := math.Trunc(f)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, f)
	}
	return int64(t), nil
}

func parseInteger(s string) (int64, error) {
	s = strings.TrimSpace(s)
	// The default precision of 16 digits cannot hold every int64.
	d := decimal.WithContext(decimal.Context128)
	d.Context.RoundingMode = decimal.ToZero
	if _, ok := d.SetString(s); !ok || !d.IsFinite() {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	n, ok := d.Quantize(0).Int64()
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return n, nil
}
