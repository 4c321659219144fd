// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package property

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	assert.Equal(t, None{}, Of(nil))
	assert.Equal(t, Int(6), Of(6))
	assert.Equal(t, Int(6), Of(uint8(6)))
	assert.Equal(t, Float(4.3), Of(4.3))
	assert.Equal(t, String("10"), Of("10"))
	assert.Equal(t, Seq{Int(0), Int(0), Int(0)}, Of([]int{0, 0, 0}))
	assert.Equal(t, Seq{Int(1), String("a")}, Of([]any{1, "a"}))
	assert.Equal(t, Color{color.NRGBA{R: 1, A: 255}}, Of(color.NRGBA{R: 1, A: 255}))
	assert.Equal(t, Int(3), Of(Int(3)))
	assert.IsType(t, Unsupported{}, Of(struct{}{}))
}

func TestString(t *testing.T) {
	assert.Equal(t, "None", None{}.String())
	assert.Equal(t, "4.3", Float(4.3).String())
	assert.Equal(t, `"blah"`, String("blah").String())
	assert.Equal(t, "(3,)", Seq{Int(3)}.String())
	assert.Equal(t, "(1, 1, 1)", Seq{Int(1), Int(1), Int(1)}.String())
	assert.Equal(t, "color(255, 0, 0, 255)", Color{color.NRGBA{R: 255, A: 255}}.String())
}

func TestInteger(t *testing.T) {
	tests := []struct {
		in   Value
		want int64
	}{
		{Int(6), 6},
		{Int(-6), -6},
		{Float(4.3), 4},
		{Float(-4.7), -4},
		{String("10"), 10},
		{String(" 12 "), 12},
		{String("4.9"), 4},
		{String("-2.5"), -2},
		{String("12345678901234567"), 12345678901234567},
		{String("1234567890123456789"), 1234567890123456789},
		{String("9223372036854775807.9"), math.MaxInt64},
	}
	for _, tt := range tests {
		got, err := Integer(tt.in)
		assert.NoError(t, err, "input %v", tt.in)
		assert.Equal(t, tt.want, got, "input %v", tt.in)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, None{}, Normalize(nil))
	assert.Equal(t, Int(3), Normalize(Int(3)))
}

func TestIntegerInvalid(t *testing.T) {
	for _, in := range []Value{
		String("blah"),
		String(""),
		String("NaN"),
		Float(math.NaN()),
		Float(math.Inf(1)),
		Seq{Int(3)},
		None{},
		Color{color.White},
	} {
		_, err := Integer(in)
		assert.ErrorIs(t, err, ErrNotNumeric, "input %v", in)
	}
	_, err := Integer(Float(1e30))
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = Integer(String("9223372036854775808"))
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = Integer(String("1e40"))
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDimension(t *testing.T) {
	n, err := Dimension(String("10"))
	assert.NoError(t, err)
	assert.Equal(t, 10, n)

	n, err = Dimension(Float(4.3))
	assert.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = Dimension(Int(-1))
	assert.ErrorIs(t, err, ErrNegative)

	_, err = Dimension(Int(math.MaxInt32 + 1))
	assert.ErrorIs(t, err, ErrOutOfRange)
}
