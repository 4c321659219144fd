// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package curve

import (
	"image/color"
	"testing"

	"ctlviz/colors"
	"ctlviz/logging"
	"ctlviz/property"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppearance(opts Options) (*Appearance, *logging.Recorder) {
	r := logging.NewRecorder(0)
	return New(r, opts), r
}

func assertOnlyErrors(t *testing.T, r *logging.Recorder, n int) {
	t.Helper()
	records := r.Records()
	assert.Len(t, records, n)
	for _, rec := range records {
		assert.Equal(t, log.ErrorLevel, rec.Severity)
	}
}

func TestColor(t *testing.T) {
	for _, in := range []property.Value{
		property.String("#00FF00"),
		property.String("#0000FF"),
		property.Color{Color: colors.FromString("#FF0000")},
		property.Color{Color: color.NRGBA{R: 10, G: 20, B: 30, A: 255}},
		property.String("blahh"),
		property.String("white"),
		property.Int(200),
		property.Float(34.98),
	} {
		expected, err := colors.Parse(in)
		require.NoError(t, err)
		expectedString := colors.CanonicalName(expected, true)

		a, r := newTestAppearance(nil)
		assert.NoError(t, a.SetColor(in))

		assert.Equal(t, expectedString, a.ColorString(), "input %v", in)
		assert.Equal(t, expected, a.Color(), "input %v", in)
		assert.Equal(t, expected, a.Pen().Color, "input %v", in)
		assert.Equal(t, 0, r.Count(log.ErrorLevel))
	}
}

func TestColorCanonicalName(t *testing.T) {
	a, _ := newTestAppearance(nil)
	_ = a.SetColor(property.String("#FF0000"))
	assert.Equal(t, "red", a.ColorString())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, a.Color().NRGBA())
}

func TestColorUnknownName(t *testing.T) {
	a, r := newTestAppearance(nil)
	assert.NoError(t, a.SetColor(property.String("blahh")))
	assert.False(t, a.Color().IsValid())
	assert.Equal(t, colors.CanonicalName(colors.Invalid(), true), a.ColorString())
	assert.Equal(t, 0, r.Count(log.ErrorLevel))
	assert.Equal(t, 1, r.Count(log.WarnLevel))
}

func TestLineStyle(t *testing.T) {
	for _, in := range []LineStyle{NoLine, SolidLine, DashDotDotLine} {
		a, r := newTestAppearance(nil)
		assert.NoError(t, a.SetLineStyle(property.Int(in)))
		assert.Equal(t, in, a.Pen().Style)
		assert.Equal(t, in, a.LineStyle())
		assert.Equal(t, 0, r.Len())
	}
}

func TestLineStyleIntegralFloat(t *testing.T) {
	a, _ := newTestAppearance(nil)
	assert.NoError(t, a.SetLineStyle(property.Float(2)))
	assert.Equal(t, DashLine, a.LineStyle())
}

func TestLineWidth(t *testing.T) {
	tests := []struct {
		in   property.Value
		want int
	}{
		{property.Int(6), 6},
		{property.String("10"), 10},
		{property.Float(4.3), 4},
	}
	for _, tt := range tests {
		a, r := newTestAppearance(nil)
		assert.NoError(t, a.SetLineWidth(tt.in))
		assert.Equal(t, tt.want, a.Pen().Width)
		assert.Equal(t, tt.want, a.LineWidth())
		assert.Equal(t, 0, r.Len())
	}
}

func TestSymbol(t *testing.T) {
	tests := []struct {
		in   property.Value
		want Symbol
	}{
		{property.None{}, SymbolNone},
		{property.String("o"), SymbolCircle},
		{property.String("s"), SymbolSquare},
		{property.String("t"), SymbolTriangle},
	}
	for _, tt := range tests {
		a, r := newTestAppearance(Options{KeySymbol: property.String("+")})
		assert.NoError(t, a.SetSymbol(tt.in))
		assert.Equal(t, tt.want, a.Symbol())
		assert.Equal(t, 0, r.Len())
	}
}

func TestSymbolSize(t *testing.T) {
	tests := []struct {
		in   property.Value
		want int
	}{
		{property.Int(6), 6},
		{property.String("10"), 10},
		{property.Float(4.3), 4},
	}
	for _, tt := range tests {
		a, r := newTestAppearance(nil)
		assert.NoError(t, a.SetSymbolSize(tt.in))
		assert.Equal(t, tt.want, a.SymbolSize())
		assert.Equal(t, 0, r.Len())
	}
}

func TestDefaults(t *testing.T) {
	a, r := newTestAppearance(nil)
	assert.Equal(t, SolidLine, a.LineStyle())
	assert.Equal(t, 1, a.LineWidth())
	_, hasName := a.Name()
	assert.False(t, hasName)
	assert.Equal(t, "white", a.ColorString())
	assert.Equal(t, SymbolNone, a.Symbol())
	assert.Equal(t, 10, a.SymbolSize())
	assert.Equal(t, Pen{Color: colors.White, Width: 1, Style: SolidLine}, a.Pen())
	assert.Equal(t, 0, r.Len())
}

func TestConstructorOptions(t *testing.T) {
	a, r := newTestAppearance(Options{
		KeyLineStyle:  property.Int(4),
		KeyLineWidth:  property.Int(3),
		KeyName:       property.String("blah"),
		KeyColor:      property.String("blue"),
		KeySymbol:     property.String("+"),
		KeySymbolSize: property.Int(50),
	})
	assert.Equal(t, DashDotLine, a.LineStyle())
	assert.Equal(t, 3, a.LineWidth())
	name, hasName := a.Name()
	assert.True(t, hasName)
	assert.Equal(t, "blah", name)
	assert.Equal(t, "blue", a.ColorString())
	assert.Equal(t, SymbolPlus, a.Symbol())
	assert.Equal(t, 50, a.SymbolSize())
	assert.Equal(t, Pen{Color: colors.FromString("blue"), Width: 3, Style: DashDotLine}, a.Pen())
	assert.Equal(t, 0, r.Len())
}

func TestConstructorInvalidOptions(t *testing.T) {
	a, r := newTestAppearance(Options{
		KeyLineWidth: property.String("blah"),
		KeyName:      property.Int(3),
		"lineColor":  property.String("red"),
	})
	assert.Equal(t, DefaultLineWidth, a.LineWidth())
	_, hasName := a.Name()
	assert.False(t, hasName)
	assert.Equal(t, 2, r.Count(log.ErrorLevel))
	assert.Equal(t, 1, r.Count(log.WarnLevel))
}

func TestColorInvalid(t *testing.T) {
	for _, in := range []property.Value{
		property.Seq{property.Int(0), property.Int(0), property.Int(0)},
		property.Seq{property.Int(1), property.Int(1), property.Int(1)},
	} {
		a, r := newTestAppearance(nil)
		expected := a.Color()
		err := a.SetColor(in)
		assert.ErrorIs(t, err, ErrInvalidColor)
		assert.Equal(t, expected, a.Color())
		assert.Equal(t, "white", a.ColorString())
		assertOnlyErrors(t, r, 1)
	}
}

func TestLineStyleInvalid(t *testing.T) {
	for _, in := range []property.Value{property.String("NoLine"), property.Int(7), property.Int(-1), property.Int(1 << 40), property.Float(1.5)} {
		a, r := newTestAppearance(nil)
		expected := a.LineStyle()
		err := a.SetLineStyle(in)
		assert.ErrorIs(t, err, ErrInvalidLineStyle)
		assert.Equal(t, expected, a.LineStyle())
		assert.Equal(t, expected, a.Pen().Style)
		assertOnlyErrors(t, r, 1)
	}
}

func TestLineWidthInvalid(t *testing.T) {
	for _, in := range []property.Value{property.String("blah"), property.Seq{property.Int(3)}, property.Int(-1)} {
		a, r := newTestAppearance(nil)
		expected := a.LineWidth()
		err := a.SetLineWidth(in)
		assert.ErrorIs(t, err, ErrInvalidLineWidth)
		assert.Equal(t, expected, a.LineWidth())
		assert.Equal(t, expected, a.Pen().Width)
		assertOnlyErrors(t, r, 1)
	}
}

func TestSymbolInvalid(t *testing.T) {
	for _, in := range []property.Value{property.Int(1), property.String("b"), property.Seq{property.Int(2)}, property.String("")} {
		a, r := newTestAppearance(nil)
		expected := a.Symbol()
		err := a.SetSymbol(in)
		assert.ErrorIs(t, err, ErrInvalidSymbol)
		assert.Equal(t, expected, a.Symbol())
		assertOnlyErrors(t, r, 1)
	}
}

func TestSymbolSizeInvalid(t *testing.T) {
	for _, in := range []property.Value{property.String("blah"), property.Seq{property.Int(3)}} {
		a, r := newTestAppearance(nil)
		expected := a.SymbolSize()
		err := a.SetSymbolSize(in)
		assert.ErrorIs(t, err, ErrInvalidSymbolSize)
		assert.Equal(t, expected, a.SymbolSize())
		assertOnlyErrors(t, r, 1)
	}
}

func TestRejectionIsIdempotent(t *testing.T) {
	a, r := newTestAppearance(Options{KeyLineWidth: property.Int(5)})
	before := a.Properties()
	const n = 5
	for i := 0; i < n; i++ {
		_ = a.SetLineWidth(property.String("blah"))
	}
	assert.Equal(t, before, a.Properties())
	assertOnlyErrors(t, r, n)
}

func TestRejectionRecord(t *testing.T) {
	a, r := newTestAppearance(nil)
	_ = a.SetSymbol(property.String("b"))
	records := r.Records()
	require.Len(t, records, 1)
	assert.Equal(t, KeySymbol, records[0].Property)
	assert.Equal(t, `"b"`, records[0].Value)
	assert.ErrorIs(t, records[0].Err, ErrInvalidSymbol)
}

func TestSetByKey(t *testing.T) {
	a, r := newTestAppearance(Options{KeyName: property.String("curve")})
	assert.NoError(t, a.Set(KeyLineWidth, property.Int(2)))
	assert.Equal(t, 2, a.LineWidth())
	assert.ErrorIs(t, a.Set(KeyName, property.String("other")), ErrImmutable)
	name, _ := a.Name()
	assert.Equal(t, "curve", name)
	assert.ErrorIs(t, a.Set("width", property.Int(2)), ErrUnknownProperty)
	assert.Equal(t, 1, r.Count(log.ErrorLevel))
	assert.Equal(t, 1, r.Count(log.WarnLevel))
}

func TestNilValue(t *testing.T) {
	a, r := newTestAppearance(Options{KeySymbol: property.String("o"), KeyName: nil})
	before := a.Properties()

	assert.ErrorIs(t, a.SetColor(nil), ErrInvalidColor)
	assert.ErrorIs(t, a.SetLineStyle(nil), ErrInvalidLineStyle)
	assert.ErrorIs(t, a.SetLineWidth(nil), ErrInvalidLineWidth)
	assert.ErrorIs(t, a.SetSymbolSize(nil), ErrInvalidSymbolSize)
	assert.Equal(t, before, a.Properties())
	assertOnlyErrors(t, r, 4)
	assert.Equal(t, "None", r.Records()[0].Value)

	// No value means no symbol.
	assert.NoError(t, a.SetSymbol(nil))
	assert.Equal(t, SymbolNone, a.Symbol())

	assert.ErrorIs(t, a.Set("width", nil), ErrUnknownProperty)
	assert.ErrorIs(t, a.Set(KeyName, nil), ErrImmutable)
}
