// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package curve

import (
	"fmt"
	"sort"
	"sync"

	"ctlviz/colors"
	"ctlviz/logging"
	"ctlviz/property"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/maps"
)

// Property keys, as used by the construction options and by
// Properties/SetProperties.
const (
	KeyColor      = "color"
	KeyLineStyle  = "lineStyle"
	KeyLineWidth  = "lineWidth"
	KeyName       = "name"
	KeySymbol     = "symbol"
	KeySymbolSize = "symbolSize"
)

const (
	DefaultColor      = "white"
	DefaultLineStyle  = SolidLine
	DefaultLineWidth  = 1
	DefaultSymbol     = SymbolNone
	DefaultSymbolSize = 10
)

// Options is the construction bag of a curve. Omitted keys keep their
// defaults.
type Options map[string]property.Value

// Appearance holds the validated visual attributes of a plot curve.
// Every attribute holds the last value which was accepted; a rejected
// assignment changes nothing and emits exactly one error record.
type Appearance struct {
	mutex       sync.RWMutex
	sink        logging.Sink
	name        string
	hasName     bool
	color       colors.Color
	colorString string
	lineStyle   LineStyle
	lineWidth   int
	symbol      Symbol
	symbolSize  int
	pen         Pen
}

// New creates an appearance with default attributes, overridden by opts.
// Invalid options are reported to sink and keep the default value.
func New(sink logging.Sink, opts Options) *Appearance {
	if sink == nil {
		sink = logging.Default()
	}
	a := &Appearance{
		sink:       sink,
		color:      colors.FromString(DefaultColor),
		lineStyle:  DefaultLineStyle,
		lineWidth:  DefaultLineWidth,
		symbol:     DefaultSymbol,
		symbolSize: DefaultSymbolSize,
	}
	a.colorString = colors.CanonicalName(a.color, true)
	a.pen = newPen(a.color, a.lineWidth, a.lineStyle)

	if v, ok := opts[KeyName]; ok {
		switch v := property.Normalize(v).(type) {
		case property.String:
			a.name = string(v)
			a.hasName = true
		case property.None:
		default:
			a.reject(KeyName, v, fmt.Errorf("%w: unsupported type %T", ErrInvalidName, v))
		}
	}
	// Apply in a fixed order, map iteration order is random.
	keys := maps.Keys(opts)
	sort.Strings(keys)
	for _, key := range keys {
		if key == KeyName {
			continue
		}
		_ = a.Set(key, opts[key])
	}
	return a
}

// Set assigns a property by key.
func (a *Appearance) Set(key string, v property.Value) error {
	v = property.Normalize(v)
	switch key {
	case KeyColor:
		return a.SetColor(v)
	case KeyLineStyle:
		return a.SetLineStyle(v)
	case KeyLineWidth:
		return a.SetLineWidth(v)
	case KeySymbol:
		return a.SetSymbol(v)
	case KeySymbolSize:
		return a.SetSymbolSize(v)
	case KeyName:
		err := fmt.Errorf("%w: %s", ErrImmutable, key)
		a.reject(key, v, err)
		return err
	default:
		err := fmt.Errorf("%w: %s", ErrUnknownProperty, key)
		a.sink.Emit(logging.Record{
			Severity: log.WarnLevel,
			Message:  "unknown property was ignored",
			Property: key,
			Value:    v.String(),
			Err:      err,
		})
		return err
	}
}

func (a *Appearance) reject(key string, v property.Value, err error) {
	a.sink.Emit(logging.Record{
		Severity: log.ErrorLevel,
		Message:  fmt.Sprintf("invalid value for %s was rejected", key),
		Property: key,
		Value:    property.Normalize(v).String(),
		Err:      err,
	})
}

// Must be called with the write lock held.
func (a *Appearance) updatePen() {
	a.pen = newPen(a.color, a.lineWidth, a.lineStyle)
}

// SetColor accepts native colors, color names, hex strings and numbers.
// Unknown color names result in an invalid color, which is reported as a
// warning. Any other input type is rejected.
func (a *Appearance) SetColor(v property.Value) error {
	v = property.Normalize(v)
	c, err := colors.Parse(v)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidColor, err)
		a.reject(KeyColor, v, err)
		return err
	}
	a.mutex.Lock()
	a.color = c
	a.colorString = colors.CanonicalName(c, true)
	a.updatePen()
	a.mutex.Unlock()
	if !c.IsValid() {
		a.sink.Emit(logging.Record{
			Severity: log.WarnLevel,
			Message:  "unknown color, using fallback",
			Property: KeyColor,
			Value:    v.String(),
		})
	}
	return nil
}

func (a *Appearance) SetLineStyle(v property.Value) error {
	v = property.Normalize(v)
	s, err := parseLineStyle(v)
	if err != nil {
		a.reject(KeyLineStyle, v, err)
		return err
	}
	a.mutex.Lock()
	a.lineStyle = s
	a.updatePen()
	a.mutex.Unlock()
	return nil
}

func (a *Appearance) SetLineWidth(v property.Value) error {
	v = property.Normalize(v)
	w, err := property.Dimension(v)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidLineWidth, err)
		a.reject(KeyLineWidth, v, err)
		return err
	}
	a.mutex.Lock()
	a.lineWidth = w
	a.updatePen()
	a.mutex.Unlock()
	return nil
}

func (a *Appearance) SetSymbol(v property.Value) error {
	v = property.Normalize(v)
	s, err := parseSymbol(v)
	if err != nil {
		a.reject(KeySymbol, v, err)
		return err
	}
	a.mutex.Lock()
	a.symbol = s
	a.mutex.Unlock()
	return nil
}

func (a *Appearance) SetSymbolSize(v property.Value) error {
	v = property.Normalize(v)
	n, err := property.Dimension(v)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidSymbolSize, err)
		a.reject(KeySymbolSize, v, err)
		return err
	}
	a.mutex.Lock()
	a.symbolSize = n
	a.mutex.Unlock()
	return nil
}

// Name returns the display label and whether one was set.
func (a *Appearance) Name() (string, bool) {
	return a.name, a.hasName
}

func (a *Appearance) Color() colors.Color {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.color
}

// ColorString is the SVG name of the color, or its hex name if there is
// none.
func (a *Appearance) ColorString() string {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.colorString
}

func (a *Appearance) LineStyle() LineStyle {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.lineStyle
}

func (a *Appearance) LineWidth() int {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.lineWidth
}

func (a *Appearance) Symbol() Symbol {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.symbol
}

func (a *Appearance) SymbolSize() int {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.symbolSize
}

func (a *Appearance) Pen() Pen {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	return a.pen
}
