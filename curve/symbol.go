// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package curve

import (
	"fmt"
	"sort"

	"ctlviz/property"

	"golang.org/x/exp/maps"
)

// Symbol is a marker code. The empty symbol means no marker.
type Symbol string

const (
	SymbolNone     Symbol = ""
	SymbolCircle   Symbol = "o"
	SymbolSquare   Symbol = "s"
	SymbolTriangle Symbol = "t"
	SymbolStar     Symbol = "star"
	SymbolPentagon Symbol = "p"
	SymbolHexagon  Symbol = "h"
	SymbolX        Symbol = "x"
	SymbolDiamond  Symbol = "d"
	SymbolPlus     Symbol = "+"
)

var symbolNames = map[Symbol]string{
	SymbolCircle:   "Circle",
	SymbolSquare:   "Square",
	SymbolTriangle: "Triangle",
	SymbolStar:     "Star",
	SymbolPentagon: "Pentagon",
	SymbolHexagon:  "Hexagon",
	SymbolX:        "X",
	SymbolDiamond:  "Diamond",
	SymbolPlus:     "Plus",
}

// Symbols returns all marker codes, sorted.
func Symbols() []Symbol {
	s := maps.Keys(symbolNames)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return s
}

func (s Symbol) IsValid() bool {
	if s == SymbolNone {
		return true
	}
	_, ok := symbolNames[s]
	return ok
}

func (s Symbol) Name() string {
	if s == SymbolNone {
		return "None"
	}
	return symbolNames[s]
}

// parseSymbol does not convert between types: the value has to be None or
// already be one of the marker codes.
func parseSymbol(v property.Value) (Symbol, error) {
	switch v := v.(type) {
	case property.None:
		return SymbolNone, nil
	case property.String:
		s := Symbol(v)
		if s == SymbolNone || !s.IsValid() {
			return SymbolNone, fmt.Errorf("%w: %q is not a symbol code", ErrInvalidSymbol, string(v))
		}
		return s, nil
	default:
		return SymbolNone, fmt.Errorf("%w: unsupported type %T", ErrInvalidSymbol, v)
	}
}
