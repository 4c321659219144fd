// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package curve

import (
	"strconv"

	"ctlviz/property"
)

// Properties returns all attributes in their textual form.
func (a *Appearance) Properties() map[string]string {
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	p := map[string]string{
		KeyColor:      a.colorString,
		KeyLineStyle:  strconv.Itoa(int(a.lineStyle)),
		KeyLineWidth:  strconv.Itoa(a.lineWidth),
		KeySymbol:     string(a.symbol),
		KeySymbolSize: strconv.Itoa(a.symbolSize),
	}
	if a.hasName {
		p[KeyName] = a.name
	}
	return p
}

// SetProperties applies textual attributes, e.g. from an editor. Each
// value is converted the same way it would be when typed into a text
// field: numbers for line style, an empty symbol for none.
func (a *Appearance) SetProperties(prop map[string]string) {
	for key, value := range prop {
		switch key {
		case KeyLineStyle:
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				_ = a.SetLineStyle(property.Int(n))
			} else {
				_ = a.SetLineStyle(property.String(value))
			}
		case KeySymbol:
			if value == "" {
				_ = a.SetSymbol(property.None{})
			} else {
				_ = a.SetSymbol(property.String(value))
			}
		case KeyName:
			if n, ok := a.Name(); ok && n == value {
				continue
			}
			_ = a.Set(key, property.String(value))
		default:
			_ = a.Set(key, property.String(value))
		}
	}
}
