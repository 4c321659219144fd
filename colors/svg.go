// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package colors

import (
	"golang.org/x/image/colornames"
)

// Several SVG names share a value (e.g. aqua and cyan). The alphabetically
// first name wins.
var svgNameByHex = func() map[string]string {
	m := make(map[string]string, len(colornames.Map))
	for name, c := range colornames.Map {
		hex := FromColor(c).Name()
		if prev, exists := m[hex]; !exists || name < prev {
			m[hex] = name
		}
	}
	return m
}()

// SvgName returns the SVG color name for a "#rrggbb" hex string.
func SvgName(hex string) (string, bool) {
	c := FromString(hex)
	if !c.IsValid() {
		return "", false
	}
	name, ok := svgNameByHex[c.Name()]
	return name, ok
}

// CanonicalName returns the SVG name of c if an exact match exists.
// Otherwise the hex name is returned if hexFallback is set, or an empty
// string if not.
func CanonicalName(c Color, hexFallback bool) string {
	hex := c.Name()
	if name, ok := svgNameByHex[hex]; ok {
		return name
	}
	if hexFallback {
		return hex
	}
	return ""
}
