// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package curve

import "errors"

var (
	ErrInvalidColor      = errors.New("invalid color")
	ErrInvalidLineStyle  = errors.New("invalid line style")
	ErrInvalidLineWidth  = errors.New("invalid line width")
	ErrInvalidSymbol     = errors.New("invalid symbol")
	ErrInvalidSymbolSize = errors.New("invalid symbol size")
	ErrInvalidName       = errors.New("invalid name")
	ErrImmutable         = errors.New("property is immutable")
	ErrUnknownProperty   = errors.New("unknown property")
)
