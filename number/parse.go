// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/numfmt/internal/number"
	"golang.org/x/numfmt/locale"
)

// A Style determines which elements may appear in text passed to the Parse
// functions.
type Style = number.Style

const (
	AllowLeadingWhite  = number.AllowLeadingWhite
	AllowTrailingWhite = number.AllowTrailingWhite
	AllowLeadingSign   = number.AllowLeadingSign
	AllowTrailingSign  = number.AllowTrailingSign
	AllowParentheses   = number.AllowParentheses
	AllowDecimalPoint  = number.AllowDecimalPoint
	AllowThousands     = number.AllowThousands
	AllowExponent      = number.AllowExponent
	AllowHexSpecifier  = number.AllowHexSpecifier
	AllowFullWidth     = number.AllowFullWidth

	None      = number.None
	Integer   = number.Integer
	HexNumber = number.HexNumber
	Number    = number.Number
	Float     = number.Float
	Any       = number.Any
)

var styleNames = []struct {
	name  string
	style Style
}{
	{"none", None},
	{"integer", Integer},
	{"hex", HexNumber},
	{"number", Number},
	{"float", Float},
	{"any", Any},
	{"leadingwhite", AllowLeadingWhite},
	{"trailingwhite", AllowTrailingWhite},
	{"leadingsign", AllowLeadingSign},
	{"trailingsign", AllowTrailingSign},
	{"parentheses", AllowParentheses},
	{"decimalpoint", AllowDecimalPoint},
	{"thousands", AllowThousands},
	{"exponent", AllowExponent},
	{"hexspecifier", AllowHexSpecifier},
	{"fullwidth", AllowFullWidth},
}

// ParseStyle returns the union of the comma-separated style names in s,
// such as "integer,thousands". Names are case-insensitive.
func ParseStyle(s string) (Style, error) {
	var style Style
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		found := false
		for _, n := range styleNames {
			if n.name == f {
				style |= n.style
				found = true
				break
			}
		}
		if !found {
			return 0, errors.New("number: unknown style " + strconv.Quote(f))
		}
	}
	return style, nil
}

// The parse errors are returned wrapped in a *NumError.
var (
	// ErrSyntax indicates that the text does not have the form required by
	// the style.
	ErrSyntax = errors.New("invalid syntax")

	// ErrOverflow indicates that the value is out of range for the type.
	ErrOverflow = errors.New("value out of range")
)

// A NumError records a failed conversion.
type NumError struct {
	Func string // the failing function (ParseInt32, ParseFloat64, ...)
	Num  string // the input
	Err  error  // the reason the conversion failed (ErrSyntax, ErrOverflow)
}

func (e *NumError) Error() string {
	return "number." + e.Func + ": parsing " + strconv.Quote(e.Num) + ": " + e.Err.Error()
}

func (e *NumError) Unwrap() error { return e.Err }

func scan(fn, s string, style Style, p *locale.Profile) (*number.Digits, error) {
	d := new(number.Digits)
	if !d.Scan(s, style, p) {
		return nil, &NumError{fn, s, ErrSyntax}
	}
	return d, nil
}

// ParseInt32 interprets s in the given style and returns the int32 it
// denotes. With AllowHexSpecifier the digits are read as the two's
// complement bit pattern, so "FFFFFFFF" is -1.
func ParseInt32(s string, style Style, p *locale.Profile) (int32, error) {
	const fn = "ParseInt32"
	d, err := scan(fn, s, style, p)
	if err != nil {
		return 0, err
	}
	var v int32
	var ok bool
	if style&AllowHexSpecifier != 0 {
		var u uint32
		u, ok = d.Hex32()
		v = int32(u)
	} else {
		v, ok = d.Int32()
	}
	if !ok {
		return 0, &NumError{fn, s, ErrOverflow}
	}
	return v, nil
}

// ParseUint32 interprets s in the given style and returns the uint32 it
// denotes.
func ParseUint32(s string, style Style, p *locale.Profile) (uint32, error) {
	const fn = "ParseUint32"
	d, err := scan(fn, s, style, p)
	if err != nil {
		return 0, err
	}
	var v uint32
	var ok bool
	if style&AllowHexSpecifier != 0 {
		v, ok = d.Hex32()
	} else {
		v, ok = d.Uint32()
	}
	if !ok {
		return 0, &NumError{fn, s, ErrOverflow}
	}
	return v, nil
}

// ParseInt64 interprets s in the given style and returns the int64 it
// denotes. With AllowHexSpecifier the digits are read as the two's
// complement bit pattern.
func ParseInt64(s string, style Style, p *locale.Profile) (int64, error) {
	const fn = "ParseInt64"
	d, err := scan(fn, s, style, p)
	if err != nil {
		return 0, err
	}
	var v int64
	var ok bool
	if style&AllowHexSpecifier != 0 {
		var u uint64
		u, ok = d.Hex64()
		v = int64(u)
	} else {
		v, ok = d.Int64()
	}
	if !ok {
		return 0, &NumError{fn, s, ErrOverflow}
	}
	return v, nil
}

// ParseUint64 interprets s in the given style and returns the uint64 it
// denotes.
func ParseUint64(s string, style Style, p *locale.Profile) (uint64, error) {
	const fn = "ParseUint64"
	d, err := scan(fn, s, style, p)
	if err != nil {
		return 0, err
	}
	var v uint64
	var ok bool
	if style&AllowHexSpecifier != 0 {
		v, ok = d.Hex64()
	} else {
		v, ok = d.Uint64()
	}
	if !ok {
		return 0, &NumError{fn, s, ErrOverflow}
	}
	return v, nil
}

// ParseFloat32 interprets s in the given style and returns the nearest
// float32 value. It fails with ErrOverflow if the value is too large in
// magnitude. AllowHexSpecifier is not supported for floating-point values.
func ParseFloat32(s string, style Style, p *locale.Profile) (float32, error) {
	f, err := parseFloat("ParseFloat32", s, style, p, 32)
	return float32(f), err
}

// ParseFloat64 interprets s in the given style and returns the nearest
// float64 value. It fails with ErrOverflow if the value is too large in
// magnitude. AllowHexSpecifier is not supported for floating-point values.
func ParseFloat64(s string, style Style, p *locale.Profile) (float64, error) {
	return parseFloat("ParseFloat64", s, style, p, 64)
}

func parseFloat(fn, s string, style Style, p *locale.Profile, bitSize int) (float64, error) {
	if style&AllowHexSpecifier != 0 {
		return 0, &NumError{fn, s, ErrSyntax}
	}
	d, err := scan(fn, s, style, p)
	if err != nil {
		return 0, err
	}
	f, ok := d.Float(bitSize)
	if !ok {
		return 0, &NumError{fn, s, ErrOverflow}
	}
	return f, nil
}
