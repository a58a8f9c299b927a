// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

// A Kind classifies a format string.
type Kind uint8

const (
	// Custom means the format string is a user pattern.
	Custom Kind = iota
	General
	Fixed
	Scientific
	Grouped // "N": fixed-point with group separators
	Percent
	Decimal
	Hex
	RoundTrip
	// Unknown is a single letter that names no conversion.
	Unknown
)

var kindNames = [...]string{
	Custom:     "custom",
	General:    "general",
	Fixed:      "fixed",
	Scientific: "scientific",
	Grouped:    "number",
	Percent:    "percent",
	Decimal:    "decimal",
	Hex:        "hex",
	RoundTrip:  "round-trip",
	Unknown:    "unknown",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + string(appendInt(nil, int(k))) + ")"
}

// A Specifier is a classified format string.
type Specifier struct {
	Kind Kind
	// Letter is the specifier letter as written; its case selects the case
	// of hexadecimal digits and exponent markers. It is 0 for Custom.
	Letter byte
	// Digits is the requested precision, or -1 if none was given.
	Digits int
}

// ParseSpecifier classifies format. An empty format is General without a
// precision. A single ASCII letter optionally followed by decimal digits is
// a standard specifier; the digit run stops accepting digits once its value
// reaches 10, so at most 99 can be requested. Anything else is Custom.
func ParseSpecifier(format string) Specifier {
	if format == "" {
		return Specifier{Kind: General, Letter: 'G', Digits: -1}
	}
	c := format[0]
	if !('A' <= c && c <= 'Z' || 'a' <= c && c <= 'z') {
		return Specifier{Digits: -1}
	}
	i, n := 1, -1
	if i < len(format) && isDigit(format[i]) {
		n = int(format[i] - '0')
		for i++; i < len(format) && isDigit(format[i]); {
			n = n*10 + int(format[i]-'0')
			i++
			if n >= 10 {
				break
			}
		}
	}
	if i != len(format) {
		return Specifier{Digits: -1}
	}
	return Specifier{Kind: letterKind(c), Letter: c, Digits: n}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func letterKind(c byte) Kind {
	switch c &^ 0x20 {
	case 'G':
		return General
	case 'F':
		return Fixed
	case 'E':
		return Scientific
	case 'N':
		return Grouped
	case 'P':
		return Percent
	case 'D':
		return Decimal
	case 'X':
		return Hex
	case 'R':
		return RoundTrip
	}
	return Unknown
}
