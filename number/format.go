// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package number formats and parses numbers as locale-shaped text, using
// format strings such as "N2" or "#,##0.00;(#,##0.00)".
//
// A format string is either a standard specifier, a single letter followed by
// an optional precision, or a custom pattern:
//
//	D, d   decimal integer, zero-padded to the precision
//	X, x   hexadecimal integer, zero-padded to the precision
//	F, f   fixed-point with precision fractional digits
//	E, e   scientific with precision fractional digits
//	G, g   the shorter of fixed-point and scientific
//	N, n   fixed-point with group separators
//	P, p   percent
//	R, r   floating-point value that parses back to the same value
//
// The empty format string is equivalent to "G". Anything that is not a
// standard specifier is a custom pattern built from the tokens
// # 0 . , % ‰ E+0 E-0 ' " \ and ; as in "#,##0.00;(#,##0.00);zero".
//
// All functions accept a nil *locale.Profile, which selects the
// culture-invariant profile.
package number // import "golang.org/x/numfmt/number"

import (
	"golang.org/x/numfmt/internal/number"
	"golang.org/x/numfmt/locale"
)

// A FormatError reports a format string that is not valid for the kind of
// value being formatted, such as "D" for a floating-point value or "R" for
// an integer.
type FormatError = number.FormatError

// AppendInt32 appends the text of v formatted by format to dst.
func AppendInt32(dst []byte, v int32, format string, p *locale.Profile) ([]byte, error) {
	var d number.Digits
	d.SetInt32(v)
	return appendInteger(dst, &d, abs(int64(v)), uint64(uint32(v)), format, p)
}

// AppendUint32 appends the text of v formatted by format to dst.
func AppendUint32(dst []byte, v uint32, format string, p *locale.Profile) ([]byte, error) {
	var d number.Digits
	d.SetUint32(v)
	return appendInteger(dst, &d, uint64(v), uint64(v), format, p)
}

// AppendInt64 appends the text of v formatted by format to dst.
func AppendInt64(dst []byte, v int64, format string, p *locale.Profile) ([]byte, error) {
	var d number.Digits
	d.SetInt64(v)
	return appendInteger(dst, &d, abs(v), uint64(v), format, p)
}

// AppendUint64 appends the text of v formatted by format to dst.
func AppendUint64(dst []byte, v uint64, format string, p *locale.Profile) ([]byte, error) {
	var d number.Digits
	d.SetUint64(v)
	return appendInteger(dst, &d, v, v, format, p)
}

// appendInteger formats the integer held in d, whose magnitude is mag and
// whose two's complement bit pattern, zero-extended to 64 bits, is bits.
func appendInteger(dst []byte, d *number.Digits, mag, bits uint64, format string, p *locale.Profile) ([]byte, error) {
	p = locale.Default(p)
	s := number.ParseSpecifier(format)
	switch s.Kind {
	case number.General:
		if s.Digits > 0 {
			break
		}
		fallthrough
	case number.Decimal:
		return number.AppendDecimal(dst, mag, d.Neg, p.NegativeSign, s.Digits), nil
	case number.Hex:
		return number.AppendHex(dst, bits, s.Letter, s.Digits), nil
	case number.RoundTrip, number.Unknown:
		return dst, &FormatError{Format: format}
	case number.Custom:
		return number.AppendPattern(dst, d, format, p), nil
	}
	dst, _ = number.AppendStandard(dst, d, s, p)
	return dst, nil
}

// abs returns the magnitude of v; it is correct for math.MinInt64.
func abs(v int64) uint64 {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return u
}

// AppendFloat32 appends the text of v formatted by format to dst.
func AppendFloat32(dst []byte, v float32, format string, p *locale.Profile) ([]byte, error) {
	return appendFloat(dst, float64(v), format, p, 32)
}

// AppendFloat64 appends the text of v formatted by format to dst.
func AppendFloat64(dst []byte, v float64, format string, p *locale.Profile) ([]byte, error) {
	return appendFloat(dst, v, format, p, 64)
}

// Precisions of the digit conversion per float size.
type floatPrecision struct {
	def, roundTrip int
	// maxE and maxG are the largest precisions of the E and G specifiers
	// that are served by the default precision.
	maxE, maxG int
}

var (
	float32Precision = floatPrecision{number.Float32Precision, number.Float32RoundTripPrecision, 6, 7}
	float64Precision = floatPrecision{number.Float64Precision, number.Float64RoundTripPrecision, 14, 15}
)

func appendFloat(dst []byte, v float64, format string, p *locale.Profile, bitSize int) ([]byte, error) {
	p = locale.Default(p)
	fp := float64Precision
	if bitSize == 32 {
		fp = float32Precision
	}
	s := number.ParseSpecifier(format)
	precision := fp.def
	switch s.Kind {
	case number.Scientific:
		if s.Digits > fp.maxE {
			precision = fp.roundTrip
		}
	case number.General:
		if s.Digits > fp.maxG {
			precision = fp.roundTrip
		}
	}

	var d number.Digits
	d.SetFloat(v, precision)
	switch {
	case d.IsNaN():
		return append(dst, p.NaNSymbol...), nil
	case d.IsInf() && d.Neg:
		return append(dst, p.NegativeInfinitySymbol...), nil
	case d.IsInf():
		return append(dst, p.PositiveInfinitySymbol...), nil
	}

	switch s.Kind {
	case number.RoundTrip:
		// Use the short form if it parses back to v.
		if f, ok := d.Float(bitSize); !ok || f != v {
			d.SetFloat(v, fp.roundTrip)
		}
		s = number.Specifier{Kind: number.General, Letter: 'G', Digits: d.Precision}
	case number.Decimal, number.Hex, number.Unknown:
		return dst, &FormatError{Format: format}
	case number.Custom:
		return number.AppendPattern(dst, &d, format, p), nil
	}
	dst, _ = number.AppendStandard(dst, &d, s, p)
	return dst, nil
}

// FormatInt32 returns the text of v formatted by format.
func FormatInt32(v int32, format string, p *locale.Profile) (string, error) {
	b, err := AppendInt32(make([]byte, 0, 24), v, format, p)
	return string(b), err
}

// FormatUint32 returns the text of v formatted by format.
func FormatUint32(v uint32, format string, p *locale.Profile) (string, error) {
	b, err := AppendUint32(make([]byte, 0, 24), v, format, p)
	return string(b), err
}

// FormatInt64 returns the text of v formatted by format.
func FormatInt64(v int64, format string, p *locale.Profile) (string, error) {
	b, err := AppendInt64(make([]byte, 0, 32), v, format, p)
	return string(b), err
}

// FormatUint64 returns the text of v formatted by format.
func FormatUint64(v uint64, format string, p *locale.Profile) (string, error) {
	b, err := AppendUint64(make([]byte, 0, 32), v, format, p)
	return string(b), err
}

// FormatFloat32 returns the text of v formatted by format.
func FormatFloat32(v float32, format string, p *locale.Profile) (string, error) {
	b, err := AppendFloat32(make([]byte, 0, 32), v, format, p)
	return string(b), err
}

// FormatFloat64 returns the text of v formatted by format.
func FormatFloat64(v float64, format string, p *locale.Profile) (string, error) {
	b, err := AppendFloat64(make([]byte, 0, 32), v, format, p)
	return string(b), err
}
