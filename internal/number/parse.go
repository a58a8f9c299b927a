// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math"
	"strconv"
	"unicode/utf8"

	"golang.org/x/numfmt/locale"
	"golang.org/x/text/width"
)

// A Style is a set of flags that determines which elements may appear in
// the text accepted by Scan.
type Style uint32

const (
	AllowLeadingWhite Style = 1 << iota
	AllowTrailingWhite
	AllowLeadingSign
	AllowTrailingSign
	AllowParentheses
	AllowDecimalPoint
	AllowThousands
	AllowExponent
	_
	AllowHexSpecifier

	// AllowFullWidth folds full-width digits, signs and punctuation to
	// their ASCII forms before scanning.
	AllowFullWidth

	None      Style = 0
	Integer         = AllowLeadingWhite | AllowTrailingWhite | AllowLeadingSign
	HexNumber       = AllowLeadingWhite | AllowTrailingWhite | AllowHexSpecifier
	Number          = Integer | AllowTrailingSign | AllowDecimalPoint | AllowThousands
	Float           = Integer | AllowDecimalPoint | AllowExponent
	Any             = Number | AllowParentheses | AllowExponent
)

// Scanner state.
const (
	stateSign = 1 << iota
	stateParens
	stateDigits
	stateNonZero
	stateDecimal
)

// maxExponent is the magnitude at which an exponent saturates.
const maxExponent = 9999

func isWhite(c byte) bool {
	return c == ' ' || '\t' <= c && c <= '\r'
}

func isHexLetter(c byte) bool {
	c |= 0x20
	return 'a' <= c && c <= 'f'
}

// match returns the length of the prefix of s that matches sym, or -1 if
// there is no match or sym is empty. A no-break space in sym also matches
// an ordinary space.
func match(s, sym string) int {
	if sym == "" {
		return -1
	}
	i := 0
	for _, r := range sym {
		if i >= len(s) {
			return -1
		}
		c, n := utf8.DecodeRuneInString(s[i:])
		if c != r && !(r == '\u00a0' && c == ' ') {
			return -1
		}
		i += n
	}
	return i
}

// Scan sets d to the number in s. It reports whether s, apart from trailing
// NUL bytes, consists of a single number in the given style.
//
// Leading zeros are dropped and at most MaxDigits significant digits are
// kept; further digits only move the scale. Precision is set to the number
// of stored digits.
func (d *Digits) Scan(s string, style Style, p *locale.Profile) bool {
	p = locale.Default(p)
	if style&AllowFullWidth != 0 {
		s = width.Narrow.String(s)
	}
	*d = Digits{}
	n, ok := d.scan(s, style, p)
	if !ok {
		return false
	}
	for ; n < len(s); n++ {
		if s[n] != 0 {
			return false
		}
	}
	return true
}

// scan reads a number from the start of s and returns the number of bytes
// consumed.
func (d *Digits) scan(s string, style Style, p *locale.Profile) (int, bool) {
	at := func(i int) byte {
		if i < len(s) {
			return s[i]
		}
		return 0
	}
	state := 0
	i := 0

	// Leading whitespace, sign and parenthesis.
	for {
		c := at(i)
		signOK := style&AllowLeadingSign != 0 && state&stateSign == 0
		if isWhite(c) && style&AllowLeadingWhite != 0 &&
			(state&stateSign == 0 || p.NumberNegativePattern == 2) {
			i++
		} else if n := match(s[i:], p.PositiveSign); signOK && n > 0 {
			state |= stateSign
			i += n
		} else if n := match(s[i:], p.NegativeSign); signOK && n > 0 {
			state |= stateSign
			d.Neg = true
			i += n
		} else if c == '(' && style&AllowParentheses != 0 && state&stateSign == 0 {
			state |= stateSign | stateParens
			d.Neg = true
			i++
		} else {
			break
		}
	}

	// Digits, decimal separator and group separators.
	count, end := 0, 0
	for {
		c := at(i)
		if isDigit(c) || style&AllowHexSpecifier != 0 && isHexLetter(c) {
			state |= stateDigits
			if c != '0' || state&stateNonZero != 0 {
				if count < MaxDigits {
					d.digits[count] = c
					count++
					if c != '0' {
						end = count
					}
				}
				if state&stateDecimal == 0 {
					d.Scale++
				}
				state |= stateNonZero
			} else if state&stateDecimal != 0 {
				d.Scale--
			}
			i++
		} else if n := match(s[i:], p.NumberDecimalSeparator); style&AllowDecimalPoint != 0 && state&stateDecimal == 0 && n > 0 {
			state |= stateDecimal
			i += n
		} else if n := match(s[i:], p.NumberGroupSeparator); style&AllowThousands != 0 && state&stateDigits != 0 && state&stateDecimal == 0 && n > 0 {
			i += n
		} else {
			break
		}
	}
	d.digits[end] = 0
	d.Precision = end
	if state&stateDigits == 0 {
		return i, false
	}

	// Exponent.
	if c := at(i); (c == 'E' || c == 'e') && style&AllowExponent != 0 {
		j := i + 1
		neg := false
		if n := match(s[j:], p.PositiveSign); n > 0 {
			j += n
		} else if n := match(s[j:], p.NegativeSign); n > 0 {
			j += n
			neg = true
		}
		if isDigit(at(j)) {
			exp := 0
			for ; isDigit(at(j)); j++ {
				if exp < maxExponent {
					exp = exp*10 + int(at(j)-'0')
					if exp > 1000 {
						exp = maxExponent
					}
				}
			}
			if neg {
				exp = -exp
			}
			d.Scale += exp
			i = j
		}
	}

	// Trailing whitespace, sign and parenthesis.
	for {
		c := at(i)
		signOK := style&AllowTrailingSign != 0 && state&stateSign == 0
		if isWhite(c) && style&AllowTrailingWhite != 0 {
			i++
		} else if n := match(s[i:], p.PositiveSign); signOK && n > 0 {
			state |= stateSign
			i += n
		} else if n := match(s[i:], p.NegativeSign); signOK && n > 0 {
			state |= stateSign
			d.Neg = true
			i += n
		} else if c == ')' && state&stateParens != 0 {
			state &^= stateParens
			i++
		} else {
			break
		}
	}
	if state&stateParens != 0 {
		return i, false
	}
	if state&stateNonZero == 0 {
		d.Scale = 0
		if state&stateDecimal == 0 {
			d.Neg = false
		}
	}
	return i, true
}

// magnitude returns the magnitude of d if it is an integer of at most
// precision decimal digits no greater than limit.
func (d *Digits) magnitude(precision int, limit uint64) (uint64, bool) {
	if d.Scale > precision || d.Scale < d.Precision {
		return 0, false
	}
	b := d.Bytes()
	var n uint64
	for i := 0; i < d.Scale; i++ {
		if n > limit/10 {
			return 0, false
		}
		n *= 10
		if i < len(b) {
			c := uint64(b[i] - '0')
			if c > 9 || n > limit-c {
				return 0, false
			}
			n += c
		}
	}
	return n, true
}

// hex returns the bit pattern of d, read as hexadecimal digits, if it fits
// in bits bits.
func (d *Digits) hex(precision int, bits uint) (uint64, bool) {
	if d.Scale > precision || d.Scale < d.Precision {
		return 0, false
	}
	limit := uint64(math.MaxUint64) >> (64 - bits)
	b := d.Bytes()
	var n uint64
	for i := 0; i < d.Scale; i++ {
		if n > limit/16 {
			return 0, false
		}
		n *= 16
		if i < len(b) {
			var c uint64
			switch x := b[i]; {
			case isDigit(x):
				c = uint64(x - '0')
			default:
				c = uint64(x|0x20-'a') + 10
			}
			n += c
		}
	}
	return n, true
}

// Int32 converts d to an int32 and reports whether it is in range.
func (d *Digits) Int32() (int32, bool) {
	u, ok := d.magnitude(Int32Precision, 1<<31)
	if !ok || !d.Neg && u > math.MaxInt32 {
		return 0, false
	}
	if d.Neg {
		return int32(-int64(u)), true
	}
	return int32(u), true
}

// Uint32 converts d to a uint32 and reports whether it is in range.
func (d *Digits) Uint32() (uint32, bool) {
	u, ok := d.magnitude(Uint32Precision, math.MaxUint32)
	if !ok || d.Neg && u != 0 {
		return 0, false
	}
	return uint32(u), true
}

// Int64 converts d to an int64 and reports whether it is in range.
func (d *Digits) Int64() (int64, bool) {
	u, ok := d.magnitude(Int64Precision, 1<<63)
	if !ok || !d.Neg && u > math.MaxInt64 {
		return 0, false
	}
	if d.Neg {
		return int64(-u), true
	}
	return int64(u), true
}

// Uint64 converts d to a uint64 and reports whether it is in range.
func (d *Digits) Uint64() (uint64, bool) {
	u, ok := d.magnitude(Uint64Precision, math.MaxUint64)
	if !ok || d.Neg && u != 0 {
		return 0, false
	}
	return u, true
}

// Hex32 returns the 32-bit pattern of the hexadecimal digits of d.
func (d *Digits) Hex32() (uint32, bool) {
	u, ok := d.hex(Uint32Precision, 32)
	return uint32(u), ok
}

// Hex64 returns the 64-bit pattern of the hexadecimal digits of d.
func (d *Digits) Hex64() (uint64, bool) {
	return d.hex(Uint64Precision, 64)
}

// Float converts d to the nearest floating-point value of the given bit
// size, 32 or 64. It reports false if the value is too large to represent.
// Values too small to represent become zero.
func (d *Digits) Float(bitSize int) (float64, bool) {
	if d.IsZero() {
		if d.Neg {
			return math.Copysign(0, -1), true
		}
		return 0, true
	}
	var buf [MaxDigits + 32]byte
	b := buf[:0]
	if d.Neg {
		b = append(b, '-')
	}
	b = append(b, "0."...)
	b = append(b, d.Bytes()...)
	b = append(b, 'e')
	b = strconv.AppendInt(b, int64(d.Scale), 10)
	f, err := strconv.ParseFloat(string(b), bitSize)
	if err != nil {
		return f, false
	}
	return f, true
}
