// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math"
	"unicode/utf8"

	"golang.org/x/numfmt/locale"
)

// Custom patterns
//
// A pattern has up to three sections separated by ';': for positive values,
// negative values and zero. The tokens are
//
//	#        digit, if any
//	0        digit, or zero if none
//	.        decimal point; only the first one counts
//	,        group separator between placeholders, or divide by 1000 when
//	         directly left of the decimal point
//	%        multiply by 100 and write the percent symbol
//	‰        multiply by 1000 and write the per mille symbol
//	E0 E+0 E-0 e0 e+0 e-0
//	         scientific notation; the number of zeros is the minimum width
//	         of the exponent; the rest of the section is literal
//	'…' "…"  literal text
//	\c       the literal character c
//
// Any other character is copied to the output.

// eof is returned by cursor.next at the end of the pattern.
const eof rune = -1

// A cursor is a read position in a pattern. Cursors are values: advancing
// one returns a new cursor and leaves the receiver untouched.
type cursor struct {
	pattern string
	pos     int
}

// next returns the rune at c and the cursor just past it, or eof and c at
// the end of the pattern.
func (c cursor) next() (rune, cursor) {
	if c.pos >= len(c.pattern) {
		return eof, c
	}
	r, n := utf8.DecodeRuneInString(c.pattern[c.pos:])
	return r, cursor{c.pattern, c.pos + n}
}

// peek2 returns the two runes at c without advancing.
func (c cursor) peek2() (r0, r1 rune) {
	r0, c = c.next()
	r1, _ = c.next()
	return r0, r1
}

// quoted returns the text up to the closing quote q and the cursor past that
// quote. An unterminated literal runs to the end of the pattern.
func (c cursor) quoted(q rune) (string, cursor) {
	start := c.pos
	for {
		r, n := c.next()
		if r == eof {
			return c.pattern[start:c.pos], c
		}
		if r == q {
			return c.pattern[start:c.pos], n
		}
		c = n
	}
}

// escaped returns the text of the character following a backslash and the
// cursor past it.
func (c cursor) escaped() (string, cursor) {
	_, n := c.next()
	return c.pattern[c.pos:n.pos], n
}

// findSection returns the byte offset of the given section of pattern. It
// returns 0, selecting the first section, if the section is missing or
// empty.
func findSection(pattern string, section int) int {
	if section == 0 {
		return 0
	}
	c := cursor{pattern: pattern}
	for {
		var r rune
		r, c = c.next()
		switch r {
		case eof:
			return 0
		case '\'', '"':
			_, c = c.quoted(r)
		case '\\':
			_, c = c.escaped()
		case ';':
			section--
			if section != 0 {
				break
			}
			if r, _ := c.next(); r != eof && r != ';' {
				return c.pos
			}
			return 0
		}
	}
}

// noDigit marks the absence of a '0' placeholder.
const noDigit = math.MaxInt32

// A layout describes the placeholders of one pattern section.
type layout struct {
	digitCount int
	// firstDigit and lastDigit are the placeholder index of the first '0'
	// and the index after the last '0'.
	firstDigit int
	lastDigit  int
	// decimalPos is the number of placeholders left of the decimal point.
	decimalPos  int
	scientific  bool
	scaleAdjust int
	grouping    bool
}

// scan reads the section starting at c up to the next ';' or the end of the
// pattern.
func scan(c cursor) layout {
	l := layout{firstDigit: noDigit, decimalPos: -1}
	thousandPos, thousandCount := -1, 0
loop:
	for {
		var r rune
		r, c = c.next()
		switch r {
		case eof, ';':
			break loop
		case '#':
			l.digitCount++
		case '0':
			if l.firstDigit == noDigit {
				l.firstDigit = l.digitCount
			}
			l.digitCount++
			l.lastDigit = l.digitCount
		case '.':
			if l.decimalPos < 0 {
				l.decimalPos = l.digitCount
			}
		case ',':
			if l.digitCount > 0 && l.decimalPos < 0 {
				if thousandPos >= 0 {
					if thousandPos == l.digitCount {
						thousandCount++
						break
					}
					l.grouping = true
				}
				thousandPos = l.digitCount
				thousandCount = 1
			}
		case '%':
			l.scaleAdjust += 2
		case '‰':
			l.scaleAdjust += 3
		case '\'', '"':
			_, c = c.quoted(r)
		case '\\':
			_, c = c.escaped()
		case 'E', 'e':
			r0, r1 := c.peek2()
			if r0 == '0' || (r0 == '+' || r0 == '-') && r1 == '0' {
				l.scientific = true
				break loop
			}
		}
	}
	if l.decimalPos < 0 {
		l.decimalPos = l.digitCount
	}
	if thousandPos >= 0 {
		if thousandPos == l.decimalPos {
			l.scaleAdjust -= 3 * thousandCount
		} else {
			l.grouping = true
		}
	}
	return l
}

// A grouper writes group separators while the integer digits of a custom
// pattern are emitted from left to right.
type grouper struct {
	stops []int
	j     int
	sep   string
}

func newGrouper(stops []int, sep string) grouper {
	return grouper{stops: stops, j: len(stops) - 1, sep: sep}
}

// after appends a separator if the digit just written at position digPos has
// a group boundary to its right. Integer digits are written at every
// position from the highest stop down, so stops are met in order.
func (g *grouper) after(dst []byte, digPos int) []byte {
	if g.j >= 0 && g.stops[g.j] == digPos-1 {
		dst = append(dst, g.sep...)
		g.j--
	}
	return dst
}

// AppendPattern appends d rendered with the custom pattern. AppendPattern
// rounds d in place.
func AppendPattern(dst []byte, d *Digits, pattern string, p *locale.Profile) []byte {
	p = locale.Default(p)

	section := 0
	if d.IsZero() {
		section = 2
	} else if d.Neg {
		section = 1
	}
	start := findSection(pattern, section)

	var l layout
	for {
		l = scan(cursor{pattern, start})
		if d.IsZero() {
			d.Neg = false
			break
		}
		d.Scale += l.scaleAdjust
		pos := d.Scale + l.digitCount - l.decimalPos
		if l.scientific {
			pos = l.digitCount
		}
		d.Round(pos)
		if d.IsZero() {
			// The value rounded away; use the zero section if there is one.
			if z := findSection(pattern, 2); z != start {
				start = z
				continue
			}
		}
		break
	}

	firstDigit, lastDigit := 0, 0
	if l.firstDigit < l.decimalPos {
		firstDigit = l.decimalPos - l.firstDigit
	}
	if l.lastDigit > l.decimalPos {
		lastDigit = l.decimalPos - l.lastDigit
	}

	digPos, adjust := l.decimalPos, 0
	if !l.scientific {
		digPos = max(d.Scale, l.decimalPos)
		adjust = d.Scale - l.decimalPos
	}

	g := newGrouper(nil, "")
	if l.grouping {
		n := max(firstDigit, digPos+min(adjust, 0))
		g = newGrouper(groupStops(p.NumberGroupSizes, n), p.NumberGroupSeparator)
	}

	if d.Neg && start == 0 {
		dst = append(dst, p.NegativeSign...)
	}

	digits := digitReader{b: d.Bytes()}
	scientific := l.scientific
	literal := false
	c := cursor{pattern, start}
	for {
		prev := c
		var r rune
		r, c = c.next()
		if r == eof || r == ';' {
			break
		}
		switch {
		case r == '\'' || r == '"':
			var s string
			s, c = c.quoted(r)
			dst = append(dst, s...)
			continue
		case r == '\\':
			var s string
			s, c = c.escaped()
			dst = append(dst, s...)
			continue
		case literal:
			dst = append(dst, pattern[prev.pos:c.pos]...)
			continue
		}

		switch r {
		case '#', '0':
			for ; adjust > 0; adjust-- {
				dst = append(dst, digits.next())
				dst = g.after(dst, digPos)
				digPos--
			}
			var ch byte
			switch {
			case adjust < 0:
				adjust++
				if digPos <= firstDigit {
					ch = '0'
				}
			case digits.more():
				ch = digits.next()
			case digPos > lastDigit:
				ch = '0'
			}
			if ch != 0 {
				if digPos == 0 {
					dst = append(dst, p.NumberDecimalSeparator...)
				}
				dst = append(dst, ch)
				dst = g.after(dst, digPos)
			}
			digPos--

		case '.', ',':

		case '%':
			dst = append(dst, p.PercentSymbol...)

		case '‰':
			dst = append(dst, p.PerMilleSymbol...)

		case 'E', 'e':
			if !scientific {
				dst = append(dst, byte(r))
				break
			}
			r0, r1 := c.peek2()
			sign, width := "", 0
			switch {
			case r0 == '0':
				width = 1
			case r0 == '+' && r1 == '0':
				sign = p.PositiveSign
			case r0 == '-' && r1 == '0':
			default:
				dst = append(dst, byte(r))
				continue
			}
			_, c = c.next()
			for r0, _ = c.peek2(); r0 == '0'; r0, _ = c.peek2() {
				_, c = c.next()
				width++
			}
			e := 0
			if !d.IsZero() {
				e = d.Scale - l.decimalPos
			}
			dst = appendExponent(dst, e, byte(r), sign, p.NegativeSign, width)
			scientific = false
			literal = true

		default:
			dst = append(dst, pattern[prev.pos:c.pos]...)
		}
	}
	return dst
}
