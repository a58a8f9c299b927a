// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"strconv"

	"golang.org/x/numfmt/locale"
)

// A FormatError reports a format string that cannot be applied to a value of
// the kind being formatted.
type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return "number: invalid format " + strconv.Quote(e.Format)
}

// AppendStandard appends d rendered with the standard specifier s. It reports
// false, leaving dst untouched, if s.Kind is not one of General, Fixed,
// Scientific, Grouped or Percent. AppendStandard rounds d in place.
func AppendStandard(dst []byte, d *Digits, s Specifier, p *locale.Profile) ([]byte, bool) {
	p = locale.Default(p)
	digits := s.Digits
	switch s.Kind {
	case Fixed:
		if digits < 0 {
			digits = p.NumberDecimalDigits
		}
		d.Round(d.Scale + digits)
		if d.Neg {
			dst = append(dst, p.NegativeSign...)
		}
		dst = appendFixed(dst, d, digits, nil, "", p.NumberDecimalSeparator)

	case Grouped:
		if digits < 0 {
			digits = p.NumberDecimalDigits
		}
		d.Round(d.Scale + digits)
		tmpl := posNumberFormat
		if d.Neg {
			tmpl = negNumberFormats[index(p.NumberNegativePattern, len(negNumberFormats), 1)]
		}
		for i := 0; i < len(tmpl); i++ {
			switch c := tmpl[i]; c {
			case '#':
				dst = appendFixed(dst, d, digits, p.NumberGroupSizes, p.NumberGroupSeparator, p.NumberDecimalSeparator)
			case '-':
				dst = append(dst, p.NegativeSign...)
			default:
				dst = append(dst, c)
			}
		}

	case Scientific:
		if digits < 0 {
			digits = 6
		}
		digits++
		d.Round(digits)
		if d.Neg {
			dst = append(dst, p.NegativeSign...)
		}
		dst = appendScientific(dst, d, digits, s.Letter, p)

	case General:
		if digits < 1 {
			digits = d.Precision
		}
		d.Round(digits)
		if d.Neg {
			dst = append(dst, p.NegativeSign...)
		}
		dst = appendGeneral(dst, d, digits, s.Letter-('G'-'E'), p)

	case Percent:
		if digits < 0 {
			digits = p.PercentDecimalDigits
		}
		d.Scale += 2
		d.Round(d.Scale + digits)
		tmpl := posPercentFormats[index(p.PercentPositivePattern, len(posPercentFormats), 0)]
		if d.Neg {
			tmpl = negPercentFormats[index(p.PercentNegativePattern, len(negPercentFormats), 0)]
		}
		for i := 0; i < len(tmpl); i++ {
			switch c := tmpl[i]; c {
			case '#':
				dst = appendFixed(dst, d, digits, p.PercentGroupSizes, p.PercentGroupSeparator, p.PercentDecimalSeparator)
			case '-':
				dst = append(dst, p.NegativeSign...)
			case '%':
				dst = append(dst, p.PercentSymbol...)
			default:
				dst = append(dst, c)
			}
		}

	default:
		return dst, false
	}
	return dst, true
}

// index returns i if it selects one of n templates and def otherwise.
func index(i, n, def int) int {
	if i < 0 || i >= n {
		return def
	}
	return i
}

// A digitReader hands out the stored digits of a Digits value in order and
// zeros once they are exhausted.
type digitReader struct {
	b []byte
	i int
}

func (r *digitReader) next() byte {
	if r.i < len(r.b) {
		r.i++
		return r.b[r.i-1]
	}
	return '0'
}

func (r *digitReader) more() bool {
	return r.i < len(r.b)
}

// appendFixed appends the integer part of d followed, if digits > 0, by the
// decimal separator and exactly digits fractional digits. The integer part is
// grouped by sizes if sizes is not empty.
func appendFixed(dst []byte, d *Digits, digits int, sizes []int, groupSep, decSep string) []byte {
	r := digitReader{b: d.Bytes()}
	digPos := d.Scale
	if digPos > 0 {
		stops := groupStops(sizes, digPos)
		j := len(stops) - 1
		for rem := digPos - 1; rem >= 0; rem-- {
			dst = append(dst, r.next())
			if j >= 0 && stops[j] == rem {
				dst = append(dst, groupSep...)
				j--
			}
		}
	} else {
		dst = append(dst, '0')
	}
	if digits > 0 {
		dst = append(dst, decSep...)
		for ; digPos < 0 && digits > 0; digPos++ {
			dst = append(dst, '0')
			digits--
		}
		for ; digits > 0; digits-- {
			dst = append(dst, r.next())
		}
	}
	return dst
}

// groupStops returns, in increasing order, the digit counts to the right of
// each group separator in an integer part of n digits. Each entry of sizes
// is the size of the next group moving left from the decimal point. The last
// entry repeats unless it is 0, which ends grouping.
func groupStops(sizes []int, n int) []int {
	if len(sizes) == 0 {
		return nil
	}
	var stops []int
	sum := 0
	for i := 0; ; {
		size := sizes[i]
		if size <= 0 {
			break
		}
		sum += size
		if sum >= n {
			break
		}
		stops = append(stops, sum)
		if i < len(sizes)-1 {
			i++
		}
	}
	return stops
}

// appendScientific appends one integer digit, the decimal separator unless
// digits is 1, the remaining digits-1 digits and a three-digit exponent.
func appendScientific(dst []byte, d *Digits, digits int, expChar byte, p *locale.Profile) []byte {
	r := digitReader{b: d.Bytes()}
	dst = append(dst, r.next())
	if digits != 1 {
		dst = append(dst, p.NumberDecimalSeparator...)
	}
	for digits--; digits > 0; digits-- {
		dst = append(dst, r.next())
	}
	e := 0
	if !d.IsZero() {
		e = d.Scale - 1
	}
	return appendExponent(dst, e, expChar, p.PositiveSign, p.NegativeSign, 3)
}

// appendGeneral appends d in fixed-point notation if its scale lies in
// [-3, digits] and in scientific notation with a two-digit exponent
// otherwise. Only the stored digits are written.
func appendGeneral(dst []byte, d *Digits, digits int, expChar byte, p *locale.Profile) []byte {
	digPos := d.Scale
	scientific := false
	if digPos > digits || digPos < -3 {
		digPos = 1
		scientific = true
	}
	r := digitReader{b: d.Bytes()}
	if digPos > 0 {
		for ; digPos > 0; digPos-- {
			dst = append(dst, r.next())
		}
	} else {
		dst = append(dst, '0')
	}
	if r.more() {
		dst = append(dst, p.NumberDecimalSeparator...)
		for ; digPos < 0; digPos++ {
			dst = append(dst, '0')
		}
		for r.more() {
			dst = append(dst, r.next())
		}
	}
	if scientific {
		dst = appendExponent(dst, d.Scale-1, expChar, p.PositiveSign, p.NegativeSign, 2)
	}
	return dst
}

// maxExpDigits bounds the minimum exponent width a pattern can request.
const maxExpDigits = 10

// appendExponent appends expChar and the signed exponent e using at least
// minDigits digits. A non-negative exponent is preceded by posSign, which may
// be empty.
func appendExponent(dst []byte, e int, expChar byte, posSign, negSign string, minDigits int) []byte {
	dst = append(dst, expChar)
	if minDigits > maxExpDigits {
		minDigits = maxExpDigits
	}
	if e < 0 {
		return AppendDecimal(dst, uint64(-int64(e)), true, negSign, minDigits)
	}
	dst = append(dst, posSign...)
	return AppendDecimal(dst, uint64(e), false, "", minDigits)
}
