// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math"
	"strconv"
)

// Significant digits produced by the integer constructors.
const (
	Int32Precision  = 10
	Uint32Precision = Int32Precision
	Int64Precision  = 19
	Uint64Precision = 20
)

// Significant digits produced by the floating-point constructor: the default
// for float32 and float64 and the wider round-trip fallbacks.
const (
	Float32Precision          = 7
	Float64Precision          = 15
	Float32RoundTripPrecision = 9
	Float64RoundTripPrecision = 17
)

// SetInt32 sets d to v.
func (d *Digits) SetInt32(v int32) {
	d.setUint(abs64(int64(v)), v < 0, Int32Precision)
}

// SetUint32 sets d to v.
func (d *Digits) SetUint32(v uint32) {
	d.setUint(uint64(v), false, Uint32Precision)
}

// SetInt64 sets d to v.
func (d *Digits) SetInt64(v int64) {
	d.setUint(abs64(v), v < 0, Int64Precision)
}

// SetUint64 sets d to v.
func (d *Digits) SetUint64(v uint64) {
	d.setUint(v, false, Uint64Precision)
}

// abs64 returns the magnitude of v; it is correct for math.MinInt64.
func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func (d *Digits) setUint(u uint64, neg bool, precision int) {
	var buf [Uint64Precision]byte
	i := putUint64(buf[:], len(buf), u, 0)
	*d = Digits{Neg: neg, Scale: len(buf) - i, Precision: precision}
	d.setDigits(buf[i:])
}

// SetFloat sets d to v rounded to precision significant digits. NaN and the
// infinities are recorded with the sentinel scales and store no digits.
//
// The digits are correctly rounded, not truncated, from the exact binary
// value of v: 2.0/3 at precision 7 stores 6666667.
func (d *Digits) SetFloat(v float64, precision int) {
	if precision < 1 {
		precision = 1
	} else if precision > MaxDigits {
		precision = MaxDigits
	}
	*d = Digits{Precision: precision}
	switch {
	case math.IsNaN(v):
		d.Scale = ScaleNaN
		return
	case math.IsInf(v, 0):
		d.Scale = ScaleInf
		d.Neg = v < 0
		return
	}
	if math.Signbit(v) {
		d.Neg = true
		v = -v
	}
	if v == 0 {
		return
	}

	// Format as d.ddddde±xx and split off the exponent.
	var buf [MaxDigits + 16]byte
	b := strconv.AppendFloat(buf[:0], v, 'e', precision-1, 64)
	e := len(b) - 1
	for b[e] != 'e' {
		e--
	}
	exp, _ := strconv.Atoi(string(b[e+1:]))
	mant := b[:e]
	if len(mant) > 1 {
		// Remove the decimal point.
		mant = append(mant[:1], mant[2:]...)
	}
	d.Scale = exp + 1
	d.setDigits(mant)
}

// Round rounds d half-up to pos significant digits. A carry that runs
// through all digits produces a single 1 and increments the scale. Trailing
// zeros are removed. If no digits remain, d becomes an unsigned zero.
func (d *Digits) Round(pos int) {
	i := 0
	for i < pos && d.digits[i] != 0 {
		i++
	}
	if i == pos && d.digit(i) >= '5' {
		for i > 0 && d.digits[i-1] == '9' {
			i--
		}
		if i > 0 {
			d.digits[i-1]++
		} else {
			d.Scale++
			d.digits[0] = '1'
			i = 1
		}
	} else {
		for i > 0 && d.digits[i-1] == '0' {
			i--
		}
	}
	if i == 0 {
		d.Scale = 0
		d.Neg = false
	}
	d.digits[i] = 0
}
