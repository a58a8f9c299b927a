// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package number implements the conversion engine between binary numbers and
// locale-shaped text. Every conversion goes through a Digits value: a sign, a
// decimal scale and a bounded string of significant digits.
package number

import "math"

// MaxDigits is the number of significant digits a Digits value can hold.
const MaxDigits = 50

// Sentinel scales of a Digits value holding a non-finite floating-point value.
const (
	ScaleNaN = math.MinInt32
	ScaleInf = math.MaxInt32
)

// Digits is the canonical decimal form of a number mid-conversion. The value
// it denotes is 0.d1d2d3... × 10^Scale, negated if Neg is set. Positions past
// the last stored digit are implicitly zero.
//
// A Digits value is built fresh by one of the Set methods for every
// conversion and is mutated in place by rounding and rendering.
type Digits struct {
	Neg bool
	// Scale is the position of the decimal point relative to the first
	// stored digit, or one of ScaleNaN and ScaleInf.
	Scale int
	// Precision is the number of significant digits the buffer was
	// produced with.
	Precision int

	// digits holds ASCII digits terminated by a 0 byte. Hexadecimal input
	// may also store the letters A-F and a-f.
	digits [MaxDigits + 1]byte
}

// IsZero reports whether d holds no digits.
func (d *Digits) IsZero() bool {
	return d.digits[0] == 0
}

// IsNaN reports whether d holds a NaN.
func (d *Digits) IsNaN() bool { return d.Scale == ScaleNaN }

// IsInf reports whether d holds an infinity.
func (d *Digits) IsInf() bool { return d.Scale == ScaleInf }

// Len returns the number of stored digits.
func (d *Digits) Len() int {
	n := 0
	for d.digits[n] != 0 {
		n++
	}
	return n
}

// Bytes returns the stored digits. The result aliases d.
func (d *Digits) Bytes() []byte {
	return d.digits[:d.Len()]
}

// digit returns the digit at position i, or 0 if i is past the end.
func (d *Digits) digit(i int) byte {
	if i < 0 || i > MaxDigits {
		return 0
	}
	return d.digits[i]
}

// setDigits stores b, which must contain at most MaxDigits digits, and drops
// trailing zeros. The scale is left untouched.
func (d *Digits) setDigits(b []byte) {
	n := copy(d.digits[:MaxDigits], b)
	for n > 0 && d.digits[n-1] == '0' {
		n--
	}
	d.digits[n] = 0
}

// String returns a debug representation of d, such as "-0.125e+2".
func (d *Digits) String() string {
	switch {
	case d.IsNaN():
		return "NaN"
	case d.IsInf():
		if d.Neg {
			return "-Inf"
		}
		return "+Inf"
	}
	b := make([]byte, 0, MaxDigits+16)
	if d.Neg {
		b = append(b, '-')
	}
	b = append(b, "0."...)
	if d.IsZero() {
		b = append(b, '0')
	}
	b = append(b, d.Bytes()...)
	b = append(b, 'e')
	if d.Scale >= 0 {
		b = append(b, '+')
	}
	return string(appendInt(b, d.Scale))
}

func appendInt(b []byte, v int) []byte {
	var buf [24]byte
	u := uint64(v)
	if v < 0 {
		b = append(b, '-')
		u = uint64(-int64(v))
	}
	i := putUint64(buf[:], len(buf), u, 1)
	return append(b, buf[i:]...)
}
