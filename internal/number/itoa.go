// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

// The digit encoders write right to left into buf, ending just before index
// end, and return the index of the first digit written. They emit at least
// minDigits digits, padding with leading zeros, and never truncate the value.

func putUint32(buf []byte, end int, v uint32, minDigits int) int {
	for minDigits--; minDigits >= 0 || v != 0; minDigits-- {
		end--
		buf[end] = byte(v%10) + '0'
		v /= 10
	}
	return end
}

// putUint64 splits v into 9-digit chunks so that each chunk is rendered with
// 32-bit arithmetic.
func putUint64(buf []byte, end int, v uint64, minDigits int) int {
	for v>>32 != 0 {
		var rem uint32
		v, rem = divMod1e9(v)
		end = putUint32(buf, end, rem, 9)
		minDigits -= 9
	}
	return putUint32(buf, end, uint32(v), minDigits)
}

func divMod1e9(v uint64) (q uint64, r uint32) {
	return v / 1e9, uint32(v % 1e9)
}

// putHex writes hexadecimal digits; letter is 'A' or 'a' and selects the
// case of the digits above 9.
func putHex(buf []byte, end int, v uint64, letter byte, minDigits int) int {
	for minDigits--; minDigits >= 0 || v != 0; minDigits-- {
		end--
		digit := byte(v & 0xf)
		if digit < 10 {
			buf[end] = digit + '0'
		} else {
			buf[end] = digit - 10 + letter
		}
		v >>= 4
	}
	return end
}

// maxIntDigits is large enough for the widest minimum-width request (99)
// plus the digits of any 64-bit value.
const maxIntDigits = 128

// AppendDecimal appends the decimal digits of the magnitude u, zero-padded to
// at least minDigits, preceded by negSign if neg is set.
func AppendDecimal(dst []byte, u uint64, neg bool, negSign string, minDigits int) []byte {
	if minDigits < 1 {
		minDigits = 1
	}
	var buf [maxIntDigits]byte
	i := putUint64(buf[:], len(buf), u, minDigits)
	if neg {
		dst = append(dst, negSign...)
	}
	return append(dst, buf[i:]...)
}

// AppendHex appends the hexadecimal digits of u, zero-padded to at least
// minDigits. The letter case follows letter, which is 'X' or 'x'.
func AppendHex(dst []byte, u uint64, letter byte, minDigits int) []byte {
	if minDigits < 1 {
		minDigits = 1
	}
	var buf [maxIntDigits]byte
	i := putHex(buf[:], len(buf), u, letter-'X'+'A', minDigits)
	return append(dst, buf[i:]...)
}
