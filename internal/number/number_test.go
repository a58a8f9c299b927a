// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"fmt"
	"math"
	"testing"
)

// mkdig returns the Digits value of the decimal number s.
func mkdig(s string) Digits {
	var d Digits
	if !d.Scan(s, Any, nil) {
		panic(fmt.Sprintf("mkdig: invalid number %q", s))
	}
	return d
}

func TestIntConstructors(t *testing.T) {
	testCases := []struct {
		set    func(d *Digits)
		digits string
		scale  int
		neg    bool
		prec   int
	}{
		{func(d *Digits) { d.SetInt32(0) }, "", 0, false, Int32Precision},
		{func(d *Digits) { d.SetInt32(-5) }, "5", 1, true, Int32Precision},
		{func(d *Digits) { d.SetInt32(100) }, "1", 3, false, Int32Precision},
		{func(d *Digits) { d.SetInt32(math.MinInt32) }, "2147483648", 10, true, Int32Precision},
		{func(d *Digits) { d.SetUint32(math.MaxUint32) }, "4294967295", 10, false, Uint32Precision},
		{func(d *Digits) { d.SetInt64(math.MinInt64) }, "9223372036854775808", 19, true, Int64Precision},
		{func(d *Digits) { d.SetInt64(1020304050607) }, "1020304050607", 13, false, Int64Precision},
		{func(d *Digits) { d.SetUint64(math.MaxUint64) }, "18446744073709551615", 20, false, Uint64Precision},
		{func(d *Digits) { d.SetUint64(5000000000) }, "5", 10, false, Uint64Precision},
	}
	for i, tc := range testCases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			var d Digits
			tc.set(&d)
			if got := string(d.Bytes()); got != tc.digits {
				t.Errorf("digits: got %q; want %q", got, tc.digits)
			}
			if d.Scale != tc.scale {
				t.Errorf("scale: got %d; want %d", d.Scale, tc.scale)
			}
			if d.Neg != tc.neg {
				t.Errorf("neg: got %v; want %v", d.Neg, tc.neg)
			}
			if d.Precision != tc.prec {
				t.Errorf("precision: got %d; want %d", d.Precision, tc.prec)
			}
		})
	}
}

func TestSetFloat(t *testing.T) {
	testCases := []struct {
		v      float64
		prec   int
		digits string
		scale  int
		neg    bool
	}{
		{0, 15, "", 0, false},
		{math.Copysign(0, -1), 15, "", 0, true},
		{0.1, 15, "1", 0, false},
		{0.1, 17, "10000000000000001", 0, false},
		{1234.5678, 15, "12345678", 4, false},
		{-1234.5678, 15, "12345678", 4, true},
		{1.0 / 3, 7, "3333333", 0, false},
		{2.0 / 3, 7, "6666667", 0, false},
		{9.9999999, 7, "1", 2, false},
		{1e-300, 15, "1", -299, false},
		{1e300, 15, "1", 301, false},
		{math.MaxFloat64, 17, "17976931348623157", 309, false},
		{123, 0, "1", 3, false}, // precision is at least 1
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprint(tc.v, "/", tc.prec), func(t *testing.T) {
			var d Digits
			d.SetFloat(tc.v, tc.prec)
			if got := string(d.Bytes()); got != tc.digits {
				t.Errorf("digits: got %q; want %q", got, tc.digits)
			}
			if d.Scale != tc.scale {
				t.Errorf("scale: got %d; want %d", d.Scale, tc.scale)
			}
			if d.Neg != tc.neg {
				t.Errorf("neg: got %v; want %v", d.Neg, tc.neg)
			}
		})
	}
}

func TestSetFloatSpecial(t *testing.T) {
	var d Digits
	d.SetFloat(math.NaN(), 15)
	if !d.IsNaN() || d.IsInf() || !d.IsZero() {
		t.Errorf("NaN: got %v", &d)
	}
	d.SetFloat(math.Inf(-1), 15)
	if !d.IsInf() || !d.Neg {
		t.Errorf("-Inf: got %v", &d)
	}
	d.SetFloat(math.Inf(1), 15)
	if !d.IsInf() || d.Neg {
		t.Errorf("+Inf: got %v", &d)
	}
}

func TestRound(t *testing.T) {
	testCases := []struct {
		in     string
		pos    int
		digits string
		scale  int
	}{
		{"4999999995", 9, "5", 10},
		{"9999999995", 9, "1", 11},
		{"9999999994", 9, "999999999", 10},
		{"12345", 3, "123", 5},
		{"12355", 3, "124", 5},
		{"12500", 2, "13", 5},
		{"10001", 4, "1", 5},
		{"1.5", 1, "2", 1},
		{"0.5", 0, "1", 1},
		{"0.4", 0, "", 0},
		{"0.001", -1, "", 0},
		{"0", 5, "", 0},
		{"123", 10, "123", 3},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprint(tc.in, "/", tc.pos), func(t *testing.T) {
			d := mkdig(tc.in)
			d.Round(tc.pos)
			if got := string(d.Bytes()); got != tc.digits {
				t.Errorf("digits: got %q; want %q", got, tc.digits)
			}
			if d.Scale != tc.scale {
				t.Errorf("scale: got %d; want %d", d.Scale, tc.scale)
			}

			if tc.pos <= 0 {
				return
			}
			// Rounding again at the same position has no effect.
			before := d
			d.Round(tc.pos)
			if d != before {
				t.Errorf("second round: got %v; want %v", &d, &before)
			}
		})
	}
}

func TestRoundNegativeZero(t *testing.T) {
	d := mkdig("-0.0004")
	d.Round(d.Scale + 2)
	if !d.IsZero() || d.Neg || d.Scale != 0 {
		t.Errorf("got %v; want unsigned zero", &d)
	}
}

func TestString(t *testing.T) {
	testCases := []struct {
		set  func(d *Digits)
		want string
	}{
		{func(d *Digits) { d.SetInt32(-125) }, "-0.125e+3"},
		{func(d *Digits) { d.SetInt32(0) }, "0.0e+0"},
		{func(d *Digits) { d.SetFloat(0.00025, 15) }, "0.25e-3"},
		{func(d *Digits) { d.SetFloat(math.NaN(), 15) }, "NaN"},
		{func(d *Digits) { d.SetFloat(math.Inf(-1), 15) }, "-Inf"},
	}
	for _, tc := range testCases {
		var d Digits
		tc.set(&d)
		if got := d.String(); got != tc.want {
			t.Errorf("got %q; want %q", got, tc.want)
		}
	}
}
