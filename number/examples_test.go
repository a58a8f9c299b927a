// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number_test

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/numfmt/locale"
	"golang.org/x/numfmt/number"
)

func ExampleFormatInt32() {
	for _, f := range []string{"D", "D6", "X8", "N0", "G3", "#,##0.00;(#,##0.00)"} {
		s, _ := number.FormatInt32(-1234567, f, nil)
		fmt.Printf("%-22s %s\n", f, s)
	}
	// Output:
	// D                      -1234567
	// D6                     -1234567
	// X8                     FFED2979
	// N0                     -1,234,567
	// G3                     -1.23E+06
	// #,##0.00;(#,##0.00)    (1,234,567.00)
}

func ExampleFormatFloat64() {
	for _, f := range []string{"F2", "E3", "G", "N1", "P0", "R"} {
		s, _ := number.FormatFloat64(1234.5678, f, nil)
		fmt.Printf("%-3s %s\n", f, s)
	}
	s, _ := number.FormatFloat64(math.Inf(-1), "N2", nil)
	fmt.Println(s)
	// Output:
	// F2  1234.57
	// E3  1.235E+003
	// G   1234.5678
	// N1  1,234.6
	// P0  123,457 %
	// R   1234.5678
	// -Infinity
}

func ExampleFormatFloat64_profile() {
	p := locale.Invariant()
	p.NumberDecimalSeparator = ","
	p.NumberGroupSeparator = "."
	p.NumberNegativePattern = 0

	s, _ := number.FormatFloat64(-1234.5, "N2", p)
	fmt.Println(s)
	// Output: (1.234,50)
}

func ExampleFormatError() {
	_, err := number.FormatFloat64(1.5, "D", nil)
	var fe *number.FormatError
	fmt.Println(errors.As(err, &fe), err)
	// Output: true number: invalid format "D"
}

func ExampleParseInt64() {
	v, err := number.ParseInt64("(1,234)", number.Any, nil)
	fmt.Println(v, err)

	_, err = number.ParseInt64("1,234", number.Integer, nil)
	fmt.Println(errors.Is(err, number.ErrSyntax), err)
	// Output:
	// -1234 <nil>
	// true number.ParseInt64: parsing "1,234": invalid syntax
}
