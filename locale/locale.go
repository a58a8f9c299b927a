// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package locale provides the read-only bundle of separators, symbols and
// grouping rules that drives locale-shaped number formatting and parsing.
//
// A Profile can be taken from the culture-invariant defaults, derived from the
// CLDR data of a BCP 47 language tag, or decoded from a YAML document.
package locale

import (
	"errors"
	"fmt"
)

// Number of entries in the sign-placement template tables. The formatting
// engine indexes its templates with the pattern fields of a Profile.
const (
	NumNumberNegativePatterns  = 5 // (#) -# - # #- # -
	NumPercentPositivePatterns = 3 // # % #% %#
	NumPercentNegativePatterns = 3 // -# % -#% -%#
)

// A Profile holds the locale data used to render and parse numbers. The
// formatting engine never modifies a Profile; a single value may be shared by
// any number of concurrent calls as long as the caller does not mutate it.
type Profile struct {
	NaNSymbol              string `yaml:"nanSymbol"`
	PositiveInfinitySymbol string `yaml:"positiveInfinitySymbol"`
	NegativeInfinitySymbol string `yaml:"negativeInfinitySymbol"`

	PositiveSign string `yaml:"positiveSign"`
	NegativeSign string `yaml:"negativeSign"`

	NumberDecimalSeparator string `yaml:"numberDecimalSeparator"`
	NumberGroupSeparator   string `yaml:"numberGroupSeparator"`
	// NumberGroupSizes lists the digit count of each group left of the
	// decimal point, nearest group first. The last entry repeats; a last
	// entry of 0 stops grouping after the preceding groups.
	NumberGroupSizes    []int `yaml:"numberGroupSizes,flow"`
	NumberDecimalDigits int   `yaml:"numberDecimalDigits"`
	// NumberNegativePattern selects one of "(#)", "-#", "- #", "#-", "# -".
	NumberNegativePattern int `yaml:"numberNegativePattern"`

	PercentDecimalSeparator string `yaml:"percentDecimalSeparator"`
	PercentGroupSeparator   string `yaml:"percentGroupSeparator"`
	PercentGroupSizes       []int  `yaml:"percentGroupSizes,flow"`
	PercentDecimalDigits    int    `yaml:"percentDecimalDigits"`
	// PercentPositivePattern selects one of "# %", "#%", "%#".
	PercentPositivePattern int `yaml:"percentPositivePattern"`
	// PercentNegativePattern selects one of "-# %", "-#%", "-%#".
	PercentNegativePattern int `yaml:"percentNegativePattern"`

	PercentSymbol  string `yaml:"percentSymbol"`
	PerMilleSymbol string `yaml:"perMilleSymbol"`
}

var invariant = Profile{
	NaNSymbol:              "NaN",
	PositiveInfinitySymbol: "Infinity",
	NegativeInfinitySymbol: "-Infinity",

	PositiveSign: "+",
	NegativeSign: "-",

	NumberDecimalSeparator: ".",
	NumberGroupSeparator:   ",",
	NumberGroupSizes:       []int{3},
	NumberDecimalDigits:    2,
	NumberNegativePattern:  1,

	PercentDecimalSeparator: ".",
	PercentGroupSeparator:   ",",
	PercentGroupSizes:       []int{3},
	PercentDecimalDigits:    2,
	PercentPositivePattern:  0,
	PercentNegativePattern:  0,

	PercentSymbol:  "%",
	PerMilleSymbol: "‰",
}

// Invariant returns a new copy of the culture-invariant profile.
func Invariant() *Profile {
	p := invariant.Clone()
	return &p
}

// Default returns p, or the shared invariant profile if p is nil. The result
// must not be modified.
func Default(p *Profile) *Profile {
	if p == nil {
		return &invariant
	}
	return p
}

// Clone returns a deep copy of p.
func (p Profile) Clone() Profile {
	p.NumberGroupSizes = append([]int(nil), p.NumberGroupSizes...)
	p.PercentGroupSizes = append([]int(nil), p.PercentGroupSizes...)
	return p
}

var (
	errDecimalSeparator = errors.New("locale: decimal separator must not be empty")
	errNegativeSign     = errors.New("locale: negative sign must not be empty")
)

// Validate reports whether p can be used by the formatting engine.
func (p *Profile) Validate() error {
	if p.NumberDecimalSeparator == "" || p.PercentDecimalSeparator == "" {
		return errDecimalSeparator
	}
	if p.NegativeSign == "" {
		return errNegativeSign
	}
	if err := checkGroupSizes("numberGroupSizes", p.NumberGroupSizes); err != nil {
		return err
	}
	if err := checkGroupSizes("percentGroupSizes", p.PercentGroupSizes); err != nil {
		return err
	}
	if err := checkRange("numberNegativePattern", p.NumberNegativePattern, NumNumberNegativePatterns); err != nil {
		return err
	}
	if err := checkRange("percentPositivePattern", p.PercentPositivePattern, NumPercentPositivePatterns); err != nil {
		return err
	}
	if err := checkRange("percentNegativePattern", p.PercentNegativePattern, NumPercentNegativePatterns); err != nil {
		return err
	}
	if err := checkRange("numberDecimalDigits", p.NumberDecimalDigits, 100); err != nil {
		return err
	}
	return checkRange("percentDecimalDigits", p.PercentDecimalDigits, 100)
}

func checkRange(name string, v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("locale: %s %d out of range [0, %d)", name, v, n)
	}
	return nil
}

// checkGroupSizes accepts sizes in [1, 9]; only the last entry may be 0.
func checkGroupSizes(name string, sizes []int) error {
	for i, n := range sizes {
		if n == 0 && i == len(sizes)-1 {
			break
		}
		if n < 1 || n > 9 {
			return fmt.Errorf("locale: %s[%d] = %d; want a value in [1, 9]", name, i, n)
		}
	}
	return nil
}
