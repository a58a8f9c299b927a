// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locale

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Probe values. They are chosen such that every integer group of the most
// irregular grouping systems in CLDR shows up at least twice.
const (
	probeDecimal  = 123456789012.5
	probeNegative = -1
	probePercent  = 0.5
	probePerMille = 0.5
)

// Lookup parses the BCP 47 identifier id and returns the profile for it.
func Lookup(id string) (*Profile, error) {
	t, err := language.Parse(id)
	if err != nil {
		return nil, err
	}
	return ForTag(t), nil
}

// ForTag returns the profile for the given language tag. Separators, group
// sizes, sign placement and symbols are taken from the CLDR data of
// golang.org/x/text by formatting a set of probe values; fields that cannot
// be inferred keep their invariant values.
//
// Native digits of the tag's numbering system are ignored: profiles only
// describe the text placed around ASCII digits.
func ForTag(t language.Tag) *Profile {
	p := Invariant()
	pr := message.NewPrinter(t)

	probeSeparators(p, pr.Sprintf("%v", number.Decimal(probeDecimal)))
	probeNegativePattern(p, pr.Sprintf("%v", number.Decimal(probeNegative)))
	probePercentPattern(p, pr.Sprintf("%v", number.Percent(probePercent)))
	if sym := trimSpace(nonDigits(pr.Sprintf("%v", number.PerMille(probePerMille)))); sym != "" {
		p.PerMilleSymbol = sym
	}

	if s := pr.Sprintf("%v", number.Decimal(math.NaN())); s != "" {
		p.NaNSymbol = s
	}
	if s := pr.Sprintf("%v", number.Decimal(math.Inf(1))); s != "" {
		p.PositiveInfinitySymbol = s
	}
	if s := pr.Sprintf("%v", number.Decimal(math.Inf(-1))); s != "" {
		p.NegativeInfinitySymbol = s
	}
	return p
}

// split breaks s into alternating runs of non-digits and digits. The result
// starts and ends with a (possibly empty) non-digit run.
func split(s string) (runs []string) {
	start, digit := 0, false
	for i, r := range s {
		if unicode.IsDigit(r) != digit {
			runs = append(runs, s[start:i])
			start, digit = i, !digit
		}
	}
	runs = append(runs, s[start:])
	if digit {
		runs = append(runs, "")
	}
	return runs
}

func nonDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, s)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, unicode.IsSpace)
}

// probeSeparators derives the decimal separator, group separator and group
// sizes from the rendering of probeDecimal, for instance "123,456,789,012.5"
// or "1,23,45,67,89,012.5".
func probeSeparators(p *Profile, s string) {
	runs := split(s)
	// runs: prefix, digits, sep, digits, ..., sep, digits(fraction), suffix
	if len(runs) < 5 {
		return
	}
	digits := runs[1 : len(runs)-1]
	dec := digits[len(digits)-2]
	p.NumberDecimalSeparator = dec
	p.PercentDecimalSeparator = dec

	groups := digits[:len(digits)-2]
	if len(groups) == 1 {
		p.NumberGroupSizes = []int{}
		p.PercentGroupSizes = []int{}
		return
	}
	p.NumberGroupSeparator = groups[1]
	p.PercentGroupSeparator = groups[1]

	var sizes []int
	// Walk the digit groups right to left, skipping the leftmost partial one.
	for i := len(groups) - 1; i > 0; i -= 2 {
		sizes = append(sizes, utf8.RuneCountInString(groups[i]))
	}
	for len(sizes) > 1 && sizes[len(sizes)-1] == sizes[len(sizes)-2] {
		sizes = sizes[:len(sizes)-1]
	}
	p.NumberGroupSizes = sizes
	p.PercentGroupSizes = append([]int(nil), sizes...)
}

// probeNegativePattern derives the negative sign and its placement from the
// rendering of -1.
func probeNegativePattern(p *Profile, s string) {
	runs := split(s)
	if len(runs) != 3 {
		return
	}
	prefix, suffix := runs[0], runs[2]
	switch {
	case strings.HasPrefix(prefix, "(") && strings.HasSuffix(suffix, ")"):
		p.NumberNegativePattern = 0
	case prefix != "" && suffix == "":
		p.NegativeSign = trimSpace(prefix)
		p.NumberNegativePattern = 1
		if p.NegativeSign != prefix {
			p.NumberNegativePattern = 2
		}
	case prefix == "" && suffix != "":
		p.NegativeSign = trimSpace(suffix)
		p.NumberNegativePattern = 3
		if p.NegativeSign != suffix {
			p.NumberNegativePattern = 4
		}
	}
	if p.NegativeSign == "" {
		p.NegativeSign = invariant.NegativeSign
	}
}

// probePercentPattern derives the percent symbol and its placement from the
// rendering of 50%. The negative pattern mirrors the positive one.
func probePercentPattern(p *Profile, s string) {
	runs := split(s)
	if len(runs) != 3 {
		return
	}
	prefix, suffix := runs[0], runs[2]
	switch {
	case suffix != "":
		p.PercentSymbol = trimSpace(suffix)
		p.PercentPositivePattern = 1
		if p.PercentSymbol != suffix {
			p.PercentPositivePattern = 0
		}
	case prefix != "":
		p.PercentSymbol = trimSpace(prefix)
		p.PercentPositivePattern = 2
	}
	if p.PercentSymbol == "" {
		p.PercentSymbol = invariant.PercentSymbol
	}
	p.PercentNegativePattern = p.PercentPositivePattern
}
