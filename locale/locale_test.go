// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locale

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func TestInvariantIsCopy(t *testing.T) {
	p := Invariant()
	p.NumberGroupSizes[0] = 4
	p.NegativeSign = "~"
	if q := Invariant(); q.NumberGroupSizes[0] != 3 || q.NegativeSign != "-" {
		t.Errorf("Invariant shares state with a previous result: %+v", q)
	}
	if Default(nil).NumberGroupSizes[0] != 3 {
		t.Errorf("Default(nil) was modified")
	}
	if Default(p) != p {
		t.Errorf("Default(p) != p")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		desc string
		edit func(p *Profile)
		ok   bool
	}{
		{"invariant", func(p *Profile) {}, true},
		{"trailing zero group", func(p *Profile) { p.NumberGroupSizes = []int{3, 2, 0} }, true},
		{"no grouping", func(p *Profile) { p.PercentGroupSizes = nil }, true},
		{"zero group first", func(p *Profile) { p.NumberGroupSizes = []int{0, 3} }, false},
		{"group too large", func(p *Profile) { p.PercentGroupSizes = []int{10} }, false},
		{"negative group", func(p *Profile) { p.NumberGroupSizes = []int{-1} }, false},
		{"empty decimal", func(p *Profile) { p.NumberDecimalSeparator = "" }, false},
		{"empty negative sign", func(p *Profile) { p.NegativeSign = "" }, false},
		{"number pattern", func(p *Profile) { p.NumberNegativePattern = 5 }, false},
		{"percent positive", func(p *Profile) { p.PercentPositivePattern = 3 }, false},
		{"percent negative", func(p *Profile) { p.PercentNegativePattern = -1 }, false},
		{"decimal digits", func(p *Profile) { p.NumberDecimalDigits = 100 }, false},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			p := Invariant()
			tc.edit(p)
			if err := p.Validate(); (err == nil) != tc.ok {
				t.Errorf("Validate() = %v; want ok == %v", err, tc.ok)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	const doc = `
numberDecimalSeparator: ","
numberGroupSeparator: "."
numberGroupSizes: [3, 2]
percentPositivePattern: 1
nanSymbol: "n/a"
`
	p, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := Invariant()
	want.NumberDecimalSeparator = ","
	want.NumberGroupSeparator = "."
	want.NumberGroupSizes = []int{3, 2}
	want.PercentPositivePattern = 1
	want.NaNSymbol = "n/a"
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	for _, doc := range []string{
		"unknownKey: 1\n",
		"numberNegativePattern: 9\n",
		"numberGroupSizes: [0, 3]\n",
		"numberGroupSizes: three\n",
	} {
		if _, err := Load(strings.NewReader(doc)); err == nil {
			t.Errorf("Load(%q): got nil error; want error", doc)
		}
	}
	if p, err := Load(strings.NewReader("")); err != nil || p.NegativeSign != "-" {
		t.Errorf("Load(empty) = %+v, %v; want invariant profile", p, err)
	}
}

func TestWriteLoad(t *testing.T) {
	p := Invariant()
	p.NumberGroupSizes = []int{3, 0}
	p.PerMilleSymbol = "‰"
	var buf bytes.Buffer
	if err := p.Write(&buf); err != nil {
		t.Fatal(err)
	}
	q, err := Load(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(p, q); diff != "" {
		t.Errorf("Write/Load mismatch (-want +got):\n%s", diff)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"12", []string{"", "12", ""}},
		{"-1", []string{"-", "1", ""}},
		{"50 %", []string{"", "50", " %"}},
		{"1,234.5", []string{"", "1", ",", "234", ".", "5", ""}},
	}
	for _, tc := range tests {
		if got := split(tc.in); !cmp.Equal(got, tc.want) {
			t.Errorf("split(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestProbes(t *testing.T) {
	p := Invariant()
	probeSeparators(p, "1.23.45.67.89.012,5")
	if p.NumberDecimalSeparator != "," || p.NumberGroupSeparator != "." {
		t.Errorf("separators = %q, %q; want \",\", \".\"", p.NumberDecimalSeparator, p.NumberGroupSeparator)
	}
	if !cmp.Equal(p.NumberGroupSizes, []int{3, 2}) || !cmp.Equal(p.PercentGroupSizes, []int{3, 2}) {
		t.Errorf("group sizes = %v, %v; want [3 2]", p.NumberGroupSizes, p.PercentGroupSizes)
	}

	p = Invariant()
	probeSeparators(p, "123456789012.5")
	if len(p.NumberGroupSizes) != 0 {
		t.Errorf("group sizes = %v; want none", p.NumberGroupSizes)
	}

	negTests := []struct {
		in      string
		sign    string
		pattern int
	}{
		{"(1)", "-", 0},
		{"-1", "-", 1},
		{"- 1", "-", 2},
		{"1-", "-", 3},
		{"1 -", "-", 4},
		{"−1", "−", 1},
	}
	for _, tc := range negTests {
		p := Invariant()
		probeNegativePattern(p, tc.in)
		if p.NegativeSign != tc.sign || p.NumberNegativePattern != tc.pattern {
			t.Errorf("%q: got %q, %d; want %q, %d", tc.in, p.NegativeSign, p.NumberNegativePattern, tc.sign, tc.pattern)
		}
	}

	pctTests := []struct {
		in      string
		sym     string
		pattern int
	}{
		{"50 %", "%", 0},
		{"50%", "%", 1},
		{"%50", "%", 2},
	}
	for _, tc := range pctTests {
		p := Invariant()
		probePercentPattern(p, tc.in)
		if p.PercentSymbol != tc.sym || p.PercentPositivePattern != tc.pattern || p.PercentNegativePattern != tc.pattern {
			t.Errorf("%q: got %q, %d, %d; want %q, %d", tc.in, p.PercentSymbol, p.PercentPositivePattern, p.PercentNegativePattern, tc.sym, tc.pattern)
		}
	}
}

func TestForTag(t *testing.T) {
	tests := []struct {
		tag      language.Tag
		dec, grp string
		sizes    []int
	}{
		{language.English, ".", ",", []int{3}},
		{language.German, ",", ".", []int{3}},
		{language.Hindi, ".", ",", []int{3, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.tag.String(), func(t *testing.T) {
			p := ForTag(tc.tag)
			if p.NumberDecimalSeparator != tc.dec || p.NumberGroupSeparator != tc.grp {
				t.Errorf("separators = %q, %q; want %q, %q", p.NumberDecimalSeparator, p.NumberGroupSeparator, tc.dec, tc.grp)
			}
			if !cmp.Equal(p.NumberGroupSizes, tc.sizes) {
				t.Errorf("group sizes = %v; want %v", p.NumberGroupSizes, tc.sizes)
			}
			if err := p.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	p, err := Lookup("de-CH")
	if err != nil {
		t.Fatal(err)
	}
	if p.NumberDecimalSeparator != "." {
		t.Errorf("de-CH decimal separator = %q; want \".\"", p.NumberDecimalSeparator)
	}
	if _, err := Lookup("not a tag"); err == nil {
		t.Errorf("Lookup of ill-formed tag succeeded")
	}
}
