// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import "golang.org/x/numfmt/locale"

// Sign and symbol placement templates. A '#' expands to the digits, '-' to
// the negative sign and '%' to the percent symbol; other bytes are copied.

const posNumberFormat = "#"

var negNumberFormats = [locale.NumNumberNegativePatterns]string{
	"(#)",
	"-#",
	"- #",
	"#-",
	"# -",
}

var posPercentFormats = [locale.NumPercentPositivePatterns]string{
	"# %",
	"#%",
	"%#",
}

var negPercentFormats = [locale.NumPercentNegativePatterns]string{
	"-# %",
	"-#%",
	"-%#",
}
