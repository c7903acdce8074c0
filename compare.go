// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utfcase

import "github.com/charlievieth/utfcase/internal/tables"

// CompareRune compares two code points and returns -1, 0 or +1. If
// ignoreCase is true both are mapped to upper case before being compared.
//
// Upper case is used since the simple mappings are not inverses of each
// other, comparing lower case mappings gives different results for some
// code points.
func CompareRune(l, r rune, ignoreCase bool) int {
	return tables.CompareRune(l, r, ignoreCase)
}

// Compare returns an integer comparing two UTF-8 encoded byte slices
// character by character. The result will be 0 if a == b, -1 if a < b, and
// +1 if a > b. If ignoreCase is true characters are compared by their upper
// case mapping.
//
// If one slice is a prefix of the other the shorter one, in bytes, sorts
// first.
func Compare(a, b []byte, ignoreCase bool) int {
	i, c := compareASCII(a, b, ignoreCase)
	if c != 0 {
		return c
	}
	j := i
	for i < len(a) && j < len(b) {
		ra, na := DecodeRune(a[i:])
		rb, nb := DecodeRune(b[j:])
		if c := tables.CompareRune(ra, rb, ignoreCase); c != 0 {
			return c
		}
		i += na
		j += nb
	}
	return tables.Cmp(len(a), len(b))
}

// EqualFold reports whether the UTF-8 encoded a and b are equal under
// simple upper case folding.
func EqualFold(a, b []byte) bool {
	return Compare(a, b, true) == 0
}
