// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package ucs2case

import (
	"encoding/binary"

	"github.com/charlievieth/utfcase/internal/tables"
)

// CompareRune compares two units and returns -1, 0 or +1. If ignoreCase is
// true both are mapped to upper case before being compared.
func CompareRune(a, b uint16, ignoreCase bool) int {
	return tables.CompareRune(rune(a), rune(b), ignoreCase)
}

// Compare returns an integer comparing a and b unit by unit. The result will
// be 0 if a == b, -1 if a < b, and +1 if a > b. If ignoreCase is true units
// are compared by their upper case mapping.
//
// If one is a prefix of the other the shorter one sorts first.
func Compare(a, b []uint16, ignoreCase bool) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := tables.CompareRune(rune(a[i]), rune(b[i]), ignoreCase); c != 0 {
			return c
		}
	}
	return tables.Cmp(len(a), len(b))
}

// EqualFold reports whether a and b are equal under simple upper case
// folding.
func EqualFold(a, b []uint16) bool {
	return Compare(a, b, true) == 0
}

// CompareBytes is like Compare but operates on byte slices holding units in
// the given byte order. Lengths are counted in units, a trailing odd byte is
// ignored.
func CompareBytes(a, b []byte, order binary.ByteOrder, ignoreCase bool) int {
	na := len(a) / 2
	nb := len(b) / 2
	n := na
	if nb < n {
		n = nb
	}
	for i := 0; i < n*2; i += 2 {
		ca := rune(order.Uint16(a[i:]))
		cb := rune(order.Uint16(b[i:]))
		if c := tables.CompareRune(ca, cb, ignoreCase); c != 0 {
			return c
		}
	}
	return tables.Cmp(na, nb)
}
