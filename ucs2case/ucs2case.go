// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package ucs2case implements case conversion and comparison of UCS-2
// encoded text.
//
// A UCS-2 buffer is a []uint16 holding exactly one code unit per character.
// Surrogate pairs are not interpreted, each unit is folded on its own, so
// code points above the Basic Multilingual Plane cannot be represented.
// Byte oriented buffers are converted with [FromBytes] and [Bytes].
package ucs2case

import (
	"github.com/charlievieth/utfcase/internal/bytealg"
	"github.com/charlievieth/utfcase/internal/tables"
)

// ToUpper returns a copy of s with every unit mapped to upper case.
func ToUpper(s []uint16) []uint16 {
	return convertCase(s, 'a', tables.ToUpper)
}

// ToLower returns a copy of s with every unit mapped to lower case.
func ToLower(s []uint16) []uint16 {
	return convertCase(s, 'A', tables.ToLower)
}

// convertCase maps every unit of s through fn. The ASCII prefix of s is
// handled directly: units in [from, from+26) are swapped to the other case.
func convertCase(s []uint16, from uint16, fn func(rune) rune) []uint16 {
	out := make([]uint16, len(s))
	n := bytealg.IndexNonASCIIUnits(s)
	if n < 0 {
		n = len(s)
	}
	for i, c := range s[:n] {
		if c-from < 26 {
			c ^= ' '
		}
		out[i] = c
	}
	for i := n; i < len(s); i++ {
		out[i] = uint16(fn(rune(s[i])))
	}
	return out
}

// Capitalize returns a copy of s with the first unit of each word mapped to
// upper case and every other unit mapped to lower case. A word starts at the
// beginning of s and after any white space unit.
func Capitalize(s []uint16) []uint16 {
	out := make([]uint16, len(s))
	n := bytealg.IndexNonASCIIUnits(s)
	if n < 0 {
		n = len(s)
	}
	wordStart := true
	for i, c := range s[:n] {
		if wordStart {
			if c-'a' < 26 {
				c ^= ' '
			}
		} else if c-'A' < 26 {
			c ^= ' '
		}
		out[i] = c
		wordStart = tables.IsSpace(rune(c))
	}
	for i := n; i < len(s); i++ {
		r := rune(s[i])
		if wordStart {
			r = tables.ToUpper(r)
		} else {
			r = tables.ToLower(r)
		}
		out[i] = uint16(r)
		// Taken from the mapped unit, case mappings never change white space.
		wordStart = tables.IsSpace(r)
	}
	return out
}

// IsCaseless reports whether no unit of s has a case mapping.
func IsCaseless(s []uint16) bool {
	n := bytealg.IndexNonASCIIUnits(s)
	if n < 0 {
		n = len(s)
	}
	for _, c := range s[:n] {
		if c|' '-'a' < 26 { // ASCII letter
			return false
		}
	}
	for _, c := range s[n:] {
		if !tables.IsCaseless(rune(c)) {
			return false
		}
	}
	return true
}

// UpperRune returns the upper case mapping of unit c.
func UpperRune(c uint16) uint16 { return uint16(tables.ToUpper(rune(c))) }

// LowerRune returns the lower case mapping of unit c.
func LowerRune(c uint16) uint16 { return uint16(tables.ToLower(rune(c))) }

// IsCaselessRune reports whether unit c has no case mapping.
func IsCaselessRune(c uint16) bool { return tables.IsCaseless(rune(c)) }
