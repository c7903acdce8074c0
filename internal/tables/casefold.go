// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package tables contains the simple case mapping tables and the lookups
// built on them.
package tables

import (
	"sync"
	"unicode"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/unicode/rangetable"
)

// MaxFold is the largest code point covered by the case tables. Code points
// above it are their own upper and lower case.
const MaxFold = 0xFFFF

// A CaseFold maps code points to their upper and lower case partners.
// It is immutable once built and safe for concurrent use.
type CaseFold struct {
	upperToLower map[uint16]uint16
	lowerToUpper map[uint16]uint16
	cased        *unicode.RangeTable
	n            int
}

// New builds a CaseFold from the parallel tables upper and lower, where
// upper[i] and lower[i] are partners. When a code point occurs more than
// once the pair with the lowest index is kept. New panics if the tables
// have different lengths.
func New(upper, lower []uint16) *CaseFold {
	if len(upper) != len(lower) {
		panic("tables: upper and lower case tables differ in length")
	}
	c := &CaseFold{
		upperToLower: make(map[uint16]uint16, len(upper)),
		lowerToUpper: make(map[uint16]uint16, len(lower)),
		n:            len(upper),
	}
	// Iterate backwards so that the earlier (preferred) entry of a repeated
	// code point is written last.
	for i := len(upper) - 1; i >= 0; i-- {
		c.upperToLower[upper[i]] = lower[i]
		c.lowerToUpper[lower[i]] = upper[i]
	}

	cased := make([]rune, 0, len(c.upperToLower)+len(c.lowerToUpper))
	for r := range c.upperToLower {
		cased = append(cased, rune(r))
	}
	for r := range c.lowerToUpper {
		cased = append(cased, rune(r))
	}
	c.cased = rangetable.New(cased...)
	return c
}

// Default returns the CaseFold built from the generated tables. It is
// created on first use.
var Default = sync.OnceValue(func() *CaseFold {
	return New(_UpperTable[:], _LowerTable[:])
})

// Len returns the number of pairs c was built from.
func (c *CaseFold) Len() int { return c.n }

// ToUpper maps r to its upper case partner, or returns r if it has none.
func (c *CaseFold) ToUpper(r rune) rune {
	if uint32(r) > MaxFold {
		return r
	}
	if u, ok := c.lowerToUpper[uint16(r)]; ok {
		return rune(u)
	}
	return r
}

// ToLower maps r to its lower case partner, or returns r if it has none.
func (c *CaseFold) ToLower(r rune) rune {
	if uint32(r) > MaxFold {
		return r
	}
	if l, ok := c.upperToLower[uint16(r)]; ok {
		return rune(l)
	}
	return r
}

// IsCaseless reports whether r is absent from both case maps.
func (c *CaseFold) IsCaseless(r rune) bool {
	if uint32(r) > MaxFold {
		return true
	}
	return !unicode.Is(c.cased, r)
}

// Cased returns the set of code points that have a case partner in c.
// The returned table must not be modified.
func (c *CaseFold) Cased() *unicode.RangeTable { return c.cased }

// ToUpper maps r to upper case using the Default tables.
func ToUpper(r rune) rune { return Default().ToUpper(r) }

// ToLower maps r to lower case using the Default tables.
func ToLower(r rune) rune { return Default().ToLower(r) }

// IsCaseless reports whether r has no case partner in the Default tables.
func IsCaseless(r rune) bool { return Default().IsCaseless(r) }

// Pairs returns copies of the generated upper and lower case tables.
func Pairs() (upper, lower []uint16) {
	upper = append([]uint16(nil), _UpperTable[:]...)
	lower = append([]uint16(nil), _LowerTable[:]...)
	return upper, lower
}

// IsSpace reports whether r separates words when capitalizing.
func IsSpace(r rune) bool { return unicode.IsSpace(r) }

// Cmp returns -1 if x < y, 0 if x == y and +1 if x > y.
func Cmp[T constraints.Integer](x, y T) int {
	if x < y {
		return -1
	}
	if x > y {
		return 1
	}
	return 0
}

// CompareRune compares two code points. If ignoreCase is true both are
// mapped to upper case first. ToUpper is not the inverse of ToLower for
// every code point, so using ToLower here would change the ordering.
func CompareRune(l, r rune, ignoreCase bool) int {
	if ignoreCase {
		c := Default()
		l = c.ToUpper(l)
		r = c.ToUpper(r)
	}
	return Cmp(l, r)
}
