// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package tables

import (
	"sync"
	"testing"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

func TestTablesLength(t *testing.T) {
	if len(_UpperTable) != len(_LowerTable) {
		t.Fatalf("len(_UpperTable) = %d; len(_LowerTable) = %d",
			len(_UpperTable), len(_LowerTable))
	}
	if n := Default().Len(); n != len(_UpperTable) {
		t.Errorf("Len() = %d; want: %d", n, len(_UpperTable))
	}
}

func TestCaseFold(t *testing.T) {
	tests := []struct {
		fn   func(rune) rune
		name string
		in   rune
		want rune
	}{
		{ToUpper, "ToUpper", 'a', 'A'},
		{ToLower, "ToLower", 'A', 'a'},
		{ToUpper, "ToUpper", 'A', 'A'},
		{ToLower, "ToLower", 'a', 'a'},
		{ToUpper, "ToUpper", 0xFF57, 0xFF37}, // Fullwidth w
		{ToLower, "ToLower", 0xFF37, 0xFF57},
		{ToUpper, "ToUpper", 0x1234, 0x1234},
		{ToLower, "ToLower", 0x1234, 0x1234},

		// Aliased entries: upper -> lower -> upper is not a round trip.
		{ToLower, "ToLower", 0x1FBE, 0x03B9},
		{ToUpper, "ToUpper", 0x03B9, 0x0345},
		{ToLower, "ToLower", 0x0345, 0x03B9},
		{ToLower, "ToLower", 0x0399, 0x03B9},

		// Latin long s and Kelvin sign fold to ASCII but ASCII prefers ASCII.
		{ToLower, "ToLower", 0x017F, 's'},
		{ToUpper, "ToUpper", 's', 'S'},
		{ToLower, "ToLower", 0x212A, 'k'},
		{ToUpper, "ToUpper", 'k', 'K'},
		{ToUpper, "ToUpper", 0x212A, 0x212A},
		{ToLower, "ToLower", 0x2126, 0x03C9}, // Ohm sign
		{ToUpper, "ToUpper", 0x03C9, 0x03A9},
		{ToUpper, "ToUpper", 0x00B5, 0x00B5}, // micro sign has no upper partner
		{ToLower, "ToLower", 0x00B5, 0x03BC},
		{ToUpper, "ToUpper", 0x03BC, 0x00B5},
		{ToUpper, "ToUpper", 0x00FF, 0x0178},
		{ToUpper, "ToUpper", 0x01C6, 0x01C4}, // dž -> DŽ (not Dž)
		{ToLower, "ToLower", 0x01C5, 0x01C6},
		{ToUpper, "ToUpper", 0x03C3, 0x03A3},
		{ToLower, "ToLower", 0x03C2, 0x03C3},
	}
	for _, test := range tests {
		if got := test.fn(test.in); got != test.want {
			t.Errorf("%s(0x%04X) = 0x%04X; want: 0x%04X", test.name, test.in, got, test.want)
		}
	}
}

func TestCaseFoldLimits(t *testing.T) {
	for _, r := range []rune{MaxFold + 1, 0x10400, 0x1F600, unicode.MaxRune, unicode.MaxRune + 1, -1} {
		if u := ToUpper(r); u != r {
			t.Errorf("ToUpper(0x%04X) = 0x%04X; want: 0x%04X", r, u, r)
		}
		if l := ToLower(r); l != r {
			t.Errorf("ToLower(0x%04X) = 0x%04X; want: 0x%04X", r, l, r)
		}
		if !IsCaseless(r) {
			t.Errorf("IsCaseless(0x%04X) = false; want: true", r)
		}
	}
	for r := rune(0); r < ' '; r++ {
		if ToUpper(r) != r || ToLower(r) != r || !IsCaseless(r) {
			t.Errorf("control character 0x%04X is not caseless", r)
		}
	}
}

// The first occurrence of a repeated code point wins.
func TestNewPreferredEntry(t *testing.T) {
	c := New(
		[]uint16{'A', 0x212A, 'K', 'B'},
		[]uint16{'a', 'k', 'k', 'a'},
	)
	tests := []struct {
		fn   func(rune) rune
		name string
		in   rune
		want rune
	}{
		{c.ToUpper, "ToUpper", 'a', 'A'},
		{c.ToUpper, "ToUpper", 'k', 0x212A},
		{c.ToLower, "ToLower", 'K', 'k'},
		{c.ToLower, "ToLower", 'B', 'a'},
		{c.ToLower, "ToLower", 0x212A, 'k'},
	}
	for _, test := range tests {
		if got := test.fn(test.in); got != test.want {
			t.Errorf("%s(%q) = %q; want: %q", test.name, test.in, got, test.want)
		}
	}
	if c.Len() != 4 {
		t.Errorf("Len() = %d; want: 4", c.Len())
	}
}

func TestNewMismatchedTables(t *testing.T) {
	defer func() {
		if e := recover(); e == nil {
			t.Fatal("New did not panic on tables of different lengths")
		}
	}()
	New([]uint16{'A', 'B'}, []uint16{'a'})
}

func TestIsCaseless(t *testing.T) {
	upper, lower := Pairs()
	keys := make(map[rune]bool, len(upper)*2)
	for i := range upper {
		keys[rune(upper[i])] = true
		keys[rune(lower[i])] = true
	}
	for r := rune(0); r <= MaxFold; r++ {
		if got := IsCaseless(r); got == keys[r] {
			t.Errorf("IsCaseless(0x%04X) = %t; want: %t", r, got, !keys[r])
		}
	}
	for _, r := range "0123456789 !?.,;:-_+=()[]{}<>@#$%^&*" {
		if !IsCaseless(r) {
			t.Errorf("IsCaseless(%q) = false; want: true", r)
		}
	}
}

func TestCased(t *testing.T) {
	cased := Default().Cased()
	n := 0
	rangetable.Visit(cased, func(r rune) {
		n++
		if IsCaseless(r) {
			t.Errorf("0x%04X is in the cased table but is caseless", r)
		}
		if ToUpper(r) == r && ToLower(r) == r {
			t.Errorf("0x%04X is in the cased table but has no partner", r)
		}
	})
	if n == 0 {
		t.Fatal("empty cased table")
	}
}

// The UTF-8 encoding of a case partner is never wider than the code point it
// was mapped from, which callers rely on when sizing output buffers.
func TestNoGrowth(t *testing.T) {
	for r := rune(0); r <= MaxFold; r++ {
		if 0xD800 <= r && r <= 0xDFFF {
			continue // utf8.RuneLen rejects surrogates
		}
		n := utf8.RuneLen(r)
		if u := ToUpper(r); utf8.RuneLen(u) > n {
			t.Errorf("ToUpper(0x%04X) = 0x%04X grows from %d to %d bytes",
				r, u, n, utf8.RuneLen(u))
		}
		if l := ToLower(r); utf8.RuneLen(l) > n {
			t.Errorf("ToLower(0x%04X) = 0x%04X grows from %d to %d bytes",
				r, l, n, utf8.RuneLen(l))
		}
	}
}

func TestDefaultConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*CaseFold, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Default()
			if r := results[i].ToUpper('z'); r != 'Z' {
				t.Errorf("ToUpper('z') = %q; want: 'Z'", r)
			}
		}(i)
	}
	wg.Wait()
	for i, c := range results {
		if c != results[0] {
			t.Errorf("Default() #%d returned a different table", i)
		}
	}
}

func TestCompareRune(t *testing.T) {
	tests := []struct {
		l, r       rune
		ignoreCase bool
		want       int
	}{
		{'a', 'a', false, 0},
		{'a', 'b', false, -1},
		{'b', 'a', false, 1},
		{'A', 'a', false, -1},
		{'A', 'a', true, 0},
		{0x03B1, 0x0391, true, 0},
		// '_' sorts after the letters when they are upper cased.
		{'_', 'a', true, 1},
		{'_', 'a', false, -1},
		// 0x1FBE lower cases to 0x03B9 but 0x03B9 upper cases to 0x0345.
		{0x1FBE, 0x03B9, true, 1},
		{0x0345, 0x03B9, true, 0},
	}
	for _, test := range tests {
		if got := CompareRune(test.l, test.r, test.ignoreCase); got != test.want {
			t.Errorf("CompareRune(0x%04X, 0x%04X, %t) = %d; want: %d",
				test.l, test.r, test.ignoreCase, got, test.want)
		}
	}
}

func TestCmp(t *testing.T) {
	if Cmp(1, 2) != -1 || Cmp(2, 1) != 1 || Cmp(3, 3) != 0 {
		t.Error("Cmp(int) returned an invalid result")
	}
	if Cmp[uint16](0xFFFF, 0) != 1 {
		t.Error("Cmp(uint16) returned an invalid result")
	}
}

func TestIsSpace(t *testing.T) {
	for _, r := range " \t\n\v\f\r\u0085\u00a0\u2000\u3000" {
		if !IsSpace(r) {
			t.Errorf("IsSpace(%U) = false; want: true", r)
		}
	}
	for _, r := range "aZ0_\u200b" {
		if IsSpace(r) {
			t.Errorf("IsSpace(%U) = true; want: false", r)
		}
	}
}
