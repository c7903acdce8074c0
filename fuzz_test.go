// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utfcase

import (
	"testing"
	"unicode/utf8"

	"github.com/charlievieth/utfcase/internal/test"
)

func FuzzEncodeDecode(f *testing.F) {
	for _, r := range []rune{0, 'a', 0x7FF, 0xFFFF, 0x10FFFF, MaxEncodable} {
		f.Add(int32(r))
	}
	f.Fuzz(func(t *testing.T, r int32) {
		var buf [EncodeBufSize]byte
		n := EncodeRune(buf[:], r)
		if r < 0 || r > MaxEncodable {
			if n != 0 || buf[0] != 0 {
				t.Fatalf("EncodeRune(0x%X) = %d, % X", r, n, buf)
			}
			return
		}
		if got, size := DecodeRune(buf[:n]); got != r || size != n {
			t.Fatalf("DecodeRune(EncodeRune(0x%04X)) = 0x%04X, %d", r, got, size)
		}
	})
}

func FuzzCase(f *testing.F) {
	for _, s := range []string{"", "aB c", "héllo wörld", "ΑΒΓ δΕΖ", "ſK"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			t.Skip("invalid UTF-8")
		}
		p := []byte(s)
		if got, want := string(ToUpper(p)), test.MapRunes(s, UpperRune); got != want {
			t.Errorf("ToUpper(%+q) = %+q; want: %+q", s, got, want)
		}
		if got, want := string(ToLower(p)), test.MapRunes(s, LowerRune); got != want {
			t.Errorf("ToLower(%+q) = %+q; want: %+q", s, got, want)
		}
		if got, want := string(Capitalize(p)), test.CapitalizeRunes(s); got != want {
			t.Errorf("Capitalize(%+q) = %+q; want: %+q", s, got, want)
		}
	})
}

func FuzzCompare(f *testing.F) {
	f.Add("ab", "abc")
	f.Add("AB", "ab")
	f.Add("_", "a")
	f.Add("αβδ", "ΑΒΔ")
	f.Fuzz(func(t *testing.T, s0, s1 string) {
		if !utf8.ValidString(s0) || !utf8.ValidString(s1) {
			t.Skip("invalid UTF-8")
		}
		for _, ignoreCase := range []bool{true, false} {
			c0 := Compare([]byte(s0), []byte(s1), ignoreCase)
			c1 := Compare([]byte(s1), []byte(s0), ignoreCase)
			if c0 != -c1 {
				t.Fatalf("Compare(%+q, %+q, %t) = %d but reversed = %d",
					s0, s1, ignoreCase, c0, c1)
			}
			if !ignoreCase {
				if want := test.CompareRunes([]rune(s0), []rune(s1), false); c0 != want {
					t.Fatalf("Compare(%+q, %+q, false) = %d; want: %d", s0, s1, c0, want)
				}
			}
		}
	})
}
