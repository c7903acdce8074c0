// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utfcase

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	step := rune(1)
	if testing.Short() {
		step = 7
	}
	var buf [EncodeBufSize]byte
	for r := rune(0); r < MaxEncodable; r += step {
		n := EncodeRune(buf[:], r)
		if n != RuneLen(r) {
			t.Fatalf("EncodeRune(0x%04X) = %d; want: %d", r, n, RuneLen(r))
		}
		if buf[n] != 0 {
			t.Fatalf("EncodeRune(0x%04X): missing terminator: % X", r, buf[:n+1])
		}
		got, size := DecodeRune(buf[:n])
		if got != r || size != n {
			t.Fatalf("DecodeRune(EncodeRune(0x%04X)) = 0x%04X, %d; want: 0x%04X, %d",
				r, got, size, r, n)
		}
	}
}

// Valid runes must encode exactly like the standard library.
func TestEncodeRuneStdlib(t *testing.T) {
	runes := []rune{
		0, 'a', 0x7F, 0x80, 0x7FF, 0x800, 0xFFFF, 0x10000, 0x10FFFF,
		'é', 'ω', 0x212A, 0xFF57, 0x1F600,
	}
	var buf [EncodeBufSize]byte
	for _, r := range runes {
		n := EncodeRune(buf[:], r)
		want := utf8.AppendRune(nil, r)
		if !bytes.Equal(buf[:n], want) {
			t.Errorf("EncodeRune(0x%04X) = % X; want: % X", r, buf[:n], want)
		}
		if got := AppendRune(nil, r); !bytes.Equal(got, want) {
			t.Errorf("AppendRune(0x%04X) = % X; want: % X", r, got, want)
		}
		if got := Decode(want); got != r {
			t.Errorf("Decode(% X) = 0x%04X; want: 0x%04X", want, got, r)
		}
	}
}

// Surrogates and values above unicode.MaxRune are not rejected.
func TestEncodeRuneUnchecked(t *testing.T) {
	tests := []struct {
		r    rune
		want []byte
	}{
		{0xD800, []byte{0xED, 0xA0, 0x80}},
		{0xDFFF, []byte{0xED, 0xBF, 0xBF}},
		{0x110000, []byte{0xF4, 0x90, 0x80, 0x80}},
		{MaxEncodable, []byte{0xF7, 0xBF, 0xBF, 0xBF}},
	}
	var buf [EncodeBufSize]byte
	for _, test := range tests {
		n := EncodeRune(buf[:], test.r)
		if !bytes.Equal(buf[:n], test.want) {
			t.Errorf("EncodeRune(0x%04X) = % X; want: % X", test.r, buf[:n], test.want)
		}
	}
}

func TestEncodeRuneOutOfRange(t *testing.T) {
	for _, r := range []rune{MaxEncodable + 1, 0x7FFFFFFF, -1} {
		buf := []byte{0xAA, 0xAA}
		if n := EncodeRune(buf, r); n != 0 {
			t.Errorf("EncodeRune(0x%04X) = %d; want: 0", r, n)
		}
		if buf[0] != 0 || buf[1] != 0xAA {
			t.Errorf("EncodeRune(0x%04X) wrote % X; want: 00 AA", r, buf)
		}
		if n := RuneLen(r); n != 0 {
			t.Errorf("RuneLen(0x%04X) = %d; want: 0", r, n)
		}
	}
}

func TestDecodeRuneWidth(t *testing.T) {
	tests := []struct {
		in   []byte
		want rune
		size int
	}{
		{[]byte{'a', 'b'}, 'a', 1},
		{[]byte{0x7F}, 0x7F, 1},
		{[]byte{0xC3, 0xA9, 'x'}, 'é', 2},
		{[]byte{0xE2, 0x84, 0xAA}, 0x212A, 3},
		{[]byte{0xF0, 0x9F, 0x98, 0x80}, 0x1F600, 4},
		// The width only depends on the lead byte.
		{[]byte{0xC3, 'a'}, 0xE1, 2},
		{[]byte{0x80, 0x80, 0x80, 0x80}, 0, 4},
		{[]byte{0xFF, 0xBF, 0xBF, 0xBF}, MaxEncodable, 4},
	}
	for _, test := range tests {
		r, size := DecodeRune(test.in)
		if r != test.want || size != test.size {
			t.Errorf("DecodeRune(% X) = 0x%04X, %d; want: 0x%04X, %d",
				test.in, r, size, test.want, test.size)
		}
	}
}

func TestDecodeRuneShortInput(t *testing.T) {
	defer func() {
		if e := recover(); e == nil {
			t.Fatal("DecodeRune did not panic on a truncated sequence")
		}
	}()
	DecodeRune([]byte{0xE2, 0x84})
}

func TestIsContinuation(t *testing.T) {
	for i := 0; i < 256; i++ {
		want := 0x80 <= i && i <= 0xBF
		if got := IsContinuation(byte(i)); got != want {
			t.Errorf("IsContinuation(0x%02X) = %t; want: %t", i, got, want)
		}
	}
}

func BenchmarkEncodeRune(b *testing.B) {
	var buf [EncodeBufSize]byte
	for _, r := range []rune{'a', 'é', 0x212A, 0x1F600} {
		b.Run(string(r), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				EncodeRune(buf[:], r)
			}
		})
	}
}

func BenchmarkDecodeRune(b *testing.B) {
	for _, s := range []string{"a", "é", "K", "\U0001F600"} {
		p := []byte(s)
		b.Run(s, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				DecodeRune(p)
			}
		})
	}
}
