// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utfcase

const (
	tx = 0b10000000
	t2 = 0b11000000
	t3 = 0b11100000
	t4 = 0b11110000

	maskx = 0b00111111
	mask2 = 0b00011111
	mask3 = 0b00001111
	mask4 = 0b00000111

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1
	rune4Max = 1<<21 - 1
)

const (
	// MaxEncodable is the largest code point EncodeRune accepts. It is
	// larger than unicode.MaxRune since the 4 byte form has room for 21 bits.
	MaxEncodable = rune4Max

	// UTFMax is the maximum number of bytes of an encoded code point.
	UTFMax = 4

	// EncodeBufSize is the buffer size that holds any encoded code point
	// followed by the zero terminator written by EncodeRune.
	EncodeBufSize = UTFMax + 1
)

// IsContinuation reports whether b continues, rather than starts, a UTF-8
// sequence (its top two bits are 10).
func IsContinuation(b byte) bool { return b&0xC0 == tx }

// RuneLen returns the number of bytes EncodeRune uses to encode r, or 0 if r
// is out of range.
func RuneLen(r rune) int {
	switch i := uint32(r); {
	case i <= rune1Max:
		return 1
	case i <= rune2Max:
		return 2
	case i <= rune3Max:
		return 3
	case i <= rune4Max:
		return 4
	}
	return 0
}

// EncodeRune writes the UTF-8 encoding of r into p followed by a zero byte
// and returns the number of bytes written, not counting the zero byte.
// p must be large enough to hold the encoding and the terminator,
// EncodeBufSize bytes is always sufficient.
//
// Code points are not validated: surrogates are encoded like any other
// value and values above MaxEncodable write only the terminator and
// return 0.
func EncodeRune(p []byte, r rune) int {
	n := encodeRune(p, r)
	p[n] = 0
	return n
}

// AppendRune appends the UTF-8 encoding of r to the end of p and returns the
// extended buffer. Unlike EncodeRune no terminator is written.
func AppendRune(p []byte, r rune) []byte {
	var buf [UTFMax]byte
	n := encodeRune(buf[:], r)
	return append(p, buf[:n]...)
}

func encodeRune(p []byte, r rune) int {
	// Negative values are erroneous. Making it unsigned addresses the problem.
	switch i := uint32(r); {
	case i <= rune1Max:
		p[0] = byte(r)
		return 1
	case i <= rune2Max:
		_ = p[1] // eliminate bounds checks
		p[0] = t2 | byte(r>>6)
		p[1] = tx | byte(r)&maskx
		return 2
	case i <= rune3Max:
		_ = p[2] // eliminate bounds checks
		p[0] = t3 | byte(r>>12)
		p[1] = tx | byte(r>>6)&maskx
		p[2] = tx | byte(r)&maskx
		return 3
	case i <= rune4Max:
		_ = p[3] // eliminate bounds checks
		p[0] = t4 | byte(r>>18)
		p[1] = tx | byte(r>>12)&maskx
		p[2] = tx | byte(r>>6)&maskx
		p[3] = tx | byte(r)&maskx
		return 4
	default:
		return 0
	}
}

// DecodeRune decodes the first UTF-8 sequence in p and returns the code
// point and its width in bytes. The width is taken from the lead byte alone:
//
//	0xxxxxxx  1 byte
//	110xxxxx  2 bytes
//	1110xxxx  3 bytes
//	otherwise 4 bytes
//
// The input is not validated and DecodeRune panics if p is shorter than the
// width indicated by its lead byte.
func DecodeRune(p []byte) (rune, int) {
	p0 := p[0]
	switch {
	case p0 < tx:
		return rune(p0), 1
	case p0&t3 == t2:
		_ = p[1]
		return rune(p0&mask2)<<6 | rune(p[1]&maskx), 2
	case p0&t4 == t3:
		_ = p[2]
		return rune(p0&mask3)<<12 | rune(p[1]&maskx)<<6 | rune(p[2]&maskx), 3
	default:
		_ = p[3]
		return rune(p0&mask4)<<18 | rune(p[1]&maskx)<<12 |
			rune(p[2]&maskx)<<6 | rune(p[3]&maskx), 4
	}
}

// Decode returns the first code point in p. See DecodeRune.
func Decode(p []byte) rune {
	r, _ := DecodeRune(p)
	return r
}
