// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package ucs2case

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

// ErrSupplementary is returned when text contains a code point that does not
// fit in a single UCS-2 unit.
var ErrSupplementary = errors.New("ucs2case: code point outside the Basic Multilingual Plane")

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// FromBytes returns the units stored in p using byte order order. A trailing
// odd byte is ignored.
func FromBytes(p []byte, order binary.ByteOrder) []uint16 {
	s := make([]uint16, len(p)/2)
	for i := range s {
		s[i] = order.Uint16(p[i*2:])
	}
	return s
}

// Bytes returns s encoded as bytes in byte order order.
func Bytes(s []uint16, order binary.ByteOrder) []byte {
	p := make([]byte, len(s)*2)
	for i, c := range s {
		order.PutUint16(p[i*2:], c)
	}
	return p
}

// FromUTF8 converts the UTF-8 encoded p to UCS-2. Invalid UTF-8 is replaced
// with U+FFFD. An error wrapping ErrSupplementary is returned if p contains a
// code point above 0xFFFF.
func FromUTF8(p []byte) ([]uint16, error) {
	b, err := utf16le.NewEncoder().Bytes(p)
	if err != nil {
		return nil, fmt.Errorf("ucs2case: encoding UTF-16: %w", err)
	}
	s := FromBytes(b, binary.LittleEndian)
	for i, c := range s {
		if utf16.IsSurrogate(rune(c)) {
			r := rune(c)
			if i+1 < len(s) {
				r = utf16.DecodeRune(r, rune(s[i+1]))
			}
			return nil, fmt.Errorf("%w: %U at unit %d", ErrSupplementary, r, i)
		}
	}
	return s, nil
}

// ToUTF8 converts s to UTF-8. Units in the surrogate range are not valid
// UCS-2 and are replaced with U+FFFD.
func ToUTF8(s []uint16) ([]byte, error) {
	p, err := utf16le.NewDecoder().Bytes(Bytes(s, binary.LittleEndian))
	if err != nil {
		return nil, fmt.Errorf("ucs2case: decoding UTF-16: %w", err)
	}
	return p, nil
}
