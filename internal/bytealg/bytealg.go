// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package bytealg contains the byte scanning helpers used by the ASCII fast
// paths.
package bytealg

import (
	"encoding/binary"
	"unicode/utf8"
)

// hiBits has the high bit of every byte in a word set.
const hiBits = 0x8080808080808080

// IndexNonASCII returns the index of the first byte in b that is not ASCII,
// or -1 if b is entirely ASCII.
func IndexNonASCII(b []byte) int {
	i := 0
	// Check 8 bytes at a time. Byte order does not matter since we only
	// need to know if any high bit is set.
	for ; i+8 <= len(b); i += 8 {
		if binary.LittleEndian.Uint64(b[i:])&hiBits != 0 {
			break
		}
	}
	for ; i < len(b); i++ {
		if b[i] >= utf8.RuneSelf {
			return i
		}
	}
	return -1
}

// IndexNonASCIIUnits is IndexNonASCII for 16-bit code units.
func IndexNonASCIIUnits(s []uint16) int {
	for i, c := range s {
		if c >= utf8.RuneSelf {
			return i
		}
	}
	return -1
}
