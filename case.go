// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utfcase

import (
	"io"
	"log"
	"os"

	"github.com/charlievieth/utfcase/internal/bytealg"
	"github.com/charlievieth/utfcase/internal/tables"
)

// WARN: DEV ONLY
const debug = false

var logger *log.Logger

func init() {
	if debug {
		logger = log.New(os.Stderr, "utfcase: ", log.Lshortfile)
	} else {
		logger = log.New(io.Discard, "", 0)
	}
}

// UpperRune returns the simple upper case mapping of r. Code points above
// 0xFFFF and code points without a mapping are returned unchanged.
func UpperRune(r rune) rune { return tables.ToUpper(r) }

// LowerRune returns the simple lower case mapping of r. Code points above
// 0xFFFF and code points without a mapping are returned unchanged.
func LowerRune(r rune) rune { return tables.ToLower(r) }

// IsCaselessRune reports whether r has neither an upper nor a lower case
// mapping.
func IsCaselessRune(r rune) bool { return tables.IsCaseless(r) }

// ToUpper returns a copy of the UTF-8 encoded p with every character mapped
// to its upper case.
func ToUpper(p []byte) []byte {
	return convertCase(p, &_upper, tables.ToUpper)
}

// ToLower returns a copy of the UTF-8 encoded p with every character mapped
// to its lower case.
func ToLower(p []byte) []byte {
	return convertCase(p, &_lower, tables.ToLower)
}

func convertCase(p []byte, ascii *[256]byte, fn func(rune) rune) []byte {
	// Case mappings never widen a character, the extra space holds the
	// last encoded character and its terminator.
	out := make([]byte, len(p)+EncodeBufSize)

	n := bytealg.IndexNonASCII(p)
	if n < 0 {
		n = len(p)
	}
	w := convertASCII(out, p[:n], ascii)

	for i := n; i < len(p); {
		if w > len(out)-EncodeBufSize {
			logger.Printf("convertCase: output overflow at %d/%d: %q", i, len(p), p)
			break
		}
		r, size := DecodeRune(p[i:])
		i += size
		w += EncodeRune(out[w:], fn(r))
	}
	return out[:w:w]
}

// Capitalize returns a copy of the UTF-8 encoded p with the first character
// of each word mapped to upper case and every other character mapped to
// lower case. A word starts at the beginning of p and after any white space
// character.
func Capitalize(p []byte) []byte {
	return capitalizeCase(p, tables.ToUpper, tables.ToLower)
}

func capitalizeCase(p []byte, upper, lower func(rune) rune) []byte {
	out := make([]byte, len(p)+EncodeBufSize)

	n := bytealg.IndexNonASCII(p)
	if n < 0 {
		n = len(p)
	}
	wordStart := capitalizeASCII(out, p[:n], true)
	w := n

	for i := n; i < len(p); {
		if w > len(out)-EncodeBufSize {
			logger.Printf("Capitalize: output overflow at %d/%d: %q", i, len(p), p)
			break
		}
		r, size := DecodeRune(p[i:])
		i += size
		if wordStart {
			r = upper(r)
		} else {
			r = lower(r)
		}
		w += EncodeRune(out[w:], r)
		wordStart = tables.IsSpace(r)
	}
	return out[:w:w]
}

// IsCaseless reports whether no character of the UTF-8 encoded p has a
// case mapping.
func IsCaseless(p []byte) bool {
	n := bytealg.IndexNonASCII(p)
	if n < 0 {
		return isCaselessASCII(p)
	}
	if !isCaselessASCII(p[:n]) {
		return false
	}
	for i := n; i < len(p); {
		r, size := DecodeRune(p[i:])
		if !tables.IsCaseless(r) {
			return false
		}
		i += size
	}
	return true
}
