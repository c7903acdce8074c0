// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package utfcase implements the text primitives of a string type: a UTF-8
// codec, character navigation over UTF-8 byte slices, and case conversion and
// comparison built on a simple case mapping table.
//
// Case mappings are one to one and only cover the Basic Multilingual Plane,
// code points above 0xFFFF are their own upper and lower case. The mapping
// tables are not a bijection: ToLower(0x1FBE) is 0x03B9 while
// ToUpper(0x03B9) is 0x0345.
//
// The package does not validate its input. Operations assume well-formed
// UTF-8 and may panic when a slice ends inside a multi-byte sequence.
//
// See package [github.com/charlievieth/utfcase/ucs2case] for the fixed width
// 16-bit variants.
package utfcase

//go:generate go run gen.go

// BUG(cvieth): There is no mechanism for full case folding, that is, for
// characters that involve multiple runes in the input or output
// (see: https://pkg.go.dev/unicode#pkg-note-BUG).
