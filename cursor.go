// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utfcase

// Advance moves index i forward over count characters of p without moving
// past limit and returns the new index. A character is one byte followed by
// any continuation bytes. If fewer than count characters remain before limit
// Advance stops at limit, even if that is inside a sequence.
//
// limit must not exceed len(p).
func Advance(p []byte, i, limit, count int) int {
	for n := 0; n < count && i < limit; n++ {
		i++
		for i < limit && IsContinuation(p[i]) {
			i++
		}
	}
	return i
}

// Retreat moves index i backward over count characters of p without moving
// before limit and returns the new index. If fewer than count characters
// precede i Retreat stops at limit.
func Retreat(p []byte, i, limit, count int) int {
	for n := 0; n < count && i > limit; n++ {
		i--
		for i > limit && IsContinuation(p[i]) {
			i--
		}
	}
	return i
}

// A Cursor is a position within an immutable UTF-8 buffer.
// The zero value is a cursor over an empty buffer.
type Cursor struct {
	p   []byte
	pos int
}

// NewCursor returns a Cursor positioned at the start of p.
func NewCursor(p []byte) *Cursor {
	return &Cursor{p: p}
}

// Pos returns the byte offset of the cursor.
func (c *Cursor) Pos() int { return c.pos }

// SetPos moves the cursor to byte offset pos, which is clamped to the
// bounds of the buffer.
func (c *Cursor) SetPos(pos int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(c.p) {
		pos = len(c.p)
	}
	c.pos = pos
}

// Len returns the length of the underlying buffer in bytes.
func (c *Cursor) Len() int { return len(c.p) }

// Done reports whether the cursor is at the end of the buffer.
func (c *Cursor) Done() bool { return c.pos >= len(c.p) }

// Bytes returns the remainder of the buffer starting at the cursor.
func (c *Cursor) Bytes() []byte { return c.p[c.pos:] }

// Advance moves the cursor forward count characters, stopping at limit.
// A limit beyond the buffer is treated as the end of the buffer.
func (c *Cursor) Advance(limit, count int) {
	if limit > len(c.p) {
		limit = len(c.p)
	}
	c.pos = Advance(c.p, c.pos, limit, count)
}

// Retreat moves the cursor back count characters, stopping at limit.
// A negative limit is treated as the start of the buffer.
func (c *Cursor) Retreat(limit, count int) {
	if limit < 0 {
		limit = 0
	}
	c.pos = Retreat(c.p, c.pos, limit, count)
}

// DecodeAndAdvance decodes the code point at the cursor and moves the cursor
// past it. Like DecodeRune it does not validate the input and panics if the
// buffer ends inside the sequence.
func (c *Cursor) DecodeAndAdvance() rune {
	r, n := DecodeRune(c.p[c.pos:])
	c.pos += n
	return r
}

// RuneCount returns the number of characters in p. Every byte that is not a
// continuation byte starts a character.
func RuneCount(p []byte) int {
	n := 0
	for _, b := range p {
		if !IsContinuation(b) {
			n++
		}
	}
	return n
}

// Slice returns the characters of p in the half-open range [start, end).
// Indexes are in characters and are clamped to the length of p; an empty
// range returns an empty slice.
func Slice(p []byte, start, end int) []byte {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return p[:0]
	}
	i := Advance(p, 0, len(p), start)
	j := Advance(p, i, len(p), end-start)
	return p[i:j]
}
