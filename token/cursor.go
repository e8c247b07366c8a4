// Copyright 2024-2026 The Macrotok Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

import "github.com/macrotok/macrotok/report"

// Cursor is an iterator-like construct for walking a [Sequence].
// Unlike a plain range loop, it supports peeking and bounded lookahead.
//
// A cursor borrows its sequence and must not outlive it. It never panics at
// the end of input; every accessor returns [Zero] once the tokens run out.
type Cursor struct {
	seq Sequence
	idx int
}

// CursorMark is the return value of [Cursor.Mark], which marks a position on
// a Cursor for rewinding to.
type CursorMark struct {
	owner *Cursor
	idx   int
}

// NewCursor returns a new cursor positioned at the start of seq.
func NewCursor(seq Sequence) *Cursor {
	return &Cursor{seq: seq}
}

// Done returns whether or not there are still tokens left to yield.
func (c *Cursor) Done() bool {
	return c.Peek().IsZero()
}

// Peek returns the current token without consuming it.
//
// Returns [Zero] if this cursor is at the end of the stream.
func (c *Cursor) Peek() Token {
	return c.PeekN(0)
}

// PeekN returns the token n positions past the current one without
// consuming anything; PeekN(0) is [Cursor.Peek]. The grammar only ever
// needs a small constant n.
//
// Returns [Zero] if the requested position is past the end of the stream.
func (c *Cursor) PeekN(n int) Token {
	if c == nil || n < 0 || c.idx+n >= len(c.seq) {
		return Zero
	}
	return c.seq[c.idx+n]
}

// Next returns the current token and advances the cursor past it.
//
// Returns [Zero] if this cursor is at the end of the stream.
func (c *Cursor) Next() Token {
	tok := c.Peek()
	if !tok.IsZero() {
		c.idx++
	}
	return tok
}

// Rest returns a view of the unconsumed tail of the sequence. The view
// aliases the cursor's sequence; callers that retain it past the parse call
// must clone it.
func (c *Cursor) Rest() Sequence {
	if c == nil || c.idx >= len(c.seq) {
		return nil
	}
	return c.seq[c.idx:]
}

// Mark makes a mark on this cursor to indicate a place that can be rewound
// to.
func (c *Cursor) Mark() CursorMark {
	return CursorMark{owner: c, idx: c.idx}
}

// Rewind moves this cursor back to the position described by mark.
//
// Panics if mark was not created using this cursor's Mark method.
func (c *Cursor) Rewind(mark CursorMark) {
	if c != mark.owner {
		panic("macrotok/token: rewound cursor using the wrong cursor's mark")
	}
	c.idx = mark.idx
}

// Span returns the span of the current token, or, at the end of the stream,
// a zero-length span just past the final token. Returns the zero span when
// the sequence carries no span information at all.
func (c *Cursor) Span() report.Span {
	if tok := c.Peek(); !tok.IsZero() {
		return tok.Span()
	}
	if last := c.PeekBehind(); !last.IsZero() && !last.Span().IsZero() {
		span := last.Span()
		return span.File.Span(span.End, span.End)
	}
	return report.Span{}
}

// PeekBehind returns the token just before the cursor's position, without
// moving it.
//
// Returns [Zero] if this cursor is at the beginning of the stream.
func (c *Cursor) PeekBehind() Token {
	if c == nil || c.idx == 0 || c.idx > len(c.seq) {
		return Zero
	}
	return c.seq[c.idx-1]
}
