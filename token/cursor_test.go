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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macrotok/macrotok/token"
)

func TestCursor(t *testing.T) {
	t.Parallel()

	seq := lex(t, "a b c")
	cursor := token.NewCursor(seq)

	assert.False(t, cursor.Done())
	assert.True(t, cursor.Peek().IsIdent("a"))
	assert.True(t, cursor.Peek().IsIdent("a"), "peek must not consume")
	assert.True(t, cursor.PeekN(2).IsIdent("c"))
	assert.True(t, cursor.PeekN(3).IsZero())
	assert.True(t, cursor.PeekN(-1).IsZero())

	assert.True(t, cursor.Next().IsIdent("a"))
	assert.True(t, cursor.PeekBehind().IsIdent("a"))
	assert.Equal(t, "b c", cursor.Rest().String())

	assert.True(t, cursor.Next().IsIdent("b"))
	assert.True(t, cursor.Next().IsIdent("c"))
	assert.True(t, cursor.Done())

	// Exhausted cursors keep yielding Zero, never panicking.
	assert.True(t, cursor.Next().IsZero())
	assert.True(t, cursor.Next().IsZero())
	assert.True(t, cursor.Peek().IsZero())
	assert.Empty(t, cursor.Rest())
}

func TestCursorMark(t *testing.T) {
	t.Parallel()

	cursor := token.NewCursor(lex(t, "a b c"))
	cursor.Next()
	mark := cursor.Mark()
	cursor.Next()
	cursor.Next()
	require.True(t, cursor.Done())

	cursor.Rewind(mark)
	assert.True(t, cursor.Peek().IsIdent("b"))

	other := token.NewCursor(lex(t, "x"))
	assert.Panics(t, func() { other.Rewind(mark) })
}

func TestCursorSpan(t *testing.T) {
	t.Parallel()

	cursor := token.NewCursor(lex(t, "ab cd"))
	assert.Equal(t, "ab", cursor.Span().Text())

	cursor.Next()
	cursor.Next()

	// At the end, the span is the zero-length point just past the last
	// token.
	span := cursor.Span()
	assert.Equal(t, 5, span.Start)
	assert.Equal(t, 5, span.End)
}

func TestCursorEmpty(t *testing.T) {
	t.Parallel()

	cursor := token.NewCursor(nil)
	assert.True(t, cursor.Done())
	assert.True(t, cursor.Peek().IsZero())
	assert.True(t, cursor.PeekBehind().IsZero())
	assert.True(t, cursor.Span().IsZero())
}

func TestExpect(t *testing.T) {
	t.Parallel()

	cursor := token.NewCursor(parse(t, "where T ( x ) :"))

	kw, err := token.ExpectKeyword(cursor, "where")
	require.NoError(t, err)
	assert.True(t, kw.IsIdent("where"))

	_, err = token.ExpectPunct(cursor, ",")
	require.Error(t, err, "T is not a comma")
	assert.True(t, cursor.Peek().IsIdent("T"), "failed expectation must not consume")

	ident, err := token.ExpectIdent(cursor)
	require.NoError(t, err)
	assert.Equal(t, "T", ident.Text())

	group, err := token.ExpectGroup(cursor, token.Paren)
	require.NoError(t, err)
	assert.Equal(t, 1, group.Count())

	_, err = token.ExpectGroup(cursor, token.Brace)
	require.Error(t, err)

	colon, err := token.ExpectPunct(cursor, ":")
	require.NoError(t, err)
	assert.True(t, colon.IsPunct(":"))

	_, err = token.ExpectIdent(cursor)
	require.Error(t, err, "end of input")
}
