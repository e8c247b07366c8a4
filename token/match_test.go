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

	"github.com/macrotok/macrotok/report"
	"github.com/macrotok/macrotok/token"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, input string
		at, want    int
	}{
		{name: "flat", input: "( a b )", at: 0, want: 3},
		{name: "nested same kind", input: "( a ( b ) c )", at: 0, want: 6},
		{name: "nested mixed kinds", input: "[ ( { } ) x ]", at: 0, want: 6},
		{name: "inner open", input: "a [ ( b ) ]", at: 2, want: 4},
		{name: "adjacent pairs", input: "( a ) ( b )", at: 0, want: 2},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := token.Match(lex(t, tt.input), tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchUnmatched(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, input string
		at          int
		delim       string // The open delimiter the error should blame.
	}{
		{name: "unclosed", input: "( a b", at: 0, delim: "("},
		{name: "unclosed inner", input: "( a [ b )", at: 0, delim: "["},
		{name: "wrong close kind", input: "[ ( a ] )", at: 0, delim: "("},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := token.Match(lex(t, tt.input), tt.at)
			var unmatched report.ErrUnmatchedDelimiter
			require.ErrorAs(t, err, &unmatched)
			assert.Equal(t, tt.delim, unmatched.Delim)
		})
	}
}

func TestMatchPanicsOffPosition(t *testing.T) {
	t.Parallel()

	seq := lex(t, "a ( b )")
	assert.Panics(t, func() { _, _ = token.Match(seq, 0) })
}

func TestStructure(t *testing.T) {
	t.Parallel()

	t.Run("folds recursively", func(t *testing.T) {
		t.Parallel()
		got, err := token.Structure(lex(t, "f ( a [ b ] ) { c }"))
		require.NoError(t, err)

		want := token.Sequence{
			token.NewIdent("f"),
			token.NewGroup(token.Paren, token.Sequence{
				token.NewIdent("a"),
				token.NewGroup(token.Bracket, token.Sequence{token.NewIdent("b")}),
			}),
			token.NewGroup(token.Brace, token.Sequence{token.NewIdent("c")}),
		}
		assert.True(t, want.Equal(got), "want %v, got %v", want, got)
	})

	t.Run("group spans cover their brackets", func(t *testing.T) {
		t.Parallel()
		got, err := token.Structure(lex(t, "( a b )"))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "( a b )", got[0].Span().Text())
	})

	t.Run("angle brackets are not groups", func(t *testing.T) {
		t.Parallel()
		got, err := token.Structure(lex(t, "< T >"))
		require.NoError(t, err)
		assert.Len(t, got, 3)
		assert.True(t, got[0].IsPunct("<"))
	})

	t.Run("stray close", func(t *testing.T) {
		t.Parallel()
		_, err := token.Structure(lex(t, "a ) b"))
		var unmatched report.ErrUnmatchedDelimiter
		require.ErrorAs(t, err, &unmatched)
		assert.Equal(t, ")", unmatched.Delim)
	})

	t.Run("unclosed open", func(t *testing.T) {
		t.Parallel()
		_, err := token.Structure(lex(t, "( a"))
		var unmatched report.ErrUnmatchedDelimiter
		require.ErrorAs(t, err, &unmatched)
		assert.Equal(t, "(", unmatched.Delim)
		assert.Equal(t, 0, unmatched.OpenSpan.Start)
	})
}
