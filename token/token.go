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

import (
	"strings"

	"github.com/macrotok/macrotok/report"
)

// Zero is the zero [Token], returned by cursors at the end of their input.
var Zero Token

// Token is a single atomic lexical unit. Tokens are immutable values; build
// new ones with the New* constructors rather than mutating.
//
// A token is a leaf unless its kind is [Group], in which case it carries a
// delimiter and an owned child [Sequence] instead of text.
type Token struct {
	kind  Kind
	text  string
	delim Delimiter
	inner Sequence
	span  report.Span
}

// NewIdent returns a new identifier token.
func NewIdent(text string) Token {
	return Token{kind: Ident, text: text}
}

// NewNumber returns a new numeric literal token.
func NewNumber(text string) Token {
	return Token{kind: Number, text: text}
}

// NewString returns a new string literal token. The text is the full
// spelling, quotes included.
func NewString(text string) Token {
	return Token{kind: String, text: text}
}

// NewLifetime returns a new lifetime token. The text includes the sigil,
// e.g. "'a".
func NewLifetime(text string) Token {
	return Token{kind: Lifetime, text: text}
}

// NewPunct returns a new punctuation token. Multi-character operators such
// as "->" are a single token.
func NewPunct(text string) Token {
	return Token{kind: Punct, text: text}
}

// NewGroup returns a new group token wrapping the given tokens. The tokens
// are copied, so the group does not alias its argument.
func NewGroup(delim Delimiter, tokens Sequence) Token {
	return Token{kind: Group, delim: delim, inner: tokens.Clone()}
}

// Kind returns this token's kind, or [Unrecognized] for the zero token.
func (t Token) Kind() Kind {
	return t.kind
}

// IsZero returns whether this is the zero token.
func (t Token) IsZero() bool {
	return t.kind == Unrecognized
}

// Text returns this token's spelling. Group tokens have no spelling of
// their own; use [Token.String] for a rendering that includes brackets.
func (t Token) Text() string {
	return t.text
}

// Delim returns the delimiter of a [Group] token, and [NoDelim] for any
// other kind.
func (t Token) Delim() Delimiter {
	return t.delim
}

// Tokens returns the child sequence of a [Group] token, and nil for any
// other kind. The caller must not mutate it.
func (t Token) Tokens() Sequence {
	return t.inner
}

// Span implements [report.Spanner]. Synthesized tokens have a zero span.
func (t Token) Span() report.Span {
	return t.span
}

// WithSpan returns a copy of this token located at the given span.
func (t Token) WithSpan(span report.Span) Token {
	t.span = span
	return t
}

// IsIdent returns whether this is an identifier token spelled text.
func (t Token) IsIdent(text string) bool {
	return t.kind == Ident && t.text == text
}

// IsPunct returns whether this is a punctuation token spelled text.
func (t Token) IsPunct(text string) bool {
	return t.kind == Punct && t.text == text
}

// IsGroup returns whether this is a group token with the given delimiter.
func (t Token) IsGroup(delim Delimiter) bool {
	return t.kind == Group && t.delim == delim
}

// Count returns the number of top-level tokens inside a [Group] token.
// A leaf counts as one token; the zero token counts as none.
func (t Token) Count() int {
	switch t.kind {
	case Unrecognized:
		return 0
	case Group:
		return len(t.inner)
	default:
		return 1
	}
}

// Describe returns a short spelling of this token for use in expectation
// messages: the token text for leaves, the bracket pair for groups, and
// "" for the zero token.
func (t Token) Describe() string {
	switch t.kind {
	case Unrecognized:
		return ""
	case Group:
		return t.delim.Open() + "..." + t.delim.Close()
	default:
		return t.text
	}
}

// String implements [fmt.Stringer], rendering this token in the textual
// form accepted by [Lex]: groups print their delimiter characters around
// their space-separated children.
func (t Token) String() string {
	if t.kind != Group {
		return t.text
	}
	if len(t.inner) == 0 {
		return t.delim.Open() + t.delim.Close()
	}
	var sb strings.Builder
	sb.WriteString(t.delim.Open())
	sb.WriteByte(' ')
	sb.WriteString(t.inner.String())
	sb.WriteByte(' ')
	sb.WriteString(t.delim.Close())
	return sb.String()
}

// Equal reports structural equality: same kind and spelling for leaves,
// same delimiter and recursively equal children for groups. Spans are
// ignored, so a synthesized token compares equal to a lexed one.
func (t Token) Equal(o Token) bool {
	if t.kind != o.kind {
		return false
	}
	if t.kind == Group {
		return t.delim == o.delim && t.inner.Equal(o.inner)
	}
	return t.text == o.text
}
