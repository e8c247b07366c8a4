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
	"slices"
	"strings"

	"github.com/macrotok/macrotok/report"
)

// Sequence is an ordered, zero-indexed list of tokens. A nil sequence is
// empty.
//
// Functions in this library that return sequences always return freshly
// allocated ones; no aliasing with their inputs persists after they return.
type Sequence []Token

// Clone returns an independently owned copy of this sequence. Group tokens
// already own their children, so a shallow copy suffices.
func (s Sequence) Clone() Sequence {
	return slices.Clone(s)
}

// Equal reports whether the two sequences are structurally equal: same
// tokens, same order. See [Token.Equal].
func (s Sequence) Equal(o Sequence) bool {
	return slices.EqualFunc(s, o, Token.Equal)
}

// Span implements [report.Spanner], returning the join of the spans of
// every token in the sequence.
func (s Sequence) Span() report.Span {
	spanners := make([]report.Spanner, len(s))
	for i, t := range s {
		spanners[i] = t
	}
	return report.Join(spanners...)
}

// String implements [fmt.Stringer], rendering the sequence in the textual
// form accepted by [Lex]: space-separated token spellings with grouped
// regions written using matching bracket characters.
func (s Sequence) String() string {
	var sb strings.Builder
	for i, t := range s {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}

// Wrap wraps a sequence in a single [Group] token with the given delimiter.
func Wrap(delim Delimiter, s Sequence) Token {
	return NewGroup(delim, s)
}
