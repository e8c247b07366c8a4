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

import "fmt"

const (
	// NoDelim marks an implicit group: one with no delimiter characters,
	// used when splicing a sequence in as a single token.
	NoDelim Delimiter = iota

	Paren   // ( ... )
	Bracket // [ ... ]
	Brace   // { ... }
)

// Delimiter identifies the bracket kind of a [Group] token. A group's open
// and close brackets always have the same kind; the matcher rejects streams
// where they cannot.
type Delimiter byte

// Open returns the opening bracket for this delimiter, or "" for [NoDelim].
func (d Delimiter) Open() string {
	switch d {
	case Paren:
		return "("
	case Bracket:
		return "["
	case Brace:
		return "{"
	default:
		return ""
	}
}

// Close returns the closing bracket for this delimiter, or "" for [NoDelim].
func (d Delimiter) Close() string {
	switch d {
	case Paren:
		return ")"
	case Bracket:
		return "]"
	case Brace:
		return "}"
	default:
		return ""
	}
}

// String implements [fmt.Stringer].
func (d Delimiter) String() string {
	switch d {
	case NoDelim:
		return "NoDelim"
	case Paren:
		return "Paren"
	case Bracket:
		return "Bracket"
	case Brace:
		return "Brace"
	default:
		return fmt.Sprintf("token.Delimiter(%d)", int(d))
	}
}

// byOpen resolves an opening bracket character to its delimiter.
func byOpen(text string) (Delimiter, bool) {
	switch text {
	case "(":
		return Paren, true
	case "[":
		return Bracket, true
	case "{":
		return Brace, true
	}
	return NoDelim, false
}

// byClose resolves a closing bracket character to its delimiter.
func byClose(text string) (Delimiter, bool) {
	switch text {
	case ")":
		return Paren, true
	case "]":
		return Bracket, true
	case "}":
		return Brace, true
	}
	return NoDelim, false
}
