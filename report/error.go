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

package report

import "fmt"

// ErrUnmatchedDelimiter reports an open delimiter with no matching close, or
// a close delimiter of the wrong kind.
//
// This is the only error the delimiter matcher produces. Every malformation
// it can observe reduces to "this open delimiter never closed".
type ErrUnmatchedDelimiter struct {
	OpenSpan Span   // The span of the unclosed open delimiter.
	Delim    string // The spelling of the open delimiter, e.g. "(".
}

// Span implements [Spanner].
func (e ErrUnmatchedDelimiter) Span() Span {
	return e.OpenSpan
}

// Error implements [error].
func (e ErrUnmatchedDelimiter) Error() string {
	return fmt.Sprintf("%s: unmatched `%s`", e.OpenSpan, e.Delim)
}

// ErrUnexpectedToken reports a token (or end of input) that cannot begin or
// continue the construct being parsed.
type ErrUnexpectedToken struct {
	At       Span   // The span of the offending token; zero at end of input.
	Expected string // What the parser wanted, e.g. "a generic parameter".
	Got      string // The spelling of what it found; empty at end of input.
}

// Span implements [Spanner].
func (e ErrUnexpectedToken) Span() Span {
	return e.At
}

// Error implements [error].
func (e ErrUnexpectedToken) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("%s: expected %s, got end of input", e.At, e.Expected)
	}
	return fmt.Sprintf("%s: expected %s, got `%s`", e.At, e.Expected, e.Got)
}

// ErrUnrecognizedItemKeyword reports an item definition whose leading tokens
// never resolve to a known item keyword.
type ErrUnrecognizedItemKeyword struct {
	At Span // The span where an item keyword was expected.
}

// Span implements [Spanner].
func (e ErrUnrecognizedItemKeyword) Span() Span {
	return e.At
}

// Error implements [error].
func (e ErrUnrecognizedItemKeyword) Error() string {
	return fmt.Sprintf("%s: expected an item keyword (`struct`, `enum`, `fn`, `trait`, `impl`, `union`, or `type`)", e.At)
}
