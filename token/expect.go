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
	"fmt"

	"github.com/macrotok/macrotok/report"
)

// Expectation helpers: each consumes one token when it is what the caller
// wants, and otherwise leaves the cursor where it was and returns an
// [report.ErrUnexpectedToken] describing what was wanted.

// ExpectIdent consumes and returns the next token if it is an identifier.
func ExpectIdent(c *Cursor) (Token, error) {
	tok := c.Peek()
	if tok.Kind() != Ident {
		return Zero, unexpected(c, "an identifier")
	}
	return c.Next(), nil
}

// ExpectKeyword consumes and returns the next token if it is an identifier
// spelled keyword.
func ExpectKeyword(c *Cursor, keyword string) (Token, error) {
	if !c.Peek().IsIdent(keyword) {
		return Zero, unexpected(c, fmt.Sprintf("`%s`", keyword))
	}
	return c.Next(), nil
}

// ExpectPunct consumes and returns the next token if it is punctuation
// spelled punct.
func ExpectPunct(c *Cursor, punct string) (Token, error) {
	if !c.Peek().IsPunct(punct) {
		return Zero, unexpected(c, fmt.Sprintf("`%s`", punct))
	}
	return c.Next(), nil
}

// ExpectGroup consumes and returns the next token if it is a group with the
// given delimiter.
func ExpectGroup(c *Cursor, delim Delimiter) (Token, error) {
	if !c.Peek().IsGroup(delim) {
		return Zero, unexpected(c, fmt.Sprintf("`%s ... %s`", delim.Open(), delim.Close()))
	}
	return c.Next(), nil
}

// unexpected builds the error for a failed expectation at the cursor's
// current position.
func unexpected(c *Cursor, expected string) error {
	return report.ErrUnexpectedToken{
		At:       c.Span(),
		Expected: expected,
		Got:      c.Peek().Describe(),
	}
}
