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

// Match returns the index of the close bracket matching the open bracket at
// seq[at], which must be an open-delimiter [Punct] token (Match panics
// otherwise; positioning the cursor is the caller's contract).
//
// Nesting is tracked with a stack, so a "(" nested inside "[ ... ]" must
// close before the outer "]" does. [Group] tokens are already balanced
// by construction and are skipped as single units.
//
// The only error is [report.ErrUnmatchedDelimiter], reported at the
// innermost open bracket that never closed.
func Match(seq Sequence, at int) (int, error) {
	opener := seq[at]
	delim, ok := NoDelim, false
	if opener.Kind() == Punct {
		delim, ok = byOpen(opener.Text())
	}
	if !ok {
		panic(fmt.Sprintf("macrotok/token: Match called on non-open-delimiter token %q", opener.Describe()))
	}

	type frame struct {
		tok   Token
		delim Delimiter
	}
	stack := []frame{{opener, delim}}

	for i := at + 1; i < len(seq); i++ {
		tok := seq[i]
		if tok.Kind() != Punct {
			continue
		}
		if d, ok := byOpen(tok.Text()); ok {
			stack = append(stack, frame{tok, d})
			continue
		}
		if d, ok := byClose(tok.Text()); ok {
			top := stack[len(stack)-1]
			if top.delim != d {
				// A close of the wrong kind means the innermost open can
				// never close.
				return 0, report.ErrUnmatchedDelimiter{
					OpenSpan: top.tok.Span(),
					Delim:    top.tok.Text(),
				}
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i, nil
			}
		}
	}

	top := stack[len(stack)-1]
	return 0, report.ErrUnmatchedDelimiter{
		OpenSpan: top.tok.Span(),
		Delim:    top.tok.Text(),
	}
}

// Structure folds every matched bracket pair in a flat sequence into a
// [Group] token, recursively. This is the pre-structuring a host macro
// system's tokenizer performs before handing tokens to a macro; after it,
// the higher layers never see a bare bracket character.
//
// Fails with [report.ErrUnmatchedDelimiter] exactly when [Match] does, or
// when a close bracket appears with no open to match it.
func Structure(flat Sequence) (Sequence, error) {
	out := Sequence{}
	for i := 0; i < len(flat); {
		tok := flat[i]
		if tok.Kind() == Punct {
			if delim, ok := byOpen(tok.Text()); ok {
				end, err := Match(flat, i)
				if err != nil {
					return nil, err
				}
				inner, err := Structure(flat[i+1 : end])
				if err != nil {
					return nil, err
				}
				group := NewGroup(delim, inner)
				out = append(out, group.WithSpan(report.Join(tok, flat[end])))
				i = end + 1
				continue
			}
			if _, ok := byClose(tok.Text()); ok {
				return nil, report.ErrUnmatchedDelimiter{
					OpenSpan: tok.Span(),
					Delim:    tok.Text(),
				}
			}
		}
		out = append(out, tok)
		i++
	}
	return out, nil
}
