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

package generics

import (
	"github.com/macrotok/macrotok/report"
	"github.com/macrotok/macrotok/token"
)

// List is the result of splitting a token stream that may begin with a
// generic parameter list and may contain a trailing where clause. Every
// field is independently owned and re-emittable; none alias the input.
type List struct {
	// Lifetimes holds one token run per leading lifetime parameter, bounds
	// attached. Only parameters before the first non-lifetime parameter
	// land here; the splitter preserves declaration order, it never invents
	// one.
	Lifetimes []token.Sequence

	// Params holds one token run per type or const parameter (and any
	// lifetime parameter declared after the first of those).
	Params []token.Sequence

	// Middle is everything between the closing ">" and the where keyword or
	// body opener: an impl's self type, a fn's signature, a tuple struct's
	// field list.
	Middle token.Sequence

	// Where holds one token run per where predicate.
	Where []token.Sequence

	// Rest is the body opener (";", an alone "=", or a braced group) and
	// everything after it.
	Rest token.Sequence
}

// Split splits seq as described on [List].
//
// A stream that does not begin with "<" has no parameters; a "<>" list has
// zero; a trailing comma before the ">" does not produce an empty trailing
// parameter; a bare where with no predicates is accepted. Malformed input
// fails with [report.ErrUnmatchedDelimiter] (an unclosed "<" included) or
// [report.ErrUnexpectedToken]; there is no partial output on error.
func Split(seq token.Sequence) (*List, error) {
	list := &List{}
	cursor := token.NewCursor(seq)

	if cursor.Peek().IsPunct("<") {
		opener := cursor.Next()
		if err := list.splitParams(cursor, opener); err != nil {
			return nil, err
		}
	}
	if err := list.splitTail(cursor); err != nil {
		return nil, err
	}
	return list, nil
}

// splitParams consumes the parameter list after its opening "<", splitting
// on depth-zero commas and classifying each parameter by its first token.
func (l *List) splitParams(cursor *token.Cursor, opener token.Token) error {
	var opens []token.Token // Unclosed "<" tokens nested inside the list.
	var param token.Sequence
	sawNonLifetime := false

	flush := func() error {
		if len(param) == 0 {
			// A trailing comma, or an empty <> list.
			return nil
		}
		first := param[0]
		switch first.Kind() {
		case token.Lifetime:
			if sawNonLifetime {
				// The host language orders lifetimes first; a late one is
				// left where the input put it rather than reordered.
				l.Params = append(l.Params, param.Clone())
			} else {
				l.Lifetimes = append(l.Lifetimes, param.Clone())
			}
		case token.Ident:
			sawNonLifetime = true
			l.Params = append(l.Params, param.Clone())
		default:
			return report.ErrUnexpectedToken{
				At:       first.Span(),
				Expected: "a lifetime, type, or const parameter",
				Got:      first.Describe(),
			}
		}
		return nil
	}

	for {
		tok := cursor.Next()
		if tok.IsZero() {
			at := opener
			if len(opens) > 0 {
				at = opens[len(opens)-1]
			}
			return report.ErrUnmatchedDelimiter{OpenSpan: at.Span(), Delim: at.Text()}
		}

		if tok.Kind() == token.Punct {
			switch tok.Text() {
			case "<":
				opens = append(opens, tok)
			case ">":
				if len(opens) == 0 {
					return flush()
				}
				opens = opens[:len(opens)-1]
			case ",":
				if len(opens) == 0 {
					if err := flush(); err != nil {
						return err
					}
					param = nil
					continue
				}
			}
		}
		param = append(param, tok)
	}
}

// splitTail consumes everything after the parameter list: middle tokens,
// then where predicates once a depth-zero where keyword appears, stopping at
// the body opener.
func (l *List) splitTail(cursor *token.Cursor) error {
	var opens []token.Token
	var middle, pred token.Sequence
	inWhere := false

	flushPred := func() {
		if len(pred) > 0 {
			l.Where = append(l.Where, pred.Clone())
		}
	}

	for {
		tok := cursor.Next()
		if tok.IsZero() {
			if len(opens) > 0 {
				at := opens[len(opens)-1]
				return report.ErrUnmatchedDelimiter{OpenSpan: at.Span(), Delim: at.Text()}
			}
			break
		}

		if tok.Kind() == token.Punct {
			switch tok.Text() {
			case "<":
				opens = append(opens, tok)
			case ">":
				// A stray ">" at depth zero flows through untouched; only
				// the parameter list gives it meaning.
				if len(opens) > 0 {
					opens = opens[:len(opens)-1]
				}
			}
		}

		if len(opens) == 0 {
			if !inWhere && tok.IsIdent("where") {
				inWhere = true
				continue
			}
			if tok.IsPunct(";") || tok.IsPunct("=") || tok.IsGroup(token.Brace) {
				// The body opener ends the clause; it and everything after
				// it are the remainder.
				flushPred()
				l.Middle = middle
				l.Rest = append(token.Sequence{tok}, cursor.Rest().Clone()...)
				return nil
			}
			if inWhere && tok.IsPunct(",") {
				flushPred()
				pred = nil
				continue
			}
		}

		if inWhere {
			pred = append(pred, tok)
		} else {
			middle = append(middle, tok)
		}
	}

	flushPred()
	l.Middle = middle
	return nil
}
