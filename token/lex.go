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
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/macrotok/macrotok/report"
)

// multiPuncts are the multi-character operators the lexer munches as a
// single token, longest first. ">>" and "<<" are deliberately absent:
// the generics layers count angle-bracket depth one ">" at a time, the
// same way the host tokenizer hands them out.
var multiPuncts = []string{"..=", "::", "->", "=>", ".."}

// singlePuncts is every punctuation character the lexer accepts on its own.
// Bracket characters are ordinary punctuation in the flat stream; see
// [Structure].
const singlePuncts = "<>,:;=+-#&*?!|@%/^~.$()[]{}"

// Lex tokenizes the textual token form into a flat [Sequence]: bracket
// characters come out as [Punct] tokens, not [Group]s. Whitespace separates
// tokens and is discarded.
//
// Use [Parse] to get a stream with brackets folded into groups.
func Lex(file *report.File) (Sequence, error) {
	l := &lexer{file: file}
	return l.lex()
}

// Parse tokenizes the textual token form and folds matched brackets into
// [Group] tokens, the shape every higher layer of this library consumes.
func Parse(file *report.File) (Sequence, error) {
	flat, err := Lex(file)
	if err != nil {
		return nil, err
	}
	return Structure(flat)
}

type lexer struct {
	file   *report.File
	cursor int
	out    Sequence
}

func (l *lexer) lex() (Sequence, error) {
	var prev int
	for !l.done() {
		start := l.cursor
		r := l.peek()

		if len(l.out) > 0 && l.cursor == prev {
			panic(fmt.Sprintf("macrotok/token: lexer failed to make progress at offset %d; this is a bug in macrotok", l.cursor))
		}
		prev = l.cursor

		switch {
		case unicode.In(r, unicode.Pattern_White_Space):
			l.takeWhile(func(r rune) bool {
				return unicode.In(r, unicode.Pattern_White_Space)
			})

		case isIdentStart(r):
			text := l.takeWhile(isIdentContinue)
			l.push(NewIdent(text), start)

		case unicode.IsDigit(r):
			// Suffixes and base prefixes ride along with the digits:
			// 0x1F, 42usize.
			text := l.takeWhile(isIdentContinue)
			l.push(NewNumber(text), start)

		case r == '"':
			text, ok := l.quoted('"')
			if !ok {
				return nil, l.unterminated(start, `"`)
			}
			l.push(NewString(text), start)

		case r == '\'':
			tok, ok := l.lifetimeOrChar()
			if !ok {
				return nil, l.unterminated(start, "'")
			}
			l.push(tok, start)

		default:
			if op := l.operator(); op != "" {
				l.push(NewPunct(op), start)
				break
			}
			return nil, report.ErrUnexpectedToken{
				At:       l.file.Span(start, l.cursor+utf8.RuneLen(r)),
				Expected: "a token",
				Got:      string(r),
			}
		}
	}
	return l.out, nil
}

func (l *lexer) done() bool {
	return l.cursor >= len(l.file.Text())
}

// peek decodes the rune at the cursor without consuming it.
func (l *lexer) peek() rune {
	r, _ := utf8.DecodeRuneInString(l.file.Text()[l.cursor:])
	return r
}

func (l *lexer) pop() rune {
	r, n := utf8.DecodeRuneInString(l.file.Text()[l.cursor:])
	l.cursor += n
	return r
}

// takeWhile consumes the longest run of runes satisfying p and returns it.
func (l *lexer) takeWhile(p func(rune) bool) string {
	start := l.cursor
	for !l.done() && p(l.peek()) {
		l.pop()
	}
	return l.file.Text()[start:l.cursor]
}

// quoted consumes a quote-delimited literal, quote included on both ends,
// honoring backslash escapes. Reports failure if the input ends first.
func (l *lexer) quoted(quote rune) (string, bool) {
	start := l.cursor
	l.pop() // The opening quote.
	for !l.done() {
		switch l.pop() {
		case quote:
			return l.file.Text()[start:l.cursor], true
		case '\\':
			if !l.done() {
				l.pop()
			}
		}
	}
	return "", false
}

// lifetimeOrChar disambiguates the two tokens that begin with a sigil:
// 'a is a lifetime, while 'a' and '\n' are character literals.
func (l *lexer) lifetimeOrChar() (Token, bool) {
	start := l.cursor
	l.pop() // The sigil.

	if !l.done() && isIdentStart(l.peek()) {
		l.takeWhile(isIdentContinue)
		if !l.done() && l.peek() == '\'' {
			// 'a' — a character literal after all.
			l.pop()
			return NewString(l.file.Text()[start:l.cursor]), true
		}
		return NewLifetime(l.file.Text()[start:l.cursor]), true
	}

	// An escaped or non-identifier character literal, e.g. '\n' or '+'.
	l.cursor = start
	text, ok := l.quoted('\'')
	return NewString(text), ok
}

// operator munches the longest punctuation token at the cursor, or ""
// if the cursor is not at one.
func (l *lexer) operator() string {
	rest := l.file.Text()[l.cursor:]
	for _, op := range multiPuncts {
		if strings.HasPrefix(rest, op) {
			l.cursor += len(op)
			return op
		}
	}
	if r := l.peek(); strings.ContainsRune(singlePuncts, r) {
		l.pop()
		return string(r)
	}
	return ""
}

func (l *lexer) push(tok Token, start int) {
	l.out = append(l.out, tok.WithSpan(l.file.Span(start, l.cursor)))
}

func (l *lexer) unterminated(start int, quote string) error {
	return report.ErrUnexpectedToken{
		At:       l.file.Span(start, len(l.file.Text())),
		Expected: fmt.Sprintf("a closing `%s`", quote),
		Got:      "",
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
