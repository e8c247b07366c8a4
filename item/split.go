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

// Package item separates an item definition into its header — attributes,
// visibility, qualifiers, kind keyword, name, generics, where clause — and
// its unparsed body.
package item

import (
	"github.com/macrotok/macrotok/generics"
	"github.com/macrotok/macrotok/report"
	"github.com/macrotok/macrotok/token"
)

// Header is the portion of an item definition preceding its body.
// Constructed once per call to [Split]; immutable thereafter.
type Header struct {
	// Attrs is the leading attribute region: "#" tokens and their bracket
	// groups, retained wholesale and never parsed further.
	Attrs token.Sequence

	// Vis is the visibility region: "pub" and, when present, its paren
	// group ("pub(crate)").
	Vis token.Sequence

	// Qualifiers is everything between visibility and the item keyword:
	// "unsafe", "async", "const", "default", "auto", `extern "C"`.
	Qualifiers token.Sequence

	// Kind tags the item; Keyword is the token that determined it.
	Kind    Kind
	Keyword token.Token

	// Name is the item's name token. Zero for impl items, which have none.
	Name token.Token

	// Generics is the split parameter list and where clause that follow the
	// name. Its Middle field carries the tokens between the parameter list
	// and the where clause: a fn's signature, an impl's self type, a tuple
	// struct's field list.
	Generics *generics.List

	// Body is the item's body, unparsed: the body opener (";", "=", or a
	// braced group) and everything after it.
	Body token.Sequence
}

// Split splits an item definition. The leading-token scan skips attributes
// wholesale, collects visibility and qualifiers until it finds a recognized
// item keyword, consumes the name (impls have none), and delegates the rest
// to [generics.Split].
//
// Fails with [report.ErrUnrecognizedItemKeyword] when no keyword appears
// before a body-opening group or the end of input; generics failures
// propagate unchanged.
func Split(seq token.Sequence) (*Header, error) {
	cursor := token.NewCursor(seq)
	header := &Header{}

	// Attributes: each is a "#" followed by a bracket group. Treated as
	// opaque; their contents are the host language's business.
	for cursor.Peek().IsPunct("#") && cursor.PeekN(1).IsGroup(token.Bracket) {
		header.Attrs = append(header.Attrs, cursor.Next(), cursor.Next())
	}

	if cursor.Peek().IsIdent("pub") {
		header.Vis = append(header.Vis, cursor.Next())
		if cursor.Peek().IsGroup(token.Paren) {
			header.Vis = append(header.Vis, cursor.Next())
		}
	}

	if err := header.scanKeyword(cursor); err != nil {
		return nil, err
	}

	if header.Kind != Impl {
		name, err := token.ExpectIdent(cursor)
		if err != nil {
			return nil, err
		}
		header.Name = name
	}

	split, err := generics.Split(cursor.Rest())
	if err != nil {
		return nil, err
	}
	header.Generics = split
	header.Body = split.Rest
	return header, nil
}

// scanKeyword consumes qualifier tokens until the item keyword, tagging the
// header's kind from it.
func (h *Header) scanKeyword(cursor *token.Cursor) error {
	for {
		tok := cursor.Peek()
		switch {
		case tok.Kind() == token.Ident:
			if kind, ok := byKeyword(tok.Text()); ok {
				h.Kind = kind
				h.Keyword = cursor.Next()
				return nil
			}
			h.Qualifiers = append(h.Qualifiers, cursor.Next())

		case tok.Kind() == token.String && endsWithExtern(h.Qualifiers):
			// The ABI string of an `extern "C" fn`.
			h.Qualifiers = append(h.Qualifiers, cursor.Next())

		default:
			// A body opener, the end of input, or a token no item header
			// contains: the keyword scan has failed.
			return report.ErrUnrecognizedItemKeyword{At: cursor.Span()}
		}
	}
}

func endsWithExtern(qualifiers token.Sequence) bool {
	return len(qualifiers) > 0 && qualifiers[len(qualifiers)-1].IsIdent("extern")
}
