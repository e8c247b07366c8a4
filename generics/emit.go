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

import "github.com/macrotok/macrotok/token"

// Canonical re-emission rules: every parameter and every where predicate is
// followed by a ",", every bound by a "+", including the last of each. A
// consumer splicing these sequences together never has to ask whether an
// element is the last one. Empty regions emit nothing at all — no "<>", no
// bare where, no lone separator.

// Emit serializes the split back into a single canonical token sequence.
// The result is structurally equal to the input up to the trailing-separator
// normalization, and emission is idempotent: splitting and re-emitting the
// output reproduces it exactly.
func (l *List) Emit() token.Sequence {
	var out token.Sequence

	if len(l.Lifetimes)+len(l.Params) > 0 {
		out = append(out, token.NewPunct("<"))
		for _, param := range l.Lifetimes {
			out = append(out, normalizeBounds(param)...)
			out = append(out, token.NewPunct(","))
		}
		for _, param := range l.Params {
			out = append(out, normalizeBounds(param)...)
			out = append(out, token.NewPunct(","))
		}
		out = append(out, token.NewPunct(">"))
	}

	out = append(out, l.Middle...)

	if len(l.Where) > 0 {
		out = append(out, token.NewIdent("where"))
		for _, pred := range l.Where {
			out = append(out, normalizeBounds(pred)...)
			out = append(out, token.NewPunct(","))
		}
	}

	return append(out, l.Rest...)
}

// Emit serializes one structured parameter in canonical form.
func (p Param) Emit() token.Sequence {
	var out token.Sequence

	switch p.Kind {
	case Const:
		out = append(out, token.NewIdent("const"), p.Name)
		if len(p.Type) > 0 {
			out = append(out, token.NewPunct(":"))
			out = append(out, p.Type...)
		}
	default:
		out = append(out, p.Name)
		if len(p.Bounds) > 0 {
			out = append(out, token.NewPunct(":"))
			out = append(out, emitBounds(p.Bounds)...)
		}
	}

	if len(p.Default) > 0 {
		out = append(out, token.NewPunct("="))
		out = append(out, p.Default...)
	}
	return out
}

// normalizeBounds rewrites the bound list inside a raw parameter or where
// predicate so that every bound carries its trailing "+". Tokens before the
// ":" and any "= default" region pass through untouched; a run with no ":"
// at depth zero has no bound list and passes through whole.
func normalizeBounds(raw token.Sequence) token.Sequence {
	if len(raw) > 0 && raw[0].IsIdent("const") {
		// A const parameter's ":" introduces a type, not a bound list.
		return raw.Clone()
	}

	colon := -1
	end := len(raw)
	depth := 0
	for i, tok := range raw {
		if tok.Kind() != token.Punct {
			continue
		}
		switch tok.Text() {
		case "<":
			depth++
		case ">":
			depth--
		case ":":
			if depth == 0 && colon < 0 {
				colon = i
			}
		case "=":
			if depth == 0 && colon >= 0 {
				end = i
			}
		}
		if end != len(raw) {
			break
		}
	}
	if colon < 0 {
		return raw.Clone()
	}

	out := raw[:colon+1].Clone()
	out = append(out, emitBounds(raw[colon+1:end])...)
	return append(out, raw[end:].Clone()...)
}

// emitBounds splits a bound region on its depth-zero "+" separators and
// re-joins it with a "+" after every bound, the last included. Empty bounds
// (from a trailing "+" in the input) are dropped rather than re-emitted as
// lone separators.
func emitBounds(bounds token.Sequence) token.Sequence {
	var out token.Sequence
	var bound token.Sequence
	depth := 0

	flush := func() {
		if len(bound) == 0 {
			return
		}
		out = append(out, bound...)
		out = append(out, token.NewPunct("+"))
		bound = nil
	}

	for _, tok := range bounds {
		if tok.Kind() == token.Punct {
			switch tok.Text() {
			case "<":
				depth++
			case ">":
				depth--
			case "+":
				if depth == 0 {
					flush()
					continue
				}
			}
		}
		bound = append(bound, tok)
	}
	flush()
	return out
}
