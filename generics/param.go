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
	"fmt"

	"github.com/macrotok/macrotok/report"
	"github.com/macrotok/macrotok/token"
)

const (
	// Lifetime is a lifetime parameter: 'a, or 'a: 'b.
	Lifetime ParamKind = iota
	// Type is a type parameter: T, T: Bound, T: Bound = Default.
	Type
	// Const is a const parameter: const N: usize, const N: usize = 0.
	Const
)

// ParamKind tags which of the three parameter forms a [Param] is.
type ParamKind byte

// String implements [fmt.Stringer].
func (k ParamKind) String() string {
	switch k {
	case Lifetime:
		return "Lifetime"
	case Type:
		return "Type"
	case Const:
		return "Const"
	default:
		return fmt.Sprintf("generics.ParamKind(%d)", int(k))
	}
}

// Param is one structurally parsed generic parameter.
type Param struct {
	Kind ParamKind

	// Name is the parameter's identifier, or the lifetime token itself for
	// a lifetime parameter.
	Name token.Token

	// Bounds holds the tokens after ":" for lifetime and type parameters.
	// Empty when the parameter declares no bounds.
	Bounds token.Sequence

	// Type holds the tokens after ":" for const parameters, which declare a
	// type there rather than bounds.
	Type token.Sequence

	// Default holds the tokens after a depth-zero "=", when present.
	Default token.Sequence
}

// Parse re-walks the split parameter list into structured [Param] values:
// lifetime parameters first, then the type/const region, which is exactly
// the left-to-right order of the input. No parameter is dropped or
// duplicated.
func (l *List) Parse() ([]Param, error) {
	params := make([]Param, 0, len(l.Lifetimes)+len(l.Params))
	for _, raw := range l.Lifetimes {
		p, err := parseParam(raw)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	for _, raw := range l.Params {
		p, err := parseParam(raw)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}

// parseParam parses a single parameter's token run, bounds and default
// attached.
func parseParam(raw token.Sequence) (Param, error) {
	cursor := token.NewCursor(raw)
	var p Param

	switch first := cursor.Peek(); {
	case first.Kind() == token.Lifetime:
		p.Kind = Lifetime
		p.Name = cursor.Next()

	case first.IsIdent("const"):
		cursor.Next()
		p.Kind = Const
		name, err := token.ExpectIdent(cursor)
		if err != nil {
			return Param{}, err
		}
		p.Name = name

	case first.Kind() == token.Ident:
		p.Kind = Type
		p.Name = cursor.Next()

	default:
		return Param{}, report.ErrUnexpectedToken{
			At:       first.Span(),
			Expected: "a lifetime, type, or const parameter",
			Got:      first.Describe(),
		}
	}

	constraint, def, err := splitConstraint(cursor)
	if err != nil {
		return Param{}, err
	}
	if p.Kind == Const {
		p.Type = constraint
	} else {
		p.Bounds = constraint
	}
	p.Default = def

	if p.Kind == Lifetime && len(p.Default) > 0 {
		return Param{}, report.ErrUnexpectedToken{
			At:       p.Default.Span(),
			Expected: "no default on a lifetime parameter",
			Got:      "=",
		}
	}
	return p, nil
}

// splitConstraint consumes the optional ": ..." region and the optional
// depth-zero "= ..." default that follows it.
func splitConstraint(cursor *token.Cursor) (constraint, def token.Sequence, _ error) {
	if cursor.Done() {
		return nil, nil, nil
	}

	if cursor.Peek().IsPunct(":") {
		cursor.Next()
	} else if !cursor.Peek().IsPunct("=") {
		return nil, nil, report.ErrUnexpectedToken{
			At:       cursor.Span(),
			Expected: "`:`, `=`, or the end of the parameter",
			Got:      cursor.Peek().Describe(),
		}
	}

	depth := 0
	for !cursor.Done() {
		tok := cursor.Peek()
		if tok.Kind() == token.Punct {
			switch tok.Text() {
			case "<":
				depth++
			case ">":
				depth--
			case "=":
				if depth == 0 {
					cursor.Next()
					def = cursor.Rest().Clone()
					return constraint, def, nil
				}
			}
		}
		constraint = append(constraint, cursor.Next())
	}
	return constraint, nil, nil
}
