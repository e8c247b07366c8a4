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
	Unrecognized Kind = iota // Only the zero [Token] has this kind.

	Ident    // An identifier, including keywords.
	Number   // A numeric literal, suffix included.
	String   // A string or character literal.
	Lifetime // A lifetime, sigil included: 'a.
	Punct    // Punctuation; multi-character operators are one token.
	Group    // A bracket-delimited subtree.
)

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

// IsLiteral returns whether this kind is a literal token.
func (k Kind) IsLiteral() bool {
	return k == Number || k == String
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Unrecognized:
		return "Unrecognized"
	case Ident:
		return "Ident"
	case Number:
		return "Number"
	case String:
		return "String"
	case Lifetime:
		return "Lifetime"
	case Punct:
		return "Punct"
	case Group:
		return "Group"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}
