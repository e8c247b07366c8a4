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

package item

import "fmt"

const (
	Unknown Kind = iota

	Struct
	Enum
	Fn
	Trait
	Impl
	Union
	TypeAlias
)

// Kind tags which kind of item a [Header] describes. The keyword scan in
// [Split] is the single source of truth for this tag.
type Kind byte

// byKeyword resolves an item keyword to its kind; the false return is how
// the scan knows it is still looking at qualifiers.
func byKeyword(keyword string) (Kind, bool) {
	switch keyword {
	case "struct":
		return Struct, true
	case "enum":
		return Enum, true
	case "fn":
		return Fn, true
	case "trait":
		return Trait, true
	case "impl":
		return Impl, true
	case "union":
		return Union, true
	case "type":
		return TypeAlias, true
	}
	return Unknown, false
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case Struct:
		return "Struct"
	case Enum:
		return "Enum"
	case Fn:
		return "Fn"
	case Trait:
		return "Trait"
	case Impl:
		return "Impl"
	case Union:
		return "Union"
	case TypeAlias:
		return "TypeAlias"
	default:
		return fmt.Sprintf("item.Kind(%d)", int(k))
	}
}
