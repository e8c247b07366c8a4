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

// Package generics splits the token stream of a generic parameter list and
// its trailing where clause into independently re-emittable regions.
//
// [Split] is the raw splitter: it slices the stream into lifetime
// parameters, type/const parameters, the tokens between the parameter list
// and the where clause, where predicates, and whatever follows the body
// opener, without interpreting any of them. [List.Parse] re-walks the split
// parameters into structured [Param] values for consumers that need
// semantic access. [List.Emit] and [Param.Emit] serialize back out in the
// canonical trailing-separator form.
//
// Angle brackets are not groups in the token model, so the splitter tracks
// their nesting itself with a depth counter; commas, the where keyword, and
// body openers only mean anything at depth zero and outside bracket groups.
package generics
