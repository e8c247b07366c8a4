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

// Package token defines the token model the rest of the library is built
// on: immutable [Token] values, owned [Sequence] slices of them, and a
// peekable [Cursor] for walking a sequence.
//
// A token is either a leaf (identifier, number, string, lifetime, or
// punctuation) or a [Group]: a bracket-delimited subtree that the higher
// parsing layers treat as a single atomic unit. [Lex] produces a flat
// sequence in which bracket characters are ordinary punctuation; [Structure]
// folds matched brackets into Groups, and [Parse] does both.
//
// Sequences are compared structurally and re-emitted losslessly; spans exist
// only to give errors a position and never affect equality.
package token
