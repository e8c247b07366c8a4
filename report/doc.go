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

// Package report provides source locations and the error values produced by
// the parsing layers.
//
// Every error this library returns is one of three kinds, each carrying a
// [Span] pointing at the offending tokens and an expectation message. The
// library never renders errors into user-facing diagnostics itself; callers
// are expected to do so with whatever diagnostic machinery hosts them.
package report
