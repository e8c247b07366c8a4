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

// Package tokentest provides test-only helpers for building token sequences
// from their textual form and for diffing them readably when a test fails.
package tokentest

import (
	"os"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/macrotok/macrotok/report"
	"github.com/macrotok/macrotok/token"
)

// Seq parses text in the textual token form, with brackets folded into
// groups, failing the test if it does not parse.
func Seq(t *testing.T, text string) token.Sequence {
	t.Helper()
	seq, err := token.Parse(report.NewFile("test", text))
	require.NoError(t, err, "tokenizing %q", text)
	return seq
}

// Flat lexes text without folding brackets into groups.
func Flat(t *testing.T, text string) token.Sequence {
	t.Helper()
	seq, err := token.Lex(report.NewFile("test", text))
	require.NoError(t, err, "lexing %q", text)
	return seq
}

// RequireEqual asserts two sequences are structurally equal, reporting a
// token-per-line unified diff when they are not.
func RequireEqual(t *testing.T, want, got token.Sequence, msgAndArgs ...any) {
	t.Helper()
	if want.Equal(got) {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        lines(want),
		B:        lines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	require.NoError(t, err)
	require.Fail(t, "token sequences differ\n"+diff, msgAndArgs...)
}

func lines(seq token.Sequence) []string {
	out := make([]string, len(seq))
	for i, tok := range seq {
		out[i] = tok.String() + "\n"
	}
	return out
}

// Case is one YAML corpus entry for the splitter tests. Fields hold the
// textual form of the region they name; Err, when set, names the error kind
// the input must fail with instead.
type Case struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`

	Lifetimes []string `yaml:"lifetimes"`
	Params    []string `yaml:"params"`
	Middle    string   `yaml:"middle"`
	Where     []string `yaml:"where"`
	Rest      string   `yaml:"rest"`

	// Emit is the expected canonical re-emission, when the case checks it.
	Emit string `yaml:"emit"`

	// Err is one of "UnmatchedDelimiter", "UnexpectedToken".
	Err string `yaml:"err"`
}

// LoadCases decodes a YAML corpus file.
func LoadCases(t *testing.T, path string) []Case {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err, "reading corpus %s", path)

	var cases []Case
	require.NoError(t, yaml.Unmarshal(raw, &cases), "decoding corpus %s", path)
	return cases
}
