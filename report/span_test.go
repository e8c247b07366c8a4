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

package report_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/macrotok/macrotok/report"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	file := report.NewFile("test", "ab\ncd ef\ngh")

	want := []report.Location{
		{Offset: 0, Line: 1, Column: 1},
		{Offset: 1, Line: 1, Column: 2},
		{Offset: 2, Line: 1, Column: 3}, // The newline itself.
		{Offset: 3, Line: 2, Column: 1},
		{Offset: 6, Line: 2, Column: 4},
		{Offset: 9, Line: 3, Column: 1},
		{Offset: 11, Line: 3, Column: 3}, // EOF.
	}
	got := make([]report.Location, len(want))
	for i, loc := range want {
		got[i] = file.Location(loc.Offset)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected locations (-want +got):\n%s", diff)
	}
}

func TestLocationGraphemes(t *testing.T) {
	t.Parallel()

	// e + combining acute is three bytes but a single column.
	file := report.NewFile("test", "ab\nécd")

	loc := file.Location(6)
	assert.Equal(t, 2, loc.Line)
	assert.Equal(t, 2, loc.Column)
}

func TestSpan(t *testing.T) {
	t.Parallel()

	file := report.NewFile("input", "hello world")
	span := file.Span(6, 11)

	assert.Equal(t, "world", span.Text())
	assert.Equal(t, 5, span.Len())
	assert.Equal(t, "input:1:7", span.String())
	assert.False(t, span.IsZero())
	assert.True(t, report.Span{}.IsZero())
	assert.Equal(t, "<unknown>", report.Span{}.String())
}

func TestJoin(t *testing.T) {
	t.Parallel()

	file := report.NewFile("test", "abcdef")

	assert.True(t, report.Join().IsZero())
	assert.True(t, report.Join(report.Span{}).IsZero())

	joined := report.Join(file.Span(2, 3), report.Span{}, file.Span(4, 6), file.Span(0, 1))
	assert.Equal(t, 0, joined.Start)
	assert.Equal(t, 6, joined.End)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	file := report.NewFile("test", "( a b")

	unmatched := report.ErrUnmatchedDelimiter{OpenSpan: file.Span(0, 1), Delim: "("}
	assert.Equal(t, "test:1:1: unmatched `(`", unmatched.Error())
	assert.Equal(t, file.Span(0, 1), unmatched.Span())

	unexpected := report.ErrUnexpectedToken{At: file.Span(2, 3), Expected: "`,`", Got: "a"}
	assert.Equal(t, "test:1:3: expected `,`, got `a`", unexpected.Error())

	eof := report.ErrUnexpectedToken{At: file.Span(5, 5), Expected: "an identifier"}
	assert.Equal(t, "test:1:6: expected an identifier, got end of input", eof.Error())

	keyword := report.ErrUnrecognizedItemKeyword{At: file.Span(2, 3)}
	assert.Contains(t, keyword.Error(), "expected an item keyword")
}
