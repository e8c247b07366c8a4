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

package report

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rivo/uniseg"
)

// Spanner is any type with a [Span].
type Spanner interface {
	// Should return the zero [Span] to indicate that it does not contribute
	// span information.
	Span() Span
}

// Span is a location within a [File].
type Span struct {
	// The file this span refers to.
	*File

	// The start and end byte offsets for this span. Start is inclusive,
	// End is exclusive.
	Start, End int
}

// IsZero returns whether or not this is the zero span.
func (s Span) IsZero() bool {
	return s.File == nil
}

// Text returns the text corresponding to this span.
func (s Span) Text() string {
	return s.File.Text()[s.Start:s.End]
}

// Len returns the length of this span, in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// StartLoc returns the start location for this span.
func (s Span) StartLoc() Location {
	return s.Location(s.Start)
}

// EndLoc returns the end location for this span.
func (s Span) EndLoc() Location {
	return s.Location(s.End)
}

// Span implements [Spanner].
func (s Span) Span() Span {
	return s
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	if s.IsZero() {
		return "<unknown>"
	}
	start := s.StartLoc()
	return fmt.Sprintf("%s:%d:%d", s.Path(), start.Line, start.Column)
}

// Join joins a collection of spans, returning the smallest span that
// contains all of them.
//
// Zero spans among spans are ignored. If every span in spans is zero,
// returns the zero span.
func Join(spans ...Spanner) Span {
	joined := Span{}
	for _, spanner := range spans {
		if spanner == nil {
			continue
		}
		span := spanner.Span()
		if span.IsZero() {
			continue
		}
		if joined.IsZero() {
			joined = span
			continue
		}
		joined.Start = min(joined.Start, span.Start)
		joined.End = max(joined.End, span.End)
	}
	return joined
}

// Location is a user-displayable location within a source file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed.
	//
	// Columns are measured in grapheme clusters, so a location inside of
	// combining text advances the column by one per displayed glyph, not
	// per byte or rune.
	Line, Column int
}

// File is an input file, with enough retained state to resolve byte offsets
// into editor coordinates.
type File struct {
	path, text string

	once sync.Once
	// Byte offsets of the starts of each line, sorted, computed on first use.
	lines []int
}

// NewFile constructs a new file with the given path and contents.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's name, as it would appear in a location.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Span constructs a span over the given byte offsets of this file.
func (f *File) Span(start, end int) Span {
	return Span{File: f, Start: start, End: end}
}

// EOF returns a zero-length span pointing at the end of the file.
func (f *File) EOF() Span {
	return f.Span(len(f.text), len(f.text))
}

// Location resolves a byte offset into a line/column location.
func (f *File) Location(offset int) Location {
	f.once.Do(f.indexLines)

	line, found := slices.BinarySearch(f.lines, offset)
	if !found {
		// BinarySearch returns the index of the first line whose start is
		// greater than offset, so the offset lives on the line before it.
		line--
	}

	column := uniseg.GraphemeClusterCount(f.text[f.lines[line]:offset])
	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: column + 1,
	}
}

func (f *File) indexLines() {
	f.lines = []int{0}
	for i := 0; i < len(f.text); i++ {
		if f.text[i] == '\n' {
			f.lines = append(f.lines, i+1)
		}
	}
}
