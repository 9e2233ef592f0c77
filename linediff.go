// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package linediff

import (
	"lumitools.dev/linediff/internal/byteview"
	"lumitools.dev/linediff/internal/edits"
)

// Kind classifies a line of a comparison.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Same    Kind = iota // The line is identical in x and y at its index
	Removed             // A line from x that differs from y or has no counterpart in y
	Added               // A line from y that differs from x or has no counterpart in x
)

// Record describes a single line of a comparison.
//
// Value never contains a '\n' character. For []byte inputs, Value points into the input.
type Record[T string | []byte] struct {
	Kind  Kind
	Value T
}

// Compare splits x and y into lines and compares them by position.
//
// Lines are separated by '\n' and nothing else. A trailing newline produces a trailing empty
// line, so "a\n" and "a" are different. An empty input has no lines when compared with a
// non-empty one. Two empty inputs compare as a single Same record with an empty value. Comparison
// is exact: no trimming, no case folding.
//
// The result has one record per index in [0, max(lines(x), lines(y))), plus one for every index
// where both lines exist and differ. At such an index the Removed record precedes the Added
// record.
func Compare[T string | []byte](x, y T) []Record[T] {
	xlines := splitLines(x, len(y) > 0)
	ylines := splitLines(y, len(x) > 0)
	flags := edits.Positional(len(xlines), len(ylines), func(i int) bool {
		return xlines[i].Equal(ylines[i])
	})

	out := make([]Record[T], 0, edits.Count(flags))
	for i, f := range flags {
		if f == edits.None {
			out = append(out, Record[T]{Same, byteview.To[T](xlines[i])})
			continue
		}
		if f&edits.Delete != 0 {
			out = append(out, Record[T]{Removed, byteview.To[T](xlines[i])})
		}
		if f&edits.Insert != 0 {
			out = append(out, Record[T]{Added, byteview.To[T](ylines[i])})
		}
	}
	return out
}

// splitLines splits s into lines. An empty s has zero lines if the other input isn't empty.
func splitLines[T string | []byte](s T, otherNonEmpty bool) []byteview.ByteView {
	if len(s) == 0 && otherNonEmpty {
		return nil
	}
	return byteview.SplitLines(byteview.From(s))
}

// Stats counts the records of a comparison by kind.
type Stats struct {
	Same, Removed, Added int
}

// Equal reports whether the comparison found no differences.
func (s Stats) Equal() bool { return s.Removed == 0 && s.Added == 0 }

// Summarize counts the records by kind.
func Summarize[T string | []byte](records []Record[T]) Stats {
	var s Stats
	for _, r := range records {
		switch r.Kind {
		case Same:
			s.Same++
		case Removed:
			s.Removed++
		case Added:
			s.Added++
		}
	}
	return s
}
