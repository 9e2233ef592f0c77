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
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want []Record[string]
	}{
		{
			name: "empty",
			x:    "",
			y:    "",
			want: []Record[string]{
				{Same, ""},
			},
		},
		{
			name: "identical",
			x:    "foo\nbar\nbaz",
			y:    "foo\nbar\nbaz",
			want: []Record[string]{
				{Same, "foo"},
				{Same, "bar"},
				{Same, "baz"},
			},
		},
		{
			name: "x-empty",
			x:    "",
			y:    "a\nb",
			want: []Record[string]{
				{Added, "a"},
				{Added, "b"},
			},
		},
		{
			name: "y-empty",
			x:    "a\nb",
			y:    "",
			want: []Record[string]{
				{Removed, "a"},
				{Removed, "b"},
			},
		},
		{
			name: "x-empty-y-blank-line",
			x:    "",
			y:    "\n",
			want: []Record[string]{
				{Added, ""},
				{Added, ""},
			},
		},
		{
			name: "length-mismatch-tail",
			x:    "a\nb\nc",
			y:    "a\nx",
			want: []Record[string]{
				{Same, "a"},
				{Removed, "b"},
				{Added, "x"},
				{Removed, "c"},
			},
		},
		{
			name: "trailing-newline",
			x:    "a\n",
			y:    "a",
			want: []Record[string]{
				{Same, "a"},
				{Removed, ""},
			},
		},
		{
			name: "trailing-newline-y",
			x:    "a",
			y:    "a\n",
			want: []Record[string]{
				{Same, "a"},
				{Added, ""},
			},
		},
		{
			name: "case-sensitive",
			x:    "Hello",
			y:    "hello",
			want: []Record[string]{
				{Removed, "Hello"},
				{Added, "hello"},
			},
		},
		{
			name: "whitespace-sensitive",
			x:    "foo \n\tbar",
			y:    "foo\nbar",
			want: []Record[string]{
				{Removed, "foo "},
				{Added, "foo"},
				{Removed, "\tbar"},
				{Added, "bar"},
			},
		},
		{
			name: "empty-line-is-not-absent",
			x:    "a\n\nc",
			y:    "a\nb\nc",
			want: []Record[string]{
				{Same, "a"},
				{Removed, ""},
				{Added, "b"},
				{Same, "c"},
			},
		},
		{
			name: "carriage-return-is-content",
			x:    "a\r\nb",
			y:    "a\nb",
			want: []Record[string]{
				{Removed, "a\r"},
				{Added, "a"},
				{Same, "b"},
			},
		},
		{
			name: "inserted-line-shifts-everything",
			x:    "a\nb\nc",
			y:    "new\na\nb\nc",
			want: []Record[string]{
				{Removed, "a"},
				{Added, "new"},
				{Removed, "b"},
				{Added, "a"},
				{Removed, "c"},
				{Added, "b"},
				{Added, "c"},
			},
		},
		{
			name: "newlines-only",
			x:    "\n\n",
			y:    "\n",
			want: []Record[string]{
				{Same, ""},
				{Same, ""},
				{Removed, ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compare(%q, %q) result is different [-want, +got]:\n%s", tt.x, tt.y, diff)
			}

			gotBytes := Compare([]byte(tt.x), []byte(tt.y))
			if diff := cmp.Diff(toStrings(gotBytes), got); diff != "" {
				t.Errorf("Compare[[]byte](...) disagrees with Compare[string](...) [-bytes, +string]:\n%s", diff)
			}
		})
	}
}

func TestCompareIdentity(t *testing.T) {
	for _, x := range []string{"", "\n", "one", "one\ntwo\n", "\n\nthree\n\n", "tab\there\r\n"} {
		want := strings.Split(x, "\n")
		got := Compare(x, x)
		if len(got) != len(want) {
			t.Fatalf("Compare(%q, %q) returned %d records, want %d", x, x, len(got), len(want))
		}
		for i, r := range got {
			if r.Kind != Same || r.Value != want[i] {
				t.Errorf("Compare(%q, %q)[%d] = %v %q, want Same %q", x, x, i, r.Kind, r.Value, want[i])
			}
		}
	}
}

// Checks the record count invariant, the order of records within an index and that the records
// reconstruct both inputs.
func TestCompareRandom(t *testing.T) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(t.Name()))))
	alphabet := []string{"", "a", "b", "A", " a"}
	gen := func() string {
		lines := make([]string, rng.IntN(8))
		for i := range lines {
			lines[i] = alphabet[rng.IntN(len(alphabet))]
		}
		return strings.Join(lines, "\n")
	}

	for range 1000 {
		x, y := gen(), gen()
		xlines, ylines := strings.Split(x, "\n"), strings.Split(y, "\n")
		if x == "" && y != "" {
			xlines = nil
		}
		if y == "" && x != "" {
			ylines = nil
		}
		got := Compare(x, y)

		want := max(len(xlines), len(ylines))
		for i := range min(len(xlines), len(ylines)) {
			if xlines[i] != ylines[i] {
				want++
			}
		}
		if len(got) != want {
			t.Fatalf("Compare(%q, %q) returned %d records, want %d", x, y, len(got), want)
		}

		// i and j are the current line index in x and y.
		var rx, ry []string
		i, j := 0, 0
		for k, r := range got {
			switch r.Kind {
			case Same:
				if i != j {
					t.Fatalf("Compare(%q, %q): Same record %d pairs x[%d] with y[%d]", x, y, k, i, j)
				}
				rx, ry = append(rx, r.Value), append(ry, r.Value)
				i++
				j++
			case Removed:
				if i != j && j < len(ylines) {
					t.Fatalf("Compare(%q, %q): Removed record %d is not aligned with y", x, y, k)
				}
				rx = append(rx, r.Value)
				i++
			case Added:
				paired := k > 0 && got[k-1].Kind == Removed && i == j+1
				exhausted := i >= len(xlines) && i <= j
				if !paired && !exhausted {
					t.Fatalf("Compare(%q, %q): Added record %d does not follow the Removed record of its index", x, y, k)
				}
				ry = append(ry, r.Value)
				j++
			}
		}
		if diff := cmp.Diff(xlines, rx); diff != "" {
			t.Fatalf("Compare(%q, %q) does not reconstruct x [-want, +got]:\n%s", x, y, diff)
		}
		if diff := cmp.Diff(ylines, ry); diff != "" {
			t.Fatalf("Compare(%q, %q) does not reconstruct y [-want, +got]:\n%s", x, y, diff)
		}
	}
}

func TestCompareConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			x := fmt.Sprintf("line\n%d", i)
			got := Compare(x, "line\n0")
			if s := Summarize(got); s.Equal() != (i == 0) {
				t.Errorf("Compare(%q, ...) summary = %+v", x, s)
			}
		}()
	}
	wg.Wait()
}

func TestSummarize(t *testing.T) {
	got := Summarize(Compare("a\nb\nc", "a\nx"))
	want := Stats{Same: 1, Removed: 2, Added: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize(...) result is different [-want, +got]:\n%s", diff)
	}
	if got.Equal() {
		t.Errorf("Summarize(...).Equal() = true, want false")
	}
	if s := Summarize(Compare("", "")); !s.Equal() || s.Same != 1 {
		t.Errorf("Summarize(Compare(\"\", \"\")) = %+v, want one Same record", s)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in            string
		otherNonEmpty bool
		want          int
	}{
		{"", true, 0},
		{"", false, 1},
		{"a", true, 1},
		{"a\n", false, 2},
		{"\n", true, 2},
	}
	for _, tt := range tests {
		if got := len(splitLines(tt.in, tt.otherNonEmpty)); got != tt.want {
			t.Errorf("len(splitLines(%q, %v)) = %d, want %d", tt.in, tt.otherNonEmpty, got, tt.want)
		}
		if got := len(splitLines([]byte(tt.in), tt.otherNonEmpty)); got != tt.want {
			t.Errorf("len(splitLines([]byte(%q), %v)) = %d, want %d", tt.in, tt.otherNonEmpty, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{Same: "Same", Removed: "Removed", Added: "Added", 7: "Kind(7)"} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func BenchmarkCompare(b *testing.B) {
	for _, n := range []int{50, 500, 5000} {
		name := fmt.Sprintf("N=%d", n)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
			var xb, yb strings.Builder
			for range n {
				v := rng.IntN(100)
				fmt.Fprintf(&xb, "line %d\n", v)
				if rng.IntN(10) == 0 {
					v = -v
				}
				fmt.Fprintf(&yb, "line %d\n", v)
			}
			x, y := xb.String(), yb.String()
			for b.Loop() {
				_ = Compare(x, y)
			}
		})
	}
}

func toStrings(records []Record[[]byte]) []Record[string] {
	out := make([]Record[string], len(records))
	for i, r := range records {
		out[i] = Record[string]{r.Kind, string(r.Value)}
	}
	return out
}
