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

package edits

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPositional(t *testing.T) {
	tests := []struct {
		name      string
		x, y      string
		want      []Flag
		wantEdits int
	}{
		{
			name:      "empty",
			want:      []Flag{},
			wantEdits: 0,
		},
		{
			name:      "identical",
			x:         "ABC",
			y:         "ABC",
			want:      []Flag{None, None, None},
			wantEdits: 3,
		},
		{
			name:      "x-empty",
			y:         "AB",
			want:      []Flag{Insert, Insert},
			wantEdits: 2,
		},
		{
			name:      "y-empty",
			x:         "AB",
			want:      []Flag{Delete, Delete},
			wantEdits: 2,
		},
		{
			name: "x-longer",
			x:    "ABC",
			y:    "AX",
			want: []Flag{
				None,            //  A  A
				Delete | Insert, // -B +X
				Delete,          // -C
			},
			wantEdits: 4,
		},
		{
			name: "y-longer",
			x:    "A",
			y:    "BCD",
			want: []Flag{
				Delete | Insert, // -A +B
				Insert,          //    +C
				Insert,          //    +D
			},
			wantEdits: 4,
		},
		{
			name: "insertion-shifts-everything",
			x:    "ABC",
			y:    "XABC",
			want: []Flag{
				Delete | Insert,
				Delete | Insert,
				Delete | Insert,
				Insert,
			},
			wantEdits: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := strings.Split(tt.x, ""), strings.Split(tt.y, "")
			got := Positional(len(x), len(y), func(i int) bool { return x[i] == y[i] })
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Positional(...) result is different [-want, +got]:\n%s", diff)
			}
			if gotEdits := Count(got); gotEdits != tt.wantEdits {
				t.Errorf("Count(...) = %d, want %d", gotEdits, tt.wantEdits)
			}
		})
	}
}

func TestPositionalEqOnlyCalledInRange(t *testing.T) {
	n, m := 5, 2
	Positional(n, m, func(i int) bool {
		if i >= min(n, m) {
			t.Fatalf("eq called with out of range index %d", i)
		}
		return false
	})
}

func TestFlagString(t *testing.T) {
	for f, want := range map[Flag]string{
		None:            "none",
		Delete:          "delete",
		Insert:          "insert",
		Delete | Insert: "delete|insert",
		8:               "8",
	} {
		if got := f.String(); got != want {
			t.Errorf("Flag(%d).String() = %q, want %q", uint8(f), got, want)
		}
	}
}
