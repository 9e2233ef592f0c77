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

package textdiff

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"lumitools.dev/linediff"
	"lumitools.dev/linediff/internal/byteview"
	"lumitools.dev/linediff/internal/config"
)

const (
	gutterSame    = ' '
	gutterChanged = '|'
	gutterRemoved = '<'
	gutterAdded   = '>'
)

const (
	ellipsis = "…"
	tabWidth = 4
)

// SideBySide compares the lines in x and y with [linediff.Compare] and renders one row per line
// index: the line of x on the left, the line of y on the right and a gutter mark in between.
//
// The gutter mark is a space for unchanged lines, '|' for changed lines, '<' for lines only in x
// and '>' for lines only in y. Columns are measured in terminal cells, lines that don't fit are
// truncated and end in an ellipsis. Tabs are expanded to spaces.
//
// The following options are supported: [TerminalColors], [Width]
func SideBySide[T string | []byte](x, y T, opts ...Option) T {
	cfg := config.FromOptions(opts, config.Color|config.Width)
	records := linediff.Compare(x, y)
	w := newCellWriter[T](cfg)

	for i := 0; i < len(records); i++ {
		r := records[i]
		switch r.Kind {
		case linediff.Same:
			w.row(r, gutterSame, &r)
		case linediff.Removed:
			// A removed line followed by an added line always belongs to the same index.
			if i+1 < len(records) && records[i+1].Kind == linediff.Added {
				w.row(r, gutterChanged, &records[i+1])
				i++
			} else {
				w.row(r, gutterRemoved, nil)
			}
		case linediff.Added:
			w.row(linediff.Record[T]{Kind: linediff.Same}, gutterAdded, &r)
		}
	}
	return w.b.Build()
}

type cellWriter[T string | []byte] struct {
	b      byteview.Builder[T]
	cond   *runewidth.Condition
	colors *config.ColorConfig
	column int
}

func newCellWriter[T string | []byte](cfg config.Config) *cellWriter[T] {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return &cellWriter[T]{
		cond:   cond,
		colors: cfg.Color,
		column: (cfg.Width - 3) / 2,
	}
}

// row writes left padded to the column width, the gutter and, if present, right.
func (w *cellWriter[T]) row(left linediff.Record[T], gutter byte, right *linediff.Record[T]) {
	cell := w.cond.FillRight(w.fit(string(left.Value)), w.column)
	if gutter == gutterAdded {
		w.b.WriteString(cell)
	} else {
		w.cell(left.Kind, cell)
	}
	w.b.WriteByte(' ')
	w.b.WriteByte(gutter)
	if right != nil {
		w.b.WriteByte(' ')
		w.cell(right.Kind, w.fit(string(right.Value)))
	}
	w.b.WriteByte('\n')
}

func (w *cellWriter[T]) cell(k linediff.Kind, s string) {
	code := colorCode(w.colors, k)
	w.b.WriteString(code)
	w.b.WriteString(s)
	if code != "" {
		w.b.WriteString(config.Reset)
	}
}

func (w *cellWriter[T]) fit(s string) string {
	s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
	return w.cond.Truncate(s, w.column, ellipsis)
}
