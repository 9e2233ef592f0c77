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

// Package textdiff renders positional line comparisons as text.
package textdiff

import (
	"lumitools.dev/linediff"
	"lumitools.dev/linediff/internal/byteview"
	"lumitools.dev/linediff/internal/config"
)

const (
	prefixSame    = "  "
	prefixRemoved = "- "
	prefixAdded   = "+ "
)

// Render compares the lines in x and y with [linediff.Compare] and returns the result as a
// listing, see [Format].
//
// The following option is supported: [TerminalColors]
func Render[T string | []byte](x, y T, opts ...Option) T {
	return Format(linediff.Compare(x, y), opts...)
}

// Format returns one line for every record. Each line starts with a two character prefix, "- "
// for removed lines, "+ " for added lines and two spaces for unchanged lines, followed by the
// value and a newline character.
//
// The following option is supported: [TerminalColors]
func Format[T string | []byte](records []linediff.Record[T], opts ...Option) T {
	cfg := config.FromOptions(opts, config.Color)

	size := 0
	for _, r := range records {
		size += len(prefixSame) + len(r.Value) + 1
		if code := colorCode(cfg.Color, r.Kind); code != "" {
			size += len(code) + len(config.Reset)
		}
	}

	var b byteview.Builder[T]
	b.Grow(size)
	for _, r := range records {
		code := colorCode(cfg.Color, r.Kind)
		b.WriteString(code)
		b.WriteString(prefix(r.Kind))
		b.WriteByteView(byteview.From(r.Value))
		if code != "" {
			b.WriteString(config.Reset)
		}
		b.WriteByte('\n')
	}
	return b.Build()
}

func prefix(k linediff.Kind) string {
	switch k {
	case linediff.Same:
		return prefixSame
	case linediff.Removed:
		return prefixRemoved
	case linediff.Added:
		return prefixAdded
	default:
		panic("never reached")
	}
}

func colorCode(cc *config.ColorConfig, k linediff.Kind) string {
	if cc == nil {
		return ""
	}
	switch k {
	case linediff.Same:
		return cc.Same
	case linediff.Removed:
		return cc.Removed
	case linediff.Added:
		return cc.Added
	default:
		panic("never reached")
	}
}
