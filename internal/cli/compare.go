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

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"lumitools.dev/linediff"
	"lumitools.dev/linediff/internal/configuration"
	"lumitools.dev/linediff/internal/logging"
	"lumitools.dev/linediff/textdiff"
)

const stdinName = "-"

func (a *app) runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	oldPath, newPath := args[0], args[1]
	if oldPath == stdinName && newPath == stdinName {
		return errors.New("only one of OLD and NEW can be read from stdin")
	}
	if cfg.Watch && (oldPath == stdinName || newPath == stdinName) {
		return errors.New("can't watch stdin")
	}
	if cfg.Watch {
		return a.watch(cmd.Context(), cfg, oldPath, newPath)
	}

	stats, err := a.compareFiles(cfg, oldPath, newPath)
	if err != nil {
		return err
	}
	if !stats.Equal() {
		a.status = StatusDifferent
	}
	return nil
}

// compareFiles reads both files, writes the comparison to stdout and returns its statistics.
func (a *app) compareFiles(cfg configuration.Configuration, oldPath, newPath string) (linediff.Stats, error) {
	x, err := a.readInput(oldPath)
	if err != nil {
		return linediff.Stats{}, err
	}
	y, err := a.readInput(newPath)
	if err != nil {
		return linediff.Stats{}, err
	}
	logging.Debug("Comparing %s (%s) with %s (%s)", oldPath, humanize.IBytes(uint64(len(x))), newPath, humanize.IBytes(uint64(len(y))))

	records := linediff.Compare(x, y)
	if _, err := a.stdout.Write(a.render(cfg, records, x, y)); err != nil {
		return linediff.Stats{}, fmt.Errorf("writing output: %w", err)
	}

	stats := linediff.Summarize(records)
	if cfg.Summary {
		if _, err := fmt.Fprintln(a.stdout, summary(stats)); err != nil {
			return linediff.Stats{}, fmt.Errorf("writing output: %w", err)
		}
	}
	return stats, nil
}

func (a *app) render(cfg configuration.Configuration, records []linediff.Record[[]byte], x, y []byte) []byte {
	var opts []textdiff.Option
	if useColor(cfg.Color, a.stdout) {
		opts = append(opts, textdiff.TerminalColors())
	}
	if !cfg.SideBySide {
		return textdiff.Format(records, opts...)
	}
	if cfg.Width > 0 {
		opts = append(opts, textdiff.Width(cfg.Width))
	} else if w := terminalWidth(a.stdout); w > 0 {
		opts = append(opts, textdiff.Width(w))
	}
	return textdiff.SideBySide(x, y, opts...)
}

func (a *app) readInput(path string) ([]byte, error) {
	if path == stdinName {
		b, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return b, nil
}

func summary(s linediff.Stats) string {
	return fmt.Sprintf("%s same, %s removed, %s added",
		humanize.Comma(int64(s.Same)), humanize.Comma(int64(s.Removed)), humanize.Comma(int64(s.Added)))
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case configuration.ColorAlways:
		return true
	case configuration.ColorNever:
		return false
	default:
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
