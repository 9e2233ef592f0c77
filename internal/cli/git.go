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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"lumitools.dev/linediff"
	"lumitools.dev/linediff/textdiff"
)

const devNull = "/dev/null"

// newGitCommand returns a command that can be used with git using GIT_EXTERNAL_DIFF:
//
//	GIT_EXTERNAL_DIFF="linediff git" git diff
//
// git passes seven arguments: path old-file old-hex old-mode new-file new-hex new-mode.
func newGitCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "git PATH OLD-FILE OLD-HEX OLD-MODE NEW-FILE NEW-HEX NEW-MODE",
		Short: "Compare files for git diff, to be used as GIT_EXTERNAL_DIFF",
		Long: `Compare files for git diff, to be used as GIT_EXTERNAL_DIFF.

git treats a non-zero exit status of an external diff as a failure, this command exits with
status 0 whether the files differ or not.`,
		Args: cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			path, oldFile, oldHex, _, newFile, newHex, newMode := args[0], args[1], args[2], args[3], args[4], args[5], args[6]

			old, err := readGitFile(oldFile)
			if err != nil {
				return err
			}
			new, err := readGitFile(newFile)
			if err != nil {
				return err
			}

			records := linediff.Compare(old, new)
			if linediff.Summarize(records).Equal() {
				return nil
			}

			var opts []textdiff.Option
			if useColor(cfg.Color, a.stdout) {
				opts = append(opts, textdiff.TerminalColors())
			}
			if _, err := fmt.Fprintf(a.stdout, "diff --git a/%s b/%s\nindex %s..%s %s\n--- a/%s\n+++ b/%s\n",
				path, path, abbrev(oldHex), abbrev(newHex), newMode, path, path); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			if _, err := a.stdout.Write(textdiff.Format(records, opts...)); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			return nil
		},
	}
}

func readGitFile(name string) ([]byte, error) {
	if name == devNull {
		return nil, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return b, nil
}

func abbrev(hex string) string {
	return hex[:min(10, len(hex))]
}
