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

// Package cli implements the linediff command line tool.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"lumitools.dev/linediff/internal/configuration"
	"lumitools.dev/linediff/internal/logging"
)

// Exit statuses, following diff(1).
const (
	StatusSame      = 0
	StatusDifferent = 1
	StatusTrouble   = 2
)

// Version is set at build time.
var Version = "dev"

type app struct {
	v       *viper.Viper
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	cfgFile string
	verbose bool
	status  int
}

// NewRootCommand returns the linediff command. The exit status of a run is reported through
// status after Execute returns.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) (cmd *cobra.Command, status func() int) {
	a := &app{
		v:      viper.New(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	root := &cobra.Command{
		Use:   "linediff [flags] OLD NEW",
		Short: "Compare two text files line by line, pairing lines by their position.",
		Long: `linediff compares the i-th line of OLD with the i-th line of NEW for every line index.

Equal lines are printed with two leading spaces, lines that differ are printed as a removed
line ("- ") followed by an added line ("+ "). Lines past the end of the shorter file are
printed as removed or added alone. Use "-" to read one of the files from stdin.

The exit status is 0 if the files are equal, 1 if they differ and 2 on trouble.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: a.runCompare,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is linediff.yaml in ., $HOME or /etc/linediff)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "More verbose output")
	pf.String(configuration.KeyColor, configuration.ColorAuto, "Color the output: auto, always or never")

	f := root.Flags()
	f.BoolP(configuration.KeySideBySide, "y", false, "Output in two columns")
	f.IntP(configuration.KeyWidth, "W", 0, "Total width of the two column output (default 80)")
	f.BoolP(configuration.KeySummary, "s", false, "Print the number of same, removed and added lines")
	f.BoolP(configuration.KeyWatch, "w", false, "Compare again whenever one of the files changes")
	f.Duration(configuration.KeyDebounce, 0, "How long changes must settle before comparing again in watch mode (default 100ms)")

	for _, name := range []string{configuration.KeySideBySide, configuration.KeyWidth, configuration.KeySummary, configuration.KeyWatch, configuration.KeyDebounce} {
		if err := a.v.BindPFlag(name, f.Lookup(name)); err != nil {
			panic(err)
		}
	}
	if err := a.v.BindPFlag(configuration.KeyColor, pf.Lookup(configuration.KeyColor)); err != nil {
		panic(err)
	}

	root.AddCommand(newGitCommand(a), newVersionCommand(a))
	return root, func() int { return a.status }
}

func (a *app) setup(cmd *cobra.Command) error {
	logging.SetOutput(a.stderr)
	logging.SetDebugEnabled(a.verbose)

	configuration.InitConfig(a.v, a.cfgFile)
	path, err := configuration.ReadInConfig(a.v)
	if err != nil {
		return err
	}
	if path != "" {
		logging.Debug("Using configuration file at: %s", path)
	}
	return nil
}

func (a *app) config() (configuration.Configuration, error) {
	cfg, err := configuration.Load(a.v)
	if err != nil {
		return configuration.Configuration{}, err
	}
	logging.SetColorEnabled(useColor(cfg.Color, a.stderr))
	return cfg, nil
}

// Execute runs the command with the process arguments and returns the exit status.
func Execute(ctx context.Context) int {
	cmd, status := NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		logging.Error("%v", err)
		return StatusTrouble
	}
	return status()
}
