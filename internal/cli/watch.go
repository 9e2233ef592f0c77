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
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/oklog/run"
	"lumitools.dev/linediff/internal/configuration"
	"lumitools.dev/linediff/internal/logging"
	"lumitools.dev/linediff/internal/watch"
)

const clearScreen = "\033[H\033[2J"

// watch compares the files every time they change until the process is interrupted. Read errors
// are logged and don't stop watching, a file may be missing for a moment while it's replaced.
func (a *app) watch(ctx context.Context, cfg configuration.Configuration, oldPath, newPath string) error {
	w, err := watch.New(cfg.Debounce, oldPath, newPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g run.Group
	{
		g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))
	}
	{
		g.Add(func() error {
			return w.Run(ctx, func(context.Context) error {
				if useColor(cfg.Color, a.stdout) {
					if _, err := fmt.Fprint(a.stdout, clearScreen); err != nil {
						return fmt.Errorf("writing output: %w", err)
					}
				}
				stats, err := a.compareFiles(cfg, oldPath, newPath)
				if err != nil {
					logging.Warning("%v", err)
					return nil
				}
				a.status = StatusSame
				if !stats.Equal() {
					a.status = StatusDifferent
				}
				return nil
			})
		}, func(error) {
			cancel()
		})
	}

	err = g.Run()
	if sig := (run.SignalError{}); errors.As(err, &sig) {
		logging.Debug("Received %v, stopping.", sig.Signal)
		return nil
	}
	return err
}
