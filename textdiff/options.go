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
	"lumitools.dev/linediff/internal/config"
	"lumitools.dev/linediff/textdiff/color"
)

// Option configures the behavior of rendering functions.
type Option = config.Option

// TerminalColors wraps every rendered line in ANSI escape sequences.
//
// By default, unchanged lines are faint, removed lines red and added lines green. Use the options
// in package [color] to change that.
func TerminalColors(opts ...color.Option) Option {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}
	return func(cfg *config.Config) config.Flag {
		cfg.Color = &cc
		return config.Color
	}
}

// Width sets the total width in terminal columns of the output of [SideBySide]. The default is
// 80, widths below 9 are raised to 9.
func Width(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Width = max(config.MinWidth, n)
		return config.Width
	}
}
