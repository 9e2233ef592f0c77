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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// textdiff.Option.
package config

// ColorConfig holds the ANSI escape sequences used to color rendered lines. An empty string
// disables coloring for that kind of line.
type ColorConfig struct {
	Same    string
	Removed string
	Added   string
}

// Reset ends a colored section.
const Reset = "\033[0m"

// Config collects all configurable parameters for rendering functions in this module.
type Config struct {
	// If set, lines are wrapped in ANSI escape sequences.
	Color *ColorConfig

	// Total width of a side-by-side rendering in terminal columns.
	Width int
}

// MinWidth is the smallest width a side-by-side rendering accepts.
const MinWidth = 9

// Default is the default configuration.
var Default = Config{
	Color: nil,
	Width: 80,
}

// DefaultColors mirror the highlighting of the text comparison tool: unchanged lines faint,
// removed lines red, added lines green.
var DefaultColors = ColorConfig{
	Same:    "\033[2m",
	Removed: "\033[31m",
	Added:   "\033[32m",
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Color Flag = 1 << iota
	Width
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Color:
		return "textdiff.TerminalColors"
	case Width:
		return "textdiff.Width"
	default:
		panic("never reached")
	}
}
