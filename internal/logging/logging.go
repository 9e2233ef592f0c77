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

// Package logging prints diagnostics of the command line tool to stderr.
//
// The comparison output goes to stdout, everything here is kept out of it.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

func SetDebugEnabled(enabled bool) {
	pterm.PrintDebugMessages = enabled
}

// SetColorEnabled toggles coloring and styling of log prefixes.
func SetColorEnabled(enabled bool) {
	if enabled {
		pterm.EnableColor()
		pterm.EnableStyling()
	} else {
		pterm.DisableColor()
		pterm.DisableStyling()
	}
}

func Debug(format string, a ...any) {
	printfln(pterm.Debug, format, a...)
}

func Info(format string, a ...any) {
	printfln(pterm.Info, format, a...)
}

func Warning(format string, a ...any) {
	printfln(pterm.Warning, format, a...)
}

func Error(format string, a ...any) {
	printfln(pterm.Error, format, a...)
}

func printfln(p pterm.PrefixPrinter, format string, a ...any) {
	if len(format) == 0 {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	p.WithWriter(out).Printfln(format, a...)
}
