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

// linediff compares two text files line by line, pairing lines by their position.
//
// Usage:
//
//	linediff [flags] OLD NEW
//
// Run linediff --help for the list of flags.
package main

import (
	"context"
	"os"

	"lumitools.dev/linediff/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background()))
}
