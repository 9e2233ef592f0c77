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

// Package linediff compares two text blocks line by line using positional matching.
//
// Both inputs are split on '\n' and lines are paired by their index only: the i-th line of x is
// compared with the i-th line of y. Equal pairs are reported as [Same], differing pairs as a
// [Removed] line from x followed by an [Added] line from y, and lines past the end of the shorter
// input as [Removed] or [Added] alone.
//
// This is not a minimal edit script. A line inserted in the middle of y shifts every following
// line and all of them are reported as changed. This is the intended contract, callers that want
// a shortest edit script need a different algorithm.
//
// Performance: O(N) time and space where N = len(x) + len(y).
//
// Note: For rendering the result as text, please see [lumitools.dev/linediff/textdiff].
//
// [lumitools.dev/linediff/textdiff]: https://pkg.go.dev/lumitools.dev/linediff/textdiff
package linediff
