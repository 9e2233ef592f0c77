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

// Package edits contains the internal edits representation of a positional comparison that is
// then translated to a user facing API.
package edits

import "fmt"

// Flag is a flag describing the edits at one index of both inputs.
//
// For the inputs x and y, index i is described by flags[i]. If x[i] is reported as removed,
// flags[i]&Delete != 0 and if y[i] is reported as added flags[i]&Insert != 0. None means both
// elements exist and are equal.
type Flag uint8

const (
	None   Flag = 0
	Delete Flag = 1 << iota
	Insert
)

func (e Flag) String() string {
	switch e {
	case None:
		return "none"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Insert | Delete:
		return "delete|insert"
	default:
		return fmt.Sprint(uint8(e))
	}
}

// Positional pairs the elements of two inputs of length n and m by index and returns one flag for
// every index in [0, max(n, m)).
//
// eq(i) reports whether x[i] and y[i] are equal, it's only called for i < min(n, m). Elements
// beyond the end of the shorter input are never matched.
func Positional(n, m int, eq func(i int) bool) []Flag {
	if n < 0 || m < 0 {
		panic("n and m must be >= 0")
	}
	flags := make([]Flag, max(n, m))
	for i := range flags {
		var f Flag
		switch {
		case i < n && i < m:
			if !eq(i) {
				f = Delete | Insert
			}
		case i < n:
			f = Delete
		default:
			f = Insert
		}
		flags[i] = f
	}
	return flags
}

// Count returns the number of edits the flags expand to: one for every match and one for every
// set Delete or Insert bit.
func Count(flags []Flag) int {
	n := 0
	for _, f := range flags {
		switch f {
		case None, Delete, Insert:
			n++
		case Delete | Insert:
			n += 2
		}
	}
	return n
}
