// Package color provides configuration for coloring rendered comparisons using ANSI escape
// sequences.
//
// Specifying colors uses [Select Graphic Rendition parameters]. For example the code below,
// presents removed lines in bold red:
//
//	Removed(1, 31)
//
// This is equivalent to the following raw ANSI sequence: \033[1;31m.
//
// It's the responsibility of the caller to ensure that the parameters are correct and supported
// by the underlying terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"fmt"
	"strings"

	"lumitools.dev/linediff/internal/config"
)

// A Option makes it possible to configure custom colors in [textdiff.TerminalColors].
//
// [textdiff.TerminalColors]: https://pkg.go.dev/lumitools.dev/linediff/textdiff#TerminalColors
type Option func(*config.ColorConfig)

// Same colors unchanged lines. Without parameters, unchanged lines are not colored.
func Same(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Same = code
	}
}

// Removed colors removed lines. Without parameters, removed lines are not colored.
func Removed(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Removed = code
	}
}

// Added colors added lines. Without parameters, added lines are not colored.
func Added(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Added = code
	}
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
