// Package logging builds the logr.Logger used by the wizflow CLI.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Verbosity maps a level name to a logr verbosity. Unknown names map to
// info. error and warn both keep only V(0) messages; logr has no levels
// below info.
func Verbosity(level string) int {
	switch strings.ToLower(level) {
	case "trace":
		return 2
	case "debug":
		return 1
	default:
		return 0
	}
}

// New returns a logger writing one line per entry to w.
func New(w io.Writer, level string) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{
		Verbosity: Verbosity(level),
		LogCaller: funcr.None,
	})
}
