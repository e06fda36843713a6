//go:build debug

// Package debug provides the sweep engine's opt-in trace logger. Built with
// `-tags debug`, Logf writes timestamped trace lines to stderr; without the
// tag (the production default), Logf compiles away to nothing and callers
// pay no cost for the formatting.
package debug

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[sweep] ", log.Lmicroseconds)

// Enabled reports whether debug tracing is compiled in.
const Enabled = true

// Logf writes a formatted trace line, in the manner of log.Printf.
func Logf(format string, args ...any) {
	logger.Printf(format, args...)
}
