// Package obslog centralizes the solvers' leveled logging, replacing the
// original Rust implementation's log::{debug, trace} call sites with
// zerolog events. Kept deliberately small: solvers log search edges
// (deeper/sideway/backtrack/prune) and found solutions; the only other
// users are the serve command and the web server's startup messages.
package obslog

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-wide structured logger, writing human-readable
// console output by default.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// SetVerbose raises the global log level to trace, surfacing every search
// edge (deeper/sideway/backtrack/prune) and the Debug-level "solution
// found" events; otherwise only Info-level messages are shown.
func SetVerbose(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
