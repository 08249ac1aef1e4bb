// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger is the process-wide logger handed out by Logger. New sets its
// prefix to the command name and raises the level to debug when --verbose
// is given.
var logger = log.NewWithOptions(os.Stderr, log.Options{})

// Logger returns the library's logger. Programs built with this composer can
// use it directly instead of configuring their own.
func Logger() *log.Logger {
	return logger
}
