// Package logger provides charmbracelet/log factories shared by the CLI
// and server entry points. Logs go to stderr so stdout stays clean for the
// IPC protocol and suggestion output.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed logger at the process-wide level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// SetDebug switches the default logger between debug and quiet operation.
func SetDebug(debug bool) {
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		return
	}
	log.SetLevel(log.WarnLevel)
}
