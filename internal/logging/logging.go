// internal/logging/logging.go

// Package logging builds the application logger.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// Options maps config/flag state onto an hclog setup.
type Options struct {
	Verbose bool   // forces debug
	Quiet   bool   // forces error
	Level   string // hclog level name, used when neither flag is set
	JSON    bool
}

// New returns the named application logger writing to w.
func New(w io.Writer, opts Options) hclog.Logger {
	level := hclog.LevelFromString(opts.Level)
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	if opts.Verbose {
		level = hclog.Debug
	}
	if opts.Quiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "epitizer",
		Level:      level,
		Output:     w,
		JSONFormat: opts.JSON,
	})
}
