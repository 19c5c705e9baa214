// Package obslog constructs the one zerolog.Logger a run uses. There is
// no package-global logger: every component that logs takes one as an
// explicit argument, the same discipline internal/rngutil applies to
// entropy (see its doc comment).
package obslog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Options configures the logger New builds.
type Options struct {
	// Level is parsed via zerolog.ParseLevel; an empty string or an
	// unrecognized name falls back to zerolog.InfoLevel.
	Level string
	// Pretty switches to zerolog's human-readable console writer,
	// intended for an interactive terminal rather than log aggregation.
	Pretty bool
	// Writer overrides the output sink; nil defaults to os.Stderr.
	Writer io.Writer
}

// New builds a logger configured per opts. Every run constructs exactly
// one and threads it through explicitly (classify.Options does not
// carry one; cmd/ceclass passes it directly into the functions that
// need it).
func New(opts Options) zerolog.Logger {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	var w io.Writer = os.Stderr
	if opts.Writer != nil {
		w = opts.Writer
	}
	if opts.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
