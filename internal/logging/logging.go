// Package logging builds the structured loggers used across minisys.
package logging

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Options select the log sinks.
type Options struct {
	Verbose bool      // Debug level on the text sink.
	Output  io.Writer // Text sink, os.Stderr when nil.
	JSON    io.Writer // Optional JSON sink; always at debug level.
}

// New creates a logger fanning out to every configured sink.
func New(opts Options) *slog.Logger {
	level := new(slog.LevelVar)
	if opts.Verbose {
		level.Set(slog.LevelDebug)
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}),
	}

	if opts.JSON != nil {
		handlers = append(handlers, slog.NewJSONHandler(opts.JSON, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard returns logger, or a discarding logger when it is nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}
