package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Setup initializes the global zerolog logger based on environment configuration.
//   - level: log level string (trace, debug, info, warn, error, fatal, panic)
//   - format: "json", "pretty" for human-readable output, or "auto" to pick
//     pretty when w is a terminal
//
// The interactive menu owns stdout, so callers normally pass os.Stderr.
// Returns the configured logger instance.
func Setup(level, format string, w io.Writer) zerolog.Logger {
	var writer io.Writer

	if format == "auto" {
		format = detectFormat(w)
	}

	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	} else {
		writer = w
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(lvl)

	log := zerolog.New(writer).
		With().
		Timestamp().
		Caller().
		Logger()

	return log
}

func detectFormat(w io.Writer) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "pretty"
	}
	return "json"
}
