// Package logger provides the configurable logger shared by the library components.
//
// The root logger uses github.com/rs/zerolog with a console writer and is silenced
// when running under `go test`.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set allows a library user to override the global logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable disables logging.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the root logger.
func Logger() zerolog.Logger {
	return logger
}
