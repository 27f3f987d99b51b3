// Package demolog builds the console logger used by the example programs.
package demolog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a console logger tagged with the demo name, writing to stdout.
func New(demo string) zerolog.Logger {
	return NewWithWriter(os.Stdout, demo)
}

// NewWithWriter is New with an explicit destination. Colors are disabled so
// the output stays readable when redirected.
func NewWithWriter(out io.Writer, demo string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}).With().Timestamp().Str("demo", demo).Logger()
}
