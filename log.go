package prng

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger writes human readable logs to w, or stderr when w is nil
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
