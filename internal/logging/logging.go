package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options controls where logs go and how verbose they are.
type Options struct {
	File  string
	Level string
}

// New builds the application logger. Without a log file every event is
// discarded, since the terminal belongs to the TUI. The returned closer
// must be called on shutdown.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	if opts.File == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("could not open log file: %w", err)
	}

	logger := NewWithWriter(f, level)
	return logger, f, nil
}

// NewWithWriter builds a logger that writes JSON lines to w.
func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(w).Level(level).With().Timestamp().Str("app", "blocnote").Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
