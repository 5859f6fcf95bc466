package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds a console logger at the configured level.
//
// Output goes to LogFile when set, otherwise to fallback. The returned
// closer releases the log file and is never nil. An unknown level falls
// back to warn.
func (s *Settings) NewLogger(fallback io.Writer) (zerolog.Logger, io.Closer, error) {
	out := fallback
	var closer io.Closer = nopCloser{}

	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), closer, err
		}
		out, closer = f, f
	}

	level, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil || s.LogLevel == "" {
		level = zerolog.WarnLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:     out,
		NoColor: s.LogFile != "",
	}).With().Timestamp().Logger().Level(level)

	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
