package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a thin printf-style facade over zerolog.
// Services and usecases depend on the narrow Info/Warn/Error interface
// declared in their own contract files, never on this type directly.
type Logger struct {
	z      zerolog.Logger
	closer io.Closer
}

// New creates a logger writing to the given file path, or stdout when the
// path is empty. Unknown levels fall back to info.
func New(filePath, level string) (*Logger, error) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	output := io.Writer(os.Stdout)
	var closer io.Closer

	if filePath != "" {
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", filePath, err)
		}
		output = file
		closer = file
	}

	z := zerolog.New(output).Level(parsed).With().Timestamp().Logger()

	return &Logger{z: z, closer: closer}, nil
}

// Info logs a formatted message at info level
func (l *Logger) Info(format string, v ...interface{}) {
	l.z.Info().Msgf(format, v...)
}

// Warn logs a formatted message at warn level
func (l *Logger) Warn(format string, v ...interface{}) {
	l.z.Warn().Msgf(format, v...)
}

// Error logs a formatted message at error level
func (l *Logger) Error(format string, v ...interface{}) {
	l.z.Error().Msgf(format, v...)
}

// Fatal logs a formatted message at fatal level and exits
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.z.Fatal().Msgf(format, v...)
}

// Close releases the underlying log file, if any
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
