// Package logger configures the application's structured logging.
//
// It uses zerolog everywhere: a console writer in the local environment
// for readability, JSON output in every other environment so log
// collectors can parse entries. It also bridges zerolog levels to the
// pgx tracelog levels used for SQL statement logging.
package logger

import (
	"os"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// New builds the application logger for the given environment.
//
// Behavior:
//   - "local": human-friendly console output, debug level
//   - anything else: JSON output to stderr, info level
func New(env string) zerolog.Logger {
	if env == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().
			Logger()
	}

	return zerolog.New(os.Stderr).
		Level(zerolog.InfoLevel).
		With().Timestamp().
		Logger()
}

// NewPgxLogger builds the logger used for SQL statement output.
//
// It always writes in console format since statement logging is only
// enabled in the local environment, where readability wins.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Str("component", "pgx").
		Logger()
}

// PgxTraceLogLevel maps a zerolog level onto the pgx tracelog level so
// SQL logging verbosity follows the application log level.
func PgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
