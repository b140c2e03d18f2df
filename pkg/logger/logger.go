package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the logging surface handed to handlers, services and repositories.
// Every component receives it through its constructor instead of reaching for a global.
type Logger interface {
	Debug(msg string)
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
}

// Init configures zerolog process defaults and returns a Logger for the given environment.
// development: human readable console output, everything else: JSON on stdout.
func Init(env string) Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var out io.Writer = os.Stdout
	if env == "development" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return New(log.Logger)
}

// New wraps an existing zerolog.Logger.
func New(l zerolog.Logger) Logger {
	return &zeroLogger{l: l}
}

// Nop discards everything. Used by tests.
func Nop() Logger {
	return &zeroLogger{l: zerolog.Nop()}
}

type zeroLogger struct {
	l zerolog.Logger
}

func (z *zeroLogger) Debug(msg string) {
	z.l.Debug().Msg(msg)
}

func (z *zeroLogger) Info(msg string, fields map[string]interface{}) {
	z.l.Info().Fields(fields).Msg(msg)
}

func (z *zeroLogger) Warn(msg string, fields map[string]interface{}) {
	z.l.Warn().Fields(fields).Msg(msg)
}

func (z *zeroLogger) Error(msg string, err error) {
	z.l.Error().Err(err).Msg(msg)
}
