package logger

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger define a interface para logging estruturado.
// A aplicação (Handler, Service, Repository) deve depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// ZeroLogger é a implementação de Logger sobre o zerolog.
type ZeroLogger struct {
	zl zerolog.Logger
}

// New cria um Logger escrevendo em w. format "console" usa saída legível para humanos.
func New(w io.Writer, level, format string) Logger {
	if strings.EqualFold(format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	zl := zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
	return &ZeroLogger{zl: zl}
}

// Nop devolve um Logger que descarta tudo (útil em testes).
func Nop() Logger {
	return &ZeroLogger{zl: zerolog.Nop()}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *ZeroLogger) Debug(msg string, fields map[string]interface{}) {
	l.zl.Debug().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Info(msg string, fields map[string]interface{}) {
	l.zl.Info().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Warn(msg string, fields map[string]interface{}) {
	l.zl.Warn().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Error(msg string, err error) {
	l.zl.Error().Err(err).Msg(msg)
}

// Fatal registra o erro e encerra o processo.
func (l *ZeroLogger) Fatal(msg string, err error) {
	l.zl.Fatal().Err(err).Msg(msg)
}
