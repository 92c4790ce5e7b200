package logging

import (
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	BackendSlog   = "slog"
	BackendLogrus = "logrus"
)

// New builds a Logger for the given backend ("slog" or "logrus"), level
// ("debug", "info", "warn", "error") and format ("text" or "json").
// Unknown values fall back to slog, info and text.
func New(backend, level, format string, w io.Writer) Logger {
	json := strings.EqualFold(format, "json")

	if strings.EqualFold(backend, BackendLogrus) {
		l := logrus.New()
		l.SetOutput(w)
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			lvl = logrus.InfoLevel
		}
		l.SetLevel(lvl)
		if json {
			l.SetFormatter(&logrus.JSONFormatter{})
		} else {
			l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
		}
		return NewLogrusLogger(l)
	}

	return NewSlogLogger(newSlogHandler(level, json, w))
}

type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) Logger                  { return n }
