// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for go-snake-bench.
//
// A root *Logger is built once in main and handed to constructors. Code that
// serves a request or executes a run reads the scoped logger from its context
// with [FromContext] or [FromRequest]; the scope carries trace_id or run_id.
package logger

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so Debug, Info, Err and the rest are
// available directly.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the root JSON logger on stdout. Every entry carries role,
// a timestamp and the calling function under "func".
//
// The root logger also becomes zerolog's default context logger, so
// [FromContext] on a context without a scope still writes through it.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	root := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
	zerolog.DefaultContextLogger = &root

	return &Logger{root}
}

// SetLevel changes the global level. An empty string keeps the current one.
func SetLevel(raw string) error {
	if raw == "" {
		return nil
	}

	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", raw, err)
	}

	zerolog.SetGlobalLevel(level)
	return nil
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithField returns a child logger that adds key=value to every entry.
// The receiver is not modified.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}

// IntoContext stores l in ctx for [FromContext].
func (l *Logger) IntoContext(ctx context.Context) context.Context {
	return l.WithContext(ctx)
}

func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger scoped to ctx. Without one it falls back to
// zerolog.DefaultContextLogger, which is disabled until [NewLogger] runs.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
