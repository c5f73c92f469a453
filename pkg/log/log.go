// pkg/log/log.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package log provides the leveled logger that is threaded through the
// backend and tools. Logs go either to stderr or to a rotating file in a
// log directory.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	*slog.Logger
	LogFile string
	Start   time.Time
}

// New returns a Logger at the given level ("debug", "info", "warn",
// "error"). If dir is non-empty, JSON records are written to a rotating
// file in that directory; otherwise text records go to stderr.
func New(level string, dir string) (*Logger, error) {
	var lvl slog.Level
	if level != "" {
		if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
			return nil, fmt.Errorf("%s: invalid log level: %w", level, err)
		}
	}

	lg := &Logger{Start: time.Now()}
	opts := &slog.HandlerOptions{Level: lvl}

	if dir == "" {
		lg.Logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
		return lg, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: unable to create log directory: %w", dir, err)
	}
	lg.LogFile = filepath.Join(dir, "imgui-fltk.slog")
	w := &lumberjack.Logger{
		Filename:   lg.LogFile,
		MaxSize:    32, // MB
		MaxBackups: 1,
		Compress:   true,
	}
	lg.Logger = slog.New(slog.NewJSONHandler(w, opts))
	return lg, nil
}

// NewWriter returns a text Logger writing to w; handy for tests and tools
// that capture their own output.
func NewWriter(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
		Start:  time.Now(),
	}
}

// The methods below are all nil-safe so that a nil *Logger can be passed
// where logging isn't wanted.

func (l *Logger) Debug(msg string, args ...any) {
	if l != nil {
		l.Logger.Debug(msg, args...)
	}
}

func (l *Logger) Debugf(msg string, args ...any) {
	if l != nil && l.Enabled(context.Background(), slog.LevelDebug) {
		l.Logger.Debug(fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l != nil {
		l.Logger.Info(msg, args...)
	}
}

func (l *Logger) Infof(msg string, args ...any) {
	if l != nil {
		l.Logger.Info(fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Warn(msg string, args ...any) {
	if l != nil {
		l.Logger.Warn(msg, args...)
	}
}

func (l *Logger) Warnf(msg string, args ...any) {
	if l != nil {
		l.Logger.Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Error(msg string, args ...any) {
	if l != nil {
		l.Logger.Error(msg, args...)
	}
}

func (l *Logger) Errorf(msg string, args ...any) {
	if l != nil {
		l.Logger.Error(fmt.Sprintf(msg, args...))
	}
}
