// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package logging provides structured, leveled logging for augent's
// internal operations (resolution, caching, installation) — distinct
// from cliutil's user-facing success/warning output, which is what a
// command prints as its result rather than how it got there.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger with the three verbosity tiers augent
// commands expose: quiet (warnings and errors only), normal (info and
// above), and verbose (everything, including debug).
type Logger struct {
	sugar *zap.SugaredLogger
}

// Level selects the minimum severity a Logger emits.
type Level int

const (
	LevelQuiet Level = iota
	LevelNormal
	LevelVerbose
)

// New builds a Logger writing colored, human-readable lines to stderr.
func New(level Level) *Logger {
	var zapLevel zapcore.Level
	switch level {
	case LevelQuiet:
		zapLevel = zapcore.WarnLevel
	case LevelVerbose:
		zapLevel = zapcore.DebugLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderCfg.TimeKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(os.Stderr),
		zapLevel,
	)
	return &Logger{sugar: zap.New(core).Sugar()}
}

// LevelFromFlags derives a Level from the CLI's mutually-exclusive
// --verbose and --quiet flags; verbose wins if both are somehow set.
func LevelFromFlags(verbose, quiet bool) Level {
	switch {
	case verbose:
		return LevelVerbose
	case quiet:
		return LevelQuiet
	default:
		return LevelNormal
	}
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}
func (l *Logger) Info(msg string, keysAndValues ...interface{}) { l.sugar.Infow(msg, keysAndValues...) }
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) { l.sugar.Warnw(msg, keysAndValues...) }
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// Sync flushes any buffered log entries. Safe to call even when nothing
// was buffered; its error is conventionally ignored for stderr targets.
func (l *Logger) Sync() error { return l.sugar.Sync() }
